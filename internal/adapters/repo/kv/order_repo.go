package kv

import (
	"context"

	"github.com/intechds/storefront/internal/domain"
)

type OrderRepo struct {
	c collection[[]domain.Order]
}

func NewOrderRepo(store domain.KVStore) *OrderRepo {
	return &OrderRepo{c: collection[[]domain.Order]{store: store, key: "orders.json", seed: func() []domain.Order { return []domain.Order{} }}}
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	return r.c.load(ctx)
}

func (r *OrderRepo) Update(ctx context.Context, fn func([]domain.Order) ([]domain.Order, error)) error {
	return r.c.update(ctx, fn)
}
