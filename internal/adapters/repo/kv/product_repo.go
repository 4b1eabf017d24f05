package kv

import (
	"context"

	"github.com/intechds/storefront/internal/domain"
)

type ProductRepo struct {
	c collection[[]domain.Product]
}

func NewProductRepo(store domain.KVStore) *ProductRepo {
	return &ProductRepo{c: collection[[]domain.Product]{store: store, key: "products.json", seed: domain.DefaultProducts}}
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.c.load(ctx)
}

func (r *ProductRepo) Save(ctx context.Context, all []domain.Product) error {
	return r.c.save(ctx, all)
}

func (r *ProductRepo) Update(ctx context.Context, fn func([]domain.Product) ([]domain.Product, error)) error {
	return r.c.update(ctx, fn)
}
