package kv

import (
	"context"

	"github.com/intechds/storefront/internal/domain"
)

type ReviewRepo struct {
	c collection[[]domain.Review]
}

func NewReviewRepo(store domain.KVStore) *ReviewRepo {
	return &ReviewRepo{c: collection[[]domain.Review]{store: store, key: "reviews.json", seed: func() []domain.Review { return []domain.Review{} }}}
}

func (r *ReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	return r.c.load(ctx)
}

func (r *ReviewRepo) Update(ctx context.Context, fn func([]domain.Review) ([]domain.Review, error)) error {
	return r.c.update(ctx, fn)
}
