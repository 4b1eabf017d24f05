package kv

import (
	"context"

	"github.com/intechds/storefront/internal/domain"
)

type QuoteRepo struct {
	c collection[[]domain.QuoteRequest]
}

func NewQuoteRepo(store domain.KVStore) *QuoteRepo {
	return &QuoteRepo{c: collection[[]domain.QuoteRequest]{store: store, key: "quotes.json", seed: func() []domain.QuoteRequest { return []domain.QuoteRequest{} }}}
}

func (r *QuoteRepo) List(ctx context.Context) ([]domain.QuoteRequest, error) {
	return r.c.load(ctx)
}

func (r *QuoteRepo) Update(ctx context.Context, fn func([]domain.QuoteRequest) ([]domain.QuoteRequest, error)) error {
	return r.c.update(ctx, fn)
}
