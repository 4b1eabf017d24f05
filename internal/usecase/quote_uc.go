package usecase

import (
	"context"
	"time"

	"github.com/intechds/storefront/internal/domain"
)

// QuoteUC mirrors the order lifecycle with its own status vocabulary and an
// independent per-year counter.
type QuoteUC struct {
	Quotes domain.QuoteRepo
}

type QuoteInput struct {
	Items    []domain.OrderItem   `json:"items"`
	Customer domain.QuoteCustomer `json:"customer"`
}

type QuotePatch struct {
	Items    *[]domain.OrderItem   `json:"items"`
	Customer *domain.QuoteCustomer `json:"customer"`
	Status   *domain.QuoteStatus   `json:"status"`
}

func (uc *QuoteUC) Create(ctx context.Context, in QuoteInput) (*domain.QuoteRequest, error) {
	now := domain.Timestamp(time.Now())
	q := domain.QuoteRequest{
		Items:     in.Items,
		Customer:  in.Customer,
		Status:    domain.QuoteStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.Quotes.Update(ctx, func(quotes []domain.QuoteRequest) ([]domain.QuoteRequest, error) {
		ids := make([]string, len(quotes))
		for i := range quotes {
			ids[i] = quotes[i].ID
		}
		q.ID = nextSequenceID("QUO", time.Now().Year(), ids)
		return append(quotes, q), nil
	})
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (uc *QuoteUC) List(ctx context.Context) ([]domain.QuoteRequest, error) {
	return uc.Quotes.List(ctx)
}

func (uc *QuoteUC) Patch(ctx context.Context, id string, p QuotePatch) (*domain.QuoteRequest, error) {
	var updated domain.QuoteRequest
	err := uc.Quotes.Update(ctx, func(quotes []domain.QuoteRequest) ([]domain.QuoteRequest, error) {
		for i := range quotes {
			if quotes[i].ID != id {
				continue
			}
			q := &quotes[i]
			if p.Items != nil {
				q.Items = *p.Items
			}
			if p.Customer != nil {
				q.Customer = *p.Customer
			}
			if p.Status != nil {
				q.Status = *p.Status
			}
			q.UpdatedAt = domain.Timestamp(time.Now())
			updated = *q
			return quotes, nil
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
