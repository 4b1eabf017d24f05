package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intechds/storefront/internal/adapters/kvstore"
	kvrepo "github.com/intechds/storefront/internal/adapters/repo/kv"
	"github.com/intechds/storefront/internal/domain"
	"github.com/intechds/storefront/internal/usecase"
)

func newOrderUC() *usecase.OrderUC {
	return &usecase.OrderUC{Orders: kvrepo.NewOrderRepo(kvstore.NewMemory())}
}

func fmtSeqID(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d%04d", prefix, year, seq)
}

func TestOrderCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newOrderUC()
	year := time.Now().Year()

	in := usecase.OrderInput{
		Items:    []domain.OrderItem{{ProductID: 1, ProductName: "Delta MS300", Price: 5500, Quantity: 2}},
		Subtotal: 11000, ShippingCost: 150, Total: 11150,
		Customer: domain.OrderCustomer{Name: "สมชาย", Email: "somchai@example.co.th", Phone: "0812345678"},
	}

	t.Run("numbers per year and forces pending", func(t *testing.T) {
		o, err := uc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, fmtSeqID("INV", year, 1), o.ID)
		assert.Equal(t, domain.OrderStatusPending, o.Status)
		assert.Equal(t, "order", o.Type)
		assert.Equal(t, "transfer", o.PaymentMethod)
		assert.Equal(t, o.CreatedAt, o.UpdatedAt)

		second, err := uc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, fmtSeqID("INV", year, 2), second.ID)
	})

	t.Run("keeps explicit type and payment method", func(t *testing.T) {
		in := in
		in.Type = "preorder"
		in.PaymentMethod = "cod"
		o, err := uc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "preorder", o.Type)
		assert.Equal(t, "cod", o.PaymentMethod)
	})
}

func TestOrderPatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newOrderUC()

	created, err := uc.Create(ctx, usecase.OrderInput{
		Items:    []domain.OrderItem{{ProductID: 2, ProductName: "DOP-107BV", Price: 12500, Quantity: 1}},
		Subtotal: 12500, Total: 12500,
		Customer: domain.OrderCustomer{Name: "A", Email: "a@b.co"},
	})
	require.NoError(t, err)

	t.Run("merges only supplied fields", func(t *testing.T) {
		time.Sleep(5 * time.Millisecond)
		status := domain.OrderStatusShipped
		got, err := uc.Patch(ctx, created.ID, usecase.OrderPatch{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusShipped, got.Status)
		assert.Equal(t, created.Items, got.Items)
		assert.Equal(t, created.Total, got.Total)
		assert.Equal(t, created.CreatedAt, got.CreatedAt)
		assert.Greater(t, got.UpdatedAt, created.CreatedAt)
	})

	t.Run("unknown id leaves collection unchanged", func(t *testing.T) {
		_, err := uc.Patch(ctx, "INV-19990001", usecase.OrderPatch{})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		orders, err := uc.List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, created.ID, orders[0].ID)
	})
}

func TestQuoteLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kvstore.NewMemory()
	orders := &usecase.OrderUC{Orders: kvrepo.NewOrderRepo(store)}
	quotes := &usecase.QuoteUC{Quotes: kvrepo.NewQuoteRepo(store)}
	year := time.Now().Year()

	// quote numbering does not see the order collection
	_, err := orders.Create(ctx, usecase.OrderInput{Customer: domain.OrderCustomer{Name: "X", Email: "x@y.co"}})
	require.NoError(t, err)

	q, err := quotes.Create(ctx, usecase.QuoteInput{
		Items: []domain.OrderItem{
			{ProductID: 1, ProductName: "Delta MS300", Price: 5500, Quantity: 2},
			{ProductID: 3, ProductName: "VFD-E", Price: 9000, Quantity: 1},
		},
		Customer: domain.QuoteCustomer{Name: "สมหญิง", Company: "โรงงาน ABC", Email: "s@abc.co.th", Phone: "021234567"},
	})
	require.NoError(t, err)
	assert.Equal(t, fmtSeqID("QUO", year, 1), q.ID)
	assert.Equal(t, domain.QuoteStatusPending, q.Status)

	time.Sleep(5 * time.Millisecond)
	status := domain.QuoteStatusSent
	got, err := quotes.Patch(ctx, q.ID, usecase.QuotePatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteStatusSent, got.Status)
	assert.Greater(t, got.UpdatedAt, q.UpdatedAt)

	listed, err := quotes.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.QuoteStatusSent, listed[0].Status)
}
