package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intechds/storefront/internal/adapters/kvstore"
	kvrepo "github.com/intechds/storefront/internal/adapters/repo/kv"
	"github.com/intechds/storefront/internal/domain"
	"github.com/intechds/storefront/internal/usecase"
)

func newCatalogUC() *usecase.CatalogUC {
	return &usecase.CatalogUC{Products: kvrepo.NewProductRepo(kvstore.NewMemory())}
}

func productIDs(products []domain.Product) []int {
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestCatalogSearch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newCatalogUC()

	t.Run("no filter returns full seed", func(t *testing.T) {
		got, err := uc.Search(ctx, domain.ProductFilter{})
		require.NoError(t, err)
		assert.Len(t, got, len(domain.DefaultProducts()))
	})

	t.Run("query matches name sku category and brand", func(t *testing.T) {
		got, err := uc.Search(ctx, domain.ProductFilter{Query: "ms300"})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, productIDs(got))

		got, err = uc.Search(ctx, domain.ProductFilter{Query: "DOP-107BV"})
		require.NoError(t, err)
		assert.Equal(t, []int{12}, productIDs(got))
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		featured := true
		got, err := uc.Search(ctx, domain.ProductFilter{Category: "hmi", Featured: &featured})
		require.NoError(t, err)
		assert.Equal(t, []int{10, 12}, productIDs(got))
	})

	t.Run("sorting", func(t *testing.T) {
		got, err := uc.Search(ctx, domain.ProductFilter{Sort: domain.SortPriceAsc})
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, 16, got[0].ID)

		got, err = uc.Search(ctx, domain.ProductFilter{Sort: domain.SortPriceDesc})
		require.NoError(t, err)
		assert.Equal(t, 10, got[0].ID)

		got, err = uc.Search(ctx, domain.ProductFilter{Sort: domain.SortLatest})
		require.NoError(t, err)
		assert.Equal(t, 24, got[0].ID)
	})
}

func TestCatalogCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newCatalogUC()

	p := domain.Product{Name: "Delta PLC DVP14SS211R", SKU: "DVP14SS211R", Price: 4200, Category: "plc", InStock: true}
	require.NoError(t, uc.Create(ctx, &p))
	assert.Equal(t, 25, p.ID)
	assert.NotEmpty(t, p.CreatedAt)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	q := domain.Product{Name: "Delta PLC DVP14SS211T", Price: 4300, Category: "plc"}
	require.NoError(t, uc.Create(ctx, &q))
	assert.Equal(t, 26, q.ID)
}

func TestCatalogReplace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newCatalogUC()

	t.Run("overwrites record wholesale", func(t *testing.T) {
		p := domain.Product{ID: 2, Name: "renamed", Price: 1, Category: "ms300"}
		require.NoError(t, uc.Replace(ctx, &p))

		got, err := uc.Search(ctx, domain.ProductFilter{Query: "renamed"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
		assert.Empty(t, got[0].SKU)
		assert.NotEmpty(t, got[0].UpdatedAt)
	})

	t.Run("unknown id", func(t *testing.T) {
		p := domain.Product{ID: 999, Name: "ghost"}
		assert.ErrorIs(t, uc.Replace(ctx, &p), domain.ErrNotFound)
	})
}

func TestCatalogDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newCatalogUC()

	require.NoError(t, uc.Delete(ctx, 1))
	got, err := uc.Search(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, got, len(domain.DefaultProducts())-1)
	assert.NotContains(t, productIDs(got), 1)

	// absent id is not an error
	require.NoError(t, uc.Delete(ctx, 999))
}
