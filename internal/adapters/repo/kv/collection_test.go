package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intechds/storefront/internal/adapters/kvstore"
	"github.com/intechds/storefront/internal/adapters/repo/kv"
	"github.com/intechds/storefront/internal/domain"
)

func TestProductRepoSeedsDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := kv.NewProductRepo(store)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultProducts(), products)

	// first read must have persisted the seed under its fixed key
	_, ok, err := store.Get(ctx, "products.json")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProductRepoRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := kv.NewProductRepo(kvstore.NewMemory())

	saved := []domain.Product{
		{ID: 1, Name: "Delta MS300", SKU: "VFD4A8MS21ANSAA", Price: 5500, Category: "ms300", InStock: true,
			Specs: map[string]string{"Voltage": "220V", "Phase": "1"}, Images: []string{"/uploads/1.jpg"}},
		{ID: 2, Name: "Delta HMI DOP-107BV", Price: 12500, Category: "hmi", InStock: false, Featured: true},
	}
	require.NoError(t, repo.Save(ctx, saved))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, listed)
}

func TestEmptyCollectionsSeedEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kvstore.NewMemory()

	orders, err := kv.NewOrderRepo(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	quotes, err := kv.NewQuoteRepo(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, quotes)

	users, err := kv.NewUserRepo(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	reviews, err := kv.NewReviewRepo(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestContentReposSeedDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kvstore.NewMemory()

	settings, err := kv.NewSettingsRepo(store).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)

	about, err := kv.NewAboutRepo(store).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAbout(), about)

	services, err := kv.NewServicesRepo(store).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServices(), services)
}

func TestSettingsSaveOverwritesWholesale(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := kv.NewSettingsRepo(kvstore.NewMemory())

	s := domain.SiteSettings{Phone: "0-0000-0000", Email: "sales@example.co.th", HeroTitle: "New Hero"}
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestUserRepoFindByEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := kv.NewUserRepo(kvstore.NewMemory())

	require.NoError(t, repo.Update(ctx, func(users []domain.User) ([]domain.User, error) {
		return append(users, domain.User{ID: "user_1", Email: "a@b.co", Password: "secret1", Name: "A"}), nil
	}))

	u, err := repo.FindByEmail(ctx, "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "user_1", u.ID)

	_, err = repo.FindByEmail(ctx, "missing@b.co")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateErrorLeavesCollectionUnchanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := kv.NewOrderRepo(kvstore.NewMemory())

	require.NoError(t, repo.Update(ctx, func(orders []domain.Order) ([]domain.Order, error) {
		return append(orders, domain.Order{ID: "INV-20260001", Status: domain.OrderStatusPending}), nil
	}))

	err := repo.Update(ctx, func(orders []domain.Order) ([]domain.Order, error) {
		return nil, domain.ErrNotFound
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "INV-20260001", orders[0].ID)
}
