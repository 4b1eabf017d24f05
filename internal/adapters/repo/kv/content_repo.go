package kv

import (
	"context"

	"github.com/intechds/storefront/internal/domain"
)

// The three content documents share the same pattern: read seeds the
// default, admin save overwrites wholesale.

type SettingsRepo struct {
	c collection[domain.SiteSettings]
}

func NewSettingsRepo(store domain.KVStore) *SettingsRepo {
	return &SettingsRepo{c: collection[domain.SiteSettings]{store: store, key: "settings.json", seed: domain.DefaultSettings}}
}

func (r *SettingsRepo) Get(ctx context.Context) (domain.SiteSettings, error) {
	return r.c.load(ctx)
}

func (r *SettingsRepo) Save(ctx context.Context, s domain.SiteSettings) error {
	return r.c.save(ctx, s)
}

type AboutRepo struct {
	c collection[domain.AboutData]
}

func NewAboutRepo(store domain.KVStore) *AboutRepo {
	return &AboutRepo{c: collection[domain.AboutData]{store: store, key: "about.json", seed: domain.DefaultAbout}}
}

func (r *AboutRepo) Get(ctx context.Context) (domain.AboutData, error) {
	return r.c.load(ctx)
}

func (r *AboutRepo) Save(ctx context.Context, a domain.AboutData) error {
	return r.c.save(ctx, a)
}

type ServicesRepo struct {
	c collection[[]domain.ServiceItem]
}

func NewServicesRepo(store domain.KVStore) *ServicesRepo {
	return &ServicesRepo{c: collection[[]domain.ServiceItem]{store: store, key: "services.json", seed: domain.DefaultServices}}
}

func (r *ServicesRepo) List(ctx context.Context) ([]domain.ServiceItem, error) {
	return r.c.load(ctx)
}

func (r *ServicesRepo) Save(ctx context.Context, all []domain.ServiceItem) error {
	return r.c.save(ctx, all)
}
