package domain

import (
	"context"
	"encoding/json"
	"io"
)

// KVStore is the remote document store: whole JSON values under opaque
// string keys. Get reports ok=false when the key is absent.
type KVStore interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value any) error
}

// Every mutation below is a whole-collection read-modify-write. Update runs
// its closure under the repository's per-collection lock so concurrent
// writers in the same process are serialized; the remote store itself offers
// no conditional writes, so separate processes still race.

type ProductRepo interface {
	List(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, all []Product) error
	Update(ctx context.Context, fn func([]Product) ([]Product, error)) error
}

type OrderRepo interface {
	List(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, fn func([]Order) ([]Order, error)) error
}

type QuoteRepo interface {
	List(ctx context.Context) ([]QuoteRequest, error)
	Update(ctx context.Context, fn func([]QuoteRequest) ([]QuoteRequest, error)) error
}

type UserRepo interface {
	List(ctx context.Context) ([]User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, fn func([]User) ([]User, error)) error
}

type ReviewRepo interface {
	List(ctx context.Context) ([]Review, error)
	Update(ctx context.Context, fn func([]Review) ([]Review, error)) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (SiteSettings, error)
	Save(ctx context.Context, s SiteSettings) error
}

type AboutRepo interface {
	Get(ctx context.Context) (AboutData, error)
	Save(ctx context.Context, a AboutData) error
}

type ServicesRepo interface {
	List(ctx context.Context) ([]ServiceItem, error)
	Save(ctx context.Context, all []ServiceItem) error
}

// FileStorage persists an uploaded blob and returns its public URL.
type FileStorage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
