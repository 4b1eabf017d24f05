package kv

import (
	"context"
	"strings"

	"github.com/intechds/storefront/internal/domain"
)

type UserRepo struct {
	c collection[[]domain.User]
}

func NewUserRepo(store domain.KVStore) *UserRepo {
	return &UserRepo{c: collection[[]domain.User]{store: store, key: "users.json", seed: func() []domain.User { return []domain.User{} }}}
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	return r.c.load(ctx)
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepo) Update(ctx context.Context, fn func([]domain.User) ([]domain.User, error)) error {
	return r.c.update(ctx, fn)
}
