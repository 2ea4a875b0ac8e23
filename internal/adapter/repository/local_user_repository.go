package repository

import (
	"context"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	"fetan/internal/infrastructure/localstore"
	apperrors "fetan/pkg/errors"
)

const (
	usersNamespace       = "users"
	credentialsNamespace = "credentials"
)

type localUserRepository struct {
	store *localstore.Store
}

func NewLocalUserRepository(store *localstore.Store) repository.UserRepository {
	return &localUserRepository{store: store}
}

func (r *localUserRepository) Create(ctx context.Context, user *entity.User) error {
	var users []*entity.User
	return r.store.Mutate(usersNamespace, &users, func() error {
		for _, u := range users {
			if u.Email == user.Email {
				return apperrors.DuplicateAccount(nil)
			}
		}
		users = append(users, user)
		return nil
	})
}

func (r *localUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var users []*entity.User
	if err := r.store.Get(usersNamespace, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("User", nil)
}

func (r *localUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var users []*entity.User
	if err := r.store.Get(usersNamespace, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("User", nil)
}

func (r *localUserRepository) Update(ctx context.Context, user *entity.User) error {
	var users []*entity.User
	return r.store.Mutate(usersNamespace, &users, func() error {
		for i, u := range users {
			if u.ID == user.ID {
				users[i] = user
				return nil
			}
		}
		return apperrors.NotFound("User", nil)
	})
}

func (r *localUserRepository) ListProviders(ctx context.Context, category string) ([]*entity.User, error) {
	var users []*entity.User
	if err := r.store.Get(usersNamespace, &users); err != nil {
		return nil, err
	}

	var providers []*entity.User
	for _, u := range users {
		if !u.IsProvider() {
			continue
		}
		if category != "" && u.Category != category {
			continue
		}
		providers = append(providers, u)
	}
	return providers, nil
}

type localCredentialRepository struct {
	store *localstore.Store
}

func NewLocalCredentialRepository(store *localstore.Store) repository.CredentialRepository {
	return &localCredentialRepository{store: store}
}

func (r *localCredentialRepository) Set(ctx context.Context, email, passwordHash string) error {
	creds := map[string]string{}
	return r.store.Mutate(credentialsNamespace, &creds, func() error {
		creds[email] = passwordHash
		return nil
	})
}

func (r *localCredentialRepository) GetByEmail(ctx context.Context, email string) (string, error) {
	creds := map[string]string{}
	if err := r.store.Get(credentialsNamespace, &creds); err != nil {
		return "", err
	}
	hash, ok := creds[email]
	if !ok {
		return "", apperrors.NotFound("Credentials", nil)
	}
	return hash, nil
}
