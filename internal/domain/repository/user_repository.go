package repository

import (
	"context"

	"fetan/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListProviders(ctx context.Context, category string) ([]*entity.User, error)
}

// CredentialRepository stores one-way password hashes keyed by email.
// Plaintext is never persisted.
type CredentialRepository interface {
	Set(ctx context.Context, email, passwordHash string) error
	GetByEmail(ctx context.Context, email string) (string, error)
}
