package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fetan/internal/domain/entity"
	apperrors "fetan/pkg/errors"
)

func testUser(id, email, role string) *entity.User {
	now := time.Now()
	return &entity.User{
		ID:        id,
		Name:      "Test User",
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserCreateAndLookup(t *testing.T) {
	repo := NewLocalUserRepository(newTestStore(t))
	ctx := context.Background()

	user := testUser("u1", "abdulfetah@example.com", entity.RoleHomeowner)
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "abdulfetah@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	repo := NewLocalUserRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("u1", "same@example.com", entity.RoleHomeowner)))
	err := repo.Create(ctx, testUser("u2", "same@example.com", entity.RoleHomeowner))
	assert.True(t, apperrors.Is(err, "DUPLICATE_ACCOUNT"))
}

func TestUserUpdate(t *testing.T) {
	repo := NewLocalUserRepository(newTestStore(t))
	ctx := context.Background()

	user := testUser("u1", "user@example.com", entity.RoleProvider)
	require.NoError(t, repo.Create(ctx, user))

	user.Bio = "Updated bio"
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Updated bio", got.Bio)

	err = repo.Update(ctx, testUser("ghost", "ghost@example.com", entity.RoleHomeowner))
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestListProvidersByCategory(t *testing.T) {
	repo := NewLocalUserRepository(newTestStore(t))
	ctx := context.Background()

	plumber := testUser("u1", "plumber@example.com", entity.RoleProvider)
	plumber.Category = "Plumbing"
	electrician := testUser("u2", "electric@example.com", entity.RoleProvider)
	electrician.Category = "Electrical"
	homeowner := testUser("u3", "owner@example.com", entity.RoleHomeowner)

	for _, u := range []*entity.User{plumber, electrician, homeowner} {
		require.NoError(t, repo.Create(ctx, u))
	}

	all, err := repo.ListProviders(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	plumbers, err := repo.ListProviders(ctx, "Plumbing")
	require.NoError(t, err)
	require.Len(t, plumbers, 1)
	assert.Equal(t, "u1", plumbers[0].ID)
}

func TestCredentialSetAndGet(t *testing.T) {
	repo := NewLocalCredentialRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "user@example.com", "hash-1"))

	hash, err := repo.GetByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash-1", hash)

	// Set overwrites, supporting password changes.
	require.NoError(t, repo.Set(ctx, "user@example.com", "hash-2"))
	hash, err = repo.GetByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash-2", hash)

	_, err = repo.GetByEmail(ctx, "unknown@example.com")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}
