package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "fetan/internal/adapter/repository"
	"fetan/internal/domain/entity"
	"fetan/internal/infrastructure/localstore"
	apperrors "fetan/pkg/errors"
)

func newUserFixture(t *testing.T) (*UserUseCase, *localstore.Store) {
	t.Helper()
	store := newTestStore(t)
	uc := NewUserUseCase(
		adapterrepo.NewLocalUserRepository(store),
		adapterrepo.NewLocalReviewRepository(),
	)
	return uc, store
}

func TestGetUserByIDFallsBackToSeedProviders(t *testing.T) {
	uc, _ := newUserFixture(t)
	ctx := context.Background()

	provider, err := uc.GetUserByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Nigat Geletu", provider.Name)
	assert.Equal(t, "Plumbing", provider.Category)

	_, err = uc.GetUserByID(ctx, "missing")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestGetReviewsForSeedProvider(t *testing.T) {
	uc, _ := newUserFixture(t)

	reviews, err := uc.GetReviews(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Alemu T.", reviews[0].ReviewerName)

	none, err := uc.GetReviews(context.Background(), "p5")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateUserBio(t *testing.T) {
	uc, store := newUserFixture(t)
	ctx := context.Background()

	userRepo := adapterrepo.NewLocalUserRepository(store)
	require.NoError(t, userRepo.Create(ctx, testRegisteredProvider("u9", "Installation")))

	require.NoError(t, uc.UpdateUserBio(ctx, "u9", "New bio text"))

	got, err := uc.GetUserByID(ctx, "u9")
	require.NoError(t, err)
	assert.Equal(t, "New bio text", got.Bio)

	// Seed providers are reference data without a stored profile to edit.
	err = uc.UpdateUserBio(ctx, "p1", "should fail")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestListProvidersMergesRegisteredAndSeed(t *testing.T) {
	uc, store := newUserFixture(t)
	ctx := context.Background()

	userRepo := adapterrepo.NewLocalUserRepository(store)
	require.NoError(t, userRepo.Create(ctx, testRegisteredProvider("u9", "Plumbing")))

	all, err := uc.ListProviders(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 6) // 1 registered + 5 seeded

	plumbers, err := uc.ListProviders(ctx, "Plumbing")
	require.NoError(t, err)
	assert.Len(t, plumbers, 2) // u9 and p1

	_, err = uc.ListProviders(ctx, "Astrology")
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}

func testRegisteredProvider(id, category string) *entity.User {
	return &entity.User{
		ID:       id,
		Name:     "Registered Provider",
		Email:    id + "@example.com",
		Role:     entity.RoleProvider,
		Category: category,
	}
}
