package usecase

import (
	"context"
	"time"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	"fetan/internal/seed"
	apperrors "fetan/pkg/errors"
)

type UserUseCase struct {
	userRepo   repository.UserRepository
	reviewRepo repository.ReviewRepository
}

func NewUserUseCase(userRepo repository.UserRepository, reviewRepo repository.ReviewRepository) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
	}
}

// GetUserByID checks registered accounts first, then the seeded reference
// provider set.
func (uc *UserUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err == nil {
		return user, nil
	}
	if !apperrors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	for _, provider := range seed.Providers() {
		if provider.ID == id {
			return provider, nil
		}
	}
	return nil, apperrors.NotFound("User", nil)
}

func (uc *UserUseCase) GetReviews(ctx context.Context, providerID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByProvider(ctx, providerID)
}

// UpdateUserBio mutates the stored profile in place; no history is kept.
func (uc *UserUseCase) UpdateUserBio(ctx context.Context, userID, bio string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperrors.NotFound("User", err)
	}

	user.Bio = bio
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

// ListProviders merges registered provider accounts with the seeded
// reference set, optionally filtered by category.
func (uc *UserUseCase) ListProviders(ctx context.Context, category string) ([]*entity.User, error) {
	if category != "" && !entity.IsServiceCategory(category) {
		return nil, apperrors.Validation("Unknown service category", nil)
	}

	providers, err := uc.userRepo.ListProviders(ctx, category)
	if err != nil {
		return nil, err
	}

	registered := make(map[string]bool, len(providers))
	for _, p := range providers {
		registered[p.ID] = true
	}
	for _, p := range seed.Providers() {
		if registered[p.ID] {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		providers = append(providers, p)
	}
	return providers, nil
}
