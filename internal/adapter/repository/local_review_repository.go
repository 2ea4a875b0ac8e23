package repository

import (
	"context"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	"fetan/internal/seed"
)

// localReviewRepository serves the seeded review set. Reviews have no
// write path in this client.
type localReviewRepository struct{}

func NewLocalReviewRepository() repository.ReviewRepository {
	return &localReviewRepository{}
}

func (r *localReviewRepository) ListByProvider(ctx context.Context, providerID string) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, review := range seed.Reviews() {
		if review.ProviderID == providerID {
			out = append(out, review)
		}
	}
	return out, nil
}
