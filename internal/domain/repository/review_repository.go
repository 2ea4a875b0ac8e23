package repository

import (
	"context"

	"fetan/internal/domain/entity"
)

type ReviewRepository interface {
	ListByProvider(ctx context.Context, providerID string) ([]*entity.Review, error)
}
