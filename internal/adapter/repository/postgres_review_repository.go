package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	apperrors "fetan/pkg/errors"
)

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) repository.ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

func (r *postgresReviewRepository) ListByProvider(ctx context.Context, providerID string) ([]*entity.Review, error) {
	const query = `
		SELECT id, provider_id, reviewer_name, rating, date, comment
		FROM reviews WHERE provider_id=$1
		ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, providerID)
	if err != nil {
		return nil, apperrors.RemoteBackend(err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		if err := rows.Scan(&review.ID, &review.ProviderID, &review.ReviewerName,
			&review.Rating, &review.Date, &review.Comment); err != nil {
			return nil, apperrors.RemoteBackend(err)
		}
		reviews = append(reviews, &review)
	}
	return reviews, rows.Err()
}
