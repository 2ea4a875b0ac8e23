package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	apperrors "fetan/pkg/errors"
)

type postgresTrustRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTrustRepository(pool *pgxpool.Pool) repository.TrustRepository {
	return &postgresTrustRepository{pool: pool}
}

func (r *postgresTrustRepository) CreateReport(ctx context.Context, report *entity.Report) error {
	const query = `
		INSERT INTO reports (id, reporter_id, reported_id, reason, description, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`

	_, err := r.pool.Exec(ctx, query,
		report.ID, report.ReporterID, report.ReportedID,
		report.Reason, report.Description, report.Status, report.CreatedAt,
	)
	if err != nil {
		return apperrors.RemoteBackend(err)
	}
	return nil
}

func (r *postgresTrustRepository) CreateVerificationRequest(ctx context.Context, request *entity.VerificationRequest) error {
	const query = `
		INSERT INTO verification_requests (id, user_id, document_type, status, created_at)
		VALUES ($1,$2,$3,$4,$5)`

	_, err := r.pool.Exec(ctx, query,
		request.ID, request.UserID, request.DocumentType,
		request.Status, request.CreatedAt,
	)
	if err != nil {
		return apperrors.RemoteBackend(err)
	}
	return nil
}

func (r *postgresTrustRepository) LatestVerification(ctx context.Context, userID string) (*entity.VerificationRequest, error) {
	const query = `
		SELECT id, user_id, document_type, status, created_at
		FROM verification_requests WHERE user_id=$1
		ORDER BY created_at DESC LIMIT 1`

	var req entity.VerificationRequest
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&req.ID, &req.UserID, &req.DocumentType, &req.Status, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("Verification request", err)
	}
	if err != nil {
		return nil, apperrors.RemoteBackend(err)
	}
	return &req, nil
}
