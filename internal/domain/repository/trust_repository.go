package repository

import (
	"context"

	"fetan/internal/domain/entity"
)

type TrustRepository interface {
	CreateReport(ctx context.Context, report *entity.Report) error
	CreateVerificationRequest(ctx context.Context, request *entity.VerificationRequest) error
	// LatestVerification returns the most recent request for the user, or
	// NotFound when none exists.
	LatestVerification(ctx context.Context, userID string) (*entity.VerificationRequest, error)
}
