package repository

import (
	"context"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	"fetan/internal/infrastructure/localstore"
	apperrors "fetan/pkg/errors"
)

const (
	reportsNamespace      = "reports"
	verificationNamespace = "verification_requests"
)

type localTrustRepository struct {
	store *localstore.Store
}

func NewLocalTrustRepository(store *localstore.Store) repository.TrustRepository {
	return &localTrustRepository{store: store}
}

func (r *localTrustRepository) CreateReport(ctx context.Context, report *entity.Report) error {
	var reports []*entity.Report
	return r.store.Mutate(reportsNamespace, &reports, func() error {
		reports = append(reports, report)
		return nil
	})
}

func (r *localTrustRepository) CreateVerificationRequest(ctx context.Context, request *entity.VerificationRequest) error {
	var requests []*entity.VerificationRequest
	return r.store.Mutate(verificationNamespace, &requests, func() error {
		requests = append(requests, request)
		return nil
	})
}

func (r *localTrustRepository) LatestVerification(ctx context.Context, userID string) (*entity.VerificationRequest, error) {
	var requests []*entity.VerificationRequest
	if err := r.store.Get(verificationNamespace, &requests); err != nil {
		return nil, err
	}

	var latest *entity.VerificationRequest
	for _, req := range requests {
		if req.UserID != userID {
			continue
		}
		if latest == nil || req.CreatedAt.After(latest.CreatedAt) {
			latest = req
		}
	}
	if latest == nil {
		return nil, apperrors.NotFound("Verification request", nil)
	}
	return latest, nil
}
