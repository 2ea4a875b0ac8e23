package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	apperrors "fetan/pkg/errors"
	"fetan/pkg/logger"
)

type TrustUseCase struct {
	trustRepo repository.TrustRepository
	// surfaceErrors distinguishes the strategies: the remote backend
	// reports insert failures to the caller, the local fallback swallows
	// them and logs.
	surfaceErrors bool
}

func NewTrustUseCase(trustRepo repository.TrustRepository, surfaceErrors bool) *TrustUseCase {
	return &TrustUseCase{trustRepo: trustRepo, surfaceErrors: surfaceErrors}
}

type SubmitReportInput struct {
	ReporterID  string
	ReportedID  string
	Reason      string
	Description string
}

// SubmitReport is fire-and-forget on the local strategy: it must never
// block the reporter's primary flow.
func (uc *TrustUseCase) SubmitReport(ctx context.Context, input SubmitReportInput) error {
	if !isReportReason(input.Reason) {
		return apperrors.Validation("Unknown report reason", nil)
	}

	report := &entity.Report{
		ID:          uuid.NewString(),
		ReporterID:  input.ReporterID,
		ReportedID:  input.ReportedID,
		Reason:      input.Reason,
		Description: input.Description,
		Status:      entity.ReportOpen,
		CreatedAt:   time.Now(),
	}

	if err := uc.trustRepo.CreateReport(ctx, report); err != nil {
		if uc.surfaceErrors {
			return err
		}
		logger.Warn("report submission failed (swallowed): %v", err)
	}
	return nil
}

func (uc *TrustUseCase) RequestVerification(ctx context.Context, userID, documentType string) error {
	if !isDocumentType(documentType) {
		return apperrors.Validation("Unknown document type", nil)
	}

	request := &entity.VerificationRequest{
		ID:           uuid.NewString(),
		UserID:       userID,
		DocumentType: documentType,
		Status:       entity.VerificationPending,
		CreatedAt:    time.Now(),
	}

	if err := uc.trustRepo.CreateVerificationRequest(ctx, request); err != nil {
		if uc.surfaceErrors {
			return err
		}
		logger.Warn("verification request failed (swallowed): %v", err)
	}
	return nil
}

// GetVerificationStatus answers with the most recent request's status,
// defaulting to NONE on absence or error.
func (uc *TrustUseCase) GetVerificationStatus(ctx context.Context, userID string) string {
	latest, err := uc.trustRepo.LatestVerification(ctx, userID)
	if err != nil {
		if !apperrors.Is(err, "NOT_FOUND") {
			logger.Warn("verification status lookup failed: %v", err)
		}
		return entity.VerificationNone
	}
	return latest.Status
}

func isReportReason(reason string) bool {
	for _, r := range entity.ReportReasons {
		if r == reason {
			return true
		}
	}
	return false
}

func isDocumentType(documentType string) bool {
	for _, d := range entity.DocumentTypes {
		if d == documentType {
			return true
		}
	}
	return false
}
