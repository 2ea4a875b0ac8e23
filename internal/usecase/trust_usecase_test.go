package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "fetan/internal/adapter/repository"
	"fetan/internal/domain/entity"
	apperrors "fetan/pkg/errors"
)

func newTrustUseCase(t *testing.T, surfaceErrors bool) *TrustUseCase {
	t.Helper()
	return NewTrustUseCase(adapterrepo.NewLocalTrustRepository(newTestStore(t)), surfaceErrors)
}

func TestSubmitReportValidatesReason(t *testing.T) {
	uc := newTrustUseCase(t, false)

	err := uc.SubmitReport(context.Background(), SubmitReportInput{
		ReporterID: "u1",
		ReportedID: "p4",
		Reason:     "Made-up Reason",
	})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}

func TestSubmitReportResolves(t *testing.T) {
	uc := newTrustUseCase(t, false)

	err := uc.SubmitReport(context.Background(), SubmitReportInput{
		ReporterID:  "u1",
		ReportedID:  "p4",
		Reason:      "Poor Service Quality",
		Description: "Left the job unfinished",
	})
	assert.NoError(t, err)
}

func TestVerificationLifecycle(t *testing.T) {
	uc := newTrustUseCase(t, false)
	ctx := context.Background()

	assert.Equal(t, entity.VerificationNone, uc.GetVerificationStatus(ctx, "u1"))

	err := uc.RequestVerification(ctx, "u1", "bogus_document")
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	require.NoError(t, uc.RequestVerification(ctx, "u1", "national_id"))
	assert.Equal(t, entity.VerificationPending, uc.GetVerificationStatus(ctx, "u1"))

	// Other users are unaffected.
	assert.Equal(t, entity.VerificationNone, uc.GetVerificationStatus(ctx, "u2"))
}
