package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "fetan/internal/adapter/repository"
	"fetan/internal/domain/entity"
)

func newJobUseCase(t *testing.T) *JobUseCase {
	t.Helper()
	store := newTestStore(t)
	require.NoError(t, adapterrepo.SeedLocalJobs(store))
	return NewJobUseCase(adapterrepo.NewLocalJobRepository(store))
}

func TestCreateJobDefaults(t *testing.T) {
	uc := newJobUseCase(t)
	ctx := context.Background()

	job, err := uc.CreateJob(ctx, CreateJobInput{
		Title:        "Paint Fence",
		Description:  "Front fence needs a fresh coat.",
		Amount:       600,
		CustomerID:   "u2",
		CustomerName: "Sara K.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.JobPending, job.Status)
	assert.Equal(t, entity.PaymentPending, job.PaymentStatus)
	assert.NotEmpty(t, job.ID)
	assert.NotEmpty(t, job.Date)

	mine, err := uc.GetJobsForUser(ctx, "u2", entity.RoleHomeowner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, job.ID, mine[0].ID)
}

func TestCreateJobKeepsPrepaidStatus(t *testing.T) {
	uc := newJobUseCase(t)

	job, err := uc.CreateJob(context.Background(), CreateJobInput{
		Title:         "Install Shelves",
		Amount:        450,
		CustomerID:    "u2",
		CustomerName:  "Sara K.",
		PaymentStatus: entity.PaymentPaid,
		PaymentMethod: "telebirr",
		TransactionID: "TXN-123456",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, job.PaymentStatus)
	assert.Equal(t, "TXN-123456", job.TransactionID)
}

func TestGetJobsForUserByRole(t *testing.T) {
	uc := newJobUseCase(t)
	ctx := context.Background()

	asHomeowner, err := uc.GetJobsForUser(ctx, "u1", entity.RoleHomeowner)
	require.NoError(t, err)
	assert.Len(t, asHomeowner, 3)

	asProvider, err := uc.GetJobsForUser(ctx, "p2", entity.RoleProvider)
	require.NoError(t, err)
	require.Len(t, asProvider, 1)
	assert.Equal(t, "j2", asProvider[0].ID)
}

func TestAvailableJobsReadIsIdempotent(t *testing.T) {
	uc := newJobUseCase(t)
	ctx := context.Background()

	first, err := uc.GetAvailableJobs(ctx)
	require.NoError(t, err)
	second, err := uc.GetAvailableJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second))
}

func TestFilterJobsByStatus(t *testing.T) {
	jobs := []*entity.Job{
		{ID: "a", Status: entity.JobPending, Date: "2025-06-01", Amount: 100},
		{ID: "b", Status: entity.JobCompleted, Date: "2025-06-02", Amount: 200},
		{ID: "c", Status: entity.JobPending, Date: "2025-06-03", Amount: 300},
	}

	pending := FilterJobs(jobs, JobFilter{Status: entity.JobPending})
	require.Len(t, pending, 2)

	all := FilterJobs(jobs, JobFilter{Status: "ALL"})
	assert.Len(t, all, 3)
}

func TestFilterJobsByDateRange(t *testing.T) {
	jobs := []*entity.Job{
		{ID: "a", Date: "2025-05-15"},
		{ID: "b", Date: "2025-06-01"},
		{ID: "c", Date: "2025-06-20"},
	}

	out := FilterJobs(jobs, JobFilter{FromDate: "2025-06-01", ToDate: "2025-06-15"})
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
}

func TestFilterJobsSorting(t *testing.T) {
	jobs := []*entity.Job{
		{ID: "cheap", Date: "2025-06-03", Amount: 100},
		{ID: "pricey", Date: "2025-06-01", Amount: 900},
		{ID: "middle", Date: "2025-06-02", Amount: 500},
	}

	byAmountDesc := FilterJobs(jobs, JobFilter{SortBy: SortByAmount, SortDesc: true})
	assert.Equal(t, "pricey", byAmountDesc[0].ID)
	assert.Equal(t, "cheap", byAmountDesc[2].ID)

	byDateAsc := FilterJobs(jobs, JobFilter{SortBy: SortByDate})
	assert.Equal(t, "pricey", byDateAsc[0].ID)
	assert.Equal(t, "cheap", byDateAsc[2].ID)
}
