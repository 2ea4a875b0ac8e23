package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fetan/internal/domain/entity"
	"fetan/internal/infrastructure/localstore"
	apperrors "fetan/pkg/errors"
)

func newTestStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.New(t.TempDir(), 0)
	require.NoError(t, err)
	return store
}

func TestSeedLocalJobsRunsOnce(t *testing.T) {
	store := newTestStore(t)
	repo := NewLocalJobRepository(store)
	ctx := context.Background()

	require.NoError(t, SeedLocalJobs(store))

	job, err := repo.GetByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, "Fix Leaking Sink", job.Title)

	// Seeding again must not duplicate or reset existing data.
	require.NoError(t, repo.Create(ctx, &entity.Job{ID: "j4", Title: "New", Status: entity.JobPending}))
	require.NoError(t, SeedLocalJobs(store))

	_, err = repo.GetByID(ctx, "j4")
	assert.NoError(t, err)
}

func TestAcceptRemovesJobFromAvailableListing(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, SeedLocalJobs(store))
	repo := NewLocalJobRepository(store)
	ctx := context.Background()

	available, err := repo.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "j3", available[0].ID)

	require.NoError(t, repo.Accept(ctx, "j3", "p3", "Mahilet Dinku"))

	available, err = repo.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Empty(t, available)

	job, err := repo.GetByID(ctx, "j3")
	require.NoError(t, err)
	assert.Equal(t, entity.JobInProgress, job.Status)
	assert.Equal(t, "p3", job.ProviderID)
}

func TestAcceptConflictLosesToFirstProvider(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, SeedLocalJobs(store))
	repo := NewLocalJobRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Accept(ctx, "j3", "p3", "Mahilet Dinku"))

	err := repo.Accept(ctx, "j3", "p4", "Imamudin Johar")
	assert.True(t, apperrors.Is(err, "JOB_UNAVAILABLE"))

	job, err := repo.GetByID(ctx, "j3")
	require.NoError(t, err)
	assert.Equal(t, "p3", job.ProviderID)
}

func TestCompleteGuardsLifecycle(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, SeedLocalJobs(store))
	repo := NewLocalJobRepository(store)
	ctx := context.Background()

	// j3 is still PENDING; completing it must be rejected.
	err := repo.Complete(ctx, "j3")
	assert.True(t, apperrors.Is(err, "INVALID_TRANSITION"))

	// j2 is IN_PROGRESS and completes normally.
	require.NoError(t, repo.Complete(ctx, "j2"))
	job, err := repo.GetByID(ctx, "j2")
	require.NoError(t, err)
	assert.Equal(t, entity.JobCompleted, job.Status)

	// A completed job never regresses or completes twice.
	err = repo.Complete(ctx, "j2")
	assert.True(t, apperrors.Is(err, "INVALID_TRANSITION"))
}

func TestListByOwnerAndProvider(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, SeedLocalJobs(store))
	repo := NewLocalJobRepository(store)
	ctx := context.Background()

	byCustomer, err := repo.ListByCustomer(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, byCustomer, 3)

	byProvider, err := repo.ListByProvider(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, byProvider, 1)
	assert.Equal(t, "j1", byProvider[0].ID)
}

func TestCreatePrependsNewJob(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, SeedLocalJobs(store))
	repo := NewLocalJobRepository(store)
	ctx := context.Background()

	job := &entity.Job{
		ID:         "j9",
		Title:      "Clean Compound",
		Status:     entity.JobPending,
		Date:       "2025-08-01",
		CustomerID: "u2",
		Amount:     800,
	}
	require.NoError(t, repo.Create(ctx, job))

	available, err := repo.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "j9", available[0].ID) // newest date first
}

func TestGetByIDNotFound(t *testing.T) {
	store := newTestStore(t)
	repo := NewLocalJobRepository(store)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}
