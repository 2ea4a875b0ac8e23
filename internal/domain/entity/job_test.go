package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "fetan/pkg/errors"
)

func TestJobAccept(t *testing.T) {
	job := &Job{ID: "j1", Status: JobPending}

	require.NoError(t, job.Accept("p1", "Nigat Geletu"))
	assert.Equal(t, JobInProgress, job.Status)
	assert.Equal(t, "p1", job.ProviderID)
	assert.Equal(t, "Nigat Geletu", job.ProviderName)
}

func TestJobAcceptFirstWins(t *testing.T) {
	job := &Job{ID: "j1", Status: JobPending}
	require.NoError(t, job.Accept("p1", "Nigat Geletu"))

	err := job.Accept("p2", "Abel Bekele")
	assert.True(t, apperrors.Is(err, "JOB_UNAVAILABLE"))
	assert.Equal(t, "p1", job.ProviderID)
}

func TestJobAcceptRejectsNonPending(t *testing.T) {
	job := &Job{ID: "j1", Status: JobCompleted}
	err := job.Accept("p1", "Nigat Geletu")
	assert.True(t, apperrors.Is(err, "JOB_UNAVAILABLE"))
}

func TestJobComplete(t *testing.T) {
	job := &Job{ID: "j1", Status: JobInProgress, ProviderID: "p1"}
	require.NoError(t, job.Complete())
	assert.Equal(t, JobCompleted, job.Status)
}

func TestJobCompleteRequiresInProgress(t *testing.T) {
	for _, status := range []string{JobPending, JobCompleted} {
		job := &Job{ID: "j1", Status: status}
		err := job.Complete()
		assert.True(t, apperrors.Is(err, "INVALID_TRANSITION"), "status %s", status)
		assert.Equal(t, status, job.Status)
	}
}

func TestJobAvailable(t *testing.T) {
	assert.True(t, (&Job{Status: JobPending}).Available())
	assert.False(t, (&Job{Status: JobPending, ProviderID: "p1"}).Available())
	assert.False(t, (&Job{Status: JobInProgress}).Available())
	assert.False(t, (&Job{Status: JobCompleted}).Available())
}
