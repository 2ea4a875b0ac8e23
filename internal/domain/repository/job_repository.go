package repository

import (
	"context"

	"fetan/internal/domain/entity"
)

type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id string) (*entity.Job, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Job, error)
	ListByProvider(ctx context.Context, providerID string) ([]*entity.Job, error)
	// ListAvailable returns unassigned PENDING jobs, newest first.
	ListAvailable(ctx context.Context) ([]*entity.Job, error)

	// Accept binds a provider to an unassigned PENDING job. First
	// acceptance wins; a lost race yields JOB_UNAVAILABLE.
	Accept(ctx context.Context, jobID, providerID, providerName string) error
	// Complete moves an IN_PROGRESS job to COMPLETED; any other state
	// yields INVALID_TRANSITION.
	Complete(ctx context.Context, jobID string) error
}
