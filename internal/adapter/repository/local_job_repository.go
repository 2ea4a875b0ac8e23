package repository

import (
	"context"
	"sort"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	"fetan/internal/infrastructure/localstore"
	"fetan/internal/seed"
	apperrors "fetan/pkg/errors"
)

const jobsNamespace = "jobs"

type localJobRepository struct {
	store *localstore.Store
}

func NewLocalJobRepository(store *localstore.Store) repository.JobRepository {
	return &localJobRepository{store: store}
}

// SeedLocalJobs loads the demo job history on first run. A namespace that
// already holds data is left alone.
func SeedLocalJobs(store *localstore.Store) error {
	var jobs []*entity.Job
	return store.Mutate(jobsNamespace, &jobs, func() error {
		if len(jobs) > 0 {
			return nil
		}
		jobs = seed.Jobs()
		return nil
	})
}

func (r *localJobRepository) Create(ctx context.Context, job *entity.Job) error {
	var jobs []*entity.Job
	return r.store.Mutate(jobsNamespace, &jobs, func() error {
		jobs = append([]*entity.Job{job}, jobs...)
		return nil
	})
}

func (r *localJobRepository) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	var jobs []*entity.Job
	if err := r.store.Get(jobsNamespace, &jobs); err != nil {
		return nil, err
	}
	for _, j := range jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, apperrors.NotFound("Job", nil)
}

func (r *localJobRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Job, error) {
	return r.list(func(j *entity.Job) bool { return j.CustomerID == customerID })
}

func (r *localJobRepository) ListByProvider(ctx context.Context, providerID string) ([]*entity.Job, error) {
	return r.list(func(j *entity.Job) bool { return j.ProviderID == providerID })
}

func (r *localJobRepository) ListAvailable(ctx context.Context) ([]*entity.Job, error) {
	jobs, err := r.list(func(j *entity.Job) bool { return j.Available() })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(jobs, func(i, k int) bool {
		return jobs[i].Date > jobs[k].Date
	})
	return jobs, nil
}

func (r *localJobRepository) Accept(ctx context.Context, jobID, providerID, providerName string) error {
	var jobs []*entity.Job
	return r.store.Mutate(jobsNamespace, &jobs, func() error {
		for _, j := range jobs {
			if j.ID == jobID {
				return j.Accept(providerID, providerName)
			}
		}
		return apperrors.NotFound("Job", nil)
	})
}

func (r *localJobRepository) Complete(ctx context.Context, jobID string) error {
	var jobs []*entity.Job
	return r.store.Mutate(jobsNamespace, &jobs, func() error {
		for _, j := range jobs {
			if j.ID == jobID {
				return j.Complete()
			}
		}
		return apperrors.NotFound("Job", nil)
	})
}

func (r *localJobRepository) list(match func(*entity.Job) bool) ([]*entity.Job, error) {
	var jobs []*entity.Job
	if err := r.store.Get(jobsNamespace, &jobs); err != nil {
		return nil, err
	}
	var out []*entity.Job
	for _, j := range jobs {
		if match(j) {
			out = append(out, j)
		}
	}
	return out, nil
}
