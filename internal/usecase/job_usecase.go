package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
)

type JobUseCase struct {
	jobRepo repository.JobRepository
}

func NewJobUseCase(jobRepo repository.JobRepository) *JobUseCase {
	return &JobUseCase{jobRepo: jobRepo}
}

type CreateJobInput struct {
	Title         string
	Description   string
	Amount        float64
	CustomerID    string
	CustomerName  string
	PaymentStatus string
	PaymentMethod string
	TransactionID string
}

// CreateJob posts a new PENDING job dated today. Amount positivity is the
// caller's input contract, enforced at the HTTP boundary.
func (uc *JobUseCase) CreateJob(ctx context.Context, input CreateJobInput) (*entity.Job, error) {
	job := &entity.Job{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Description:   input.Description,
		Status:        entity.JobPending,
		Date:          time.Now().Format("2006-01-02"),
		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		Amount:        input.Amount,
		PaymentStatus: input.PaymentStatus,
		PaymentMethod: input.PaymentMethod,
		TransactionID: input.TransactionID,
	}
	if job.PaymentStatus == "" {
		job.PaymentStatus = entity.PaymentPending
	}

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// GetJobsForUser returns the jobs a user owns: posted jobs for a
// homeowner, assigned jobs for a provider.
func (uc *JobUseCase) GetJobsForUser(ctx context.Context, userID, role string) ([]*entity.Job, error) {
	if role == entity.RoleProvider {
		return uc.jobRepo.ListByProvider(ctx, userID)
	}
	return uc.jobRepo.ListByCustomer(ctx, userID)
}

func (uc *JobUseCase) GetAvailableJobs(ctx context.Context) ([]*entity.Job, error) {
	return uc.jobRepo.ListAvailable(ctx)
}

func (uc *JobUseCase) AcceptJob(ctx context.Context, jobID, providerID, providerName string) error {
	return uc.jobRepo.Accept(ctx, jobID, providerID, providerName)
}

func (uc *JobUseCase) CompleteJob(ctx context.Context, jobID string) error {
	return uc.jobRepo.Complete(ctx, jobID)
}

const (
	SortByDate   = "date"
	SortByAmount = "amount"
)

type JobFilter struct {
	Status   string // ALL or a job status
	FromDate string // inclusive ISO date
	ToDate   string // inclusive ISO date
	SortBy   string // date | amount
	SortDesc bool
}

// FilterJobs applies dashboard filtering and sorting. Date comparison is
// lexical over ISO dates; sorting is stable so ties keep their order.
func FilterJobs(jobs []*entity.Job, filter JobFilter) []*entity.Job {
	out := make([]*entity.Job, 0, len(jobs))
	for _, job := range jobs {
		if filter.Status != "" && filter.Status != "ALL" && job.Status != filter.Status {
			continue
		}
		if filter.FromDate != "" && job.Date < filter.FromDate {
			continue
		}
		if filter.ToDate != "" && job.Date > filter.ToDate {
			continue
		}
		out = append(out, job)
	}

	switch filter.SortBy {
	case SortByAmount:
		sort.SliceStable(out, func(i, k int) bool {
			if filter.SortDesc {
				return out[i].Amount > out[k].Amount
			}
			return out[i].Amount < out[k].Amount
		})
	case SortByDate:
		sort.SliceStable(out, func(i, k int) bool {
			if filter.SortDesc {
				return out[i].Date > out[k].Date
			}
			return out[i].Date < out[k].Date
		})
	}

	return out
}
