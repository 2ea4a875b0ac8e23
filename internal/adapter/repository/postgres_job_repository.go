package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	apperrors "fetan/pkg/errors"
)

type postgresJobRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresJobRepository(pool *pgxpool.Pool) repository.JobRepository {
	return &postgresJobRepository{pool: pool}
}

const jobColumns = `id, title, description, status, date, customer_id,
	customer_name, COALESCE(provider_id, ''), COALESCE(provider_name, ''),
	amount, payment_status, payment_method, transaction_id`

func (r *postgresJobRepository) Create(ctx context.Context, job *entity.Job) error {
	const query = `
		INSERT INTO jobs (id, title, description, status, date, customer_id,
			customer_name, amount, payment_status, payment_method, transaction_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`

	_, err := r.pool.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Status, job.Date,
		job.CustomerID, job.CustomerName, job.Amount,
		job.PaymentStatus, job.PaymentMethod, job.TransactionID,
	)
	if err != nil {
		return apperrors.RemoteBackend(err)
	}
	return nil
}

func (r *postgresJobRepository) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id=$1`, id)
	job, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("Job", err)
	}
	if err != nil {
		return nil, apperrors.RemoteBackend(err)
	}
	return job, nil
}

func (r *postgresJobRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs WHERE customer_id=$1 ORDER BY created_at DESC`, customerID)
}

func (r *postgresJobRepository) ListByProvider(ctx context.Context, providerID string) ([]*entity.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs WHERE provider_id=$1 ORDER BY created_at DESC`, providerID)
}

func (r *postgresJobRepository) ListAvailable(ctx context.Context) ([]*entity.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs
		WHERE status='PENDING' AND provider_id IS NULL
		ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// Accept is a compare-and-swap: only an unassigned PENDING job is updated,
// so a lost acceptance race surfaces as a conflict instead of a silent
// overwrite.
func (r *postgresJobRepository) Accept(ctx context.Context, jobID, providerID, providerName string) error {
	const query = `
		UPDATE jobs SET status='IN_PROGRESS', provider_id=$1, provider_name=$2
		WHERE id=$3 AND status='PENDING' AND provider_id IS NULL`

	cmd, err := r.pool.Exec(ctx, query, providerID, providerName, jobID)
	if err != nil {
		return apperrors.RemoteBackend(err)
	}
	if cmd.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, jobID); err != nil {
			return err
		}
		return apperrors.JobUnavailable()
	}
	return nil
}

func (r *postgresJobRepository) Complete(ctx context.Context, jobID string) error {
	const query = `UPDATE jobs SET status='COMPLETED' WHERE id=$1 AND status='IN_PROGRESS'`

	cmd, err := r.pool.Exec(ctx, query, jobID)
	if err != nil {
		return apperrors.RemoteBackend(err)
	}
	if cmd.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, jobID); err != nil {
			return err
		}
		return apperrors.InvalidTransition("Only a job in progress can be completed")
	}
	return nil
}

func (r *postgresJobRepository) list(ctx context.Context, query string, args ...interface{}) ([]*entity.Job, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.RemoteBackend(err)
	}
	defer rows.Close()

	var jobs []*entity.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, apperrors.RemoteBackend(err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func scanJob(row pgx.Row) (*entity.Job, error) {
	var job entity.Job
	err := row.Scan(
		&job.ID, &job.Title, &job.Description, &job.Status, &job.Date,
		&job.CustomerID, &job.CustomerName, &job.ProviderID, &job.ProviderName,
		&job.Amount, &job.PaymentStatus, &job.PaymentMethod, &job.TransactionID,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
