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

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &postgresUserRepository{pool: pool}
}

const userColumns = `id, name, email, role, avatar, phone, category, rating,
	hourly_rate, bio, location, verified, review_count, experience,
	created_at, updated_at`

func (r *postgresUserRepository) Create(ctx context.Context, user *entity.User) error {
	const query = `
		INSERT INTO profiles (id, name, email, role, avatar, phone, category,
			rating, hourly_rate, bio, location, verified, review_count,
			experience, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`

	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.Role, user.Avatar, user.Phone,
		user.Category, user.Rating, user.HourlyRate, user.Bio, user.Location,
		user.Verified, user.ReviewCount, user.Experience,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return apperrors.RemoteBackend(err)
	}
	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM profiles WHERE id=$1`, id)
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM profiles WHERE email=$1`, email)
}

func (r *postgresUserRepository) Update(ctx context.Context, user *entity.User) error {
	const query = `
		UPDATE profiles SET name=$1, avatar=$2, phone=$3, category=$4,
			rating=$5, hourly_rate=$6, bio=$7, location=$8, verified=$9,
			review_count=$10, experience=$11, updated_at=NOW()
		WHERE id=$12`

	cmd, err := r.pool.Exec(ctx, query,
		user.Name, user.Avatar, user.Phone, user.Category, user.Rating,
		user.HourlyRate, user.Bio, user.Location, user.Verified,
		user.ReviewCount, user.Experience, user.ID,
	)
	if err != nil {
		return apperrors.RemoteBackend(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NotFound("User", nil)
	}
	return nil
}

func (r *postgresUserRepository) ListProviders(ctx context.Context, category string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM profiles WHERE role=$1`
	args := []interface{}{entity.RoleProvider}
	if category != "" {
		query += ` AND category=$2`
		args = append(args, category)
	}
	query += ` ORDER BY rating DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.RemoteBackend(err)
	}
	defer rows.Close()

	var providers []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.RemoteBackend(err)
		}
		providers = append(providers, user)
	}
	return providers, rows.Err()
}

func (r *postgresUserRepository) getOne(ctx context.Context, query string, arg interface{}) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("User", err)
	}
	if err != nil {
		return nil, apperrors.RemoteBackend(err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Role, &user.Avatar,
		&user.Phone, &user.Category, &user.Rating, &user.HourlyRate,
		&user.Bio, &user.Location, &user.Verified, &user.ReviewCount,
		&user.Experience, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type postgresCredentialRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCredentialRepository(pool *pgxpool.Pool) repository.CredentialRepository {
	return &postgresCredentialRepository{pool: pool}
}

func (r *postgresCredentialRepository) Set(ctx context.Context, email, passwordHash string) error {
	const query = `
		INSERT INTO credentials (email, password_hash) VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash`

	if _, err := r.pool.Exec(ctx, query, email, passwordHash); err != nil {
		return apperrors.RemoteBackend(err)
	}
	return nil
}

func (r *postgresCredentialRepository) GetByEmail(ctx context.Context, email string) (string, error) {
	var hash string
	err := r.pool.QueryRow(ctx, `SELECT password_hash FROM credentials WHERE email=$1`, email).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperrors.NotFound("Credentials", err)
	}
	if err != nil {
		return "", apperrors.RemoteBackend(err)
	}
	return hash, nil
}
