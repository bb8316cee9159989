package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcore/auth-service/internal/domain"
)

// UserRepository defines persistence access for directory accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Activate flips the account to ACTIVE and clears the verification
	// material in one statement.
	Activate(ctx context.Context, id string) (*domain.User, error)
	SetVerificationCode(ctx context.Context, id, code string, expires time.Time) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, email, fullname, document_number, phone, date_of_birth, age,
        password_hash, status, role, verification_code, verification_code_expires,
        profile, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	profile, err := domain.EncodeProfile(user.Profile)
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO users (email, fullname, document_number, phone, date_of_birth, age,
            password_hash, status, role, verification_code, verification_code_expires, profile)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`

	err = r.pool.QueryRow(ctx, query,
		user.Email,
		user.Fullname,
		user.DocumentNumber,
		user.Phone,
		user.DateOfBirth,
		user.Age,
		user.PasswordHash,
		user.Status,
		user.Role,
		user.VerificationCode,
		user.VerificationCodeExpires,
		profile,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return mapPgError(err)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	profile, err := domain.EncodeProfile(user.Profile)
	if err != nil {
		return err
	}

	const query = `
        UPDATE users SET fullname=$1, phone=$2, password_hash=$3, status=$4,
            verification_code=$5, verification_code_expires=$6, profile=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		user.Fullname,
		user.Phone,
		user.PasswordHash,
		user.Status,
		user.VerificationCode,
		user.VerificationCodeExpires,
		profile,
		user.ID,
	)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) Activate(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        UPDATE users SET status=$1, verification_code=NULL, verification_code_expires=NULL, updated_at=NOW()
        WHERE id=$2
        RETURNING ` + userColumns
	return r.scanUser(r.pool.QueryRow(ctx, query, domain.UserStatusActive, id))
}

func (r *userRepository) SetVerificationCode(ctx context.Context, id, code string, expires time.Time) error {
	const query = `
        UPDATE users SET verification_code=$1, verification_code_expires=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, code, expires, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user    domain.User
		profile []byte
	)
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Fullname,
		&user.DocumentNumber,
		&user.Phone,
		&user.DateOfBirth,
		&user.Age,
		&user.PasswordHash,
		&user.Status,
		&user.Role,
		&user.VerificationCode,
		&user.VerificationCodeExpires,
		&profile,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	decoded, err := domain.DecodeProfile(user.Role, profile)
	if err != nil {
		return nil, err
	}
	user.Profile = decoded
	return &user, nil
}
