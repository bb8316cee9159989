package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcore/auth-service/internal/domain"
)

// SpecialtyRepository manages specialty persistence. Read operations join the
// parent department so listings come back enriched.
type SpecialtyRepository interface {
	Create(ctx context.Context, spec *domain.Specialty) error
	Update(ctx context.Context, spec *domain.Specialty) error
	GetByID(ctx context.Context, id string) (*domain.Specialty, error)
	List(ctx context.Context) ([]domain.Specialty, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]domain.Specialty, error)
	CountByDepartment(ctx context.Context, departmentID string) (int, error)
	Delete(ctx context.Context, id string) error
}

type specialtyRepository struct {
	pool *pgxpool.Pool
}

// NewSpecialtyRepository builds the repository.
func NewSpecialtyRepository(pool *pgxpool.Pool) SpecialtyRepository {
	return &specialtyRepository{pool: pool}
}

const specialtyJoin = `
        SELECT s.id, s.name, s.description, s.department_id, s.created_at, s.updated_at,
               d.id, d.name, d.description, d.created_at, d.updated_at
        FROM specialties s
        JOIN departments d ON d.id = s.department_id`

func (r *specialtyRepository) Create(ctx context.Context, spec *domain.Specialty) error {
	const query = `
        INSERT INTO specialties (name, description, department_id)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		spec.Name,
		spec.Description,
		spec.DepartmentID,
	).Scan(&spec.ID, &spec.CreatedAt, &spec.UpdatedAt)
	return mapPgError(err)
}

func (r *specialtyRepository) Update(ctx context.Context, spec *domain.Specialty) error {
	const query = `
        UPDATE specialties SET name=$1, description=$2, department_id=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		spec.Name,
		spec.Description,
		spec.DepartmentID,
		spec.ID,
	)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *specialtyRepository) GetByID(ctx context.Context, id string) (*domain.Specialty, error) {
	return r.scanSpecialty(r.pool.QueryRow(ctx, specialtyJoin+` WHERE s.id=$1`, id))
}

func (r *specialtyRepository) List(ctx context.Context) ([]domain.Specialty, error) {
	rows, err := r.pool.Query(ctx, specialtyJoin+` ORDER BY s.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *specialtyRepository) ListByDepartment(ctx context.Context, departmentID string) ([]domain.Specialty, error) {
	rows, err := r.pool.Query(ctx, specialtyJoin+` WHERE s.department_id=$1 ORDER BY s.name ASC`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *specialtyRepository) CountByDepartment(ctx context.Context, departmentID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM specialties WHERE department_id=$1`, departmentID,
	).Scan(&count)
	return count, err
}

func (r *specialtyRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM specialties WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *specialtyRepository) scanSpecialty(row pgx.Row) (*domain.Specialty, error) {
	var (
		spec domain.Specialty
		dept domain.Department
	)
	if err := row.Scan(
		&spec.ID,
		&spec.Name,
		&spec.Description,
		&spec.DepartmentID,
		&spec.CreatedAt,
		&spec.UpdatedAt,
		&dept.ID,
		&dept.Name,
		&dept.Description,
		&dept.CreatedAt,
		&dept.UpdatedAt,
	); err != nil {
		return nil, err
	}
	spec.Department = &dept
	return &spec, nil
}

func (r *specialtyRepository) collect(rows pgx.Rows) ([]domain.Specialty, error) {
	var result []domain.Specialty
	for rows.Next() {
		spec, err := r.scanSpecialty(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *spec)
	}
	return result, rows.Err()
}
