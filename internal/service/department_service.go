package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/medcore/auth-service/internal/domain"
	"github.com/medcore/auth-service/internal/repository"
	apperrors "github.com/medcore/auth-service/pkg/util"
)

// DepartmentInput carries create/update fields for a department. Nil fields
// are left unchanged on update.
type DepartmentInput struct {
	Name        *string
	Description *string
}

// DepartmentService implements reference-data CRUD for departments.
type DepartmentService struct {
	departments repository.DepartmentRepository
	specialties repository.SpecialtyRepository
}

// NewDepartmentService builds the service.
func NewDepartmentService(departments repository.DepartmentRepository, specialties repository.SpecialtyRepository) *DepartmentService {
	return &DepartmentService{departments: departments, specialties: specialties}
}

// Create adds a department with a unique name.
func (s *DepartmentService) Create(ctx context.Context, name string, description *string) (*domain.Department, error) {
	dept := &domain.Department{Name: name, Description: description}
	if err := s.departments.Create(ctx, dept); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewAlreadyExists("a department with that name already exists")
		}
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// List returns all departments ordered by name, each carrying its child
// specialties.
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	specs, err := s.specialties.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	byDept := make(map[string][]domain.Specialty, len(depts))
	for _, spec := range specs {
		spec.Department = nil
		byDept[spec.DepartmentID] = append(byDept[spec.DepartmentID], spec)
	}
	for i := range depts {
		depts[i].Specialties = byDept[depts[i].ID]
	}
	return depts, nil
}

// Get returns one department with its specialties.
func (s *DepartmentService) Get(ctx context.Context, id string) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department")
		}
		return nil, apperrors.MapError(err)
	}

	specs, err := s.specialties.ListByDepartment(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	for i := range specs {
		specs[i].Department = nil
	}
	dept.Specialties = specs
	return dept, nil
}

// Update applies partial changes. Name uniqueness is enforced on update the
// same way it is on create.
func (s *DepartmentService) Update(ctx context.Context, id string, input DepartmentInput) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department")
		}
		return nil, apperrors.MapError(err)
	}

	if input.Name != nil {
		dept.Name = *input.Name
	}
	if input.Description != nil {
		dept.Description = input.Description
	}

	if err := s.departments.Update(ctx, dept); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewAlreadyExists("a department with that name already exists")
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department")
		}
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// Delete removes a department unless specialties still reference it.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.departments.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("department")
		}
		return apperrors.MapError(err)
	}

	count, err := s.specialties.CountByDepartment(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if count > 0 {
		return apperrors.NewConflict("cannot delete a department with associated specialties")
	}

	if err := s.departments.Delete(ctx, id); err != nil {
		// FK constraint closes the race between the count and the delete
		if errors.Is(err, repository.ErrReferenced) {
			return apperrors.NewConflict("cannot delete a department with associated specialties")
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("department")
		}
		return apperrors.MapError(err)
	}
	return nil
}
