package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/medcore/auth-service/internal/domain"
	"github.com/medcore/auth-service/internal/repository"
	apperrors "github.com/medcore/auth-service/pkg/util"
)

// SpecialtyInput carries create/update fields for a specialty. Nil fields are
// left unchanged on update.
type SpecialtyInput struct {
	Name         *string
	Description  *string
	DepartmentID *string
}

// SpecialtyService implements reference-data CRUD for specialties.
type SpecialtyService struct {
	specialties repository.SpecialtyRepository
	departments repository.DepartmentRepository
}

// NewSpecialtyService builds the service.
func NewSpecialtyService(specialties repository.SpecialtyRepository, departments repository.DepartmentRepository) *SpecialtyService {
	return &SpecialtyService{specialties: specialties, departments: departments}
}

// Create adds a specialty under an existing department.
func (s *SpecialtyService) Create(ctx context.Context, name string, description *string, departmentID string) (*domain.Specialty, error) {
	if err := s.checkDepartment(ctx, departmentID); err != nil {
		return nil, err
	}

	spec := &domain.Specialty{Name: name, Description: description, DepartmentID: departmentID}
	if err := s.specialties.Create(ctx, spec); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewAlreadyExists("a specialty with that name already exists")
		}
		if errors.Is(err, repository.ErrReferenced) {
			return nil, apperrors.NewValidationError("the specified department does not exist", nil)
		}
		return nil, apperrors.MapError(err)
	}

	return s.Get(ctx, spec.ID)
}

// List returns all specialties ordered by name, enriched with their parent
// department.
func (s *SpecialtyService) List(ctx context.Context) ([]domain.Specialty, error) {
	specs, err := s.specialties.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return specs, nil
}

// ListByDepartment returns the specialties of one department.
func (s *SpecialtyService) ListByDepartment(ctx context.Context, departmentID string) ([]domain.Specialty, error) {
	specs, err := s.specialties.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return specs, nil
}

// Get returns one specialty with its department.
func (s *SpecialtyService) Get(ctx context.Context, id string) (*domain.Specialty, error) {
	spec, err := s.specialties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("specialty")
		}
		return nil, apperrors.MapError(err)
	}
	return spec, nil
}

// Update applies partial changes, re-validating the department reference when
// it changes and enforcing name uniqueness like create does.
func (s *SpecialtyService) Update(ctx context.Context, id string, input SpecialtyInput) (*domain.Specialty, error) {
	spec, err := s.specialties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("specialty")
		}
		return nil, apperrors.MapError(err)
	}

	if input.DepartmentID != nil && *input.DepartmentID != spec.DepartmentID {
		if err := s.checkDepartment(ctx, *input.DepartmentID); err != nil {
			return nil, err
		}
		spec.DepartmentID = *input.DepartmentID
	}
	if input.Name != nil {
		spec.Name = *input.Name
	}
	if input.Description != nil {
		spec.Description = input.Description
	}

	if err := s.specialties.Update(ctx, spec); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewAlreadyExists("a specialty with that name already exists")
		}
		if errors.Is(err, repository.ErrReferenced) {
			return nil, apperrors.NewValidationError("the specified department does not exist", nil)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("specialty")
		}
		return nil, apperrors.MapError(err)
	}

	return s.Get(ctx, id)
}

// Delete removes a specialty unconditionally.
func (s *SpecialtyService) Delete(ctx context.Context, id string) error {
	if err := s.specialties.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("specialty")
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *SpecialtyService) checkDepartment(ctx context.Context, departmentID string) error {
	if _, err := s.departments.GetByID(ctx, departmentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("the specified department does not exist", map[string]any{
				"departmentId": "no such department",
			})
		}
		return apperrors.MapError(err)
	}
	return nil
}
