package dto

import (
	"time"

	"github.com/medcore/auth-service/internal/domain"
)

// DepartmentCreateRequest payload for new departments.
type DepartmentCreateRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description *string `json:"description,omitempty"`
}

// DepartmentUpdateRequest partial update payload.
type DepartmentUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}

// SpecialtyCreateRequest payload for new specialties.
type SpecialtyCreateRequest struct {
	Name         string  `json:"name" validate:"required,min=1"`
	Description  *string `json:"description,omitempty"`
	DepartmentID string  `json:"departmentId" validate:"required"`
}

// SpecialtyUpdateRequest partial update payload.
type SpecialtyUpdateRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description  *string `json:"description,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty" validate:"omitempty,min=1"`
}

// DepartmentResponse projects a department, optionally with its specialties.
type DepartmentResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description *string             `json:"description,omitempty"`
	Specialties []SpecialtyResponse `json:"specialties,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// SpecialtyResponse projects a specialty, optionally with its department.
type SpecialtyResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Description  *string             `json:"description,omitempty"`
	DepartmentID string              `json:"departmentId"`
	Department   *DepartmentResponse `json:"department,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// NewDepartmentResponse projects a domain department.
func NewDepartmentResponse(dept *domain.Department) DepartmentResponse {
	resp := DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
		CreatedAt:   dept.CreatedAt,
		UpdatedAt:   dept.UpdatedAt,
	}
	for i := range dept.Specialties {
		child := NewSpecialtyResponse(&dept.Specialties[i])
		resp.Specialties = append(resp.Specialties, child)
	}
	return resp
}

// NewSpecialtyResponse projects a domain specialty.
func NewSpecialtyResponse(spec *domain.Specialty) SpecialtyResponse {
	resp := SpecialtyResponse{
		ID:           spec.ID,
		Name:         spec.Name,
		Description:  spec.Description,
		DepartmentID: spec.DepartmentID,
		CreatedAt:    spec.CreatedAt,
		UpdatedAt:    spec.UpdatedAt,
	}
	if spec.Department != nil {
		parent := NewDepartmentResponse(spec.Department)
		resp.Department = &parent
	}
	return resp
}
