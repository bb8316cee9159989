package domain

import "time"

// Specialty is a medical specialty that belongs to exactly one department.
type Specialty struct {
	ID           string
	Name         string
	Description  *string
	DepartmentID string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Department is populated on enriched reads only.
	Department *Department
}
