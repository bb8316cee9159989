package domain

import "time"

// Department represents an organizational unit nurses belong to and
// specialties hang off of.
type Department struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Specialties is populated on enriched reads only.
	Specialties []Specialty
}
