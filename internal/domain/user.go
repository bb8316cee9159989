package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusPending  UserStatus = "PENDING"
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

// Role enumerates the account roles in the directory.
type Role string

const (
	RoleDoctor  Role = "MEDICO"
	RoleNurse   Role = "ENFERMERA"
	RolePatient Role = "PACIENTE"
	RoleAdmin   Role = "ADMINISTRADOR"
)

// ParseRole validates a raw role value.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleDoctor, RoleNurse, RolePatient, RoleAdmin:
		return Role(raw), nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

// RoleProfile is the role-discriminated payload embedded in a user record.
// Exactly one variant exists per non-admin role; admins carry none.
type RoleProfile interface {
	ProfileRole() Role
}

// DoctorProfile holds doctor-specific attributes.
type DoctorProfile struct {
	SpecialtyID   string `json:"specialtyId"`
	LicenseNumber string `json:"licenseNumber"`
}

// ProfileRole identifies the variant.
func (DoctorProfile) ProfileRole() Role { return RoleDoctor }

// NurseProfile holds nurse-specific attributes.
type NurseProfile struct {
	DepartmentID string `json:"departmentId"`
}

// ProfileRole identifies the variant.
func (NurseProfile) ProfileRole() Role { return RoleNurse }

// PatientProfile holds patient-specific attributes.
type PatientProfile struct {
	Gender  string  `json:"gender"`
	Address *string `json:"address,omitempty"`
}

// ProfileRole identifies the variant.
func (PatientProfile) ProfileRole() Role { return RolePatient }

// User is the domain model for a directory account.
type User struct {
	ID                      string
	Email                   string
	Fullname                string
	DocumentNumber          string
	Phone                   *string
	DateOfBirth             time.Time
	Age                     int
	PasswordHash            string
	Status                  UserStatus
	Role                    Role
	VerificationCode        *string
	VerificationCodeExpires *time.Time
	Profile                 RoleProfile
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// ValidateProfile checks that the embedded profile variant matches the role.
func (u *User) ValidateProfile() error {
	if u.Role == RoleAdmin {
		if u.Profile != nil {
			return fmt.Errorf("role %s carries no profile", u.Role)
		}
		return nil
	}
	if u.Profile == nil {
		return fmt.Errorf("role %s requires a profile", u.Role)
	}
	if got := u.Profile.ProfileRole(); got != u.Role {
		return fmt.Errorf("profile variant %s does not match role %s", got, u.Role)
	}
	return nil
}

// EncodeProfile serializes the role profile for storage. Admin users
// serialize to nil.
func EncodeProfile(profile RoleProfile) ([]byte, error) {
	if profile == nil {
		return nil, nil
	}
	return json.Marshal(profile)
}

// DecodeProfile deserializes the stored profile payload for the given role.
func DecodeProfile(role Role, raw []byte) (RoleProfile, error) {
	if len(raw) == 0 {
		if role == RoleAdmin {
			return nil, nil
		}
		return nil, fmt.Errorf("missing profile for role %s", role)
	}
	switch role {
	case RoleDoctor:
		var p DoctorProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case RoleNurse:
		var p NurseProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case RolePatient:
		var p PatientProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case RoleAdmin:
		return nil, nil
	}
	return nil, fmt.Errorf("unknown role %q", role)
}

// CalculateAge returns whole years elapsed between dob and now.
func CalculateAge(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	anniversary := time.Date(now.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, now.Location())
	if now.Before(anniversary) {
		age--
	}
	return age
}
