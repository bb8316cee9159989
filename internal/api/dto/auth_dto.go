package dto

import (
	"time"

	"github.com/medcore/auth-service/internal/domain"
	"github.com/medcore/auth-service/internal/service"
	apperrors "github.com/medcore/auth-service/pkg/util"
)

// DoctorData is the role-specific block for MEDICO signups.
type DoctorData struct {
	SpecialtyID   string `json:"specialtyId" validate:"required"`
	LicenseNumber string `json:"licenseNumber" validate:"required"`
}

// NurseData is the role-specific block for ENFERMERA signups.
type NurseData struct {
	DepartmentID string `json:"departmentId" validate:"required"`
}

// PatientData is the role-specific block for PACIENTE signups.
type PatientData struct {
	Gender  string  `json:"gender" validate:"required"`
	Address *string `json:"address,omitempty"`
}

// SignUpRequest is the registration payload. The role discriminates which
// embedded block must be present.
type SignUpRequest struct {
	Email          string       `json:"email" validate:"required,email"`
	Password       string       `json:"password" validate:"required,min=6,containsany=0123456789"`
	Fullname       string       `json:"fullname" validate:"required,fullname"`
	DocumentNumber string       `json:"documentNumber" validate:"required,numeric"`
	Phone          *string      `json:"phone,omitempty"`
	DateOfBirth    string       `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Role           string       `json:"role" validate:"required,oneof=MEDICO ENFERMERA PACIENTE ADMINISTRADOR"`
	Medico         *DoctorData  `json:"medico,omitempty" validate:"required_if=Role MEDICO,excluded_unless=Role MEDICO"`
	Enfermera      *NurseData   `json:"enfermera,omitempty" validate:"required_if=Role ENFERMERA,excluded_unless=Role ENFERMERA"`
	Paciente       *PatientData `json:"paciente,omitempty" validate:"required_if=Role PACIENTE,excluded_unless=Role PACIENTE"`
}

// ToInput validates shape and converts to the service-level payload.
func (r *SignUpRequest) ToInput() (service.SignupInput, error) {
	if err := Validate(r); err != nil {
		return service.SignupInput{}, err
	}

	dob, err := time.Parse("2006-01-02", r.DateOfBirth)
	if err != nil {
		return service.SignupInput{}, apperrors.NewValidationError("invalid request payload", map[string]any{
			"dateOfBirth": "must be a date formatted 2006-01-02",
		})
	}

	role := domain.Role(r.Role)
	var profile domain.RoleProfile
	switch role {
	case domain.RoleDoctor:
		profile = domain.DoctorProfile{SpecialtyID: r.Medico.SpecialtyID, LicenseNumber: r.Medico.LicenseNumber}
	case domain.RoleNurse:
		profile = domain.NurseProfile{DepartmentID: r.Enfermera.DepartmentID}
	case domain.RolePatient:
		profile = domain.PatientProfile{Gender: r.Paciente.Gender, Address: r.Paciente.Address}
	}

	return service.SignupInput{
		Email:          r.Email,
		Password:       r.Password,
		Fullname:       r.Fullname,
		DocumentNumber: r.DocumentNumber,
		Phone:          r.Phone,
		DateOfBirth:    dob,
		Role:           role,
		Profile:        profile,
	}, nil
}

// LogInRequest is the login payload.
type LogInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyEmailRequest submits a one-time code.
type VerifyEmailRequest struct {
	Email            string `json:"email" validate:"required,email"`
	VerificationCode string `json:"verificationCode" validate:"required,len=6,numeric"`
}

// ResendVerificationCodeRequest asks for a fresh code.
type ResendVerificationCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UserResponse is the sanitized account projection. Credential and
// verification fields never appear here.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Status   string `json:"status"`
	Role     string `json:"role"`
	Profile  any    `json:"profile,omitempty"`
}

// NewUserResponse projects a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Fullname: user.Fullname,
		Status:   string(user.Status),
		Role:     string(user.Role),
	}
	if user.Profile != nil {
		resp.Profile = user.Profile
	}
	return resp
}

// AuthResponse standard response for login.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
