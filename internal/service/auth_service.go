package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/medcore/auth-service/internal/auth"
	"github.com/medcore/auth-service/internal/config"
	"github.com/medcore/auth-service/internal/domain"
	"github.com/medcore/auth-service/internal/events"
	"github.com/medcore/auth-service/internal/repository"
	apperrors "github.com/medcore/auth-service/pkg/util"
)

// MailDispatcher delivers verification codes.
type MailDispatcher interface {
	SendVerificationCode(ctx context.Context, to, code string) error
}

// CooldownStore throttles repeated operations per key.
type CooldownStore interface {
	AcquireCooldown(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// SignupInput is the validated registration payload. Profile carries the
// role-matching variant, nil for admins.
type SignupInput struct {
	Email          string
	Password       string
	Fullname       string
	DocumentNumber string
	Phone          *string
	DateOfBirth    time.Time
	Role           domain.Role
	Profile        domain.RoleProfile
}

// AuthService coordinates the account lifecycle: registration, verification,
// login, and token-backed authorization.
type AuthService struct {
	users       repository.UserRepository
	departments repository.DepartmentRepository
	specialties repository.SpecialtyRepository
	mailer      MailDispatcher
	cooldowns   CooldownStore
	dispatcher  events.Dispatcher
	tokenMgr    *auth.TokenManager
	logger      *zap.Logger

	bcryptCost         int
	codeTTL            time.Duration
	resendCooldown     time.Duration
	allowEmptyRoleList bool
	now                func() time.Time
}

// AuthDependencies encapsulates collaborator requirements for the service.
type AuthDependencies struct {
	UserRepo       repository.UserRepository
	DepartmentRepo repository.DepartmentRepository
	SpecialtyRepo  repository.SpecialtyRepository
	Mailer         MailDispatcher
	Cooldowns      CooldownStore
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:              deps.UserRepo,
		departments:        deps.DepartmentRepo,
		specialties:        deps.SpecialtyRepo,
		mailer:             deps.Mailer,
		cooldowns:          deps.Cooldowns,
		dispatcher:         deps.Dispatcher,
		tokenMgr:           auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		logger:             logger,
		bcryptCost:         cfg.Auth.BcryptCost,
		codeTTL:            cfg.Auth.VerificationCodeTTL(),
		resendCooldown:     cfg.Auth.ResendCooldown(),
		allowEmptyRoleList: cfg.Auth.AllowEmptyRoleList,
		now:                time.Now,
	}
}

// Signup registers a new PENDING account and emails its verification code.
// If the email cannot be delivered the freshly created row is removed again
// so no account exists without a reachable code.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewAlreadyExists("User already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	age := domain.CalculateAge(input.DateOfBirth, s.now())
	if age < 1 || age > 100 {
		return nil, apperrors.NewValidationError("age must be between 1 and 100", map[string]any{
			"dateOfBirth": "derived age out of range",
		})
	}

	if err := s.checkRoleReferences(ctx, input.Role, input.Profile); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	expires := s.now().Add(s.codeTTL)

	user := &domain.User{
		Email:                   input.Email,
		Fullname:                input.Fullname,
		DocumentNumber:          input.DocumentNumber,
		Phone:                   input.Phone,
		DateOfBirth:             input.DateOfBirth,
		Age:                     age,
		PasswordHash:            hash,
		Status:                  domain.UserStatusPending,
		Role:                    input.Role,
		VerificationCode:        &code,
		VerificationCodeExpires: &expires,
		Profile:                 input.Profile,
	}
	if err := user.ValidateProfile(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewAlreadyExists("User already exists")
		}
		return nil, apperrors.MapError(err)
	}

	if err := s.mailer.SendVerificationCode(ctx, user.Email, code); err != nil {
		s.logger.Error("verification email failed; reverting signup",
			zap.String("user_id", user.ID), zap.Error(err))
		if delErr := s.users.Delete(ctx, user.ID); delErr != nil {
			s.logger.Error("compensating delete failed", zap.String("user_id", user.ID), zap.Error(delErr))
		}
		s.publish(ctx, events.EventRegistrationReverted, user)
		return nil, apperrors.NewEmailDeliveryError(err)
	}

	s.publish(ctx, events.EventUserRegistered, user)
	return user, nil
}

// Login authenticates an ACTIVE account and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// same answer as a wrong password, no account enumeration
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	if user.Status != domain.UserStatusActive {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("account pending or inactive, verify your email")
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventUserLoggedIn, user)
	return user, token, exp, nil
}

// VerifyEmail consumes a one-time code and activates the account.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.MapError(err)
	}

	if user.Status == domain.UserStatusActive {
		return nil, apperrors.NewDomainError("ALREADY_VERIFIED", "user already verified", http.StatusBadRequest, nil)
	}

	if user.VerificationCode == nil || *user.VerificationCode != code {
		return nil, apperrors.NewDomainError("INVALID_CODE", "invalid verification code", http.StatusBadRequest, nil)
	}

	if user.VerificationCodeExpires == nil || user.VerificationCodeExpires.Before(s.now()) {
		return nil, apperrors.NewDomainError("CODE_EXPIRED", "verification code expired", http.StatusBadRequest, nil)
	}

	activated, err := s.users.Activate(ctx, user.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserVerified, activated)
	return activated, nil
}

// ResendVerificationCode issues a fresh code to a still-pending account.
func (s *AuthService) ResendVerificationCode(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user")
		}
		return apperrors.MapError(err)
	}

	if user.Status == domain.UserStatusActive {
		return apperrors.NewDomainError("ALREADY_VERIFIED", "user already verified", http.StatusBadRequest, nil)
	}

	if s.cooldowns != nil && s.resendCooldown > 0 {
		free, err := s.cooldowns.AcquireCooldown(ctx, "verification:resend:"+user.ID, s.resendCooldown)
		if err != nil {
			s.logger.Warn("resend cooldown check failed", zap.Error(err))
		} else if !free {
			return apperrors.NewTooManyRequests("verification code recently sent, try again later")
		}
	}

	code, err := generateVerificationCode()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	expires := s.now().Add(s.codeTTL)

	if err := s.users.SetVerificationCode(ctx, user.ID, code, expires); err != nil {
		return apperrors.MapError(err)
	}

	if err := s.mailer.SendVerificationCode(ctx, user.Email, code); err != nil {
		// account predates this call, nothing to revert
		return apperrors.NewEmailDeliveryError(err)
	}

	s.publish(ctx, events.EventVerificationResent, user)
	return nil
}

// VerifyToken re-fetches the live account behind verified claims and enforces
// activity plus the caller's role allow-list. Empty allow-lists deny unless
// configured otherwise.
func (s *AuthService) VerifyToken(ctx context.Context, userID string, allowedRoles []domain.Role) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.MapError(err)
	}

	if user.Status != domain.UserStatusActive {
		return nil, apperrors.NewForbidden("account not active")
	}

	if len(allowedRoles) == 0 {
		if s.allowEmptyRoleList {
			return user, nil
		}
		return nil, apperrors.NewForbidden("insufficient permissions")
	}

	for _, role := range allowedRoles {
		if user.Role == role {
			return user, nil
		}
	}
	return nil, apperrors.NewForbidden("insufficient permissions")
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) checkRoleReferences(ctx context.Context, role domain.Role, profile domain.RoleProfile) error {
	switch role {
	case domain.RoleDoctor:
		p, ok := profile.(domain.DoctorProfile)
		if !ok {
			return apperrors.NewValidationError("doctor profile required", nil)
		}
		if _, err := s.specialties.GetByID(ctx, p.SpecialtyID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewValidationError("the specified specialty does not exist", map[string]any{
					"specialtyId": "no such specialty",
				})
			}
			return apperrors.MapError(err)
		}
	case domain.RoleNurse:
		p, ok := profile.(domain.NurseProfile)
		if !ok {
			return apperrors.NewValidationError("nurse profile required", nil)
		}
		if _, err := s.departments.GetByID(ctx, p.DepartmentID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewValidationError("the specified department does not exist", map[string]any{
					"departmentId": "no such department",
				})
			}
			return apperrors.MapError(err)
		}
	}
	return nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, user *domain.User) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		Timestamp: s.now(),
	})
}

// generateVerificationCode returns a uniform random 6-digit numeric code,
// leading zeros preserved.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
