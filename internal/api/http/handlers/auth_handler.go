package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/medcore/auth-service/internal/api/dto"
	"github.com/medcore/auth-service/internal/auth"
	"github.com/medcore/auth-service/internal/domain"
	"github.com/medcore/auth-service/internal/service"
	apperrors "github.com/medcore/auth-service/pkg/util"
)

// AuthHandler exposes the account lifecycle endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// SignUp handles POST /auth/sign-up.
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	input, err := req.ToInput()
	if err != nil {
		return err
	}

	user, err := h.auth.Signup(c.UserContext(), input)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user":    dto.NewUserResponse(user),
			"message": "user created, verification code sent to email",
		},
	})
}

// LogIn handles POST /auth/log-in.
func (h *AuthHandler) LogIn(c *fiber.Ctx) error {
	var req dto.LogInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	user, token, exp, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// VerifyEmail handles POST /auth/verify-email.
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	user, err := h.auth.VerifyEmail(c.UserContext(), req.Email, req.VerificationCode)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user":    dto.NewUserResponse(user),
			"message": "email verified successfully",
		},
	})
}

// ResendVerificationCode handles POST /auth/resend-verification-code.
func (h *AuthHandler) ResendVerificationCode(c *fiber.Ctx) error {
	var req dto.ResendVerificationCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	if err := h.auth.ResendVerificationCode(c.UserContext(), req.Email); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"message": "verification code resent successfully",
		},
	})
}

// VerifyToken handles GET /auth/verify-token?allowedRoles=A,B.
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	roles, err := parseAllowedRoles(c.Query("allowedRoles"))
	if err != nil {
		return err
	}

	user, err := h.auth.VerifyToken(c.UserContext(), claims.UserID, roles)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
		},
	})
}

func parseAllowedRoles(raw string) ([]domain.Role, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	roles := make([]domain.Role, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		role, err := domain.ParseRole(part)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid role in allowedRoles", map[string]any{
				"allowedRoles": part,
			})
		}
		roles = append(roles, role)
	}
	return roles, nil
}
