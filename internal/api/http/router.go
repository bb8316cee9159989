package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medcore/auth-service/internal/api/http/handlers"
	"github.com/medcore/auth-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Departments    *handlers.DepartmentsHandler
	Specialties    *handlers.SpecialtiesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/sign-up", cfg.Auth.SignUp)
	authGroup.Post("/log-in", cfg.Auth.LogIn)
	authGroup.Post("/verify-email", cfg.Auth.VerifyEmail)
	authGroup.Post("/resend-verification-code", cfg.Auth.ResendVerificationCode)
	authGroup.Get("/verify-token", cfg.AuthMiddleware.Handle, cfg.Auth.VerifyToken)

	departments := app.Group("/departments", cfg.AuthMiddleware.Handle)
	departments.Post("/", cfg.Departments.Create)
	departments.Get("/", cfg.Departments.List)
	departments.Get("/:id", cfg.Departments.Get)
	departments.Put("/:id", cfg.Departments.Update)
	departments.Delete("/:id", cfg.Departments.Delete)

	specialties := app.Group("/specialties", cfg.AuthMiddleware.Handle)
	specialties.Post("/", cfg.Specialties.Create)
	specialties.Get("/", cfg.Specialties.List)
	specialties.Get("/department/:departmentId", cfg.Specialties.ListByDepartment)
	specialties.Get("/:id", cfg.Specialties.Get)
	specialties.Put("/:id", cfg.Specialties.Update)
	specialties.Delete("/:id", cfg.Specialties.Delete)
}
