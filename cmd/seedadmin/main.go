package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/medcore/auth-service/internal/auth"
	"github.com/medcore/auth-service/internal/config"
	"github.com/medcore/auth-service/internal/domain"
	"github.com/medcore/auth-service/internal/observability"
	"github.com/medcore/auth-service/internal/persistence"
	"github.com/medcore/auth-service/internal/repository"
)

// seedadmin upserts an already-verified administrator account so a fresh
// deployment has a usable login.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	email := getEnv("ADMIN_EMAIL", "admin@medcore.local")
	password := getEnv("ADMIN_PASSWORD", "Password123")
	fullname := getEnv("ADMIN_FULLNAME", "Administrator")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	users := repository.NewUserRepository(pg.PoolHandle())

	hash, err := auth.HashPassword(password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	existing, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		existing.Fullname = fullname
		existing.PasswordHash = hash
		existing.Status = domain.UserStatusActive
		if err := users.Update(ctx, existing); err != nil {
			logger.Fatal("failed to update admin", zap.Error(err))
		}
		logger.Info("admin updated", zap.String("id", existing.ID), zap.String("email", email))
	case errors.Is(err, pgx.ErrNoRows):
		admin := &domain.User{
			Email:          email,
			Fullname:       fullname,
			DocumentNumber: "0",
			DateOfBirth:    time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC),
			Age:            domain.CalculateAge(time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC), time.Now()),
			PasswordHash:   hash,
			Status:         domain.UserStatusActive,
			Role:           domain.RoleAdmin,
		}
		if err := users.Create(ctx, admin); err != nil {
			logger.Fatal("failed to create admin", zap.Error(err))
		}
		logger.Info("admin created", zap.String("id", admin.ID), zap.String("email", email))
	default:
		logger.Fatal("failed to look up admin", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
