package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"expman-backend/internal/adapter/repository/gormrepo"
	"expman-backend/internal/config"
	"expman-backend/internal/infrastructure/db"
	"expman-backend/internal/usecase/auth"
)

// Seeds the admin and demo accounts used by the frontend login.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	gdb, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	uc := auth.NewUsecase(gormrepo.NewUserRepository(gdb), []byte(cfg.JWTSecret), cfg.AccessTTL, cfg.RefreshTTL, nil)
	ctx := context.Background()

	ensure(ctx, uc, "admin", "admin@company.com", "admin123", true)
	ensure(ctx, uc, "demo", "demo@company.com", "demo123", false)
}

func ensure(ctx context.Context, uc *auth.Usecase, username, email, password string, staff bool) {
	err := uc.CreateUser(ctx, username, email, password, staff)
	switch {
	case err == nil:
		fmt.Printf("created user %s\n", username)
	case isAlreadyExists(err):
		fmt.Printf("user %s already exists\n", username)
	default:
		log.Fatalf("create %s: %v", username, err)
	}
}

func isAlreadyExists(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already exists")
}
