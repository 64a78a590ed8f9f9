// Command initdb creates the schema and seeds (or resets) the admin
// credential row. Run it once before first deploy, or again to rotate the
// admin password.
package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/skmobile/csc-center-api/internal/auth"
	"github.com/skmobile/csc-center-api/internal/storage/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}
	username := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		logger.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}

	ctx := context.Background()
	store, err := postgres.New(ctx, databaseURL)
	if err != nil {
		logger.Fatal("init database", zap.Error(err))
	}
	defer store.Close()

	hash, err := auth.HashPassword(password)
	if err != nil {
		logger.Fatal("hash password", zap.Error(err))
	}

	admin, err := store.UpsertAdmin(ctx, username, hash)
	if err != nil {
		logger.Fatal("upsert admin", zap.Error(err))
	}

	logger.Info("admin user ready",
		zap.String("id", admin.ID),
		zap.String("username", admin.Username))
}
