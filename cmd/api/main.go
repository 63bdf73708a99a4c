package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/config"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/handlers"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/routes"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/services"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/store"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/utils"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/utils/mailer"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/utils/storage"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadEnv()
	if err := config.Validate(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := config.ConnectDB()
	credentialStore := store.NewGormStore(db)

	issuer := utils.NewTokenIssuer(config.LoadJWTConfig())
	mailClient := mailer.NewClient(config.LoadEmailConfig())

	uploader, err := storage.NewUploader(context.Background(), config.LoadStorageConfig())
	if err != nil {
		log.Fatalf("failed to initialize S3 uploader: %v", err)
	}

	authService := services.NewAuthService(credentialStore, issuer, mailClient, logger, config.LoadPasswordResetURL())
	authHandler := handlers.NewAuthHandler(authService, uploader)

	app := fiber.New()
	routes.Register(app, routes.Deps{
		Auth:   authHandler,
		Issuer: issuer,
		DB:     db,
	})

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Println("🚀 API running on", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}
