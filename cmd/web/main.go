package main

import (
	"flag"

	"github.com/joho/godotenv"

	"legalassist_backend/internal/app"
	"legalassist_backend/internal/logger"
)

// @title LegalAssist API
// @version 1.0
// @description Legal-practice management backend: cases, clients, calendar,
// @description legal research, court rulings and SMS notifications.
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the yaml config")
	flag.Parse()

	// Missing .env is fine; production sets real environment variables.
	_ = godotenv.Load()

	if err := app.Run(*configPath); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
