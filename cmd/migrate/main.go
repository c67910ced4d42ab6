package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"

	"legalassist_backend/internal/app"
	"legalassist_backend/internal/config"
	"legalassist_backend/internal/logger"
	"legalassist_backend/internal/migrations"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the yaml config")
	only := flag.String("only", "", "run a single migration group")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", "error", err)
	}
	logger.Init(cfg.Server.Env)

	db, err := app.OpenDB(cfg)
	if err != nil {
		logger.Fatal("connect database", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("unwrap sql handle", "error", err)
	}
	defer sqlDB.Close()

	runner := migrations.NewSQLRunner(sqlDB)
	ctx := context.Background()

	if *only != "" {
		err = runner.RunGroup(ctx, *only)
	} else {
		err = runner.RunAll(ctx)
	}
	if err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	logger.Info("migrations complete")
}
