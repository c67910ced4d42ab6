package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"legalassist_backend/internal/auth"
	"legalassist_backend/internal/config"
	"legalassist_backend/internal/handlers"
	"legalassist_backend/internal/logger"
	"legalassist_backend/internal/middleware"
	"legalassist_backend/internal/migrations"
	"legalassist_backend/internal/models"
	"legalassist_backend/internal/pkg/email"
	"legalassist_backend/internal/routes"
	"legalassist_backend/internal/services"
	"legalassist_backend/internal/sms"
	"legalassist_backend/internal/validator"
	"legalassist_backend/internal/workers"
)

// Run boots the full application and blocks serving HTTP.
func Run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.Env)

	db, err := OpenDB(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql handle: %w", err)
	}

	// Base tables first (the original schema), then the additive groups.
	if err := autoMigrate(db); err != nil {
		return fmt.Errorf("create base tables: %w", err)
	}

	ctx := context.Background()
	if err := migrations.NewSQLRunner(sqlDB).RunAll(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	transport, err := SelectTransport(cfg)
	if err != nil {
		return err
	}

	router, container := SetupRouter(cfg, db, transport)

	if err := seedFirstAdmin(ctx, cfg, container); err != nil {
		logger.Warn("could not seed first admin", "error", err)
	}

	worker := workers.NewReminderWorker(container.Notifications)
	if err := worker.Start(ctx); err != nil {
		return fmt.Errorf("start reminder worker: %w", err)
	}

	logger.Info("server listening", "port", cfg.Server.Port, "env", cfg.Server.Env)
	return router.Run(":" + cfg.Server.Port)
}

// OpenDB connects GORM to Postgres.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.Client{},
		&models.Case{},
		&models.CaseMilestone{},
		&models.Document{},
		&models.ClientPortalUser{},
		&models.Event{},
		&models.LegalResearch{},
		&models.Judge{},
		&models.Tag{},
		&models.Ruling{},
		&models.RulingReference{},
		&models.RulingAnnotation{},
		&models.RulingAnalysis{},
		&models.Activity{},
	)
}

// SelectTransport picks the SMS backend once at startup. An explicit
// config value wins; an empty value falls back to sniffing the Twilio
// credentials.
func SelectTransport(cfg *config.Config) (sms.Transport, error) {
	switch cfg.Notifications.SMSTransport {
	case "mock":
		logger.Info("sms transport: mock (configured)")
		return sms.NewMockTransport(), nil
	case "twilio":
		if !cfg.TwilioConfigured() {
			return nil, fmt.Errorf("sms transport is set to twilio but credentials are incomplete")
		}
		logger.Info("sms transport: twilio (configured)")
		return sms.NewTwilioTransport(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.PhoneNumber), nil
	case "":
		if cfg.TwilioConfigured() {
			logger.Info("sms transport: twilio (detected from environment)")
			return sms.NewTwilioTransport(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.PhoneNumber), nil
		}
		logger.Info("sms transport: mock (no twilio credentials)")
		return sms.NewMockTransport(), nil
	default:
		return nil, fmt.Errorf("unknown sms transport %q", cfg.Notifications.SMSTransport)
	}
}

// SetupRouter assembles middleware, services and routes. Tests call this
// directly with their own transport.
func SetupRouter(cfg *config.Config, db *gorm.DB, transport sms.Transport) (*gin.Engine, *services.ServiceContainer) {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := auth.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTTLHours)*time.Hour,
		time.Duration(cfg.JWT.RefreshTTLHours)*time.Hour,
	)

	mail := email.NewGomailSender(cfg.SMTP, cfg.IsDevelopment())
	container := services.NewServiceContainer(db, tokens, transport, mail)
	appHandlers := handlers.NewAppHandlers(container, validator.New())

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.CORS())
	r.Use(middleware.DB(db))

	routes.Register(r, appHandlers, tokens)
	return r, container
}

// seedFirstAdmin creates the admin account on first boot when configured.
func seedFirstAdmin(ctx context.Context, cfg *config.Config, container *services.ServiceContainer) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return nil
	}
	return container.Users.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
}
