package helpers

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"legalassist_backend/internal/models"
)

const defaultTestDSN = "host=localhost port=5432 user=postgres password=postgres dbname=legalassist_test sslmode=disable"

// ConnectTestDB opens the test database and ensures the schema exists.
// Tests are skipped when no database is reachable.
func ConnectTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		dsn = defaultTestDSN
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		t.Fatalf("enable uuid-ossp: %v", err)
	}

	err = db.AutoMigrate(
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
	if err != nil {
		t.Fatalf("migrate test schema: %v", err)
	}

	return db
}

// BeginTransaction starts the transaction a test runs inside.
func BeginTransaction(t *testing.T, db *gorm.DB) *gorm.DB {
	t.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("begin transaction: %v", tx.Error)
	}
	return tx
}

// RollbackTransaction discards everything the test wrote.
func RollbackTransaction(t *testing.T, tx *gorm.DB) {
	t.Helper()
	if err := tx.Rollback().Error; err != nil && err != gorm.ErrInvalidTransaction {
		t.Logf("rollback: %v", err)
	}
}
