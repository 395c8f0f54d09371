package database

import (
	"fmt"
	"testing"
	"time"

	"claims-insights/internal/config"
	"claims-insights/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestClaim inserts one claim line into the table of the given source.
func CreateTestClaim(t *testing.T, db *DB, source, claimID string, startDate time.Time) *models.ClaimRecord {
	t.Helper()

	table, err := models.TableForSource(source)
	if err != nil {
		t.Fatalf("unknown test claim source %s: %v", source, err)
	}

	record := &models.ClaimRecord{
		DataSource:       source,
		ClaimID:          claimID,
		ClaimLineNumber:  1,
		ClaimType:        models.ClaimTypeProfessional,
		EncounterGroup:   "office based",
		EncounterType:    "office visit",
		ServiceCategory1: "office visit",
		ClaimStartDate:   startDate,
		PaidAmount:       decimal.NewFromFloat(100.00),
	}

	if err := db.Table(table).Create(record).Error; err != nil {
		t.Fatalf("failed to create test claim: %v", err)
	}

	return record
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range models.SourceTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
