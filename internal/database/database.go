package database

import (
	"fmt"
	"log"
	"time"

	"claims-insights/internal/config"
	"claims-insights/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// claimIndexColumns lists the columns the report queries filter or group on.
// Each claim table gets one index per column.
var claimIndexColumns = []string{
	"claim_id",
	"claim_start_date",
	"encounter_group",
	"service_category_1",
	"claim_type",
}

// DB wraps the GORM handle to the claims database.
type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// New opens the claims database and verifies the connection. Timestamps are
// normalized to UTC so year-month derivation never shifts across time zones.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("opening claims database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrapping sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging claims database: %w", err)
	}

	return &DB{DB: db, config: cfg}, nil
}

// AutoMigrate creates every source's claim table from the shared ClaimRecord
// schema. The two tables are logically identical; only the table name varies.
func (db *DB) AutoMigrate() error {
	for _, table := range models.SourceTables {
		if err := db.DB.Table(table).AutoMigrate(&models.ClaimRecord{}); err != nil {
			return fmt.Errorf("migrating claim table %s: %w", table, err)
		}
	}
	return nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

// CreateIndexes adds the report-query indexes to both claim tables. Index
// failures are logged and skipped; reports still work without them, just
// slower.
func (db *DB) CreateIndexes() error {
	for _, table := range models.SourceTables {
		for _, column := range claimIndexColumns {
			stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s(%s)",
				table, column, table, column)
			if err := db.DB.Exec(stmt).Error; err != nil {
				log.Printf("Could not create index on %s(%s): %v", table, column, err)
			}
		}
	}
	return nil
}

// Initialize opens the claims database and brings the claim tables up to
// date: SQL migrations when AUTO_MIGRATE is set, GORM AutoMigrate as the
// fallback, then the report indexes.
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrapping sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Migration runner failed (%v), falling back to AutoMigrate", err)
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("migrating claim tables: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Report index creation incomplete: %v", err)
	}

	log.Println("Claims database ready")
	return db.DB, nil
}
