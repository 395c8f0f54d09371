package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"claims-insights/internal/models"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	migrationsPath = "db/migrations"
	seedsPath      = "db/seeds"
)

// Overridable in tests.
var (
	readinessAttempts = 30
	readinessInterval = 2 * time.Second
)

// MigrationRunner applies schema migrations for the claim tables and loads
// development seed data.
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
}

func NewMigrationRunner(db *sql.DB) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		seedsPath:      seedsPath,
	}
}

// WaitForDatabase pings until the claims database accepts connections or the
// attempt budget runs out.
func (mr *MigrationRunner) WaitForDatabase() error {
	for i := 0; i < readinessAttempts; i++ {
		if err := mr.db.Ping(); err == nil {
			log.Println("Claims database is reachable")
			return nil
		} else {
			log.Printf("Claims database unreachable (attempt %d/%d): %v", i+1, readinessAttempts, err)
		}
		time.Sleep(readinessInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", readinessAttempts)
}

// newMigrate builds a migrate instance over the runner's migrations directory.
func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("resolving migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("creating postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("creating migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies all pending claim-table migrations. A missing
// migrations directory is not an error so the service can run against a
// database managed elsewhere.
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		log.Printf("No migrations directory at %s, leaving claim tables as-is", mr.migrationsPath)
		return nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("reading migration version: %w", err)
	}
	if dirty {
		log.Printf("Claim schema dirty at version %d, forcing clean state", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("forcing migration version %d: %w", version, err)
		}
	}

	switch err := m.Up(); err {
	case nil:
		newVersion, _, verr := m.Version()
		if verr != nil {
			return fmt.Errorf("reading migration version after apply: %w", verr)
		}
		log.Printf("Claim schema migrated from version %d to %d", version, newVersion)
	case migrate.ErrNoChange:
		log.Printf("Claim schema already at version %d", version)
	default:
		return fmt.Errorf("applying claim schema migrations: %w", err)
	}

	return nil
}

// LoadSeeds executes the *.sql files under the seeds directory. Seeding only
// touches the synthetic claim table; any seed file referencing the load-only
// sampled table is skipped. Individual statement failures are logged and
// skipped so one bad file does not block the rest.
func (mr *MigrationRunner) LoadSeeds() error {
	if os.Getenv("SEED_DATABASE") != "true" {
		log.Println("Claim seeding disabled (SEED_DATABASE != true)")
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		log.Printf("No seeds directory at %s, nothing to load", mr.seedsPath)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("listing seed files: %w", err)
	}
	if len(files) == 0 {
		log.Printf("No seed files under %s", mr.seedsPath)
		return nil
	}

	protectedTable := models.SourceTables[models.DataSourceMedicareLDS]

	for _, file := range files {
		name := filepath.Base(file)

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading seed file %s: %w", name, err)
		}

		if strings.Contains(string(content), protectedTable) {
			log.Printf("Skipping seed file %s: %s is load-only", name, protectedTable)
			continue
		}

		if _, err := mr.db.Exec(string(content)); err != nil {
			log.Printf("Seed file %s failed, continuing: %v", name, err)
			continue
		}
		log.Printf("Loaded seed file %s", name)
	}

	return nil
}

// GetMigrationStatus reports the current claim schema version.
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled migrates and seeds the claim tables at startup when
// AUTO_MIGRATE is set. Seed failures are logged but never abort startup.
func RunMigrationsIfEnabled(db *sql.DB) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		log.Println("Auto-migration of claim tables disabled (AUTO_MIGRATE != true)")
		return nil
	}

	runner := NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migrating claim tables: %w", err)
	}
	if err := runner.LoadSeeds(); err != nil {
		log.Printf("Claim seeding failed: %v", err)
	}

	if version, dirty, err := runner.GetMigrationStatus(); err != nil {
		log.Printf("Could not read claim schema version: %v", err)
	} else {
		log.Printf("Claim schema at version %d (dirty=%v)", version, dirty)
	}

	return nil
}
