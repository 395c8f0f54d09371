package database

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shortReadiness shrinks the ping budget so failure paths finish quickly.
func shortReadiness(t *testing.T, attempts int) {
	t.Helper()
	origAttempts, origInterval := readinessAttempts, readinessInterval
	readinessAttempts = attempts
	readinessInterval = 10 * time.Millisecond
	t.Cleanup(func() {
		readinessAttempts = origAttempts
		readinessInterval = origInterval
	})
}

func pingableMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestNewMigrationRunnerDefaults(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
}

func TestWaitForDatabaseReachable(t *testing.T) {
	db, mock := pingableMock(t)
	mock.ExpectPing().WillReturnError(nil)

	assert.NoError(t, NewMigrationRunner(db).WaitForDatabase())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabaseRecoversAfterRefusedConnection(t *testing.T) {
	db, mock := pingableMock(t)
	shortReadiness(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	assert.NoError(t, NewMigrationRunner(db).WaitForDatabase())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabaseExhaustsAttempts(t *testing.T) {
	db, mock := pingableMock(t)
	shortReadiness(t, 2)

	for i := 0; i < readinessAttempts; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err := NewMigrationRunner(db).WaitForDatabase()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after")
}

func TestRunMigrationsMissingDirectoryIsNotFatal(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)
	runner.migrationsPath = filepath.Join(t.TempDir(), "absent")

	assert.NoError(t, runner.RunMigrations())
}

func TestLoadSeedsDisabledByEnvironment(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "false")

	assert.NoError(t, NewMigrationRunner(db).LoadSeeds())
}

func TestLoadSeedsMissingDirectoryIsNotFatal(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "true")

	runner := NewMigrationRunner(db)
	runner.seedsPath = filepath.Join(t.TempDir(), "absent")

	assert.NoError(t, runner.LoadSeeds())
}

func TestLoadSeedsExecutesSyntheticClaimFiles(t *testing.T) {
	t.Setenv("SEED_DATABASE", "true")

	seedsDir := t.TempDir()
	writeSeedFile(t, seedsDir, "001_synthetic_claims.sql", `
INSERT INTO cms_synthetic_claims (id, data_source, claim_id, claim_line_number, claim_type, claim_start_date)
VALUES ('a0000000-0000-0000-0000-000000000001', 'cms_synthetic', '1000000001', 1, 'professional', '2020-01-15');
`)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO cms_synthetic_claims").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := NewMigrationRunner(db)
	runner.seedsPath = seedsDir

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeedsSkipsLoadOnlySampledTable(t *testing.T) {
	t.Setenv("SEED_DATABASE", "true")

	seedsDir := t.TempDir()
	writeSeedFile(t, seedsDir, "001_sampled_claims.sql",
		"INSERT INTO medicare_lds_claims (claim_id) VALUES ('2000000001');")
	writeSeedFile(t, seedsDir, "002_synthetic_claims.sql",
		"INSERT INTO cms_synthetic_claims (claim_id) VALUES ('1000000001');")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Only the synthetic-table file may reach the database.
	mock.ExpectExec("INSERT INTO cms_synthetic_claims").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := NewMigrationRunner(db)
	runner.seedsPath = seedsDir

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeedsContinuesPastFailingFile(t *testing.T) {
	t.Setenv("SEED_DATABASE", "true")

	seedsDir := t.TempDir()
	writeSeedFile(t, seedsDir, "001_bad.sql", "INSERT INTO nonexistent_table VALUES (1);")
	writeSeedFile(t, seedsDir, "002_good.sql", "INSERT INTO cms_synthetic_claims VALUES ('1000000001');")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("table does not exist"))
	mock.ExpectExec("INSERT INTO cms_synthetic_claims").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := NewMigrationRunner(db)
	runner.seedsPath = seedsDir

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsIfEnabledDisabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("AUTO_MIGRATE", "false")

	assert.NoError(t, RunMigrationsIfEnabled(db))
}

func TestRunMigrationsIfEnabledDatabaseNeverReady(t *testing.T) {
	db, mock := pingableMock(t)
	t.Setenv("AUTO_MIGRATE", "true")
	shortReadiness(t, 2)

	for i := 0; i < readinessAttempts; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err := RunMigrationsIfEnabled(db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestGetMigrationStatusMissingDirectory(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)
	runner.migrationsPath = filepath.Join(t.TempDir(), "absent")

	_, _, err = runner.GetMigrationStatus()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}
