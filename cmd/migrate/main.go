package main

import (
	"database/sql"
	"flag"
	"log"

	"claims-insights/internal/config"
	"claims-insights/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Standalone migration command for deployments that run schema changes
// outside the API process.
func main() {
	status := flag.Bool("status", false, "print the current migration version and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		log.Fatal("Database readiness check failed:", err)
	}

	if *status {
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			log.Fatal("Failed to get migration status:", err)
		}
		log.Printf("Migration status - Version: %d, Dirty: %v", version, dirty)
		return
	}

	if err := runner.RunMigrations(); err != nil {
		log.Fatal("Migration execution failed:", err)
	}

	if err := runner.LoadSeeds(); err != nil {
		log.Printf("Warning: seed data loading failed: %v", err)
	}
}
