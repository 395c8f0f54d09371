package services

import (
	"time"

	"claims-insights/internal/models"
)

// ClaimVolumeServiceInterface defines the monthly claim volume reports. Each
// report aggregates both claim tables, unions the per-source results with set
// semantics, and returns rows sorted ascending by their grouping columns.
type ClaimVolumeServiceInterface interface {
	EncounterVolume(startDate, endDate *time.Time) ([]models.EncounterVolumeRow, error)
	ServiceCategoryVolume(startDate, endDate *time.Time) ([]models.ServiceCategoryVolumeRow, error)
	ClaimTypeVolume(startDate, endDate *time.Time) ([]models.ClaimTypeVolumeRow, error)
	FinancialSummary(startDate, endDate *time.Time) ([]models.FinancialSummaryRow, error)
}

// ClaimGeneratorInterface defines synthetic claim generation for development
// and test seeding.
type ClaimGeneratorInterface interface {
	GenerateClaims(source string, claimCount int, startDate, endDate time.Time) []models.ClaimRecord
}

// MetricsRecorderInterface defines the contract for recording operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
