package repositories

import (
	"time"

	"claims-insights/internal/models"
)

// ClaimRepositoryInterface defines the contract for claim data access.
// All reads are scoped to a single source so callers can process the two
// dataset partitions independently.
type ClaimRepositoryInterface interface {
	// ForEachBySource streams the claim rows of one source in batches,
	// optionally restricted to a claim_start_date window. The callback runs
	// once per batch; returning an error aborts the scan.
	ForEachBySource(source string, startDate, endDate *time.Time, batchSize int, fn func(records []models.ClaimRecord) error) error
	GetBySource(source string, startDate, endDate *time.Time) ([]models.ClaimRecord, error)
	CountBySource(source string) (int64, error)
	CreateBatch(source string, records []models.ClaimRecord) error
	DeleteBySource(source string) error
}
