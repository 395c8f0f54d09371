package repositories

import (
	"fmt"
	"time"

	"claims-insights/internal/models"

	"gorm.io/gorm"
)

const defaultFetchBatchSize = 2000

// claimRepository implements ClaimRepositoryInterface over the per-source
// claim tables.
type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *gorm.DB) ClaimRepositoryInterface {
	return &claimRepository{
		db: db,
	}
}

// sourceQuery builds a query scoped to one source table with an optional
// claim_start_date window.
func (r *claimRepository) sourceQuery(source string, startDate, endDate *time.Time) (*gorm.DB, error) {
	table, err := models.TableForSource(source)
	if err != nil {
		return nil, err
	}

	query := r.db.Table(table)
	if startDate != nil {
		query = query.Where("claim_start_date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("claim_start_date <= ?", *endDate)
	}

	return query, nil
}

// ForEachBySource streams claim rows of one source in primary-key order.
func (r *claimRepository) ForEachBySource(source string, startDate, endDate *time.Time, batchSize int, fn func(records []models.ClaimRecord) error) error {
	query, err := r.sourceQuery(source, startDate, endDate)
	if err != nil {
		return err
	}

	if batchSize <= 0 {
		batchSize = defaultFetchBatchSize
	}

	var batch []models.ClaimRecord
	result := query.FindInBatches(&batch, batchSize, func(tx *gorm.DB, n int) error {
		return fn(batch)
	})
	if result.Error != nil {
		return fmt.Errorf("failed to scan claims for source %s: %w", source, result.Error)
	}

	return nil
}

// GetBySource retrieves all claim rows of one source within the window.
func (r *claimRepository) GetBySource(source string, startDate, endDate *time.Time) ([]models.ClaimRecord, error) {
	query, err := r.sourceQuery(source, startDate, endDate)
	if err != nil {
		return nil, err
	}

	var records []models.ClaimRecord
	if err := query.Order("claim_start_date ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get claims for source %s: %w", source, err)
	}

	return records, nil
}

// CountBySource returns the number of claim rows (not distinct claims) in a
// source table.
func (r *claimRepository) CountBySource(source string) (int64, error) {
	table, err := models.TableForSource(source)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := r.db.Table(table).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count claims for source %s: %w", source, err)
	}

	return total, nil
}

// CreateBatch inserts claim rows into the source table in a single database
// transaction.
func (r *claimRepository) CreateBatch(source string, records []models.ClaimRecord) error {
	if len(records) == 0 {
		return nil
	}

	table, err := models.TableForSource(source)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(table).CreateInBatches(&records, defaultFetchBatchSize).Error; err != nil {
			return fmt.Errorf("failed to create claim batch for source %s: %w", source, err)
		}
		return nil
	})
}

// DeleteBySource removes all claim rows of one source. Used by the dev
// seeding surface to reset the synthetic table.
func (r *claimRepository) DeleteBySource(source string) error {
	table, err := models.TableForSource(source)
	if err != nil {
		return err
	}

	if err := r.db.Table(table).Where("1 = 1").Delete(&models.ClaimRecord{}).Error; err != nil {
		return fmt.Errorf("failed to delete claims for source %s: %w", source, err)
	}

	return nil
}
