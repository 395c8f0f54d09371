package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DataSourceMedicareLDS  = "medicare_lds"
	DataSourceCMSSynthetic = "cms_synthetic"

	ClaimTypeInstitutional = "institutional"
	ClaimTypeProfessional  = "professional"
)

var (
	ErrInvalidDataSource = errors.New("invalid data source")
	ErrInvalidClaimType  = errors.New("invalid claim type")
	ErrMissingClaimID    = errors.New("claim ID is required")
	ErrMissingStartDate  = errors.New("claim start date is required")
)

// SourceTables maps each data source to the table holding its claims. Both
// tables share the ClaimRecord schema; reports treat them as one logical
// table partitioned by data_source.
var SourceTables = map[string]string{
	DataSourceMedicareLDS:  "medicare_lds_claims",
	DataSourceCMSSynthetic: "cms_synthetic_claims",
}

// TableForSource resolves the claim table for a data source.
func TableForSource(source string) (string, error) {
	table, ok := SourceTables[source]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDataSource, source)
	}
	return table, nil
}

// IsValidDataSource reports whether the source is one of the known datasets.
func IsValidDataSource(source string) bool {
	_, ok := SourceTables[source]
	return ok
}

// IsValidClaimType reports whether the claim type is institutional or professional.
func IsValidClaimType(claimType string) bool {
	return claimType == ClaimTypeInstitutional || claimType == ClaimTypeProfessional
}

// ClaimRecord represents one claim line. A claim may span multiple rows
// (line items), so claim_id is not unique per row; reports count distinct
// claim IDs, never rows.
type ClaimRecord struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	DataSource       string          `gorm:"type:varchar(50);not null;index" json:"data_source"`
	ClaimID          string          `gorm:"type:varchar(50);not null;index" json:"claim_id"`
	ClaimLineNumber  int             `gorm:"not null;default:1" json:"claim_line_number"`
	ClaimType        string          `gorm:"type:varchar(20);not null" json:"claim_type"`
	EncounterGroup   string          `gorm:"type:varchar(50)" json:"encounter_group"`
	EncounterType    string          `gorm:"type:varchar(100)" json:"encounter_type"`
	ServiceCategory1 string          `gorm:"type:varchar(50)" json:"service_category_1"`
	ClaimStartDate   time.Time       `gorm:"type:date;not null;index" json:"claim_start_date"`
	PaidAmount       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for ClaimRecord
func (c *ClaimRecord) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	if c.ClaimLineNumber == 0 {
		c.ClaimLineNumber = 1
	}

	return c.Validate()
}

// Validate validates the claim record fields
func (c *ClaimRecord) Validate() error {
	if !IsValidDataSource(c.DataSource) {
		return ErrInvalidDataSource
	}

	if c.ClaimID == "" {
		return ErrMissingClaimID
	}

	if !IsValidClaimType(c.ClaimType) {
		return ErrInvalidClaimType
	}

	if c.ClaimStartDate.IsZero() {
		return ErrMissingStartDate
	}

	if c.ClaimLineNumber < 1 {
		return errors.New("claim line number must be positive")
	}

	return nil
}

// YearMonth returns the claim's monthly bucket derived from claim_start_date.
func (c *ClaimRecord) YearMonth() string {
	return FormatYearMonth(c.ClaimStartDate)
}

// FormatYearMonth buckets a calendar date into a 6-character key: 4-digit
// year followed by the zero-padded 2-digit month (e.g. "202403"). Derived
// purely from calendar fields; no timezone or locale handling.
func FormatYearMonth(date time.Time) string {
	return fmt.Sprintf("%04d%02d", date.Year(), int(date.Month()))
}
