package models

import "github.com/shopspring/decimal"

// Report rows carry the grouping columns in output order: data_source first,
// then the report's dimension columns, then year_month, then the measures.
// claim_count is always a distinct count of claim IDs within the group.

// EncounterVolumeRow is one group of the encounter volume report
// (dimensions: encounter_group, encounter_type).
type EncounterVolumeRow struct {
	DataSource     string `json:"data_source"`
	EncounterGroup string `json:"encounter_group"`
	EncounterType  string `json:"encounter_type"`
	YearMonth      string `json:"year_month"`
	ClaimCount     int64  `json:"claim_count"`
}

// ServiceCategoryVolumeRow is one group of the service category volume report
// (dimension: service_category_1).
type ServiceCategoryVolumeRow struct {
	DataSource       string `json:"data_source"`
	ServiceCategory1 string `json:"service_category_1"`
	YearMonth        string `json:"year_month"`
	ClaimCount       int64  `json:"claim_count"`
}

// ClaimTypeVolumeRow is one group of the claim type volume report
// (dimension: claim_type).
type ClaimTypeVolumeRow struct {
	DataSource string `json:"data_source"`
	ClaimType  string `json:"claim_type"`
	YearMonth  string `json:"year_month"`
	ClaimCount int64  `json:"claim_count"`
}

// FinancialSummaryRow aggregates paid amounts per source and month alongside
// the distinct claim count.
type FinancialSummaryRow struct {
	DataSource string          `json:"data_source"`
	YearMonth  string          `json:"year_month"`
	ClaimCount int64           `json:"claim_count"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
}
