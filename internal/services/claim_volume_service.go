package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"claims-insights/internal/models"
	"claims-insights/internal/repositories"

	"github.com/shopspring/decimal"
)

// The reports aggregate in memory after a batched fetch. Row volumes are
// bounded by the claim_start_date window, and the distinct-count semantics
// need the full claim ID set per group before a count exists, so an
// incremental counter cannot replace the set.

const aggregateBatchSize = 5000

var (
	ErrDataAccess       = errors.New("claims data access failed")
	ErrInvalidDateRange = errors.New("start date must be before end date")
)

// reportSources lists the claim tables every report reads, in the order the
// per-source computations run. Output order is defined by the final sort, not
// by this order.
var reportSources = []string{
	models.DataSourceCMSSynthetic,
	models.DataSourceMedicareLDS,
}

type claimVolumeService struct {
	claimRepo repositories.ClaimRepositoryInterface
	metrics   MetricsRecorderInterface
}

// NewClaimVolumeService creates a new ClaimVolumeServiceInterface instance
func NewClaimVolumeService(
	claimRepo repositories.ClaimRepositoryInterface,
	metrics MetricsRecorderInterface,
) ClaimVolumeServiceInterface {
	return &claimVolumeService{
		claimRepo: claimRepo,
		metrics:   metrics,
	}
}

// groupKey identifies one output row before counting: the data source, up to
// two dimension values, and the derived year-month bucket. The fixed-size
// dims array keeps the key comparable; reports with fewer dimensions leave
// the trailing slots empty.
type groupKey struct {
	dataSource string
	dims       [2]string
	yearMonth  string
}

// dimensionExtractor pulls a report's dimension values out of a claim line.
type dimensionExtractor func(record *models.ClaimRecord) [2]string

// volumeRow is one unioned output row of a volume report.
type volumeRow struct {
	key   groupKey
	count int64
}

// aggregateSource groups one source's claim lines by (data_source, dims,
// year_month) and counts distinct claim IDs per group.
func (s *claimVolumeService) aggregateSource(source string, startDate, endDate *time.Time, extract dimensionExtractor) (map[groupKey]int64, error) {
	claimSets := make(map[groupKey]map[string]struct{})

	err := s.claimRepo.ForEachBySource(source, startDate, endDate, aggregateBatchSize, func(records []models.ClaimRecord) error {
		for i := range records {
			record := &records[i]
			key := groupKey{
				dataSource: record.DataSource,
				dims:       extract(record),
				yearMonth:  record.YearMonth(),
			}

			set, ok := claimSets[key]
			if !ok {
				set = make(map[string]struct{})
				claimSets[key] = set
			}
			set[record.ClaimID] = struct{}{}
		}
		return nil
	})
	if err != nil {
		slog.Error("claim scan failed",
			"source", source,
			"error", err)
		return nil, fmt.Errorf("%w: source %s: %v", ErrDataAccess, source, err)
	}

	counts := make(map[groupKey]int64, len(claimSets))
	for key, set := range claimSets {
		counts[key] = int64(len(set))
	}

	return counts, nil
}

// aggregateUnion runs the per-source aggregations independently and merges
// them with set-union semantics: an output row produced identically by both
// computations survives exactly once. The merged rows are sorted ascending by
// data_source, the dimension columns in declaration order, then year_month.
func (s *claimVolumeService) aggregateUnion(startDate, endDate *time.Time, extract dimensionExtractor) ([]volumeRow, error) {
	seen := make(map[volumeRow]struct{})
	rows := make([]volumeRow, 0)

	for _, source := range reportSources {
		counts, err := s.aggregateSource(source, startDate, endDate, extract)
		if err != nil {
			return nil, err
		}

		for key, count := range counts {
			row := volumeRow{key: key, count: count}
			if _, dup := seen[row]; dup {
				continue
			}
			seen[row] = struct{}{}
			rows = append(rows, row)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i].key, rows[j].key
		if a.dataSource != b.dataSource {
			return a.dataSource < b.dataSource
		}
		if a.dims[0] != b.dims[0] {
			return a.dims[0] < b.dims[0]
		}
		if a.dims[1] != b.dims[1] {
			return a.dims[1] < b.dims[1]
		}
		return a.yearMonth < b.yearMonth
	})

	return rows, nil
}

func validateWindow(startDate, endDate *time.Time) error {
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// EncounterVolume counts distinct claims per (data_source, encounter_group,
// encounter_type, year_month).
func (s *claimVolumeService) EncounterVolume(startDate, endDate *time.Time) ([]models.EncounterVolumeRow, error) {
	if err := validateWindow(startDate, endDate); err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := s.aggregateUnion(startDate, endDate, func(record *models.ClaimRecord) [2]string {
		return [2]string{record.EncounterGroup, record.EncounterType}
	})
	if err != nil {
		s.recordReport("encounter_volume", start, 0, err)
		return nil, err
	}

	result := make([]models.EncounterVolumeRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.EncounterVolumeRow{
			DataSource:     row.key.dataSource,
			EncounterGroup: row.key.dims[0],
			EncounterType:  row.key.dims[1],
			YearMonth:      row.key.yearMonth,
			ClaimCount:     row.count,
		})
	}

	s.recordReport("encounter_volume", start, len(result), nil)
	return result, nil
}

// ServiceCategoryVolume counts distinct claims per (data_source,
// service_category_1, year_month).
func (s *claimVolumeService) ServiceCategoryVolume(startDate, endDate *time.Time) ([]models.ServiceCategoryVolumeRow, error) {
	if err := validateWindow(startDate, endDate); err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := s.aggregateUnion(startDate, endDate, func(record *models.ClaimRecord) [2]string {
		return [2]string{record.ServiceCategory1, ""}
	})
	if err != nil {
		s.recordReport("service_category_volume", start, 0, err)
		return nil, err
	}

	result := make([]models.ServiceCategoryVolumeRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.ServiceCategoryVolumeRow{
			DataSource:       row.key.dataSource,
			ServiceCategory1: row.key.dims[0],
			YearMonth:        row.key.yearMonth,
			ClaimCount:       row.count,
		})
	}

	s.recordReport("service_category_volume", start, len(result), nil)
	return result, nil
}

// ClaimTypeVolume counts distinct claims per (data_source, claim_type,
// year_month).
func (s *claimVolumeService) ClaimTypeVolume(startDate, endDate *time.Time) ([]models.ClaimTypeVolumeRow, error) {
	if err := validateWindow(startDate, endDate); err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := s.aggregateUnion(startDate, endDate, func(record *models.ClaimRecord) [2]string {
		return [2]string{record.ClaimType, ""}
	})
	if err != nil {
		s.recordReport("claim_type_volume", start, 0, err)
		return nil, err
	}

	result := make([]models.ClaimTypeVolumeRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.ClaimTypeVolumeRow{
			DataSource: row.key.dataSource,
			ClaimType:  row.key.dims[0],
			YearMonth:  row.key.yearMonth,
			ClaimCount: row.count,
		})
	}

	s.recordReport("claim_type_volume", start, len(result), nil)
	return result, nil
}

// FinancialSummary aggregates per (data_source, year_month): distinct claim
// count plus the sum of paid amounts across all claim lines.
func (s *claimVolumeService) FinancialSummary(startDate, endDate *time.Time) ([]models.FinancialSummaryRow, error) {
	if err := validateWindow(startDate, endDate); err != nil {
		return nil, err
	}

	type financialAccumulator struct {
		claims    map[string]struct{}
		totalPaid decimal.Decimal
	}

	start := time.Now()
	rows := make([]models.FinancialSummaryRow, 0)
	seen := make(map[string]struct{})

	for _, source := range reportSources {
		groups := make(map[groupKey]*financialAccumulator)

		err := s.claimRepo.ForEachBySource(source, startDate, endDate, aggregateBatchSize, func(records []models.ClaimRecord) error {
			for i := range records {
				record := &records[i]
				key := groupKey{dataSource: record.DataSource, yearMonth: record.YearMonth()}

				acc, ok := groups[key]
				if !ok {
					acc = &financialAccumulator{claims: make(map[string]struct{}), totalPaid: decimal.Zero}
					groups[key] = acc
				}
				acc.claims[record.ClaimID] = struct{}{}
				acc.totalPaid = acc.totalPaid.Add(record.PaidAmount)
			}
			return nil
		})
		if err != nil {
			slog.Error("claim scan failed",
				"source", source,
				"error", err)
			s.recordReport("financial_summary", start, 0, err)
			return nil, fmt.Errorf("%w: source %s: %v", ErrDataAccess, source, err)
		}

		for key, acc := range groups {
			row := models.FinancialSummaryRow{
				DataSource: key.dataSource,
				YearMonth:  key.yearMonth,
				ClaimCount: int64(len(acc.claims)),
				TotalPaid:  acc.totalPaid,
			}

			// decimal values are not comparable; dedupe on the rendered row.
			dedupeKey := fmt.Sprintf("%s|%s|%d|%s", row.DataSource, row.YearMonth, row.ClaimCount, row.TotalPaid.String())
			if _, dup := seen[dedupeKey]; dup {
				continue
			}
			seen[dedupeKey] = struct{}{}
			rows = append(rows, row)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DataSource != rows[j].DataSource {
			return rows[i].DataSource < rows[j].DataSource
		}
		return rows[i].YearMonth < rows[j].YearMonth
	})

	s.recordReport("financial_summary", start, len(rows), nil)
	return rows, nil
}

func (s *claimVolumeService) recordReport(report string, start time.Time, rowCount int, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}

	s.metrics.IncrementCounter("report.generated", map[string]string{
		"report": report,
		"status": status,
	})
	s.metrics.RecordProcessingTime("report.generation", time.Since(start))

	if err == nil {
		s.metrics.RecordGauge("report.rows", float64(rowCount), map[string]string{"report": report})
		slog.Info("report generated",
			"report", report,
			"rows", rowCount,
			"duration_ms", time.Since(start).Milliseconds())
	}
}
