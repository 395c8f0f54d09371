package handlers

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"claims-insights/internal/dto"
	apierrors "claims-insights/internal/errors"
	"claims-insights/internal/services"
	"claims-insights/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	volumeService services.ClaimVolumeServiceInterface
	validator     *validation.Validator
}

func NewReportHandler(volumeService services.ClaimVolumeServiceInterface) *ReportHandler {
	return &ReportHandler{
		volumeService: volumeService,
		validator:     validation.GetValidator(),
	}
}

// reportParams holds the parsed query parameters of a report request.
type reportParams struct {
	startDate *time.Time
	endDate   *time.Time
	format    string
}

// parseReportParams binds and validates the shared report query parameters.
// A non-nil error has already been written to the response.
func (h *ReportHandler) parseReportParams(c echo.Context) (*reportParams, error) {
	var query dto.ReportQuery
	if err := c.Bind(&query); err != nil {
		return nil, SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	if err := h.validator.GetValidate().Struct(&query); err != nil {
		return nil, h.sendQueryValidationError(c, err)
	}

	params := &reportParams{format: dto.FormatJSON}

	if query.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			return nil, SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("startDate must use format YYYY-MM-DD"))
		}
		params.startDate = &parsed
	}

	if query.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			return nil, SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("endDate must use format YYYY-MM-DD"))
		}
		params.endDate = &parsed
	}

	if query.Format != "" {
		params.format = strings.ToLower(query.Format)
	}

	return params, nil
}

// sendQueryValidationError maps report query validator failures to their
// domain error codes. Date and format problems have dedicated codes; anything
// else falls back to the generic validation envelope.
func (h *ReportHandler) sendQueryValidationError(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			switch fe.Tag() {
			case "report_date":
				return SendError(c, apierrors.ValidationInvalidDate,
					apierrors.WithDetails(fe.Field()+" must use format YYYY-MM-DD"))
			case "report_format":
				return SendError(c, apierrors.ReportInvalidFormat,
					apierrors.WithDetails("format must be 'json' or 'csv'"))
			}
		}
	}
	return SendValidationError(c, h.validator.FormatErrors(err))
}

// GetEncounterVolume returns monthly distinct claim counts grouped by
// encounter group and encounter type
//
// Method: GET /api/v1/reports/encounter-volume
//
// Query parameters:
//   - startDate: YYYY-MM-DD lower bound on claim start date (optional)
//   - endDate: YYYY-MM-DD upper bound on claim start date (optional)
//   - format: "json" (default) or "csv"
//
// Success Response: 200 OK
//   - rows sorted by data_source, encounter_group, encounter_type, year_month
//
// Error Responses:
//   - 400: Invalid date or format parameters, start date after end date
//   - 500: Internal server error
func (h *ReportHandler) GetEncounterVolume(c echo.Context) error {
	params, err := h.parseReportParams(c)
	if err != nil {
		return err
	}

	rows, err := h.volumeService.EncounterVolume(params.startDate, params.endDate)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	if params.format == dto.FormatCSV {
		records := make([][]string, 0, len(rows))
		for _, row := range rows {
			records = append(records, []string{
				row.DataSource,
				row.EncounterGroup,
				row.EncounterType,
				row.YearMonth,
				strconv.FormatInt(row.ClaimCount, 10),
			})
		}
		return writeCSV(c, "encounter_volume",
			[]string{"data_source", "encounter_group", "encounter_type", "year_month", "claim_count"},
			records)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: rows,
		Meta: map[string]interface{}{"row_count": len(rows)},
	})
}

// GetServiceCategoryVolume returns monthly distinct claim counts grouped by
// service category
//
// Method: GET /api/v1/reports/service-category-volume
//
// Query parameters and error responses match GetEncounterVolume.
func (h *ReportHandler) GetServiceCategoryVolume(c echo.Context) error {
	params, err := h.parseReportParams(c)
	if err != nil {
		return err
	}

	rows, err := h.volumeService.ServiceCategoryVolume(params.startDate, params.endDate)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	if params.format == dto.FormatCSV {
		records := make([][]string, 0, len(rows))
		for _, row := range rows {
			records = append(records, []string{
				row.DataSource,
				row.ServiceCategory1,
				row.YearMonth,
				strconv.FormatInt(row.ClaimCount, 10),
			})
		}
		return writeCSV(c, "service_category_volume",
			[]string{"data_source", "service_category_1", "year_month", "claim_count"},
			records)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: rows,
		Meta: map[string]interface{}{"row_count": len(rows)},
	})
}

// GetClaimTypeVolume returns monthly distinct claim counts grouped by claim
// type
//
// Method: GET /api/v1/reports/claim-type-volume
//
// Query parameters and error responses match GetEncounterVolume.
func (h *ReportHandler) GetClaimTypeVolume(c echo.Context) error {
	params, err := h.parseReportParams(c)
	if err != nil {
		return err
	}

	rows, err := h.volumeService.ClaimTypeVolume(params.startDate, params.endDate)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	if params.format == dto.FormatCSV {
		records := make([][]string, 0, len(rows))
		for _, row := range rows {
			records = append(records, []string{
				row.DataSource,
				row.ClaimType,
				row.YearMonth,
				strconv.FormatInt(row.ClaimCount, 10),
			})
		}
		return writeCSV(c, "claim_type_volume",
			[]string{"data_source", "claim_type", "year_month", "claim_count"},
			records)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: rows,
		Meta: map[string]interface{}{"row_count": len(rows)},
	})
}

// GetFinancialSummary returns monthly distinct claim counts and paid amount
// totals per data source
//
// Method: GET /api/v1/reports/financial-summary
//
// Query parameters and error responses match GetEncounterVolume.
func (h *ReportHandler) GetFinancialSummary(c echo.Context) error {
	params, err := h.parseReportParams(c)
	if err != nil {
		return err
	}

	rows, err := h.volumeService.FinancialSummary(params.startDate, params.endDate)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	if params.format == dto.FormatCSV {
		records := make([][]string, 0, len(rows))
		for _, row := range rows {
			records = append(records, []string{
				row.DataSource,
				row.YearMonth,
				strconv.FormatInt(row.ClaimCount, 10),
				row.TotalPaid.StringFixed(2),
			})
		}
		return writeCSV(c, "financial_summary",
			[]string{"data_source", "year_month", "claim_count", "total_paid"},
			records)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: rows,
		Meta: map[string]interface{}{"row_count": len(rows)},
	})
}

func (h *ReportHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrInvalidDateRange) {
		return SendError(c, apierrors.ReportInvalidDateRange)
	}

	if errors.Is(err, services.ErrDataAccess) {
		return SendError(c, apierrors.ReportGenerationFailed)
	}

	return SendSystemError(c, err)
}

// writeCSV streams a report as a CSV attachment.
func writeCSV(c echo.Context, name string, header []string, records [][]string) error {
	response := c.Response()
	response.Header().Set(echo.HeaderContentType, "text/csv")
	response.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`.csv"`)
	response.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(response)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(records); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
