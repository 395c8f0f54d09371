package handlers

import (
	"net/http"
	"time"

	"claims-insights/internal/dto"
	apierrors "claims-insights/internal/errors"
	"claims-insights/internal/models"
	"claims-insights/internal/repositories"
	"claims-insights/internal/services"
	"claims-insights/internal/validation"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	claimRepo repositories.ClaimRepositoryInterface
	generator services.ClaimGeneratorInterface
	metrics   services.MetricsRecorderInterface
	validator *validation.Validator
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	claimRepo repositories.ClaimRepositoryInterface,
	generator services.ClaimGeneratorInterface,
	metrics services.MetricsRecorderInterface,
) *DevHandler {
	return &DevHandler{
		claimRepo: claimRepo,
		generator: generator,
		metrics:   metrics,
		validator: validation.GetValidator(),
	}
}

// GenerateClaims seeds synthetic claims into the synthetic claim table
//
// Method: POST /api/v1/dev/claims/generate
// Authentication: Required (admin JWT)
// Environment: Development only
//
// Request body:
//   - dataSource: target source, must be "cms_synthetic"
//   - claimCount: number of claims to generate (1-100000)
//   - startDate, endDate: YYYY-MM-DD window for claim start dates
//   - reset: when true, existing rows of the source are deleted first
//
// Success Response: 201 Created with counts of created claims and lines
//
// Error Responses:
//   - 400: Malformed body, unknown source, invalid dates
//   - 401: Missing or invalid token
//   - 403: Insufficient role or non-development environment
//   - 422: Source does not accept generated data
//   - 500: Internal server error
func (h *DevHandler) GenerateClaims(c echo.Context) error {
	var req dto.GenerateClaimsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("invalid request body"))
	}

	if err := h.validator.GetValidate().Struct(&req); err != nil {
		return SendValidationError(c, h.validator.FormatErrors(err))
	}

	// The sampled production table is load-only.
	if req.DataSource != models.DataSourceCMSSynthetic {
		return SendError(c, apierrors.ClaimSourceProtected)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("invalid startDate format, expected YYYY-MM-DD"))
	}

	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("invalid endDate format, expected YYYY-MM-DD"))
	}

	if startDate.After(endDate) {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("startDate must not be after endDate"))
	}

	if req.Reset {
		if err := h.claimRepo.DeleteBySource(req.DataSource); err != nil {
			return SendSystemError(c, err)
		}
	}

	start := time.Now()
	records := h.generator.GenerateClaims(req.DataSource, req.ClaimCount, startDate, endDate)
	if err := h.claimRepo.CreateBatch(req.DataSource, records); err != nil {
		return SendError(c, apierrors.ClaimGenerationFailed)
	}

	total, err := h.claimRepo.CountBySource(req.DataSource)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("claims.generated", map[string]string{"source": req.DataSource})
	h.metrics.RecordProcessingTime("claims.generation", time.Since(start))
	h.metrics.RecordGauge("claims.rows", float64(total), map[string]string{"source": req.DataSource})

	return c.JSON(http.StatusCreated, SuccessResponse{
		Message: "synthetic claims generated",
		Data: dto.GenerateClaimsResponse{
			DataSource:    req.DataSource,
			ClaimsCreated: req.ClaimCount,
			LinesCreated:  len(records),
			TotalLines:    total,
		},
	})
}
