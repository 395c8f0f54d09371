package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"claims-insights/internal/models"
	"claims-insights/internal/repositories/repository_mocks"
	"claims-insights/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DevHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	echo          *echo.Echo
	mockRepo      *repository_mocks.MockClaimRepositoryInterface
	mockGenerator *service_mocks.MockClaimGeneratorInterface
	mockMetrics   *service_mocks.MockMetricsRecorderInterface
	handler       *DevHandler
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerTestSuite))
}

func (s *DevHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.mockRepo = repository_mocks.NewMockClaimRepositoryInterface(s.ctrl)
	s.mockGenerator = service_mocks.NewMockClaimGeneratorInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.handler = NewDevHandler(s.mockRepo, s.mockGenerator, s.mockMetrics)
}

func (s *DevHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerTestSuite) postGenerate(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/claims/generate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *DevHandlerTestSuite) TestGenerateClaims_Success() {
	generated := []models.ClaimRecord{
		{
			DataSource:       models.DataSourceCMSSynthetic,
			ClaimID:          "1234567890",
			ClaimLineNumber:  1,
			ClaimType:        models.ClaimTypeProfessional,
			EncounterGroup:   "office based",
			EncounterType:    "office visit",
			ServiceCategory1: "office visit",
			ClaimStartDate:   time.Date(2020, time.March, 3, 0, 0, 0, 0, time.UTC),
			PaidAmount:       decimal.NewFromFloat(95.00),
		},
	}

	s.mockGenerator.EXPECT().
		GenerateClaims(models.DataSourceCMSSynthetic, 1, gomock.Any(), gomock.Any()).
		Return(generated)
	s.mockRepo.EXPECT().CreateBatch(models.DataSourceCMSSynthetic, generated).Return(nil)
	s.mockRepo.EXPECT().CountBySource(models.DataSourceCMSSynthetic).Return(int64(1), nil)
	s.mockMetrics.EXPECT().IncrementCounter("claims.generated", gomock.Any())
	s.mockMetrics.EXPECT().RecordProcessingTime("claims.generation", gomock.Any())
	s.mockMetrics.EXPECT().RecordGauge("claims.rows", float64(1), gomock.Any())

	c, rec := s.postGenerate(`{"dataSource":"cms_synthetic","claimCount":1,"startDate":"2020-01-01","endDate":"2020-12-31"}`)
	err := s.handler.GenerateClaims(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response.Data.(map[string]interface{})
	s.Equal("cms_synthetic", data["dataSource"])
	s.Equal(float64(1), data["linesCreated"])
	s.Equal(float64(1), data["totalLines"])
}

func (s *DevHandlerTestSuite) TestGenerateClaims_ResetDeletesFirst() {
	s.mockRepo.EXPECT().DeleteBySource(models.DataSourceCMSSynthetic).Return(nil)
	s.mockGenerator.EXPECT().
		GenerateClaims(models.DataSourceCMSSynthetic, 1, gomock.Any(), gomock.Any()).
		Return([]models.ClaimRecord{})
	s.mockRepo.EXPECT().CreateBatch(models.DataSourceCMSSynthetic, gomock.Any()).Return(nil)
	s.mockRepo.EXPECT().CountBySource(models.DataSourceCMSSynthetic).Return(int64(0), nil)
	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any())
	s.mockMetrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any())
	s.mockMetrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any())

	c, rec := s.postGenerate(`{"dataSource":"cms_synthetic","claimCount":1,"startDate":"2020-01-01","endDate":"2020-12-31","reset":true}`)
	err := s.handler.GenerateClaims(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *DevHandlerTestSuite) TestGenerateClaims_ProtectedSource() {
	c, rec := s.postGenerate(`{"dataSource":"medicare_lds","claimCount":10,"startDate":"2020-01-01","endDate":"2020-12-31"}`)
	err := s.handler.GenerateClaims(c)

	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("CLAIM_003", response.Error.Code)
}

func (s *DevHandlerTestSuite) TestGenerateClaims_UnknownSource() {
	c, rec := s.postGenerate(`{"dataSource":"claims_2019","claimCount":10,"startDate":"2020-01-01","endDate":"2020-12-31"}`)
	err := s.handler.GenerateClaims(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Contains(response.Error.Details, "dataSource: must be a known claims data source")
}

func (s *DevHandlerTestSuite) TestGenerateClaims_MissingCount() {
	c, rec := s.postGenerate(`{"dataSource":"cms_synthetic","startDate":"2020-01-01","endDate":"2020-12-31"}`)
	err := s.handler.GenerateClaims(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Contains(response.Error.Details, "claimCount: is required")
}

func (s *DevHandlerTestSuite) TestGenerateClaims_StartAfterEnd() {
	c, rec := s.postGenerate(`{"dataSource":"cms_synthetic","claimCount":5,"startDate":"2020-12-31","endDate":"2020-01-01"}`)
	err := s.handler.GenerateClaims(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_005", response.Error.Code)
}
