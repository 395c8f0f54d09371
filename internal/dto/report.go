package dto

// Report output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ReportQuery contains the query parameters shared by the report endpoints.
// Dates use YYYY-MM-DD and bound claim_start_date inclusively.
type ReportQuery struct {
	StartDate string `query:"startDate" validate:"omitempty,report_date"`
	EndDate   string `query:"endDate" validate:"omitempty,report_date"`
	Format    string `query:"format" validate:"omitempty,report_format"`
}

// GenerateClaimsRequest is the body of the dev claim seeding endpoint.
type GenerateClaimsRequest struct {
	DataSource string `json:"dataSource" validate:"required,data_source"`
	ClaimCount int    `json:"claimCount" validate:"required,min=1,max=100000"`
	StartDate  string `json:"startDate" validate:"required,report_date"`
	EndDate    string `json:"endDate" validate:"required,report_date"`
	Reset      bool   `json:"reset"`
}

// GenerateClaimsResponse reports the outcome of a seeding run.
type GenerateClaimsResponse struct {
	DataSource    string `json:"dataSource"`
	ClaimsCreated int    `json:"claimsCreated"`
	LinesCreated  int    `json:"linesCreated"`
	TotalLines    int64  `json:"totalLines"`
}
