package reports

import "time"

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

const (
	DateRangeDaily   = "daily"
	DateRangeWeekly  = "weekly"
	DateRangeMonthly = "monthly"
	DateRangeYearly  = "yearly"
	DateRangeCustom  = "custom"
)

// ProgressReportRow is one exported reading.
type ProgressReportRow struct {
	Date     time.Time `json:"date"`
	Weight   float64   `json:"weight"`
	Bmi      float64   `json:"bmi"`
	Category string    `json:"category"`
}

// ProgressReportRequest carries the parsed query parameters.
type ProgressReportRequest struct {
	Format    string
	DateRange string
	StartDate string
	EndDate   string
}
