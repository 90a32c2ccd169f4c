package reports

import "errors"

var ErrUnsupportedFormat = errors.New("unsupported report format")

type Service interface {
	// ExportProgress returns (content, filename, content type).
	ExportProgress(userID uint, req ProgressReportRequest) ([]byte, string, string, error)
}

type service struct {
	repo     Repository
	exporter ReportExporter
}

func NewService(repo Repository, exporter ReportExporter) Service {
	return &service{repo: repo, exporter: exporter}
}

func (s *service) ExportProgress(userID uint, req ProgressReportRequest) ([]byte, string, string, error) {
	switch req.Format {
	case FormatCSV, FormatExcel, FormatPDF:
	default:
		return nil, "", "", ErrUnsupportedFormat
	}

	start, end, err := GetDateRange(req.DateRange, req.StartDate, req.EndDate)
	if err != nil {
		return nil, "", "", err
	}

	rows, err := s.repo.GetProgressRows(userID, start, end)
	if err != nil {
		return nil, "", "", err
	}

	return s.exporter.Export(req.Format, rows)
}
