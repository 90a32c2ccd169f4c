package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ReportExporter renders progress rows into a downloadable document.
// Returns (content, filename, content type).
type ReportExporter interface {
	Export(format string, rows []ProgressReportRow) ([]byte, string, string, error)
}

type reportExporter struct{}

func NewReportExporter() ReportExporter {
	return &reportExporter{}
}

func (e *reportExporter) Export(format string, rows []ProgressReportRow) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.exportCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("progress_report_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := e.exportExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("progress_report_%s.xlsx", timestamp), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("progress_report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (e *reportExporter) exportCSV(rows []ProgressReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Date", "Weight (kg)", "BMI", "Category"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			r.Date.Format("2006-01-02"),
			fmt.Sprintf("%.1f", r.Weight),
			fmt.Sprintf("%.2f", r.Bmi),
			r.Category,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *reportExporter) exportExcel(rows []ProgressReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Progress"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"Date", "Weight (kg)", "BMI", "Category"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Weight)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Bmi)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Category)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *reportExporter) exportPDF(rows []ProgressReportRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Progress Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"Date", "Weight (kg)", "BMI", "Category"}
	widths := []float64{45, 45, 45, 45}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 6, r.Date.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%.1f", r.Weight), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.2f", r.Bmi), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, r.Category, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
