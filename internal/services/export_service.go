package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/sjperalta/hotel-analytics-api/internal/jobs"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/sjperalta/hotel-analytics-api/internal/storage"
	"github.com/sjperalta/hotel-analytics-api/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

var contentTypes = map[string]string{
	FormatCSV:  "text/csv",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// ExportRequest selects a report, its scope and output format
type ExportRequest struct {
	Report  string
	Format  string
	Query   ReportQuery
	AsOf    time.Time
	Horizon int
	Archive bool
}

// ExportResult is a rendered report ready to be served
type ExportResult struct {
	Data        []byte
	Filename    string
	ContentType string
	Archived    bool
}

type ExportService struct {
	analyticsSvc *AnalyticsService
	storage      *storage.LocalStorage
	worker       *jobs.Worker
}

func NewExportService(analyticsSvc *AnalyticsService, storage *storage.LocalStorage, worker *jobs.Worker) *ExportService {
	return &ExportService{analyticsSvc: analyticsSvc, storage: storage, worker: worker}
}

// Export builds the report and renders it. When archiving is requested the
// file is written to storage in the background.
func (s *ExportService) Export(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	contentType, ok := contentTypes[req.Format]
	if !ok {
		return nil, ErrInvalidReport
	}

	table, err := s.analyticsSvc.Report(ctx, req.Report, req.Query, req.AsOf, req.Horizon)
	if err != nil {
		return nil, err
	}

	data, err := s.Render(table, req.Format)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{
		Data:        data,
		Filename:    fmt.Sprintf("%s_%s.%s", table.Name, time.Now().Format(models.DateLayout), req.Format),
		ContentType: contentType,
	}

	if req.Archive && s.storage != nil && s.worker != nil {
		businessDir := fmt.Sprintf("exports/%d", req.Query.BusinessID)
		filename := result.Filename
		s.worker.Enqueue("archive_export", func(ctx context.Context) error {
			path, err := s.storage.Save(data, filename, businessDir)
			if err != nil {
				return err
			}
			logger.Info("report archived", "business_id", req.Query.BusinessID, "path", path)
			return nil
		})
		result.Archived = true
	}

	return result, nil
}

// Render serializes a report table into the given format
func (s *ExportService) Render(table models.ReportTable, format string) ([]byte, error) {
	switch format {
	case FormatCSV:
		return s.ExportCSV(table)
	case FormatXLSX:
		return s.ExportXLSX(table)
	case FormatPDF:
		return s.ExportPDF(table)
	case FormatJSON:
		return json.Marshal(table.Records())
	}
	return nil, ErrInvalidReport
}

// cellText formats a value for text outputs; floats keep two decimals
func cellText(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func (s *ExportService) ExportCSV(table models.ReportTable) ([]byte, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	if err := writer.Write(table.Columns); err != nil {
		return nil, err
	}
	for _, row := range table.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = cellText(v)
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

func (s *ExportService) ExportXLSX(table models.ReportTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := table.Name
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for col, name := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(sheet, cell, name)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	for r, row := range table.Rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return nil, err
			}
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExportService) ExportPDF(table models.ReportTable) ([]byte, error) {
	orientation := "P"
	if len(table.Columns) > 5 {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Reporte: "+table.Name)
	pdf.Ln(12)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(max(len(table.Columns), 1))

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(224, 224, 224)
	for _, name := range table.Columns {
		pdf.CellFormat(colWidth, 7, name, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range table.Rows {
		for _, v := range row {
			align := "R"
			if _, ok := v.(string); ok {
				align = "L"
			}
			pdf.CellFormat(colWidth, 6, cellText(v), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
