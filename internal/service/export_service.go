package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/careloop/advocates-api/internal/models"
	appErrors "github.com/careloop/advocates-api/pkg/errors"
	"github.com/careloop/advocates-api/pkg/export"
)

type advocateLister interface {
	ListAll(ctx context.Context, filter models.AdvocateFilter) ([]models.Advocate, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFormat enumerates supported directory export formats.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

const exportTitle = "Advocate Directory"

// ExportResult carries a rendered export and its download metadata.
type ExportResult struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders the advocate directory as downloadable files.
type ExportService struct {
	repo    advocateLister
	metrics *MetricsService
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(repo advocateLister, metrics *MetricsService, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{repo: repo, metrics: metrics, csv: csv, pdf: pdf, logger: logger}
}

// Export renders the filtered directory in the requested format. The
// filter follows the same precedence rules as the list endpoint; the
// pagination window is ignored so the file always carries the full
// filtered set.
func (s *ExportService) Export(ctx context.Context, format ExportFormat, filter models.AdvocateFilter) (*ExportResult, error) {
	switch format {
	case ExportFormatCSV, ExportFormatPDF:
	default:
		return nil, appErrors.ErrValidation.WithDetails([]string{"format: must be one of csv, pdf"})
	}

	start := time.Now()
	advocates, err := s.repo.ListAll(ctx, filter)
	s.metrics.ObserveDBQuery("advocates_list_all", time.Since(start))
	if err != nil {
		return nil, classifyStorageError(err)
	}

	dataset := buildAdvocateDataset(advocates)
	timestamp := time.Now().UTC().Format("20060102_150405")

	if format == ExportFormatCSV {
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("advocates_%s.csv", timestamp),
			ContentType: "text/csv",
			Payload:     payload,
		}, nil
	}

	payload, err := s.pdf.Render(dataset, exportTitle)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return &ExportResult{
		Filename:    fmt.Sprintf("advocates_%s.pdf", timestamp),
		ContentType: "application/pdf",
		Payload:     payload,
	}, nil
}

func buildAdvocateDataset(advocates []models.Advocate) export.Dataset {
	rows := make([]map[string]string, 0, len(advocates))
	for _, advocate := range advocates {
		rows = append(rows, map[string]string{
			"ID":                  fmt.Sprintf("%d", advocate.ID),
			"First Name":          advocate.FirstName,
			"Last Name":           advocate.LastName,
			"City":                advocate.City,
			"Degree":              advocate.Degree,
			"Specialties":         strings.Join(advocate.Specialties, ", "),
			"Years of Experience": fmt.Sprintf("%d", advocate.YearsOfExperience),
			"Phone Number":        fmt.Sprintf("%d", advocate.PhoneNumber),
		})
	}
	return export.Dataset{
		Headers: []string{"ID", "First Name", "Last Name", "City", "Degree", "Specialties", "Years of Experience", "Phone Number"},
		Rows:    rows,
	}
}
