package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/ta-portal-api/internal/models"
	appErrors "github.com/noah-isme/ta-portal-api/pkg/errors"
	"github.com/noah-isme/ta-portal-api/pkg/export"
)

// Export output formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type exportApplicationLister interface {
	ListByTeacher(ctx context.Context, teacherEmail string) ([]models.ApplicationView, error)
}

// ExportResult carries a rendered document and its transport metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders a teacher's applications as downloadable documents.
type ExportService struct {
	apps    exportApplicationLister
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	enabled bool
	logger  *zap.Logger
}

// NewExportService constructs an ExportService instance.
func NewExportService(apps exportApplicationLister, enabled bool, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		apps:    apps,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		enabled: enabled,
		logger:  logger,
	}
}

// Applications renders the caller's applications in the requested format.
func (s *ExportService) Applications(ctx context.Context, teacherEmail, format string) (*ExportResult, error) {
	if !s.enabled {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "exports are disabled")
	}

	views, err := s.apps.ListByTeacher(ctx, teacherEmail)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{"Student Name", "Student Email", "Slot", "Status", "Statement", "Favourite"},
		Rows:    make([][]string, 0, len(views)),
	}
	for _, view := range views {
		dataset.Rows = append(dataset.Rows, []string{
			view.StudentName,
			view.StudentEmail,
			view.SlotID,
			view.Status,
			view.StudentStatement,
			strconv.FormatBool(view.Favourite),
		})
	}

	switch format {
	case ExportFormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, fmt.Errorf("render csv: %w", err)
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: "applications.csv"}, nil
	case ExportFormatPDF:
		content, err := s.pdf.Render(dataset, "Applications")
		if err != nil {
			return nil, fmt.Errorf("render pdf: %w", err)
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: "applications.pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
