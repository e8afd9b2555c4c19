package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ta-portal-api/internal/models"
	appErrors "github.com/noah-isme/ta-portal-api/pkg/errors"
)

type mockExportLister struct {
	views []models.ApplicationView
	err   error
}

func (m *mockExportLister) ListByTeacher(ctx context.Context, teacherEmail string) ([]models.ApplicationView, error) {
	return m.views, m.err
}

func TestExportServiceCSVOneRowPerApplication(t *testing.T) {
	lister := &mockExportLister{views: []models.ApplicationView{
		{StudentName: "Grace Hopper", StudentEmail: "grace@uni.edu", SlotID: "s-1", Status: models.ApplicationPending},
		{StudentName: "Alan Turing", StudentEmail: "alan@uni.edu", SlotID: "s-2", Status: models.ApplicationAccepted},
	}}
	svc := NewExportService(lister, true, nil)

	result, err := svc.Applications(context.Background(), "t@uni.edu", ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "applications.csv", result.Filename)

	lines := strings.Split(strings.TrimSpace(string(result.Content)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Student Name")
	assert.Contains(t, lines[1], "grace@uni.edu")
	assert.Contains(t, lines[2], "alan@uni.edu")
}

func TestExportServicePDF(t *testing.T) {
	lister := &mockExportLister{views: []models.ApplicationView{
		{StudentName: "Grace Hopper", StudentEmail: "grace@uni.edu", SlotID: "s-1", Status: models.ApplicationPending},
	}}
	svc := NewExportService(lister, true, nil)

	result, err := svc.Applications(context.Background(), "t@uni.edu", ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.NotEmpty(t, result.Content)
}

func TestExportServiceDisabled(t *testing.T) {
	svc := NewExportService(&mockExportLister{}, false, nil)

	_, err := svc.Applications(context.Background(), "t@uni.edu", ExportFormatCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestExportServiceUnsupportedFormat(t *testing.T) {
	lister := &mockExportLister{views: []models.ApplicationView{{StudentName: "Grace Hopper"}}}
	svc := NewExportService(lister, true, nil)

	_, err := svc.Applications(context.Background(), "t@uni.edu", "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
