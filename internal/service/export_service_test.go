package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careloop/advocates-api/internal/models"
	appErrors "github.com/careloop/advocates-api/pkg/errors"
	"github.com/careloop/advocates-api/pkg/export"
)

type mockListerRepo struct {
	advocates  []models.Advocate
	lastFilter models.AdvocateFilter
	err        error
}

func (m *mockListerRepo) ListAll(ctx context.Context, filter models.AdvocateFilter) ([]models.Advocate, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.advocates, nil
}

type failingRenderer struct{}

func (failingRenderer) Render(data export.Dataset) ([]byte, error) {
	return nil, errors.New("render blew up")
}

func TestExportServiceCSV(t *testing.T) {
	advocates := makeAdvocates(2)
	advocates[1].Specialties = models.SpecialtyList{"Bipolar", "Anxiety"}
	repo := &mockListerRepo{advocates: advocates}
	svc := NewExportService(repo, nil, nil, nil, zap.NewNop())

	result, err := svc.Export(context.Background(), ExportFormatCSV, models.AdvocateFilter{Search: "denver"})
	require.NoError(t, err)
	assert.Equal(t, "denver", repo.lastFilter.Search)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasPrefix(result.Filename, "advocates_"))
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	records, err := csv.NewReader(bytes.NewReader(result.Payload)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"ID", "First Name", "Last Name", "City", "Degree", "Specialties", "Years of Experience", "Phone Number"}, records[0])
	assert.Equal(t, "First1", records[1][1])
	assert.Equal(t, "Bipolar, Anxiety", records[2][5])
}

func TestExportServicePDF(t *testing.T) {
	repo := &mockListerRepo{advocates: makeAdvocates(2)}
	svc := NewExportService(repo, nil, nil, nil, zap.NewNop())

	result, err := svc.Export(context.Background(), ExportFormatPDF, models.AdvocateFilter{})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".pdf"))
	assert.True(t, bytes.HasPrefix(result.Payload, []byte("%PDF")))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(&mockListerRepo{}, nil, nil, nil, zap.NewNop())

	_, err := svc.Export(context.Background(), ExportFormat("xlsx"), models.AdvocateFilter{})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, []string{"format: must be one of csv, pdf"}, appErr.Details)
}

func TestExportServiceStorageFailure(t *testing.T) {
	repo := &mockListerRepo{err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}}
	svc := NewExportService(repo, nil, nil, nil, zap.NewNop())

	_, err := svc.Export(context.Background(), ExportFormatCSV, models.AdvocateFilter{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnavailable.Code, appErrors.FromError(err).Code)
}

func TestExportServiceRendererFailure(t *testing.T) {
	repo := &mockListerRepo{advocates: makeAdvocates(1)}
	svc := NewExportService(repo, nil, failingRenderer{}, nil, zap.NewNop())

	_, err := svc.Export(context.Background(), ExportFormatCSV, models.AdvocateFilter{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}
