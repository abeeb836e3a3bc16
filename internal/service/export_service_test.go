package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
	"shipmatrix/internal/export"
	"shipmatrix/internal/service"
	"shipmatrix/mocks"
)

type exportFixture struct {
	runRepo    *mocks.MockParseRunRepo
	recordRepo *mocks.MockRecordRepo
	statsRepo  *mocks.MockStatsRepo
	svc        service.ExportService
}

func newExportFixture(t *testing.T) *exportFixture {
	t.Helper()
	f := &exportFixture{
		runRepo:    new(mocks.MockParseRunRepo),
		recordRepo: new(mocks.MockRecordRepo),
		statsRepo:  new(mocks.MockStatsRepo),
	}
	f.svc = service.NewExportService(f.runRepo, f.recordRepo, f.statsRepo, catalog.New())
	return f
}

func completedRun(runID uuid.UUID) *domain.ParseRun {
	return &domain.ParseRun{ID: runID, Status: domain.RunStatusCompleted}
}

func exportRecords() []domain.ShipmentRecord {
	return []domain.ShipmentRecord{
		{InvoiceNumber: "0000A1B2C3", TrackingNumber: "1ZA1B2C3D401234567", ServiceType: "Ground Residential"},
	}
}

func TestExportService_Export_CSV(t *testing.T) {
	f := newExportFixture(t)
	runID := uuid.New()

	f.runRepo.On("GetByID", mock.Anything, runID).Return(completedRun(runID), nil)
	f.recordRepo.On("ListByRun", mock.Anything, runID).Return(exportRecords(), nil)

	out, err := f.svc.Export(context.Background(), runID, domain.ExportFormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", out.ContentType)
	assert.Contains(t, out.FileName, ".csv")
	assert.True(t, bytes.HasPrefix(out.Data, export.BOM))
	assert.Contains(t, string(out.Data), "1ZA1B2C3D401234567")
}

func TestExportService_Export_XLSX(t *testing.T) {
	f := newExportFixture(t)
	runID := uuid.New()

	f.runRepo.On("GetByID", mock.Anything, runID).Return(completedRun(runID), nil)
	f.recordRepo.On("ListByRun", mock.Anything, runID).Return(exportRecords(), nil)
	f.statsRepo.On("GetByRun", mock.Anything, runID).Return(&domain.RunStats{TotalShipments: 1}, nil)

	out, err := f.svc.Export(context.Background(), runID, domain.ExportFormatXLSX)
	require.NoError(t, err)

	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out.ContentType)
	assert.Contains(t, out.FileName, ".xlsx")
	assert.NotEmpty(t, out.Data)
}

func TestExportService_Export_UnknownFormat(t *testing.T) {
	f := newExportFixture(t)

	_, err := f.svc.Export(context.Background(), uuid.New(), domain.ExportFormat("pdf"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	f.runRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestExportService_Export_RunNotComplete(t *testing.T) {
	f := newExportFixture(t)
	runID := uuid.New()

	f.runRepo.On("GetByID", mock.Anything, runID).
		Return(&domain.ParseRun{ID: runID, Status: domain.RunStatusProcessing}, nil)

	_, err := f.svc.Export(context.Background(), runID, domain.ExportFormatCSV)
	assert.ErrorIs(t, err, domain.ErrRunNotComplete)
}

func TestExportService_Records(t *testing.T) {
	f := newExportFixture(t)
	runID := uuid.New()

	f.runRepo.On("GetByID", mock.Anything, runID).Return(completedRun(runID), nil)
	f.recordRepo.On("ListByRun", mock.Anything, runID).Return(exportRecords(), nil)

	records, err := f.svc.Records(context.Background(), runID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1ZA1B2C3D401234567", records[0].TrackingNumber)
}

func TestExportService_Records_RunNotComplete(t *testing.T) {
	f := newExportFixture(t)
	runID := uuid.New()

	f.runRepo.On("GetByID", mock.Anything, runID).
		Return(&domain.ParseRun{ID: runID, Status: domain.RunStatusPending}, nil)

	_, err := f.svc.Records(context.Background(), runID)
	assert.ErrorIs(t, err, domain.ErrRunNotComplete)
}

func TestStatsService_GetRunStats(t *testing.T) {
	runRepo := new(mocks.MockParseRunRepo)
	statsRepo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(runRepo, statsRepo)
	runID := uuid.New()

	runRepo.On("GetByID", mock.Anything, runID).Return(completedRun(runID), nil)
	statsRepo.On("GetByRun", mock.Anything, runID).Return(&domain.RunStats{TotalShipments: 7}, nil)

	stats, err := svc.GetRunStats(context.Background(), runID)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalShipments)
}

func TestStatsService_GetRunStats_RunNotComplete(t *testing.T) {
	runRepo := new(mocks.MockParseRunRepo)
	statsRepo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(runRepo, statsRepo)
	runID := uuid.New()

	runRepo.On("GetByID", mock.Anything, runID).
		Return(&domain.ParseRun{ID: runID, Status: domain.RunStatusFailed}, nil)

	_, err := svc.GetRunStats(context.Background(), runID)
	assert.ErrorIs(t, err, domain.ErrRunNotComplete)
	statsRepo.AssertNotCalled(t, "GetByRun", mock.Anything, mock.Anything)
}
