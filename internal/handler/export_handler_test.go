package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/handler"
	"shipmatrix/internal/service"
	"shipmatrix/mocks"
)

func TestExportHandler_Download_DefaultsToXLSX(t *testing.T) {
	exportSvc := new(mocks.MockExportService)
	h := handler.NewExportHandler(exportSvc)
	runID := uuid.New()

	exportSvc.On("Export", mock.Anything, runID, domain.ExportFormatXLSX).Return(&service.ExportOutput{
		FileName:    runID.String() + "_shipments.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("workbook bytes"),
	}, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/runs/"+runID.String()+"/export", nil)
	c.Params = gin.Params{{Key: "id", Value: runID.String()}}

	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "_shipments.xlsx")
	assert.Equal(t, "workbook bytes", w.Body.String())
	exportSvc.AssertExpectations(t)
}

func TestExportHandler_Download_CSVFormat(t *testing.T) {
	exportSvc := new(mocks.MockExportService)
	h := handler.NewExportHandler(exportSvc)
	runID := uuid.New()

	exportSvc.On("Export", mock.Anything, runID, domain.ExportFormatCSV).Return(&service.ExportOutput{
		FileName:    runID.String() + "_shipments.csv",
		ContentType: "text/csv",
		Data:        []byte("a,b,c"),
	}, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/runs/"+runID.String()+"/export?format=csv", nil)
	c.Params = gin.Params{{Key: "id", Value: runID.String()}}

	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
}

func TestExportHandler_Download_RunNotComplete(t *testing.T) {
	exportSvc := new(mocks.MockExportService)
	h := handler.NewExportHandler(exportSvc)
	runID := uuid.New()

	exportSvc.On("Export", mock.Anything, runID, domain.ExportFormatXLSX).
		Return(nil, domain.ErrRunNotComplete)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/runs/"+runID.String()+"/export", nil)
	c.Params = gin.Params{{Key: "id", Value: runID.String()}}

	h.Download(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "RUN_NOT_COMPLETE", resp.Error.Code)
}

func TestExportHandler_Records(t *testing.T) {
	exportSvc := new(mocks.MockExportService)
	h := handler.NewExportHandler(exportSvc)
	runID := uuid.New()

	exportSvc.On("Records", mock.Anything, runID).Return([]domain.ShipmentRecord{
		{TrackingNumber: "1ZA1B2C3D401234567"},
	}, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/runs/"+runID.String()+"/records", nil)
	c.Params = gin.Params{{Key: "id", Value: runID.String()}}

	h.Records(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1ZA1B2C3D401234567")
}

func TestExportHandler_Records_InvalidID(t *testing.T) {
	exportSvc := new(mocks.MockExportService)
	h := handler.NewExportHandler(exportSvc)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/runs/zzz/records", nil)
	c.Params = gin.Params{{Key: "id", Value: "zzz"}}

	h.Records(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	exportSvc.AssertNotCalled(t, "Records", mock.Anything, mock.Anything)
}

func TestStatsHandler_GetRunStats(t *testing.T) {
	statsSvc := new(mocks.MockStatsService)
	h := handler.NewStatsHandler(statsSvc)
	runID := uuid.New()

	statsSvc.On("GetRunStats", mock.Anything, runID).Return(&domain.RunStats{TotalShipments: 12}, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/runs/"+runID.String()+"/stats", nil)
	c.Params = gin.Params{{Key: "id", Value: runID.String()}}

	h.GetRunStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_shipments":12`)
}

func TestStatsHandler_GetRunStats_NotFound(t *testing.T) {
	statsSvc := new(mocks.MockStatsService)
	h := handler.NewStatsHandler(statsSvc)
	runID := uuid.New()

	statsSvc.On("GetRunStats", mock.Anything, runID).Return(nil, domain.ErrNotFound)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/runs/"+runID.String()+"/stats", nil)
	c.Params = gin.Params{{Key: "id", Value: runID.String()}}

	h.GetRunStats(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
