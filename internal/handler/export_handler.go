package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/service"
)

// ExportHandler handles record listing and export download endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Records handles GET /api/v1/runs/:id/records
// @Summary List extracted records
// @Description List the shipment records extracted by a completed run
// @Tags exports
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} Response{data=[]domain.ShipmentRecord} "Extracted records"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Run not found"
// @Failure 409 {object} ErrorResponseBody "Run not complete"
// @Security BearerAuth
// @Router /runs/{id}/records [get]
func (h *ExportHandler) Records(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid run id")
		return
	}

	records, err := h.exportService.Records(c.Request.Context(), runID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}

// Download handles GET /api/v1/runs/:id/export
// @Summary Download an export
// @Description Download a completed run's records as an XLSX workbook or CSV file
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param id path string true "Run ID"
// @Param format query string false "Export format (xlsx or csv)" default(xlsx)
// @Success 200 {file} file "Exported file"
// @Failure 400 {object} ErrorResponseBody "Unsupported format"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Run not found"
// @Failure 409 {object} ErrorResponseBody "Run not complete"
// @Security BearerAuth
// @Router /runs/{id}/export [get]
func (h *ExportHandler) Download(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid run id")
		return
	}

	format := domain.ExportFormat(c.DefaultQuery("format", string(domain.ExportFormatXLSX)))

	out, err := h.exportService.Export(c.Request.Context(), runID, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}
