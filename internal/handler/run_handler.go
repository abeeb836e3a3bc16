package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/service"
)

// RunHandler handles parse run endpoints.
type RunHandler struct {
	parseService service.ParseService
}

// NewRunHandler creates a new RunHandler.
func NewRunHandler(parseService service.ParseService) *RunHandler {
	return &RunHandler{parseService: parseService}
}

// Upload handles POST /api/v1/runs
// @Summary Upload an invoice document
// @Description Upload a plain-text carrier invoice document and queue it for extraction
// @Tags runs
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Invoice text file"
// @Success 202 {object} Response{data=domain.ParseRun} "Run queued"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Security BearerAuth
// @Router /runs [post]
func (h *RunHandler) Upload(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	input := service.UploadInput{
		CreatedBy: userID,
		File:      file,
		Header:    header,
	}

	run, err := h.parseService.Upload(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondAccepted(c, run)
}

// List handles GET /api/v1/runs
// @Summary List parse runs
// @Description List parse runs. Members see their own runs; admins see all runs.
// @Tags runs
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.ParseRun,meta=PagMeta} "List of runs"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /runs [get]
func (h *RunHandler) List(c *gin.Context) {
	userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)

	var (
		runs  []domain.ParseRun
		total int
		err   error
	)
	if role == domain.RoleAdmin {
		runs, total, err = h.parseService.ListRuns(c.Request.Context(), offset, limit)
	} else {
		runs, total, err = h.parseService.ListRunsByUser(c.Request.Context(), userID, offset, limit)
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, runs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/runs/:id
// @Summary Get a parse run
// @Description Get a parse run by ID, including its current status
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} Response{data=domain.ParseRun} "Run details"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Run not found"
// @Security BearerAuth
// @Router /runs/{id} [get]
func (h *RunHandler) GetByID(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid run id")
		return
	}

	run, err := h.parseService.GetRun(c.Request.Context(), runID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, run)
}

// Delete handles DELETE /api/v1/runs/:id
// @Summary Delete a parse run
// @Description Delete a parse run, its extracted records and the stored source file (admin only)
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} Response{data=MessageResponse} "Run deleted"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 404 {object} ErrorResponseBody "Run not found"
// @Security BearerAuth
// @Router /runs/{id} [delete]
func (h *RunHandler) Delete(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid run id")
		return
	}

	if err := h.parseService.DeleteRun(c.Request.Context(), runID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "run deleted"})
}
