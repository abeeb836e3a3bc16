package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shipmatrix/internal/service"
)

// StatsHandler handles run statistics endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetRunStats handles GET /api/v1/runs/:id/stats
// @Summary Get run statistics
// @Description Get aggregate extraction statistics for a completed run
// @Tags stats
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} Response{data=domain.RunStats} "Run statistics"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Run not found"
// @Failure 409 {object} ErrorResponseBody "Run not complete"
// @Security BearerAuth
// @Router /runs/{id}/stats [get]
func (h *StatsHandler) GetRunStats(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid run id")
		return
	}

	stats, err := h.statsService.GetRunStats(c.Request.Context(), runID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
