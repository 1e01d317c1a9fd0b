package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/humanika/backoffice/domain"
)

// ListActivityLogs returns the audit trail, newest first.
func (h *Handler) ListActivityLogs(c *gin.Context) {
	var filter domain.ListActivityLogsFilter
	if err := bindQueryFilter(c, &filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	logs, err := h.activityLogService.List(c.Request.Context(), &filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity_logs": logs})
}
