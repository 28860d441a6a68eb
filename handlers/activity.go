package handlers

import (
	"net/http"
	"strconv"

	"github.com/awalle000/Fadila-sales-system/services/activity"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActivityHandler exposes the audit trail (CEO only).
type ActivityHandler struct {
	Service activity.ActivityService
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activity.ActivityService) *ActivityHandler {
	return &ActivityHandler{Service: svc}
}

func queryLimit(c *gin.Context) int64 {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	if err != nil || limit <= 0 {
		return 100
	}
	return limit
}

// ListActivitiesHandler handles GET /api/activity.
func (h *ActivityHandler) ListActivitiesHandler(c *gin.Context) {
	entries, err := h.Service.Activities(queryLimit(c))
	if err != nil {
		utils.GetLogger().Error("Failed to list activity logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error retrieving activity logs"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListLoginsHandler handles GET /api/activity/logins.
func (h *ActivityHandler) ListLoginsHandler(c *gin.Context) {
	entries, err := h.Service.Logins(queryLimit(c))
	if err != nil {
		utils.GetLogger().Error("Failed to list login logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error retrieving login logs"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
