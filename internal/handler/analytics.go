package handler

import (
	"net/http"
	"time"

	"github.com/martyacryl/the-daily-david-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct{ entries *service.EntryService }

func NewAnalyticsHandler(entries *service.EntryService) *AnalyticsHandler {
	return &AnalyticsHandler{entries: entries}
}

// GET /api/analytics
func (h *AnalyticsHandler) Snapshot(c *gin.Context) {
	entries, err := h.entries.List(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, service.Analyze(entries, time.Now()))
}
