package handler

import (
	"net/http"

	"github.com/martyacryl/the-daily-david-sub003/internal/model"
	"github.com/martyacryl/the-daily-david-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type GoalHandler struct{ entries *service.EntryService }

func NewGoalHandler(entries *service.EntryService) *GoalHandler {
	return &GoalHandler{entries: entries}
}

// GET /api/goals/current  legacy dashboard aggregation
func (h *GoalHandler) Current(c *gin.Context) {
	entries, err := h.entries.List(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, service.CurrentGoals(entries))
}

// GET /api/goals/:date  reconciled view using the stored target entry
func (h *GoalHandler) ForDate(c *gin.Context) {
	date := c.Param("date")
	if _, err := service.ParseDay(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	uid := c.GetInt("user_id")
	entries, err := h.entries.List(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var current model.GoalLists
	for _, e := range entries {
		if e.EntryDate == date {
			current = e.Goals
			break
		}
	}
	c.JSON(http.StatusOK, service.ReconcileGoals(entries, current, date))
}

// POST /api/goals/reconcile  body carries goals that have not round-tripped
// through storage yet (autosave in flight)
func (h *GoalHandler) Reconcile(c *gin.Context) {
	var req model.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if _, err := service.ParseDay(req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	entries, err := h.entries.List(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, service.ReconcileGoals(entries, req.Goals, req.Date))
}
