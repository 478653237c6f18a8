package handler

import (
	"net/http"

	"github.com/martyacryl/the-daily-david-sub003/internal/logger"
	"github.com/martyacryl/the-daily-david-sub003/internal/model"
	"github.com/martyacryl/the-daily-david-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type EntryHandler struct{ entries *service.EntryService }

func NewEntryHandler(entries *service.EntryService) *EntryHandler {
	return &EntryHandler{entries: entries}
}

// POST /api/entries  upsert by user+date (autosave target)
func (h *EntryHandler) Save(c *gin.Context) {
	var req model.SaveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	uid := c.GetInt("user_id")
	entry, err := h.entries.Upsert(c.Request.Context(), uid, req)
	if err != nil {
		logger.Error("entry.save failed", "uid", uid, "date", req.Date, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("entry.save", "uid", uid, "date", req.Date, "completed", req.Completed)
	c.JSON(http.StatusOK, entry)
}

// GET /api/entries
func (h *EntryHandler) List(c *gin.Context) {
	uid := c.GetInt("user_id")
	entries, err := h.entries.List(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}

// GET /api/entries/:date
func (h *EntryHandler) GetByDate(c *gin.Context) {
	date := c.Param("date")
	if _, err := service.ParseDay(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	entry, err := h.entries.GetByDate(c.Request.Context(), c.GetInt("user_id"), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no entry for date"})
		return
	}
	c.JSON(http.StatusOK, entry)
}
