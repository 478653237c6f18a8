package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/martyacryl/the-daily-david-sub003/internal/logger"
	"github.com/martyacryl/the-daily-david-sub003/internal/model"
	"github.com/martyacryl/the-daily-david-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type SermonHandler struct{ svc *service.SermonService }

func NewSermonHandler(svc *service.SermonService) *SermonHandler {
	return &SermonHandler{svc: svc}
}

// POST /api/sermon-notes
func (h *SermonHandler) Create(c *gin.Context) {
	var note model.SermonNote
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	note.ID = 0
	note.UserID = c.GetInt("user_id")
	if err := h.svc.Create(c.Request.Context(), &note); err != nil {
		logger.Error("sermon.create failed", "uid", note.UserID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, note)
}

// GET /api/sermon-notes
func (h *SermonHandler) List(c *gin.Context) {
	notes, err := h.svc.List(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if notes == nil {
		notes = []model.SermonNote{}
	}
	c.JSON(http.StatusOK, notes)
}

// GET /api/sermon-notes/:id
func (h *SermonHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	note, err := h.svc.Get(c.Request.Context(), c.GetInt("user_id"), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if note == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sermon note not found"})
		return
	}
	c.JSON(http.StatusOK, note)
}

// PUT /api/sermon-notes/:id
func (h *SermonHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var note model.SermonNote
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	note.ID = id
	note.UserID = c.GetInt("user_id")
	if err := h.svc.Update(c.Request.Context(), &note); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, note)
}

// DELETE /api/sermon-notes/:id
func (h *SermonHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), c.GetInt("user_id"), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/sermon-notes/churches
func (h *SermonHandler) Churches(c *gin.Context) {
	h.distinct(c, h.svc.Churches)
}

// GET /api/sermon-notes/speakers
func (h *SermonHandler) Speakers(c *gin.Context) {
	h.distinct(c, h.svc.Speakers)
}

func (h *SermonHandler) distinct(c *gin.Context, fetch func(ctx context.Context, userID int) ([]string, error)) {
	values, err := fetch(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if values == nil {
		values = []string{}
	}
	c.JSON(http.StatusOK, values)
}
