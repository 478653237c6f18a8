package handler

import (
	"net/http"

	"github.com/martyacryl/the-daily-david-sub003/internal/logger"
	"github.com/martyacryl/the-daily-david-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type BibleHandler struct{ bible *service.BibleService }

func NewBibleHandler(bible *service.BibleService) *BibleHandler {
	return &BibleHandler{bible: bible}
}

// GET /api/bible/verse?ref=John+3:16
func (h *BibleHandler) Verse(c *gin.Context) {
	ref := c.Query("ref")
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing ref"})
		return
	}
	passage, err := h.bible.Lookup(c.Request.Context(), ref)
	if err != nil {
		logger.Warn("bible.lookup failed", "ref", ref, "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "verse lookup failed"})
		return
	}
	c.JSON(http.StatusOK, passage)
}
