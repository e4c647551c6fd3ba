package handlers

import (
	"net/http"

	"snaplearn-service/internal/models"
	"snaplearn-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	Service *service.ContentService
}

func NewContentHandler(s *service.ContentService) *ContentHandler {
	return &ContentHandler{Service: s}
}

func (h *ContentHandler) ListCategories(c *gin.Context) {
	categories := h.Service.ListCategories(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *ContentHandler) ListItems(c *gin.Context) {
	items, err := h.Service.ListItems(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
