package handlers

import (
	"net/http"

	"snaplearn-service/internal/models"
	"snaplearn-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Service *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: s}
}

func (h *ProgressHandler) UpdateProgress(c *gin.Context) {
	var delta models.ProgressDelta
	if err := c.ShouldBindJSON(&delta); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	progress, err := h.Service.UpdateProgress(c.Request.Context(), delta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if progress == nil {
		// No store connected; the update was acknowledged but not persisted.
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "progress not persisted: no store connected",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "progress": progress})
}

func (h *ProgressHandler) GetProgress(c *gin.Context) {
	deviceID := c.Query("device_id")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "device_id query parameter is required"})
		return
	}
	records, err := h.Service.GetProgress(c.Request.Context(), deviceID, c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": records})
}
