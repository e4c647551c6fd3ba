package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type DiagHandler struct {
	DB *mongo.Database
}

func NewDiagHandler(db *mongo.Database) *DiagHandler {
	return &DiagHandler{DB: db}
}

func (h *DiagHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Snap Learn API is running"})
}

// Report is a best-effort health summary. Every check is guarded on its own
// so a partial failure still produces a response; this endpoint never
// returns an error status.
func (h *DiagHandler) Report(c *gin.Context) {
	report := gin.H{
		"backend":           "running",
		"database":          "not_available",
		"database_name":     "",
		"connection_status": "not_connected",
		"collections":       []string{},
		"database_url_set":  os.Getenv("DATABASE_URL") != "",
		"database_name_set": os.Getenv("DATABASE_NAME") != "",
	}
	if h.DB == nil {
		c.JSON(http.StatusOK, report)
		return
	}

	report["database"] = "available"
	report["database_name"] = h.DB.Name()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.Client().Ping(ctx, readpref.Primary()); err != nil {
		report["database"] = "error: " + truncate(err.Error(), 50)
		c.JSON(http.StatusOK, report)
		return
	}
	report["connection_status"] = "connected"

	if names, err := h.DB.ListCollectionNames(ctx, bson.M{}); err != nil {
		report["database"] = "error: " + truncate(err.Error(), 50)
	} else {
		if len(names) > 10 {
			names = names[:10]
		}
		report["collections"] = names
		report["database"] = "connected"
	}
	c.JSON(http.StatusOK, report)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
