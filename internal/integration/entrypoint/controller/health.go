// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	checkDB func() bool
}

// NewHealthController creates a new health controller instance.
func NewHealthController(checkDB func() bool) *HealthController {
	return &HealthController{
		checkDB: checkDB,
	}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	if c.checkDB != nil && !c.checkDB() {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"database": "unreachable",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
