package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports liveness and which optional backends are wired
// GET /health
func Health(aiAnalysis, aiFirstMeasures, database bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Unix(),
			"features": gin.H{
				"aiAnalysis":      aiAnalysis,
				"aiFirstMeasures": aiFirstMeasures,
				"database":        database,
			},
		})
	}
}
