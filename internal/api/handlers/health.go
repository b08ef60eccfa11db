package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/genvec"
	"github.com/gogpu/genvec/recording"
)

// HealthCheck returns the health status of the server.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"engine":   genvec.Version,
		"backends": recording.Backends(),
		"patterns": genvec.Patterns(),
	})
}
