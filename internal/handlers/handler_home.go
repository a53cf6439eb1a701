package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome responds with a minimal liveness payload.
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
