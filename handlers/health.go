package handlers

import (
	"net/http"

	"slotwise/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler returns the latest health snapshot from the background
// monitor.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
