package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Welcome
// @Tags health
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Router / [get]
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Car Rental API!"})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}
