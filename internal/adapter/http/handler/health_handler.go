package handler

import (
	"net/http"

	"buy-me-a-coffee/internal/core/ports"
	"buy-me-a-coffee/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /health. Without checkers the service reports
// healthy, since nothing but the process is required to build links.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status    string `json:"status"`
			ErrorCode string `json:"error_code,omitempty"`
			Error     string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus, len(checkers))
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				depErr := apperror.ErrDependencyUnavailable(checker.Name(), err)
				deps[checker.Name()] = depStatus{Status: "unhealthy", ErrorCode: depErr.Code, Error: depErr.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
