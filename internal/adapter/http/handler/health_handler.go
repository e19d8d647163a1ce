package handler

import (
	"net/http"

	"github.com/plnalaca/pera/internal/adapter/http/dto"
	"github.com/plnalaca/pera/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /health. It queries the store version and
// reports it, or 503 when the store is unreachable.
func HealthCheck(store ports.StoreHealth) gin.HandlerFunc {
	return func(c *gin.Context) {
		version, err := store.ServerVersion(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
				Status: "failed",
				Error:  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:        "ok",
			ServerVersion: version,
		})
	}
}
