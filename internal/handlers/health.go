package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/chachabrian/bustraveller-backend/internal/middleware"
	"github.com/chachabrian/bustraveller-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func Health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			utils.LogEvent(middleware.GetRequestID(c), "health", "ping", err.Error())
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
