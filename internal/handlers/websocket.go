package handlers

import (
	"github.com/chachabrian/bustraveller-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// WebSocketHandler attaches an admin dashboard to the live booking feed.
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		services.HandleWebSocket(hub, c.Writer, c.Request)
	}
}
