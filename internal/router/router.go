package router

import (
	"log"
	"net/http"

	"github.com/chachabrian/bustraveller-backend/internal/handlers"
	"github.com/chachabrian/bustraveller-backend/internal/metrics"
	"github.com/chachabrian/bustraveller-backend/internal/middleware"
	"github.com/chachabrian/bustraveller-backend/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Store is what the routes need from persistence.
type Store interface {
	handlers.BookingStore
	handlers.Pinger
}

// Deps are the process-wide handles shared by every request.
type Deps struct {
	Store          Store
	Notifier       handlers.ConfirmationSender
	Feed           handlers.BookingPublisher
	Hub            *services.Hub
	AllowedOrigins []string
}

func New(deps Deps) *gin.Engine {
	metrics.Register()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	config := cors.DefaultConfig()
	if len(deps.AllowedOrigins) == 0 || deps.AllowedOrigins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = deps.AllowedOrigins
	}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	config.ExposeHeaders = []string{"X-Request-ID"}
	r.Use(cors.New(config))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health(deps.Store))

		api.POST("/book", handlers.CreateBooking(deps.Store, deps.Notifier, deps.Feed))

		// Admin
		api.GET("/bookings", handlers.ListBookings(deps.Store))
		if deps.Hub != nil {
			api.GET("/ws/bookings", handlers.WebSocketHandler(deps.Hub))
		}
	}

	return r
}
