package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chachabrian/bustraveller-backend/internal/metrics"
	"github.com/chachabrian/bustraveller-backend/internal/middleware"
	"github.com/chachabrian/bustraveller-backend/internal/models"
	"github.com/chachabrian/bustraveller-backend/internal/services"
	"github.com/chachabrian/bustraveller-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

type BookingStore interface {
	Create(ctx context.Context, in services.NewBooking) (*models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
}

type ConfirmationSender interface {
	SendConfirmation(booking models.Booking)
}

type BookingPublisher interface {
	Publish(booking models.Booking)
}

// CreateBooking stores a booking and answers before the confirmation email
// goes out.
func CreateBooking(store BookingStore, notifier ConfirmationSender, feed BookingPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := middleware.GetRequestID(c)

		raw, err := c.GetRawData()
		if err != nil {
			utils.LogEvent(reqID, "booking", "create", "read body: "+err.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking payload"})
			return
		}

		input, err := decodeBookingPayload(raw)
		if err != nil {
			utils.LogEvent(reqID, "booking", "create", "invalid payload: "+err.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking payload"})
			return
		}

		booking, err := store.Create(c.Request.Context(), input)
		if err != nil {
			metrics.IncBookingCreated("error")
			utils.LogEvent(reqID, "booking", "create", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book trip"})
			return
		}

		metrics.IncBookingCreated("ok")
		utils.LogEvent(reqID, "booking", "create", fmt.Sprintf("id=%s destination=%q", booking.ID, booking.Destination))

		notifier.SendConfirmation(*booking)
		if feed != nil {
			feed.Publish(*booking)
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Trip booked successfully!",
			"booking": booking,
		})
	}
}

// ListBookings returns every booking, newest first.
func ListBookings(store BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := store.ListAll(c.Request.Context())
		if err != nil {
			metrics.IncBookingsListed("error")
			utils.LogEvent(middleware.GetRequestID(c), "booking", "list", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		metrics.IncBookingsListed("ok")
		c.JSON(http.StatusOK, bookings)
	}
}
