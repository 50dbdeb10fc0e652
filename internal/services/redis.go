package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chachabrian/bustraveller-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

const bookingCreatedChannel = "booking:created"

// InitRedis connects to redisURL. An empty URL means the feed stays local to
// this process and nil is returned.
func InitRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// BookingFeed pushes newly stored bookings to admin dashboards. With redis
// configured the event goes through pub/sub so every replica's hub sees it;
// otherwise it is broadcast on the local hub directly.
type BookingFeed struct {
	hub   *Hub
	redis *redis.Client
}

func NewBookingFeed(hub *Hub, client *redis.Client) *BookingFeed {
	return &BookingFeed{hub: hub, redis: client}
}

// Publish never blocks the caller on network I/O.
func (f *BookingFeed) Publish(booking models.Booking) {
	data, err := BookingCreatedMessage(booking)
	if err != nil {
		log.Printf("[FEED] error marshaling booking %s: %v", booking.ID, err)
		return
	}

	if f.redis == nil {
		f.hub.BroadcastToAll(data)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := f.redis.Publish(ctx, bookingCreatedChannel, data).Err(); err != nil {
			log.Printf("[FEED] redis publish failed, broadcasting locally: %v", err)
			f.hub.BroadcastToAll(data)
		}
	}()
}

// RunBookingRelay forwards booking events from redis into the local hub
// until ctx is cancelled.
func RunBookingRelay(ctx context.Context, client *redis.Client, hub *Hub) {
	sub := client.Subscribe(ctx, bookingCreatedChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			hub.BroadcastToAll([]byte(msg.Payload))
		}
	}
}
