package services

import (
	"context"

	"github.com/chachabrian/bustraveller-backend/internal/models"
	"gorm.io/gorm"
)

// NewBooking is the client-supplied part of a booking.
type NewBooking struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Destination string `json:"destination"`
}

// BookingStore owns the bookings table. It only ever inserts and reads.
type BookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{db: db}
}

// Create inserts a new booking. ID and Date are always assigned here, never
// taken from the caller.
func (s *BookingStore) Create(ctx context.Context, in NewBooking) (*models.Booking, error) {
	booking := models.Booking{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Destination: in.Destination,
	}

	if err := s.db.WithContext(ctx).Create(&booking).Error; err != nil {
		return nil, &PersistenceError{Op: "create", Err: err}
	}

	return &booking, nil
}

// ListAll returns every booking, newest first.
func (s *BookingStore) ListAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).
		Order("date DESC").
		Order("id DESC").
		Find(&bookings).Error; err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// Ping reports whether the database is reachable.
func (s *BookingStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return &PersistenceError{Op: "ping", Err: err}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return &PersistenceError{Op: "ping", Err: err}
	}
	return nil
}
