package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is a single trip reservation submitted through the public form.
// Only ID and Date are set by the server; the rest is stored as received.
type Booking struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"column:name"`
	Email       string    `json:"email" gorm:"column:email"`
	Phone       string    `json:"phone" gorm:"column:phone"`
	Destination string    `json:"destination" gorm:"column:destination"`
	Date        time.Time `json:"date" gorm:"column:date;not null"`
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}

// BeforeCreate assigns the identifier and creation time on insert. The time
// is cut to microseconds, the precision Postgres keeps, so the value handed
// back on create equals the one read back later.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Date.IsZero() {
		b.Date = time.Now().UTC().Truncate(time.Microsecond)
	}
	return nil
}
