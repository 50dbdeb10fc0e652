package database

import (
	"github.com/chachabrian/bustraveller-backend/internal/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Booking{}); err != nil {
		return err
	}

	// Listing is always newest first.
	if !db.Migrator().HasIndex(&models.Booking{}, "idx_bookings_date") {
		if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings (date DESC)`).Error; err != nil {
			return err
		}
	}

	return nil
}
