package models

import (
	"time"

	"github.com/google/uuid"
)

// GlobalFee is the platform fee rule applied on top of a restaurant's
// subtotal: a percentage below the threshold, a flat amount at or above it.
type GlobalFee struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	RestaurantID   uuid.UUID `gorm:"column:restaurant_id;type:uuid;not null;uniqueIndex"`
	Enabled        bool      `gorm:"column:enabled;not null;default:false"`
	ThresholdCents int       `gorm:"column:threshold_cents;not null;default:0"`
	BelowPercent   float64   `gorm:"column:below_percent;type:numeric(10,4);not null;default:0"`
	AboveFlatCents int       `gorm:"column:above_flat_cents;not null;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements gorm's naming override.
func (GlobalFee) TableName() string { return "global_fees" }
