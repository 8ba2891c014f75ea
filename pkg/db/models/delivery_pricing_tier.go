package models

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryPricingTier is one distance bracket of the restaurant's delivery
// fee schedule. DistanceCovered is the tier's upper bound in the restaurant's
// distance unit; the additional fee applies only beyond that bound.
type DeliveryPricingTier struct {
	ID                        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	RestaurantID              uuid.UUID `gorm:"column:restaurant_id;type:uuid;not null"`
	Name                      string    `gorm:"column:name;not null"`
	DistanceCovered           float64   `gorm:"column:distance_covered;type:numeric(10,3);not null"`
	BaseFeeCents              int       `gorm:"column:base_fee_cents;not null"`
	AdditionalFeePerUnitCents int       `gorm:"column:additional_fee_per_unit_cents;not null;default:0"`
	IsDefault                 bool      `gorm:"column:is_default;not null;default:false"`
	CreatedAt                 time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt                 time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements gorm's naming override.
func (DeliveryPricingTier) TableName() string { return "delivery_pricing_tiers" }
