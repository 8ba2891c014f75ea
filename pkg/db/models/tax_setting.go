package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/felipeimp22/menuflow-backend/pkg/enums"
)

// TaxSetting is one configured tax for a restaurant. Percentage rates are in
// percent (8.5 means 8.5%); fixed rates are in currency units.
type TaxSetting struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	RestaurantID uuid.UUID        `gorm:"column:restaurant_id;type:uuid;not null"`
	Name         string           `gorm:"column:name;not null"`
	Enabled      bool             `gorm:"column:enabled;not null;default:true"`
	Rate         float64          `gorm:"column:rate;type:numeric(10,4);not null"`
	Type         enums.TaxType    `gorm:"column:type;not null"`
	ApplyTo      enums.TaxApplyTo `gorm:"column:apply_to;not null"`
	Position     int              `gorm:"column:position;not null;default:0"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements gorm's naming override.
func (TaxSetting) TableName() string { return "tax_settings" }
