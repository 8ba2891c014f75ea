package models

import (
	"time"

	"github.com/google/uuid"
)

// Option is a modifier group (e.g. "Size", "Sauce") owned by a restaurant.
type Option struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	RestaurantID uuid.UUID `gorm:"column:restaurant_id;type:uuid;not null"`
	Name         string    `gorm:"column:name;not null"`
	Choices      []Choice  `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements gorm's naming override.
func (Option) TableName() string { return "options" }

// Choice is one selectable value inside an option group.
type Choice struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OptionID       uuid.UUID `gorm:"column:option_id;type:uuid;not null"`
	Name           string    `gorm:"column:name;not null"`
	BasePriceCents int       `gorm:"column:base_price_cents;not null;default:0"`
	DisplayOrder   int       `gorm:"column:display_order;not null;default:0"`
	IsAvailable    bool      `gorm:"column:is_available;not null;default:true"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements gorm's naming override.
func (Choice) TableName() string { return "choices" }
