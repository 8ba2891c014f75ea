package models

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem is a sellable catalog entry. Prices are integer cents.
type MenuItem struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	RestaurantID   uuid.UUID  `gorm:"column:restaurant_id;type:uuid;not null"`
	Name           string     `gorm:"column:name;not null"`
	Description    *string    `gorm:"column:description"`
	BasePriceCents int        `gorm:"column:base_price_cents;not null"`
	IsActive       bool       `gorm:"column:is_active;not null;default:true"`
	Rules          []MenuRule `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements gorm's naming override.
func (MenuItem) TableName() string { return "menu_items" }
