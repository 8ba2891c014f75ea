package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/felipeimp22/menuflow-backend/pkg/types"
)

// OrderItem snapshots one priced cart line. FinalPriceCents is the per-unit
// price after modifier adjustments; TotalCents is final price times quantity.
type OrderItem struct {
	ID                  uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID             uuid.UUID             `gorm:"column:order_id;type:uuid;not null"`
	MenuItemID          uuid.UUID             `gorm:"column:menu_item_id;type:uuid;not null"`
	Name                string                `gorm:"column:name;not null"`
	BasePriceCents      int                   `gorm:"column:base_price_cents;not null"`
	AdjustmentsCents    int                   `gorm:"column:adjustments_cents;not null"`
	FinalPriceCents     int                   `gorm:"column:final_price_cents;not null"`
	Quantity            int                   `gorm:"column:quantity;not null"`
	TotalCents          int                   `gorm:"column:total_cents;not null"`
	SelectedOptions     types.SelectedOptions `gorm:"column:selected_options;type:jsonb;not null"`
	SpecialInstructions *string               `gorm:"column:special_instructions"`
	CreatedAt           time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements gorm's naming override.
func (OrderItem) TableName() string { return "order_items" }
