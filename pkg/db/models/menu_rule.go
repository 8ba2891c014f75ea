package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/felipeimp22/menuflow-backend/pkg/types"
)

// MenuRule binds an option group to one menu item, carrying the per-choice
// overrides and cross-modifier price rules for that pairing.
type MenuRule struct {
	ID                uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	MenuItemID        uuid.UUID               `gorm:"column:menu_item_id;type:uuid;not null"`
	OptionID          uuid.UUID               `gorm:"column:option_id;type:uuid;not null"`
	Required          bool                    `gorm:"column:required;not null;default:false"`
	DisplayOrder      int                     `gorm:"column:display_order;not null;default:0"`
	ChoiceAdjustments types.ChoiceAdjustments `gorm:"column:choice_adjustments;type:jsonb;not null"`
	CreatedAt         time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements gorm's naming override.
func (MenuRule) TableName() string { return "menu_rules" }
