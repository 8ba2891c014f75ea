package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/felipeimp22/menuflow-backend/pkg/enums"
	"github.com/felipeimp22/menuflow-backend/pkg/types"
)

// Restaurant is the tenant owning menus, settings and orders.
type Restaurant struct {
	ID           uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string             `gorm:"column:name;not null"`
	Phone        *string            `gorm:"column:phone"`
	Email        *string            `gorm:"column:email"`
	Address      types.Address      `gorm:"column:address;type:jsonb;not null"`
	DistanceUnit enums.DistanceUnit `gorm:"column:distance_unit;not null;default:'mi'"`
	IsActive     bool               `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements gorm's naming override.
func (Restaurant) TableName() string { return "restaurants" }
