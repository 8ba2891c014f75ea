package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/felipeimp22/menuflow-backend/pkg/enums"
	"github.com/felipeimp22/menuflow-backend/pkg/types"
)

// Order is a persisted order with its full pricing snapshot. Every money
// column is integer cents; the API layer converts at the boundary.
type Order struct {
	ID               uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	RestaurantID     uuid.UUID              `gorm:"column:restaurant_id;type:uuid;not null"`
	Type             enums.OrderType        `gorm:"column:type;not null"`
	Status           enums.OrderStatus      `gorm:"column:status;not null"`
	CustomerName     *string                `gorm:"column:customer_name"`
	CustomerPhone    *string                `gorm:"column:customer_phone"`
	DeliveryAddress  *types.Address         `gorm:"column:delivery_address;type:jsonb"`
	SubtotalCents    int                    `gorm:"column:subtotal_cents;not null"`
	TaxCents         int                    `gorm:"column:tax_cents;not null"`
	TaxBreakdown     types.TaxLines         `gorm:"column:tax_breakdown;type:jsonb;not null"`
	DeliveryFeeCents int                    `gorm:"column:delivery_fee_cents;not null"`
	DeliveryDetails  *types.DeliveryDetails `gorm:"column:delivery_details;type:jsonb"`
	TipCents         int                    `gorm:"column:tip_cents;not null"`
	PlatformFeeCents int                    `gorm:"column:platform_fee_cents;not null"`
	TotalCents       int                    `gorm:"column:total_cents;not null"`
	Items            []OrderItem            `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements gorm's naming override.
func (Order) TableName() string { return "orders" }
