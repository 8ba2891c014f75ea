package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
)

// Repository persists orders and their item snapshots.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create persists an order with its items in one transaction.
func (r *Repository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindByID loads one order with items, scoped to the restaurant.
func (r *Repository) FindByID(ctx context.Context, restaurantID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ? AND restaurant_id = ?", orderID, restaurantID).
		Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Replace updates the order's pricing snapshot and swaps its items. Meant to
// run inside a transaction so a failed reprice never leaves partial items.
func (r *Repository) Replace(ctx context.Context, order *models.Order) error {
	tx := r.db.WithContext(ctx)

	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}

	updates := map[string]any{
		"type":               order.Type,
		"status":             order.Status,
		"customer_name":      order.CustomerName,
		"customer_phone":     order.CustomerPhone,
		"delivery_address":   order.DeliveryAddress,
		"subtotal_cents":     order.SubtotalCents,
		"tax_cents":          order.TaxCents,
		"tax_breakdown":      order.TaxBreakdown,
		"delivery_fee_cents": order.DeliveryFeeCents,
		"delivery_details":   order.DeliveryDetails,
		"tip_cents":          order.TipCents,
		"platform_fee_cents": order.PlatformFeeCents,
		"total_cents":        order.TotalCents,
	}
	if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
		return err
	}

	if len(order.Items) == 0 {
		return nil
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	return tx.Create(&order.Items).Error
}

// UpdateStatus moves one order to a new status, scoped to the restaurant.
func (r *Repository) UpdateStatus(ctx context.Context, restaurantID, orderID uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND restaurant_id = ?", orderID, restaurantID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
