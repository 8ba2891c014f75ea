package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
)

// Repository wires together menu catalog persistence: items, option groups
// with their choices, and the menu rules binding the two.
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

// FindMenuItem loads one active menu item scoped to the restaurant.
func (r *Repository) FindMenuItem(ctx context.Context, restaurantID, id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).
		First(&item, "id = ? AND restaurant_id = ? AND is_active = ?", id, restaurantID, true).
		Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListMenuItems loads the restaurant's active menu items.
func (r *Repository) ListMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("name ASC").
		Find(&items).
		Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListMenuRules loads the applied options for one menu item in display order.
func (r *Repository) ListMenuRules(ctx context.Context, menuItemID uuid.UUID) ([]models.MenuRule, error) {
	var rules []models.MenuRule
	if err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID).
		Order("display_order ASC").
		Find(&rules).
		Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// FindOptions loads the requested option groups with their choices in
// display order.
func (r *Repository) FindOptions(ctx context.Context, ids []uuid.UUID) ([]models.Option, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var options []models.Option
	if err := r.db.WithContext(ctx).
		Preload("Choices", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("display_order ASC")
		}).
		Where("id IN ?", ids).
		Find(&options).
		Error; err != nil {
		return nil, err
	}
	return options, nil
}
