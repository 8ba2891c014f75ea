package settings

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
)

// Repository wires together per-restaurant pricing configuration persistence:
// the tenant record, tax settings, delivery tiers, and the platform fee rule.
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

// FindRestaurant loads one active restaurant.
func (r *Repository) FindRestaurant(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).
		First(&restaurant, "id = ? AND is_active = ?", id, true).
		Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// ListTaxSettings loads the restaurant's taxes in configured position order.
func (r *Repository) ListTaxSettings(ctx context.Context, restaurantID uuid.UUID) ([]models.TaxSetting, error) {
	var taxes []models.TaxSetting
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("position ASC").
		Find(&taxes).
		Error; err != nil {
		return nil, err
	}
	return taxes, nil
}

// ListDeliveryTiers loads the restaurant's delivery tiers in ascending bound
// order.
func (r *Repository) ListDeliveryTiers(ctx context.Context, restaurantID uuid.UUID) ([]models.DeliveryPricingTier, error) {
	var tiers []models.DeliveryPricingTier
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("distance_covered ASC").
		Find(&tiers).
		Error; err != nil {
		return nil, err
	}
	return tiers, nil
}

// FindGlobalFee loads the restaurant's platform fee rule. A restaurant
// without one simply has no platform fee.
func (r *Repository) FindGlobalFee(ctx context.Context, restaurantID uuid.UUID) (*models.GlobalFee, error) {
	var fee models.GlobalFee
	if err := r.db.WithContext(ctx).
		First(&fee, "restaurant_id = ?", restaurantID).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fee, nil
}
