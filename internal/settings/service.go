package settings

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/felipeimp22/menuflow-backend/internal/pricing"
	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
	pkgerrors "github.com/felipeimp22/menuflow-backend/pkg/errors"
	"github.com/felipeimp22/menuflow-backend/pkg/logger"
)

type settingsRepository interface {
	FindRestaurant(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	ListTaxSettings(ctx context.Context, restaurantID uuid.UUID) ([]models.TaxSetting, error)
	ListDeliveryTiers(ctx context.Context, restaurantID uuid.UUID) ([]models.DeliveryPricingTier, error)
	FindGlobalFee(ctx context.Context, restaurantID uuid.UUID) (*models.GlobalFee, error)
}

type settingsCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	SettingsKey(restaurantID string) string
}

// PricingSettings bundles everything the pricing pipeline needs from the
// restaurant's configuration. It is cached as one unit so the three pricing
// call sites read an identical snapshot.
type PricingSettings struct {
	Restaurant    models.Restaurant            `json:"restaurant"`
	Taxes         []models.TaxSetting          `json:"taxes"`
	DeliveryTiers []models.DeliveryPricingTier `json:"delivery_tiers"`
	GlobalFee     *models.GlobalFee            `json:"global_fee,omitempty"`
}

// Service exposes pricing-settings reads and admin validation.
type Service interface {
	PricingSettings(ctx context.Context, restaurantID uuid.UUID) (*PricingSettings, error)
	ValidateTaxes(ctx context.Context, restaurantID uuid.UUID) error
	Invalidate(ctx context.Context, restaurantID uuid.UUID) error
}

type service struct {
	repo  settingsRepository
	cache settingsCache
	ttl   time.Duration
	logg  *logger.Logger
}

// NewService builds the settings service. The cache is optional; without it
// every read goes to the database.
func NewService(repo settingsRepository, cache settingsCache, ttl time.Duration, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, errors.New("settings repository is required")
	}
	if logg == nil {
		return nil, errors.New("logger is required")
	}
	return &service{repo: repo, cache: cache, ttl: ttl, logg: logg}, nil
}

// PricingSettings returns the restaurant's pricing snapshot, read through the
// cache when one is configured. Cache failures degrade to a database read.
func (s *service) PricingSettings(ctx context.Context, restaurantID uuid.UUID) (*PricingSettings, error) {
	if s.cache != nil {
		key := s.cache.SettingsKey(restaurantID.String())
		if raw, err := s.cache.Get(ctx, key); err == nil {
			var cached PricingSettings
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			s.logg.Warn(ctx, "discarding malformed cached settings")
		}
	}

	loaded, err := s.load(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		encoded, err := json.Marshal(loaded)
		if err == nil {
			key := s.cache.SettingsKey(restaurantID.String())
			if err := s.cache.Set(ctx, key, encoded, s.ttl); err != nil {
				s.logg.Warn(ctx, "caching settings failed: "+err.Error())
			}
		}
	}

	return loaded, nil
}

// ValidateTaxes surfaces tax misconfiguration to administrators without
// blocking any calculation.
func (s *service) ValidateTaxes(ctx context.Context, restaurantID uuid.UUID) error {
	taxes, err := s.repo.ListTaxSettings(ctx, restaurantID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tax settings")
	}
	if err := pricing.ValidateTaxSettings(taxes); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "tax settings invalid")
	}
	return nil
}

// Invalidate drops the restaurant's cached settings snapshot. Callers invoke
// it after any settings write.
func (s *service) Invalidate(ctx context.Context, restaurantID uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, s.cache.SettingsKey(restaurantID.String()))
}

func (s *service) load(ctx context.Context, restaurantID uuid.UUID) (*PricingSettings, error) {
	restaurant, err := s.repo.FindRestaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "restaurant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load restaurant")
	}

	taxes, err := s.repo.ListTaxSettings(ctx, restaurantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tax settings")
	}

	tiers, err := s.repo.ListDeliveryTiers(ctx, restaurantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load delivery tiers")
	}

	fee, err := s.repo.FindGlobalFee(ctx, restaurantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load global fee")
	}

	return &PricingSettings{
		Restaurant:    *restaurant,
		Taxes:         taxes,
		DeliveryTiers: tiers,
		GlobalFee:     fee,
	}, nil
}
