package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/felipeimp22/menuflow-backend/internal/pricing"
	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
	"github.com/felipeimp22/menuflow-backend/pkg/enums"
	pkgerrors "github.com/felipeimp22/menuflow-backend/pkg/errors"
	"github.com/felipeimp22/menuflow-backend/pkg/types"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  phone TEXT,
  email TEXT,
  address TEXT NOT NULL,
  distance_unit TEXT NOT NULL DEFAULT 'mi',
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS menu_items (
  id TEXT PRIMARY KEY,
  restaurant_id TEXT NOT NULL,
  name TEXT NOT NULL,
  description TEXT,
  base_price_cents INTEGER NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS options (
  id TEXT PRIMARY KEY,
  restaurant_id TEXT NOT NULL,
  name TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS choices (
  id TEXT PRIMARY KEY,
  option_id TEXT NOT NULL,
  name TEXT NOT NULL,
  base_price_cents INTEGER NOT NULL DEFAULT 0,
  display_order INTEGER NOT NULL DEFAULT 0,
  is_available INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS menu_rules (
  id TEXT PRIMARY KEY,
  menu_item_id TEXT NOT NULL,
  option_id TEXT NOT NULL,
  required INTEGER NOT NULL DEFAULT 0,
  display_order INTEGER NOT NULL DEFAULT 0,
  choice_adjustments TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func mustCreateRestaurant(t *testing.T, db *gorm.DB) *models.Restaurant {
	t.Helper()
	restaurant := &models.Restaurant{
		ID:           uuid.New(),
		Name:         "Testaurant",
		Address:      types.Address{Line1: "1 Kitchen Way", City: "Tulsa", State: "OK", PostalCode: "74104", Country: "US"},
		DistanceUnit: enums.DistanceUnitMI,
		IsActive:     true,
	}
	require.NoError(t, db.Create(restaurant).Error)
	return restaurant
}

func TestRepositoryFindMenuItemScopedToRestaurant(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	restaurant := mustCreateRestaurant(t, db)

	item := &models.MenuItem{
		ID:             uuid.New(),
		RestaurantID:   restaurant.ID,
		Name:           "Burger",
		BasePriceCents: 1000,
		IsActive:       true,
	}
	require.NoError(t, db.Create(item).Error)

	found, err := repo.FindMenuItem(context.Background(), restaurant.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)
	assert.Equal(t, 1000, found.BasePriceCents)

	_, err = repo.FindMenuItem(context.Background(), uuid.New(), item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryFindMenuItemSkipsInactive(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	restaurant := mustCreateRestaurant(t, db)

	item := &models.MenuItem{
		ID:             uuid.New(),
		RestaurantID:   restaurant.ID,
		Name:           "Retired Special",
		BasePriceCents: 900,
		IsActive:       true,
	}
	require.NoError(t, db.Create(item).Error)
	require.NoError(t, db.Model(item).Update("is_active", false).Error)

	_, err := repo.FindMenuItem(context.Background(), restaurant.ID, item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryOptionsAndRulesRoundTrip(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	restaurant := mustCreateRestaurant(t, db)

	item := &models.MenuItem{
		ID:             uuid.New(),
		RestaurantID:   restaurant.ID,
		Name:           "Burger",
		BasePriceCents: 1000,
		IsActive:       true,
	}
	require.NoError(t, db.Create(item).Error)

	option := &models.Option{ID: uuid.New(), RestaurantID: restaurant.ID, Name: "Size"}
	require.NoError(t, db.Create(option).Error)

	large := &models.Choice{ID: uuid.New(), OptionID: option.ID, Name: "Large", DisplayOrder: 2, IsAvailable: true}
	small := &models.Choice{ID: uuid.New(), OptionID: option.ID, Name: "Small", DisplayOrder: 1, IsAvailable: true}
	require.NoError(t, db.Create(large).Error)
	require.NoError(t, db.Create(small).Error)

	rule := &models.MenuRule{
		ID:         uuid.New(),
		MenuItemID: item.ID,
		OptionID:   option.ID,
		Required:   true,
		ChoiceAdjustments: types.ChoiceAdjustments{
			{ChoiceID: large.ID, PriceAdjustmentCents: 200, IsAvailable: true},
			{ChoiceID: small.ID, IsAvailable: true, IsDefault: true},
		},
	}
	require.NoError(t, db.Create(rule).Error)

	rules, err := repo.ListMenuRules(context.Background(), item.ID)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.Len(t, rules[0].ChoiceAdjustments, 2)
	assert.Equal(t, 200, rules[0].ChoiceAdjustments[0].PriceAdjustmentCents)

	options, err := repo.FindOptions(context.Background(), []uuid.UUID{option.ID})
	require.NoError(t, err)
	require.Len(t, options, 1)
	require.Len(t, options[0].Choices, 2)
	assert.Equal(t, "Small", options[0].Choices[0].Name, "choices ordered by display order")
}

func TestLookupImplementsPricingCatalog(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	restaurant := mustCreateRestaurant(t, db)
	lookup := NewLookup(repo, restaurant.ID)

	_, err := lookup.MenuItem(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	options, err := lookup.Options(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, options)

	var _ pricing.Catalog = lookup
}
