package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/felipeimp22/menuflow-backend/internal/pricing"
	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
	pkgerrors "github.com/felipeimp22/menuflow-backend/pkg/errors"
)

// Lookup adapts the catalog repository to the pricing engine's read contract,
// scoped to one restaurant. A missing menu item surfaces as a not-found
// error, which the pricing pipeline treats as fatal.
type Lookup struct {
	repo         *Repository
	restaurantID uuid.UUID
}

// NewLookup builds a pricing catalog view for one restaurant.
func NewLookup(repo *Repository, restaurantID uuid.UUID) *Lookup {
	return &Lookup{repo: repo, restaurantID: restaurantID}
}

var _ pricing.Catalog = (*Lookup)(nil)

// MenuItem implements pricing.Catalog.
func (l *Lookup) MenuItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	item, err := l.repo.FindMenuItem(ctx, l.restaurantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu item")
	}
	return item, nil
}

// MenuRules implements pricing.Catalog.
func (l *Lookup) MenuRules(ctx context.Context, menuItemID uuid.UUID) ([]models.MenuRule, error) {
	rules, err := l.repo.ListMenuRules(ctx, menuItemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu rules")
	}
	return rules, nil
}

// Options implements pricing.Catalog.
func (l *Lookup) Options(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Option, error) {
	options, err := l.repo.FindOptions(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load options")
	}
	byID := make(map[uuid.UUID]models.Option, len(options))
	for _, option := range options {
		byID[option.ID] = option
	}
	return byID, nil
}
