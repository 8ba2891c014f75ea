package pricing

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
	"github.com/felipeimp22/menuflow-backend/pkg/enums"
	"github.com/felipeimp22/menuflow-backend/pkg/types"
)

// Selection is one modifier pick on a cart line. Quantity defaults to 1 when
// zero or negative.
type Selection struct {
	OptionID uuid.UUID
	ChoiceID uuid.UUID
	Quantity int
}

// CartLine is one item reference in the cart being priced.
type CartLine struct {
	MenuItemID          uuid.UUID
	Quantity            int
	Selections          []Selection
	SpecialInstructions *string
}

// LatLng is a coordinate pair used for distance math.
type LatLng struct {
	Latitude  float64
	Longitude float64
}

// DraftInput carries the cart plus the restaurant's pricing settings. The
// provider, when set, is preferred over tier math for delivery fees.
type DraftInput struct {
	OrderType     enums.OrderType
	Lines         []CartLine
	Taxes         []models.TaxSetting
	DeliveryTiers []models.DeliveryPricingTier
	GlobalFee     *models.GlobalFee
	DistanceUnit  enums.DistanceUnit
	TipCents      int

	// Delivery inputs. Distance wins when supplied; otherwise the two
	// coordinate pairs are required for haversine distance.
	Distance           *float64
	RestaurantLocation *LatLng
	DeliveryLocation   *LatLng

	PickupAddress   string
	DeliveryAddress string
	Provider        EstimateProvider
}

// Catalog resolves menu data for a pricing calculation. Implementations map
// a missing menu item to a not-found error; pricing propagates it unchanged.
type Catalog interface {
	MenuItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	MenuRules(ctx context.Context, menuItemID uuid.UUID) ([]models.MenuRule, error)
	Options(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Option, error)
}

// EstimateRequest is the provider's fee-estimate input contract.
type EstimateRequest struct {
	PickupAddress   string
	DeliveryAddress string
}

// Estimate is the provider's fee-estimate output contract.
type Estimate struct {
	FeeCents int
	Distance float64
	Provider string
}

// EstimateProvider is the external delivery provider's estimate capability.
// Failures are non-fatal; the caller falls back to tier math.
type EstimateProvider interface {
	GetEstimate(ctx context.Context, req EstimateRequest) (*Estimate, error)
}

// OrderItemResult is one priced cart line. FinalPriceCents is per unit;
// TotalCents is final price times quantity.
type OrderItemResult struct {
	MenuItemID          uuid.UUID
	Name                string
	BasePriceCents      int
	AdjustmentsCents    int
	FinalPriceCents     int
	Quantity            int
	TotalCents          int
	SelectedOptions     types.SelectedOptions
	SpecialInstructions *string
}

// OrderDraftResult is the full pricing output. It is pure data computed once
// per call; repeated calls with identical inputs produce identical results.
type OrderDraftResult struct {
	Items            []OrderItemResult
	SubtotalCents    int
	TaxCents         int
	TaxBreakdown     types.TaxLines
	DeliveryFeeCents int
	DeliveryDetails  *types.DeliveryDetails
	TipCents         int
	PlatformFeeCents int
	TotalCents       int
	Trace            Trace
}

// Cents converts a decimal currency amount into integer cents.
func Cents(value float64) int {
	return int(math.Round(value * 100))
}

// ToDecimal converts integer cents into a two-place decimal for the API
// boundary.
func ToDecimal(cents int) decimal.Decimal {
	return decimal.New(int64(cents), -2)
}

// FromDecimal converts a boundary decimal into integer cents.
func FromDecimal(d decimal.Decimal) int {
	return int(d.Shift(2).Round(0).IntPart())
}

func roundCents(value float64) int {
	return int(math.Round(value))
}

func normalizeQty(qty int) int {
	if qty <= 0 {
		return 1
	}
	return qty
}
