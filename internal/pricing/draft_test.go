package pricing

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
	"github.com/felipeimp22/menuflow-backend/pkg/enums"
	pkgerrors "github.com/felipeimp22/menuflow-backend/pkg/errors"
)

type stubCatalog struct {
	items   map[uuid.UUID]*models.MenuItem
	rules   map[uuid.UUID][]models.MenuRule
	options map[uuid.UUID]models.Option
}

func (s *stubCatalog) MenuItem(_ context.Context, id uuid.UUID) (*models.MenuItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
	}
	return item, nil
}

func (s *stubCatalog) MenuRules(_ context.Context, menuItemID uuid.UUID) ([]models.MenuRule, error) {
	return s.rules[menuItemID], nil
}

func (s *stubCatalog) Options(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Option, error) {
	found := make(map[uuid.UUID]models.Option, len(ids))
	for _, id := range ids {
		if option, ok := s.options[id]; ok {
			found[id] = option
		}
	}
	return found, nil
}

type stubProvider struct {
	estimate *Estimate
	err      error
	calls    int
}

func (s *stubProvider) GetEstimate(context.Context, EstimateRequest) (*Estimate, error) {
	s.calls++
	return s.estimate, s.err
}

func newDraftFixture(t *testing.T) (fixture, *stubCatalog, uuid.UUID) {
	t.Helper()

	f := newFixture()
	itemID := uuid.New()
	catalog := &stubCatalog{
		items: map[uuid.UUID]*models.MenuItem{
			itemID: {ID: itemID, Name: "Burger", BasePriceCents: 1000},
		},
		rules:   map[uuid.UUID][]models.MenuRule{itemID: f.rules},
		options: f.options,
	}
	return f, catalog, itemID
}

func draftInput(f fixture, itemID uuid.UUID) DraftInput {
	return DraftInput{
		OrderType: enums.OrderTypePickup,
		Lines: []CartLine{
			{MenuItemID: itemID, Quantity: 1, Selections: f.selections()},
		},
		Taxes: []models.TaxSetting{
			{Name: "Sales Tax", Enabled: true, Rate: 8.5, Type: enums.TaxTypePercentage, ApplyTo: enums.TaxApplyToEntireOrder},
		},
		GlobalFee: &models.GlobalFee{
			Enabled:        true,
			ThresholdCents: 1000,
			BelowPercent:   10,
			AboveFlatCents: 195,
		},
		DistanceUnit: enums.DistanceUnitMI,
	}
}

func TestCalculateOrderDraftEndToEnd(t *testing.T) {
	t.Parallel()

	f, catalog, itemID := newDraftFixture(t)
	got, err := CalculateOrderDraft(context.Background(), draftInput(f, itemID), catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.SubtotalCents != 1350 {
		t.Fatalf("subtotal = %d, want 1350", got.SubtotalCents)
	}
	if got.TaxCents != 115 {
		t.Fatalf("tax = %d, want 115", got.TaxCents)
	}
	if got.PlatformFeeCents != 195 {
		t.Fatalf("platform fee = %d, want 195", got.PlatformFeeCents)
	}
	if got.DeliveryFeeCents != 0 {
		t.Fatalf("pickup order should have no delivery fee, got %d", got.DeliveryFeeCents)
	}
	if got.TotalCents != 1350+115+195 {
		t.Fatalf("total = %d", got.TotalCents)
	}

	if len(got.Items) != 1 {
		t.Fatalf("items = %+v", got.Items)
	}
	item := got.Items[0]
	if item.FinalPriceCents != 1350 || item.AdjustmentsCents != 350 || item.TotalCents != 1350 {
		t.Fatalf("item = %+v", item)
	}
	if len(item.SelectedOptions) != 2 {
		t.Fatalf("selected options = %+v", item.SelectedOptions)
	}
}

func TestCalculateOrderDraftIdempotent(t *testing.T) {
	t.Parallel()

	f, catalog, itemID := newDraftFixture(t)
	input := draftInput(f, itemID)
	input.TipCents = 300

	first, err := CalculateOrderDraft(context.Background(), input, catalog)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := CalculateOrderDraft(context.Background(), input, catalog)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestCalculateOrderDraftUnknownMenuItemAborts(t *testing.T) {
	t.Parallel()

	f, catalog, itemID := newDraftFixture(t)
	input := draftInput(f, itemID)
	input.Lines = append(input.Lines, CartLine{MenuItemID: uuid.New(), Quantity: 1})

	_, err := CalculateOrderDraft(context.Background(), input, catalog)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCalculateOrderDraftDeliveryProviderPreferred(t *testing.T) {
	t.Parallel()

	f, catalog, itemID := newDraftFixture(t)
	provider := &stubProvider{estimate: &Estimate{FeeCents: 799, Distance: 4.2, Provider: "shipday"}}

	input := draftInput(f, itemID)
	input.OrderType = enums.OrderTypeDelivery
	input.Provider = provider
	input.PickupAddress = "1 Restaurant Way"
	input.DeliveryAddress = "2 Customer St"
	input.DeliveryTiers = testTiers()

	got, err := CalculateOrderDraft(context.Background(), input, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("provider calls = %d", provider.calls)
	}
	if got.DeliveryFeeCents != 799 {
		t.Fatalf("delivery fee = %d, want provider fee", got.DeliveryFeeCents)
	}
	if got.DeliveryDetails == nil || got.DeliveryDetails.Provider != "shipday" {
		t.Fatalf("details = %+v", got.DeliveryDetails)
	}
}

func TestCalculateOrderDraftProviderFailureFallsBackToTiers(t *testing.T) {
	t.Parallel()

	f, catalog, itemID := newDraftFixture(t)
	provider := &stubProvider{err: errors.New("timeout")}
	distance := 3.0

	input := draftInput(f, itemID)
	input.OrderType = enums.OrderTypeDelivery
	input.Provider = provider
	input.PickupAddress = "1 Restaurant Way"
	input.DeliveryAddress = "2 Customer St"
	input.DeliveryTiers = testTiers()
	input.Distance = &distance

	got, err := CalculateOrderDraft(context.Background(), input, catalog)
	if err != nil {
		t.Fatalf("provider failure must not fail the draft: %v", err)
	}
	if got.DeliveryFeeCents != 500 {
		t.Fatalf("delivery fee = %d, want near tier base", got.DeliveryFeeCents)
	}
	if got.Trace.ProviderFallback == "" {
		t.Fatal("expected provider fallback recorded on trace")
	}
	if got.DeliveryDetails == nil || got.DeliveryDetails.TierName != "near" {
		t.Fatalf("details = %+v", got.DeliveryDetails)
	}
}

func TestCalculateOrderDraftHaversineDistance(t *testing.T) {
	t.Parallel()

	f, catalog, itemID := newDraftFixture(t)

	input := draftInput(f, itemID)
	input.OrderType = enums.OrderTypeDelivery
	input.DeliveryTiers = testTiers()
	input.RestaurantLocation = &LatLng{Latitude: 45.5152, Longitude: -122.6784}
	input.DeliveryLocation = &LatLng{Latitude: 45.5231, Longitude: -122.6765}

	got, err := CalculateOrderDraft(context.Background(), input, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// under a mile away: near tier, no excess
	if got.DeliveryDetails == nil || got.DeliveryDetails.TierName != "near" {
		t.Fatalf("details = %+v", got.DeliveryDetails)
	}
	if got.DeliveryFeeCents != 500 {
		t.Fatalf("delivery fee = %d", got.DeliveryFeeCents)
	}
}

func TestCalculateOrderDraftNoDistanceDegradesToZeroFee(t *testing.T) {
	t.Parallel()

	f, catalog, itemID := newDraftFixture(t)

	input := draftInput(f, itemID)
	input.OrderType = enums.OrderTypeDelivery
	input.DeliveryTiers = testTiers()

	got, err := CalculateOrderDraft(context.Background(), input, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DeliveryFeeCents != 0 || got.DeliveryDetails != nil {
		t.Fatalf("fee = %d details = %+v, want zero fee", got.DeliveryFeeCents, got.DeliveryDetails)
	}
	if len(got.Trace.Notes) == 0 {
		t.Fatal("expected trace note for missing distance")
	}
}

func TestCalculateOrderDraftTipAndEmptyTaxes(t *testing.T) {
	t.Parallel()

	f, catalog, itemID := newDraftFixture(t)

	input := draftInput(f, itemID)
	input.Taxes = nil
	input.GlobalFee = nil
	input.TipCents = 250

	got, err := CalculateOrderDraft(context.Background(), input, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TaxCents != 0 || len(got.TaxBreakdown) != 0 {
		t.Fatalf("tax = %d breakdown = %+v, want none", got.TaxCents, got.TaxBreakdown)
	}
	if got.TotalCents != 1350+250 {
		t.Fatalf("total = %d, want subtotal plus tip", got.TotalCents)
	}
}
