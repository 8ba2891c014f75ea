package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/felipeimp22/menuflow-backend/internal/catalog"
	"github.com/felipeimp22/menuflow-backend/internal/pricing"
	"github.com/felipeimp22/menuflow-backend/internal/settings"
	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
	"github.com/felipeimp22/menuflow-backend/pkg/enums"
	pkgerrors "github.com/felipeimp22/menuflow-backend/pkg/errors"
	"github.com/felipeimp22/menuflow-backend/pkg/logger"
	"github.com/felipeimp22/menuflow-backend/pkg/maps"
	"github.com/felipeimp22/menuflow-backend/pkg/metrics"
)

// Call sites of the pricing pipeline, used as metric labels.
const (
	callSiteQuote  = "quote"
	callSiteCreate = "create"
	callSiteUpdate = "update"
)

type ordersRepository interface {
	WithTx(tx *gorm.DB) *Repository
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, restaurantID, orderID uuid.UUID) (*models.Order, error)
	Replace(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, restaurantID, orderID uuid.UUID, status string) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Geocoder resolves an address into coordinates when the caller supplies
// neither a distance nor coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*maps.LatLng, error)
}

// Service exposes the three pricing call sites plus order reads. All three
// run the same pipeline against the same settings snapshot shape, so a quote
// and the order created from it price identically.
type Service interface {
	QuoteDraft(ctx context.Context, restaurantID uuid.UUID, input DraftInput) (*DraftDTO, error)
	CreateOrder(ctx context.Context, restaurantID uuid.UUID, input DraftInput) (*OrderDTO, error)
	GetOrder(ctx context.Context, restaurantID, orderID uuid.UUID) (*OrderDTO, error)
	UpdateOrder(ctx context.Context, restaurantID, orderID uuid.UUID, input DraftInput) (*OrderDTO, error)
	UpdateOrderStatus(ctx context.Context, restaurantID, orderID uuid.UUID, status enums.OrderStatus) (*OrderDTO, error)
}

type service struct {
	repo        ordersRepository
	catalogRepo *catalog.Repository
	settings    settings.Service
	tx          txRunner
	provider    pricing.EstimateProvider
	geocoder    Geocoder
	logg        *logger.Logger
	metrics     *metrics.PricingMetrics
}

// NewService builds the orders service. Provider, geocoder, and metrics are
// optional.
func NewService(
	repo ordersRepository,
	catalogRepo *catalog.Repository,
	settingsSvc settings.Service,
	tx txRunner,
	provider pricing.EstimateProvider,
	geocoder Geocoder,
	logg *logger.Logger,
	pricingMetrics *metrics.PricingMetrics,
) (Service, error) {
	if repo == nil {
		return nil, errors.New("orders repository is required")
	}
	if catalogRepo == nil {
		return nil, errors.New("catalog repository is required")
	}
	if settingsSvc == nil {
		return nil, errors.New("settings service is required")
	}
	if tx == nil {
		return nil, errors.New("tx runner is required")
	}
	if logg == nil {
		return nil, errors.New("logger is required")
	}
	return &service{
		repo:        repo,
		catalogRepo: catalogRepo,
		settings:    settingsSvc,
		tx:          tx,
		provider:    provider,
		geocoder:    geocoder,
		logg:        logg,
		metrics:     pricingMetrics,
	}, nil
}

// QuoteDraft prices the cart without persisting anything.
func (s *service) QuoteDraft(ctx context.Context, restaurantID uuid.UUID, input DraftInput) (*DraftDTO, error) {
	result, _, err := s.price(ctx, callSiteQuote, restaurantID, input)
	if err != nil {
		return nil, err
	}
	dto := NewDraftDTO(result)
	return &dto, nil
}

// CreateOrder prices the cart and persists the order snapshot as pending.
func (s *service) CreateOrder(ctx context.Context, restaurantID uuid.UUID, input DraftInput) (*OrderDTO, error) {
	if input.OrderType == enums.OrderTypeDelivery && input.DeliveryAddress == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery orders require a delivery address")
	}

	result, _, err := s.price(ctx, callSiteCreate, restaurantID, input)
	if err != nil {
		return nil, err
	}

	order := buildOrderModel(restaurantID, input, result)
	order.Status = enums.OrderStatusPending

	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, order)
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}

	ctx = s.logg.WithOrderID(ctx, order.ID.String())
	s.logg.Info(ctx, "order created")

	dto := NewOrderDTO(order)
	return &dto, nil
}

// GetOrder loads one persisted order.
func (s *service) GetOrder(ctx context.Context, restaurantID, orderID uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, restaurantID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	dto := NewOrderDTO(order)
	return &dto, nil
}

// UpdateOrder reprices the order with the identical pipeline and replaces its
// items and totals. Completed and canceled orders are immutable.
func (s *service) UpdateOrder(ctx context.Context, restaurantID, orderID uuid.UUID, input DraftInput) (*OrderDTO, error) {
	existing, err := s.repo.FindByID(ctx, restaurantID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if existing.Status == enums.OrderStatusCompleted || existing.Status == enums.OrderStatusCanceled {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "order can no longer be edited")
	}
	if input.OrderType == enums.OrderTypeDelivery && input.DeliveryAddress == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery orders require a delivery address")
	}

	result, _, err := s.price(ctx, callSiteUpdate, restaurantID, input)
	if err != nil {
		return nil, err
	}

	updated := buildOrderModel(restaurantID, input, result)
	updated.ID = existing.ID
	updated.Status = existing.Status
	updated.CreatedAt = existing.CreatedAt

	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Replace(ctx, updated)
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace order")
	}

	ctx = s.logg.WithOrderID(ctx, updated.ID.String())
	s.logg.Info(ctx, "order repriced")

	dto := NewOrderDTO(updated)
	return &dto, nil
}

// UpdateOrderStatus moves an order through the kitchen workflow. Completed
// and canceled orders are terminal.
func (s *service) UpdateOrderStatus(ctx context.Context, restaurantID, orderID uuid.UUID, status enums.OrderStatus) (*OrderDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}

	existing, err := s.repo.FindByID(ctx, restaurantID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if existing.Status == enums.OrderStatusCompleted || existing.Status == enums.OrderStatusCanceled {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "order is in a terminal status")
	}

	if err := s.repo.UpdateStatus(ctx, restaurantID, orderID, status.String()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}

	existing.Status = status
	dto := NewOrderDTO(existing)
	return &dto, nil
}

// price runs the shared pricing pipeline for one call site.
func (s *service) price(ctx context.Context, callSite string, restaurantID uuid.UUID, input DraftInput) (*pricing.OrderDraftResult, *settings.PricingSettings, error) {
	ctx = s.logg.WithRestaurantID(ctx, restaurantID.String())

	if len(input.Items) == 0 {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	if !input.OrderType.IsValid() {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order type")
	}

	snapshot, err := s.settings.PricingSettings(ctx, restaurantID)
	if err != nil {
		s.metrics.IncFailure(callSite)
		return nil, nil, err
	}

	draftInput := s.buildPricingInput(ctx, snapshot, input)

	started := time.Now()
	result, err := pricing.CalculateOrderDraft(ctx, draftInput, catalog.NewLookup(s.catalogRepo, restaurantID))
	s.metrics.ObserveDuration(callSite, time.Since(started))
	if err != nil {
		s.metrics.IncFailure(callSite)
		return nil, nil, err
	}
	s.metrics.IncSuccess(callSite)

	if result.Trace.ProviderFallback != "" {
		s.metrics.IncProviderFallback()
		s.logg.Warn(ctx, "delivery provider estimate failed, used tier pricing")
	}

	return result, snapshot, nil
}

// buildPricingInput maps the request and settings snapshot into the engine's
// input. Geocoding only runs for delivery orders whose address has no
// coordinates; a geocode failure degrades to tier math without coordinates.
func (s *service) buildPricingInput(ctx context.Context, snapshot *settings.PricingSettings, input DraftInput) pricing.DraftInput {
	draft := pricing.DraftInput{
		OrderType:     input.OrderType,
		Lines:         make([]pricing.CartLine, 0, len(input.Items)),
		Taxes:         snapshot.Taxes,
		DeliveryTiers: snapshot.DeliveryTiers,
		GlobalFee:     snapshot.GlobalFee,
		DistanceUnit:  snapshot.Restaurant.DistanceUnit,
		TipCents:      input.TipCents,
		Distance:      input.Distance,
	}

	for _, item := range input.Items {
		line := pricing.CartLine{
			MenuItemID:          item.MenuItemID,
			Quantity:            item.Quantity,
			Selections:          make([]pricing.Selection, 0, len(item.SelectedOptions)),
			SpecialInstructions: item.SpecialInstructions,
		}
		for _, sel := range item.SelectedOptions {
			line.Selections = append(line.Selections, pricing.Selection{
				OptionID: sel.OptionID,
				ChoiceID: sel.ChoiceID,
				Quantity: sel.Quantity,
			})
		}
		draft.Lines = append(draft.Lines, line)
	}

	if input.OrderType != enums.OrderTypeDelivery || input.DeliveryAddress == nil {
		return draft
	}

	draft.Provider = s.provider
	draft.PickupAddress = snapshot.Restaurant.Address.Formatted()
	draft.DeliveryAddress = input.DeliveryAddress.Formatted()

	if snapshot.Restaurant.Address.HasCoordinates() {
		draft.RestaurantLocation = &pricing.LatLng{
			Latitude:  snapshot.Restaurant.Address.Lat,
			Longitude: snapshot.Restaurant.Address.Lng,
		}
	}

	switch {
	case input.DeliveryAddress.HasCoordinates():
		draft.DeliveryLocation = &pricing.LatLng{
			Latitude:  input.DeliveryAddress.Lat,
			Longitude: input.DeliveryAddress.Lng,
		}
	case input.Distance == nil && s.geocoder != nil:
		located, err := s.geocoder.Geocode(ctx, draft.DeliveryAddress)
		if err != nil {
			s.logg.Warn(ctx, "geocoding delivery address failed: "+err.Error())
			break
		}
		draft.DeliveryLocation = &pricing.LatLng{
			Latitude:  located.Latitude,
			Longitude: located.Longitude,
		}
	}

	return draft
}

// buildOrderModel snapshots a pricing result into the persistence shape.
func buildOrderModel(restaurantID uuid.UUID, input DraftInput, result *pricing.OrderDraftResult) *models.Order {
	order := &models.Order{
		ID:               uuid.New(),
		RestaurantID:     restaurantID,
		Type:             input.OrderType,
		CustomerName:     input.CustomerName,
		CustomerPhone:    input.CustomerPhone,
		DeliveryAddress:  input.DeliveryAddress,
		SubtotalCents:    result.SubtotalCents,
		TaxCents:         result.TaxCents,
		TaxBreakdown:     result.TaxBreakdown,
		DeliveryFeeCents: result.DeliveryFeeCents,
		DeliveryDetails:  result.DeliveryDetails,
		TipCents:         result.TipCents,
		PlatformFeeCents: result.PlatformFeeCents,
		TotalCents:       result.TotalCents,
		Items:            make([]models.OrderItem, 0, len(result.Items)),
	}

	for _, item := range result.Items {
		order.Items = append(order.Items, models.OrderItem{
			ID:                  uuid.New(),
			MenuItemID:          item.MenuItemID,
			Name:                item.Name,
			BasePriceCents:      item.BasePriceCents,
			AdjustmentsCents:    item.AdjustmentsCents,
			FinalPriceCents:     item.FinalPriceCents,
			Quantity:            item.Quantity,
			TotalCents:          item.TotalCents,
			SelectedOptions:     item.SelectedOptions,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	return order
}
