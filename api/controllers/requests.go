package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/felipeimp22/menuflow-backend/api/validators"
	"github.com/felipeimp22/menuflow-backend/internal/orders"
	"github.com/felipeimp22/menuflow-backend/internal/pricing"
	"github.com/felipeimp22/menuflow-backend/pkg/enums"
	pkgerrors "github.com/felipeimp22/menuflow-backend/pkg/errors"
	"github.com/felipeimp22/menuflow-backend/pkg/types"
)

const freeTextMaxLen = 500

type selectionRequest struct {
	OptionID uuid.UUID `json:"option_id" validate:"required"`
	ChoiceID uuid.UUID `json:"choice_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"omitempty,gte=1"`
}

type cartItemRequest struct {
	MenuItemID          uuid.UUID          `json:"menu_item_id" validate:"required"`
	Quantity            int                `json:"quantity" validate:"required,gte=1"`
	SelectedOptions     []selectionRequest `json:"selected_options" validate:"omitempty,dive"`
	SpecialInstructions *string            `json:"special_instructions,omitempty"`
}

// draftRequest is the shared body of quote, create, and update. Tip is a
// decimal at the boundary and becomes cents before the engine sees it.
type draftRequest struct {
	OrderType       string            `json:"order_type" validate:"required,oneof=pickup delivery"`
	Items           []cartItemRequest `json:"items" validate:"required,min=1,dive"`
	Tip             decimal.Decimal   `json:"tip"`
	CustomerName    *string           `json:"customer_name,omitempty"`
	CustomerPhone   *string           `json:"customer_phone,omitempty"`
	DeliveryAddress *types.Address    `json:"delivery_address,omitempty"`
	Distance        *float64          `json:"distance,omitempty" validate:"omitempty,gte=0"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (req draftRequest) toInput() (orders.DraftInput, error) {
	if req.Tip.IsNegative() {
		return orders.DraftInput{}, pkgerrors.New(pkgerrors.CodeValidation, "tip cannot be negative")
	}
	if req.Distance != nil && *req.Distance < 0 {
		return orders.DraftInput{}, pkgerrors.New(pkgerrors.CodeValidation, "distance cannot be negative")
	}

	input := orders.DraftInput{
		OrderType:       enums.OrderType(req.OrderType),
		Items:           make([]orders.CartItemInput, 0, len(req.Items)),
		TipCents:        pricing.FromDecimal(req.Tip),
		CustomerName:    sanitizeOptional(req.CustomerName),
		CustomerPhone:   sanitizeOptional(req.CustomerPhone),
		DeliveryAddress: req.DeliveryAddress,
		Distance:        req.Distance,
	}

	for _, item := range req.Items {
		line := orders.CartItemInput{
			MenuItemID:          item.MenuItemID,
			Quantity:            item.Quantity,
			SelectedOptions:     make([]orders.SelectionInput, 0, len(item.SelectedOptions)),
			SpecialInstructions: sanitizeOptional(item.SpecialInstructions),
		}
		for _, sel := range item.SelectedOptions {
			line.SelectedOptions = append(line.SelectedOptions, orders.SelectionInput{
				OptionID: sel.OptionID,
				ChoiceID: sel.ChoiceID,
				Quantity: sel.Quantity,
			})
		}
		input.Items = append(input.Items, line)
	}
	return input, nil
}

func sanitizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	cleaned := validators.SanitizeString(*value, freeTextMaxLen)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}

func restaurantIDFromPath(r *http.Request) (uuid.UUID, error) {
	return uuidPathParam(r, "restaurantID")
}

func orderIDFromPath(r *http.Request) (uuid.UUID, error) {
	return uuidPathParam(r, "orderID")
}

func uuidPathParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid "+name).
			WithDetails(map[string]any{"param": name})
	}
	return id, nil
}
