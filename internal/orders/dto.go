package orders

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/felipeimp22/menuflow-backend/internal/pricing"
	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
	"github.com/felipeimp22/menuflow-backend/pkg/enums"
	"github.com/felipeimp22/menuflow-backend/pkg/types"
)

// SelectionInput is one modifier pick on a requested cart line.
type SelectionInput struct {
	OptionID uuid.UUID
	ChoiceID uuid.UUID
	Quantity int
}

// CartItemInput is one requested cart line.
type CartItemInput struct {
	MenuItemID          uuid.UUID
	Quantity            int
	SelectedOptions     []SelectionInput
	SpecialInstructions *string
}

// DraftInput is the service-level request shared by quote, create, and update.
// Tip is already in cents; the API layer converts from decimal.
type DraftInput struct {
	OrderType       enums.OrderType
	Items           []CartItemInput
	TipCents        int
	CustomerName    *string
	CustomerPhone   *string
	DeliveryAddress *types.Address
	Distance        *float64
}

// TaxLineDTO is one breakdown entry with the amount as boundary decimal.
type TaxLineDTO struct {
	Name    string           `json:"name"`
	Rate    float64          `json:"rate"`
	Type    enums.TaxType    `json:"type"`
	ApplyTo enums.TaxApplyTo `json:"apply_to"`
	Amount  decimal.Decimal  `json:"amount"`
}

// SelectedOptionDTO is one priced modifier selection on a response item.
type SelectedOptionDTO struct {
	OptionID   uuid.UUID       `json:"option_id"`
	ChoiceID   uuid.UUID       `json:"choice_id"`
	OptionName string          `json:"option_name"`
	ChoiceName string          `json:"choice_name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// DraftItemDTO is one priced cart line in a response.
type DraftItemDTO struct {
	MenuItemID          uuid.UUID           `json:"menu_item_id"`
	Name                string              `json:"name"`
	BasePrice           decimal.Decimal     `json:"base_price"`
	Adjustments         decimal.Decimal     `json:"adjustments"`
	FinalPrice          decimal.Decimal     `json:"final_price"`
	Quantity            int                 `json:"quantity"`
	Total               decimal.Decimal     `json:"total"`
	SelectedOptions     []SelectedOptionDTO `json:"selected_options"`
	SpecialInstructions *string             `json:"special_instructions,omitempty"`
}

// DeliveryDTO mirrors how a delivery fee was resolved.
type DeliveryDTO struct {
	TierName    string             `json:"tier_name,omitempty"`
	Provider    string             `json:"provider,omitempty"`
	Distance    float64            `json:"distance"`
	Unit        enums.DistanceUnit `json:"unit"`
	BaseFee     decimal.Decimal    `json:"base_fee"`
	DistanceFee decimal.Decimal    `json:"distance_fee"`
	TotalFee    decimal.Decimal    `json:"total_fee"`
}

// DraftDTO is the boundary shape of a computed order draft. All currency
// fields are decimals rounded to two places; internal math stays in cents.
type DraftDTO struct {
	Items        []DraftItemDTO  `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	TaxBreakdown []TaxLineDTO    `json:"tax_breakdown"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	Delivery     *DeliveryDTO    `json:"delivery,omitempty"`
	Tip          decimal.Decimal `json:"tip"`
	PlatformFee  decimal.Decimal `json:"platform_fee"`
	Total        decimal.Decimal `json:"total"`
}

// OrderDTO is the boundary shape of a persisted order.
type OrderDTO struct {
	ID              uuid.UUID         `json:"id"`
	RestaurantID    uuid.UUID         `json:"restaurant_id"`
	Type            enums.OrderType   `json:"type"`
	Status          enums.OrderStatus `json:"status"`
	CustomerName    *string           `json:"customer_name,omitempty"`
	CustomerPhone   *string           `json:"customer_phone,omitempty"`
	DeliveryAddress *types.Address    `json:"delivery_address,omitempty"`
	Draft           DraftDTO          `json:"pricing"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

// NewDraftDTO converts a pricing result to the decimal boundary shape.
func NewDraftDTO(result *pricing.OrderDraftResult) DraftDTO {
	dto := DraftDTO{
		Items:        make([]DraftItemDTO, 0, len(result.Items)),
		Subtotal:     pricing.ToDecimal(result.SubtotalCents),
		Tax:          pricing.ToDecimal(result.TaxCents),
		TaxBreakdown: make([]TaxLineDTO, 0, len(result.TaxBreakdown)),
		DeliveryFee:  pricing.ToDecimal(result.DeliveryFeeCents),
		Tip:          pricing.ToDecimal(result.TipCents),
		PlatformFee:  pricing.ToDecimal(result.PlatformFeeCents),
		Total:        pricing.ToDecimal(result.TotalCents),
	}

	for _, item := range result.Items {
		dto.Items = append(dto.Items, newDraftItemDTO(
			item.MenuItemID, item.Name, item.BasePriceCents, item.AdjustmentsCents,
			item.FinalPriceCents, item.Quantity, item.TotalCents,
			item.SelectedOptions, item.SpecialInstructions,
		))
	}
	for _, line := range result.TaxBreakdown {
		dto.TaxBreakdown = append(dto.TaxBreakdown, newTaxLineDTO(line))
	}
	if result.DeliveryDetails != nil {
		dto.Delivery = newDeliveryDTO(result.DeliveryDetails)
	}
	return dto
}

// NewOrderDTO converts a persisted order to the boundary shape.
func NewOrderDTO(order *models.Order) OrderDTO {
	draft := DraftDTO{
		Items:        make([]DraftItemDTO, 0, len(order.Items)),
		Subtotal:     pricing.ToDecimal(order.SubtotalCents),
		Tax:          pricing.ToDecimal(order.TaxCents),
		TaxBreakdown: make([]TaxLineDTO, 0, len(order.TaxBreakdown)),
		DeliveryFee:  pricing.ToDecimal(order.DeliveryFeeCents),
		Tip:          pricing.ToDecimal(order.TipCents),
		PlatformFee:  pricing.ToDecimal(order.PlatformFeeCents),
		Total:        pricing.ToDecimal(order.TotalCents),
	}
	for _, item := range order.Items {
		draft.Items = append(draft.Items, newDraftItemDTO(
			item.MenuItemID, item.Name, item.BasePriceCents, item.AdjustmentsCents,
			item.FinalPriceCents, item.Quantity, item.TotalCents,
			item.SelectedOptions, item.SpecialInstructions,
		))
	}
	for _, line := range order.TaxBreakdown {
		draft.TaxBreakdown = append(draft.TaxBreakdown, newTaxLineDTO(line))
	}
	if order.DeliveryDetails != nil {
		draft.Delivery = newDeliveryDTO(order.DeliveryDetails)
	}

	return OrderDTO{
		ID:              order.ID,
		RestaurantID:    order.RestaurantID,
		Type:            order.Type,
		Status:          order.Status,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		DeliveryAddress: order.DeliveryAddress,
		Draft:           draft,
		CreatedAt:       order.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       order.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func newDraftItemDTO(menuItemID uuid.UUID, name string, baseCents, adjustmentsCents, finalCents, quantity, totalCents int, selected types.SelectedOptions, instructions *string) DraftItemDTO {
	item := DraftItemDTO{
		MenuItemID:          menuItemID,
		Name:                name,
		BasePrice:           pricing.ToDecimal(baseCents),
		Adjustments:         pricing.ToDecimal(adjustmentsCents),
		FinalPrice:          pricing.ToDecimal(finalCents),
		Quantity:            quantity,
		Total:               pricing.ToDecimal(totalCents),
		SelectedOptions:     make([]SelectedOptionDTO, 0, len(selected)),
		SpecialInstructions: instructions,
	}
	for _, option := range selected {
		item.SelectedOptions = append(item.SelectedOptions, SelectedOptionDTO{
			OptionID:   option.OptionID,
			ChoiceID:   option.ChoiceID,
			OptionName: option.OptionName,
			ChoiceName: option.ChoiceName,
			Quantity:   option.Quantity,
			Price:      pricing.ToDecimal(option.PriceCents),
		})
	}
	return item
}

func newTaxLineDTO(line types.TaxLine) TaxLineDTO {
	return TaxLineDTO{
		Name:    line.Name,
		Rate:    line.Rate,
		Type:    line.Type,
		ApplyTo: line.ApplyTo,
		Amount:  pricing.ToDecimal(line.AmountCents),
	}
}

func newDeliveryDTO(details *types.DeliveryDetails) *DeliveryDTO {
	return &DeliveryDTO{
		TierName:    details.TierName,
		Provider:    details.Provider,
		Distance:    details.Distance,
		Unit:        details.Unit,
		BaseFee:     pricing.ToDecimal(details.BaseFeeCents),
		DistanceFee: pricing.ToDecimal(details.DistanceFeeCents),
		TotalFee:    pricing.ToDecimal(details.TotalFeeCents),
	}
}
