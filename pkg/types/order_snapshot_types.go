package types

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/felipeimp22/menuflow-backend/pkg/enums"
)

// SelectedOption snapshots one modifier choice as it was priced on an order item.
type SelectedOption struct {
	OptionID   uuid.UUID `json:"option_id"`
	ChoiceID   uuid.UUID `json:"choice_id"`
	OptionName string    `json:"option_name"`
	ChoiceName string    `json:"choice_name"`
	Quantity   int       `json:"quantity"`
	PriceCents int       `json:"price_cents"`
}

// SelectedOptions is persisted as JSONB on order items.
type SelectedOptions []SelectedOption

// Value serializes the selections to JSON.
func (s SelectedOptions) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan decodes JSONB into the selection slice.
func (s *SelectedOptions) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded SelectedOptions
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*s = decoded
	return nil
}

// TaxLine is one entry of the itemized tax breakdown.
type TaxLine struct {
	Name        string           `json:"name"`
	Rate        float64          `json:"rate"`
	Type        enums.TaxType    `json:"type"`
	ApplyTo     enums.TaxApplyTo `json:"apply_to"`
	AmountCents int              `json:"amount_cents"`
}

// TaxLines is the JSONB tax breakdown stored on an order.
type TaxLines []TaxLine

// Value serializes the breakdown to JSON.
func (t TaxLines) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

// Scan decodes JSONB into the breakdown slice.
func (t *TaxLines) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded TaxLines
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*t = decoded
	return nil
}

// DeliveryDetails snapshots how an order's delivery fee was resolved.
type DeliveryDetails struct {
	TierName         string             `json:"tier_name,omitempty"`
	Provider         string             `json:"provider,omitempty"`
	Distance         float64            `json:"distance"`
	Unit             enums.DistanceUnit `json:"unit"`
	BaseFeeCents     int                `json:"base_fee_cents"`
	DistanceFeeCents int                `json:"distance_fee_cents"`
	TotalFeeCents    int                `json:"total_fee_cents"`
}

// Value serializes delivery details to JSON.
func (d *DeliveryDetails) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan decodes a JSON object into the details struct.
func (d *DeliveryDetails) Scan(value interface{}) error {
	if value == nil {
		*d = DeliveryDetails{}
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, d)
}
