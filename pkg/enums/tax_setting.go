package enums

import "fmt"

// TaxType says whether a tax is a percentage of the base or a fixed amount.
type TaxType string

const (
	TaxTypePercentage TaxType = "percentage"
	TaxTypeFixed      TaxType = "fixed"
)

var validTaxTypes = []TaxType{
	TaxTypePercentage,
	TaxTypeFixed,
}

// String implements fmt.Stringer.
func (t TaxType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TaxType.
func (t TaxType) IsValid() bool {
	for _, candidate := range validTaxTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTaxType converts raw input into a TaxType.
func ParseTaxType(value string) (TaxType, error) {
	for _, candidate := range validTaxTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tax type %q", value)
}

// TaxApplyTo selects the base a tax is charged against.
type TaxApplyTo string

const (
	TaxApplyToEntireOrder TaxApplyTo = "entire_order"
	TaxApplyToPerItem     TaxApplyTo = "per_item"
)

var validTaxApplyTos = []TaxApplyTo{
	TaxApplyToEntireOrder,
	TaxApplyToPerItem,
}

// String implements fmt.Stringer.
func (t TaxApplyTo) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TaxApplyTo.
func (t TaxApplyTo) IsValid() bool {
	for _, candidate := range validTaxApplyTos {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTaxApplyTo converts raw input into a TaxApplyTo.
func ParseTaxApplyTo(value string) (TaxApplyTo, error) {
	for _, candidate := range validTaxApplyTos {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tax apply_to %q", value)
}
