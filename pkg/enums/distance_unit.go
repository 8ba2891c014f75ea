package enums

import "fmt"

// DistanceUnit is the unit delivery tiers and distances are expressed in.
type DistanceUnit string

const (
	DistanceUnitKM DistanceUnit = "km"
	DistanceUnitMI DistanceUnit = "mi"
)

var validDistanceUnits = []DistanceUnit{
	DistanceUnitKM,
	DistanceUnitMI,
}

// String implements fmt.Stringer.
func (d DistanceUnit) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DistanceUnit.
func (d DistanceUnit) IsValid() bool {
	for _, candidate := range validDistanceUnits {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDistanceUnit converts raw input into a DistanceUnit.
func ParseDistanceUnit(value string) (DistanceUnit, error) {
	for _, candidate := range validDistanceUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid distance unit %q", value)
}
