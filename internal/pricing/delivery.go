package pricing

import (
	"math"
	"sort"

	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
	"github.com/felipeimp22/menuflow-backend/pkg/enums"
)

const (
	earthRadiusKm = 6371
	earthRadiusMi = 3959
)

// DeliveryQuote is the tier engine's output for one distance.
type DeliveryQuote struct {
	BaseFeeCents     int
	DistanceFeeCents int
	TotalFeeCents    int
	TierName         string
	Distance         float64
	Unit             enums.DistanceUnit
}

// CalculateDeliveryFee maps a distance through the restaurant's tiers. Tiers
// are scanned in ascending bound order; the first tier whose bound covers the
// distance wins. Past the last bound, the default-flagged tier applies, else
// the tier with the largest bound, with a marginal fee on the excess distance.
func CalculateDeliveryFee(distance float64, tiers []models.DeliveryPricingTier, unit enums.DistanceUnit, trace *Trace) DeliveryQuote {
	quote := DeliveryQuote{Distance: distance, Unit: unit}
	if len(tiers) == 0 {
		trace.note("no delivery tiers configured")
		return quote
	}

	sorted := make([]models.DeliveryPricingTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DistanceCovered < sorted[j].DistanceCovered
	})

	var matched *models.DeliveryPricingTier
	var fallback *models.DeliveryPricingTier
	for i := range sorted {
		if fallback == nil && sorted[i].IsDefault {
			fallback = &sorted[i]
		}
		if matched == nil && sorted[i].DistanceCovered >= distance {
			matched = &sorted[i]
		}
	}
	if matched == nil {
		if fallback != nil {
			matched = fallback
		} else {
			matched = &sorted[len(sorted)-1]
		}
	}

	excess := distance - matched.DistanceCovered
	if excess < 0 {
		excess = 0
	}

	quote.TierName = matched.Name
	quote.BaseFeeCents = matched.BaseFeeCents
	quote.DistanceFeeCents = roundCents(excess * float64(matched.AdditionalFeePerUnitCents))
	quote.TotalFeeCents = quote.BaseFeeCents + quote.DistanceFeeCents
	trace.tierMatched(matched.Name)
	return quote
}

// Haversine computes the great-circle distance between two coordinates in the
// requested unit, rounded to three decimal places.
func Haversine(from, to LatLng, unit enums.DistanceUnit) float64 {
	radius := float64(earthRadiusMi)
	if unit == enums.DistanceUnitKM {
		radius = earthRadiusKm
	}

	lat1 := from.Latitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	dLat := (to.Latitude - from.Latitude) * math.Pi / 180
	dLng := (to.Longitude - from.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(radius*c*1000) / 1000
}
