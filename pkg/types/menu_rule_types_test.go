package types

import (
	"testing"

	"github.com/google/uuid"

	"github.com/felipeimp22/menuflow-backend/pkg/enums"
)

func TestChoiceAdjustmentsRoundTrip(t *testing.T) {
	t.Parallel()

	target := uuid.New()
	adjustments := ChoiceAdjustments{
		{
			ChoiceID:             uuid.New(),
			PriceAdjustmentCents: 200,
			IsAvailable:          true,
			PriceAdjustments: []PriceAdjustmentRule{
				{TargetOptionID: &target, AdjustmentType: enums.AdjustmentTypeAddition, Value: 1},
			},
		},
	}

	raw, err := adjustments.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var decoded ChoiceAdjustments
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(decoded) != 1 || decoded[0].PriceAdjustmentCents != 200 {
		t.Fatalf("unexpected decode: %+v", decoded)
	}
	if decoded[0].PriceAdjustments[0].TargetOptionID == nil || *decoded[0].PriceAdjustments[0].TargetOptionID != target {
		t.Fatalf("target option lost in round trip: %+v", decoded[0].PriceAdjustments)
	}
}

func TestSelfOverrideDetection(t *testing.T) {
	t.Parallel()

	rule := PriceAdjustmentRule{AdjustmentType: enums.AdjustmentTypeFixed, Value: 5}
	if !rule.IsSelfOverride() {
		t.Fatal("fixed rule without target must be a self override")
	}

	target := uuid.New()
	rule.TargetOptionID = &target
	if rule.IsSelfOverride() {
		t.Fatal("targeted fixed rule is not a self override")
	}
}

func TestChoiceAdjustmentsScanNil(t *testing.T) {
	t.Parallel()

	var decoded ChoiceAdjustments
	if err := decoded.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if decoded != nil {
		t.Fatalf("expected nil slice, got %+v", decoded)
	}
}
