package pricing

import "github.com/google/uuid"

// SkippedSelection records a modifier selection that contributed zero because
// its option, choice, or rule could not be resolved.
type SkippedSelection struct {
	OptionID uuid.UUID `json:"option_id"`
	ChoiceID uuid.UUID `json:"choice_id"`
	Reason   string    `json:"reason"`
}

// Trace records the decision path of one pricing calculation so callers can
// assert on it without parsing log text.
type Trace struct {
	SkippedSelections []SkippedSelection `json:"skipped_selections,omitempty"`
	TaxesApplied      []string           `json:"taxes_applied,omitempty"`
	TierMatched       string             `json:"tier_matched,omitempty"`
	ProviderFallback  string             `json:"provider_fallback,omitempty"`
	Notes             []string           `json:"notes,omitempty"`
}

func (t *Trace) skipSelection(optionID, choiceID uuid.UUID, reason string) {
	if t == nil {
		return
	}
	t.SkippedSelections = append(t.SkippedSelections, SkippedSelection{
		OptionID: optionID,
		ChoiceID: choiceID,
		Reason:   reason,
	})
}

func (t *Trace) taxApplied(name string) {
	if t == nil {
		return
	}
	t.TaxesApplied = append(t.TaxesApplied, name)
}

func (t *Trace) tierMatched(name string) {
	if t == nil {
		return
	}
	t.TierMatched = name
}

func (t *Trace) providerFallback(reason string) {
	if t == nil {
		return
	}
	t.ProviderFallback = reason
}

func (t *Trace) note(msg string) {
	if t == nil {
		return
	}
	t.Notes = append(t.Notes, msg)
}
