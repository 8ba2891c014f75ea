package pricing

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/felipeimp22/menuflow-backend/pkg/db/models"
	"github.com/felipeimp22/menuflow-backend/pkg/enums"
)

// ValidateTaxSettings checks a restaurant's tax configuration for admin
// reporting. It aggregates every violation and runs independently of the tax
// calculation, which accepts whatever it is given.
func ValidateTaxSettings(taxes []models.TaxSetting) error {
	var err error

	for i, tax := range taxes {
		label := tax.Name
		if label == "" {
			label = fmt.Sprintf("tax #%d", i+1)
		}

		if !tax.Type.IsValid() {
			err = multierr.Append(err, fmt.Errorf("%s: unknown tax type %q", label, tax.Type))
		}
		if !tax.ApplyTo.IsValid() {
			err = multierr.Append(err, fmt.Errorf("%s: unknown apply_to %q", label, tax.ApplyTo))
		}

		switch tax.Type {
		case enums.TaxTypePercentage:
			if tax.Rate < 0 || tax.Rate > 100 {
				err = multierr.Append(err, fmt.Errorf("%s: percentage rate %.4f outside [0, 100]", label, tax.Rate))
			}
		case enums.TaxTypeFixed:
			if tax.Rate < 0 {
				err = multierr.Append(err, fmt.Errorf("%s: fixed rate %.4f is negative", label, tax.Rate))
			}
		}
	}

	return err
}
