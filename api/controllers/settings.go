package controllers

import (
	"net/http"

	"github.com/felipeimp22/menuflow-backend/api/responses"
	settingssvc "github.com/felipeimp22/menuflow-backend/internal/settings"
	pkgerrors "github.com/felipeimp22/menuflow-backend/pkg/errors"
	"github.com/felipeimp22/menuflow-backend/pkg/logger"
)

// TaxSettingsValidate checks the restaurant's stored tax settings for
// misconfiguration. Invalid settings never block a price calculation; this
// endpoint is how an admin surface reports them.
func TaxSettingsValidate(svc settingssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		restaurantID, err := restaurantIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ValidateTaxes(r.Context(), restaurantID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"valid": true})
	}
}
