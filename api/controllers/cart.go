package controllers

import (
	"net/http"

	"github.com/felipeimp22/menuflow-backend/api/responses"
	"github.com/felipeimp22/menuflow-backend/api/validators"
	ordersvc "github.com/felipeimp22/menuflow-backend/internal/orders"
	pkgerrors "github.com/felipeimp22/menuflow-backend/pkg/errors"
	"github.com/felipeimp22/menuflow-backend/pkg/logger"
)

// CartQuote prices a draft without persisting anything. The response is the
// same pricing breakdown an order create returns.
func CartQuote(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		restaurantID, err := restaurantIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload draftRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		draft, err := svc.QuoteDraft(r.Context(), restaurantID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, draft)
	}
}
