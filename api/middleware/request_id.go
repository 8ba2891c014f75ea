package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/felipeimp22/menuflow-backend/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns or propagates the request id and binds it to the
// request-scoped logger. Callers may supply their own id, but anything that
// does not parse as a UUID is replaced.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if _, err := uuid.Parse(reqID); err != nil {
				reqID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
