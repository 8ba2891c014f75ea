package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/felipeimp22/menuflow-backend/api/responses"
	pkgerrors "github.com/felipeimp22/menuflow-backend/pkg/errors"
	"github.com/felipeimp22/menuflow-backend/pkg/logger"
)

// Recoverer converts panics into 500 responses instead of dropping the
// connection. The stack trace goes to the log, never to the client.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				err := fmt.Errorf("panic: %v", rec)
				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{
						"panic":  rec,
						"method": r.Method,
						"path":   r.URL.Path,
						"stack":  string(debug.Stack()),
					})
					logg.Error(ctx, "panic.recovered", err)
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "panic"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
