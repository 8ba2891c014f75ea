package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/felipeimp22/menuflow-backend/api/controllers"
	"github.com/felipeimp22/menuflow-backend/api/middleware"
	ordersvc "github.com/felipeimp22/menuflow-backend/internal/orders"
	settingssvc "github.com/felipeimp22/menuflow-backend/internal/settings"
	"github.com/felipeimp22/menuflow-backend/pkg/config"
	"github.com/felipeimp22/menuflow-backend/pkg/db"
	"github.com/felipeimp22/menuflow-backend/pkg/logger"
	"github.com/felipeimp22/menuflow-backend/pkg/redis"
)

// NewRouter wires the HTTP surface: health probes, metrics, and the
// restaurant-scoped pricing endpoints.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	registry *prometheus.Registry,
	ordersService ordersvc.Service,
	settingsService settingssvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/restaurants/{restaurantID}", func(r chi.Router) {
		r.Post("/cart/quote", controllers.CartQuote(ordersService, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", controllers.OrderCreate(ordersService, logg))
			r.Get("/{orderID}", controllers.OrderGet(ordersService, logg))
			r.Put("/{orderID}", controllers.OrderUpdate(ordersService, logg))
			r.Patch("/{orderID}/status", controllers.OrderUpdateStatus(ordersService, logg))
		})

		r.Post("/settings/taxes/validate", controllers.TaxSettingsValidate(settingsService, logg))
	})

	return r
}
