package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	ordersvc "github.com/felipeimp22/menuflow-backend/internal/orders"
	settingssvc "github.com/felipeimp22/menuflow-backend/internal/settings"
	"github.com/felipeimp22/menuflow-backend/pkg/config"
	"github.com/felipeimp22/menuflow-backend/pkg/enums"
	pkgerrors "github.com/felipeimp22/menuflow-backend/pkg/errors"
	"github.com/felipeimp22/menuflow-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubOrdersService struct {
	quoted  int
	created int
}

func (s *stubOrdersService) QuoteDraft(ctx context.Context, restaurantID uuid.UUID, input ordersvc.DraftInput) (*ordersvc.DraftDTO, error) {
	s.quoted++
	return &ordersvc.DraftDTO{}, nil
}

func (s *stubOrdersService) CreateOrder(ctx context.Context, restaurantID uuid.UUID, input ordersvc.DraftInput) (*ordersvc.OrderDTO, error) {
	s.created++
	return &ordersvc.OrderDTO{ID: uuid.New(), RestaurantID: restaurantID, Status: enums.OrderStatusPending}, nil
}

func (s *stubOrdersService) GetOrder(ctx context.Context, restaurantID, orderID uuid.UUID) (*ordersvc.OrderDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func (s *stubOrdersService) UpdateOrder(ctx context.Context, restaurantID, orderID uuid.UUID, input ordersvc.DraftInput) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{ID: orderID, RestaurantID: restaurantID}, nil
}

func (s *stubOrdersService) UpdateOrderStatus(ctx context.Context, restaurantID, orderID uuid.UUID, status enums.OrderStatus) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{ID: orderID, RestaurantID: restaurantID, Status: status}, nil
}

type stubSettingsService struct {
	validateErr error
}

func (stubSettingsService) PricingSettings(ctx context.Context, restaurantID uuid.UUID) (*settingssvc.PricingSettings, error) {
	return nil, nil
}

func (s stubSettingsService) ValidateTaxes(ctx context.Context, restaurantID uuid.UUID) error {
	return s.validateErr
}

func (stubSettingsService) Invalidate(ctx context.Context, restaurantID uuid.UUID) error {
	return nil
}

func newTestRouter(t *testing.T, orders *stubOrdersService) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	logg := logger.New(logger.Options{ServiceName: "routes-test", Level: zerolog.ErrorLevel, Output: io.Discard})
	return NewRouter(cfg, logg, stubPinger{}, stubPinger{}, prometheus.NewRegistry(), orders, stubSettingsService{})
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(t, &stubOrdersService{})

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("X-MenuFlow-Env"); got != "test" {
		t.Errorf("env header = %q", got)
	}
}

func TestHealthReady(t *testing.T) {
	router := newTestRouter(t, &stubOrdersService{})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestMetricsExposed(t *testing.T) {
	router := newTestRouter(t, &stubOrdersService{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestCartQuoteRoute(t *testing.T) {
	orders := &stubOrdersService{}
	router := newTestRouter(t, orders)

	menuItemID := uuid.New()
	body := `{"order_type":"pickup","items":[{"menu_item_id":"` + menuItemID.String() + `","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/restaurants/"+uuid.NewString()+"/cart/quote", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if orders.quoted != 1 {
		t.Errorf("quoted = %d, want 1", orders.quoted)
	}
}

func TestCreateOrderRoute(t *testing.T) {
	orders := &stubOrdersService{}
	router := newTestRouter(t, orders)

	menuItemID := uuid.New()
	body := `{"order_type":"pickup","items":[{"menu_item_id":"` + menuItemID.String() + `","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/restaurants/"+uuid.NewString()+"/orders/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}
	if orders.created != 1 {
		t.Errorf("created = %d, want 1", orders.created)
	}
}

func TestInvalidRestaurantIDRejected(t *testing.T) {
	router := newTestRouter(t, &stubOrdersService{})

	body := `{"order_type":"pickup","items":[{"menu_item_id":"` + uuid.NewString() + `","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/restaurants/not-a-uuid/cart/quote", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestInvalidBodyRejected(t *testing.T) {
	router := newTestRouter(t, &stubOrdersService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/restaurants/"+uuid.NewString()+"/cart/quote", strings.NewReader(`{"order_type":"dine_in","items":[]}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeValidation) {
		t.Errorf("code = %s", envelope.Error.Code)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	router := newTestRouter(t, &stubOrdersService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/"+uuid.NewString()+"/orders/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestTaxSettingsValidateRoute(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	logg := logger.New(logger.Options{ServiceName: "routes-test", Level: zerolog.ErrorLevel, Output: io.Discard})

	validationErr := pkgerrors.New(pkgerrors.CodeValidation, "tax \"Sales Tax\": percentage rate must be between 0 and 100")
	router := NewRouter(cfg, logg, stubPinger{}, stubPinger{}, prometheus.NewRegistry(),
		&stubOrdersService{}, stubSettingsService{validateErr: validationErr})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/restaurants/"+uuid.NewString()+"/settings/taxes/validate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}

	router = NewRouter(cfg, logg, stubPinger{}, stubPinger{}, prometheus.NewRegistry(),
		&stubOrdersService{}, stubSettingsService{})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/restaurants/"+uuid.NewString()+"/settings/taxes/validate", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}

func TestUpdateOrderStatusRoute(t *testing.T) {
	router := newTestRouter(t, &stubOrdersService{})

	req := httptest.NewRequest(http.MethodPatch,
		"/api/v1/restaurants/"+uuid.NewString()+"/orders/"+uuid.NewString()+"/status",
		strings.NewReader(`{"status":"confirmed"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}
