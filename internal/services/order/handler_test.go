package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bento-order-system/internal/logger"
	"bento-order-system/internal/models"
)

type fakeOrderService struct {
	view    *models.OrderView
	views   []models.OrderView
	err     error
	healthy bool
}

func (f *fakeOrderService) Create(ctx context.Context, req *models.CreateOrderRequest, requestID string) (*models.OrderView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func (f *fakeOrderService) ListAll(ctx context.Context, requestID string) ([]models.OrderView, error) {
	return f.views, f.err
}

func (f *fakeOrderService) HealthCheck(ctx context.Context) bool {
	return f.healthy
}

type fakeMenuService struct {
	menus []models.MenuItem
	err   error
}

func (f *fakeMenuService) List(ctx context.Context, requestID string) ([]models.MenuItem, error) {
	return f.menus, f.err
}

func newTestHandler(svc OrderService, menus MenuService) http.Handler {
	if menus == nil {
		menus = &fakeMenuService{}
	}
	h := NewHandler(svc, menus, logger.New("test"), "testdata-static-missing")
	return h.SetupRoutes()
}

func TestCreateOrder_Success(t *testing.T) {
	orderedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &fakeOrderService{
		view: &models.OrderView{
			ID:         1,
			UserName:   "Alice",
			MenuID:     1,
			MenuName:   "Fried Chicken Bento",
			Quantity:   2,
			TotalPrice: 1000,
			OrderedAt:  orderedAt,
		},
	}
	routes := newTestHandler(svc, nil)

	body := `{"user_name":"Alice","menu_id":1,"quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	routes.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var view models.OrderView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if view.ID != 1 || view.MenuName != "Fried Chicken Bento" || view.TotalPrice != 1000 {
		t.Errorf("unexpected view: %+v", view)
	}
	if !view.OrderedAt.Equal(orderedAt) {
		t.Errorf("ordered_at = %v, want %v", view.OrderedAt, orderedAt)
	}
}

func TestCreateOrder_MenuNotFound(t *testing.T) {
	svc := &fakeOrderService{err: models.MenuNotFoundError{MenuID: 99}}
	routes := newTestHandler(svc, nil)

	body := `{"user_name":"Bob","menu_id":99,"quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	routes.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "99") {
		t.Errorf("error body should mention the menu id: %s", rec.Body.String())
	}
}

func TestCreateOrder_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty user name", body: `{"user_name":"","menu_id":1,"quantity":1}`},
		{name: "zero quantity", body: `{"user_name":"Alice","menu_id":1,"quantity":0}`},
		{name: "negative quantity", body: `{"user_name":"Alice","menu_id":1,"quantity":-2}`},
		{name: "missing menu id", body: `{"user_name":"Alice","quantity":1}`},
		{name: "unknown field", body: `{"user_name":"Alice","menu_id":1,"quantity":1,"price":9}`},
		{name: "malformed json", body: `{"user_name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeOrderService{view: &models.OrderView{ID: 1}}
			routes := newTestHandler(svc, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			routes.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCreateOrder_RequiresJSONContentType(t *testing.T) {
	routes := newTestHandler(&fakeOrderService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("user_name=Alice"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	routes.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateOrder_StorageFailure(t *testing.T) {
	svc := &fakeOrderService{err: context.DeadlineExceeded}
	routes := newTestHandler(svc, nil)

	body := `{"user_name":"Alice","menu_id":1,"quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	routes.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "deadline") {
		t.Errorf("internal error detail must not leak to the client: %s", rec.Body.String())
	}
}

func TestListOrders(t *testing.T) {
	svc := &fakeOrderService{
		views: []models.OrderView{
			{ID: 2, UserName: "Bob", MenuID: 1, MenuName: "Fried Chicken Bento", Quantity: 1, TotalPrice: 500},
			{ID: 1, UserName: "Alice", MenuID: 2, MenuName: "Grilled Beef Bento", Quantity: 2, TotalPrice: 1400},
		},
	}
	routes := newTestHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	routes.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var views []models.OrderView
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(views))
	}
	if views[0].ID != 2 {
		t.Errorf("expected most recent order first, got id %d", views[0].ID)
	}
}

func TestListOrders_EmptyIsArray(t *testing.T) {
	routes := newTestHandler(&fakeOrderService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	routes.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("empty listing should encode as [], got %s", got)
	}
}

func TestListMenus(t *testing.T) {
	desc := "Packed with juicy fried chicken"
	menus := &fakeMenuService{
		menus: []models.MenuItem{
			{ID: 1, Name: "Fried Chicken Bento", Price: 500, Description: &desc},
		},
	}
	routes := newTestHandler(&fakeOrderService{}, menus)

	req := httptest.NewRequest(http.MethodGet, "/api/menus", nil)
	rec := httptest.NewRecorder()

	routes.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []models.MenuItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(items) != 1 || items[0].Price != 500 {
		t.Errorf("unexpected menus: %+v", items)
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		healthy    bool
		wantStatus int
	}{
		{name: "healthy", healthy: true, wantStatus: http.StatusOK},
		{name: "unhealthy", healthy: false, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes := newTestHandler(&fakeOrderService{healthy: tt.healthy}, nil)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()

			routes.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestCORSHeaders(t *testing.T) {
	routes := newTestHandler(&fakeOrderService{healthy: true}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	rec := httptest.NewRecorder()

	routes.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestRoot_FallbackPayload(t *testing.T) {
	routes := newTestHandler(&fakeOrderService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	routes.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["status"] != "running" {
		t.Errorf("status = %q, want running", payload["status"])
	}
	if payload["docs"] == "" {
		t.Error("info payload should include a docs field")
	}
}
