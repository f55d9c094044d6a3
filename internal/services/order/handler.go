package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"bento-order-system/internal/logger"
	"bento-order-system/internal/models"
)

// Handler handles HTTP requests for the bento order API
type Handler struct {
	service   OrderService
	menus     MenuService
	logger    *logger.Logger
	staticDir string
}

// NewHandler creates a new API handler
func NewHandler(service OrderService, menus MenuService, log *logger.Logger, staticDir string) *Handler {
	return &Handler{
		service:   service,
		menus:     menus,
		logger:    log,
		staticDir: staticDir,
	}
}

// ListMenus handles GET /api/menus requests
func (h *Handler) ListMenus(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	menus, err := h.menus.List(ctx, requestID)
	if err != nil {
		h.logger.Error("menu_list_failed", "Failed to list menus", requestID, err, nil)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch menus", requestID)
		return
	}
	if menus == nil {
		menus = []models.MenuItem{}
	}

	h.writeJSONResponse(w, http.StatusOK, menus, requestID)
}

// CreateOrder handles POST /api/orders requests
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if r.Header.Get("Content-Type") != "application/json" {
		h.writeErrorResponse(w, http.StatusBadRequest, "Content-Type must be application/json", requestID)
		return
	}

	var req models.CreateOrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	view, err := h.service.Create(ctx, &req, requestID)
	if err != nil {
		var validationErr models.ValidationError
		var notFoundErr models.MenuNotFoundError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Error("validation_failed", "Order validation failed", requestID, err, map[string]interface{}{
				"field": validationErr.Field,
			})
			h.writeErrorResponse(w, http.StatusBadRequest, validationErr.Error(), requestID)
		case errors.As(err, &notFoundErr):
			h.writeErrorResponse(w, http.StatusNotFound, notFoundErr.Error(), requestID)
		default:
			h.logger.Error("order_creation_failed", "Failed to create order", requestID, err, map[string]interface{}{
				"menu_id": req.MenuID,
			})
			h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to create order", requestID)
		}
		return
	}

	h.logger.Info("order_created", "Order created", requestID, map[string]interface{}{
		"order_id":    view.ID,
		"menu_id":     view.MenuID,
		"total_price": view.TotalPrice,
	})

	h.writeJSONResponse(w, http.StatusCreated, view, requestID)
}

// ListOrders handles GET /api/orders requests
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	views, err := h.service.ListAll(ctx, requestID)
	if err != nil {
		h.logger.Error("order_list_failed", "Failed to list orders", requestID, err, nil)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch orders", requestID)
		return
	}
	if views == nil {
		views = []models.OrderView{}
	}

	h.writeJSONResponse(w, http.StatusOK, views, requestID)
}

// HealthCheck handles GET /health requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	healthy := h.service.HealthCheck(ctx)

	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "bento-order-system",
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
		response["status"] = "unhealthy"
	}

	h.writeJSONResponse(w, status, response, "")
}

// Root handles GET / requests: the frontend index page when the static
// directory holds one, otherwise a JSON info payload.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	indexFile := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(indexFile); err == nil {
		http.ServeFile(w, r, indexFile)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"message": "Bento Order System API",
		"status":  "running",
		"docs":    "/docs",
	}, "")
}

// SetupRoutes sets up the HTTP routes
func (h *Handler) SetupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/menus", h.withLogging(h.ListMenus))
	mux.HandleFunc("POST /api/orders", h.withLogging(h.CreateOrder))
	mux.HandleFunc("GET /api/orders", h.withLogging(h.ListOrders))
	mux.HandleFunc("GET /health", h.withLogging(h.HealthCheck))
	mux.HandleFunc("GET /{$}", h.withLogging(h.Root))

	if info, err := os.Stat(h.staticDir); err == nil && info.IsDir() {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))
	}

	return h.withCORS(mux)
}

// withCORS allows cross-origin calls from the frontend
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging middleware
func (h *Handler) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := logger.GenerateRequestID()

		h.logger.Debug("request_started",
			fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_addr": r.RemoteAddr,
			})

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(rw, r)

		duration := time.Since(start)
		h.logger.Debug("request_completed",
			fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, rw.statusCode),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": duration.Milliseconds(),
			})
	}
}

// writeJSONResponse writes a JSON response with the given status code
func (h *Handler) writeJSONResponse(w http.ResponseWriter, statusCode int, payload interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", requestID, err, nil)
	}
}

// writeErrorResponse writes an error response in JSON format
func (h *Handler) writeErrorResponse(w http.ResponseWriter, statusCode int, message, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]interface{}{
		"error":      message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": requestID,
	}

	json.NewEncoder(w).Encode(errorResponse)
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
