package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	apiName    = "Uzum Market API"
	apiVersion = "1.0.0"

	readyCheckTimeout = 3 * time.Second
)

// HealthCheck 回傳nil表示依賴正常
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
	now    func() time.Time
}

// NewHealthHandler checks 為 /api/ready 要檢查的依賴, 例如 postgres, redis
func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	if checks == nil {
		checks = map[string]HealthCheck{}
	}
	return &HealthHandler{checks: checks, now: time.Now}
}

type healthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type infoResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type readyResponse struct {
	Success bool              `json:"success"`
	Checks  map[string]string `json:"checks"`
}

// @Summary health
// @Tags system
// @Produce json
// @Success 200 {object} handler.healthResponse "Server is running"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, healthResponse{
		Success:   true,
		Message:   "Server is running",
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
	})
}

// @Summary api info
// @Tags system
// @Produce json
// @Success 200 {object} handler.infoResponse "api info"
// @Router / [get]
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, infoResponse{
		Success: true,
		Message: apiName,
		Version: apiVersion,
		Endpoints: map[string]string{
			"auth":     "/api/auth",
			"products": "/api/products",
			"orders":   "/api/orders",
			"cart":     "/api/cart",
			"admin":    "/api/admin",
		},
	})
}

// @Summary readiness
// @Description 併發檢查所有依賴, 任一失敗回傳503
// @Tags system
// @Produce json
// @Success 200 {object} handler.readyResponse "all dependencies ok"
// @Failure 503 {object} handler.readyResponse "some dependency failed"
// @Router /ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	// 每個check寫自己的index, 不需要鎖
	results := make([]error, len(names))
	var g errgroup.Group
	for i, name := range names {
		check := h.checks[name]
		g.Go(func() error {
			results[i] = check(ctx)
			return nil
		})
	}
	_ = g.Wait()

	resp := readyResponse{Success: true, Checks: make(map[string]string, len(names))}
	for i, name := range names {
		if results[i] != nil {
			resp.Success = false
			resp.Checks[name] = results[i].Error()
			zerolog.Ctx(r.Context()).Warn().Err(results[i]).Str("dependency", name).Msg("readiness check failed")
			continue
		}
		resp.Checks[name] = "ok"
	}

	status := http.StatusOK
	if !resp.Success {
		status = http.StatusServiceUnavailable
	}
	api.WriteJSON(w, status, resp)
}
