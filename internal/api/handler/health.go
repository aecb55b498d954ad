package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sporthub/webapp/internal/core/ports"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready — readiness probe.
// Pings the three backend services before declaring the tier ready.
type HealthDependenciesHandler struct {
	users      ports.UsersGateway
	activities ports.ActivitiesGateway
	search     ports.SearchGateway
}

func NewHealthDependenciesHandler(users ports.UsersGateway, activities ports.ActivitiesGateway, search ports.SearchGateway) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		users:      users,
		activities: activities,
		search:     search,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	checks := map[string]func(context.Context) error{
		"users-api":      h.users.Health,
		"activities-api": h.activities.Health,
		"search-api":     h.search.Health,
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		deps    = make(map[string]dependencyStatus, len(checks))
		healthy = true
	)
	for name, check := range checks {
		wg.Add(1)
		go func(name string, check func(context.Context) error) {
			defer wg.Done()
			status := dependencyStatus{Status: "ok"}
			if err := check(ctx); err != nil {
				status = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			}
			mu.Lock()
			deps[name] = status
			if status.Status != "ok" {
				healthy = false
			}
			mu.Unlock()
		}(name, check)
	}
	wg.Wait()

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
