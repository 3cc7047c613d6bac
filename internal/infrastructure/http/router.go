package http

import (
	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/infrastructure/http/handlers"
)

// RegisterProbes mounts the unauthenticated health probes on e.
func RegisterProbes(e *echo.Echo, deps map[string]handlers.Pinger) {
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness) // pings every registered dependency
}
