package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/api/metrics"
	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
)

// ViewHandler exposes the view composer.
type ViewHandler struct {
	composer ports.ViewComposer
}

func NewViewHandler(composer ports.ViewComposer) *ViewHandler {
	return &ViewHandler{composer: composer}
}

type setViewRequest struct {
	View string `json:"view" validate:"notblank"`
}

type navigationResponse struct {
	Items []domain.NavEntry `json:"items"`
}

// Navigation lists the navigation entries of the current role.
//
// @Summary      Visible navigation
// @Tags         views
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  navigationResponse
// @Router       /v1/navigation [get]
func (h *ViewHandler) Navigation(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, navigationResponse{Items: h.composer.VisibleNavigation(session.Identity.Role)})
}

// Get renders the active view.
//
// @Summary      Render active view
// @Tags         views
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  domain.RenderTarget
// @Router       /v1/view [get]
func (h *ViewHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.composer.Render())
}

// Set switches the active view. Views the role may not open resolve to the
// dashboard; the response is the render target actually shown.
//
// @Summary      Switch active view
// @Tags         views
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      setViewRequest  true  "Requested view"
// @Success      200   {object}  domain.RenderTarget
// @Failure      422   {object}  map[string]any
// @Router       /v1/view [put]
func (h *ViewHandler) Set(c echo.Context) error {
	var req setViewRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	requested := strings.TrimSpace(req.View)
	resolved, err := h.composer.SetActiveView(requested)
	if err != nil {
		return err
	}
	if string(resolved) != requested {
		label := requested
		if _, ok := domain.ParseView(requested); !ok {
			label = "unknown"
		}
		metrics.ViewFallbacksTotal.WithLabelValues(label).Inc()
	}
	return c.JSON(http.StatusOK, h.composer.Render())
}
