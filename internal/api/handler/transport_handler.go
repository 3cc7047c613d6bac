package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/api/metrics"
	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
)

const collectionTransport = "transport"

type TransportHandler struct {
	transport ports.TransportService
}

func NewTransportHandler(transport ports.TransportService) *TransportHandler {
	return &TransportHandler{transport: transport}
}

type transportBoardResponse struct {
	Routes      []domain.Route               `json:"routes"`
	Vehicles    []domain.Vehicle             `json:"vehicles"`
	Maintenance []domain.MaintenanceReminder `json:"maintenance"`
	Summary     domain.TransportSummary      `json:"summary"`
}

type advanceRouteRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled en_route completed cancelled"`
}

// Board returns routes, vehicles and service reminders.
//
// @Summary      Transport board
// @Tags         transport
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  transportBoardResponse
// @Router       /v1/transport [get]
func (h *TransportHandler) Board(c echo.Context) error {
	return c.JSON(http.StatusOK, transportBoardResponse{
		Routes:      h.transport.Routes(),
		Vehicles:    h.transport.Vehicles(),
		Maintenance: h.transport.Maintenance(),
		Summary:     h.transport.Summary(),
	})
}

// AddRoute schedules a new route.
//
// @Summary      Add route
// @Tags         transport
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.AddRouteInput  true  "Route"
// @Success      201   {object}  domain.Route
// @Failure      422   {object}  map[string]any
// @Router       /v1/transport/routes [post]
func (h *TransportHandler) AddRoute(c echo.Context) error {
	var req ports.AddRouteInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	route, err := h.transport.AddRoute(c.Request().Context(), req)
	if err != nil {
		return err
	}
	metrics.CollectionMutationsTotal.WithLabelValues(collectionTransport, "add").Inc()
	return c.JSON(http.StatusCreated, route)
}

// Advance moves a route along its status lifecycle.
//
// @Summary      Advance route status
// @Tags         transport
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Route ID"
// @Param        body  body      advanceRouteRequest  true  "Next status"
// @Success      200   {object}  domain.Route
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]any
// @Router       /v1/transport/routes/{id}/status [post]
func (h *TransportHandler) Advance(c echo.Context) error {
	var req advanceRouteRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	status, _ := domain.ParseRouteStatus(req.Status)
	route, err := h.transport.Advance(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		return err
	}
	metrics.CollectionMutationsTotal.WithLabelValues(collectionTransport, "advance").Inc()
	return c.JSON(http.StatusOK, route)
}
