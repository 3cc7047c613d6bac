package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/api/metrics"
	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
)

const collectionActivities = "activities"

type ActivityHandler struct {
	activities ports.ActivityService
}

func NewActivityHandler(activities ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

type calendarResponse struct {
	Week    []domain.DayActivities `json:"week"`
	Summary domain.ActivitySummary `json:"summary"`
}

// List returns the weekly calendar with per-category counts.
//
// @Summary      Activity calendar
// @Tags         activities
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  calendarResponse
// @Router       /v1/activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, calendarResponse{Week: h.activities.Week(), Summary: h.activities.Summary()})
}

// Add schedules an activity.
//
// @Summary      Add activity
// @Tags         activities
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.AddActivityInput  true  "Activity"
// @Success      201   {object}  domain.ActivityEntry
// @Failure      422   {object}  map[string]any
// @Router       /v1/activities [post]
func (h *ActivityHandler) Add(c echo.Context) error {
	var req ports.AddActivityInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	entry, err := h.activities.Add(c.Request().Context(), req)
	if err != nil {
		return err
	}
	metrics.CollectionMutationsTotal.WithLabelValues(collectionActivities, "add").Inc()
	return c.JSON(http.StatusCreated, entry)
}

// Update edits an activity in place.
//
// @Summary      Update activity
// @Tags         activities
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Activity ID"
// @Param        body  body      ports.ActivityPatch  true  "Fields to change"
// @Success      200   {object}  domain.ActivityEntry
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]any
// @Router       /v1/activities/{id} [put]
func (h *ActivityHandler) Update(c echo.Context) error {
	var patch ports.ActivityPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	entry, err := h.activities.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	metrics.CollectionMutationsTotal.WithLabelValues(collectionActivities, "update").Inc()
	return c.JSON(http.StatusOK, entry)
}

// Remove deletes an activity. Unknown IDs are ignored.
//
// @Summary      Remove activity
// @Tags         activities
// @Security     BearerAuth
// @Param        id  path  string  true  "Activity ID"
// @Success      204
// @Router       /v1/activities/{id} [delete]
func (h *ActivityHandler) Remove(c echo.Context) error {
	h.activities.Remove(c.Param("id"))
	metrics.CollectionMutationsTotal.WithLabelValues(collectionActivities, "remove").Inc()
	return c.NoContent(http.StatusNoContent)
}
