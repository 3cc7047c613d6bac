package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/api/metrics"
	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
)

const collectionMeals = "meals"

type MealHandler struct {
	meals           ports.MealPlanService
	suggestions     ports.SuggestionService
	suggestionCount int
}

func NewMealHandler(meals ports.MealPlanService, suggestions ports.SuggestionService, suggestionCount int) *MealHandler {
	return &MealHandler{meals: meals, suggestions: suggestions, suggestionCount: suggestionCount}
}

type weekPlanResponse struct {
	Week  []domain.DayPlan `json:"week"`
	Count int              `json:"count"`
}

type assignMealRequest struct {
	Dish     string `json:"dish"`
	Cuisine  string `json:"cuisine"`
	Time     string `json:"time"`
	Servings int    `json:"servings"`
	Notes    string `json:"notes"`
}

type suggestRequest struct {
	Count int `json:"count" validate:"gte=0,lte=50"`
}

type suggestResponse struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
}

// parseSlotParams reads the :day and :slot path params.
func parseSlotParams(c echo.Context) (domain.Day, domain.MealSlot, error) {
	fields := make(map[string]string)
	day, ok := domain.ParseDay(c.Param("day"))
	if !ok {
		fields["day"] = "day must be a day of the week"
	}
	slot, ok := domain.ParseMealSlot(c.Param("slot"))
	if !ok {
		fields["slot"] = "slot must be one of: breakfast lunch dinner snack"
	}
	if len(fields) > 0 {
		return "", "", domain.NewValidationError(fields)
	}
	return day, slot, nil
}

// Week returns the weekly plan.
//
// @Summary      Weekly meal plan
// @Tags         meals
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  weekPlanResponse
// @Router       /v1/meals [get]
func (h *MealHandler) Week(c echo.Context) error {
	return c.JSON(http.StatusOK, weekPlanResponse{Week: h.meals.Week(), Count: h.meals.Count()})
}

// Get returns one planned meal.
//
// @Summary      Planned meal
// @Tags         meals
// @Security     BearerAuth
// @Produce      json
// @Param        day   path      string  true  "Day of the week"
// @Param        slot  path      string  true  "Meal slot"
// @Success      200   {object}  domain.MealEntry
// @Failure      404   {object}  map[string]string
// @Router       /v1/meals/{day}/{slot} [get]
func (h *MealHandler) Get(c echo.Context) error {
	day, slot, err := parseSlotParams(c)
	if err != nil {
		return err
	}
	entry, ok := h.meals.Get(day, slot)
	if !ok {
		return domain.ErrNotFound
	}
	return c.JSON(http.StatusOK, entry)
}

// Assign plans a dish for a (day, slot), replacing any existing entry.
//
// @Summary      Assign meal
// @Tags         meals
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        day   path      string             true  "Day of the week"
// @Param        slot  path      string             true  "Meal slot"
// @Param        body  body      assignMealRequest  true  "Meal"
// @Success      200   {object}  domain.MealEntry
// @Failure      422   {object}  map[string]any
// @Router       /v1/meals/{day}/{slot} [put]
func (h *MealHandler) Assign(c echo.Context) error {
	var req assignMealRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	entry, err := h.meals.Assign(c.Request().Context(), ports.AssignMealInput{
		Day:      c.Param("day"),
		Slot:     c.Param("slot"),
		Dish:     req.Dish,
		Cuisine:  req.Cuisine,
		Time:     req.Time,
		Servings: req.Servings,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}
	metrics.CollectionMutationsTotal.WithLabelValues(collectionMeals, "assign").Inc()
	return c.JSON(http.StatusOK, entry)
}

// Remove clears a (day, slot). Clearing an empty slot is not an error.
//
// @Summary      Remove meal
// @Tags         meals
// @Security     BearerAuth
// @Param        day   path  string  true  "Day of the week"
// @Param        slot  path  string  true  "Meal slot"
// @Success      204
// @Router       /v1/meals/{day}/{slot} [delete]
func (h *MealHandler) Remove(c echo.Context) error {
	day, slot, err := parseSlotParams(c)
	if err != nil {
		return err
	}
	h.meals.Remove(day, slot)
	metrics.CollectionMutationsTotal.WithLabelValues(collectionMeals, "remove").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Suggest draws candidate meals. Nothing is added to the plan.
//
// @Summary      Generate meal suggestions
// @Tags         meals
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      suggestRequest  false  "How many suggestions"
// @Success      200   {object}  suggestResponse
// @Router       /v1/meals/suggestions [post]
func (h *MealHandler) Suggest(c echo.Context) error {
	var req suggestRequest
	if c.Request().ContentLength != 0 {
		if err := bind(c, &req); err != nil {
			return err
		}
	}
	n := req.Count
	if n == 0 {
		n = h.suggestionCount
	}
	return c.JSON(http.StatusOK, suggestResponse{Suggestions: h.suggestions.Generate(n)})
}

// Commit copies a suggestion into the plan.
//
// @Summary      Commit suggestion
// @Tags         meals
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.CommitSuggestionInput  true  "Suggestion and target slot"
// @Success      200   {object}  domain.MealEntry
// @Failure      422   {object}  map[string]any
// @Router       /v1/meals/suggestions/commit [post]
func (h *MealHandler) Commit(c echo.Context) error {
	var req ports.CommitSuggestionInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	entry, err := h.meals.CommitSuggestion(c.Request().Context(), req)
	if err != nil {
		return err
	}
	metrics.CollectionMutationsTotal.WithLabelValues(collectionMeals, "commit").Inc()
	return c.JSON(http.StatusOK, entry)
}
