package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/api/metrics"
	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
)

const collectionShopping = "shopping"

type ShoppingHandler struct {
	shopping ports.ShoppingService
}

func NewShoppingHandler(shopping ports.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shopping: shopping}
}

type shoppingListResponse struct {
	Pending   []domain.ShoppingItem `json:"pending"`
	Completed []domain.ShoppingItem `json:"completed"`
	Counts    ports.ShoppingCounts  `json:"counts"`
}

type generateResponse struct {
	Added []domain.ShoppingItem `json:"added"`
}

func (h *ShoppingHandler) listResponse() shoppingListResponse {
	return shoppingListResponse{
		Pending:   h.shopping.Pending(),
		Completed: h.shopping.Completed(),
		Counts:    h.shopping.Counts(),
	}
}

// List returns the list split into pending and completed items.
//
// @Summary      Shopping list
// @Tags         shopping
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  shoppingListResponse
// @Router       /v1/shopping [get]
func (h *ShoppingHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.listResponse())
}

// Add appends an item attributed to the logged-in member.
//
// @Summary      Add item
// @Tags         shopping
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.AddItemInput  true  "Item"
// @Success      201   {object}  domain.ShoppingItem
// @Failure      422   {object}  map[string]any
// @Router       /v1/shopping [post]
func (h *ShoppingHandler) Add(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req ports.AddItemInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	item, err := h.shopping.Add(c.Request().Context(), req, session.Identity.Name)
	if err != nil {
		return err
	}
	metrics.CollectionMutationsTotal.WithLabelValues(collectionShopping, "add").Inc()
	return c.JSON(http.StatusCreated, item)
}

// Generate appends the staples derived from the meal plan.
//
// @Summary      Generate from meals
// @Tags         shopping
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  generateResponse
// @Router       /v1/shopping/generate [post]
func (h *ShoppingHandler) Generate(c echo.Context) error {
	added := h.shopping.GenerateFromMeals()
	metrics.CollectionMutationsTotal.WithLabelValues(collectionShopping, "generate").Inc()
	return c.JSON(http.StatusOK, generateResponse{Added: added})
}

// Toggle flips an item between pending and completed.
//
// @Summary      Toggle item
// @Tags         shopping
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  domain.ShoppingItem
// @Failure      404  {object}  map[string]string
// @Router       /v1/shopping/{id}/toggle [post]
func (h *ShoppingHandler) Toggle(c echo.Context) error {
	item, err := h.shopping.Toggle(c.Param("id"))
	if err != nil {
		return err
	}
	metrics.CollectionMutationsTotal.WithLabelValues(collectionShopping, "toggle").Inc()
	return c.JSON(http.StatusOK, item)
}

// Delete removes an item. Unknown IDs are ignored.
//
// @Summary      Delete item
// @Tags         shopping
// @Security     BearerAuth
// @Param        id  path  string  true  "Item ID"
// @Success      204
// @Router       /v1/shopping/{id} [delete]
func (h *ShoppingHandler) Delete(c echo.Context) error {
	h.shopping.Delete(c.Param("id"))
	metrics.CollectionMutationsTotal.WithLabelValues(collectionShopping, "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
