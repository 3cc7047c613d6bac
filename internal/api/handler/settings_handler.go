package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/api/metrics"
	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
)

type SettingsHandler struct {
	settings ports.SettingsService
	composer ports.ViewComposer
}

func NewSettingsHandler(settings ports.SettingsService, composer ports.ViewComposer) *SettingsHandler {
	return &SettingsHandler{settings: settings, composer: composer}
}

// Get returns the settings sections the role may see.
//
// @Summary      Settings
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  domain.SettingsView
// @Router       /v1/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.composer.SettingsView(session.Identity.Role))
}

// PatchNotifications updates the toggles in memory. Toggles the role cannot
// see are ignored.
//
// @Summary      Update notification toggles
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.NotificationPatch  true  "Toggles to change"
// @Success      200   {object}  domain.NotificationSettings
// @Router       /v1/settings/notifications [patch]
func (h *SettingsHandler) PatchNotifications(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var patch domain.NotificationPatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	updated := h.settings.UpdateNotifications(patch.Restrict(session.Identity.Role))
	return c.JSON(http.StatusOK, updated)
}

// PatchFamily updates the family profile in memory. Nothing is validated
// until the settings are saved.
//
// @Summary      Update family profile
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.FamilyPatch  true  "Fields to change"
// @Success      200   {object}  domain.FamilySettings
// @Router       /v1/settings/family [patch]
func (h *SettingsHandler) PatchFamily(c echo.Context) error {
	var patch domain.FamilyPatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.settings.UpdateFamilySettings(patch))
}

// Save validates the family profile and persists both settings entries.
//
// @Summary      Save settings
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      422  {object}  map[string]any
// @Failure      500  {object}  map[string]string
// @Router       /v1/settings/save [post]
func (h *SettingsHandler) Save(c echo.Context) error {
	if err := h.settings.Save(c.Request().Context()); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			metrics.SettingsSavesTotal.WithLabelValues("invalid").Inc()
		} else {
			metrics.SettingsSavesTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.SettingsSavesTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, map[string]any{
		"saved":         true,
		"notifications": h.settings.Notifications(),
		"family":        h.settings.Family(),
	})
}
