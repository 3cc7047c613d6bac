package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/dashboard/internal/api/metrics"
	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginResponse struct {
	Success bool              `json:"success"`
	Token   string            `json:"token,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type sessionResponse struct {
	Identity     domain.Identity     `json:"identity"`
	StartedAt    string              `json:"started_at"`
	Capabilities []domain.Capability `json:"capabilities"`
	ViewOnly     bool                `json:"view_only"`
}

// Login checks the credentials and starts a new session. The identity is not
// returned; callers read it from GET /v1/session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.LoginInput  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  loginResponse
// @Failure      422   {object}  loginResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginInput
	if err := c.Bind(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_input").Inc()
		return c.JSON(http.StatusBadRequest, loginResponse{Error: "invalid payload"})
	}

	token, err := h.sessions.Login(c.Request().Context(), req)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			metrics.LoginsTotal.WithLabelValues("invalid_input").Inc()
			return c.JSON(http.StatusUnprocessableEntity, loginResponse{Error: "validation failed", Fields: ve.Fields})
		case errors.Is(err, domain.ErrAuthentication):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, loginResponse{Error: "invalid credentials"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Success: true, Token: token})
}

// Logout ends the current session.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout()
	return c.NoContent(http.StatusNoContent)
}

// Session returns the identity of the current session and its capabilities.
//
// @Summary      Current session
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	role := session.Identity.Role
	return c.JSON(http.StatusOK, sessionResponse{
		Identity:     session.Identity,
		StartedAt:    session.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		Capabilities: domain.CapabilitiesFor(role),
		ViewOnly:     domain.ViewOnly(role),
	})
}
