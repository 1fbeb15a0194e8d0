package handler

import (
	"log/slog"
	"net/http"
	"time"

	"watchdesk/config"
	domainerrors "watchdesk/internal/domain/errors"
	"watchdesk/internal/usecase"
	"watchdesk/internal/view"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler serves the login and logout endpoints.
type SessionHandler struct {
	uc         usecase.SessionUsecase
	renderer   *view.Renderer
	cookieName string
	logger     *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, renderer *view.Renderer, cfg *config.Config, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:         uc,
		renderer:   renderer,
		cookieName: cfg.Session.CookieName,
		logger:     logger,
	}
}

// LoginPage renders the login form.
func (h *SessionHandler) LoginPage(c echo.Context) error {
	html, err := h.renderer.RenderLogin("")
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}

// Login authenticates the submitted credentials, sets the session cookie and
// redirects to the dashboard. On bad credentials the form is re-rendered with
// an error banner.
func (h *SessionHandler) Login(c echo.Context) error {
	var creds usecase.Credentials
	if err := c.Bind(&creds); err != nil {
		return h.loginFailed(c, "Invalid login input")
	}
	if err := c.Validate(&creds); err != nil {
		return h.loginFailed(c, "All fields are required")
	}

	token, operator, err := h.uc.Login(creds)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return h.loginFailed(c, "Invalid station or password")
		}
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.uc.SessionTTL()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("Operator logged in", slog.String("station", operator.Station))

	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session cookie and redirects to the login page.
func (h *SessionHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *SessionHandler) loginFailed(c echo.Context, message string) error {
	html, err := h.renderer.RenderLogin(message)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusUnauthorized, html)
}
