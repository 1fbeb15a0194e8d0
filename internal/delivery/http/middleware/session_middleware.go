package middleware

import (
	"net/http"
	"strings"

	"watchdesk/config"
	domainerrors "watchdesk/internal/domain/errors"
	"watchdesk/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// OperatorContextKey is the echo context key holding the authenticated
// operator.
const OperatorContextKey = "operator"

// SessionMiddleware authenticates requests from the session cookie.
type SessionMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokenSvc service.TokenService, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		tokenSvc:   tokenSvc,
		cookieName: cfg.Session.CookieName,
	}
}

// Authenticate validates the session cookie and stores the operator on the
// context. Browser page requests are redirected to the login page; API
// requests get a 401 instead.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return m.reject(c)
		}

		operator, err := m.tokenSvc.ValidateSessionToken(cookie.Value)
		if err != nil {
			return m.reject(c)
		}

		c.Set(OperatorContextKey, operator)

		return next(c)
	}
}

func (m *SessionMiddleware) reject(c echo.Context) error {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return domainerrors.ErrSessionRequired
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}
