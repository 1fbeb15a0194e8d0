package usecase

import (
	"time"

	"watchdesk/internal/domain/entity"
)

// Credentials carries the login form fields.
type Credentials struct {
	Station  string `form:"station" json:"station" validate:"required"`
	HeadACP  string `form:"headAcp" json:"headAcp" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// SessionUsecase authenticates operators and issues session tokens.
type SessionUsecase interface {
	// Login verifies the credentials and returns a signed session token
	// together with the authenticated operator.
	Login(creds Credentials) (token string, operator entity.Operator, err error)

	// SessionTTL returns the configured session lifetime, used for the
	// session cookie expiry.
	SessionTTL() time.Duration
}
