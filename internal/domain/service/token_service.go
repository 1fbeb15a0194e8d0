package service

import "watchdesk/internal/domain/entity"

// TokenService issues and validates operator session tokens.
type TokenService interface {
	// GenerateSessionToken signs a session token carrying the operator
	// identity.
	GenerateSessionToken(op entity.Operator) (string, error)

	// ValidateSessionToken verifies a token and extracts the operator.
	ValidateSessionToken(token string) (entity.Operator, error)
}
