package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"watchdesk/config"
	"watchdesk/internal/domain/entity"
	"watchdesk/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
	}, nil
}

// GenerateSessionToken creates a signed session token carrying the operator identity.
func (s *jwtService) GenerateSessionToken(op entity.Operator) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"station": op.Station,
		"headACP": op.HeadACP,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
		"type":    "session",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// ValidateSessionToken checks the token signature and expiry and extracts the operator.
func (s *jwtService) ValidateSessionToken(tokenString string) (entity.Operator, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return entity.Operator{}, errors.New("invalid or expired session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.Operator{}, errors.New("failed to parse session claims")
	}
	if tokenType, _ := claims["type"].(string); tokenType != "session" {
		return entity.Operator{}, errors.New("unexpected token type")
	}

	station, _ := claims["station"].(string)
	headACP, _ := claims["headACP"].(string)

	return entity.Operator{Station: station, HeadACP: headACP}, nil
}
