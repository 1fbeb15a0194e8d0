package impl

import (
	"log/slog"
	"strings"
	"time"

	"watchdesk/config"
	"watchdesk/internal/domain/entity"
	domainerrors "watchdesk/internal/domain/errors"
	"watchdesk/internal/domain/service"
	"watchdesk/internal/usecase"

	"github.com/pkg/errors"
)

type sessionService struct {
	station      string
	headACP      string
	passwordHash string
	sessionTTL   time.Duration
	tokenSvc     service.TokenService
	hasher       service.PasswordHasher
	logger       *slog.Logger
}

// NewSessionService creates the session use case from the configured
// operator account.
func NewSessionService(
	cfg *config.Config,
	tokenSvc service.TokenService,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) (usecase.SessionUsecase, error) {
	if cfg.Operator == nil || cfg.Operator.Station == "" || cfg.Operator.PasswordHash == "" {
		return nil, errors.New("operator account is not configured")
	}

	return &sessionService{
		station:      cfg.Operator.Station,
		headACP:      cfg.Operator.HeadACP,
		passwordHash: cfg.Operator.PasswordHash,
		sessionTTL:   cfg.Session.TTL,
		tokenSvc:     tokenSvc,
		hasher:       hasher,
		logger:       logger,
	}, nil
}

func (s *sessionService) Login(creds usecase.Credentials) (string, entity.Operator, error) {
	if !strings.EqualFold(strings.TrimSpace(creds.Station), s.station) {
		s.logger.Debug("login rejected for unknown station", slog.String("station", creds.Station))
		return "", entity.Operator{}, domainerrors.ErrInvalidCredentials
	}

	if err := s.hasher.Check(s.passwordHash, creds.Password); err != nil {
		return "", entity.Operator{}, domainerrors.ErrInvalidCredentials
	}

	operator := entity.Operator{
		Station: s.station,
		HeadACP: strings.TrimSpace(creds.HeadACP),
	}
	if operator.HeadACP == "" {
		operator.HeadACP = s.headACP
	}

	token, err := s.tokenSvc.GenerateSessionToken(operator)
	if err != nil {
		return "", entity.Operator{}, errors.Wrap(err, "failed to generate session token")
	}

	return token, operator, nil
}

func (s *sessionService) SessionTTL() time.Duration {
	return s.sessionTTL
}
