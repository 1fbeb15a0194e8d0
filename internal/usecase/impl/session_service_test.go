package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"watchdesk/config"
	"watchdesk/internal/domain/entity"
	domainerrors "watchdesk/internal/domain/errors"
	"watchdesk/internal/infra/auth"
	mockSvc "watchdesk/internal/mocks/service"
	"watchdesk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usecaseCredentials(station, headACP, password string) usecase.Credentials {
	return usecase.Credentials{Station: station, HeadACP: headACP, Password: password}
}

func testSessionConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			Secret: "test-secret",
			TTL:    12 * time.Hour,
		},
		Operator: &config.OperatorConfig{
			Station:      "Belapur HQ",
			HeadACP:      "ACP Rane",
			PasswordHash: "$2a$10$hash",
		},
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewSessionService(testSessionConfig(), tokenSvc, hasher, logger)
	require.NoError(t, err)

	hasher.EXPECT().Check("$2a$10$hash", "watchdesk").Return(nil)
	tokenSvc.EXPECT().
		GenerateSessionToken(entity.Operator{Station: "Belapur HQ", HeadACP: "ACP Mehta"}).
		Return("signed-token", nil)

	token, operator, err := svc.Login(usecaseCredentials("Belapur HQ", "ACP Mehta", "watchdesk"))
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "Belapur HQ", operator.Station)
	assert.Equal(t, "ACP Mehta", operator.HeadACP)
}

func TestSessionService_Login_StationIsCaseInsensitive(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewSessionService(testSessionConfig(), tokenSvc, hasher, logger)
	require.NoError(t, err)

	hasher.EXPECT().Check("$2a$10$hash", "watchdesk").Return(nil)
	tokenSvc.EXPECT().
		GenerateSessionToken(entity.Operator{Station: "Belapur HQ", HeadACP: "ACP Rane"}).
		Return("signed-token", nil)

	// HeadACP falls back to the configured name when the form leaves it blank.
	_, operator, err := svc.Login(usecaseCredentials("  belapur hq ", "  ", "watchdesk"))
	require.NoError(t, err)
	assert.Equal(t, "ACP Rane", operator.HeadACP)
}

func TestSessionService_Login_UnknownStation(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewSessionService(testSessionConfig(), tokenSvc, hasher, logger)
	require.NoError(t, err)

	_, _, err = svc.Login(usecaseCredentials("Vashi HQ", "ACP Rane", "watchdesk"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewSessionService(testSessionConfig(), tokenSvc, hasher, logger)
	require.NoError(t, err)

	hasher.EXPECT().Check("$2a$10$hash", "guess").Return(errors.New("mismatch"))

	_, _, err = svc.Login(usecaseCredentials("Belapur HQ", "ACP Rane", "guess"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_TokenGenerationFailure(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewSessionService(testSessionConfig(), tokenSvc, hasher, logger)
	require.NoError(t, err)

	hasher.EXPECT().Check("$2a$10$hash", "watchdesk").Return(nil)
	tokenSvc.EXPECT().
		GenerateSessionToken(entity.Operator{Station: "Belapur HQ", HeadACP: "ACP Rane"}).
		Return("", errors.New("signing failed"))

	_, _, err = svc.Login(usecaseCredentials("Belapur HQ", "ACP Rane", "watchdesk"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_WithBcryptHasher(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	hasher := auth.NewBcryptHasher()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hash, err := hasher.Hash("watchdesk")
	require.NoError(t, err)

	cfg := testSessionConfig()
	cfg.Operator.PasswordHash = hash

	svc, err := NewSessionService(cfg, tokenSvc, hasher, logger)
	require.NoError(t, err)

	tokenSvc.EXPECT().
		GenerateSessionToken(entity.Operator{Station: "Belapur HQ", HeadACP: "ACP Rane"}).
		Return("signed-token", nil)

	token, _, err := svc.Login(usecaseCredentials("Belapur HQ", "", "watchdesk"))
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)

	_, _, err = svc.Login(usecaseCredentials("Belapur HQ", "", "wrong"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestNewSessionService_MissingOperator(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := testSessionConfig()
	cfg.Operator = nil

	_, err := NewSessionService(cfg, tokenSvc, hasher, logger)
	assert.Error(t, err)
}

func TestSessionService_SessionTTL(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewSessionService(testSessionConfig(), tokenSvc, hasher, logger)
	require.NoError(t, err)

	assert.Equal(t, 12*time.Hour, svc.SessionTTL())
}
