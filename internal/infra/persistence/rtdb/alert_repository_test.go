package rtdb

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchdesk/config"
	"watchdesk/internal/domain/entity"
	"watchdesk/internal/domain/repository"
	"watchdesk/internal/infra/firebase"
)

func newDisabledRepository(t *testing.T) repository.AlertRepository {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAlertRepository(&firebase.Clients{}, &config.Config{}, logger)
}

func TestDisabledAlertRepository_DeliversEmptySnapshot(t *testing.T) {
	repo := newDisabledRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	delivered := make(chan []entity.DeviceAlert, 1)
	done := make(chan error, 1)
	go func() {
		done <- repo.WatchAlerts(ctx, func(alerts []entity.DeviceAlert) {
			delivered <- alerts
		})
	}()

	// A missing backend settles the feed with an empty list instead of
	// leaving it in the degraded state.
	select {
	case alerts := <-delivered:
		assert.Empty(t, alerts)
	case <-time.After(time.Second):
		t.Fatal("expected an empty snapshot from the disabled feed")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestDisabledAlertRepository_RejectsResolve(t *testing.T) {
	repo := newDisabledRepository(t)

	err := repo.ResolveAlert(context.Background(), "alert-1", entity.Resolution{By: "Police"})
	assert.ErrorIs(t, err, repository.ErrAlertFeedUnavailable)
}
