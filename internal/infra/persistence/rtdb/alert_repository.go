// Package rtdb implements the device-alert repository on the Firebase
// Realtime Database.
package rtdb

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"time"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"

	"watchdesk/config"
	"watchdesk/internal/domain/entity"
	"watchdesk/internal/domain/repository"
	"watchdesk/internal/infra/firebase"
)

const alertsPath = "alerts"

type alertRepository struct {
	client       *db.Client
	pollInterval time.Duration
	writeTimeout time.Duration
	logger       *slog.Logger
}

// NewAlertRepository is the constructor for the realtime-database alert
// repository. When the database client is absent it returns a disabled
// implementation so the rest of the dashboard keeps working.
func NewAlertRepository(clients *firebase.Clients, cfg *config.Config, logger *slog.Logger) repository.AlertRepository {
	if clients.Database == nil {
		return &disabledAlertRepository{logger: logger}
	}

	return &alertRepository{
		client:       clients.Database,
		pollInterval: cfg.Feeds.AlertPollInterval,
		writeTimeout: cfg.Feeds.WriteTimeout,
		logger:       logger,
	}
}

// WatchAlerts reads the alerts subtree on an interval and hands the full
// child list to handler. The admin SDK exposes no streaming listener, so the
// poll interval bounds how quickly remote changes become visible. Each
// delivery replaces the previous list wholesale.
func (r *alertRepository) WatchAlerts(ctx context.Context, handler repository.AlertSnapshotHandler) error {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		alerts, err := r.fetch(ctx)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil
		case err != nil:
			// Keep the previous snapshot on read failure.
			r.logger.Error("device alerts read failed", slog.Any("error", err))
		default:
			handler(alerts)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (r *alertRepository) fetch(ctx context.Context) ([]entity.DeviceAlert, error) {
	var raw map[string]map[string]any
	if err := r.client.NewRef(alertsPath).Get(ctx, &raw); err != nil {
		return nil, errors.Wrap(err, "read alerts tree")
	}

	alerts := make([]entity.DeviceAlert, 0, len(raw))
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		alerts = append(alerts, entity.DeviceAlert{ID: key, Raw: raw[key]})
	}

	return alerts, nil
}

// ResolveAlert flips alerts/{id} to resolved in place. resolvedAt is written
// in epoch milliseconds, which is what the ingestion pipeline writes too.
func (r *alertRepository) ResolveAlert(ctx context.Context, id string, res entity.Resolution) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	err := r.client.NewRef(alertsPath).Child(id).Update(ctx, map[string]any{
		"status":     entity.StatusResolved,
		"resolvedAt": time.Now().UnixMilli(),
		"resolvedBy": res.By,
	})

	return errors.Wrap(err, "update device alert")
}

// disabledAlertRepository stands in when the realtime backend is not
// configured. The watch idles until shutdown and writes are rejected.
type disabledAlertRepository struct {
	logger *slog.Logger
}

func (r *disabledAlertRepository) WatchAlerts(ctx context.Context, handler repository.AlertSnapshotHandler) error {
	r.logger.Warn("realtime database not configured, device alert feed disabled")

	// One empty delivery marks the feed as settled. A missing backend keeps
	// the alert list empty; it is not the same state as a feed outage.
	handler(nil)
	<-ctx.Done()

	return nil
}

func (r *disabledAlertRepository) ResolveAlert(context.Context, string, entity.Resolution) error {
	return repository.ErrAlertFeedUnavailable
}
