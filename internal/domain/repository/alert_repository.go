package repository

import (
	"context"
	"errors"

	"watchdesk/internal/domain/entity"
)

// Domain-specific errors for the device-alert store.
var (
	// ErrAlertNotFound is returned when an alert does not exist in the tree.
	ErrAlertNotFound = errors.New("device alert not found")
	// ErrAlertFeedUnavailable is returned when the realtime backend was never
	// configured; the rest of the dashboard keeps working without it.
	ErrAlertFeedUnavailable = errors.New("device alert feed unavailable")
)

// AlertSnapshotHandler receives the full replacement alert list on every
// delivery, one entry per child of the alerts tree.
type AlertSnapshotHandler func(alerts []entity.DeviceAlert)

// AlertRepository defines the key-value-tree operations for device alerts.
type AlertRepository interface {
	// WatchAlerts delivers the complete alerts subtree to handler whenever it
	// is read. It blocks until ctx is cancelled.
	WatchAlerts(ctx context.Context, handler AlertSnapshotHandler) error

	// ResolveAlert updates alerts/{id} with resolved status, the resolver
	// identity and the resolution instant in epoch milliseconds.
	ResolveAlert(ctx context.Context, id string, res entity.Resolution) error
}
