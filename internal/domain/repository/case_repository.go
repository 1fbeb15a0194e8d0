// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"watchdesk/internal/domain/entity"
)

// ErrCaseNotFound is returned when a case does not exist in the store.
var ErrCaseNotFound = errors.New("case not found")

// CaseSnapshotHandler receives the full replacement case list every time the
// backing collection changes. There is no incremental patching: each call
// supersedes the previous list wholesale.
type CaseSnapshotHandler func(cases []entity.Case)

// CaseRepository defines the document-store operations for emergency cases.
type CaseRepository interface {
	// WatchCases subscribes to the emergencies collection ordered by
	// timestamp descending and invokes handler on every snapshot. It blocks
	// until ctx is cancelled or the stream fails.
	WatchCases(ctx context.Context, handler CaseSnapshotHandler) error

	// ResolveCase marks a case resolved with the operator identity. The
	// resolved-at instant is assigned server side.
	ResolveCase(ctx context.Context, id string, res entity.Resolution) error

	// AppendNotification appends a status notification for the reporting user.
	AppendNotification(ctx context.Context, n entity.Notification) error

	// MirrorSolvedAlert writes the denormalized copy of a resolved device
	// alert into the solved_device_alerts collection. The realtime record is
	// not moved; it stays in place with its status flipped.
	MirrorSolvedAlert(ctx context.Context, alert entity.DeviceAlert, res entity.Resolution) error
}
