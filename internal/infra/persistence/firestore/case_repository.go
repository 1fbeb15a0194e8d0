// Package firestore implements the document-store repositories on Cloud
// Firestore.
package firestore

import (
	"context"
	"log/slog"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"watchdesk/config"
	"watchdesk/internal/domain/entity"
	"watchdesk/internal/domain/repository"
	"watchdesk/internal/infra/firebase"
)

const (
	emergenciesCollection   = "emergencies"
	notificationsCollection = "notifications"
	solvedAlertsCollection  = "solved_device_alerts"
	timestampField          = "timestamp"
)

type caseRepository struct {
	client       *fs.Client
	writeTimeout time.Duration
	logger       *slog.Logger
}

// NewCaseRepository is the constructor for the Firestore-backed case repository.
func NewCaseRepository(clients *firebase.Clients, cfg *config.Config, logger *slog.Logger) repository.CaseRepository {
	return &caseRepository{
		client:       clients.Firestore,
		writeTimeout: cfg.Feeds.WriteTimeout,
		logger:       logger,
	}
}

// WatchCases streams snapshots of the emergencies collection, newest first.
// Every delivered snapshot replaces the previous list wholesale.
func (r *caseRepository) WatchCases(ctx context.Context, handler repository.CaseSnapshotHandler) error {
	query := r.client.Collection(emergenciesCollection).OrderBy(timestampField, fs.Desc)
	snapshots := query.Snapshots(ctx)
	defer snapshots.Stop()

	for {
		snap, err := snapshots.Next()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "emergencies snapshot stream failed")
		}

		cases, err := collectCases(snap.Documents)
		if err != nil {
			// Keep the previous list; the next snapshot supersedes it anyway.
			r.logger.Error("failed to read emergencies snapshot", slog.Any("error", err))

			continue
		}

		handler(cases)
	}
}

func collectCases(docs *fs.DocumentIterator) ([]entity.Case, error) {
	var cases []entity.Case
	for {
		doc, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}

		cases = append(cases, entity.Case{ID: doc.Ref.ID, Raw: doc.Data()})
	}

	return cases, nil
}

// ResolveCase marks the case resolved. resolvedAt is assigned by the server
// so the ordering of the collection stays consistent across operators.
func (r *caseRepository) ResolveCase(ctx context.Context, id string, res entity.Resolution) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	_, err := r.client.Collection(emergenciesCollection).Doc(id).Update(ctx, []fs.Update{
		{Path: "status", Value: entity.StatusResolved},
		{Path: "resolvedBy", Value: res.By},
		{Path: "resolvedStation", Value: res.Station},
		{Path: "resolvedAt", Value: fs.ServerTimestamp},
		{Path: "resolutionMessage", Value: res.Message},
	})

	return errors.Wrap(err, "update emergency case")
}

// AppendNotification appends a status notification for the reporting user.
func (r *caseRepository) AppendNotification(ctx context.Context, n entity.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	_, _, err := r.client.Collection(notificationsCollection).Add(ctx, map[string]any{
		"userId":      n.UserID,
		"emergencyId": n.EmergencyID,
		"title":       n.Title,
		"message":     n.Message,
		"timestamp":   fs.ServerTimestamp,
		"type":        n.Type,
		"read":        n.Read,
	})

	return errors.Wrap(err, "append notification")
}

// MirrorSolvedAlert denormalizes a resolved device alert into the
// solved_device_alerts collection, keyed by the alert id.
func (r *caseRepository) MirrorSolvedAlert(ctx context.Context, alert entity.DeviceAlert, res entity.Resolution) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	data := make(map[string]any, len(alert.Raw)+3)
	for k, v := range alert.Raw {
		data[k] = v
	}
	data["status"] = entity.StatusResolved
	data["resolvedAt"] = fs.ServerTimestamp
	data["resolvedBy"] = res.By

	_, err := r.client.Collection(solvedAlertsCollection).Doc(alert.ID).Set(ctx, data)

	return errors.Wrap(err, "mirror solved device alert")
}
