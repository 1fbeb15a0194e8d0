// Package firebase initializes the shared Firebase app and the per-backend
// clients used by the persistence layer.
package firebase

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"

	"watchdesk/config"
)

// Clients bundles the backend handles. Database is nil when no databaseURL is
// configured; the device-alert feed degrades gracefully in that case while
// the case feed keeps working.
type Clients struct {
	Firestore *firestore.Client
	Database  *db.Client
}

// Params holds dependencies for the Firebase clients, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New initializes the Firebase app and its clients.
func New(params Params) (*Clients, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := fb.NewApp(params.Ctx, &fb.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	fsClient, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	var dbClient *db.Client
	if cfg.DatabaseURL == "" {
		params.Logger.Warn("realtime database URL not configured, device alerts will be unavailable")
	} else {
		dbClient, err = app.Database(params.Ctx)
		if err != nil {
			// The case feed must survive a broken alert backend.
			params.Logger.Warn("realtime database unavailable, device alerts disabled",
				slog.Any("error", err),
			)
			dbClient = nil
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(fsClient.Close())
		},
	})

	return &Clients{
		Firestore: fsClient,
		Database:  dbClient,
	}, nil
}
