package main

import (
	"context"
	"log/slog"
	"os"

	"watchdesk/config"
	"watchdesk/internal/delivery"
	"watchdesk/internal/delivery/http"
	"watchdesk/internal/delivery/http/middleware"
	"watchdesk/internal/delivery/http/router/handler"
	"watchdesk/internal/infra/auth"
	"watchdesk/internal/infra/firebase"
	logs "watchdesk/internal/infra/log"
	"watchdesk/internal/infra/persistence/firestore"
	"watchdesk/internal/infra/persistence/rtdb"
	"watchdesk/internal/infra/pubsub"
	"watchdesk/internal/usecase"
	"watchdesk/internal/usecase/impl"
	"watchdesk/internal/view"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
	Dashboard  usecase.DashboardUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewCaseRepository,
			rtdb.NewAlertRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			view.NewRenderer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFeedService,
			impl.NewResolveService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDashboardHandler,
			handler.NewAPIHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	feedCtx, cancelFeeds := context.WithCancel(ctx)
	feedsDone := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(feedsDone)
				if err := params.Dashboard.Run(feedCtx); err != nil {
					slog.Error("Feed service stopped", slog.Any("error", err))
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancelFeeds()
			select {
			case <-feedsDone:
			case <-stopCtx.Done():
			}
			return nil
		},
	})

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
