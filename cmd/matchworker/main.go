package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"foodbridge/config"
	"foodbridge/internal/delivery"
	"foodbridge/internal/delivery/worker"
	"foodbridge/internal/delivery/worker/handler"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	logs "foodbridge/internal/infra/log"
	"foodbridge/internal/infra/mail"
	"foodbridge/internal/infra/persistence/postgres"
	"foodbridge/internal/infra/pubsub"
	"foodbridge/internal/infra/push"
	"foodbridge/internal/usecase"
	"foodbridge/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewMatchRepository,
			postgres.NewDirectoryRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			mail.NewMailService,
			newPushService,
		),
	)
}

// newPushService creates a Firebase push service when configured.
func newPushService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Push notifications are optional
	}

	svc, err := push.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newMatcherUsecase builds the proximity matcher for the worker. Rounds are
// driven by Pub/Sub push deliveries, so inline scheduling never runs here.
func newMatcherUsecase(
	lc fx.Lifecycle,
	cfg *config.Config,
	matchRepo repository.MatchRepository,
	directoryRepo repository.DirectoryRepository,
	deviceRepo repository.DeviceRepository,
	mailSvc service.MailService,
	pushSvc service.PushService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.MatcherUsecase {
	matcher := impl.NewMatcherService(cfg.Matcher, matchRepo, directoryRepo, deviceRepo, mailSvc, pushSvc, publisher, logger)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return matcher.Close()
		},
	})

	return matcher
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newMatcherUsecase,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
