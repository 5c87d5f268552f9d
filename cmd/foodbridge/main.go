package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"foodbridge/config"
	"foodbridge/internal/delivery"
	"foodbridge/internal/delivery/http"
	"foodbridge/internal/delivery/http/middleware"
	"foodbridge/internal/delivery/http/router/handler"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/infra/auth"
	"foodbridge/internal/infra/geocode"
	logs "foodbridge/internal/infra/log"
	"foodbridge/internal/infra/mail"
	"foodbridge/internal/infra/persistence/postgres"
	"foodbridge/internal/infra/pubsub"
	"foodbridge/internal/infra/push"
	"foodbridge/internal/infra/qrcode"
	"foodbridge/internal/infra/storage"
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewAddressRepository,
			postgres.NewFoodItemRepository,
			postgres.NewDeliveryRepository,
			postgres.NewDirectoryRepository,
			postgres.NewMatchRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			geocode.NewOlaMapsService,
			mail.NewMailService,
			storage.NewBlobStore,
			newPushService,
			newQRCodeService,
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

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newMatcherUsecase builds the proximity matcher and ties its inline
// searches to the application lifetime.
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
			impl.NewUserService,
			impl.NewFoodService,
			impl.NewDeliveryService,
			impl.NewMapsService,
			impl.NewDeviceService,
			newMatcherUsecase,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewTestHandler,
			handler.NewFoodHandler,
			handler.NewDeliveryHandler,
			handler.NewMapsHandler,
			handler.NewDeviceHandler,
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
