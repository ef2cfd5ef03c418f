package main

import (
	"context"
	"log/slog"
	"os"

	"cafemeetup/config"
	"cafemeetup/internal/delivery"
	"cafemeetup/internal/delivery/http"
	"cafemeetup/internal/delivery/http/middleware"
	"cafemeetup/internal/delivery/http/router/handler"
	"cafemeetup/internal/domain/service"
	"cafemeetup/internal/infra/auth"
	"cafemeetup/internal/infra/cache"
	logs "cafemeetup/internal/infra/log"
	"cafemeetup/internal/infra/persistence/postgres"
	"cafemeetup/internal/infra/pubsub"
	"cafemeetup/internal/infra/qrcode"
	"cafemeetup/internal/infra/random"
	"cafemeetup/internal/infra/storage"
	"cafemeetup/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewMatchRepository,
			postgres.NewProposalRepository,
			postgres.NewAttendanceRepository,
			postgres.NewMessageRepository,
			postgres.NewRatingRepository,
			postgres.NewBlackBookRepository,
			postgres.NewRejectionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			random.NewCodeGenerator,
			storage.NewPhotoStore,
			cache.NewUnreadCache,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewMeetupService,
			impl.NewAttendanceService,
			impl.NewMessageService,
			impl.NewRatingService,
			impl.NewBlackBookService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewMeetupHandler,
			handler.NewAttendanceHandler,
			handler.NewMessageHandler,
			handler.NewRatingHandler,
			handler.NewBlackBookHandler,
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
				os.Exit(1)
			}
		}()
	}
}
