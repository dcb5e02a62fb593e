package main

import (
	"context"
	"log/slog"
	"os"

	"insureflow/config"
	"insureflow/internal/delivery"
	"insureflow/internal/delivery/api"
	"insureflow/internal/delivery/api/middleware"
	"insureflow/internal/delivery/api/router/handler"
	"insureflow/internal/domain/service"
	"insureflow/internal/infra/auth"
	logs "insureflow/internal/infra/log"
	"insureflow/internal/infra/persistence/postgres"
	"insureflow/internal/infra/persistence/redis"
	"insureflow/internal/infra/pubsub"
	"insureflow/internal/infra/qrcode"
	"insureflow/internal/infra/remote"
	"insureflow/internal/infra/storage"
	"insureflow/internal/usecase/impl"

	goredis "github.com/redis/go-redis/v9"
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
		fx.Annotate(
			redis.New,
			fx.As(new(goredis.Cmdable)),
		),
		storage.New,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			redis.NewFlowStateRepository,
			redis.NewDocumentFlowRepository,
			redis.NewAuthUserRepository,
			postgres.NewPurchaseLedgerRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
			impl.NewKeywordClassifier,
			// One backend client serves every remote API
			fx.Annotate(
				remote.NewClient,
				fx.As(new(service.AuthAPI)),
				fx.As(new(service.DocumentAPI)),
				fx.As(new(service.DocumentViewerAPI)),
				fx.As(new(service.ChatAPI)),
				fx.As(new(service.PurchaseAPI)),
			),
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFlowSessions,
			impl.NewCatalogService,
			impl.NewFlowService,
			impl.NewDocumentService,
			impl.NewExtractionService,
			impl.NewFormService,
			impl.NewPaymentService,
			impl.NewPurchaseService,
			impl.NewAccountService,
			impl.NewChatService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewChatHandler,
			handler.NewDocumentHandler,
			handler.NewFlowHandler,
			handler.NewFormHandler,
			handler.NewPaymentHandler,
			handler.NewPurchaseHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
