package main

import (
	"context"
	"log/slog"
	"os"

	"kumoart/config"
	"kumoart/internal/delivery"
	"kumoart/internal/delivery/http"
	"kumoart/internal/delivery/http/middleware"
	"kumoart/internal/delivery/http/router/handler"
	"kumoart/internal/delivery/http/view"
	"kumoart/internal/domain/service"
	"kumoart/internal/i18n"
	"kumoart/internal/infra/auth/github"
	"kumoart/internal/infra/content"
	logs "kumoart/internal/infra/log"
	"kumoart/internal/infra/qrcode"
	"kumoart/internal/infra/whatsapp"
	"kumoart/internal/usecase/impl"

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
		i18n.NewBundle,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			content.NewProductRepository,
			content.NewEventRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			whatsapp.NewLinkService,
			github.NewOAuthService,
			newQRCodeService,
		),
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
			impl.NewCatalogService,
			impl.NewEventService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLocaleMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			view.NewBuilder,
			view.NewRenderer,
			handler.NewPageHandler,
			handler.NewCatalogHandler,
			handler.NewEventHandler,
			handler.NewContactHandler,
			handler.NewAuthHandler,
			handler.NewHealthHandler,
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
