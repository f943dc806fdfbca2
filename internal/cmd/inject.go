package cmd

import (
	"context"
	"log/slog"

	"coffeeshop/config"
	"coffeeshop/internal/delivery"
	"coffeeshop/internal/delivery/http"
	"coffeeshop/internal/delivery/http/middleware"
	"coffeeshop/internal/delivery/http/router/handler"
	"coffeeshop/internal/delivery/worker"
	workerhandler "coffeeshop/internal/delivery/worker/handler"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/infra/auth"
	logs "coffeeshop/internal/infra/log"
	"coffeeshop/internal/infra/payment"
	"coffeeshop/internal/infra/persistence/rdb"
	"coffeeshop/internal/infra/pubsub"
	"coffeeshop/internal/infra/qrcode"
	"coffeeshop/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
	)
}

func injectDatabase() fx.Option {
	return fx.Provide(
		rdb.New,
		rdb.NewTransactionManager,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		rdb.NewMenuItemRepository,
		rdb.NewOrderRepository,
		rdb.NewPaymentRepository,
		rdb.NewTableRepository,
		rdb.NewIngredientRepository,
		rdb.NewCustomerRepository,
	)
}

func injectService() fx.Option {
	return fx.Options(
		payment.Module,
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService sizes table codes from configuration
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAuthService,
		impl.NewMenuService,
		impl.NewOrderService,
		impl.NewPaymentService,
		impl.NewTableService,
		impl.NewInventoryService,
		impl.NewCustomerService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewAuthHandler,
		handler.NewMenuHandler,
		handler.NewOrderHandler,
		handler.NewPaymentHandler,
		handler.NewTableHandler,
		handler.NewInventoryHandler,
		handler.NewCustomerHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

func injectKitchen() fx.Option {
	return fx.Provide(
		impl.NewKitchenService,
		workerhandler.NewPushHandler,
		fx.Annotate(
			worker.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// startServer runs every delivery in the background; a failing one shuts the app down so OnStop hooks run.
func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				}
			}
		}()
	}
}
