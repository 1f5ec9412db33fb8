package main

import (
	"context"
	"log/slog"
	"os"

	"alerts/config"
	"alerts/internal/delivery"
	"alerts/internal/delivery/http"
	"alerts/internal/delivery/http/middleware"
	"alerts/internal/delivery/http/router/handler"
	logs "alerts/internal/infra/log"
	"alerts/internal/infra/metrics"
	"alerts/internal/infra/persistence/memory"
	"alerts/internal/usecase/impl"

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
		memory.New,
		metrics.NewHTTPMetrics,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewPersonRepository,
			memory.NewFirestationRepository,
			memory.NewMedicalRecordRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPersonService,
			impl.NewFirestationService,
			impl.NewMedicalRecordService,
			impl.NewAlertService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewPersonHandler,
			handler.NewFirestationHandler,
			handler.NewMedicalRecordHandler,
			handler.NewAlertHandler,
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
