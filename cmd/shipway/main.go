package main

import (
	"context"
	"log/slog"
	"os"

	"shipway/config"
	"shipway/internal/delivery"
	"shipway/internal/delivery/http"
	"shipway/internal/delivery/http/middleware"
	"shipway/internal/delivery/http/router/handler"
	"shipway/internal/infra/cache"
	"shipway/internal/infra/geoip"
	logs "shipway/internal/infra/log"
	"shipway/internal/infra/mail"
	"shipway/internal/infra/persistence/postgres"
	"shipway/internal/infra/pubsub"
	"shipway/internal/infra/shopify"
	"shipway/internal/usecase/impl"

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
		cache.NewCountryCache,
		geoip.NewCountryResolver,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRuleRepository,
			postgres.NewCatalogRepository,
			postgres.NewSignupRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			mail.NewSMTPMailer,
			shopify.NewAdminClient,
			shopify.NewSessionVerifier,
			impl.NewIncludedDispatcher,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewResolutionService,
			impl.NewRuleService,
			impl.NewNotificationService,
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
			handler.NewDeliveryHandler,
			handler.NewRuleHandler,
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
