package pubsub

import (
	"context"
	"log/slog"
	"time"

	"shipway/config"
	"shipway/internal/domain/constants"
	"shipway/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inlinePublisher dispatches events in-process when no broker is configured.
// Dispatch runs on its own goroutine so authoring commits do not wait on
// notification emails.
type inlinePublisher struct {
	dispatcher service.IncludedDispatcher
	logger     *slog.Logger
}

func (p *inlinePublisher) PublishResourceIncluded(_ context.Context, event *service.ResourceIncludedEvent) error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := p.dispatcher.DispatchIncluded(ctx, event); err != nil {
			p.logger.Error("[InlinePubSub] Dispatch failed",
				slog.String("shop", event.Shop),
				slog.String("country", event.Country),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

func (p *inlinePublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc         fx.Lifecycle
	Ctx        context.Context
	Config     *config.Config
	Logger     *slog.Logger
	Dispatcher service.IncludedDispatcher
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// Without a broker, dispatch notifications in-process.
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, dispatching notifications inline")

		return &inlinePublisher{dispatcher: params.Dispatcher, logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
