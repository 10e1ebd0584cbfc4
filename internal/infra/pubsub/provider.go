// Package pubsub publishes order lifecycle events to the configured message broker.
package pubsub

import (
	"context"
	"log/slog"
	"strconv"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no broker is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Order event dropped",
		slog.String("event_type", event.Type),
		slog.Int64("order_id", event.OrderID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the broker named by pubsub.provider. An empty
// provider yields a publisher that drops events so checkout still works.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, order events are dropped")

		return NewNoopPublisher(params.Logger), nil
	}

	if err := validateProvider(cfg); err != nil {
		return nil, err
	}

	publisher, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Order event publisher ready", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

// validateProvider rejects unknown providers and missing provider settings.
func validateProvider(cfg *config.PubSubConfig) error {
	var required map[string]string
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		required = map[string]string{"localEndpoint": cfg.LocalEndpoint}
	case constants.PubSubProviderGoogle:
		required = map[string]string{"projectId": cfg.ProjectID, "topicId": cfg.TopicID}
	case constants.PubSubProviderRabbitMQ:
		required = map[string]string{"rabbitmqUrl": cfg.RabbitMQURL, "exchange": cfg.Exchange}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	for key, value := range required {
		if value == "" {
			return errors.Errorf("pubsub.%s is required for the %s provider", key, cfg.Provider)
		}
	}

	return nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderGoogle:
		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	case constants.PubSubProviderRabbitMQ:
		return NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.Exchange, logger)
	default:
		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}
}

// eventAttributes are the message attributes every provider attaches so
// subscribers can filter and trace without decoding the payload.
func eventAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": event.Type,
		"order_id":   strconv.FormatInt(event.OrderID, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
