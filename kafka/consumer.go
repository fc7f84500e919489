package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/labflow/reagent-inventory/pkg/logger"
)

// EventHandler handles a raw event payload for one event type.
type EventHandler func(ctx context.Context, payload []byte) error

// Consumer wraps a Kafka consumer group for inventory events.
type Consumer struct {
	consumer      sarama.ConsumerGroup
	brokers       []string
	groupID       string
	topics        []string
	handlers      map[string]EventHandler
	handlersMutex sync.RWMutex
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(brokers []string, groupID string, topics []string) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_6_0_0
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	consumer, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("group_id", groupID).
		Strs("topics", topics).
		Msg("Kafka consumer initialized")

	return &Consumer{
		consumer: consumer,
		brokers:  brokers,
		groupID:  groupID,
		topics:   topics,
		handlers: make(map[string]EventHandler),
	}, nil
}

// RegisterHandler registers an event handler for a specific event type.
func (c *Consumer) RegisterHandler(eventType string, handler EventHandler) {
	c.handlersMutex.Lock()
	defer c.handlersMutex.Unlock()
	c.handlers[eventType] = handler
}

// DecodeReagentLow decodes a low stock event payload.
func DecodeReagentLow(payload []byte) (*ReagentLowEvent, error) {
	var event ReagentLowEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to decode low stock event: %w", err)
	}
	return &event, nil
}

// DecodeReagentSaved decodes a saved event payload.
func DecodeReagentSaved(payload []byte) (*ReagentSavedEvent, error) {
	var event ReagentSavedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to decode saved event: %w", err)
	}
	return &event, nil
}

// Start starts consuming messages until the context is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	handler := &consumerGroupHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				logger.Logger.Info().Msg("Consumer context cancelled, stopping")
				return
			default:
				if err := c.consumer.Consume(ctx, c.topics, handler); err != nil {
					logger.Logger.Error().Err(err).Msg("Error from consumer")
				}
			}
		}
	}()

	go func() {
		for err := range c.consumer.Errors() {
			logger.Logger.Error().Err(err).Msg("Consumer group error")
		}
	}()

	return nil
}

// Close closes the consumer group.
func (c *Consumer) Close() error {
	return c.consumer.Close()
}

type consumerGroupHandler struct {
	consumer *Consumer
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		h.handleMessage(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

func (h *consumerGroupHandler) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	// Pick the trace context and event type out of the message headers.
	carrier := propagation.MapCarrier{}
	eventType := ""
	for _, header := range message.Headers {
		key := string(header.Key)
		if key == "event_type" {
			eventType = string(header.Value)
			continue
		}
		carrier[key] = string(header.Value)
	}

	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)
	tracer := otel.Tracer("kafka-consumer")
	ctx, span := tracer.Start(ctx, "kafka.consume."+eventType,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.source", message.Topic),
			attribute.String("event.type", eventType),
		),
	)
	defer span.End()

	h.consumer.handlersMutex.RLock()
	handler, ok := h.consumer.handlers[eventType]
	h.consumer.handlersMutex.RUnlock()

	if !ok {
		logger.Debug(ctx).
			Str("event_type", eventType).
			Str("topic", message.Topic).
			Msg("No handler registered for event type")
		return
	}

	if err := handler(ctx, message.Value); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error(ctx).
			Err(err).
			Str("event_type", eventType).
			Str("topic", message.Topic).
			Msg("Event handler failed")
	}
}
