package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/labflow/reagent-inventory/internal/reagent/domain"
	"github.com/labflow/reagent-inventory/pkg/logger"
)

// Publisher wraps a Kafka sync producer for inventory events.
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishReagentSaved publishes a reagent saved event with tracing.
func (p *Publisher) PublishReagentSaved(ctx context.Context, reagent *domain.Reagent, created bool) error {
	event := ReagentSavedEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeReagentSaved,
		ReagentID: reagent.ID,
		Name:      reagent.Name,
		Brand:     reagent.Brand,
		Location:  reagent.Location,
		Remaining: reagent.Remaining,
		Status:    reagent.Status,
		Created:   created,
		Timestamp: time.Now(),
	}

	return p.publish(ctx, TopicReagentSaved, event.EventType, event.EventID,
		fmt.Sprintf("reagent_%d", reagent.ID), event,
		attribute.Int64("reagent.id", int64(reagent.ID)),
		attribute.String("reagent.status", reagent.Status),
		attribute.Bool("reagent.created", created),
	)
}

// PublishReagentLow publishes a low stock event with tracing.
func (p *Publisher) PublishReagentLow(ctx context.Context, reagent *domain.Reagent) error {
	event := ReagentLowEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeReagentLow,
		ReagentID: reagent.ID,
		Name:      reagent.Name,
		Location:  reagent.Location,
		Remaining: reagent.Remaining,
		Timestamp: time.Now(),
	}

	return p.publish(ctx, TopicReagentLow, event.EventType, event.EventID,
		fmt.Sprintf("reagent_%d", reagent.ID), event,
		attribute.Int64("reagent.id", int64(reagent.ID)),
		attribute.Int("reagent.remaining", reagent.Remaining),
	)
}

func (p *Publisher) publish(ctx context.Context, topic, eventType, eventID, key string, event interface{}, attrs ...attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(append([]attribute.KeyValue{
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
		}, attrs...)...),
	)
	defer span.End()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Propagate the trace context through Kafka headers.
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(v),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Str("event_id", eventID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to publish event: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("messaging.kafka.partition", int64(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)

	logger.Logger.Debug().
		Str("topic", topic).
		Str("event_id", eventID).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close closes the underlying producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
