package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/journey-globe-service/internal/config"
	"github.com/couchcryptid/journey-globe-service/internal/render"
)

// Writer publishes frames to a Kafka topic, keyed by session so each
// session's frames stay ordered within a partition.
// It implements render.Surface.
type Writer struct {
	writer *kafkago.Writer
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewWriter creates an asynchronous Kafka producer for the frame topic.
// Delivery failures are logged from the completion callback.
func NewWriter(cfg *config.Config, clock clockwork.Clock, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaFrameTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		BatchTimeout: cfg.FrameInterval,
		Async:        true,
		Completion: func(messages []kafkago.Message, err error) {
			if err != nil {
				logger.Warn("publish frames failed", "error", err, "count", len(messages))
			}
		},
	}
	return &Writer{writer: w, clock: clock, logger: logger}
}

// Draw serializes a frame and hands it to the producer.
func (w *Writer) Draw(ctx context.Context, sessionID string, f render.Frame) error {
	msg, err := serializeFrame(sessionID, f, w.clock.Now())
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeFrame marshals a frame into a Kafka message.
func serializeFrame(sessionID string, f render.Frame, renderedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize frame: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(sessionID),
		Value: data,
		Time:  renderedAt,
		Headers: []kafkago.Header{
			{Key: "stop_id", Value: []byte(strconv.Itoa(f.CurrentStop.ID))},
			{Key: "language", Value: []byte(f.Language)},
			{Key: "rendered_at", Value: []byte(renderedAt.UTC().Format(time.RFC3339Nano))},
		},
	}, nil
}
