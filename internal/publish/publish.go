// Package publish forwards generated telemetry samples to a message broker.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"satellite-monitor-backend/config"
	"satellite-monitor-backend/internal/model"
)

// Publisher sends samples downstream and releases its resources on Close.
type Publisher interface {
	Publish(ctx context.Context, samples []model.Telemetry) error
	Close() error
}

// New returns a Kafka publisher when cfg enables it, otherwise a no-op.
func New(cfg config.KafkaConfig) Publisher {
	if !cfg.Enabled {
		return Noop{}
	}
	return NewKafka(cfg.Brokers, cfg.Topic)
}

// Noop discards every sample.
type Noop struct{}

func (Noop) Publish(context.Context, []model.Telemetry) error { return nil }
func (Noop) Close() error                                     { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka writes samples as JSON messages keyed by satellite id.
type Kafka struct {
	writer messageWriter
}

// NewKafka creates an asynchronous batching writer for topic.
func NewKafka(brokers []string, topic string) *Kafka {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
		RequiredAcks: kafka.RequireOne,
	}
	return &Kafka{writer: w}
}

// Publish encodes and enqueues samples. With the async writer delivery
// failures are not reported here.
func (k *Kafka) Publish(ctx context.Context, samples []model.Telemetry) error {
	if len(samples) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(samples))
	for _, s := range samples {
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("encode sample for satellite %d: %w", s.SatelliteID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(strconv.FormatInt(s.SatelliteID, 10)),
			Value: data,
			Time:  s.Timestamp,
		})
	}
	if err := k.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d messages: %w", len(msgs), err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (k *Kafka) Close() error {
	return k.writer.Close()
}
