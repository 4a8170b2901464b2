package publish

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"satellite-monitor-backend/config"
	"satellite-monitor-backend/internal/model"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return f.err
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafka_Publish(t *testing.T) {
	w := &fakeWriter{}
	k := &Kafka{writer: w}
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	err := k.Publish(context.Background(), []model.Telemetry{
		{ID: 7, SatelliteID: 2, SatelliteName: "ISS (International Space Station)", Altitude: 410, Timestamp: ts},
		{ID: 8, SatelliteID: 3, SatelliteName: "NOAA-19", Altitude: 869, Timestamp: ts},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 2)

	assert.Equal(t, "2", string(w.msgs[0].Key))
	assert.Equal(t, "3", string(w.msgs[1].Key))
	assert.Equal(t, ts, w.msgs[0].Time)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[1].Value, &decoded))
	assert.Equal(t, "NOAA-19", decoded["satellite_name"])
	assert.Equal(t, 869.0, decoded["altitude"])

	require.NoError(t, k.Close())
	assert.True(t, w.closed)
}

func TestKafka_PublishError(t *testing.T) {
	k := &Kafka{writer: &fakeWriter{err: errors.New("leader not available")}}
	err := k.Publish(context.Background(), []model.Telemetry{{SatelliteID: 1}})
	assert.ErrorContains(t, err, "leader not available")
}

func TestKafka_PublishEmpty(t *testing.T) {
	w := &fakeWriter{}
	k := &Kafka{writer: w}
	require.NoError(t, k.Publish(context.Background(), nil))
	assert.Empty(t, w.msgs)
}

func TestNew(t *testing.T) {
	assert.IsType(t, Noop{}, New(config.KafkaConfig{}))

	p := New(config.KafkaConfig{Enabled: true, Brokers: []string{"localhost:9092"}, Topic: "satellite.telemetry"})
	k, ok := p.(*Kafka)
	require.True(t, ok)
	w, ok := k.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "satellite.telemetry", w.Topic)
	assert.True(t, w.Async)
	p.Close()
}
