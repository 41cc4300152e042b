package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, Brokers(&config.Kafka{Brokers: " a:9092, ,b:9092 "}))
	assert.Empty(t, Brokers(&config.Kafka{}))
}

func TestNewPublisher_Disabled(t *testing.T) {
	_, err := NewPublisher(&config.Kafka{}, zap.NewNop())
	assert.ErrorIs(t, err, ErrDisabled)

	_, err = NewPublisher(&config.Kafka{Brokers: "a:9092"}, zap.NewNop())
	assert.Error(t, err)
}

func TestPublisher_PublishOrderEvent(t *testing.T) {
	w := &recordingWriter{}
	p := &Publisher{writer: w, logger: zap.NewNop()}

	event := &domain.OrderEvent{
		EventID:    "e1",
		OrderID:    "O1",
		Requester:  "42",
		ItemID:     "x",
		State:      domain.OrderStateFailed,
		Source:     domain.SourceRedirect,
		Failure:    domain.FailureFetch,
		Charged:    true,
		OccurredAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, p.PublishOrderEvent(context.Background(), event))

	assert.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("O1"), w.msgs[0].Key)

	var decoded domain.OrderEvent
	assert.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, *event, decoded)

	w.err = errors.New("broker down")
	assert.Error(t, p.PublishOrderEvent(context.Background(), event))
}
