package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var ErrDisabled = errors.New("kafka disabled")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes terminal order events keyed by order id, so all events of
// one order land in the same partition.
type Publisher struct {
	writer messageWriter
	logger *zap.Logger
}

func Brokers(conf *config.Kafka) []string {
	brokers := []string{}
	for _, b := range strings.Split(conf.Brokers, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func NewPublisher(conf *config.Kafka, log *zap.Logger) (*Publisher, error) {
	brokers := Brokers(conf)
	if len(brokers) == 0 {
		return nil, ErrDisabled
	}
	if conf.Topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        conf.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: log,
	}, nil
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, event *domain.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID)},
			{Key: "state", Value: []byte(event.State)},
		},
	})
	if err != nil {
		return fmt.Errorf("error writing order event: %w", err)
	}
	p.logger.Debug("Order event published", zap.String("order", event.OrderID), zap.String("event", event.EventID))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// LogPublisher is used when no broker is configured: events only reach the log.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: log}
}

func (p *LogPublisher) PublishOrderEvent(ctx context.Context, event *domain.OrderEvent) error {
	p.logger.Info("Order event",
		zap.String("event", event.EventID),
		zap.String("order", event.OrderID),
		zap.String("state", string(event.State)),
		zap.String("failure", string(event.Failure)),
		zap.Bool("charged", event.Charged))
	return nil
}
