package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"

	"kafkaBridge/internal/ports"
)

var _ ports.IPublisher = (*Producer)(nil)

// Producer — обёртка над kafka.Writer для отправки сообщений.
type Producer struct {
	w *kafka.Writer
}

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

// Publish отправляет одно сообщение в topic и ждёт подтверждения от лидера партиции.
func (p *Producer) Publish(ctx context.Context, topic string, payload []byte) error {
	return p.w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: payload,
	})
}

// Close закрывает продюсера.
func (p *Producer) Close() error {
	return p.w.Close()
}
