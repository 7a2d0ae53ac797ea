package franz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"kafkaBridge/internal/ports"
)

var (
	_ ports.IPublisher = (*Producer)(nil)
	_ ports.IPinger    = (*Producer)(nil)
)

// producerClient — методы kgo.Client, нужные продюсеру.
type producerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Ping(ctx context.Context) error
	Close()
}

var _ producerClient = (*kgo.Client)(nil)

// Producer публикует сообщения через franz-go и ждёт подтверждения брокера (ProduceSync).
type Producer struct {
	client producerClient
}

// NewProducer создаёт продюсера. Соединение устанавливается лениво, при первом запросе.
func NewProducer(cfg *Config, log *slog.Logger) (*Producer, error) {
	opts := cfg.baseOpts(log)
	if cfg.AutoCreateTopics {
		opts = append(opts, kgo.AllowAutoTopicCreation())
	}
	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("franz producer: %w", err)
	}
	return &Producer{client: client}, nil
}

// Publish отправляет одно сообщение в topic.
func (p *Producer) Publish(ctx context.Context, topic string, payload []byte) error {
	return p.client.ProduceSync(ctx, &kgo.Record{Topic: topic, Value: payload}).FirstErr()
}

// Ping проверяет соединение с кластером.
func (p *Producer) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// Close сбрасывает буфер и закрывает клиента.
func (p *Producer) Close() error {
	p.client.Close()
	return nil
}
