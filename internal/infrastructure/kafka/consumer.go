package kafka

import (
	"context"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"kafkaBridge/internal/domain"
	"kafkaBridge/internal/ports"
)

var _ ports.IConsumer = (*Consumer)(nil)

// reader — методы kafka.Reader, которыми пользуется консьюмер (подменяется в тестах).
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer — обёртка над kafka.Reader: читает сообщения группы и передаёт их обработчику.
type Consumer struct {
	r     reader
	topic string
	log   *slog.Logger
}

// NewConsumer создаёт консьюмера по конфигу. После использования вызови Close().
func NewConsumer(cfg *Config, topic, groupID string, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer(topic, groupID)
	c.log = log
	return c
}

// Run в цикле читает сообщения, вызывает handle и коммитит offset. Ошибка обработчика логируется,
// сообщение всё равно коммитится (без повторов). Выход по отмене ctx или при ошибке чтения/коммита.
func (c *Consumer) Run(ctx context.Context, handle ports.MessageHandler) error {
	log := c.logger()
	log.Info("kafka consumer subscribed", "topic", c.topic)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Error("kafka consumer stopped", "error", err)
			return err
		}

		if err := handle(ctx, toDomain(msg)); err != nil {
			log.Warn("kafka handle error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}

func (c *Consumer) logger() *slog.Logger {
	if c.log == nil {
		return slog.Default()
	}
	return c.log
}

func toDomain(m kafka.Message) domain.Message {
	return domain.Message{
		Topic:     m.Topic,
		Partition: m.Partition,
		Offset:    m.Offset,
		Key:       m.Key,
		Value:     m.Value,
	}
}
