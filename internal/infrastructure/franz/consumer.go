package franz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"kafkaBridge/internal/domain"
	"kafkaBridge/internal/ports"
)

var _ ports.IConsumer = (*Consumer)(nil)

// consumerClient — методы kgo.Client, нужные консьюмеру.
type consumerClient interface {
	PollFetches(ctx context.Context) kgo.Fetches
	CommitRecords(ctx context.Context, rs ...*kgo.Record) error
	Close()
}

var _ consumerClient = (*kgo.Client)(nil)

// Consumer читает топик в составе consumer group и коммитит offset после обработки.
type Consumer struct {
	client consumerClient
	topic  string
	log    *slog.Logger
}

// NewConsumer создаёт консьюмера группы groupID на topic. Автокоммит выключен: коммитим сами после обработчика.
func NewConsumer(cfg *Config, topic, groupID string, log *slog.Logger) (*Consumer, error) {
	if log == nil {
		log = slog.Default()
	}
	opts := append(cfg.baseOpts(log),
		kgo.ConsumerGroup(groupID),
		kgo.ConsumeTopics(topic),
		kgo.DisableAutoCommit(),
	)
	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("franz consumer: %w", err)
	}
	return &Consumer{client: client, topic: topic, log: log}, nil
}

// Run опрашивает брокер и вызывает handle для каждой записи. Ошибки обработчика и ошибки fetch по партициям
// логируются (franz-go сам повторяет запросы); выход по отмене ctx или закрытию клиента.
func (c *Consumer) Run(ctx context.Context, handle ports.MessageHandler) error {
	c.log.Info("franz consumer subscribed", "topic", c.topic)
	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			if errors.Is(err, context.Canceled) {
				return
			}
			c.log.Warn("franz fetch error", "topic", topic, "partition", partition, "error", err)
		})

		var handled []*kgo.Record
		fetches.EachRecord(func(r *kgo.Record) {
			if err := handle(ctx, toDomain(r)); err != nil {
				c.log.Warn("franz handle error, skip", "error", err, "topic", r.Topic, "partition", r.Partition, "offset", r.Offset)
			}
			handled = append(handled, r)
		})
		if len(handled) == 0 {
			continue
		}

		if err := c.client.CommitRecords(ctx, handled...); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("franz consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// Close покидает группу и закрывает клиента.
func (c *Consumer) Close() error {
	c.client.Close()
	return nil
}

func toDomain(r *kgo.Record) domain.Message {
	return domain.Message{
		Topic:     r.Topic,
		Partition: int(r.Partition),
		Offset:    r.Offset,
		Key:       r.Key,
		Value:     r.Value,
	}
}
