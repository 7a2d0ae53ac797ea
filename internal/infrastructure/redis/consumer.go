package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"kafkaBridge/internal/domain"
	"kafkaBridge/internal/ports"
)

var _ ports.IConsumer = (*Consumer)(nil)

const readCount = 10

// Consumer читает стрим в составе consumer group (XREADGROUP) и подтверждает записи через XACK.
type Consumer struct {
	cli      redis.Cmdable
	stream   string
	group    string
	consumer string
	block    time.Duration
	log      *slog.Logger
}

// Run создаёт группу (если её нет) и читает новые записи до отмены ctx. Ошибка обработчика логируется, запись подтверждается.
func (c *Consumer) Run(ctx context.Context, handle ports.MessageHandler) error {
	log := c.log
	if log == nil {
		log = slog.Default()
	}

	if err := c.cli.XGroupCreateMkStream(ctx, c.stream, c.group, "$").Err(); err != nil && !isBusyGroup(err) {
		return fmt.Errorf("redis group create: %w", err)
	}
	log.Info("redis consumer subscribed", "stream", c.stream, "group", c.group, "consumer", c.consumer)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		streams, err := c.cli.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.group,
			Consumer: c.consumer,
			Streams:  []string{c.stream, ">"},
			Count:    readCount,
			Block:    c.block,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Error("redis consumer stopped", "error", err)
			return err
		}

		for _, s := range streams {
			for _, m := range s.Messages {
				msg, err := toDomain(s.Stream, m)
				if err == nil {
					err = handle(ctx, msg)
				}
				if err != nil {
					log.Warn("redis handle error, skip", "error", err, "stream", s.Stream, "id", m.ID)
				}
				if err := c.cli.XAck(ctx, s.Stream, c.group, m.ID).Err(); err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					log.Error("redis consumer stopped (ack)", "error", err)
					return err
				}
			}
		}
	}
}

func isBusyGroup(err error) bool {
	return strings.HasPrefix(err.Error(), "BUSYGROUP")
}

// toDomain достаёт payload из записи стрима. Запись без строкового поля payload — ErrMalformedLocation.
func toDomain(stream string, m redis.XMessage) (domain.Message, error) {
	v, ok := m.Values[payloadField].(string)
	if !ok {
		return domain.Message{}, fmt.Errorf("%w: stream entry %s has no %q field", domain.ErrMalformedLocation, m.ID, payloadField)
	}
	return domain.Message{
		Topic: stream,
		Key:   []byte(m.ID),
		Value: []byte(v),
	}, nil
}
