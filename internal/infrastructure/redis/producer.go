package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"kafkaBridge/internal/ports"
)

var _ ports.IPublisher = (*Producer)(nil)

// payloadField — поле записи стрима, в котором лежит сообщение.
const payloadField = "payload"

// Producer публикует сообщения через XADD в стрим с именем топика.
type Producer struct {
	cli    redis.Cmdable
	maxLen int64
}

// Publish добавляет запись в стрим topic. Подтверждение — ID записи от Redis.
func (p *Producer) Publish(ctx context.Context, topic string, payload []byte) error {
	return p.cli.XAdd(ctx, &redis.XAddArgs{
		Stream: topic,
		MaxLen: p.maxLen,
		Approx: p.maxLen > 0,
		Values: map[string]any{payloadField: payload},
	}).Err()
}
