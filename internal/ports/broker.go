package ports

//go:generate mockgen -source=broker.go -destination=../mocks/broker_mock.go -package=mocks

import (
	"context"

	"kafkaBridge/internal/domain"
)

// IPublisher — клиент публикации в брокер. nil-ошибка означает, что брокер подтвердил приём.
type IPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// MessageHandler — обработчик одного доставленного сообщения. Ошибка логируется консьюмером, сообщение пропускается.
type MessageHandler func(ctx context.Context, msg domain.Message) error

// IConsumer — подписка на топик в рамках consumer group. Run блокируется до отмены ctx или фатальной ошибки чтения.
type IConsumer interface {
	Run(ctx context.Context, handle MessageHandler) error
}

// IPinger — проверка доступности брокера (readiness, gRPC health).
type IPinger interface {
	Ping(ctx context.Context) error
}
