package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"kafkaBridge/internal/domain"
)

// ISenderUseCase — отправляющая сторона моста: сгенерировать координату и опубликовать её.
type ISenderUseCase interface {
	SendLocation(ctx context.Context) (domain.Location, error)
}

// IReceiverUseCase — принимающая сторона: сообщения из брокера и из POST /location.
type IReceiverUseCase interface {
	HandleMessage(ctx context.Context, msg domain.Message) error
	UpdateLocation(ctx context.Context, raw string) error
}
