package receiver

import (
	"context"
	"strings"

	"kafkaBridge/internal/domain"
	"kafkaBridge/internal/pkg/metrics"
)

// HandleMessage — обработчик, который регистрируется на подписке консьюмера.
// Корректная координата даёт ровно одну запись в логе с исходной строкой; некорректная возвращается как ошибка ErrMalformedLocation.
func (u *UseCase) HandleMessage(ctx context.Context, msg domain.Message) error {
	raw := string(msg.Value)
	loc, err := domain.ParseLocation(raw)
	metrics.ObserveConsume(msg.Topic, err)
	if err != nil {
		return err
	}

	u.log.InfoContext(ctx, "message listener received location",
		"location", raw,
		"latitude", loc.Latitude,
		"longitude", loc.Longitude,
		"topic", msg.Topic,
		"partition", msg.Partition,
		"offset", msg.Offset,
	)
	return nil
}

// UpdateLocation принимает координату из POST /location. Пустое тело — no-op.
func (u *UseCase) UpdateLocation(ctx context.Context, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	loc, err := domain.ParseLocation(raw)
	if err != nil {
		return err
	}

	u.log.InfoContext(ctx, "receiver endpoint received location",
		"location", raw,
		"latitude", loc.Latitude,
		"longitude", loc.Longitude,
	)
	return nil
}
