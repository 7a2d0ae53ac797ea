package sender

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"kafkaBridge/internal/domain"
	"kafkaBridge/internal/pkg/metrics"
)

// SendLocation генерирует случайную координату и публикует её в топик. Логируется ровно то значение, что уходит в брокер.
// Ошибка оборачивает domain.ErrSerialization или domain.ErrBrokerUnavailable.
func (u *UseCase) SendLocation(ctx context.Context) (domain.Location, error) {
	loc := domain.NewRandomLocation(u.rnd)
	payload := loc.String()
	u.log.Info("received request to update location", "location", payload)

	err := u.publish(ctx, payload)
	metrics.ObservePublish(u.cfg.Topic, err)
	if err != nil {
		u.log.Error("location publish failed", "topic", u.cfg.Topic, "location", payload, "error", err)
		return loc, err
	}

	u.log.Info("location published", "topic", u.cfg.Topic, "location", payload)
	return loc, nil
}

func (u *UseCase) publish(ctx context.Context, payload string) error {
	if payload == "" || !utf8.ValidString(payload) {
		return fmt.Errorf("%w: payload %q is not UTF-8 text", domain.ErrSerialization, payload)
	}

	if u.cfg.PublishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.PublishTimeout)
		defer cancel()
	}

	if err := u.pub.Publish(ctx, u.cfg.Topic, []byte(payload)); err != nil {
		if errors.Is(err, domain.ErrSerialization) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrBrokerUnavailable, err)
	}
	return nil
}
