package sender

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"kafkaBridge/internal/ports"
)

// Config — куда и с каким таймаутом публикуем координаты.
type Config struct {
	Topic          string
	PublishTimeout time.Duration
}

// UseCase — отправляющая сторона моста.
type UseCase struct {
	pub ports.IPublisher
	cfg Config
	rnd func() float64
	log *slog.Logger
}

// New создаёт юзкейс отправителя. Источник случайности — потокобезопасный генератор math/rand/v2.
func New(pub ports.IPublisher, cfg Config, log *slog.Logger) *UseCase {
	return &UseCase{pub: pub, cfg: cfg, rnd: rand.Float64, log: log}
}
