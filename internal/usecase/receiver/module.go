package receiver

import "log/slog"

// UseCase — принимающая сторона моста. Лог — единственный сток для полученных координат.
type UseCase struct {
	log *slog.Logger
}

// New создаёт юзкейс получателя.
func New(log *slog.Logger) *UseCase {
	return &UseCase{log: log}
}
