package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"kafkaBridge/internal/infrastructure/franz"
	"kafkaBridge/internal/infrastructure/kafka"
	"kafkaBridge/internal/infrastructure/memory"
	"kafkaBridge/internal/infrastructure/redis"
	"kafkaBridge/internal/ports"
)

// broker — всё, что приложению нужно от выбранного драйвера.
type broker struct {
	publisher   ports.IPublisher
	pinger      ports.IPinger
	newConsumer func() (ports.IConsumer, error)
	closers     []io.Closer
}

// Close закрывает ресурсы драйвера в обратном порядке.
func (b *broker) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}

// consumer создаёт подписку и регистрирует её на закрытие вместе с брокером.
func (b *broker) consumer() (ports.IConsumer, error) {
	c, err := b.newConsumer()
	if err != nil {
		return nil, err
	}
	if cl, ok := c.(io.Closer); ok {
		b.closers = append(b.closers, cl)
	}
	return c, nil
}

// openBroker собирает публикатора, пинг и фабрику консьюмера для драйвера из конфига.
func openBroker(ctx context.Context, cfg Config, log *slog.Logger) (*broker, error) {
	topic, group := cfg.Broker.Topic, cfg.Broker.GroupID

	switch cfg.Broker.Driver {
	case DriverKafka:
		client := kafka.New(&cfg.Kafka)
		producer := client.Producer()
		return &broker{
			publisher: producer,
			pinger:    client,
			newConsumer: func() (ports.IConsumer, error) {
				return kafka.NewConsumer(&cfg.Kafka, topic, group, log), nil
			},
			closers: []io.Closer{producer},
		}, nil

	case DriverFranz:
		producer, err := franz.NewProducer(&cfg.Franz, log)
		if err != nil {
			return nil, err
		}
		return &broker{
			publisher: producer,
			pinger:    producer,
			newConsumer: func() (ports.IConsumer, error) {
				return franz.NewConsumer(&cfg.Franz, topic, group, log)
			},
			closers: []io.Closer{producer},
		}, nil

	case DriverRedis:
		client, err := redis.New(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &broker{
			publisher: client.Producer(),
			pinger:    client,
			newConsumer: func() (ports.IConsumer, error) {
				return client.Consumer(topic, group, log), nil
			},
			closers: []io.Closer{client},
		}, nil

	case DriverMemory:
		b := memory.New()
		return &broker{
			publisher: b,
			pinger:    b,
			newConsumer: func() (ports.IConsumer, error) {
				return b.Consumer(topic, group, log), nil
			},
			closers: []io.Closer{b},
		}, nil
	}
	return nil, fmt.Errorf("unknown broker driver %q", cfg.Broker.Driver)
}
