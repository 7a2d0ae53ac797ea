package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config — настройки драйвера redis (streams + consumer groups). Переменные: BRIDGE_REDIS_HOST, BRIDGE_REDIS_PORT, ...
type Config struct {
	Host     string        `envconfig:"HOST" default:"localhost"`
	Port     string        `envconfig:"PORT" default:"6379"`
	Password string        `envconfig:"PASSWORD" default:""`
	DB       int           `envconfig:"DB" default:"0"`
	MaxLen   int64         `envconfig:"MAX_LEN" default:"10000"` // приблизительный предел длины стрима, 0 — без ограничения
	Block    time.Duration `envconfig:"BLOCK" default:"2s"`      // сколько XREADGROUP ждёт новых записей
	Consumer string        `envconfig:"CONSUMER" default:"bridge-1"`
}

// Addr возвращает адрес "host:port".
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Client — обёртка над redis.Client.
type Client struct {
	*redis.Client
	cfg Config
}

// New подключается к Redis по конфигу и проверяет пингом.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	cli := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Client{Client: cli, cfg: *cfg}, nil
}

// Close закрывает соединение.
func (c *Client) Close() error {
	return c.Client.Close()
}

// Ping проверяет соединение (для readiness).
func (c *Client) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// Producer возвращает публикатора в стримы.
func (c *Client) Producer() *Producer {
	return &Producer{cli: c.Client, maxLen: c.cfg.MaxLen}
}

// Consumer возвращает консьюмера стрима topic в группе groupID.
func (c *Client) Consumer(topic, groupID string, log *slog.Logger) *Consumer {
	return &Consumer{
		cli:      c.Client,
		stream:   topic,
		group:    groupID,
		consumer: c.cfg.Consumer,
		block:    c.cfg.Block,
		log:      log,
	}
}
