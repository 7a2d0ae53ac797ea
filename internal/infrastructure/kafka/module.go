package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Config — настройки драйвера kafka (segmentio/kafka-go). Переменные: BRIDGE_KAFKA_BROKERS, BRIDGE_KAFKA_BATCH_TIMEOUT, ...
type Config struct {
	Brokers          string        `envconfig:"BROKERS" default:"localhost:9092"` // через запятую, если несколько
	BatchTimeout     time.Duration `envconfig:"BATCH_TIMEOUT" default:"10ms"`
	AutoCreateTopics bool          `envconfig:"AUTO_CREATE_TOPICS" default:"true"`
	DialTimeout      time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
}

// brokersSlice возвращает список брокеров из строки (через запятую).
func (c *Config) brokersSlice() []string {
	if c == nil || c.Brokers == "" {
		return []string{"localhost:9092"}
	}
	parts := strings.Split(c.Brokers, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"localhost:9092"}
	}
	return out
}

// Client — конфиг и фабрики продюсера/консьюмера. Подключение к брокеру при создании Writer/Reader.
type Client struct {
	cfg *Config
}

// New создаёт клиент по конфигу. Само подключение к Kafka — при первой записи или чтении.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Client{cfg: cfg}
}

// Producer создаёт продюсера. Топик не фиксируется: он задаётся на каждое сообщение. После использования вызови Close().
func (c *Client) Producer() *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(c.cfg.brokersSlice()...),
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           c.cfg.BatchTimeout,
		AllowAutoTopicCreation: c.cfg.AutoCreateTopics,
	}
	return &Producer{w: w}
}

// Consumer создаёт консьюмера для чтения топика в составе consumer group. После использования вызови Close().
func (c *Client) Consumer(topic, groupID string) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: c.cfg.brokersSlice(),
		Topic:   topic,
		GroupID: groupID,
	})
	return &Consumer{r: r, topic: topic}
}

// Ping проверяет, что хотя бы один брокер принимает соединение (для readiness).
func (c *Client) Ping(ctx context.Context) error {
	dialer := &kafka.Dialer{Timeout: c.cfg.DialTimeout}
	var errs []error
	for _, addr := range c.cfg.brokersSlice() {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", addr, err))
			continue
		}
		_ = conn.Close()
		return nil
	}
	return fmt.Errorf("kafka ping: %w", errors.Join(errs...))
}
