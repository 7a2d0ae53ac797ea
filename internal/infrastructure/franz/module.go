package franz

import (
	"log/slog"
	"strings"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Config — настройки драйвера franz (twmb/franz-go). Переменные: BRIDGE_FRANZ_BROKERS, BRIDGE_FRANZ_REQUEST_TIMEOUT, ...
type Config struct {
	Brokers          string        `envconfig:"BROKERS" default:"localhost:9092"`
	AutoCreateTopics bool          `envconfig:"AUTO_CREATE_TOPICS" default:"true"`
	RequestTimeout   time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"warn"`
}

func (c *Config) seedBrokers() []string {
	var out []string
	for _, p := range strings.Split(c.Brokers, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"localhost:9092"}
	}
	return out
}

// baseOpts — общие опции клиента для продюсера и консьюмера.
func (c *Config) baseOpts(log *slog.Logger) []kgo.Opt {
	opts := []kgo.Opt{
		kgo.SeedBrokers(c.seedBrokers()...),
		kgo.WithLogger(newLogger(log, c.LogLevel)),
	}
	if c.RequestTimeout > 0 {
		opts = append(opts, kgo.RequestTimeoutOverhead(c.RequestTimeout))
	}
	return opts
}
