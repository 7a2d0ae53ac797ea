package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "kafkaBridge/internal/api/grpc"
	"kafkaBridge/internal/api/http"
	"kafkaBridge/internal/domain"
	"kafkaBridge/internal/infrastructure/franz"
	"kafkaBridge/internal/infrastructure/kafka"
	"kafkaBridge/internal/infrastructure/redis"
	"kafkaBridge/internal/pkg/logger"
)

const AppName = "BRIDGE"

// Роли процесса: какую половину моста он поднимает.
const (
	RoleAll      = "all"
	RoleSender   = "sender"
	RoleReceiver = "receiver"
)

// Драйверы брокера.
const (
	DriverKafka  = "kafka"
	DriverFranz  = "franz"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// BrokerConfig — выбор драйвера и фиксированные топик/группа. Переменные: BRIDGE_BROKER_DRIVER, BRIDGE_BROKER_TOPIC, ...
type BrokerConfig struct {
	Driver         string        `envconfig:"DRIVER" default:"kafka"`
	Topic          string        `envconfig:"TOPIC" default:"location-update-topic"`
	GroupID        string        `envconfig:"GROUP_ID" default:"location-group"`
	PublishTimeout time.Duration `envconfig:"PUBLISH_TIMEOUT" default:"5s"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом BRIDGE.
type Config struct {
	Role   string            `envconfig:"ROLE" default:"all"`
	Log    logger.Config     `envconfig:"LOG"`
	Server http.ServerConfig `envconfig:"SERVER"`
	Grpc   apigrpc.Config    `envconfig:"GRPC"`
	Broker BrokerConfig      `envconfig:"BROKER"`
	Kafka  kafka.Config      `envconfig:"KAFKA"`
	Franz  franz.Config      `envconfig:"FRANZ"`
	Redis  redis.Config      `envconfig:"REDIS"`
}

// Validate проверяет роль, драйвер и непустые топик/группу.
func (c Config) Validate() error {
	var errs []error
	switch c.Role {
	case RoleAll, RoleSender, RoleReceiver:
	default:
		errs = append(errs, fmt.Errorf("unknown role %q", c.Role))
	}
	switch c.Broker.Driver {
	case DriverKafka, DriverFranz, DriverRedis, DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown broker driver %q", c.Broker.Driver))
	}
	if c.Broker.Topic == "" {
		errs = append(errs, errors.New("broker topic is empty"))
	}
	if c.Broker.GroupID == "" {
		errs = append(errs, errors.New("broker group id is empty"))
	}
	return errors.Join(errs...)
}

func (c Config) sends() bool    { return c.Role == RoleAll || c.Role == RoleSender }
func (c Config) receives() bool { return c.Role == RoleAll || c.Role == RoleReceiver }

// DefaultConfig — конфиг со значениями по умолчанию и встроенным брокером (для тестов и локального запуска).
func DefaultConfig() Config {
	return Config{
		Role: RoleAll,
		Log:  logger.Config{Level: "info"},
		Server: http.ServerConfig{
			Host:            "127.0.0.1",
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Broker: BrokerConfig{
			Driver:         DriverMemory,
			Topic:          domain.DefaultTopic,
			GroupID:        domain.DefaultGroupID,
			PublishTimeout: 5 * time.Second,
		},
	}
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv, путь из BRIDGE_ENV_FILE), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	envFile := os.Getenv(AppName + "_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		slog.Debug("config: .env not loaded, using environment", "file", envFile, "error", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
