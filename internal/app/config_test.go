package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kafkaBridge/internal/domain"
)

func TestLoadCfg_Defaults(t *testing.T) {
	t.Setenv("BRIDGE_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := LoadCfg()
	require.NoError(t, err)

	assert.Equal(t, RoleAll, cfg.Role)
	assert.Equal(t, DriverKafka, cfg.Broker.Driver)
	assert.Equal(t, domain.DefaultTopic, cfg.Broker.Topic)
	assert.Equal(t, domain.DefaultGroupID, cfg.Broker.GroupID)
	assert.Equal(t, 5*time.Second, cfg.Broker.PublishTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "localhost:9092", cfg.Kafka.Brokers)
	assert.True(t, cfg.Grpc.Enabled)
}

func TestLoadCfg_FromEnvAndDotenv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "bridge.env")
	require.NoError(t, writeFile(envFile, "BRIDGE_BROKER_DRIVER=redis\nBRIDGE_REDIS_PORT=6380\n"))

	t.Setenv("BRIDGE_ENV_FILE", envFile)
	t.Setenv("BRIDGE_ROLE", "receiver")
	t.Setenv("BRIDGE_BROKER_TOPIC", "custom-topic")

	cfg, err := LoadCfg()
	require.NoError(t, err)

	assert.Equal(t, RoleReceiver, cfg.Role)
	assert.Equal(t, DriverRedis, cfg.Broker.Driver)
	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, "custom-topic", cfg.Broker.Topic)
}

func TestLoadCfg_Invalid(t *testing.T) {
	t.Setenv("BRIDGE_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("BRIDGE_BROKER_DRIVER", "rabbit")

	_, err := LoadCfg()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rabbit")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "по умолчанию", mutate: func(*Config) {}},
		{name: "неизвестная роль", mutate: func(c *Config) { c.Role = "both" }, wantErr: "unknown role"},
		{name: "неизвестный драйвер", mutate: func(c *Config) { c.Broker.Driver = "nats" }, wantErr: "unknown broker driver"},
		{name: "пустой топик", mutate: func(c *Config) { c.Broker.Topic = "" }, wantErr: "topic is empty"},
		{name: "пустая группа", mutate: func(c *Config) { c.Broker.GroupID = "" }, wantErr: "group id is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Roles(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.sends())
	assert.True(t, cfg.receives())

	cfg.Role = RoleSender
	assert.True(t, cfg.sends())
	assert.False(t, cfg.receives())

	cfg.Role = RoleReceiver
	assert.False(t, cfg.sends())
	assert.True(t, cfg.receives())
}
