package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-tracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	conf := config.New()

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, "5000", conf.Http.Port)
	assert.False(t, conf.Kafka.Enabled)
	assert.Equal(t, "legacy-orders", conf.Kafka.Topic)
	assert.Equal(t, 10*time.Minute, conf.Cache.TTL)
	assert.True(t, conf.Postgres.Migrate)
	require.NoError(t, conf.Validate())
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8081")
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_PORT", "6432")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("CACHE_CAPACITY", "10")
	t.Setenv("CACHE_TTL", "30s")

	conf := config.New()

	assert.Equal(t, "production", conf.Env)
	assert.Equal(t, "8081", conf.Http.Port)
	assert.Equal(t, 6432, conf.Postgres.Port)
	assert.True(t, conf.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 10, conf.Cache.Capacity)
	assert.Equal(t, 30*time.Second, conf.Cache.TTL)
	require.NoError(t, conf.Validate())
}

func TestValidate(t *testing.T) {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	testCases := []struct {
		name   string
		modify func(c *config.Config)
	}{
		{name: "unknown env", modify: func(c *config.Config) { c.Env = "dev" }},
		{name: "missing password", modify: func(c *config.Config) { c.Postgres.Password = "" }},
		{name: "bad ssl mode", modify: func(c *config.Config) { c.Postgres.SSLMode = "maybe" }},
		{name: "bad cors origin", modify: func(c *config.Config) { c.Cors.AllowedOrigins = []string{"not a url"} }},
		{name: "zero cache capacity", modify: func(c *config.Config) { c.Cache.Capacity = 0 }},
		{name: "kafka enabled without topic", modify: func(c *config.Config) {
			c.Kafka.Enabled = true
			c.Kafka.Topic = ""
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf := config.New()
			tc.modify(&conf)
			assert.Error(t, conf.Validate())
		})
	}
}
