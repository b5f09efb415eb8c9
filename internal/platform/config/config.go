// Package config loads service settings from defaults, an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"trustedform/internal/trustedform/endpoints"
)

// EnvPrefix namespaces environment overrides, e.g. TF_SERVER_ADDR.
const EnvPrefix = "TF"

type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	TrustedForm TrustedFormConfig `mapstructure:"trustedform"`
	Account     AccountConfig     `mapstructure:"account"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Postgres    PostgresConfig    `mapstructure:"postgres"`
	Kafka       KafkaConfig       `mapstructure:"kafka"`
	Batch       BatchConfig       `mapstructure:"batch"`
}

// ServerConfig captures HTTP server level configuration.
type ServerConfig struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TrustedFormConfig holds adapter settings shared by every module.
type TrustedFormConfig struct {
	DataServiceToken string        `mapstructure:"data_service_token"`
	Timeout          time.Duration `mapstructure:"timeout"`
	Breaker          BreakerConfig `mapstructure:"breaker"`
}

// BreakerConfig tunes the per-module circuit breaker. A zero failure
// threshold disables it.
type BreakerConfig struct {
	FailureThreshold int           `mapstructure:"failure_threshold"`
	SuccessThreshold int           `mapstructure:"success_threshold"`
	Cooldown         time.Duration `mapstructure:"cooldown"`
}

type AccountConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// RedisConfig enables the shared account cache when URL is set.
type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// PostgresConfig enables the flow store when URL is set.
type PostgresConfig struct {
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
	Migrate  bool   `mapstructure:"migrate"`
}

// KafkaConfig enables the audit stream when Brokers is non-empty.
type KafkaConfig struct {
	Brokers           []string `mapstructure:"brokers"`
	Topic             string   `mapstructure:"topic"`
	Partitions        int32    `mapstructure:"partitions"`
	ReplicationFactor int16    `mapstructure:"replication_factor"`
	Buffer            int      `mapstructure:"buffer"`
	// DrainTimeout bounds delivery of queued events and the final flush on
	// shutdown.
	DrainTimeout time.Duration `mapstructure:"drain_timeout"`
}

type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// Load reads configuration. An empty path searches the working directory and
// /etc/trustedform for trustedform.yaml; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", string(endpoints.Development))
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_header_timeout", "5s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("trustedform.data_service_token", "")
	v.SetDefault("trustedform.timeout", "10s")
	v.SetDefault("trustedform.breaker.failure_threshold", 5)
	v.SetDefault("trustedform.breaker.success_threshold", 2)
	v.SetDefault("trustedform.breaker.cooldown", "30s")
	v.SetDefault("account.cache_ttl", "5m")
	v.SetDefault("account.timeout", "5s")
	v.SetDefault("redis.url", "")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.dial_timeout", "5s")
	v.SetDefault("redis.read_timeout", "3s")
	v.SetDefault("redis.write_timeout", "3s")
	v.SetDefault("postgres.url", "")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.migrate", true)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "trustedform.audit")
	v.SetDefault("kafka.partitions", 3)
	v.SetDefault("kafka.replication_factor", 1)
	v.SetDefault("kafka.buffer", 1024)
	v.SetDefault("kafka.drain_timeout", "5s")
	v.SetDefault("batch.concurrency", 8)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("trustedform")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/trustedform")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Names the integration platform already sets.
	if err := v.BindEnv("environment", EnvPrefix+"_ENVIRONMENT", "NODE_ENV"); err != nil {
		return nil, fmt.Errorf("bind environment: %w", err)
	}
	if err := v.BindEnv("trustedform.data_service_token", EnvPrefix+"_TRUSTEDFORM_DATA_SERVICE_TOKEN", "TRUSTEDFORM_DATA_SERVICE_TOKEN"); err != nil {
		return nil, fmt.Errorf("bind data service token: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Env resolves the configured environment.
func (c *Config) Env() endpoints.Environment {
	return endpoints.ParseEnvironment(c.Environment)
}

// Endpoints returns the hosts of the configured environment.
func (c *Config) Endpoints() endpoints.Endpoints {
	return endpoints.For(c.Env())
}
