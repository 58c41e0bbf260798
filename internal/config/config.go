// Package config loads server configuration from the environment
package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the server needs to start
type Config struct {
	HTTP  HTTPConfig  `env-prefix:"HTTP_"`
	Redis RedisConfig `env-prefix:"REDIS_"`
}

// HTTPConfig configures the HTTP listener
type HTTPConfig struct {
	Port            int           `env:"PORT" env-default:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" env-default:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" env-default:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"30s"`
}

// RedisConfig configures the pack store connection
type RedisConfig struct {
	Endpoint     string `env:"ENDPOINT" env-default:"localhost:6379"`
	PoolSize     int    `env:"POOL_SIZE" env-default:"10"`
	MinIdleConns int    `env:"MIN_IDLE_CONNS" env-default:"2"`
	UseTLS       bool   `env:"USE_TLS" env-default:"false"`
}

// Load reads configuration from the environment, applying defaults
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
