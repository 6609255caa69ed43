// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// AppConfig holds everything the server needs at startup.
type AppConfig struct {
	Addr          string `mapstructure:"addr"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	StatsDBPath   string `mapstructure:"stats_db_path"`
	LogLevel      string `mapstructure:"log_level"`

	// DealSeed forces a deterministic deal when non-zero; used for
	// replaying games.
	DealSeed int64 `mapstructure:"deal_seed"`
}

// Load reads configuration from environment variables (ONENIGHT_ADDR,
// ONENIGHT_REDIS_ADDR, ...) with sane defaults for local development.
func Load() (*AppConfig, error) {
	v := viper.New()

	v.SetEnvPrefix("onenight")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("stats_db_path", "onenight.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("deal_seed", 0)

	// AutomaticEnv alone does not surface env vars through Unmarshal, so
	// bind each key explicitly.
	for _, key := range []string{"addr", "redis_addr", "redis_password", "stats_db_path", "log_level", "deal_seed"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
