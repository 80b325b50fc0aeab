// Package config loads gateway configuration from file and
// environment. Env var overrides use the prefix ROOST_.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds gateway configuration.
type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Log      LogConfig
	Metrics  MetricsConfig
	Manifest ManifestConfig
}

// ServerConfig holds webhook listener settings.
type ServerConfig struct {
	Addr string
}

// RedisConfig holds the pending-component store settings. An empty
// Addr selects the in-memory store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// ManifestConfig points at the YAML command manifest.
type ManifestConfig struct {
	Path string
}

// Load reads configuration, optionally from an explicit file path.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", "roost")
	v.SetDefault("manifest.path", "")

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "roost"))
		v.SetConfigName("roost")
	}

	v.SetEnvPrefix("ROOST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		if path != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
