package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name    string
		Version string
	}
	Server struct {
		Host            string
		Port            string
		ShutdownTimeout time.Duration
		CORSOrigins     []string
	}
	Redis struct {
		URL     string
		Channel string
	}
	Log struct {
		Level string
	}
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config

	// Set defaults
	v.SetDefault("app.name", "rag-gateway")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("redis.url", "")
	v.SetDefault("redis.channel", "gateway:feedback")
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config.App.Name = v.GetString("app.name")
	config.App.Version = v.GetString("app.version")
	config.Server.Host = v.GetString("server.host")
	config.Server.Port = v.GetString("server.port")
	config.Server.ShutdownTimeout = v.GetDuration("server.shutdown_timeout")
	config.Server.CORSOrigins = v.GetStringSlice("server.cors_origins")
	config.Redis.URL = v.GetString("redis.url")
	config.Redis.Channel = v.GetString("redis.channel")
	config.Log.Level = v.GetString("log.level")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.Redis.URL != "" && c.Redis.Channel == "" {
		return fmt.Errorf("REDIS_CHANNEL is required when REDIS_URL is set")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// FeedbackPublishingEnabled reports whether feedback is also broadcast over Redis.
func (c *Config) FeedbackPublishingEnabled() bool {
	return c.Redis.URL != ""
}
