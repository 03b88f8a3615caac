package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Session  SessionConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

// UpstreamConfig points at the hospital records backend the kiosk reads from.
type UpstreamConfig struct {
	BaseURL  string
	Timeout  time.Duration
	Username string
	Password string
}

type CacheConfig struct {
	ResponseTTL   time.Duration
	DoctorListTTL time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("UPSTREAM_TIMEOUT", "30s")
	viper.SetDefault("CACHE_RESPONSE_TTL", "30s")
	viper.SetDefault("CACHE_DOCTOR_LIST_TTL", "24h")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("SESSION_TTL", "12h")

	viper.AutomaticEnv()

	// The kiosk image usually runs on plain environment variables; .env is a dev convenience.
	if _, err := os.Stat(".env"); err == nil {
		viper.SetConfigFile(".env")
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		Upstream: UpstreamConfig{
			BaseURL:  viper.GetString("UPSTREAM_BASE_URL"),
			Timeout:  durationOr("UPSTREAM_TIMEOUT", 30*time.Second),
			Username: viper.GetString("UPSTREAM_USERNAME"),
			Password: viper.GetString("UPSTREAM_PASSWORD"),
		},
		Cache: CacheConfig{
			ResponseTTL:   durationOr("CACHE_RESPONSE_TTL", 30*time.Second),
			DoctorListTTL: durationOr("CACHE_DOCTOR_LIST_TTL", 24*time.Hour),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret: viper.GetString("SESSION_SECRET"),
			TTL:    durationOr("SESSION_TTL", 12*time.Hour),
		},
	}

	if config.Upstream.BaseURL == "" {
		return nil, errors.New("UPSTREAM_BASE_URL is required")
	}
	if config.Session.Secret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}

	return config, nil
}

// durationOr reads key with viper and falls back when it is unset, invalid or not positive.
func durationOr(key string, fallback time.Duration) time.Duration {
	if d := viper.GetDuration(key); d > 0 {
		return d
	}
	return fallback
}
