package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the process-wide configuration. It is loaded once at startup and
// never mutated afterwards.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port" env:"PORT" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
}

// UpstreamConfig describes the external Vision service.
type UpstreamConfig struct {
	APIKey        string        `mapstructure:"api_key" env:"API_KEY" validate:"required"`
	BaseURL       string        `mapstructure:"base_url" env:"BASE_URL" validate:"required,http_url"`
	QAEndpoint    string        `mapstructure:"qa_endpoint" env:"REKA_VIDEO_QA_ENDPOINT" validate:"omitempty,http_url"`
	Timeout       time.Duration `mapstructure:"timeout" env:"UPSTREAM_TIMEOUT" validate:"gt=0"`
	ChatTimeout   time.Duration `mapstructure:"chat_timeout" env:"UPSTREAM_CHAT_TIMEOUT" validate:"gt=0"`
	QuizTimeout   time.Duration `mapstructure:"quiz_timeout" env:"UPSTREAM_QUIZ_TIMEOUT" validate:"gte=0"`
	RetryAttempts uint          `mapstructure:"retry_attempts" env:"UPSTREAM_RETRY_ATTEMPTS" validate:"max=10"`
	RetryDelay    time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Env   string `mapstructure:"env" env:"ENV"`
}

// CacheConfig controls the video list cache. A zero VideoTTL disables caching
// and every listing goes to the upstream.
type CacheConfig struct {
	VideoTTL time.Duration `mapstructure:"video_ttl" env:"VIDEO_CACHE_TTL" validate:"gte=0"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address" env:"REDIS_ADDRESS"`
	Password string `mapstructure:"password" env:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"db" env:"REDIS_DB" validate:"gte=0"`
}

// LoadConfig reads config.yaml (optional) and the environment, applies
// defaults and validates the result. Missing API_KEY or BASE_URL is an error.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if configFile := os.Getenv("CONFIG_FILE"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	cfg.Upstream.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Upstream.BaseURL), "/")
	cfg.Upstream.APIKey = strings.TrimSpace(cfg.Upstream.APIKey)
	if cfg.Upstream.QAEndpoint == "" && cfg.Upstream.BaseURL != "" {
		cfg.Upstream.QAEndpoint = cfg.Upstream.BaseURL + "/qa/chat"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8111)
	v.SetDefault("server.read_timeout", 20*time.Second)
	v.SetDefault("server.write_timeout", 90*time.Second)

	v.SetDefault("upstream.timeout", 10*time.Second)
	v.SetDefault("upstream.chat_timeout", 60*time.Second)
	v.SetDefault("upstream.quiz_timeout", 90*time.Second)
	v.SetDefault("upstream.retry_attempts", 2)
	v.SetDefault("upstream.retry_delay", 200*time.Millisecond)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("cache.video_ttl", time.Duration(0))
	v.SetDefault("redis.db", 0)
}

var envBindings = map[string]string{
	"server.port":             "PORT",
	"upstream.api_key":        "API_KEY",
	"upstream.base_url":       "BASE_URL",
	"upstream.qa_endpoint":    "REKA_VIDEO_QA_ENDPOINT",
	"upstream.timeout":        "UPSTREAM_TIMEOUT",
	"upstream.chat_timeout":   "UPSTREAM_CHAT_TIMEOUT",
	"upstream.quiz_timeout":   "UPSTREAM_QUIZ_TIMEOUT",
	"upstream.retry_attempts": "UPSTREAM_RETRY_ATTEMPTS",
	"logger.level":            "LOG_LEVEL",
	"logger.env":              "ENV",
	"cache.video_ttl":         "VIDEO_CACHE_TTL",
	"redis.address":           "REDIS_ADDRESS",
	"redis.password":          "REDIS_PASSWORD",
	"redis.db":                "REDIS_DB",
}

func bindEnv(v *viper.Viper) error {
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}
	return nil
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

// RedisEnabled reports whether a Redis cache should be used for the video list.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Address != ""
}
