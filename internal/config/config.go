// config реализует конфигурацию comments-service и comments-client:
// загрузка из YAML/ENV с предсказуемым приоритетом.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация comments-service.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	HTTP     HTTPConfig     `yaml:"http"`
	DB       DBConfig       `yaml:"db"`
	Limits   LimitsConfig   `yaml:"limits"`
	Channels ChannelsConfig `yaml:"channels"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// TimeoutConfig — сервисные таймауты.
// List — отдельный дедлайн для CommentList: клиент запрашивает «все» комментарии сразу.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"5s"`
	List    time.Duration `yaml:"list" env:"LIST_TIMEOUT" env-default:"15s"`
}

// GRPCConfig — сетевые настройки gRPC-сервера.
type GRPCConfig struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50054"`
}

// HTTPConfig — служебный HTTP (health/metrics).
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50084"`
}

// Addr возвращает адрес в формате host:port.
func (g GRPCConfig) Addr() string {
	return net.JoinHostPort(g.Host, g.Port)
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к MongoDB.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// LimitsConfig — лимиты выдачи и размера комментария.
type LimitsConfig struct {
	// page_size=0 -> Default; верхняя граница — Max. Клиент по умолчанию
	// просит 99999, поэтому Max должен это покрывать.
	Default int32 `yaml:"default" env:"DEFAULT_LIMIT" env-default:"50"`
	Max     int32 `yaml:"max"     env:"MAX_LIMIT"     env-default:"99999"`
	// MaxChars — максимальная длина тела комментария (в рунах).
	MaxChars int `yaml:"max_chars" env:"MAX_CHARS" env-default:"2000"`
}

// ChannelsConfig — правила для каналов.
type ChannelsConfig struct {
	// Warmup — сколько времени новый канал не может подписывать изменения
	// (update возвращает null, abandon — abandoned=false).
	Warmup time.Duration `yaml:"warmup" env:"CHANNEL_WARMUP" env-default:"30s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию сервиса по приоритету источников.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := load(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}

	if c.Limits.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}

	if c.Limits.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}

	if c.Limits.Default > c.Limits.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}

	if c.Limits.MaxChars <= 0 {
		return fmt.Errorf("limits.max_chars must be > 0")
	}

	if c.Channels.Warmup < 0 {
		return fmt.Errorf("channels.warmup must be >= 0")
	}

	return nil
}

// load читает конфиг в dst: явный путь -> CONFIG_PATH -> ./local.yaml -> ENV.
// После чтения файла поверх накладываются ENV-переменные.
func load(path string, dst any) error {
	tryRead := func(p string) error {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, dst); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(dst); err != nil {
			return fmt.Errorf("failed to overlay env: %w", err)
		}

		return nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(dst); err != nil {
		return fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return nil
}
