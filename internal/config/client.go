package config

import (
	"fmt"
	"time"
)

// Бэкенды хранения пользовательских настроек клиента.
const (
	PrefsMemory = "memory"
	PrefsRedis  = "redis"
)

// ClientConfig — конфигурация comments-client.
type ClientConfig struct {
	Env      string              `yaml:"env" env:"ENV" env-default:"local"`
	Server   ServerConfig        `yaml:"server"`
	Prefs    PrefsConfig         `yaml:"prefs"`
	UI       UIConfig            `yaml:"ui"`
	Timeouts ClientTimeoutConfig `yaml:"timeouts"`
}

// ServerConfig — адрес сервиса комментариев и учётная запись клиента.
// Token уходит в metadata authorization: Bearer <token>.
type ServerConfig struct {
	Addr  string `yaml:"addr"  env:"COMMENTS_ADDR"  env-default:"127.0.0.1:50054"`
	Token string `yaml:"token" env:"COMMENTS_TOKEN" env-required:"true"`
}

// PrefsConfig — где хранится активный канал для подписи.
// Пустой Backend выбирается по RedisURL: есть адрес — redis, нет — memory.
// memory живёт только до выхода из клиента.
type PrefsConfig struct {
	Backend  string `yaml:"backend"   env:"PREFS_BACKEND"`
	RedisURL string `yaml:"redis_url" env:"REDIS_URL"`
	Prefix   string `yaml:"prefix"    env:"PREFS_PREFIX"  env-default:"odysee:prefs:"`
}

// UIConfig — что открыть и как подписывать подсказки.
type UIConfig struct {
	URI      string `yaml:"uri"       env:"CONTENT_URI" env-required:"true"`
	SiteName string `yaml:"site_name" env:"SITE_NAME"   env-default:"Odysee"`
}

// ClientTimeoutConfig — таймаут исходящего вызова (если у контекста нет дедлайна).
type ClientTimeoutConfig struct {
	Request time.Duration `yaml:"request" env:"REQUEST_TIMEOUT" env-default:"10s"`
}

// MustLoadClient — обёртка над LoadClient с panic при ошибке.
func MustLoadClient(path string) *ClientConfig {
	cfg, err := LoadClient(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// LoadClient загружает конфигурацию клиента с тем же приоритетом источников, что и Load.
func LoadClient(path string) (*ClientConfig, error) {
	var cfg ClientConfig
	if err := load(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *ClientConfig) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	if c.Server.Token == "" {
		return fmt.Errorf("server.token is required")
	}

	if c.UI.URI == "" {
		return fmt.Errorf("ui.uri is required")
	}

	if c.Prefs.Backend == "" {
		c.Prefs.Backend = PrefsMemory
		if c.Prefs.RedisURL != "" {
			c.Prefs.Backend = PrefsRedis
		}
	}

	switch c.Prefs.Backend {
	case PrefsMemory:
	case PrefsRedis:
		if c.Prefs.RedisURL == "" {
			return fmt.Errorf("prefs.redis_url is required for redis backend")
		}
	default:
		return fmt.Errorf("prefs.backend must be %q or %q", PrefsMemory, PrefsRedis)
	}

	if c.Timeouts.Request < 0 {
		return fmt.Errorf("timeouts.request must be >= 0")
	}

	return nil
}
