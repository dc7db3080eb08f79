package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Cart         CartConfig         `toml:"cart"`
	Search       SearchConfig       `toml:"search"`
	Packages     PackagesConfig     `toml:"packages"`
	Providers    ProvidersConfig    `toml:"providers"`
	Payments     PaymentsConfig     `toml:"payments"`
	Confirmation ConfirmationConfig `toml:"confirmation"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	URL string `toml:"url"` // пусто = корзины хранятся в памяти процесса
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type CartConfig struct {
	TTLHours int `toml:"ttl_hours"` // срок жизни корзины в Redis, 0 = без ограничения
}

// TTL срок жизни корзины
func (c CartConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// SearchConfig параметры поиска тии-таймов
type SearchConfig struct {
	Timezone string `toml:"timezone"` // часовой пояс полей, в нём считаются "сегодня" и прошедшие старты
}

// Location часовой пояс полей
func (s SearchConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// PackagesConfig окна раннего и вечернего тарифов и ключевые слова по локалям
type PackagesConfig struct {
	EarlyBirdCutoffHour int      `toml:"early_bird_cutoff_hour"`
	TwilightStartHour   int      `toml:"twilight_start_hour"`
	EarlyBirdKeywords   []string `toml:"early_bird_keywords"`
	TwilightKeywords    []string `toml:"twilight_keywords"`
}

type ProviderConfig struct {
	Enabled        bool    `toml:"enabled"`
	URL            string  `toml:"url"`
	APIKey         string  `toml:"api_key"`
	Timeout        int     `toml:"timeout"`         // секунды
	RateLimit      float64 `toml:"rate_limit"`      // запросов в секунду
	RateBurst      int     `toml:"rate_burst"`
	BreakerTimeout int     `toml:"breaker_timeout"` // секунды в состоянии open
}

type ProvidersConfig struct {
	Zest        ProviderConfig `toml:"zest"`
	Golfmanager ProviderConfig `toml:"golfmanager"`
	TeeOne      ProviderConfig `toml:"teeone"`
}

type PaymentsConfig struct {
	URL           string `toml:"url"`
	SecretKey     string `toml:"secret_key"`
	WebhookSecret string `toml:"webhook_secret"`
	Currency      string `toml:"currency"`
	SuccessURL    string `toml:"success_url"`
	CancelURL     string `toml:"cancel_url"`
	Timeout       int    `toml:"timeout"` // секунды
}

type ConfirmationConfig struct {
	MaxAttempts int `toml:"max_attempts"`
	DelayMs     int `toml:"delay_ms"`
}

// Load читает конфигурацию из TOML файла и заполняет значения по умолчанию
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse разбирает TOML конфигурацию
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
	provider := ProviderConfig{
		Timeout:        10,
		RateLimit:      5,
		RateBurst:      10,
		BreakerTimeout: 30,
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "teetime_service",
		},
		Cart:   CartConfig{TTLHours: 72},
		Search: SearchConfig{Timezone: "Europe/Madrid"},
		Providers: ProvidersConfig{
			Zest:        provider,
			Golfmanager: provider,
			TeeOne:      provider,
		},
		Payments: PaymentsConfig{
			Currency: "eur",
			Timeout:  15,
		},
		Confirmation: ConfirmationConfig{
			MaxAttempts: 5,
			DelayMs:     2000,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Packages.EarlyBirdCutoffHour < 0 || c.Packages.EarlyBirdCutoffHour > 24 {
		return fmt.Errorf("%w: packages.early_bird_cutoff_hour must be in 0..24", ErrInvalidConfig)
	}
	if c.Packages.TwilightStartHour < 0 || c.Packages.TwilightStartHour > 24 {
		return fmt.Errorf("%w: packages.twilight_start_hour must be in 0..24", ErrInvalidConfig)
	}
	if c.Confirmation.MaxAttempts < 1 {
		return fmt.Errorf("%w: confirmation.max_attempts must be positive", ErrInvalidConfig)
	}
	if c.Confirmation.DelayMs < 0 {
		return fmt.Errorf("%w: confirmation.delay_ms must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Search.Location(); err != nil {
		return fmt.Errorf("%w: search.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Cart.TTLHours < 0 {
		return fmt.Errorf("%w: cart.ttl_hours must not be negative", ErrInvalidConfig)
	}

	for name, p := range map[string]ProviderConfig{
		"zest":        c.Providers.Zest,
		"golfmanager": c.Providers.Golfmanager,
		"teeone":      c.Providers.TeeOne,
	} {
		if p.Enabled && p.URL == "" {
			return fmt.Errorf("%w: providers.%s.url is required when enabled", ErrInvalidConfig, name)
		}
	}

	return nil
}
