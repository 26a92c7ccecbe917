// Package config загружает конфигурацию сервиса из TOML файла
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server      Server      `toml:"server"`
	Logs        Logs        `toml:"logs"`
	Metrics     Metrics     `toml:"metrics"`
	Database    Database    `toml:"database"`
	ProviderAPI ProviderAPI `toml:"provider_api"`
	Booking     Booking     `toml:"booking"`
	SlotCache   SlotCache   `toml:"slot_cache"`
	CORS        CORS        `toml:"cors"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения к базе данных
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ProviderAPI настройки клиента календаря провайдера
type ProviderAPI struct {
	URL        string `toml:"url"`
	Timeout    int    `toml:"timeout"` // секунды
	ProviderID int64  `toml:"provider_id"`
}

// Booking настройки политики бронирования
type Booking struct {
	BufferTypeName        string `toml:"buffer_type_name"`        // internal name буферного типа в upstream-системе
	TimeZone              string `toml:"timezone"`                // таймзона провайдера для напоминаний
	CatalogRefreshMinutes int    `toml:"catalog_refresh_minutes"` // период обновления каталога типов
}

// SlotCache настройки кэша снапшотов слотов
type SlotCache struct {
	TTLMinutes  int `toml:"ttl_minutes"`
	MaxSessions int `toml:"max_sessions"`
}

// CORS настройки кросс-доменных запросов
type CORS struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает и валидирует конфигурацию из файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "appointment-service"
	}
	if cfg.ProviderAPI.Timeout == 0 {
		cfg.ProviderAPI.Timeout = 10
	}
	if cfg.Booking.BufferTypeName == "" {
		cfg.Booking.BufferTypeName = "buffer"
	}
	if cfg.Booking.TimeZone == "" {
		cfg.Booking.TimeZone = "UTC"
	}
	if cfg.Booking.CatalogRefreshMinutes == 0 {
		cfg.Booking.CatalogRefreshMinutes = 5
	}
	if cfg.SlotCache.TTLMinutes == 0 {
		cfg.SlotCache.TTLMinutes = 60
	}
	if cfg.SlotCache.MaxSessions == 0 {
		cfg.SlotCache.MaxSessions = 1024
	}
}

func validate(cfg *Config) error {
	if cfg.ProviderAPI.URL == "" {
		return fmt.Errorf("config: provider_api.url is required")
	}
	if cfg.ProviderAPI.ProviderID <= 0 {
		return fmt.Errorf("config: provider_api.provider_id is required")
	}
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if _, err := time.LoadLocation(cfg.Booking.TimeZone); err != nil {
		return fmt.Errorf("config: invalid booking.timezone %q: %w", cfg.Booking.TimeZone, err)
	}
	return nil
}
