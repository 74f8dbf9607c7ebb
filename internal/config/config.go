package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	StaffService StaffServiceConfig `toml:"staff_service"`
	Layout       LayoutConfig       `toml:"layout"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
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

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StaffServiceConfig настройки клиента сервиса мастеров
type StaffServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// LayoutConfig константы раскладки расписания
type LayoutConfig struct {
	PixelsPerHour    float64 `toml:"pixels_per_hour"`
	MinimumBlockSize float64 `toml:"minimum_block_size"`
}

// Переменные окружения, перекрывающие значения из TOML (секреты и адреса окружения)
const (
	EnvDatabaseHost     = "SCHEDULE_DB_HOST"
	EnvDatabasePort     = "SCHEDULE_DB_PORT"
	EnvDatabaseUser     = "SCHEDULE_DB_USER"
	EnvDatabasePassword = "SCHEDULE_DB_PASSWORD"
	EnvStaffServiceURL  = "SCHEDULE_STAFF_SERVICE_URL"
	EnvLogLevel         = "SCHEDULE_LOG_LEVEL"
)

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию
// и перекрывает их переменными окружения (включая .env рядом с процессом)
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// .env необязателен, существующие переменные окружения он не перезаписывает
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv перекрывает поля конфигурации значениями из lookup
func (c *Config) ApplyEnv(lookup func(key string) (string, bool)) error {
	if v, ok := lookup(EnvDatabaseHost); ok && v != "" {
		c.Database.Host = v
	}
	if v, ok := lookup(EnvDatabasePort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvDatabasePort, v)
		}
		c.Database.Port = port
	}
	if v, ok := lookup(EnvDatabaseUser); ok && v != "" {
		c.Database.User = v
	}
	if v, ok := lookup(EnvDatabasePassword); ok {
		c.Database.Password = v
	}
	if v, ok := lookup(EnvStaffServiceURL); ok && v != "" {
		c.StaffService.URL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logs.Level = v
	}
	return nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
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
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-schedule-service",
		},
		StaffService: StaffServiceConfig{
			Timeout: 5,
		},
		Layout: LayoutConfig{
			PixelsPerHour:    100,
			MinimumBlockSize: 25,
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.StaffService.URL == "" {
		return fmt.Errorf("%w: staff_service.url is required", ErrInvalidConfig)
	}
	if c.Layout.PixelsPerHour <= 0 {
		return fmt.Errorf("%w: layout.pixels_per_hour must be positive", ErrInvalidConfig)
	}
	if c.Layout.MinimumBlockSize < 0 {
		return fmt.Errorf("%w: layout.minimum_block_size must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
