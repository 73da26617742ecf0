package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/charlitron/CitasService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	GoogleCalendar GoogleCalendarConfig `toml:"google_calendar"`
	Schedule       ScheduleConfig       `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// GoogleCalendarConfig учетные данные и параметры Google Calendar
type GoogleCalendarConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RefreshToken string `toml:"refresh_token"`
	CalendarID   string `toml:"calendar_id"`
	Timeout      int    `toml:"timeout"` // seconds, applied per provider call
}

// ScheduleConfig рабочее окно и политика генерации слотов
type ScheduleConfig struct {
	Opening       string `toml:"opening"`
	Closing       string `toml:"closing"`
	StrideMinutes int    `toml:"stride_minutes"`
	Timezone      string `toml:"timezone"`

	// AllowDegraded включает деградированный режим доступности:
	// при недоступности календаря отдается полная сетка слотов
	// с явным флагом degraded в ответе
	AllowDegraded bool `toml:"allow_degraded"`
}

// Load читает конфигурацию из TOML файла и применяет дефолты
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

	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}

	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "citas-service"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.GoogleCalendar.CalendarID == "" {
		cfg.GoogleCalendar.CalendarID = "primary"
	}
	if cfg.GoogleCalendar.Timeout == 0 {
		cfg.GoogleCalendar.Timeout = 15
	}

	if cfg.Schedule.Opening == "" {
		cfg.Schedule.Opening = domain.DefaultOpeningTime
	}
	if cfg.Schedule.Closing == "" {
		cfg.Schedule.Closing = domain.DefaultClosingTime
	}
	if cfg.Schedule.StrideMinutes == 0 {
		cfg.Schedule.StrideMinutes = domain.DefaultStrideMinutes
	}
	if cfg.Schedule.Timezone == "" {
		cfg.Schedule.Timezone = domain.DefaultTimezone
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if cfg.GoogleCalendar.ClientID == "" || cfg.GoogleCalendar.ClientSecret == "" || cfg.GoogleCalendar.RefreshToken == "" {
		return fmt.Errorf("config: google_calendar credentials (client_id, client_secret, refresh_token) are required")
	}
	return nil
}
