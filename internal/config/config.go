package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrParseConfig возвращается при ошибке разбора TOML
	ErrParseConfig = errors.New("config: failed to parse config file")

	// ErrInvalidConfig возвращается при недопустимых значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	SalonService SalonServiceConfig `toml:"salon_service"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Planning     PlanningConfig     `toml:"planning"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к postgres
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

// DSN returns the postgres connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки кеша планировщика
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"` // время жизни закешированных представлений планинга
}

// SalonServiceConfig настройки клиента SalonService
type SalonServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PlanningConfig параметры построения сетки планинга
type PlanningConfig struct {
	OpenHour        int    `toml:"open_hour"`         // первый час сетки (включительно)
	CloseHour       int    `toml:"close_hour"`        // последний час сетки (включительно)
	SlotStepMinutes int    `toml:"slot_step_minutes"` // шаг сетки, должен делить 60
	WeekStart       string `toml:"week_start"`        // monday или sunday
	RevenuePolicy   string `toml:"revenue_policy"`    // completed или completed_confirmed
}

// Load reads and validates the configuration from path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseConfig, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults заполняет незаданные значения дефолтами
func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
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
	if cfg.Redis.TTLSeconds == 0 {
		cfg.Redis.TTLSeconds = 60
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "salon-planning-service"
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Planning.OpenHour == 0 && cfg.Planning.CloseHour == 0 {
		cfg.Planning.OpenHour = 9
		cfg.Planning.CloseHour = 19
	}
	if cfg.Planning.SlotStepMinutes == 0 {
		cfg.Planning.SlotStepMinutes = 30
	}
	if cfg.Planning.WeekStart == "" {
		cfg.Planning.WeekStart = "monday"
	}
	if cfg.Planning.RevenuePolicy == "" {
		cfg.Planning.RevenuePolicy = "completed"
	}
}

// validate проверяет согласованность конфигурации
func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if cfg.Planning.OpenHour >= cfg.Planning.CloseHour {
		return fmt.Errorf("%w: planning.open_hour must be before planning.close_hour", ErrInvalidConfig)
	}
	if cfg.Planning.SlotStepMinutes <= 0 || 60%cfg.Planning.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: planning.slot_step_minutes must divide 60", ErrInvalidConfig)
	}
	switch cfg.Planning.WeekStart {
	case "monday", "sunday":
	default:
		return fmt.Errorf("%w: planning.week_start must be monday or sunday", ErrInvalidConfig)
	}
	switch cfg.Planning.RevenuePolicy {
	case "completed", "completed_confirmed":
	default:
		return fmt.Errorf("%w: planning.revenue_policy must be completed or completed_confirmed", ErrInvalidConfig)
	}
	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	return nil
}
