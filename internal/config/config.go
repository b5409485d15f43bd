package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

var (
	// ErrReadConfig возвращается при ошибке чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	EmployeeService EmployeeServiceConfig `toml:"employee_service"`
	Schedule        ScheduleConfig        `toml:"schedule"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
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

// DSN возвращает строку подключения к Postgres
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// EmployeeServiceConfig настройки интеграции с EmployeeService
type EmployeeServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// ScheduleConfig настройки сетки слотов переговорных
// Окно дня и шаг frozen на уровне деплоя; движок расписания
// принимает их параметрами и не хранит глобального состояния
type ScheduleConfig struct {
	DayStart           string `toml:"day_start"`           // "08:00"
	DayEnd             string `toml:"day_end"`             // "21:00"
	GranularityMinutes int    `toml:"granularity_minutes"` // 30
}

// Window возвращает окно дня в минутах от полуночи
func (c ScheduleConfig) Window() (startMinutes, endMinutes int, err error) {
	start, err := types.NewTimeStringFromString(c.DayStart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: schedule.day_start: %v", ErrInvalidConfig, err)
	}
	end, err := types.NewTimeStringFromString(c.DayEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: schedule.day_end: %v", ErrInvalidConfig, err)
	}

	startMinutes, _ = start.Minutes()
	endMinutes, _ = end.Minutes()
	return startMinutes, endMinutes, nil
}

// Load загружает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in (0, 65535]", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.EmployeeService.URL == "" {
		return fmt.Errorf("%w: employee_service.url is required", ErrInvalidConfig)
	}
	if c.Schedule.GranularityMinutes <= 0 {
		return fmt.Errorf("%w: schedule.granularity_minutes must be positive", ErrInvalidConfig)
	}
	if _, _, err := c.Schedule.Window(); err != nil {
		return err
	}
	return nil
}
