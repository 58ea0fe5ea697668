package config

import (
	"github.com/maxviazov/league-registry/internal/logger"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	HTTP     HTTPConfig          `mapstructure:"http"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// PostgresConfig holds connection and pool settings. Durations are seconds.
type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	User              string `mapstructure:"user" validate:"required"`
	Password          string `mapstructure:"password" validate:"required"`
	DBName            string `mapstructure:"db" validate:"required"`
	SSLMode           string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"min=0"`
	MinConns          int32  `mapstructure:"min_conns" validate:"min=0"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
}

// HTTPConfig tunes the HTTP server. Timeouts are seconds.
type HTTPConfig struct {
	ReadTimeout     int      `mapstructure:"read_timeout"`
	WriteTimeout    int      `mapstructure:"write_timeout"`
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
}
