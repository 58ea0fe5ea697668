package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// secretEnv lists the env names accepted for each secret, first non-empty wins.
var secretEnv = map[string][]string{
	"postgres.user":     {"APP_POSTGRES_USER", "POSTGRES_USER", "DB_USER"},
	"postgres.password": {"APP_POSTGRES_PASSWORD", "POSTGRES_PASSWORD", "DB_PASSWORD"},
	"postgres.db":       {"APP_POSTGRES_DB", "POSTGRES_DB", "DB_NAME"},
	"postgres.host":     {"APP_POSTGRES_HOST", "POSTGRES_HOST", "DB_HOST"},
	"postgres.port":     {"APP_POSTGRES_PORT", "POSTGRES_PORT", "DB_PORT"},
	"app.port":          {"APP_APP_PORT", "PORT"},
}

func Load(path string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	setDefaults(v)
	for key, envs := range secretEnv {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "league-registry")
	v.SetDefault("app.version", "0.0.1")
	v.SetDefault("app.port", 8080)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conn_lifetime", 3600)
	v.SetDefault("postgres.max_conn_idle_time", 300)
	v.SetDefault("postgres.health_check_period", 30)

	v.SetDefault("http.read_timeout", 10)
	v.SetDefault("http.write_timeout", 10)
	v.SetDefault("http.shutdown_timeout", 10)
	v.SetDefault("http.allowed_origins", []string{"*"})
}

// validate checks the sections owned by this package. Logger settings are
// validated by logger.New after its own defaults are applied.
func validate(c *Config) error {
	v := validator.New()
	if err := v.Struct(c.App); err != nil {
		return fmt.Errorf("app config validation error: %w", err)
	}
	if err := v.Struct(c.Postgres); err != nil {
		return fmt.Errorf("postgres config validation error: %w", err)
	}
	return nil
}
