// Package config parses environment configuration for the server.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment configuration for the application
type Config struct {
	Port     string `env:"PORT"      envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBHost string `env:"DB_HOST" envDefault:"localhost"`
	DBPort string `env:"DB_PORT" envDefault:"5432"`
	DBUser string `env:"DB_USER" envDefault:"jobsy"`
	DBPass string `env:"DB_PASS" envDefault:"jobsy"`
	DBName string `env:"DB_NAME" envDefault:"jobsy"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASS" envDefault:""`

	JWTSecret string `env:"JWT_SECRET" envDefault:""`

	AdminUsername     string `env:"ADMIN_USERNAME"      envDefault:"admin"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH" envDefault:""`
}

// Load reads .env if present and parses environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DSN builds the Postgres connection string
func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" port=" + c.DBPort +
		" user=" + c.DBUser +
		" password=" + c.DBPass +
		" dbname=" + c.DBName +
		" sslmode=disable"
}
