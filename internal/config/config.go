// Package config содержит логику чтения конфигурации сервиса Gold Clean.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config содержит параметры конфигурации сервиса Gold Clean.
// Денежные значения задаются в грошах.
type Config struct {
	RunAddress  string `env:"RUN_ADDRESS"`
	DatabaseURI string `env:"DATABASE_URI"`
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	RedisAddress  string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	BrokerURL     string `env:"RABBITMQ_URL"`

	SessionSecret string `env:"SESSION_SECRET" envDefault:"goldclean-secret"`

	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	Currency            string `env:"CURRENCY" envDefault:"pln"`

	SMTPHost     string `env:"EMAIL_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort     int    `env:"EMAIL_PORT" envDefault:"587"`
	SMTPUser     string `env:"EMAIL_HOST_USER"`
	SMTPPassword string `env:"EMAIL_HOST_PASSWORD"`
	FromEmail    string `env:"DEFAULT_FROM_EMAIL"`
	AdminEmail   string `env:"ADMIN_EMAIL" envDefault:"goldclean2026@gmail.com"`

	// Значения из настроек сайта: цена аренды пылесоса и штраф
	// за отмену менее чем за 24 часа.
	VacuumCleanerPrice int64 `env:"VACUUM_CLEANER_PRICE" envDefault:"2800"`
	CancellationFee    int64 `env:"CANCELLATION_FEE" envDefault:"5000"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDatabaseURI := cfg.DatabaseURI

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = cfg.SMTPUser
	}

	return cfg, nil
}
