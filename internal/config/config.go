package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DefaultPaymentLink is the checkout page shown after a submitted
// registration when PAYMENT_LINK is not set.
const DefaultPaymentLink = "https://loja.infinitepay.io/camposutil/vpx7737-roda-de-cura-com-gert-folz-jr"

type Config struct {
	TelegramToken string
	Environment   string

	AdminUsername string
	AdminPassword string
	PaymentLink   string
}

func Load() (*Config, error) {
	// Load .env when present; a missing file just means plain env vars.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		Environment:   os.Getenv("ENV"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		PaymentLink:   os.Getenv("PAYMENT_LINK"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin"
	}
	if cfg.PaymentLink == "" {
		cfg.PaymentLink = DefaultPaymentLink
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}

	return cfg, nil
}
