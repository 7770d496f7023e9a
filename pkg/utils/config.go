package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Payment  PaymentConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type PaymentConfig struct {
	Provider            string
	StripeKey           string
	StripePaymentMethod string
	Currency            string
}

const (
	PaymentProviderLedger = "ledger"
	PaymentProviderStripe = "stripe"
)

// LoadConfig reads path as an env file when it exists, then lets the
// process environment override it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "cinema-tickets")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("PAYMENT_PROVIDER", PaymentProviderLedger)
	v.SetDefault("STRIPE_CURRENCY", "gbp")

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Payment: PaymentConfig{
			Provider:            v.GetString("PAYMENT_PROVIDER"),
			StripeKey:           v.GetString("STRIPE_KEY"),
			StripePaymentMethod: v.GetString("STRIPE_PAYMENT_METHOD"),
			Currency:            v.GetString("STRIPE_CURRENCY"),
		},
	}

	return config, nil
}
