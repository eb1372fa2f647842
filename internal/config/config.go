package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	Auth         AuthConfig
	Payment      PaymentConfig
	Notification NotificationConfig
	Checkout     CheckoutConfig
	Log          LogConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// DraftTTL bounds how long an abandoned draft survives.
	DraftTTL time.Duration
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type PaymentConfig struct {
	BaseURL     string
	AccessToken string
	LocationID  string
	Currency    string
	Timeout     time.Duration
}

type NotificationConfig struct {
	SendGridURL    string
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	SheetsURL      string
	SheetsAPIKey   string
	SpreadsheetID  string
	Timeout        time.Duration
}

type CheckoutConfig struct {
	// PricingFlow selects the policy for the custom-order wizard: "tax" or
	// "deposit". The two flows never combine.
	PricingFlow string
	OrderPrefix string
}

type LogConfig struct {
	Level string
}

// Load reads configuration from the environment, with a best-effort .env
// bootstrap for local development.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "atelier")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "atelier")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("DRAFT_TTL", "72h")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_TTL", "24h")
	viper.SetDefault("SQUARE_BASE_URL", "https://connect.squareupsandbox.com")
	viper.SetDefault("SQUARE_ACCESS_TOKEN", "")
	viper.SetDefault("SQUARE_LOCATION_ID", "")
	viper.SetDefault("PAYMENT_CURRENCY", "USD")
	viper.SetDefault("PAYMENT_TIMEOUT", "30s")
	viper.SetDefault("SENDGRID_URL", "https://api.sendgrid.com/v3/mail/send")
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("MAIL_FROM_EMAIL", "orders@example.com")
	viper.SetDefault("MAIL_FROM_NAME", "Atelier Orders")
	viper.SetDefault("SHEETS_URL", "https://sheets.googleapis.com")
	viper.SetDefault("SHEETS_API_KEY", "")
	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("NOTIFICATION_TIMEOUT", "10s")
	viper.SetDefault("CHECKOUT_PRICING_FLOW", "tax")
	viper.SetDefault("ORDER_PREFIX", "FAF")
	viper.SetDefault("LOG_LEVEL", "info")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}
	draftTTL, err := time.ParseDuration(viper.GetString("DRAFT_TTL"))
	if err != nil {
		return nil, err
	}
	tokenTTL, err := time.ParseDuration(viper.GetString("TOKEN_TTL"))
	if err != nil {
		return nil, err
	}
	paymentTimeout, err := time.ParseDuration(viper.GetString("PAYMENT_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	notificationTimeout, err := time.ParseDuration(viper.GetString("NOTIFICATION_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			DraftTTL: draftTTL,
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
			TokenTTL:  tokenTTL,
		},
		Payment: PaymentConfig{
			BaseURL:     viper.GetString("SQUARE_BASE_URL"),
			AccessToken: viper.GetString("SQUARE_ACCESS_TOKEN"),
			LocationID:  viper.GetString("SQUARE_LOCATION_ID"),
			Currency:    viper.GetString("PAYMENT_CURRENCY"),
			Timeout:     paymentTimeout,
		},
		Notification: NotificationConfig{
			SendGridURL:    viper.GetString("SENDGRID_URL"),
			SendGridAPIKey: viper.GetString("SENDGRID_API_KEY"),
			FromEmail:      viper.GetString("MAIL_FROM_EMAIL"),
			FromName:       viper.GetString("MAIL_FROM_NAME"),
			SheetsURL:      viper.GetString("SHEETS_URL"),
			SheetsAPIKey:   viper.GetString("SHEETS_API_KEY"),
			SpreadsheetID:  viper.GetString("SHEETS_SPREADSHEET_ID"),
			Timeout:        notificationTimeout,
		},
		Checkout: CheckoutConfig{
			PricingFlow: viper.GetString("CHECKOUT_PRICING_FLOW"),
			OrderPrefix: viper.GetString("ORDER_PREFIX"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
