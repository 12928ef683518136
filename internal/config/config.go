package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field maps 1:1 to an env var; defaults live in Load.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Remote tourism API
	APIBaseURL string        `mapstructure:"API_BASE_URL"`
	APITimeout time.Duration `mapstructure:"API_TIMEOUT"`

	// Gateway session tokens
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// Local state. RedisURL is optional: when empty the remembered email is
	// kept in StateFile and invoice e-mails are disabled.
	StateFile string `mapstructure:"STATE_FILE"`
	RedisURL  string `mapstructure:"REDIS_URL"`

	// SMTP
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// Invoice documents
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
	InvoiceLogoURL string `mapstructure:"INVOICE_LOGO_URL"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("PORT", 8000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("WORKER_POOL_SIZE", 3)
	v.SetDefault("API_BASE_URL", "http://localhost:9000/api")
	v.SetDefault("API_TIMEOUT", "10s")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION_HOURS", 8)
	v.SetDefault("STATE_FILE", "/tmp/exploraneiva/state.json")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("PDF_STORAGE_PATH", "/tmp/exploraneiva/facturas")
	v.SetDefault("INVOICE_LOGO_URL", "https://www.pngkey.com/png/full/74-740215_avion-icon.png")

	// Optional .env file for local development: does not fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MailEnabled reports whether invoice e-mails can be delivered.
func (c *Config) MailEnabled() bool {
	return c.RedisURL != "" && c.SMTPHost != ""
}
