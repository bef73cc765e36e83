package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DefaultJWTSecret     = "your-super-secret-jwt-key"
	DefaultAdminPassword = "admin123"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	S3        S3Config
}

type AppConfig struct {
	Environment    string   `envconfig:"ENVIRONMENT" default:"development"`
	Port           string   `envconfig:"PORT" default:"5000"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"debug"`
	CORSOrigins    []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	SeedSampleData bool     `envconfig:"SEED_SAMPLE_DATA" default:"false"`
}

// DBConfig selects the relational engine. DATABASE_URL, when set, is used verbatim.
type DBConfig struct {
	Driver          string        `envconfig:"DB_DRIVER" default:"postgres"`
	URL             string        `envconfig:"DATABASE_URL"`
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"0"`
	User            string        `envconfig:"DB_USER" default:"postgres"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME" default:"movie_reviews"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
	LogLevel        string        `envconfig:"DB_LOG_LEVEL" default:"warn"`
}

type AdminConfig struct {
	Username     string        `envconfig:"ADMIN_USERNAME" default:"admin"`
	Password     string        `envconfig:"ADMIN_PASSWORD" default:"admin123"`
	PasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH"`
	JWTSecret    string        `envconfig:"JWT_SECRET" default:"your-super-secret-jwt-key"`
	TokenTTL     time.Duration `envconfig:"ADMIN_TOKEN_TTL" default:"12h"`
	GuardWrites  bool          `envconfig:"ADMIN_GUARD_WRITES" default:"true"`
}

type RateLimitConfig struct {
	Enabled bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RPS     int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
}

type S3Config struct {
	Region    string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket    string `envconfig:"S3_BUCKET"`
	AccessKey string `envconfig:"S3_ACCESS_KEY"`
	SecretKey string `envconfig:"S3_SECRET_KEY"`
	Endpoint  string `envconfig:"S3_ENDPOINT"`
}

// Enabled reports whether poster uploads can be served.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// DSN returns the connection string for the configured driver.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}

	switch c.Driver {
	case "mysql":
		port := c.Port
		if port == 0 {
			port = 3306
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, port, c.Name)
	case "sqlite":
		return c.Name + ".db"
	default:
		port := c.Port
		if port == 0 {
			port = 5432
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Host, port, c.User, c.Password, c.Name)
	}
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg.App); err != nil {
		return nil, fmt.Errorf("failed to load app config: %w", err)
	}

	if err := envconfig.Process("", &cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to load db config: %w", err)
	}

	if err := envconfig.Process("", &cfg.Admin); err != nil {
		return nil, fmt.Errorf("failed to load admin config: %w", err)
	}

	if err := envconfig.Process("", &cfg.RateLimit); err != nil {
		return nil, fmt.Errorf("failed to load rate limit config: %w", err)
	}

	if err := envconfig.Process("", &cfg.S3); err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}

	cfg.DB.Driver = strings.ToLower(strings.TrimSpace(cfg.DB.Driver))

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be one of postgres, mysql, sqlite (got %q)", c.DB.Driver)
	}
	if c.DB.MaxOpenConns <= 0 {
		return errors.New("DB_MAX_OPEN_CONNS must be positive")
	}
	if c.DB.MaxIdleConns < 0 {
		return errors.New("DB_MAX_IDLE_CONNS cannot be negative")
	}
	if c.Admin.Username == "" {
		return errors.New("ADMIN_USERNAME is required")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	if c.Admin.TokenTTL <= 0 {
		return errors.New("ADMIN_TOKEN_TTL must be positive")
	}
	if c.RateLimit.Enabled && c.RateLimit.RPS <= 0 {
		return errors.New("RATE_LIMIT_RPS must be positive")
	}

	if c.IsProduction() {
		if c.Admin.JWTSecret == DefaultJWTSecret || c.Admin.JWTSecret == "" {
			return errors.New("JWT_SECRET must be set in production")
		}
		if c.Admin.PasswordHash == "" && c.Admin.Password == DefaultAdminPassword {
			return errors.New("default admin password is not allowed in production")
		}
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
