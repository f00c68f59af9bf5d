package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DB     DBConfig
	Server ServerConfig
	Site   SiteConfig
	Mail   MailConfig
}

// DBType represents database type
type DBType string

const (
	DBTypePostgreSQL DBType = "postgres"
	DBTypeMemory     DBType = "memory"
)

// DBConfig holds database configuration
type DBConfig struct {
	Type     DBType
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the database connection string
func (c DBConfig) DSN() string {
	if c.Type == DBTypeMemory {
		// SQLite in-memory database
		if c.Name != "" && c.Name != "rydercup" {
			return fmt.Sprintf("file:%s?mode=memory&cache=shared", c.Name)
		}
		return "file::memory:?cache=shared"
	}
	// PostgreSQL connection string
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// IsMemory returns true if using in-memory database
func (c DBConfig) IsMemory() bool {
	return c.Type == DBTypeMemory
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
}

// SiteConfig holds public site settings used for sitemap and canonical URLs
type SiteConfig struct {
	BaseURL string
}

// MailConfig holds the transactional email provider settings.
// When APIKey is empty, form submissions are accepted but sends are skipped,
// which keeps local development working without credentials.
type MailConfig struct {
	BaseURL    string
	APIKey     string
	FromEmail  string
	ContactTo  string
	TimeoutSec int
}

// Enabled reports whether outbound email is configured
func (c MailConfig) Enabled() bool {
	return c.APIKey != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbType := DBType(getEnv("DB_TYPE", "memory"))
	if dbType != DBTypePostgreSQL && dbType != DBTypeMemory {
		dbType = DBTypeMemory
	}

	config := &Config{
		DB: DBConfig{
			Type:     dbType,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "rydercup"),
			Password: getEnv("DB_PASSWORD", "rydercup_password"),
			Name:     getEnv("DB_NAME", "rydercup"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "8080"),
		},
		Site: SiteConfig{
			BaseURL: getEnv("SITE_BASE_URL", "https://www.rydercupadare2027.com"),
		},
		Mail: MailConfig{
			BaseURL:    getEnv("MAIL_API_URL", "https://api.resend.com"),
			APIKey:     getEnv("MAIL_API_KEY", ""),
			FromEmail:  getEnv("MAIL_FROM", "noreply@rydercupadare2027.com"),
			ContactTo:  getEnv("MAIL_CONTACT_TO", "info@rydercupadare2027.com"),
			TimeoutSec: getEnvAsInt("MAIL_TIMEOUT_SECONDS", 15),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
