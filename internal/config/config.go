package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	OAuth2Google OAuth2GoogleConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port          int
	Env           string
	LogLevel      string
	FrontendURL   string
	SeedOnStartup bool
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timewatch"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:          appPort,
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
		SeedOnStartup: getEnv("SEED_ON_STARTUP", "false") == "true",
	}

	// JWT configuration
	jwtRefreshExpiration := getEnv("JWT_REFRESH_EXPIRATION_TIME", "720h")
	jwtAccessExpiration := getEnv("JWT_ACCESS_EXPIRATION_TIME", "2h")

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: jwtRefreshExpiration,
		AccessExpiration:  jwtAccessExpiration,
	}

	// OAuth2 Google Configuration
	GoogleClientID := getEnv("CLIENT_ID", "")
	GoogleClientSecret := getEnv("CLIENT_SECRET", "")
	GoogleRedirectURL := getEnv("REDIRECT_URL", "")
	GoogleScopes := getEnvSlice("SCOPES")
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     GoogleClientID,
		ClientSecret: GoogleClientSecret,
		RedirectURL:  GoogleRedirectURL,
		Scopes:       GoogleScopes,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// GoogleLoginEnabled reports whether the Google OAuth2 flow is configured.
func (c *Config) GoogleLoginEnabled() bool {
	return c.OAuth2Google.ClientID != "" &&
		c.OAuth2Google.ClientSecret != "" &&
		c.OAuth2Google.RedirectURL != "" &&
		len(c.OAuth2Google.Scopes) > 0
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
