package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Provider exposes configuration values to the rest of the application.
// Components depend on this interface so tests can supply partial mocks.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetAdminPasscode() string
	GetTimezone() string

	GetStoreBackend() string
	GetStoreDir() string
	GetStoreNamespace() string

	GetDBUrl() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string

	GetEmailProvider() string
	GetEmailAPIKey() string
	GetEmailSender() string
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string
	AppBaseURL    string
	SessionSecret string
	AdminPasscode string
	Timezone      string

	StoreBackend   string
	StoreDir       string
	StoreNamespace string

	DBUrl  string
	DBNs   string
	DBDb   string
	DBUser string
	DBPass string

	EmailProvider string
	EmailAPIKey   string
	EmailSender   string
}

// Store backends understood by the kvstore factory.
const (
	BackendMemory  = "memory"
	BackendFile    = "file"
	BackendSurreal = "surreal"
)

// New loads configuration from environment variables. Callers are expected to
// have loaded any .env file beforehand (see Load).
func New() *Config {
	return &Config{
		AppAddr:       getEnv("APP_ADDR", ":8080"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production-please!!"),
		AdminPasscode: getEnv("ADMIN_PASSCODE", "120240"),
		Timezone:      getEnv("APP_TIMEZONE", "America/Sao_Paulo"),

		StoreBackend:   getEnv("STORE_BACKEND", BackendFile),
		StoreDir:       getEnv("STORE_DIR", "data"),
		StoreNamespace: getEnv("STORE_NAMESPACE", "robinho"),

		DBUrl:  os.Getenv("SURREAL_URL"),
		DBNs:   os.Getenv("SURREAL_NS"),
		DBDb:   os.Getenv("SURREAL_DB"),
		DBUser: os.Getenv("SURREAL_USER"),
		DBPass: os.Getenv("SURREAL_PASS"),

		EmailProvider: getEnv("EMAIL_PROVIDER", "log"),
		EmailAPIKey:   os.Getenv("EMAIL_API_KEY"),
		EmailSender:   os.Getenv("EMAIL_SENDER"),
	}
}

// Load reads the .env file if present and returns a validated Config.
func Load() (*Config, error) {
	loadDotEnv()
	cfg := New()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected backend has everything it needs.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendMemory:
	case BackendFile:
		if c.StoreDir == "" {
			return fmt.Errorf("STORE_DIR must be set for the %q store backend", BackendFile)
		}
	case BackendSurreal:
		if c.DBUrl == "" || c.DBNs == "" || c.DBDb == "" {
			return fmt.Errorf("SURREAL_URL, SURREAL_NS and SURREAL_DB must be set for the %q store backend", BackendSurreal)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND: %q", c.StoreBackend)
	}
	if c.StoreNamespace == "" {
		return fmt.Errorf("STORE_NAMESPACE must not be empty")
	}
	if len(c.SessionSecret) < 16 {
		return fmt.Errorf("SESSION_SECRET must be at least 16 characters")
	}
	return nil
}

func (c *Config) GetAppAddr() string       { return c.AppAddr }
func (c *Config) GetAppBaseURL() string    { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetAdminPasscode() string { return c.AdminPasscode }
func (c *Config) GetTimezone() string      { return c.Timezone }

func (c *Config) GetStoreBackend() string   { return c.StoreBackend }
func (c *Config) GetStoreDir() string       { return c.StoreDir }
func (c *Config) GetStoreNamespace() string { return c.StoreNamespace }

func (c *Config) GetDBUrl() string  { return c.DBUrl }
func (c *Config) GetDBNs() string   { return c.DBNs }
func (c *Config) GetDBDb() string   { return c.DBDb }
func (c *Config) GetDBUser() string { return c.DBUser }
func (c *Config) GetDBPass() string { return c.DBPass }

func (c *Config) GetEmailProvider() string { return c.EmailProvider }
func (c *Config) GetEmailAPIKey() string   { return c.EmailAPIKey }
func (c *Config) GetEmailSender() string   { return c.EmailSender }

// Location resolves the configured timezone, falling back to the host's local
// zone when the name is unknown.
func Location(p Provider) *time.Location {
	name := p.GetTimezone()
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("Unknown timezone, using local time", "timezone", name, "error", err)
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
