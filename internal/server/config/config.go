// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Config holds runtime settings for the catalog server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: full PostgreSQL DSN (pgx); when empty it is built from the DB* parts.
//   - SecretKey: password pepper and HMAC secret for signing session tokens.
//   - CORSAllowedOrigins: browser origins allowed to call the API with credentials.
//   - CookieSecure: mark the session cookie Secure (HTTPS only).
//   - LogBackend / LogLevel: logger implementation ("slog" or "zap") and minimum level.
//   - RequestTimeout / ShutdownTimeout: per-request deadline and graceful stop budget.
type Config struct {
	EndpointAddr       string
	DatabaseDSN        string
	DBUser             string
	DBPassword         string
	DBName             string
	DBHost             string
	DBPort             int
	SecretKey          string
	CORSAllowedOrigins []string
	CookieSecure       bool
	LogBackend         string
	LogLevel           string
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key default is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.DatabaseDSN = ""
	c.DBUser = "postgres"
	c.DBPassword = "postgres"
	c.DBName = "postgres"
	c.DBHost = "localhost"
	c.DBPort = 5432
	c.SecretKey = "development"
	c.CORSAllowedOrigins = []string{"http://localhost:5173"}
	c.CookieSecure = false
	c.LogBackend = "slog"
	c.LogLevel = "info"
	c.RequestTimeout = 30 * time.Second
	c.ShutdownTimeout = 10 * time.Second
}

// DSN returns the connection string handed to the pgx driver.
func (c *Config) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file (-c / -config) and finally from command-line flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFile applies defaults and then the JSON file at path, if any.
// Command-line flags are not consulted.
func LoadConfigFile(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if path == "" {
		return cfg, nil
	}
	if err := readJsonFile(cfg, path); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects settings the server cannot run with.
func (c *Config) validate() error {
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}
