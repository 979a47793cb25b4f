package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/catalog/internal/flagx"
	"github.com/dmitrijs2005/catalog/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Every field is
// optional: only keys present in the file override the current value.
type JsonConfig struct {
	EndpointAddr       *string         `json:"endpoint_addr"`
	DatabaseDSN        *string         `json:"database_dsn"`
	DBUser             *string         `json:"db_user"`
	DBPassword         *string         `json:"db_password"`
	DBName             *string         `json:"db_name"`
	DBHost             *string         `json:"db_host"`
	DBPort             *int            `json:"db_port"`
	SecretKey          *string         `json:"secret_key"`
	CORSAllowedOrigins []string        `json:"cors_allowed_origins"`
	CookieSecure       *bool           `json:"cookie_secure"`
	LogBackend         *string         `json:"log_backend"`
	LogLevel           *string         `json:"log_level"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	ShutdownTimeout    *timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays the file named by -c / -config in args, if any.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}
	return readJsonFile(config, path)
}

func readJsonFile(config *Config, path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	c.apply(config)
	return nil
}

func (c *JsonConfig) apply(config *Config) {
	setIf(&config.EndpointAddr, c.EndpointAddr)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.DBUser, c.DBUser)
	setIf(&config.DBPassword, c.DBPassword)
	setIf(&config.DBName, c.DBName)
	setIf(&config.DBHost, c.DBHost)
	setIf(&config.DBPort, c.DBPort)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.CookieSecure, c.CookieSecure)
	setIf(&config.LogBackend, c.LogBackend)
	setIf(&config.LogLevel, c.LogLevel)
	if c.CORSAllowedOrigins != nil {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
