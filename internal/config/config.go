package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	envDevelopment = "development"

	defaultEnv            = envDevelopment
	defaultHost           = "127.0.0.1"
	defaultPort           = "8080"
	defaultDBPath         = "./dev.db"
	defaultLogLevel       = "info"
	defaultCurrencySymbol = "Rp"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env            string
	Host           string
	Port           string
	DBPath         string
	LogLevel       string
	CurrencySymbol string
}

// IsDev reports whether the application runs in development mode, where
// migrations and seed data are applied at startup.
func (c Config) IsDev() bool {
	return c.Env == envDevelopment
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads environment variables and returns a populated Config.
// A .env file in the working directory is read when present; variables
// already set in the environment take precedence over it.
func Load() (Config, error) {
	return load(".env")
}

func load(dotenvPath string) (Config, error) {
	v := viper.New()
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("host", defaultHost)
	v.SetDefault("port", defaultPort)
	v.SetDefault("db_path", defaultDBPath)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("currency_symbol", defaultCurrencySymbol)
	v.AutomaticEnv()

	if dotenvPath != "" {
		v.SetConfigFile(dotenvPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return Config{}, fmt.Errorf("read dotenv %s: %w", dotenvPath, err)
		}
	}

	cfg := Config{
		Env:            strings.ToLower(strings.TrimSpace(v.GetString("app_env"))),
		Host:           strings.TrimSpace(v.GetString("host")),
		Port:           strings.TrimSpace(v.GetString("port")),
		DBPath:         v.GetString("db_path"),
		LogLevel:       strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		CurrencySymbol: v.GetString("currency_symbol"),
	}

	if port, err := strconv.Atoi(cfg.Port); err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", cfg.Port)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}

	return cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}
