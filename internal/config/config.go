// Package config loads application settings from an optional config file,
// RICH365_* environment variables and defaults, in that order of precedence
// (environment wins).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "RICH365"
	configName = "rich365"
)

// Config is the resolved application configuration.
type Config struct {
	DBPath        string
	CataloguePath string
	Timezone      string
	LogLevel      string
	CacheSize     int
	HTTP          HTTPConfig
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr        string
	CORSOrigins []string
}

// Location resolves Timezone, used to decide what "today" is for check-ins.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// SlogLevel maps LogLevel onto slog levels. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads configuration. configFile may be empty, in which case
// rich365.yaml is searched in the working directory and ~/.rich365.
func Load(configFile string) (Config, error) {
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".rich365")

	v := viper.New()
	v.SetDefault("db_path", filepath.Join(dataDir, "rich365.db"))
	v.SetDefault("catalogue_path", "")
	v.SetDefault("timezone", "Asia/Shanghai")
	v.SetDefault("log_level", "info")
	v.SetDefault("cache.size", 256)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.cors_origins", []string{"*"})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(dataDir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		DBPath:        v.GetString("db_path"),
		CataloguePath: v.GetString("catalogue_path"),
		Timezone:      v.GetString("timezone"),
		LogLevel:      v.GetString("log_level"),
		CacheSize:     v.GetInt("cache.size"),
		HTTP: HTTPConfig{
			Addr:        v.GetString("http.addr"),
			CORSOrigins: splitList(v.GetStringSlice("http.cors_origins")),
		},
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DBPath == "" {
		return errors.New("config: db_path must not be empty")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config: cache.size must be >= 0, got %d", c.CacheSize)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("config: timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
