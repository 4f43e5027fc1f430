// Package config loads goalpace settings from TOML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all goalpace configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Rates      RatesConfig      `toml:"rates"`
	Targets    TargetsConfig    `toml:"targets"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
}

// GeneralConfig holds ledger storage settings.
type GeneralConfig struct {
	DBPath   string `toml:"db_path,omitempty"`
	DBDriver string `toml:"db_driver"`
	DBDSN    string `toml:"db_dsn,omitempty"`
}

// RatesConfig holds exchange rate lookup settings.
type RatesConfig struct {
	URL        string   `toml:"url"`
	Fallback   float64  `toml:"fallback"`
	Fixed      *float64 `toml:"fixed,omitempty"`
	TimeoutSec int      `toml:"timeout_sec"`
}

// TargetsConfig selects the custom target convention ("usd" or "inr").
type TargetsConfig struct {
	Convention string `toml:"convention"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig holds log destinations.
type LoggingConfig struct {
	Level     string `toml:"level"`
	File      string `toml:"file,omitempty"`
	SentryDSN string `toml:"sentry_dsn,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DBDriver: "sqlite",
		},
		Rates: RatesConfig{
			URL:        "https://open.er-api.com/v6/latest/USD",
			Fallback:   83.0,
			TimeoutSec: 5,
		},
		Targets: TargetsConfig{
			Convention: "usd",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "goalpace")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "goalpace")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "goalpace")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "goalpace")
}

// Load reads .env (if present) and the config file, returning defaults if
// the file doesn't exist. Environment overrides are applied last.
func Load() (Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	overrides := []struct {
		key string
		dst *string
	}{
		{"GOALPACE_DB_DRIVER", &cfg.General.DBDriver},
		{"GOALPACE_DB_DSN", &cfg.General.DBDSN},
		{"GOALPACE_DB_PATH", &cfg.General.DBPath},
		{"GOALPACE_RATE_URL", &cfg.Rates.URL},
		{"GOALPACE_LOG_LEVEL", &cfg.Logging.Level},
		{"GOALPACE_SENTRY_DSN", &cfg.Logging.SentryDSN},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.key); v != "" {
			*o.dst = v
		}
	}
}

// Validate reports settings that would make a session unusable.
func (c Config) Validate() error {
	switch c.General.DBDriver {
	case "", "sqlite":
	case "pgx":
		if c.General.DBDSN == "" {
			return errors.New("db_dsn is required when db_driver = \"pgx\"")
		}
	default:
		return fmt.Errorf("db_driver must be sqlite or pgx, got %q", c.General.DBDriver)
	}
	if c.Rates.Fallback <= 0 {
		return errors.New("rates.fallback must be positive")
	}
	if c.Rates.Fixed != nil && *c.Rates.Fixed <= 0 {
		return errors.New("rates.fixed must be positive")
	}
	switch c.Targets.Convention {
	case "", "usd", "inr":
	default:
		return fmt.Errorf("targets.convention must be usd or inr, got %q", c.Targets.Convention)
	}
	return nil
}

// LedgerDSN returns the DSN for the configured driver. For sqlite it is the
// database file path.
func (c Config) LedgerDSN() string {
	if c.General.DBDriver == "pgx" {
		return c.General.DBDSN
	}
	if c.General.DBPath != "" {
		return c.General.DBPath
	}
	return filepath.Join(DataDir(), "goals.db")
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
