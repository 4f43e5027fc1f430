package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	for _, k := range []string{
		"GOALPACE_DB_DRIVER", "GOALPACE_DB_DSN", "GOALPACE_DB_PATH",
		"GOALPACE_RATE_URL", "GOALPACE_LOG_LEVEL", "GOALPACE_SENTRY_DSN",
	} {
		t.Setenv(k, "")
	}
	// Load reads .env from the working directory.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rates.Fallback != 83.0 {
		t.Errorf("fallback = %v, want 83", cfg.Rates.Fallback)
	}
	if cfg.Targets.Convention != "usd" {
		t.Errorf("convention = %q, want usd", cfg.Targets.Convention)
	}
	if Exists() {
		t.Error("Exists() = true without a config file")
	}
	if want := filepath.Join(DataDir(), "goals.db"); cfg.LedgerDSN() != want {
		t.Errorf("LedgerDSN = %q, want %q", cfg.LedgerDSN(), want)
	}
}

func TestSaveThenLoad(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	fixed := 82.75
	cfg.Rates.Fixed = &fixed
	cfg.Targets.Convention = "inr"
	cfg.General.DBPath = "/tmp/ledger.db"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Rates.Fixed == nil || *got.Rates.Fixed != 82.75 {
		t.Errorf("fixed = %v, want 82.75", got.Rates.Fixed)
	}
	if got.Targets.Convention != "inr" || got.LedgerDSN() != "/tmp/ledger.db" {
		t.Errorf("loaded %+v", got)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("GOALPACE_RATE_URL", "http://localhost:9/rates")
	t.Setenv("GOALPACE_DB_DRIVER", "pgx")
	t.Setenv("GOALPACE_DB_DSN", "postgres://localhost/goals")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rates.URL != "http://localhost:9/rates" {
		t.Errorf("rate url = %q", cfg.Rates.URL)
	}
	if cfg.LedgerDSN() != "postgres://localhost/goals" {
		t.Errorf("dsn = %q", cfg.LedgerDSN())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("[rates\nfallback = "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	bad := func(mut func(*Config)) Config {
		c := DefaultConfig()
		mut(&c)
		return c
	}
	zero := 0.0
	cases := map[string]Config{
		"unknown driver": bad(func(c *Config) { c.General.DBDriver = "mysql" }),
		"pgx no dsn":     bad(func(c *Config) { c.General.DBDriver = "pgx" }),
		"zero fallback":  bad(func(c *Config) { c.Rates.Fallback = 0 }),
		"zero fixed":     bad(func(c *Config) { c.Rates.Fixed = &zero }),
		"bad convention": bad(func(c *Config) { c.Targets.Convention = "eur" }),
	}
	for name, c := range cases {
		if err := c.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", name)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}
