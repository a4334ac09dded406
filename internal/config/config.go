package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/misterclayt0n/overload/internal/apparatus"
)

const devConnectionString = "file:./local.db?cache=shared&mode=rwc"

type Config struct {
	DB       DBConfig       `toml:"database"`
	Log      LogConfig      `toml:"log"`
	Training TrainingConfig `toml:"training"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
	AuthToken        string `toml:"auth_token"`        // Turso only.
}

type LogConfig struct {
	Level    string `toml:"level"`
	Path     string `toml:"path"` // Empty logs to stderr only.
	ToStderr bool   `toml:"to_stderr"`
	JSON     bool   `toml:"json"`
}

type TrainingConfig struct {
	Unit     apparatus.Unit `toml:"unit"`
	RestBell bool           `toml:"rest_bell"`
}

// Dir returns ~/.config/overload, where the config, the session file and
// database dumps live.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "overload"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func defaults() Config {
	return Config{
		DB:  DBConfig{ConnectionString: "file:./overload.db"},
		Log: LogConfig{Level: "warn"},
		Training: TrainingConfig{
			Unit:     apparatus.Pounds,
			RestBell: true,
		},
	}
}

// LoadConfig reads the configuration from the default config file.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Load reads path on top of the defaults. A missing file is not an error.
// A .env file in the working directory and the environment override the
// file.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Failed to read config %s: %w", path, err)
	}

	// The .env file is optional.
	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// overrides are the environment variables that take precedence over the
// file.
type overrides struct {
	TursoURL  string `env:"TURSO_DATABASE_URL"`
	URL       string `env:"OVERLOAD_DATABASE_URL"`
	AuthToken string `env:"TURSO_AUTH_TOKEN"`
	LogLevel  string `env:"OVERLOAD_LOG_LEVEL"`
	DevMode   string `env:"DEV_MODE"`
}

func (c *Config) applyEnv() error {
	var o overrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.TursoURL != "" {
		c.DB.ConnectionString = o.TursoURL
	}
	if o.URL != "" {
		c.DB.ConnectionString = o.URL
	}
	if o.AuthToken != "" {
		c.DB.AuthToken = o.AuthToken
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}

	// Check for a DEV_MODE environment variable.
	if o.DevMode == "true" {
		c.DB.ConnectionString = devConnectionString
	}
	return nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DB.ConnectionString) == "" {
		return fmt.Errorf("database.connection_string is required")
	}
	switch c.Training.Unit {
	case apparatus.Pounds, apparatus.Kilograms:
	default:
		return fmt.Errorf("training.unit must be lb or kg, got %q", c.Training.Unit)
	}
	return nil
}
