package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/shift-scheduler/pkg/core/scheduler"
)

// ErrConfigNotFound is returned by findConfigFile when no config file exists
var ErrConfigNotFound = errors.New("config file not found in current directory or home directory")

// SchedulerDefaults are the constraint values used when an input document does not override them
type SchedulerDefaults struct {
	MinPerShift        int   `yaml:"minPerShift" validate:"min=0"`
	MaxPerShift        int   `yaml:"maxPerShift"`
	MaxDaysPerEmployee int   `yaml:"maxDaysPerEmployee" validate:"min=1,max=7"`
	RandomSeed         int64 `yaml:"randomSeed"`
}

// Config represents the application configuration
type Config struct {
	Scheduler SchedulerDefaults `yaml:"scheduler"`

	// WeekStartRule is an RRULE whose next occurrence labels the week a run is stored under
	WeekStartRule string `yaml:"weekStartRule" validate:"required"`

	// DatabaseURL selects the PostgreSQL store when set
	DatabaseURL string `yaml:"databaseURL,omitempty"`

	// SQLitePath selects the SQLite store when set and DatabaseURL is empty
	SQLitePath string `yaml:"sqlitePath,omitempty"`

	// ListenAddr is the address the HTTP API binds to
	ListenAddr string `yaml:"listenAddr,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no file is present
func Default() *Config {
	defaults := scheduler.DefaultConfig()
	return &Config{
		Scheduler: SchedulerDefaults{
			MinPerShift:        defaults.MinPerShift,
			MaxPerShift:        defaults.MaxPerShift,
			MaxDaysPerEmployee: defaults.MaxDaysPerEmployee,
			RandomSeed:         defaults.RandomSeed,
		},
		WeekStartRule: "FREQ=WEEKLY;BYDAY=MO",
		ListenAddr:    ":8080",
	}
}

// SchedulerConfig converts the defaults into the scheduler's Config
func (c *Config) SchedulerConfig() scheduler.Config {
	return scheduler.Config{
		MinPerShift:        c.Scheduler.MinPerShift,
		MaxPerShift:        c.Scheduler.MaxPerShift,
		MaxDaysPerEmployee: c.Scheduler.MaxDaysPerEmployee,
		RandomSeed:         c.Scheduler.RandomSeed,
	}
}

// Load loads the configuration from shift_scheduler.yaml
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads shift_scheduler.<env>.yaml (or shift_scheduler.yaml when env is empty)
// from the current directory or the home directory. A missing file yields the defaults.
// Values from .env and the process environment override the file.
func LoadWithEnv(env string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg *Config
	configPath, err := findConfigFile(env)
	switch {
	case errors.Is(err, ErrConfigNotFound):
		cfg = Default()
	case err != nil:
		return nil, fmt.Errorf("failed to find config file: %w", err)
	default:
		cfg, err = LoadFromPath(configPath)
		if err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromPath loads and validates the configuration from a specific path.
// Fields missing from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := rrule.StrToRRule(cfg.WeekStartRule); err != nil {
		return fmt.Errorf("invalid rrule in weekStartRule: %w", err)
	}

	return nil
}

// applyEnv overrides storage settings from DATABASE_URL, SQLITE_PATH and LISTEN_ADDR
func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
}

// findConfigFile searches for the config file in current directory and home directory
// If env is provided, it adds it as an extension (e.g., "shift_scheduler.test.yaml")
func findConfigFile(env string) (string, error) {
	configFileName := "shift_scheduler.yaml"
	if env != "" {
		configFileName = "shift_scheduler." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", ErrConfigNotFound
}
