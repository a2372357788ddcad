package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Demo      DemoConfig      `yaml:"demo"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	CirculationReport string `yaml:"circulation_report"`
	FineSummary       string `yaml:"fine_summary"`
}

// DemoConfig contains demo scenario settings
type DemoConfig struct {
	ScenarioPath string `yaml:"scenario_path"`
	ReportPath   string `yaml:"report_path"` // empty disables the JSON report file
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("SCENARIO_PATH"); val != "" {
		c.Demo.ScenarioPath = val
	}
	if val := os.Getenv("REPORT_PATH"); val != "" {
		c.Demo.ReportPath = val
	}
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	// Scheduler defaults
	if c.Scheduler.CirculationReport == "" {
		c.Scheduler.CirculationReport = "0 0 6 * * *" // 6 AM UTC
	}
	if c.Scheduler.FineSummary == "" {
		c.Scheduler.FineSummary = "0 30 6 * * *" // 6:30 AM UTC
	}

	if c.Demo.ScenarioPath == "" {
		c.Demo.ScenarioPath = "config/scenario.default.yaml"
	}

	return nil
}
