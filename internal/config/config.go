package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FileName is the project config file name.
const FileName = "ibcheck.yaml"

// Config represents the top-level ibcheck.yaml configuration.
type Config struct {
	Project      ProjectConfig      `yaml:"project"`
	Verification VerificationConfig `yaml:"verification"`
	Currency     CurrencyConfig     `yaml:"currency"`
	Paths        PathsConfig        `yaml:"paths"`
	Runner       RunnerConfig       `yaml:"runner"`
}

// ProjectConfig identifies the suite.
type ProjectConfig struct {
	Name string `yaml:"name"`
}

// VerificationConfig holds defaults applied to every check.
type VerificationConfig struct {
	Tolerance  string `yaml:"tolerance"`   // decimal string, e.g. "0.00"
	DateFormat string `yaml:"date_format"` // Go layout used when rendering history dates
}

// CurrencyConfig maps extra display symbols to ISO codes.
type CurrencyConfig struct {
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

// PathsConfig locates project directories relative to the project root.
type PathsConfig struct {
	DataDir     string `yaml:"data_dir"`
	ReceiptsDir string `yaml:"receipts_dir"`
	LogDir      string `yaml:"log_dir"`
}

// RunnerConfig controls batch evaluation.
type RunnerConfig struct {
	Workers int `yaml:"workers"`
}

// Load reads an ibcheck.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(name string) *Config {
	return &Config{
		Project: ProjectConfig{
			Name: name,
		},
		Verification: VerificationConfig{
			Tolerance:  "0.00",
			DateFormat: "02/01/2006",
		},
		Currency: CurrencyConfig{
			Aliases: map[string]string{},
		},
		Paths: PathsConfig{
			DataDir:     "data",
			ReceiptsDir: "receipts",
			LogDir:      "logs",
		},
		Runner: RunnerConfig{
			Workers: 4,
		},
	}
}

// Tolerance parses the default tolerance. An empty value means zero.
func (c *Config) Tolerance() (decimal.Decimal, error) {
	s := strings.TrimSpace(c.Verification.Tolerance)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing tolerance %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("tolerance %s must not be negative", s)
	}
	return d, nil
}

// Validate checks field values that Load cannot.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Tolerance(); err != nil {
		errs = append(errs, err)
	}
	if c.Verification.DateFormat != "" {
		ref := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		if ref.Format(c.Verification.DateFormat) == c.Verification.DateFormat {
			errs = append(errs, fmt.Errorf("date_format %q has no date fields", c.Verification.DateFormat))
		}
	}
	if c.Runner.Workers < 0 {
		errs = append(errs, fmt.Errorf("runner.workers %d must not be negative", c.Runner.Workers))
	}
	for k, v := range c.Currency.Aliases {
		if strings.TrimSpace(k) == "" || !isCurrencyCode(strings.TrimSpace(v)) {
			errs = append(errs, fmt.Errorf("currency alias %q -> %q: code must have 3 letters", k, v))
		}
	}
	return errors.Join(errs...)
}

// isCurrencyCode reports whether s is three ASCII letters.
func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}
