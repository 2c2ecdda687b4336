// Package config loads the revcsv.yaml settings file. The pipeline treats
// settings as read-only input; nothing here is written back by the core.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Date-field choices.
const (
	DateFieldCompleted = "Completed Date"
	DateFieldStarted   = "Started Date"
)

// Type-filter choices.
const (
	FilterBoth    = "both"
	FilterExpense = "expense"
	FilterIncome  = "income"
)

// Settings is the revcsv.yaml configuration. APIKey and Model may also be
// supplied through the environment, which wins over the file.
type Settings struct {
	Website       string `yaml:"website"`                  // source label stamped on every output row
	Account       string `yaml:"account"`                  // institution label, default "Revolut"
	DateField     string `yaml:"date_field"`               // DateFieldCompleted or DateFieldStarted
	OnlyCompleted bool   `yaml:"only_completed"`           // drop rows whose State != COMPLETED
	Model         string `yaml:"model" env:"REVCSV_MODEL"` // classifier model identifier
	APIKey        string `yaml:"api_key" env:"REVCSV_API_KEY"`
	TypeFilter    string `yaml:"type_filter"` // both, expense, or income
}

// Default returns Settings for a new installation.
func Default() *Settings {
	return &Settings{
		Website:       "revcsv",
		Account:       "Revolut",
		DateField:     DateFieldCompleted,
		OnlyCompleted: true,
		Model:         "",
		TypeFilter:    FilterBoth,
	}
}

// Load reads a revcsv.yaml file, applies environment overrides, and
// validates the result.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	set := Default()
	if err := yaml.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := env.Parse(set); err != nil {
		return nil, fmt.Errorf("reading config environment: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Save writes Settings to a YAML file.
func Save(path string, set *Settings) error {
	data, err := yaml.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate rejects unknown date-field and type-filter values.
func (s *Settings) Validate() error {
	switch s.DateField {
	case DateFieldCompleted, DateFieldStarted:
	default:
		return fmt.Errorf("invalid date_field %q (use %q or %q)",
			s.DateField, DateFieldCompleted, DateFieldStarted)
	}
	switch s.TypeFilter {
	case FilterBoth, FilterExpense, FilterIncome:
	default:
		return fmt.Errorf("invalid type_filter %q (use %s, %s, or %s)",
			s.TypeFilter, FilterBoth, FilterExpense, FilterIncome)
	}
	return nil
}

// AlternateDateField returns the other date column, used as a fallback
// when the preferred one is empty.
func (s *Settings) AlternateDateField() string {
	if s.DateField == DateFieldStarted {
		return DateFieldCompleted
	}
	return DateFieldStarted
}
