package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/germanamz/rover/pkg/composite/activation"
	"github.com/germanamz/rover/pkg/composite/announce"
	"github.com/germanamz/rover/pkg/composite/item"
	"github.com/germanamz/rover/pkg/composite/navigation"
	"github.com/germanamz/rover/pkg/composite/selection"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration of one widget instance.
type Config struct {
	Name  string      `yaml:"name"`
	Items []item.Item `yaml:"items"`
	// Value makes the widget controlled. A nil Value means uncontrolled; an
	// empty non-nil Value means "controlled, nothing active".
	Value        []string `yaml:"value"`
	DefaultValue []string `yaml:"default_value"`
	// OnChange receives every proposed selection, controlled or not.
	OnChange         func(ids []string) `yaml:"-"`
	Mode             string             `yaml:"mode"`        // single (default) or multi.
	Orientation      string             `yaml:"orientation"` // horizontal (default) or vertical.
	Circular         bool               `yaml:"circular"`
	Activation       string             `yaml:"activation"` // automatic (default) or manual.
	Collapsible      bool               `yaml:"collapsible"`
	NumericShortcuts bool               `yaml:"numeric_shortcuts"`
	AutoFocus        bool               `yaml:"auto_focus"`
	AriaLabel        string             `yaml:"aria_label"`
	Description      string             `yaml:"description"`
	Politeness       string             `yaml:"politeness"`     // polite (default), assertive or off.
	AnnounceDelay    string             `yaml:"announce_delay"` // Duration string, e.g. "1s" or "750ms".
}

// settings is the parsed form of Config.
type settings struct {
	items       item.List
	mode        selection.Mode
	orientation navigation.Orientation
	activation  activation.Mode
	politeness  announce.Politeness
	delay       time.Duration
}

// LoadConfig reads a YAML configuration file and returns the parsed Config.
// Environment variables in the form ${VAR} or $VAR are expanded before
// parsing.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("engine: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("engine: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	_, err := c.parse()
	return err
}

func (c Config) parse() (settings, error) {
	var s settings
	var err error

	if s.items, err = item.NewList(c.Items); err != nil {
		return s, fmt.Errorf("engine: config: %w", err)
	}
	if s.mode, err = selection.ParseMode(c.Mode); err != nil {
		return s, fmt.Errorf("engine: config: %w", err)
	}
	if s.orientation, err = navigation.ParseOrientation(c.Orientation); err != nil {
		return s, fmt.Errorf("engine: config: %w", err)
	}
	if s.activation, err = activation.ParseMode(c.Activation); err != nil {
		return s, fmt.Errorf("engine: config: %w", err)
	}
	if s.politeness, err = announce.ParsePoliteness(c.Politeness); err != nil {
		return s, fmt.Errorf("engine: config: %w", err)
	}

	if c.AnnounceDelay != "" {
		s.delay, err = time.ParseDuration(c.AnnounceDelay)
		if err != nil {
			return s, fmt.Errorf("engine: config: invalid announce_delay %q: %w", c.AnnounceDelay, err)
		}
		if s.delay <= 0 {
			return s, fmt.Errorf("engine: config: announce_delay must be positive, got %s", s.delay)
		}
	}

	if s.mode == selection.Single {
		if len(c.Value) > 1 {
			return s, fmt.Errorf("engine: config: single mode accepts at most one value, got %d", len(c.Value))
		}
		if len(c.DefaultValue) > 1 {
			return s, fmt.Errorf("engine: config: single mode accepts at most one default_value, got %d", len(c.DefaultValue))
		}
	}

	if c.Value != nil && len(c.DefaultValue) > 0 {
		return s, fmt.Errorf("engine: config: value and default_value are mutually exclusive")
	}

	return s, nil
}
