// Package initwizard asks for a widget configuration interactively and
// renders it as YAML that engine.LoadConfig accepts.
package initwizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"
)

// Answers collects everything the wizard asks.
type Answers struct {
	Kind             string
	Name             string
	AriaLabel        string
	Description      string
	Mode             string
	Orientation      string
	Activation       string
	Circular         bool
	Collapsible      bool
	NumericShortcuts bool
	AutoFocus        bool
	AnnounceDelay    string
	// Items holds one item per line as "id: Label". A leading "~" marks the
	// item disabled.
	Items string
}

type kindDefault struct {
	Mode        string
	Orientation string
	Activation  string
	Collapsible bool
	Circular    bool
}

var kindDefaults = map[string]kindDefault{
	"tabs":      {Mode: "single", Orientation: "horizontal", Activation: "automatic"},
	"accordion": {Mode: "multi", Orientation: "vertical", Activation: "manual", Collapsible: true},
	"stepper":   {Mode: "single", Orientation: "horizontal", Activation: "manual"},
	"carousel":  {Mode: "single", Orientation: "horizontal", Activation: "automatic", Circular: true},
	"rangepick": {Mode: "multi", Orientation: "vertical", Activation: "manual"},
	"custom":    {Mode: "single", Orientation: "horizontal", Activation: "automatic"},
}

// Run walks the user through the wizard and returns the config YAML.
func Run() ([]byte, error) {
	var a Answers

	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Widget kind").
			Options(
				huh.NewOption("Tabs", "tabs"),
				huh.NewOption("Accordion", "accordion"),
				huh.NewOption("Stepper", "stepper"),
				huh.NewOption("Carousel", "carousel"),
				huh.NewOption("Range picker", "rangepick"),
				huh.NewOption("Custom", "custom"),
			).
			Value(&a.Kind),
	)).Run(); err != nil {
		return nil, err
	}

	d := kindDefaults[a.Kind]
	a.Name = a.Kind
	a.Mode, a.Orientation, a.Activation = d.Mode, d.Orientation, d.Activation
	a.Collapsible, a.Circular = d.Collapsible, d.Circular
	a.AnnounceDelay = "1s"

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&a.Name),
		huh.NewInput().Title("Accessible label").Value(&a.AriaLabel),
		huh.NewText().Title("Description (markdown)").Value(&a.Description),
		huh.NewText().
			Title("Items").
			Description("One per line as \"id: Label\". Prefix with ~ to disable.").
			Value(&a.Items).
			Validate(validateItems),
	)).Run(); err != nil {
		return nil, err
	}

	if a.Kind == "custom" {
		if err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().Title("Selection mode").
				Options(huh.NewOption("Single", "single"), huh.NewOption("Multiple", "multi")).
				Value(&a.Mode),
			huh.NewSelect[string]().Title("Orientation").
				Options(huh.NewOption("Horizontal", "horizontal"), huh.NewOption("Vertical", "vertical")).
				Value(&a.Orientation),
			huh.NewSelect[string]().Title("Activation").
				Options(huh.NewOption("Follow focus", "automatic"), huh.NewOption("Enter or click", "manual")).
				Value(&a.Activation),
			huh.NewConfirm().Title("Wrap around at the ends?").Value(&a.Circular),
			huh.NewConfirm().Title("Allow collapsing the active item?").Value(&a.Collapsible),
		)).Run(); err != nil {
			return nil, err
		}
	}

	if err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title("Enable 1-9 shortcuts?").Value(&a.NumericShortcuts),
		huh.NewConfirm().Title("Focus the widget on start?").Value(&a.AutoFocus),
		huh.NewInput().Title("Announcement delay (e.g. 1s, 750ms)").Value(&a.AnnounceDelay).Validate(validateDuration),
	)).Run(); err != nil {
		return nil, err
	}

	return Marshal(a)
}

func validateItems(s string) error {
	_, err := parseItems(s)
	return err
}

func validateDuration(s string) error {
	if s == "" {
		return nil
	}

	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fmt.Errorf("must be a positive duration (e.g. 1s, 500ms)")
	}

	return nil
}

// parseItems reads the items text. Blank lines are skipped.
func parseItems(s string) ([]itemYAML, error) {
	var items []itemYAML
	seen := make(map[string]bool)

	for n, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var it itemYAML
		if rest, ok := strings.CutPrefix(line, "~"); ok {
			it.Disabled = true
			line = strings.TrimSpace(rest)
		}

		id, label, _ := strings.Cut(line, ":")
		it.ID = strings.TrimSpace(id)
		it.Label = strings.TrimSpace(label)

		if it.ID == "" {
			return nil, fmt.Errorf("line %d: missing id", n+1)
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("line %d: duplicate id %q", n+1, it.ID)
		}
		seen[it.ID] = true
		items = append(items, it)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("at least one item is required")
	}

	return items, nil
}

// YAML output types. Fields are omitted when empty so that the output never
// sets value, which would make the widget controlled.

type itemYAML struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

type configYAML struct {
	Name             string     `yaml:"name,omitempty"`
	AriaLabel        string     `yaml:"aria_label,omitempty"`
	Description      string     `yaml:"description,omitempty"`
	Mode             string     `yaml:"mode,omitempty"`
	Orientation      string     `yaml:"orientation,omitempty"`
	Activation       string     `yaml:"activation,omitempty"`
	Circular         bool       `yaml:"circular,omitempty"`
	Collapsible      bool       `yaml:"collapsible,omitempty"`
	NumericShortcuts bool       `yaml:"numeric_shortcuts,omitempty"`
	AutoFocus        bool       `yaml:"auto_focus,omitempty"`
	AnnounceDelay    string     `yaml:"announce_delay,omitempty"`
	Items            []itemYAML `yaml:"items"`
}

// Marshal renders the answers as config YAML.
func Marshal(a Answers) ([]byte, error) {
	items, err := parseItems(a.Items)
	if err != nil {
		return nil, err
	}

	yc := configYAML{
		Name:             strings.TrimSpace(a.Name),
		AriaLabel:        strings.TrimSpace(a.AriaLabel),
		Description:      strings.TrimSpace(a.Description),
		Mode:             a.Mode,
		Orientation:      a.Orientation,
		Activation:       a.Activation,
		Circular:         a.Circular,
		Collapsible:      a.Collapsible,
		NumericShortcuts: a.NumericShortcuts,
		AutoFocus:        a.AutoFocus,
		AnnounceDelay:    a.AnnounceDelay,
		Items:            items,
	}

	return yaml.Marshal(yc)
}
