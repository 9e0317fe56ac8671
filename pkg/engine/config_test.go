package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/germanamz/rover/pkg/composite/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
name: settings
mode: single
orientation: horizontal
activation: manual
circular: true
numeric_shortcuts: true
auto_focus: true
aria_label: Settings sections
description: Use the arrow keys to move between sections.
politeness: assertive
announce_delay: 750ms
default_value: [billing]
items:
  - id: profile
    label: Profile
  - id: billing
    label: Billing
  - id: danger
    label: Danger zone
    disabled: true
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "widget.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "settings", cfg.Name)
	assert.Equal(t, "manual", cfg.Activation)
	assert.True(t, cfg.Circular)
	assert.True(t, cfg.NumericShortcuts)
	assert.True(t, cfg.AutoFocus)
	assert.Equal(t, "Settings sections", cfg.AriaLabel)
	assert.Equal(t, "750ms", cfg.AnnounceDelay)
	assert.Nil(t, cfg.Value, "value is absent so the widget is uncontrolled")
	assert.Equal(t, []string{"billing"}, cfg.DefaultValue)

	require.Len(t, cfg.Items, 3)
	assert.Equal(t, "Billing", cfg.Items[1].Label)
	assert.True(t, cfg.Items[2].Disabled)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/no/such/file.yaml")
	assert.Error(t, err)
}

func TestLoadConfig_ExpandsEnvVars(t *testing.T) {
	t.Setenv("ROVER_TEST_LABEL", "From env")

	cfg, err := LoadConfig(writeConfig(t, `
items:
  - id: a
    label: ${ROVER_TEST_LABEL}
`))
	require.NoError(t, err)
	assert.Equal(t, "From env", cfg.Items[0].Label)
}

func TestLoadConfig_EmptyValueIsControlled(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
value: []
items:
  - id: a
`))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Value)
	assert.Empty(t, cfg.Value)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "items: [oops"))
	assert.ErrorContains(t, err, "engine: parse config")
}

func TestConfig_Validate(t *testing.T) {
	items := []item.Item{{ID: "a"}, {ID: "b"}}

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"valid empty", Config{}, ""},
		{"duplicate id", Config{Items: []item.Item{{ID: "a"}, {ID: "a"}}}, "duplicate id"},
		{"empty id", Config{Items: []item.Item{{Label: "x"}}}, "empty id"},
		{"bad mode", Config{Items: items, Mode: "some"}, "unknown mode"},
		{"bad orientation", Config{Items: items, Orientation: "diagonal"}, "unknown orientation"},
		{"bad activation", Config{Items: items, Activation: "eager"}, "activation"},
		{"bad politeness", Config{Items: items, Politeness: "loud"}, "politeness"},
		{"bad delay", Config{Items: items, AnnounceDelay: "soon"}, "invalid announce_delay"},
		{"zero delay", Config{Items: items, AnnounceDelay: "0s"}, "must be positive"},
		{"single with two values", Config{Items: items, Value: []string{"a", "b"}}, "at most one value"},
		{"single with two defaults", Config{Items: items, DefaultValue: []string{"a", "b"}}, "at most one default_value"},
		{"multi with two values", Config{Items: items, Mode: "multi", Value: []string{"a", "b"}}, ""},
		{"value and default", Config{Items: items, Value: []string{"a"}, DefaultValue: []string{"b"}}, "mutually exclusive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, "engine: config")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestConfig_Validate_WrapsSentinel(t *testing.T) {
	err := Config{Items: []item.Item{{ID: "a"}, {ID: "a"}}}.Validate()
	assert.ErrorIs(t, err, item.ErrDuplicateID)
}
