package initwizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/germanamz/rover/pkg/engine"
)

func TestParseItems(t *testing.T) {
	items, err := parseItems("general: General\n\n~billing: Billing\nraw\n")
	require.NoError(t, err)
	assert.Equal(t, []itemYAML{
		{ID: "general", Label: "General"},
		{ID: "billing", Label: "Billing", Disabled: true},
		{ID: "raw"},
	}, items)
}

func TestParseItems_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "\n  \n", "at least one item"},
		{"missing id", ": Label", "line 1: missing id"},
		{"duplicate", "a\nb\na: Again", `line 3: duplicate id "a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseItems(tt.text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateDuration(t *testing.T) {
	assert.NoError(t, validateDuration(""))
	assert.NoError(t, validateDuration("750ms"))
	assert.Error(t, validateDuration("soon"))
	assert.Error(t, validateDuration("-1s"))
}

func TestMarshal_LoadsAsUncontrolledConfig(t *testing.T) {
	d := kindDefaults["accordion"]
	data, err := Marshal(Answers{
		Name:          "faq",
		Description:   "Common questions.",
		Mode:          d.Mode,
		Orientation:   d.Orientation,
		Activation:    d.Activation,
		Collapsible:   d.Collapsible,
		AnnounceDelay: "1s",
		Items:         "shipping: Shipping\n~returns: Returns",
	})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "value")

	var cfg engine.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	require.NoError(t, cfg.Validate())

	assert.Nil(t, cfg.Value)
	assert.Equal(t, "multi", cfg.Mode)
	assert.True(t, cfg.Collapsible)
	require.Len(t, cfg.Items, 2)
	assert.True(t, cfg.Items[1].Disabled)
}

func TestMarshal_RejectsBadItems(t *testing.T) {
	_, err := Marshal(Answers{Items: ""})
	require.Error(t, err)
}

func TestKindDefaults_AreValid(t *testing.T) {
	for kind, d := range kindDefaults {
		t.Run(kind, func(t *testing.T) {
			data, err := Marshal(Answers{
				Name:        kind,
				Mode:        d.Mode,
				Orientation: d.Orientation,
				Activation:  d.Activation,
				Circular:    d.Circular,
				Collapsible: d.Collapsible,
				Items:       "a: A\nb: B",
			})
			require.NoError(t, err)

			var cfg engine.Config
			require.NoError(t, yaml.Unmarshal(data, &cfg))
			assert.NoError(t, cfg.Validate())
		})
	}
}
