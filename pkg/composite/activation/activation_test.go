package activation

import (
	"testing"

	"github.com/germanamz/rover/pkg/composite/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	tests := []struct {
		mode Mode
		src  navigation.Source
		want bool
	}{
		{Automatic, navigation.Keyboard, true},
		{Automatic, navigation.Pointer, false},
		{Automatic, navigation.Programmatic, false},
		{Manual, navigation.Keyboard, false},
		{Manual, navigation.Pointer, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.src.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, For(tt.mode).SelectOnFocus(tt.src))
		})
	}
}

func TestPolicyFunc(t *testing.T) {
	p := PolicyFunc(func(src navigation.Source) bool { return src == navigation.Pointer })
	assert.True(t, p.SelectOnFocus(navigation.Pointer))
	assert.False(t, p.SelectOnFocus(navigation.Keyboard))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("manual")
	require.NoError(t, err)
	assert.Equal(t, Manual, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Automatic, m)

	_, err = ParseMode("lazy")
	assert.Error(t, err)
}
