package styles

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Billing", Truncate("Billing", 10))
	assert.Equal(t, "Billing", Truncate("Billing", 0))

	got := Truncate("Notifications", 6)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 6)
	assert.Contains(t, got, "…")

	wide := Truncate("設定と通知", 5)
	assert.LessOrEqual(t, runewidth.StringWidth(wide), 5)
}

func TestStep_LookupTable(t *testing.T) {
	assert.Equal(t, "✓", Step(StepCompleted).Marker)
	assert.Equal(t, "✗", Step(StepError).Marker)
	assert.Equal(t, "●", Step(StepCurrent).Marker)
	assert.Equal(t, Step(StepUpcoming).Marker, Step(StepState(42)).Marker)
}

func TestLive_EmptyRendersNothing(t *testing.T) {
	assert.Empty(t, Live(""))
	assert.Contains(t, Live("Tab A activated"), "Tab A activated")
}
