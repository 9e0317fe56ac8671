package announce

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes cmd on its own goroutine, like the Bubble Tea command runner.
func run(cmd tea.Cmd) <-chan tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	return ch
}

func TestAnnounce_ClearsAfterDelay(t *testing.T) {
	c := New("w", 10*time.Millisecond, Polite)

	cmd := c.Announce("Tab A activated")
	require.NotNil(t, cmd)
	assert.Equal(t, Announcing, c.State())
	assert.Equal(t, "Tab A activated", c.LiveText())

	select {
	case msg := <-run(cmd):
		cm, ok := msg.(ClearMsg)
		require.True(t, ok)
		assert.True(t, c.HandleClear(cm))
	case <-time.After(time.Second):
		t.Fatal("clear command never fired")
	}

	assert.Equal(t, Idle, c.State())
	assert.Empty(t, c.Message())
	assert.False(t, c.TimerPending())
}

func TestAnnounce_ReplacesWithoutStacking(t *testing.T) {
	c := New("w", 20*time.Millisecond, Polite)

	first := run(c.Announce("one"))
	second := run(c.Announce("two"))

	assert.Equal(t, "two", c.Message())

	select {
	case msg := <-first:
		assert.Nil(t, msg, "restarting the timer cancels the previous one")
	case <-time.After(time.Second):
		t.Fatal("first command did not return")
	}

	msg := <-second
	require.IsType(t, ClearMsg{}, msg)
	assert.True(t, c.HandleClear(msg.(ClearMsg)))
	assert.Empty(t, c.Message())
}

func TestHandleClear_IgnoresStaleGeneration(t *testing.T) {
	c := New("w", time.Hour, Polite)
	c.Announce("one")
	c.Announce("two")

	assert.False(t, c.HandleClear(ClearMsg{Channel: "w", Gen: 1}))
	assert.False(t, c.HandleClear(ClearMsg{Channel: "other", Gen: 2}))
	assert.Equal(t, "two", c.Message())
	assert.True(t, c.HandleClear(ClearMsg{Channel: "w", Gen: 2}))
}

func TestDestroy_CancelsPendingTimer(t *testing.T) {
	c := New("w", time.Hour, Polite)

	pending := run(c.Announce("bye"))
	require.True(t, c.TimerPending())

	c.Destroy()

	select {
	case msg := <-pending:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("destroy did not cancel the timer")
	}

	assert.False(t, c.TimerPending())
	assert.Nil(t, c.Announce("after destroy"))
	assert.Equal(t, Idle, c.State())
}

func TestAnnounce_EmptyIgnored(t *testing.T) {
	c := New("w", 0, Polite)
	assert.Nil(t, c.Announce(""))
	assert.Equal(t, DefaultDelay, c.Delay())
}

func TestLiveText_PolitenessOff(t *testing.T) {
	c := New("w", time.Hour, Off)
	c.Announce("quiet")

	assert.Equal(t, Announcing, c.State())
	assert.Equal(t, "quiet", c.Message())
	assert.Empty(t, c.LiveText())
	c.Destroy()
}

func TestPhrases_Fill(t *testing.T) {
	p := Phrases{Activated: Expanded}.Fill()

	assert.Equal(t, "Billing expanded", p.Activated("Billing", 1, 3))
	assert.Equal(t, "Billing unavailable", p.Unavailable("Billing"))
	assert.Equal(t, "Step 2 of 4: Shipping", StepCurrent("Shipping", 2, 4))
	assert.Equal(t, "Start date selected: Mar 3", RangeStart("Mar 3"))
}

func TestParsePoliteness(t *testing.T) {
	p, err := ParsePoliteness("assertive")
	require.NoError(t, err)
	assert.Equal(t, Assertive, p)

	_, err = ParsePoliteness("loud")
	assert.Error(t, err)
}
