package focus

import (
	"testing"

	"github.com/germanamz/rover/pkg/composite/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTarget struct {
	mounted map[int]bool
	calls   []int
}

func (r *recordingTarget) Has(i int) bool { return r.mounted[i] }
func (r *recordingTarget) Focus(i int)    { r.calls = append(r.calls, i) }

func commit(t *testing.T, c *Coordinator, tgt Target) bool {
	t.Helper()
	cmd := c.CommitCmd()
	require.NotNil(t, cmd)
	msg, ok := cmd().(CommitMsg)
	require.True(t, ok)
	return c.Commit(msg, tgt)
}

func TestMove_KeyboardModeBySource(t *testing.T) {
	c := New("w")

	c.Move(1, navigation.Keyboard)
	assert.True(t, c.KeyboardMode())

	c.Move(2, navigation.Programmatic)
	assert.True(t, c.KeyboardMode(), "programmatic moves keep the mode")

	c.Move(0, navigation.Pointer)
	assert.False(t, c.KeyboardMode())
	assert.Equal(t, 0, c.Index())
}

func TestCommit_AppliesAfterRender(t *testing.T) {
	c := New("w")
	tgt := &recordingTarget{mounted: map[int]bool{0: true, 1: true}}

	c.Move(1, navigation.Keyboard)
	assert.Empty(t, tgt.calls, "nothing is applied during the transition")

	assert.True(t, commit(t, c, tgt))
	assert.Equal(t, []int{1}, tgt.calls)
	assert.False(t, c.Pending())
	assert.Nil(t, c.CommitCmd())
}

func TestCommit_StaleGenerationIgnored(t *testing.T) {
	c := New("w")
	tgt := &recordingTarget{mounted: map[int]bool{0: true, 1: true}}

	c.Move(0, navigation.Keyboard)
	stale := c.CommitCmd()().(CommitMsg)
	c.Move(1, navigation.Keyboard)

	assert.False(t, c.Commit(stale, tgt))
	assert.True(t, commit(t, c, tgt))
	assert.Equal(t, []int{1}, tgt.calls)
}

func TestCommit_WaitsForElement(t *testing.T) {
	c := New("w")
	tgt := &recordingTarget{mounted: map[int]bool{}}

	c.AutoFocus(0)
	msg := c.CommitCmd()().(CommitMsg)

	assert.False(t, c.Commit(msg, tgt))
	assert.Empty(t, tgt.calls)
	assert.True(t, c.Pending())

	retry, dropped := c.Retry(msg)
	require.NotNil(t, retry)
	assert.False(t, dropped)

	tgt.mounted[0] = true
	again, ok := retry().(CommitMsg)
	require.True(t, ok)
	assert.True(t, c.Commit(again, tgt))
	assert.Equal(t, []int{0}, tgt.calls)
	retry, _ = c.Retry(again)
	assert.Nil(t, retry, "nothing left to retry")
}

func TestRetry_GivesUpAfterBoundedAttempts(t *testing.T) {
	c := New("w")
	tgt := &recordingTarget{mounted: map[int]bool{}}

	c.AutoFocus(0)
	msg := c.CommitCmd()().(CommitMsg)

	for range maxCommitAttempts {
		require.False(t, c.Commit(msg, tgt))
		retry, dropped := c.Retry(msg)
		require.NotNil(t, retry)
		require.False(t, dropped)
	}
	retry, dropped := c.Retry(msg)
	assert.Nil(t, retry)
	assert.True(t, dropped)
	assert.False(t, c.Pending())
	assert.Empty(t, tgt.calls)
}

func TestRetry_StaleMessageIgnored(t *testing.T) {
	c := New("w")
	c.AutoFocus(0)
	msg := c.CommitCmd()().(CommitMsg)
	c.Move(1, navigation.Keyboard)

	retry, dropped := c.Retry(msg)
	assert.Nil(t, retry)
	assert.False(t, dropped)
	assert.True(t, c.Pending(), "the newer move still awaits its own commit")
}

func TestCommit_ForeignOwnerIgnored(t *testing.T) {
	c := New("w")
	tgt := &recordingTarget{mounted: map[int]bool{0: true}}
	c.Move(0, navigation.Keyboard)

	assert.False(t, c.Commit(CommitMsg{Owner: "other", Gen: 1}, tgt))
}

func TestBlur(t *testing.T) {
	c := New("w")
	c.Move(2, navigation.Keyboard)

	assert.False(t, c.Blur(true))
	assert.Equal(t, 2, c.Index())

	assert.True(t, c.Blur(false))
	assert.Equal(t, -1, c.Index())
	assert.False(t, c.KeyboardMode())
	assert.False(t, c.Pending())
}

func TestDetach_DropsPendingEffect(t *testing.T) {
	c := New("w")
	tgt := &recordingTarget{mounted: map[int]bool{0: true}}

	c.Move(0, navigation.Keyboard)
	msg := c.CommitCmd()().(CommitMsg)
	c.Detach()

	assert.False(t, c.Commit(msg, tgt))
	assert.Empty(t, tgt.calls)
	assert.False(t, c.Move(0, navigation.Keyboard))
	assert.Nil(t, c.CommitCmd())
}

func TestRing(t *testing.T) {
	r := NewRing()
	assert.False(t, r.Has(0))

	r.Mount(3)
	assert.True(t, r.Has(2))
	r.Focus(2)
	assert.Equal(t, 2, r.Focused())

	r.Mount(2)
	assert.Equal(t, -1, r.Focused())
}
