// File: internal/ui/typewriter_test.go
package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveModeShowsContentVerbatim(t *testing.T) {
	tw := NewTypewriter(0)

	cmd := tw.SetContent("streamed so far")
	assert.Nil(t, cmd, "live mode needs no ticks")
	assert.Equal(t, "streamed so far", tw.Revealed())

	// Growing prefix replacements display immediately too.
	tw.SetContent("streamed so far and more")
	assert.Equal(t, "streamed so far and more", tw.Revealed())
}

func TestLiveModeIndicatorTracksStream(t *testing.T) {
	tw := NewTypewriter(0)
	tw.SetContent("partial")
	tw.SetStreaming(true)

	assert.False(t, tw.Done())
	assert.Contains(t, tw.View(), "●")

	tw.SetStreaming(false)
	assert.True(t, tw.Done())
	assert.NotContains(t, tw.View(), "●")
}

func TestReplayModeRevealsPerRune(t *testing.T) {
	tw := NewTypewriter(10 * time.Millisecond)

	cmd := tw.SetContent("abc")
	require.NotNil(t, cmd, "replay mode schedules the first tick")
	assert.Equal(t, "", tw.Revealed())

	next := tw.Update(TypewriterTickMsg{Target: "abc", Index: 1})
	assert.Equal(t, "a", tw.Revealed())
	require.NotNil(t, next)

	tw.Update(TypewriterTickMsg{Target: "abc", Index: 2})
	assert.Equal(t, "ab", tw.Revealed())

	last := tw.Update(TypewriterTickMsg{Target: "abc", Index: 3})
	assert.Equal(t, "abc", tw.Revealed())
	assert.Nil(t, last, "no further ticks once fully revealed")
	assert.True(t, tw.Done())
}

func TestReplayModeIgnoresStaleTicks(t *testing.T) {
	tw := NewTypewriter(10 * time.Millisecond)
	tw.SetContent("first")
	tw.Update(TypewriterTickMsg{Target: "first", Index: 2})
	require.Equal(t, "fi", tw.Revealed())

	// Replacing the content restarts the reveal.
	tw.SetContent("second")
	assert.Equal(t, "", tw.Revealed())

	// A tick scheduled for the old content must not advance the new one.
	cmd := tw.Update(TypewriterTickMsg{Target: "first", Index: 3})
	assert.Nil(t, cmd)
	assert.Equal(t, "", tw.Revealed())

	tw.Update(TypewriterTickMsg{Target: "second", Index: 3})
	assert.Equal(t, "sec", tw.Revealed())
}

func TestSetContentSameStringIsNoop(t *testing.T) {
	tw := NewTypewriter(10 * time.Millisecond)
	tw.SetContent("hello")
	tw.Update(TypewriterTickMsg{Target: "hello", Index: 4})
	require.Equal(t, "hell", tw.Revealed())

	cmd := tw.SetContent("hello")
	assert.Nil(t, cmd)
	assert.Equal(t, "hell", tw.Revealed(), "identical content must not restart the reveal")
}

func TestViewShowsIndicatorMidReveal(t *testing.T) {
	tw := NewTypewriter(10 * time.Millisecond)
	tw.SetContent("abcdef")
	tw.Update(TypewriterTickMsg{Target: "abcdef", Index: 3})

	assert.Contains(t, tw.View(), "●")
	assert.False(t, tw.Done())

	tw.Update(TypewriterTickMsg{Target: "abcdef", Index: 6})
	assert.NotContains(t, tw.View(), "●")
	assert.True(t, tw.Done())
}

func TestReplayModeHandlesMultibyteRunes(t *testing.T) {
	tw := NewTypewriter(10 * time.Millisecond)
	tw.SetContent("नमस्ते")

	tw.Update(TypewriterTickMsg{Target: "नमस्ते", Index: 2})
	assert.Equal(t, "नम", tw.Revealed(), "reveal advances by runes, not bytes")
}
