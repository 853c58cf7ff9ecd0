// File: internal/ui/typewriter.go
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var indicatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

// TypewriterTickMsg advances the reveal animation. Target and Index let
// stale ticks from a superseded content string be ignored.
type TypewriterTickMsg struct {
	Target string
	Index  int
}

// Typewriter reveals text incrementally. With speed > 0 (replay mode) a
// complete string is revealed one rune per tick, restarting whenever the
// content identity changes. With speed == 0 (live mode) the given string
// is shown verbatim: during streaming the increments are already paced
// by the server, so the renderer must not double-animate.
type Typewriter struct {
	raw       string
	target    []rune
	index     int
	speed     time.Duration
	streaming bool
}

// NewTypewriter creates a renderer. speed is the per-rune reveal delay;
// zero selects live mode.
func NewTypewriter(speed time.Duration) Typewriter {
	return Typewriter{speed: speed}
}

// SetContent replaces the text being revealed. In replay mode the
// reveal restarts from scratch and the returned command drives the
// first tick; in live mode the text displays immediately.
func (t *Typewriter) SetContent(content string) tea.Cmd {
	if content == t.raw {
		return nil
	}
	t.raw = content
	t.target = []rune(content)

	if t.speed == 0 {
		t.index = len(t.target)
		return nil
	}
	t.index = 0
	if len(t.target) == 0 {
		return nil
	}
	return t.tick(1)
}

// SetStreaming marks whether the backing stream is still open, which
// keeps the trailing indicator visible in live mode.
func (t *Typewriter) SetStreaming(open bool) {
	t.streaming = open
}

// Update consumes tick messages, advancing the reveal and scheduling
// the next tick while runes remain.
func (t *Typewriter) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TypewriterTickMsg)
	if !ok || t.speed == 0 {
		return nil
	}
	// Ignore ticks for content that has since been replaced.
	if tick.Target != t.raw || tick.Index > len(t.target) {
		return nil
	}
	t.index = tick.Index
	if t.index < len(t.target) {
		return t.tick(t.index + 1)
	}
	return nil
}

func (t *Typewriter) tick(next int) tea.Cmd {
	target := t.raw
	return tea.Tick(t.speed, func(time.Time) tea.Msg {
		return TypewriterTickMsg{Target: target, Index: next}
	})
}

// Revealed returns the currently visible portion of the content.
func (t Typewriter) Revealed() string {
	return string(t.target[:t.index])
}

// Done reports whether the reveal is complete and the stream closed.
func (t Typewriter) Done() bool {
	return t.index >= len(t.target) && !t.streaming
}

// View renders the revealed text with a trailing indicator glyph while
// the reveal is incomplete or the stream is still open.
func (t Typewriter) View() string {
	out := RenderContent(t.Revealed())
	if !t.Done() {
		out += indicatorStyle.Render(" ●")
	}
	return out
}
