// Package menu holds the narrative and hub scenes: title, opening, stage
// select, stage clear and ending.
package menu

import "github.com/younwookim/hikari/internal/infrastructure/render"

// typewriter reveals a list of lines cell by cell.
type typewriter struct {
	lines []string
	index int
	shown float64 // cells revealed of the current line
	rate  float64 // cells per second
}

func newTypewriter(lines []string, rate float64) *typewriter {
	return &typewriter{lines: lines, rate: rate}
}

func (t *typewriter) current() string {
	if t.index >= len(t.lines) {
		return ""
	}
	return t.lines[t.index]
}

func (t *typewriter) update(dt float64) {
	if full := render.Cells(t.current()); t.shown < float64(full) {
		t.shown += dt * t.rate
	}
}

// text is the visible part of the current line.
func (t *typewriter) text() string {
	return render.Reveal(t.current(), int(t.shown))
}

func (t *typewriter) lineDone() bool {
	return t.shown >= float64(render.Cells(t.current()))
}

// advance completes the current line, or moves to the next one when it is
// already complete. It reports whether the line index changed.
func (t *typewriter) advance() bool {
	if !t.lineDone() {
		t.shown = float64(render.Cells(t.current()))
		return false
	}
	t.index++
	t.shown = 0
	return true
}

func (t *typewriter) finished() bool {
	return t.index >= len(t.lines)
}
