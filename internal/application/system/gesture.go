package system

// DefaultClickSlop is the farthest a pointer may travel between down and up
// and still count as a click.
const DefaultClickSlop = 20.0

// Gesture tracks a pointer press to classify its release.
type Gesture struct {
	slop   float64
	active bool
	x, y   float64
}

// NewGesture creates a tracker; slop <= 0 uses DefaultClickSlop.
func NewGesture(slop float64) *Gesture {
	if slop <= 0 {
		slop = DefaultClickSlop
	}
	return &Gesture{slop: slop}
}

// Down records the press position.
func (g *Gesture) Down(x, y float64) {
	g.active = true
	g.x, g.y = x, y
}

// Up ends the press and reports whether it was a click.
// A release without a recorded press is never a click.
func (g *Gesture) Up(x, y float64) bool {
	if !g.active {
		return false
	}
	g.active = false
	dx, dy := x-g.x, y-g.y
	return dx*dx+dy*dy < g.slop*g.slop
}

// Active reports whether a press is in progress.
func (g *Gesture) Active() bool {
	return g.active
}

// Reset forgets any press in progress.
func (g *Gesture) Reset() {
	g.active = false
}
