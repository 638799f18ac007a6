package effect

import (
	"math"
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hikari/internal/domain/sprite"
)

type recordingDrawer struct {
	ids    []sprite.ID
	alphas []float64
}

func (d *recordingDrawer) DrawSprite(_ *ebiten.Image, id sprite.ID, _, _, _, alpha float64) {
	d.ids = append(d.ids, id)
	d.alphas = append(d.alphas, alpha)
}

func newSystem() *ParticleSystem {
	return NewParticleSystem(rand.New(rand.NewSource(42)))
}

func TestEmit_ExactCount(t *testing.T) {
	tests := []int{0, 1, 12, 500}
	for _, n := range tests {
		ps := newSystem()
		ps.Emit(100, 100, n, EmitOptions{})
		assert.Equal(t, n, ps.Len())
	}
}

func TestEmit_Defaults(t *testing.T) {
	ps := newSystem()
	ps.Emit(50, 60, 200, EmitOptions{})

	for _, p := range ps.Particles() {
		assert.Equal(t, sprite.Sparkle, p.Sprite)
		assert.Equal(t, 50.0, p.X)
		assert.Equal(t, 60.0, p.Y)
		assert.Equal(t, 1.0, p.Life)
		assert.GreaterOrEqual(t, p.Size, MinSize)
		assert.Less(t, p.Size, MinSize+SizeRange)
		assert.GreaterOrEqual(t, p.Decay, MinDecay)
		assert.Less(t, p.Decay, MinDecay+DecayRange)
		assert.LessOrEqual(t, math.Abs(p.VX), DefaultSpread/2)
		assert.LessOrEqual(t, math.Abs(p.VY), DefaultSpread/2)
	}
}

func TestEmit_Options(t *testing.T) {
	ps := newSystem()
	ps.Emit(0, 0, 300, EmitOptions{
		Sprites: []sprite.ID{sprite.Heart, sprite.Star},
		Spread:  40,
		Size:    25,
		Upward:  100,
		Gravity: 300,
	})

	seen := map[sprite.ID]bool{}
	for _, p := range ps.Particles() {
		seen[p.Sprite] = true
		assert.Equal(t, 25.0, p.Size)
		assert.Equal(t, 300.0, p.Gravity)
		assert.LessOrEqual(t, math.Abs(p.VX), 20.0)
		// vy in [-20, 20] shifted up by 100
		assert.GreaterOrEqual(t, p.VY, -120.0)
		assert.LessOrEqual(t, p.VY, -80.0)
	}
	assert.True(t, seen[sprite.Heart])
	assert.True(t, seen[sprite.Star])
	assert.Len(t, seen, 2)
}

func TestUpdate_CountNeverIncreases(t *testing.T) {
	ps := newSystem()
	ps.Emit(0, 0, 50, EmitOptions{})

	prev := ps.Len()
	for i := 0; i < 100; i++ {
		ps.Update(1.0 / 60.0)
		assert.LessOrEqual(t, ps.Len(), prev)
		prev = ps.Len()
	}
}

func TestUpdate_LongFramesDrainWithinFiftyTicks(t *testing.T) {
	ps := newSystem()
	ps.Emit(100, 100, 12, EmitOptions{Spread: 200})

	ticks := 0
	for ps.Len() > 0 {
		ps.Update(1.0)
		ticks++
		require.LessOrEqual(t, ticks, 50)
	}
}

func TestUpdate_ClampsStep(t *testing.T) {
	ps := newSystem()
	ps.Emit(0, 0, 20, EmitOptions{Spread: 400})
	before := append([]Particle(nil), ps.Particles()...)

	ps.Update(5.0)

	after := ps.Particles()
	require.Len(t, after, len(before))
	for i := range after {
		dx := math.Abs(after[i].X - before[i].X)
		dy := math.Abs(after[i].Y - before[i].Y)
		assert.LessOrEqual(t, dx, MaxStep*200+1e-9)
		assert.LessOrEqual(t, dy, MaxStep*200+1e-9)
	}
}

func TestUpdate_Gravity(t *testing.T) {
	ps := newSystem()
	ps.Emit(0, 0, 1, EmitOptions{Gravity: 100})
	vy := ps.Particles()[0].VY

	ps.Update(0.05)
	assert.InDelta(t, vy+5, ps.Particles()[0].VY, 1e-9)
}

func TestDraw_AlphaFollowsLife(t *testing.T) {
	ps := newSystem()
	ps.Emit(0, 0, 3, EmitOptions{Sprites: []sprite.ID{sprite.Coin}})
	ps.Update(0.05)

	d := &recordingDrawer{}
	ps.Draw(nil, d)
	require.Len(t, d.ids, 3)
	for i, p := range ps.Particles() {
		assert.Equal(t, sprite.Coin, d.ids[i])
		assert.Equal(t, p.Life, d.alphas[i])
		assert.Less(t, d.alphas[i], 1.0)
	}
}

func TestClear(t *testing.T) {
	ps := newSystem()
	ps.Emit(0, 0, 10, EmitOptions{})
	ps.Clear()
	assert.Equal(t, 0, ps.Len())
}
