package stage

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/domain/effect"
	"github.com/younwookim/hikari/internal/domain/entity"
	"github.com/younwookim/hikari/internal/domain/sprite"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/config"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

// Leftovers from every other stage float around the bathroom.
var flotsam = []sprite.ID{
	sprite.Poop, sprite.WormHead, sprite.Lipstick, sprite.Star, sprite.Coin, sprite.Knife,
	sprite.Bike, sprite.Ghost, sprite.Bomb, sprite.Rainbow, sprite.Cloud, sprite.GachaMachine,
}

// Items smaller than this have gone down the drain.
const drainedSize = 3.0

// FloatingItem drifts until it is flushed, then swirls into the bowl.
type FloatingItem struct {
	X, Y    float64
	VX      float64
	Size    float64
	Phase   float64
	Sprite  sprite.ID
	Flushed bool
}

// Flush is stage 6, the finale: flush everything away.
type Flush struct {
	play
	cfg config.FlushTuning

	items      []FloatingItem
	flushes    int
	shake      float64
	collapsing bool
	collapse   float64
}

func NewFlush(ctl scene.Controller, id int) *Flush {
	s := &Flush{
		play: newPlay(ctl, id, "flush"),
		cfg:  ctl.Tuning().Flush,
	}
	w, h := s.size()
	rng := ctl.Rand()
	for i := 0; i < s.cfg.Items; i++ {
		s.items = append(s.items, FloatingItem{
			Sprite: flotsam[rng.Intn(len(flotsam))],
			X:      s.rnd() * w,
			Y:      s.rnd()*h*0.6 + 50,
			Size:   20 + s.rnd()*25,
			VX:     (s.rnd() - 0.5) * 30,
			Phase:  s.rnd() * math.Pi * 2,
		})
	}
	return s
}

func (s *Flush) OnEnter() {
	s.play.OnEnter()
	s.react("start")
}

// Flushes is how many times the button was pressed.
func (s *Flush) Flushes() int { return s.flushes }

// Items are the items still visible.
func (s *Flush) Items() []FloatingItem { return s.items }

// Collapsing reports whether the world is falling apart.
func (s *Flush) Collapsing() bool { return s.collapsing }

func (s *Flush) drain() (float64, float64) {
	w, h := s.size()
	return w / 2, h * 0.85
}

func (s *Flush) Update(dt float64) error {
	if !s.tick(dt) {
		return nil
	}
	if s.shake > 0 {
		s.shake -= dt
	}

	if s.collapsing {
		s.collapse -= dt
		if s.collapse <= 0 {
			s.react("done")
			s.clear()
		}
		return nil
	}

	cx, cy := s.drain()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.Flushed {
			it.X += (cx - it.X) * dt * 2
			it.Y += (cy - it.Y) * dt * 2
			it.Phase += dt * 10
			it.X += math.Sin(it.Phase) * 30 * dt
			it.Size *= 1 - dt*0.5
		} else {
			it.Phase += dt
			it.X += it.VX*dt + math.Sin(it.Phase)*10*dt
			it.Y += math.Sin(it.Phase*0.7) * 5 * dt
		}
		if it.Size > drainedSize {
			kept = append(kept, it)
		}
	}
	s.items = kept

	if s.flushes >= s.cfg.Goal && s.allFlushed() {
		s.collapsing = true
		s.collapse = s.cfg.CollapseTime
	}
	return nil
}

func (s *Flush) allFlushed() bool {
	for _, it := range s.items {
		if !it.Flushed {
			return false
		}
	}
	return true
}

func (s *Flush) flushButton() entity.Rect {
	w, h := s.size()
	return entity.Rect{X: w/2 - 100, Y: h*0.7 - 27.5, W: 200, H: 55}
}

func (s *Flush) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.size()
	var ox, oy float64
	if s.shake > 0 {
		ox, oy = math.Sin(s.clock*90)*4, math.Cos(s.clock*70)*4
	}

	s.drawBackground(screen, "#B0E0E6")

	switch {
	case s.phase.Finished():
		screen.Fill(render.White)
		s.particles.Draw(screen, kit)
		kit.DrawSprite(screen, sprite.Toilet, w/2-120, h/2, 24, 1)
		kit.DrawCenterText(screen, "All flushed!", w/2, h/2, 32, render.Pink)
		kit.DrawSprite(screen, sprite.Wave, w/2+110, h/2, 24, 1)
		s.drawEnd(screen)
		return
	case s.collapsing:
		progress := 1 - s.collapse/s.cfg.CollapseTime
		kit.FillRect(screen, entity.Rect{W: w, H: h}, render.Fade(render.White, progress))
		kit.DrawCenterText(screen, "The game world is falling apart...!", w/2, h*0.4, 22, render.Gold)
		kit.DrawBubble(screen, w/2, h*0.6, 50, s.clock, "I can go home!")
		s.particles.Draw(screen, kit)
		return
	}

	for _, it := range s.items {
		alpha := 1.0
		if it.Flushed {
			alpha = math.Max(0.2, it.Size/20)
		}
		kit.DrawSprite(screen, it.Sprite, it.X+ox, it.Y+oy, it.Size, alpha)
	}

	cx, cy := s.drain()
	cx, cy = cx+ox, cy+oy
	kit.DrawSprite(screen, sprite.Toilet, cx, cy, 50, 1)
	if s.shake > 0 {
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(60+s.shake*40),
			render.Fade(color.RGBA{100, 180, 255, 255}, 0.3), true)
	}

	btn := s.flushButton()
	pulse := math.Sin(s.clock*5) * 0.05
	kit.DrawButton(screen, "Flush!!", entity.Rect{
		X: btn.X - btn.W*pulse/2, Y: btn.Y - btn.H*pulse/2, W: btn.W * (1 + pulse), H: btn.H * (1 + pulse),
	}, render.Hex("#4169E1"))

	ratio := float64(s.flushes) / float64(s.cfg.Goal)
	kit.DrawProgressBar(screen, ratio, entity.Rect{X: w * 0.15, Y: 55, W: w * 0.7, H: 16}, render.Hex("#4169E1"))
	kit.DrawText(screen, fmt.Sprintf("%d / %d mash!", s.flushes, s.cfg.Goal), w/2, 63,
		render.TextStyle{Size: 11, Color: render.White, Align: text.AlignCenter})

	s.particles.Draw(screen, kit)
	s.drawHikari(screen, 60, h-60, 50)
}

func (s *Flush) OnClick(x, y float64) {
	if s.finishClick() || s.collapsing {
		return
	}
	if !s.flushButton().Contains(x, y) {
		return
	}

	s.flushes++
	s.shake = 0.15
	s.ctl.Audio().Play(audio.CueFlush)

	var floating []int
	for i, it := range s.items {
		if !it.Flushed {
			floating = append(floating, i)
		}
	}
	rng := s.ctl.Rand()
	for n := min(s.cfg.PerFlush, len(floating)); n > 0; n-- {
		k := rng.Intn(len(floating))
		s.items[floating[k]].Flushed = true
		floating = append(floating[:k], floating[k+1:]...)
	}

	cx, cy := s.drain()
	s.particles.Emit(cx, cy, 5, effect.EmitOptions{
		Sprites: []sprite.ID{sprite.WaterDrop, sprite.Wave, sprite.Splash}, Spread: 120, Size: 20, Upward: 100,
	})
	if s.flushes%10 == 0 {
		s.sayFor(s.reaction("flushing"), 1.5)
	}
}
