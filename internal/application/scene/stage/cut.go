package stage

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/domain/effect"
	"github.com/younwookim/hikari/internal/domain/entity"
	"github.com/younwookim/hikari/internal/domain/sprite"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/config"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

// Worm wanders the field and splits in two when cut.
type Worm struct {
	entity.Body
	Size     float64
	Phase    float64
	Segments int
}

type slashLine struct {
	x1, y1, x2, y2 float64
	life           float64
}

// Cut is stage 2: slash worms, which split into smaller worms.
type Cut struct {
	play
	cfg config.CutTuning

	count    int
	worms    []Worm
	trail    []slashLine
	dragging bool
	lastX    float64
	lastY    float64

	saidHalf  bool
	saidCrowd bool
}

func NewCut(ctl scene.Controller, id int) *Cut {
	s := &Cut{
		play: newPlay(ctl, id, "cut"),
		cfg:  ctl.Tuning().Cut,
	}
	w, h := s.size()
	for i := 0; i < s.cfg.InitialWorms; i++ {
		s.spawn(50+s.rnd()*(w-100), 100+s.rnd()*(h-200), 30+s.rnd()*20)
	}
	return s
}

func (s *Cut) OnEnter() {
	s.play.OnEnter()
	s.react("start")
}

// Count is the number of cuts so far.
func (s *Cut) Count() int { return s.count }

// Worms are the live worms.
func (s *Cut) Worms() []Worm { return s.worms }

func (s *Cut) spawn(x, y, size float64) {
	if size < s.cfg.MinSize {
		return
	}
	s.worms = append(s.worms, Worm{
		Body:     entity.Body{X: x, Y: y, VX: (s.rnd() - 0.5) * 60, VY: (s.rnd() - 0.5) * 60},
		Size:     size,
		Phase:    s.rnd() * math.Pi * 2,
		Segments: max(3, int(size/5)),
	})
}

func (s *Cut) Update(dt float64) error {
	if !s.tick(dt) {
		return nil
	}

	w, h := s.size()
	field := entity.Rect{X: 20, Y: 60, W: w - 40, H: h - 120}
	for i := range s.worms {
		wm := &s.worms[i]
		wm.Phase += dt * 3
		wm.Integrate(dt, 0)
		wm.BounceWithin(field)
	}

	kept := s.trail[:0]
	for _, l := range s.trail {
		l.life -= dt * 3
		if l.life > 0 {
			kept = append(kept, l)
		}
	}
	s.trail = kept

	s.trim()

	if s.count >= s.cfg.Goal/2 && !s.saidHalf {
		s.saidHalf = true
		s.sayFor(s.reaction("50"), longMessageTime)
	}
	if len(s.worms) > s.cfg.CrowdWarning && !s.saidCrowd {
		s.saidCrowd = true
		s.sayFor(s.reaction("crowd"), longMessageTime)
	}
	return nil
}

// trim drops the smallest worms once the field gets too crowded.
func (s *Cut) trim() {
	if len(s.worms) <= s.cfg.MaxWorms {
		return
	}
	sort.SliceStable(s.worms, func(i, j int) bool { return s.worms[i].Size < s.worms[j].Size })
	s.worms = append([]Worm(nil), s.worms[len(s.worms)-s.cfg.TrimTo:]...)
}

func (s *Cut) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.size()
	s.drawBackground(screen, "#1A3510")

	for _, l := range s.trail {
		vector.StrokeLine(screen, float32(l.x1), float32(l.y1), float32(l.x2), float32(l.y2), 3,
			render.Fade(render.Hex("#FFFF64"), l.life), true)
	}
	for _, wm := range s.worms {
		drawWorm(screen, kit, wm)
	}
	s.particles.Draw(screen, kit)
	kit.DrawCounter(screen, s.count, s.cfg.Goal, "Cut", w)
	s.drawHikari(screen, 50, h-60, 40)
	s.drawEnd(screen)
}

func drawWorm(screen *ebiten.Image, kit *render.Kit, wm Worm) {
	seg := wm.Size / float64(wm.Segments)
	head := render.Hex("#D2691E")
	body := render.Hex("#8B4513")
	for i := 0; i < wm.Segments; i++ {
		t := float64(i) / float64(wm.Segments)
		ox := math.Sin(wm.Phase+float64(i)*0.8) * wm.Size * 0.3
		r := seg * 0.5 * (1 - t*0.3)
		clr := body
		if i == 0 {
			clr = head
		}
		vector.DrawFilledCircle(screen, float32(wm.X+ox), float32(wm.Y+float64(i)*seg), float32(r), clr, true)
	}
	kit.DrawSprite(screen, sprite.WormHead, wm.X, wm.Y, math.Max(8, wm.Size*0.3), 1)
}

func (s *Cut) OnClick(x, y float64) {
	if s.finishClick() {
		return
	}
	s.slash(x, y)
}

func (s *Cut) OnDragStart(x, y float64) {
	s.dragging = true
	s.lastX, s.lastY = x, y
}

func (s *Cut) OnDragMove(x, y float64) {
	if !s.dragging || s.phase.Finished() {
		return
	}
	s.trail = append(s.trail, slashLine{x1: s.lastX, y1: s.lastY, x2: x, y2: y, life: 1})
	s.slash(x, y)
	s.lastX, s.lastY = x, y
}

func (s *Cut) OnDragEnd(x, y float64) {
	s.dragging = false
}

// slash cuts the topmost worm under (x, y).
func (s *Cut) slash(x, y float64) {
	if s.phase.Finished() {
		return
	}
	for i := len(s.worms) - 1; i >= 0; i-- {
		wm := s.worms[i]
		if !wm.Within(x, y, wm.Size*s.cfg.HitScale) {
			continue
		}
		s.ctl.Audio().Play(audio.CueSlash)
		s.particles.Emit(wm.X, wm.Y, 5, effect.EmitOptions{
			Sprites: []sprite.ID{sprite.Lightning, sprite.Explosion}, Spread: 100, Size: 20,
		})
		s.worms = append(s.worms[:i], s.worms[i+1:]...)
		half := wm.Size * s.cfg.SplitScale
		s.spawn(wm.X-15, wm.Y, half)
		s.spawn(wm.X+15, wm.Y, half)
		s.count++

		if s.count >= s.cfg.Goal {
			s.sayFor(s.reaction("100"), longMessageTime)
			s.clear()
		}
		return
	}
}
