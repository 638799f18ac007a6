package stage

import (
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

// Star ratings get one of these lines.
var makeupVerdicts = []string{"Wait... is that me?", "What a face!", "...a work of art!"}

// Makeup layout.
const (
	toolSize = 50.0
	toolGap  = 8.0
)

// MakeupMark is one dab of makeup on the face.
type MakeupMark struct {
	X, Y  float64
	Color string
	Decal sprite.ID // empty for a plain dab
	Size  float64
}

// Makeup is stage 5: decorate faces as weirdly as possible.
type Makeup struct {
	play
	cfg config.MakeupTuning

	targets []config.NPC
	target  int
	tool    int
	marks   []MakeupMark
	count   int
	weird   int
	judging bool
}

func NewMakeup(ctl scene.Controller, id int) *Makeup {
	s := &Makeup{
		play: newPlay(ctl, id, "makeup"),
		cfg:  ctl.Tuning().Makeup,
	}
	s.targets = append(s.targets, config.NPC{Name: "Hikari", Sprite: sprite.Hikari})
	var pool []config.NPC
	for i := 0; i < s.cfg.NPCRepeats; i++ {
		pool = append(pool, ctl.Content().NPCs...)
	}
	ctl.Rand().Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	s.targets = append(s.targets, pool...)
	return s
}

func (s *Makeup) OnEnter() {
	s.play.OnEnter()
	s.react("start")
}

// Count is the number of finished makeovers.
func (s *Makeup) Count() int { return s.count }

// Target is the face being decorated.
func (s *Makeup) Target() config.NPC { return s.targets[s.target] }

// Marks are the dabs applied to the current face.
func (s *Makeup) Marks() []MakeupMark { return s.marks }

// Judging reports whether the result screen is showing.
func (s *Makeup) Judging() bool { return s.judging }

// Stars rates the last makeover from 0 to 3.
func (s *Makeup) Stars() int {
	return min(3, int(math.Ceil(float64(s.weird)/3)))
}

// Verdict is the line shown with the rating.
func (s *Makeup) Verdict() string {
	i := max(0, min(s.Stars()-1, len(makeupVerdicts)-1))
	return makeupVerdicts[i]
}

func (s *Makeup) Update(dt float64) error {
	s.tick(dt)
	return nil
}

// Layout, shared by Draw and OnClick

func (s *Makeup) face() (x, y, r float64) {
	w, h := s.size()
	return w / 2, h * 0.35, math.Min(w, h) * 0.18
}

func (s *Makeup) toolButtons() []entity.Rect {
	w, h := s.size()
	tools := s.ctl.Content().MakeupTools
	startX := (w - float64(len(tools))*(toolSize+toolGap)) / 2
	rects := make([]entity.Rect, len(tools))
	for i := range tools {
		rects[i] = entity.Rect{X: startX + float64(i)*(toolSize+toolGap), Y: h * 0.62, W: toolSize, H: toolSize}
	}
	return rects
}

func (s *Makeup) doneButton() entity.Rect {
	w, h := s.size()
	return entity.Rect{X: w/2 - 80, Y: h * 0.82, W: 160, H: 44}
}

func (s *Makeup) nextButton() entity.Rect {
	w, h := s.size()
	return entity.Rect{X: w/2 - 80, Y: h * 0.65, W: 160, H: 44}
}

func (s *Makeup) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.size()
	s.drawBackground(screen, "#DB7093")

	if s.judging {
		s.drawResult(screen)
	} else {
		s.drawFace(screen)
	}

	s.particles.Draw(screen, kit)
	kit.DrawCounter(screen, s.count, s.cfg.Goal, "Makeovers", w)
	s.drawHikari(screen, 50, h-50, 30)
	s.drawEnd(screen)
}

func (s *Makeup) drawFace(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, _ := s.size()
	target := s.Target()
	kit.DrawSprite(screen, target.Sprite, w/2-90, 60, 28, 1)
	kit.DrawCenterText(screen, "Makeover: "+target.Name, w/2+10, 60, 18, render.White)

	fx, fy, r := s.face()
	vector.DrawFilledCircle(screen, float32(fx), float32(fy), float32(r), render.Hex("#FFDAB9"), true)
	vector.StrokeCircle(screen, float32(fx), float32(fy), float32(r), 2, render.Hex("#DEB887"), true)
	kit.DrawSprite(screen, sprite.Eye, fx-r*0.35, fy-r*0.15, r*0.4, 1)
	kit.DrawSprite(screen, sprite.Eye, fx+r*0.35, fy-r*0.15, r*0.4, 1)
	vector.DrawFilledCircle(screen, float32(fx), float32(fy+r*0.1), float32(r*0.08), render.Hex("#DEB887"), true)
	kit.FillRoundRect(screen, entity.Rect{X: fx - r*0.2, Y: fy + r*0.35, W: r * 0.4, H: 4}, 2, render.Hex("#CD5C5C"))

	for _, m := range s.marks {
		vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), float32(m.Size), render.Fade(render.Hex(m.Color), 0.7), true)
		if m.Decal != "" {
			kit.DrawSprite(screen, m.Decal, m.X, m.Y, m.Size*2, 1)
		}
	}

	tools := s.ctl.Content().MakeupTools
	for i, rect := range s.toolButtons() {
		bg := render.Fade(render.White, 0.8)
		if i == s.tool {
			bg = render.Gold
		}
		kit.FillRoundRect(screen, rect, 8, bg)
		cx, _ := rect.Center()
		kit.DrawSprite(screen, tools[i].Sprite, cx, rect.Y+rect.H*0.35, rect.W*0.5, 1)
		kit.DrawText(screen, tools[i].Name, cx, rect.Y+rect.H*0.8,
			render.TextStyle{Size: 10, Color: render.Ink, Align: text.AlignCenter})
	}
	kit.DrawButton(screen, "Done!", s.doneButton(), render.Hex("#FF1493"))
}

func (s *Makeup) drawResult(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.size()
	kit.DrawCenterText(screen, "Weirdness check!", w/2, h*0.2, 24, render.White)
	stars := s.Stars()
	for i := 0; i < 3; i++ {
		alpha := 1.0
		if i >= stars {
			alpha = 0.25
		}
		kit.DrawSprite(screen, sprite.Star, w/2+float64(i-1)*50, h*0.35, 40, alpha)
	}
	kit.DrawCenterText(screen, s.Verdict(), w/2, h*0.5, 20, render.White)
	kit.DrawButton(screen, "Next", s.nextButton(), render.Green)
}

func (s *Makeup) OnClick(x, y float64) {
	if s.finishClick() {
		return
	}
	if s.judging {
		if s.nextButton().Contains(x, y) {
			s.ctl.Audio().Play(audio.CueTap)
			s.target = (s.target + 1) % len(s.targets)
			s.marks = nil
			s.judging = false
		}
		return
	}

	for i, r := range s.toolButtons() {
		if r.Contains(x, y) {
			s.ctl.Audio().Play(audio.CueTap)
			s.tool = i
			return
		}
	}

	if s.doneButton().Contains(x, y) {
		s.finish()
		return
	}

	fx, fy, r := s.face()
	if (x-fx)*(x-fx)+(y-fy)*(y-fy) < r*r*1.2 {
		s.apply(x, y)
	}
}

func (s *Makeup) apply(x, y float64) {
	tool := s.ctl.Content().MakeupTools[s.tool]
	rng := s.ctl.Rand()
	m := MakeupMark{X: x, Y: y, Size: 5 + rng.Float64()*8}
	if len(tool.Colors) > 0 {
		m.Color = tool.Colors[rng.Intn(len(tool.Colors))]
	}
	if len(tool.Decals) > 0 {
		m.Decal = tool.Decals[rng.Intn(len(tool.Decals))]
	}
	s.marks = append(s.marks, m)
	s.ctl.Audio().Play(audio.CueTap)
	s.particles.Emit(x, y, 2, effect.EmitOptions{Spread: 30, Size: 10})
	s.react("funny")
}

func (s *Makeup) finish() {
	s.ctl.Audio().Play(audio.CueCollect)
	s.weird = min(s.cfg.MaxWeirdScore, len(s.marks))
	s.count++
	s.judging = true
	w, h := s.size()
	s.particles.Emit(w/2, h/2, 10, effect.EmitOptions{
		Sprites: []sprite.ID{sprite.Sparkle, sprite.Lipstick, sprite.RainbowIcon, sprite.Star}, Spread: 150, Size: 25,
	})
	if s.count >= s.cfg.Goal {
		s.react("clear")
		s.clear()
	}
}
