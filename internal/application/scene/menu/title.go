package menu

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/domain/effect"
	"github.com/younwookim/hikari/internal/domain/entity"
	"github.com/younwookim/hikari/internal/domain/sprite"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

var sparkleSprites = []sprite.ID{sprite.Sparkle, sprite.Star, sprite.SwirlStar, sprite.GlowStar}

// Title is the first screen.
type Title struct {
	scene.Base
	ctl       scene.Controller
	timer     float64
	particles *effect.ParticleSystem
}

func NewTitle(ctl scene.Controller) *Title {
	return &Title{
		ctl:       ctl,
		particles: effect.NewParticleSystem(ctl.Rand()),
	}
}

func (s *Title) OnEnter() {
	s.ctl.Audio().StartBGM(audio.TrackTitle)
}

func (s *Title) Update(dt float64) error {
	s.timer += dt
	s.particles.Update(dt)
	rng := s.ctl.Rand()
	if rng.Float64() < 0.1 {
		w, h := s.ctl.ScreenSize()
		s.particles.Emit(rng.Float64()*w, rng.Float64()*h, 1, effect.EmitOptions{
			Sprites: sparkleSprites, Spread: 30, Size: 20,
		})
	}
	return nil
}

func (s *Title) startButton() entity.Rect {
	w, h := s.ctl.ScreenSize()
	return entity.Rect{X: w/2 - 100, Y: h * 0.78, W: 200, H: 50}
}

func (s *Title) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.ctl.ScreenSize()
	kit.FillGradient(screen, render.Hex("#1a0533"), render.Hex("#4a1a7a"), render.Hex("#0a0a2e"))
	s.particles.Draw(screen, kit)

	pulse := 1 + math.Sin(s.timer*2)*0.05
	kit.DrawSprite(screen, sprite.Portal, w/2, h*0.35, 120*pulse, 1)
	kit.DrawHikari(screen, w/2, h*0.35, 50, s.timer)

	content := s.ctl.Content()
	kit.DrawCenterText(screen, content.Title, w/2, h*0.55, 22, render.Gold)
	kit.DrawCenterText(screen, content.Subtitle, w/2, h*0.62, 26, render.Gold)
	kit.DrawCenterText(screen, "~ pulled into the game ~", w/2, h*0.69, 16, render.Blossom)

	btn := s.startButton()
	grow := math.Sin(s.timer*3) * 0.03
	drawn := entity.Rect{
		X: btn.X - btn.W*grow/2, Y: btn.Y - btn.H*grow/2,
		W: btn.W * (1 + grow), H: btn.H * (1 + grow),
	}
	kit.DrawButton(screen, "Start", drawn, render.Pink)
}

func (s *Title) OnClick(x, y float64) {
	if !s.startButton().Contains(x, y) {
		return
	}
	s.ctl.Audio().Play(audio.CueTap)
	s.ctl.Audio().StopBGM()
	if s.ctl.Progress().ClearedCount() == 0 {
		s.ctl.SetScene(NewOpening(s.ctl))
		return
	}
	s.ctl.SetScene(NewStageSelect(s.ctl))
}

func (s *Title) Cleanup() {
	s.ctl.Audio().StopBGM()
}
