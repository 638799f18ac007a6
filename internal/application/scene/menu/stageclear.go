package menu

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/domain/effect"
	"github.com/younwookim/hikari/internal/domain/entity"
	"github.com/younwookim/hikari/internal/domain/sprite"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

const (
	confettiTime = 2.0
	nextDelay    = 1.5
)

var confettiSprites = []sprite.ID{sprite.Celebration, sprite.Star, sprite.Sparkle, sprite.GlowStar, sprite.SwirlStar}

// StageClear celebrates a finished stage.
type StageClear struct {
	scene.Base
	ctl       scene.Controller
	stageID   int
	timer     float64
	particles *effect.ParticleSystem
}

func NewStageClear(ctl scene.Controller, stageID int) *StageClear {
	return &StageClear{
		ctl:       ctl,
		stageID:   stageID,
		particles: effect.NewParticleSystem(ctl.Rand()),
	}
}

func (s *StageClear) OnEnter() {
	s.ctl.Audio().Play(audio.CueClear)
}

func (s *StageClear) Update(dt float64) error {
	s.timer += dt
	s.particles.Update(dt)
	rng := s.ctl.Rand()
	if s.timer < confettiTime && rng.Float64() < 0.3 {
		w, h := s.ctl.ScreenSize()
		s.particles.Emit(rng.Float64()*w, rng.Float64()*h, 2, effect.EmitOptions{
			Sprites: confettiSprites, Spread: 100, Size: 30,
		})
	}
	return nil
}

// nextButton is ok once the button has appeared.
func (s *StageClear) nextButton() (entity.Rect, bool) {
	w, h := s.ctl.ScreenSize()
	return entity.Rect{X: w/2 - 100, Y: h * 0.75, W: 200, H: 50}, s.timer > nextDelay
}

func (s *StageClear) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.ctl.ScreenSize()
	screen.Fill(render.Night)
	s.particles.Draw(screen, kit)

	kit.DrawCenterText(screen, "Stage Clear!", w/2, h*0.7, 28, render.Gold)
	if info, ok := s.ctl.Content().Stage(s.stageID); ok {
		kit.DrawSprite(screen, info.Icon, w/2, h*0.45-30, 36, 1)
		kit.DrawCenterText(screen, info.Name, w/2, h*0.45, 18, render.Blossom)
	}
	kit.DrawBubble(screen, w/2, h*0.3, 50, s.timer, "Yay!")

	if r, ok := s.nextButton(); ok {
		kit.DrawButton(screen, "Next", r, render.Green)
	}
}

func (s *StageClear) OnClick(x, y float64) {
	r, ok := s.nextButton()
	if !ok || !r.Contains(x, y) {
		return
	}
	s.ctl.Audio().Play(audio.CueTap)
	content := s.ctl.Content()
	if s.stageID == content.Finale && s.ctl.Progress().AllCleared(stageIDs(content)) {
		s.ctl.SetScene(NewEnding(s.ctl))
		return
	}
	s.ctl.SetScene(NewStageSelect(s.ctl))
}
