package menu

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/domain/effect"
	"github.com/younwookim/hikari/internal/domain/sprite"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

const endingRate = 12.0

var risingSprites = []sprite.ID{sprite.Sparkle, sprite.GlowStar, sprite.SwirlStar}

// Ending brings Hikari home and unlocks the secret stage.
type Ending struct {
	scene.Base
	ctl       scene.Controller
	story     *typewriter
	timer     float64
	particles *effect.ParticleSystem
}

func NewEnding(ctl scene.Controller) *Ending {
	return &Ending{
		ctl:       ctl,
		story:     newTypewriter(ctl.Content().Ending, endingRate),
		particles: effect.NewParticleSystem(ctl.Rand()),
	}
}

// Text is the visible part of the current line.
func (s *Ending) Text() string { return s.story.text() }

func (s *Ending) Update(dt float64) error {
	s.timer += dt
	s.particles.Update(dt)
	s.story.update(dt)
	rng := s.ctl.Rand()
	if rng.Float64() < 0.05 {
		w, h := s.ctl.ScreenSize()
		s.particles.Emit(rng.Float64()*w, h, 1, effect.EmitOptions{
			Sprites: risingSprites, Spread: 60, Upward: 150, Size: 20,
		})
	}
	return nil
}

func (s *Ending) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.ctl.ScreenSize()
	kit.FillGradient(screen, render.Hex("#FFB6C1"), render.Hex("#DDA0DD"))
	s.particles.Draw(screen, kit)
	kit.DrawHikari(screen, w/2, h*0.25, 60, s.timer)
	kit.DrawParagraph(screen, s.story.text(), w/2, h*0.5, w-60, 30,
		render.TextStyle{Size: 20, Color: render.Ink, Align: text.AlignCenter})
	kit.DrawText(screen, "Tap to continue", w/2, h*0.9,
		render.TextStyle{Size: 14, Color: render.Fade(render.Ink, 0.5), Align: text.AlignCenter})
}

func (s *Ending) OnClick(x, y float64) {
	s.ctl.Audio().Play(audio.CueTap)
	if !s.story.advance() {
		return
	}
	if s.story.finished() {
		s.ctl.UnlockSecret()
		s.ctl.SetScene(NewStageSelect(s.ctl))
	}
}
