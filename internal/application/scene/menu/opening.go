package menu

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/domain/sprite"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

const (
	openingRate  = 15.0 // cells per second
	spinDuration = 2.0
	spinSpeed    = 8.0 // radians per second
)

// Opening tells how Hikari got pulled into the game.
type Opening struct {
	scene.Base
	ctl      scene.Controller
	story    *typewriter
	spinning bool
	timer    float64
	angle    float64
	clock    float64
}

func NewOpening(ctl scene.Controller) *Opening {
	return &Opening{
		ctl:   ctl,
		story: newTypewriter(ctl.Content().Opening, openingRate),
	}
}

// Spinning reports whether the portal interlude is playing.
func (s *Opening) Spinning() bool { return s.spinning }

// Text is the visible part of the current line.
func (s *Opening) Text() string { return s.story.text() }

func (s *Opening) Update(dt float64) error {
	s.clock += dt
	if s.spinning {
		s.timer += dt
		s.angle += dt * spinSpeed
		if s.timer > spinDuration {
			s.spinning = false
			s.timer = 0
		}
		return nil
	}
	s.story.update(dt)
	return nil
}

func (s *Opening) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.ctl.ScreenSize()
	screen.Fill(render.Night)

	if s.spinning {
		kit.DrawSpriteRotated(screen, sprite.Portal, w/2, h/2, 150, s.angle, 1)
		return
	}
	kit.DrawHikari(screen, w/2, h*0.3, 60, s.clock)
	kit.DrawParagraph(screen, s.story.text(), w/2, h*0.55, w-60, 28,
		render.TextStyle{Size: 20, Color: render.White, Align: text.AlignCenter})
	kit.DrawText(screen, "Tap to continue", w/2, h*0.9,
		render.TextStyle{Size: 14, Color: render.Fade(render.White, 0.5), Align: text.AlignCenter})
}

func (s *Opening) OnClick(x, y float64) {
	s.ctl.Audio().Play(audio.CueTap)
	if s.spinning {
		return
	}
	if !s.story.advance() {
		return
	}
	if s.story.index == s.ctl.Content().SpinAfter {
		s.spinning = true
		s.timer = 0
		return
	}
	if s.story.finished() {
		s.ctl.SetScene(NewStageSelect(s.ctl))
	}
}
