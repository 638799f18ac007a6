package stage

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/domain/effect"
	"github.com/younwookim/hikari/internal/domain/entity"
	"github.com/younwookim/hikari/internal/domain/sprite"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/config"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

// ChaseStep is the sub-phase of the chase stage.
type ChaseStep int

const (
	StepGacha ChaseStep = iota
	StepDrumroll
	StepReveal
	StepChase
)

// Runner is an NPC fleeing from Hikari.
type Runner struct {
	entity.Body
	NPC         config.NPC
	ChangeTimer float64
}

// Chase is stage 3: spin the gacha to pick who is "it", then tag runners.
type Chase struct {
	play
	cfg config.ChaseTuning

	step    ChaseStep
	timer   float64
	angle   float64
	count   int
	runners []Runner
}

func NewChase(ctl scene.Controller, id int) *Chase {
	return &Chase{
		play: newPlay(ctl, id, "chase"),
		cfg:  ctl.Tuning().Chase,
	}
}

func (s *Chase) OnEnter() {
	s.play.OnEnter()
	s.sayFor(s.reaction("gachaStart"), longMessageTime)
}

// Step is the current sub-phase.
func (s *Chase) Step() ChaseStep { return s.step }

// Count is the number of tags.
func (s *Chase) Count() int { return s.count }

// Runners are the fleeing NPCs.
func (s *Chase) Runners() []Runner { return s.runners }

func (s *Chase) Update(dt float64) error {
	if !s.tick(dt) {
		return nil
	}

	switch s.step {
	case StepDrumroll:
		s.angle += dt * 15
		s.timer -= dt
		if s.timer <= 0 {
			s.step = StepReveal
			s.timer = s.cfg.RevealTime
			s.setupRunners()
		}
	case StepReveal:
		s.timer -= dt
		if s.timer <= 0 {
			s.step = StepChase
			s.sayFor(s.reaction("chase"), longMessageTime)
		}
	case StepChase:
		s.moveRunners(dt)
	}
	return nil
}

func (s *Chase) field() entity.Rect {
	w, h := s.size()
	return entity.Rect{X: 30, Y: 80, W: w - 60, H: h - 160}
}

func (s *Chase) setupRunners() {
	npcs := s.ctl.Content().NPCs
	w, h := s.size()
	order := s.ctl.Rand().Perm(len(npcs))
	n := min(s.cfg.Runners, len(npcs))

	s.runners = s.runners[:0]
	for _, idx := range order[:n] {
		s.runners = append(s.runners, Runner{
			Body: entity.Body{
				X:  60 + s.rnd()*(w-120),
				Y:  100 + s.rnd()*(h-200),
				VX: (s.rnd() - 0.5) * 100,
				VY: (s.rnd() - 0.5) * 100,
			},
			NPC:         npcs[idx],
			ChangeTimer: 1 + s.rnd()*2,
		})
	}
	s.sayFor(s.reaction("oni")+" Hikari!", longMessageTime)
}

func (s *Chase) moveRunners(dt float64) {
	field := s.field()
	for i := range s.runners {
		r := &s.runners[i]
		r.ChangeTimer -= dt
		if r.ChangeTimer <= 0 {
			r.VX = (s.rnd() - 0.5) * 150
			r.VY = (s.rnd() - 0.5) * 150
			r.ChangeTimer = 0.8 + s.rnd()*1.5
		}
		r.Integrate(dt, 0)
		r.BounceWithin(field)
	}
}

func (s *Chase) gachaButton() entity.Rect {
	w, h := s.size()
	return entity.Rect{X: w/2 - 100, Y: h * 0.65, W: 200, H: 50}
}

func (s *Chase) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.size()
	s.drawBackground(screen, "#881100")

	switch s.step {
	case StepGacha:
		kit.DrawSprite(screen, sprite.GachaMachine, w/2, h*0.35, 100, 1)
		kit.DrawCenterText(screen, "Spin the gacha to pick who's it!", w/2, h*0.55, 18, render.White)
		kit.DrawButton(screen, "Spin!", s.gachaButton(), render.Hex("#FF8800"))
	case StepDrumroll:
		kit.DrawSpriteRotated(screen, sprite.GachaMachine, w/2, h*0.4, 100, s.angle, 1)
		kit.DrawSprite(screen, sprite.Drum, w/2-90, h*0.65, 32, 1)
		kit.DrawCenterText(screen, "Drumroll...", w/2, h*0.65, 28, render.Gold)
	case StepReveal:
		kit.DrawCenterText(screen, "And it's...", w/2, h*0.3, 28, render.Gold)
		kit.DrawSprite(screen, sprite.Oni, w/2-60, h*0.5, 70, 1)
		kit.DrawSprite(screen, sprite.Hikari, w/2+40, h*0.5, 70, 1)
		kit.DrawCenterText(screen, "Catch everyone!", w/2, h*0.65, 20, render.White)
	default:
		for _, r := range s.runners {
			kit.DrawSprite(screen, r.NPC.Sprite, r.X, r.Y, 35, 1)
			kit.DrawText(screen, r.NPC.Name, r.X, r.Y+25,
				render.TextStyle{Size: 12, Color: render.White, Align: text.AlignCenter})
		}
	}

	s.particles.Draw(screen, kit)
	if s.step == StepChase {
		kit.DrawCounter(screen, s.count, s.cfg.Goal, "Caught", w)
	}
	s.drawHikari(screen, 50, h-60, 35)
	s.drawEnd(screen)
}

func (s *Chase) OnClick(x, y float64) {
	if s.finishClick() {
		return
	}

	switch s.step {
	case StepGacha:
		if s.gachaButton().Contains(x, y) {
			s.ctl.Audio().Play(audio.CueDrumroll)
			s.step = StepDrumroll
			s.timer = s.cfg.DrumrollTime
		}
	case StepChase:
		s.tag(x, y)
	}
}

func (s *Chase) tag(x, y float64) {
	w, h := s.size()
	for i := range s.runners {
		r := &s.runners[i]
		if !r.Within(x, y, s.cfg.CatchRadius) {
			continue
		}
		s.ctl.Audio().Play(audio.CuePeshi)
		s.count++
		s.particles.Emit(r.X, r.Y, 4, effect.EmitOptions{
			Sprites: []sprite.ID{sprite.Coin, sprite.Sparkle, sprite.Lightning}, Spread: 80, Size: 20,
		})
		// Respawn somewhere else
		r.X = 30 + s.rnd()*(w-60)
		r.Y = 80 + s.rnd()*(h-160)
		r.VX = (s.rnd() - 0.5) * 200
		r.VY = (s.rnd() - 0.5) * 200

		if s.count >= s.cfg.Goal {
			s.sayFor(s.reaction("clear"), longMessageTime)
			s.clear()
		}
		return
	}
}
