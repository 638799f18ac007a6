// Package stage implements the mini-stages. Every stage embeds play, which
// owns the parts they share: particles, Hikari's speech bubble, the phase,
// delayed effects and the tap-to-continue clear screen.
package stage

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/application/state"
	"github.com/younwookim/hikari/internal/domain/effect"
	"github.com/younwookim/hikari/internal/domain/entity"
	"github.com/younwookim/hikari/internal/domain/schedule"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/config"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

// How long a reaction stays in the bubble.
const (
	messageTime     = 2.0
	longMessageTime = 2.5
)

type play struct {
	scene.Base
	ctl  scene.Controller
	id   int
	key  string // reaction table
	info config.StageInfo

	phase     state.Phase
	clock     float64
	particles *effect.ParticleSystem
	timers    *schedule.Scheduler

	message      string
	messageTimer float64
}

func newPlay(ctl scene.Controller, id int, key string) play {
	info, _ := ctl.Content().Stage(id)
	return play{
		ctl:       ctl,
		id:        id,
		key:       key,
		info:      info,
		phase:     state.PhasePlaying,
		particles: effect.NewParticleSystem(ctl.Rand()),
		timers:    schedule.New(),
	}
}

// Phase is the stage's lifecycle position.
func (p *play) Phase() state.Phase { return p.phase }

// Message is the line in Hikari's bubble, or "" when it has faded.
func (p *play) Message() string {
	if p.messageTimer <= 0 {
		return ""
	}
	return p.message
}

func (p *play) OnEnter() {
	p.ctl.Audio().StartBGM(audio.StageTrack(p.id))
}

// tick advances the shared clocks. It returns false once the stage is over,
// so callers can stop simulating.
func (p *play) tick(dt float64) bool {
	p.clock += dt
	p.particles.Update(dt)
	if p.messageTimer > 0 {
		p.messageTimer -= dt
	}
	if p.phase.Finished() {
		return false
	}
	p.timers.Update(dt)
	return true
}

func (p *play) say(msg string) {
	p.sayFor(msg, messageTime)
}

func (p *play) sayFor(msg string, d float64) {
	p.message = msg
	p.messageTimer = d
}

// react shows the line stored under key in this stage's reaction table.
func (p *play) react(key string) {
	if msg := p.ctl.Content().Reaction(p.key, key); msg != "" {
		p.say(msg)
	}
}

func (p *play) reaction(key string) string {
	return p.ctl.Content().Reaction(p.key, key)
}

func (p *play) clear() {
	if p.phase.Finished() {
		return
	}
	p.phase = state.PhaseCleared
	p.timers.Clear()
	p.ctl.Audio().StopBGM()
}

func (p *play) lose() {
	if p.phase.Finished() {
		return
	}
	p.phase = state.PhaseGameOver
	p.timers.Clear()
	p.ctl.Audio().StopBGM()
}

// resume puts a lost stage back into play with its music.
func (p *play) resume() {
	p.phase = state.PhasePlaying
	p.ctl.Audio().StartBGM(audio.StageTrack(p.id))
}

// finishClick handles a tap on the end screen. It reports whether the
// tap was consumed.
func (p *play) finishClick() bool {
	switch p.phase {
	case state.PhaseCleared:
		p.ctl.CompleteStage(p.id)
		return true
	case state.PhaseGameOver:
		p.ctl.StartStage(p.id)
		return true
	}
	return false
}

func (p *play) Cleanup() {
	p.ctl.Audio().StopBGM()
	p.timers.Clear()
	p.particles.Clear()
}

func (p *play) size() (float64, float64) {
	return p.ctl.ScreenSize()
}

func (p *play) rnd() float64 {
	return p.ctl.Rand().Float64()
}

// Drawing helpers

func (p *play) drawBackground(screen *ebiten.Image, bottom string) {
	p.ctl.Kit().FillGradient(screen, render.Hex(p.info.Background), render.Hex(bottom))
}

func (p *play) drawHikari(screen *ebiten.Image, x, y, size float64) {
	p.ctl.Kit().DrawBubble(screen, x, y, size, p.clock, p.Message())
}

func (p *play) drawOverlay(screen *ebiten.Image, title string, clr color.Color) {
	kit := p.ctl.Kit()
	w, h := p.size()
	kit.FillRect(screen, entity.Rect{W: w, H: h}, render.Shade)
	kit.DrawCenterText(screen, title, w/2, h/2, 34, clr)
	kit.DrawText(screen, "Tap to continue", w/2, h/2+50,
		render.TextStyle{Size: 16, Color: render.White, Align: text.AlignCenter})
}

// drawEnd draws the clear or game-over overlay when the stage is finished.
func (p *play) drawEnd(screen *ebiten.Image) {
	switch p.phase {
	case state.PhaseCleared:
		p.drawOverlay(screen, "Stage Clear!", render.Hex(p.info.Accent))
	case state.PhaseGameOver:
		p.drawOverlay(screen, "Game Over", render.Red)
	}
}
