package stage

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/application/state"
	"github.com/younwookim/hikari/internal/domain/effect"
	"github.com/younwookim/hikari/internal/domain/entity"
	"github.com/younwookim/hikari/internal/domain/sprite"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/config"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

// BattleStep is the turn position inside a fight.
type BattleStep int

const (
	StepIntro BattleStep = iota
	StepSelect
	StepTiming
	StepDamage
	StepEnemyAttack
	StepDefend
	StepWin
)

// Hit grades a timing tap.
type Hit int

const (
	HitMiss Hit = iota
	HitGood
	HitPerfect
)

const (
	damageShowTime = 1.2
	slashTime      = 0.6
	turnPause      = 1.0
	winPause       = 2.0
)

// Battle is stage 8: a turn-based fight against three demons.
type Battle struct {
	play
	cfg     config.BattleTuning
	breaths []config.Breath
	demons  []config.Demon

	step      BattleStep
	stepTimer float64

	player     *entity.Actor
	enemy      *entity.Actor
	enemyIndex int

	breath   int
	ring     float64
	defended bool
	defendT  float64

	damageText  string
	damageColor color.Color
	damageX     float64
	damageY     float64
	damageTimer float64
	slashTimer  float64
}

func NewBattle(ctl scene.Controller, id int) *Battle {
	c := ctl.Content()
	s := &Battle{
		play:    newPlay(ctl, id, "battle"),
		cfg:     ctl.Tuning().Battle,
		breaths: c.Breaths,
		demons:  c.Demons,
	}
	s.reset()
	return s
}

func (s *Battle) reset() {
	w, h := s.size()
	s.player = entity.NewActor(1, sprite.Tanjiro, w*0.25, h*0.5, 60).WithHealth(s.cfg.PlayerHP)
	s.enemyIndex = 0
	s.spawnEnemy()
	s.breath = -1
	s.defended = false
}

func (s *Battle) spawnEnemy() {
	w, h := s.size()
	d := s.demons[s.enemyIndex]
	size := 60.0
	if d.Sprite == sprite.DemonBoss {
		size = 80
	}
	s.enemy = entity.NewActor(entity.EntityID(s.enemyIndex+2), d.Sprite, w*0.65, h*0.42, size).WithHealth(d.HP)
	s.step = StepIntro
	s.stepTimer = s.cfg.IntroTime
}

func (s *Battle) OnEnter() {
	s.play.OnEnter()
	s.react("start")
}

// Step is the current turn position.
func (s *Battle) Step() BattleStep { return s.step }

// Player is Hikari's fighter.
func (s *Battle) Player() *entity.Actor { return s.player }

// Enemy is the demon being fought.
func (s *Battle) Enemy() *entity.Actor { return s.enemy }

// EnemyIndex counts the demons already beaten.
func (s *Battle) EnemyIndex() int { return s.enemyIndex }

// Ring is the radius of the shrinking timing ring.
func (s *Battle) Ring() float64 { return s.ring }

// Defended reports whether the current attack was blocked.
func (s *Battle) Defended() bool { return s.defended }

// Grade scores a tap made when the ring has radius ring.
func (s *Battle) Grade(ring float64) Hit {
	diff := math.Abs(ring - s.cfg.TargetRadius)
	switch {
	case diff <= s.cfg.PerfectRange:
		return HitPerfect
	case diff <= s.cfg.GoodRange:
		return HitGood
	}
	return HitMiss
}

func (s *Battle) Update(dt float64) error {
	if !s.tick(dt) {
		return nil
	}
	s.player.Tick(dt)
	s.enemy.Tick(dt)
	if s.damageTimer > 0 {
		s.damageTimer -= dt
	}
	if s.slashTimer > 0 {
		s.slashTimer -= dt
	}

	switch s.step {
	case StepIntro:
		s.stepTimer -= dt
		if s.stepTimer <= 0 {
			s.step = StepSelect
		}
	case StepTiming:
		s.ring -= s.cfg.RingSpeed * dt
		if s.ring <= 0 {
			s.strike(HitMiss)
		}
	case StepDamage:
		s.stepTimer -= dt
		if s.stepTimer > 0 {
			break
		}
		if !s.enemy.IsAlive() {
			s.step = StepWin
			s.stepTimer = winPause
			s.react("kill")
			s.particles.Emit(s.enemy.X, s.enemy.Y, 15, effect.EmitOptions{
				Sprites: []sprite.ID{sprite.Sparkle, sprite.Fire, sprite.Star}, Spread: 150, Size: 25,
			})
			break
		}
		s.step = StepEnemyAttack
		s.stepTimer = turnPause
		s.react("enemyAttack")
	case StepEnemyAttack:
		s.stepTimer -= dt
		if s.stepTimer <= 0 {
			s.step = StepDefend
			s.defendT = s.cfg.DefendWindow
			s.defended = false
		}
	case StepDefend:
		if s.defended {
			break
		}
		s.defendT -= dt
		if s.defendT <= 0 {
			s.takeHit(s.enemyAttack())
			s.ctl.Audio().Play(audio.CueBomb)
			s.particles.Emit(s.player.X, s.player.Y-10, 6, effect.EmitOptions{
				Sprites: []sprite.ID{sprite.Fire, sprite.Explosion}, Spread: 80, Size: 18,
			})
			s.afterDefence()
		}
	case StepWin:
		s.stepTimer -= dt
		if s.stepTimer > 0 {
			break
		}
		s.enemyIndex++
		if s.enemyIndex >= len(s.demons) {
			s.react("clear")
			s.clear()
			return nil
		}
		s.spawnEnemy()
		s.say(fmt.Sprintf("Next up: %s!", s.demons[s.enemyIndex].Name))
		s.player.Heal(s.cfg.WinHeal)
	}
	return nil
}

func (s *Battle) enemyAttack() float64 {
	return s.demons[s.enemyIndex].Attack
}

func (s *Battle) takeHit(dmg float64) {
	s.player.TakeDamage(dmg)
	s.showDamage(s.player.X, s.player.Y-25, fmt.Sprintf("-%.0f", dmg), render.Red)
}

// afterDefence ends the enemy's turn.
func (s *Battle) afterDefence() {
	if !s.player.IsAlive() {
		s.react("lose")
		s.lose()
		return
	}
	s.step = StepSelect
}

// strike resolves the player's attack with the chosen breath.
func (s *Battle) strike(hit Hit) {
	b := s.breaths[s.breath]
	var base float64
	var label string
	var clr color.Color
	switch hit {
	case HitPerfect:
		base, label, clr = s.cfg.PerfectDamage, "Perfect!", render.Gold
	case HitGood:
		base, label, clr = s.cfg.GoodDamage, "Good!", render.Hex("#88FF88")
	default:
		base, label, clr = s.cfg.MissDamage, "Miss...", render.White
	}
	dmg := math.Floor(base * b.Power)
	s.enemy.TakeDamage(dmg)
	s.ctl.Audio().Play(audio.CueSlash)

	s.slashTimer = slashTime
	s.showDamage(s.enemy.X, s.enemy.Y-30, fmt.Sprintf("%s %.0f", label, dmg), clr)
	s.particles.Emit(s.enemy.X, s.enemy.Y, 8, effect.EmitOptions{
		Sprites: []sprite.ID{b.Sprite, sprite.Sparkle}, Spread: 120, Size: 20,
	})
	s.step = StepDamage
	s.stepTimer = turnPause
}

func (s *Battle) showDamage(x, y float64, label string, clr color.Color) {
	s.damageText = label
	s.damageColor = clr
	s.damageX, s.damageY = x, y
	s.damageTimer = damageShowTime
}

// Layout

func (s *Battle) breathButtons() []entity.Rect {
	w, h := s.size()
	bw, bh, gap := w*0.28, 50.0, 8.0
	n := float64(len(s.breaths))
	x0 := (w - (n*bw + (n-1)*gap)) / 2
	rects := make([]entity.Rect, len(s.breaths))
	for i := range rects {
		rects[i] = entity.Rect{X: x0 + float64(i)*(bw+gap), Y: h * 0.83, W: bw, H: bh}
	}
	return rects
}

func (s *Battle) defendButton() entity.Rect {
	w, h := s.size()
	return entity.Rect{X: w/2 - 100, Y: h*0.84 - 27.5, W: 200, H: 55}
}

func (s *Battle) ringCenter() (float64, float64) {
	w, h := s.size()
	return w / 2, h * 0.82
}

func (s *Battle) OnClick(x, y float64) {
	if s.phase == state.PhaseGameOver {
		s.reset()
		s.resume()
		s.react("start")
		return
	}
	if s.finishClick() {
		return
	}

	switch s.step {
	case StepSelect:
		for i, r := range s.breathButtons() {
			if r.Contains(x, y) {
				s.ctl.Audio().Play(audio.CueTap)
				s.breath = i
				s.ring = s.cfg.RingStart
				s.step = StepTiming
				return
			}
		}
	case StepTiming:
		s.strike(s.Grade(s.ring))
	case StepDefend:
		if s.defended || !s.defendButton().Contains(x, y) {
			return
		}
		s.defended = true
		s.ctl.Audio().Play(audio.CueCollect)
		dmg := math.Floor(s.enemyAttack() * s.cfg.DefendFactor)
		if dmg > 0 {
			s.takeHit(dmg)
		} else {
			s.showDamage(s.player.X, s.player.Y-25, "Blocked!", render.Green)
		}
		s.particles.Emit(s.player.X, s.player.Y-10, 5, effect.EmitOptions{
			Sprites: []sprite.ID{sprite.Sparkle, sprite.Star}, Spread: 60, Size: 15,
		})
		s.react("defend")
		s.timers.After(s.cfg.DefendPause, s.afterDefence)
	}
}

func (s *Battle) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.size()
	kit.FillGradient(screen, render.Hex("#0A001E"), render.Hex("#1A0033"), render.Hex("#330011"))
	kit.FillRect(screen, entity.Rect{Y: h * 0.7, W: w, H: h * 0.3}, render.Hex("#1A1A1A"))
	vector.DrawFilledCircle(screen, float32(w*0.8), float32(h*0.12), 40, render.Fade(render.Hex("#FFDC96"), 0.15), true)
	vector.DrawFilledCircle(screen, float32(w*0.8), float32(h*0.12), 25, render.Fade(render.Hex("#FFDC96"), 0.3), true)

	kit.DrawSprite(screen, s.player.Sprite, s.player.X, s.player.Y, s.player.Size, 1)
	kit.DrawSprite(screen, sprite.Katana, w*0.35, h*0.45, 35, 1)
	small := render.TextStyle{Size: 11, Color: render.White, Align: text.AlignStart}
	kit.DrawText(screen, fmt.Sprintf("Hikari HP: %.0f", s.player.Health), w*0.05, h*0.65-8, small)
	kit.DrawProgressBar(screen, s.player.HealthRatio(), entity.Rect{X: w * 0.05, Y: h * 0.65, W: w * 0.35, H: 12}, render.Hex("#44CC44"))

	if s.step != StepWin || s.stepTimer > 1 {
		shake := 0.0
		if s.step == StepDamage && s.slashTimer > slashTime/2 {
			shake = math.Sin(s.clock*60) * 4
		}
		kit.DrawSprite(screen, s.enemy.Sprite, s.enemy.X+shake, s.enemy.Y, s.enemy.Size, 1)
		kit.DrawText(screen, fmt.Sprintf("%s HP: %.0f", s.demons[min(s.enemyIndex, len(s.demons)-1)].Name, s.enemy.Health), w*0.5, h*0.65-8, small)
		kit.DrawProgressBar(screen, s.enemy.HealthRatio(), entity.Rect{X: w * 0.5, Y: h * 0.65, W: w * 0.42, H: 12}, render.Red)
	}

	if s.slashTimer > 0 && s.breath >= 0 {
		kit.DrawSprite(screen, s.breaths[s.breath].Sprite, s.enemy.X, s.enemy.Y, 70, math.Min(1, s.slashTimer*2))
	}
	if s.step == StepEnemyAttack && s.stepTimer > 0.3 {
		kit.DrawSprite(screen, sprite.Fire, w*0.35, h*0.45, 50, 0.6)
	}

	s.particles.Draw(screen, kit)

	if s.damageTimer > 0 {
		y := s.damageY - (damageShowTime-s.damageTimer)*30
		kit.DrawText(screen, s.damageText, s.damageX, y, render.TextStyle{
			Size: 22, Color: render.Fade(s.damageColor, math.Min(1, s.damageTimer*2)), Align: text.AlignCenter, Bold: true,
		})
	}

	switch s.step {
	case StepIntro:
		kit.DrawCenterText(screen, s.demons[s.enemyIndex].Name+" appears!", w/2, h*0.2, 26, render.Red)
	case StepSelect:
		kit.DrawText(screen, "Choose your breath!", w/2, h*0.78, render.TextStyle{Size: 18, Color: render.White, Align: text.AlignCenter, Bold: true})
		for i, r := range s.breathButtons() {
			kit.DrawButton(screen, s.breaths[i].Name, r, render.Hex(s.breaths[i].Color))
		}
	case StepTiming:
		b := s.breaths[s.breath]
		cx, cy := s.ringCenter()
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(math.Max(0, s.ring)), 3, render.Hex(b.Color), true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(s.cfg.TargetRadius), 2, render.Fade(render.White, 0.5), true)
		kit.DrawText(screen, "Tap!", cx, cy, render.TextStyle{Size: 16, Color: render.White, Align: text.AlignCenter, Bold: true})
		kit.DrawText(screen, b.Name+" Breathing!", cx, h*0.75, render.TextStyle{Size: 18, Color: render.Hex(b.Color), Align: text.AlignCenter, Bold: true})
	case StepDefend:
		if s.defended {
			kit.DrawText(screen, "Total concentration! Blocked!", w/2, h*0.82, render.TextStyle{Size: 20, Color: render.Hex("#44FF44"), Align: text.AlignCenter, Bold: true})
			break
		}
		ratio := s.defendT / s.cfg.DefendWindow
		bar := render.Hex("#FF8800")
		if ratio <= 0.3 {
			bar = render.Hex("#FF2222")
		}
		kit.DrawProgressBar(screen, ratio, entity.Rect{X: w * 0.2, Y: h * 0.77, W: w * 0.6, H: 8}, bar)
		r := s.defendButton()
		pulse := 1 + math.Sin(s.clock*10)*0.08
		cx, cy := r.Center()
		r.W *= pulse
		r.H *= pulse
		r.X, r.Y = cx-r.W/2, cy-r.H/2
		kit.DrawButton(screen, "Defend!", r, render.Hex("#FF8800"))
	}

	if !s.phase.Finished() {
		kit.DrawText(screen, fmt.Sprintf("%d / %d demons defeated", s.enemyIndex, len(s.demons)), w/2, 20,
			render.TextStyle{Size: 12, Color: render.White, Align: text.AlignCenter})
	}
	s.drawHikari(screen, 50, h-50, 25)

	if s.phase == state.PhaseGameOver {
		kit.FillRect(screen, entity.Rect{W: w, H: h}, render.Fade(color.Black, 0.6))
		kit.DrawCenterText(screen, "Defeated...", w/2, h/2-20, 30, render.Red)
		kit.DrawText(screen, "Tap to try again", w/2, h/2+25, render.TextStyle{Size: 18, Color: render.White, Align: text.AlignCenter})
		return
	}
	s.drawEnd(screen)
}
