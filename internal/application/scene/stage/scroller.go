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

// SkyKind is the type of a falling object.
type SkyKind int

const (
	SkyStar SkyKind = iota
	SkyMeteorite
	SkyPoop
	SkyHeart
)

// SkyObject falls towards the rocket.
type SkyObject struct {
	entity.Body
	Kind SkyKind
	Size float64
	HitR float64
}

func (o SkyObject) sprite() sprite.ID {
	switch o.Kind {
	case SkyStar:
		return sprite.Star
	case SkyMeteorite:
		return sprite.Meteorite
	case SkyPoop:
		return sprite.Poop
	}
	return sprite.Heart
}

type fartPuff struct {
	entity.Body
	Size float64
	Life float64
}

type bgStar struct {
	X, Y, Size, Speed, Alpha float64
}

const (
	playerRadius   = 20.0
	ufoRadius      = 25.0
	ceilingClimb   = 200.0
	ufoMinWait     = 15.0
	ufoChance      = 0.005
	maxSpawnWait   = 1.2
	minSpawnWait   = 0.4
	spawnWaitDecay = 5000.0
)

// Scroller is stage 9: fart up to the moon.
type Scroller struct {
	play
	cfg config.ScrollerTuning

	player    *entity.Actor
	altitude  float64
	score     int
	cooldown  float64
	spawnT    float64
	spawnWait float64
	objects   []SkyObject
	puffs     []fartPuff
	stars     []bgStar

	ufo      *entity.Body
	ufoTimer float64
	said     map[string]bool
}

func NewScroller(ctl scene.Controller, id int) *Scroller {
	s := &Scroller{
		play: newPlay(ctl, id, "scroller"),
		cfg:  ctl.Tuning().Scroller,
	}
	w, h := s.size()
	for i := 0; i < 60; i++ {
		s.stars = append(s.stars, bgStar{
			X:     s.rnd() * w,
			Y:     s.rnd() * h,
			Size:  1 + s.rnd()*2,
			Speed: 20 + s.rnd()*40,
			Alpha: 0.3 + s.rnd()*0.7,
		})
	}
	s.reset()
	return s
}

func (s *Scroller) reset() {
	w, h := s.size()
	s.player = entity.NewActor(1, sprite.Hikari, w/2, h*0.7, 40).WithHealth(float64(s.cfg.HP))
	s.altitude = 0
	s.score = 0
	s.cooldown = 0
	s.spawnT = 0
	s.spawnWait = maxSpawnWait
	s.objects = nil
	s.puffs = nil
	s.ufo = nil
	s.ufoTimer = 0
	s.said = make(map[string]bool)
}

func (s *Scroller) OnEnter() {
	s.play.OnEnter()
	s.react("start")
}

// Player is the rocket.
func (s *Scroller) Player() *entity.Actor { return s.player }

// HP is the remaining hit points.
func (s *Scroller) HP() int { return int(s.player.Health) }

// Altitude is the height reached, in metres.
func (s *Scroller) Altitude() float64 { return s.altitude }

// Score is the collected points.
func (s *Scroller) Score() int { return s.score }

// Objects are the falling objects on screen.
func (s *Scroller) Objects() []SkyObject { return s.objects }

// UFO is the bonus saucer, or nil.
func (s *Scroller) UFO() *entity.Body { return s.ufo }

func (s *Scroller) Update(dt float64) error {
	if !s.tick(dt) {
		return nil
	}
	w, h := s.size()
	p := s.player
	p.Tick(dt)
	if s.cooldown > 0 {
		s.cooldown -= dt
	}

	p.VY += s.cfg.Gravity * dt
	p.ClampVY(s.cfg.MaxUpSpeed, s.cfg.MaxDownSpeed)
	if p.VY < 0 {
		s.altitude += -p.VY * dt * s.cfg.AltitudeScale
	}
	p.Y += p.VY * dt
	if floor := h * 0.85; p.Y > floor {
		p.Y = floor
		p.VY = 0
	}
	if ceiling := h * 0.15; p.Y < ceiling {
		p.Y = ceiling
		p.VY = 0
		s.altitude += ceilingClimb * dt * s.cfg.AltitudeScale
	}

	s.updateBackdrop(dt, w, h)

	s.spawnT += dt
	if s.spawnT >= s.spawnWait {
		s.spawnT = 0
		s.spawnWait = math.Max(minSpawnWait, maxSpawnWait-s.altitude/spawnWaitDecay)
		s.spawn()
	}

	kept := s.objects[:0]
	for _, o := range s.objects {
		o.X += o.VX * dt
		o.Y += o.VY * dt
		if o.X < -30 {
			o.X = w + 30
		} else if o.X > w+30 {
			o.X = -30
		}
		if o.Y > -50 && o.Y < h+50 {
			kept = append(kept, o)
		}
	}
	s.objects = kept

	s.ufoTimer += dt
	if s.ufo == nil && s.ufoTimer > ufoMinWait && s.rnd() < ufoChance {
		s.ufo = &entity.Body{X: -40, Y: h*0.2 + s.rnd()*h*0.3, VX: 60 + s.rnd()*40}
		s.ufoTimer = 0
	}
	if s.ufo != nil {
		s.ufo.X += s.ufo.VX * dt
		if s.ufo.X > w+50 {
			s.ufo = nil
		}
	}

	s.collide()
	if s.phase.Finished() {
		return nil
	}

	if s.altitude >= s.cfg.GoalAltitude {
		s.react("clear")
		s.clear()
		return nil
	}
	pct := s.altitude / s.cfg.GoalAltitude
	s.milestone(pct, 0.25, "quarter")
	s.milestone(pct, 0.5, "half")
	s.milestone(pct, 0.8, "almost")
	return nil
}

func (s *Scroller) milestone(pct, at float64, key string) {
	if pct >= at && !s.said[key] {
		s.said[key] = true
		s.react(key)
	}
}

func (s *Scroller) updateBackdrop(dt, w, h float64) {
	kept := s.puffs[:0]
	for _, c := range s.puffs {
		c.Y += c.VY * dt
		c.Life -= dt
		c.Size *= 1 + 0.6*dt
		if c.Life > 0 {
			kept = append(kept, c)
		}
	}
	s.puffs = kept

	scroll := -s.player.VY * 0.1
	if s.player.VY < 0 {
		scroll = -s.player.VY * 0.3
	}
	for i := range s.stars {
		st := &s.stars[i]
		st.Y += scroll * dt * (st.Speed / 40)
		if st.Y > h {
			st.Y = -5
			st.X = s.rnd() * w
		}
		if st.Y < -5 {
			st.Y = h + 5
			st.X = s.rnd() * w
		}
	}
}

func (s *Scroller) spawn() {
	w, _ := s.size()
	x := 30 + s.rnd()*(w-60)
	roll := s.rnd()
	var o SkyObject
	switch {
	case roll < 0.35:
		o = SkyObject{Kind: SkyStar, Size: 24, HitR: 15}
		o.Y, o.VX, o.VY = -20, (s.rnd()-0.5)*30, 80+s.rnd()*60+s.altitude*0.02
	case roll < 0.6:
		o = SkyObject{Kind: SkyMeteorite, Size: 30, HitR: 18}
		o.Y, o.VX, o.VY = -30, (s.rnd()-0.5)*50, 100+s.rnd()*80+s.altitude*0.03
	case roll < 0.8:
		o = SkyObject{Kind: SkyPoop, Size: 26, HitR: 14}
		o.Y, o.VX, o.VY = -20, (s.rnd()-0.5)*40, 70+s.rnd()*50
	default:
		o = SkyObject{Kind: SkyHeart, Size: 22, HitR: 14}
		o.Y, o.VX, o.VY = -20, (s.rnd()-0.5)*20, 50+s.rnd()*30
	}
	o.X = x
	s.objects = append(s.objects, o)
}

func (s *Scroller) collide() {
	p := s.player
	for i := len(s.objects) - 1; i >= 0; i-- {
		o := s.objects[i]
		if !p.Within(o.X, o.Y, playerRadius+o.HitR) {
			continue
		}
		switch o.Kind {
		case SkyStar:
			s.score += s.cfg.StarScore
			s.ctl.Audio().Play(audio.CueCollect)
			s.particles.Emit(o.X, o.Y, 5, effect.EmitOptions{
				Sprites: []sprite.ID{sprite.Sparkle, sprite.Star}, Spread: 30, Size: 15,
			})
		case SkyHeart:
			if p.Health < p.MaxHealth {
				p.Heal(1)
				s.ctl.Audio().Play(audio.CueStar)
				s.react("heal")
			}
			s.particles.Emit(o.X, o.Y, 3, effect.EmitOptions{
				Sprites: []sprite.ID{sprite.Heart}, Spread: 20, Size: 12,
			})
		default:
			if p.IsInvincible() {
				continue
			}
			s.hit(o)
		}
		s.objects = append(s.objects[:i], s.objects[i+1:]...)
		if s.phase.Finished() {
			return
		}
	}

	if s.ufo != nil && p.Within(s.ufo.X, s.ufo.Y, playerRadius+ufoRadius) {
		s.score += s.cfg.UFOBonus
		s.ctl.Audio().Play(audio.CueCollect)
		s.ctl.Audio().Play(audio.CueStar)
		s.react("ufo")
		s.particles.Emit(s.ufo.X, s.ufo.Y, 10, effect.EmitOptions{
			Sprites: []sprite.ID{sprite.Sparkle, sprite.Star, sprite.GlowStar}, Spread: 50, Size: 20,
		})
		s.ufo = nil
	}
}

func (s *Scroller) hit(o SkyObject) {
	p := s.player
	p.TakeDamage(1)
	p.IframeTimer = s.cfg.InvincibleTime
	s.ctl.Audio().Play(audio.CueBomb)
	s.particles.Emit(o.X, o.Y, 8, effect.EmitOptions{Spread: 40, Size: 10})

	if o.Kind == SkyPoop {
		s.react("poop")
		for j := 0; j < 5; j++ {
			s.puffs = append(s.puffs, fartPuff{
				Body: entity.Body{X: p.X + (s.rnd()-0.5)*40, Y: p.Y + 20 + s.rnd()*20, VY: 30 + s.rnd()*20},
				Size: 20 + s.rnd()*20,
				Life: 1.5,
			})
		}
	} else {
		s.react("hit")
	}

	if !p.IsAlive() {
		s.react("lose")
		s.lose()
	}
}

func (s *Scroller) OnClick(x, y float64) {
	if s.phase == state.PhaseGameOver {
		s.reset()
		s.resume()
		s.react("start")
		return
	}
	if s.finishClick() {
		return
	}
	if s.cooldown > 0 {
		return
	}
	p := s.player
	p.VY = s.cfg.Thrust
	s.cooldown = s.cfg.Cooldown
	s.ctl.Audio().Play(audio.CueFart)
	for i := 0; i < 3; i++ {
		s.puffs = append(s.puffs, fartPuff{
			Body: entity.Body{X: p.X + (s.rnd()-0.5)*20, Y: p.Y + 25 + s.rnd()*10, VY: 40 + s.rnd()*30},
			Size: 15 + s.rnd()*10,
			Life: 0.8 + s.rnd()*0.4,
		})
	}
	s.particles.Emit(p.X, p.Y+20, 3, effect.EmitOptions{
		Sprites: []sprite.ID{sprite.FartCloud}, Spread: 25, Size: 12,
	})
}

func lerpRGB(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t)) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

func (s *Scroller) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.size()
	space := math.Min(1, s.altitude/s.cfg.GoalAltitude)
	switch {
	case space < 0.3:
		kit.FillGradient(screen, render.Hex("#4488CC"), render.Hex("#88BBEE"))
	case space < 0.7:
		r := (space - 0.3) / 0.4
		kit.FillGradient(screen,
			lerpRGB(render.Hex("#4488CC"), render.Hex("#0A0A2E"), r),
			lerpRGB(render.Hex("#88BBEE"), render.Hex("#1A1A4E"), r))
	default:
		kit.FillGradient(screen, render.Hex("#0A0A2E"), render.Hex("#0A001E"), render.Hex("#1A0533"))
	}

	for _, st := range s.stars {
		a := st.Alpha * math.Min(1, space*2+0.2)
		vector.DrawFilledCircle(screen, float32(st.X), float32(st.Y), float32(st.Size), render.Fade(render.White, a), true)
	}
	if space > 0.7 {
		kit.DrawSprite(screen, sprite.Moon, w*0.75, h*0.12, 60, (space-0.7)/0.3)
	}
	if s.ufo != nil {
		kit.DrawSprite(screen, sprite.UFO, s.ufo.X, s.ufo.Y, 40, 1)
	}
	for _, o := range s.objects {
		kit.DrawSprite(screen, o.sprite(), o.X, o.Y, o.Size, 1)
	}
	for _, c := range s.puffs {
		kit.DrawSprite(screen, sprite.FartCloud, c.X, c.Y, c.Size, math.Min(1, c.Life))
	}

	p := s.player
	if !p.IsInvincible() || int(p.IframeTimer*10)%2 == 0 {
		kit.DrawSprite(screen, sprite.SpaceHelmet, p.X, p.Y-5, 50, 1)
		kit.DrawSprite(screen, p.Sprite, p.X, p.Y, p.Size, 1)
	}
	s.particles.Draw(screen, kit)

	meter := entity.Rect{X: 20, Y: 60, W: 12, H: h - 140}
	kit.FillRect(screen, meter, render.Fade(render.White, 0.15))
	fill := space * meter.H
	kit.FillRect(screen, entity.Rect{X: meter.X, Y: meter.Y + meter.H - fill, W: meter.W, H: fill},
		lerpRGB(render.Hex("#44FF44"), render.Hex("#FF4444"), space))
	kit.DrawSprite(screen, sprite.Moon, meter.X+6, meter.Y-5, 16, 1)
	kit.DrawText(screen, fmt.Sprintf("%dm", int(s.altitude)), meter.X+18, meter.Y+meter.H-fill,
		render.TextStyle{Size: 14, Color: render.White, Bold: true})

	for i := 0; i < s.cfg.HP; i++ {
		a := 1.0
		if i >= s.HP() {
			a = 0.3
		}
		kit.DrawSprite(screen, sprite.Heart, w-30-float64(i)*28, 25, 20, a)
	}
	kit.DrawSprite(screen, sprite.Star, w/2-35, 22, 14, 1)
	kit.DrawText(screen, fmt.Sprintf("%d pts", s.score), w/2, 22,
		render.TextStyle{Size: 16, Color: render.Gold, Align: text.AlignCenter, Bold: true})

	s.drawHikari(screen, 60, h-50, 45)
	kit.DrawText(screen, "Tap to fart! Collect stars and reach the moon!", w/2, h-15,
		render.TextStyle{Size: 12, Color: render.Fade(render.White, 0.4), Align: text.AlignCenter})

	if s.phase == state.PhaseGameOver {
		kit.FillRect(screen, entity.Rect{W: w, H: h}, render.Fade(color.Black, 0.7))
		kit.DrawCenterText(screen, "Crashed!", w/2, h/2-15, 32, render.Red)
		body := render.TextStyle{Size: 16, Color: render.White, Align: text.AlignCenter}
		kit.DrawText(screen, fmt.Sprintf("Altitude: %dm", int(s.altitude)), w/2, h/2+20, body)
		kit.DrawText(screen, fmt.Sprintf("Score: %d", s.score), w/2, h/2+45, body)
		kit.DrawText(screen, "Tap to try again", w/2, h/2+80, body)
		return
	}
	s.drawEnd(screen)
}
