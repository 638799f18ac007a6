package stage

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/domain/effect"
	"github.com/younwookim/hikari/internal/domain/entity"
	"github.com/younwookim/hikari/internal/domain/schedule"
	"github.com/younwookim/hikari/internal/domain/sprite"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/config"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

// CourseKind is the type of a course object.
type CourseKind int

const (
	CourseStar CourseKind = iota
	CoursePoop
	CourseMountain
	CourseCloud
	CourseRainbow
	CourseGoal
)

// CourseObject sits at a fixed course distance.
type CourseObject struct {
	Kind CourseKind
	X, Y float64
	Size float64
}

func (o CourseObject) sprite() sprite.ID {
	switch o.Kind {
	case CourseStar:
		return sprite.CourseStar
	case CoursePoop:
		return sprite.CoursePoop
	case CourseMountain:
		return sprite.Mountain
	case CourseCloud:
		return sprite.Cloud
	case CourseRainbow:
		return sprite.Rainbow
	}
	return sprite.FinishFlag
}

// Sky and ground per quarter of the course.
var raceBackdrops = [4][2]string{
	{"#87CEEB", "#228B22"},
	{"#4682B4", "#8B7355"},
	{"#1E90FF", "#87CEFA"},
	{"#FF69B4", "#DDA0DD"},
}

// Race is stage 4: an auto-scrolling bike course.
type Race struct {
	play
	cfg config.RaceTuning

	score    int
	distance float64
	speed    float64
	groundY  float64
	playerX  float64
	player   entity.Body
	onGround bool
	holding  bool
	holdTime float64
	objects  []CourseObject
	recovery schedule.TaskID
}

func NewRace(ctl scene.Controller, id int) *Race {
	cfg := ctl.Tuning().Race
	w, h := ctl.ScreenSize()
	s := &Race{
		play:     newPlay(ctl, id, "race"),
		cfg:      cfg,
		speed:    cfg.ScrollSpeed,
		groundY:  h * cfg.GroundRatio,
		playerX:  w * 0.2,
		onGround: true,
	}
	s.player.Y = s.groundY
	s.generateCourse()
	return s
}

func (s *Race) OnEnter() {
	s.play.OnEnter()
	s.react("start")
}

// Score is the star total.
func (s *Race) Score() int { return s.score }

// Distance travelled along the course.
func (s *Race) Distance() float64 { return s.distance }

// Speed is the current scroll speed.
func (s *Race) Speed() float64 { return s.speed }

// OnGround reports whether the bike is touching the ground.
func (s *Race) OnGround() bool { return s.onGround }

// Objects are the remaining course objects.
func (s *Race) Objects() []CourseObject { return s.objects }

func (s *Race) generateCourse() {
	g := s.groundY
	for x := 400.0; x < s.cfg.CourseLength; x += 100 + s.rnd()*150 {
		switch r := s.rnd(); {
		case r < 0.25:
			s.objects = append(s.objects, CourseObject{Kind: CourseStar, X: x, Y: g - 80 - s.rnd()*100, Size: 30})
		case r < 0.4:
			s.objects = append(s.objects, CourseObject{Kind: CoursePoop, X: x, Y: g - 20, Size: 30})
		case r < 0.55:
			s.objects = append(s.objects, CourseObject{Kind: CourseMountain, X: x, Y: g - 60, Size: 50})
		case r < 0.65:
			s.objects = append(s.objects, CourseObject{Kind: CourseCloud, X: x, Y: g - 180 - s.rnd()*60, Size: 40})
		case r < 0.72:
			s.objects = append(s.objects, CourseObject{Kind: CourseRainbow, X: x, Y: g - 120, Size: 50})
			for i := 1; i <= 5; i++ {
				s.objects = append(s.objects, CourseObject{
					Kind: CourseStar, X: x + float64(i)*40, Y: g - 140 - s.rnd()*40, Size: 25,
				})
			}
		}
	}
	s.objects = append(s.objects, CourseObject{Kind: CourseGoal, X: s.cfg.CourseLength, Y: g - 40, Size: 60})
}

func (s *Race) screenX(o CourseObject) float64 {
	return o.X - s.distance + s.playerX
}

func (s *Race) Update(dt float64) error {
	if !s.tick(dt) {
		return nil
	}

	if s.holding && s.onGround {
		s.holdTime += dt
	}
	s.distance += s.speed * dt

	if !s.onGround {
		s.player.Integrate(dt, s.cfg.Gravity)
		if s.player.Y >= s.groundY {
			s.player.Y = s.groundY
			s.player.VY = 0
			s.onGround = true
		}
		if !s.onGround {
			s.particles.Emit(s.playerX-20, s.player.Y+10, 1, effect.EmitOptions{
				Sprites: []sprite.ID{sprite.Sparkle}, Spread: 20, Size: 12,
			})
		}
	}

	s.collide()
	return nil
}

func (s *Race) collide() {
	w, _ := s.size()
	for i := len(s.objects) - 1; i >= 0; i-- {
		o := s.objects[i]
		sx := s.screenX(o)
		if sx < -60 || sx > w+60 {
			continue
		}
		if math.Hypot(s.playerX-sx, s.player.Y-o.Y) >= o.Size+20 {
			continue
		}
		switch o.Kind {
		case CourseStar:
			s.ctl.Audio().Play(audio.CueStar)
			s.score += s.cfg.StarScore
			s.particles.Emit(sx, o.Y, 5, effect.EmitOptions{
				Sprites: []sprite.ID{sprite.Star, sprite.Sparkle}, Spread: 80, Size: 15,
			})
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
		case CoursePoop:
			if !s.onGround {
				continue
			}
			s.ctl.Audio().Play(audio.CuePoopStep)
			s.speed = math.Max(s.cfg.MinSpeed, s.speed-s.cfg.PoopSlowdown)
			s.react("poop")
			s.timers.Cancel(s.recovery)
			s.recovery = s.timers.After(s.cfg.SlowRecovery, func() { s.speed = s.cfg.ScrollSpeed })
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
		case CourseGoal:
			s.react("goal")
			s.clear()
			return
		case CourseMountain:
			if s.onGround {
				s.distance -= s.cfg.MountainPushback
			}
		}
	}
}

// Progress is the fraction of the course covered.
func (s *Race) Progress() float64 {
	return math.Min(1, s.distance/s.cfg.CourseLength)
}

func (s *Race) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.size()

	quarter := min(3, int(s.distance/(s.cfg.CourseLength/4)))
	if quarter < 0 {
		quarter = 0
	}
	bg := raceBackdrops[quarter]
	kit.FillRect(screen, entity.Rect{W: w, H: s.groundY}, render.Hex(bg[0]))
	kit.FillRect(screen, entity.Rect{Y: s.groundY, W: w, H: h - s.groundY}, render.Hex(bg[1]))

	for _, o := range s.objects {
		sx := s.screenX(o)
		if sx < -60 || sx > w+60 {
			continue
		}
		kit.DrawSprite(screen, o.sprite(), sx, o.Y, o.Size, 1)
	}

	mount := sprite.Bike
	if !s.onGround {
		mount = sprite.Bird
	}
	kit.DrawSprite(screen, mount, s.playerX, s.player.Y, 40, 1)
	kit.DrawSprite(screen, sprite.Hikari, s.playerX, s.player.Y-30, 25, 1)
	s.particles.Draw(screen, kit)

	kit.DrawScore(screen, s.score, w)
	bar := entity.Rect{X: 10, Y: 10, W: w * 0.5, H: 20}
	kit.DrawProgressBar(screen, s.Progress(), bar, render.Green)
	kit.DrawText(screen, fmt.Sprintf("Goal %d%%", int(s.Progress()*100)), 18, 20,
		render.TextStyle{Size: 12, Color: render.White, Align: text.AlignStart})

	s.drawHikari(screen, 50, h-50, 30)
	s.drawEnd(screen)
}

func (s *Race) OnClick(x, y float64) {
	if s.finishClick() {
		return
	}
	if s.onGround {
		s.jump(false)
	}
}

func (s *Race) OnDragStart(x, y float64) {
	s.holding = true
	s.holdTime = 0
}

func (s *Race) OnDragEnd(x, y float64) {
	if s.holding && s.onGround && !s.phase.Finished() {
		s.jump(s.holdTime > s.cfg.HoldThreshold)
	}
	s.holding = false
}

func (s *Race) jump(high bool) {
	s.ctl.Audio().Play(audio.CueJump)
	s.player.VY = s.cfg.JumpPower
	if high {
		s.player.VY = s.cfg.HighJumpPower
	}
	s.onGround = false
}
