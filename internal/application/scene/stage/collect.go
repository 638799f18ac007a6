package stage

import (
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/domain/effect"
	"github.com/younwookim/hikari/internal/domain/sprite"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/config"
)

// ItemKind is what a falling item is worth.
type ItemKind int

const (
	ItemNormal ItemKind = iota
	ItemGolden
	ItemBomb
)

// FallingItem drops from the top of the screen.
type FallingItem struct {
	X, Y   float64
	Speed  float64
	Size   float64
	Kind   ItemKind
	Value  int
	Wobble float64
}

func (it FallingItem) sprite() sprite.ID {
	switch it.Kind {
	case ItemGolden:
		return sprite.GoldenPoop
	case ItemBomb:
		return sprite.Bomb
	}
	return sprite.Poop
}

// Collect is stage 1: tap falling poop before it leaves the screen.
type Collect struct {
	play
	cfg config.CollectTuning

	count         int
	items         []FallingItem
	spawnTimer    float64
	spawnInterval float64
}

func NewCollect(ctl scene.Controller, id int) *Collect {
	cfg := ctl.Tuning().Collect
	return &Collect{
		play:          newPlay(ctl, id, "collect"),
		cfg:           cfg,
		spawnInterval: cfg.SpawnInterval,
	}
}

// Count is the collected total.
func (s *Collect) Count() int { return s.count }

// Items are the items currently falling.
func (s *Collect) Items() []FallingItem { return s.items }

// SpawnInterval is the current time between spawns.
func (s *Collect) SpawnInterval() float64 { return s.spawnInterval }

func (s *Collect) Update(dt float64) error {
	if !s.tick(dt) {
		return nil
	}

	s.spawnTimer += dt
	if s.spawnTimer >= s.spawnInterval {
		s.spawnTimer = 0
		s.spawn()
		s.spawnInterval = math.Max(s.cfg.MinSpawnInterval, s.spawnInterval-s.cfg.SpawnDecay)
	}

	_, h := s.size()
	kept := s.items[:0]
	for _, it := range s.items {
		it.Y += it.Speed * dt
		it.Wobble += dt * 3
		if it.Y <= h+40 {
			kept = append(kept, it)
		}
	}
	s.items = kept
	return nil
}

func (s *Collect) spawn() {
	w, _ := s.size()
	it := FallingItem{
		X:      30 + s.rnd()*(w-60),
		Y:      -40,
		Kind:   ItemNormal,
		Value:  1,
		Size:   35 + s.rnd()*15,
		Wobble: s.rnd() * math.Pi * 2,
	}
	switch r := s.rnd(); {
	case r < s.cfg.GoldenChance:
		it.Kind, it.Value, it.Size = ItemGolden, s.cfg.GoldenValue, 45
	case r < s.cfg.GoldenChance+s.cfg.BombChance:
		it.Kind, it.Value, it.Size = ItemBomb, s.cfg.BombValue, 35
	}
	it.Speed = s.cfg.MinFallSpeed + s.rnd()*s.cfg.FallSpeedRange
	s.items = append(s.items, it)
}

func (s *Collect) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.size()
	s.drawBackground(screen, "#5A4510")
	for _, it := range s.items {
		kit.DrawSprite(screen, it.sprite(), it.X+math.Sin(it.Wobble)*5, it.Y, it.Size, 1)
	}
	s.particles.Draw(screen, kit)
	kit.DrawCounter(screen, s.count, s.cfg.Goal, "Collected", w)
	s.drawHikari(screen, 50, h-60, 40)
	s.drawEnd(screen)
}

func (s *Collect) OnClick(x, y float64) {
	if s.finishClick() {
		return
	}

	// Topmost first
	for i := len(s.items) - 1; i >= 0; i-- {
		it := s.items[i]
		r := it.Size * s.cfg.HitScale
		if (x-it.X)*(x-it.X)+(y-it.Y)*(y-it.Y) >= r*r {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		s.count = max(0, s.count+it.Value)
		s.collected(it)

		if msg := s.reaction(strconv.Itoa(s.count)); msg != "" {
			s.say(msg)
		}
		if s.count >= s.cfg.Goal {
			s.clear()
		}
		return
	}
}

func (s *Collect) collected(it FallingItem) {
	switch it.Kind {
	case ItemBomb:
		s.ctl.Audio().Play(audio.CueBomb)
		s.particles.Emit(it.X, it.Y, 8, effect.EmitOptions{
			Sprites: []sprite.ID{sprite.Explosion, sprite.Fire}, Spread: 150, Size: 25,
		})
		s.react("bomb")
	case ItemGolden:
		s.ctl.Audio().Play(audio.CueGolden)
		s.particles.Emit(it.X, it.Y, 12, effect.EmitOptions{
			Sprites: []sprite.ID{sprite.Sparkle, sprite.Star, sprite.SwirlStar}, Spread: 200, Size: 20,
		})
		s.react("golden")
	default:
		s.ctl.Audio().Play(audio.CueCollect)
		s.particles.Emit(it.X, it.Y, 3, effect.EmitOptions{
			Sprites: []sprite.ID{sprite.Poop}, Spread: 80, Size: 15,
		})
	}
}
