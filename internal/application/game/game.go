// Package game provides the frame loop host that owns the live Scene.
package game

import (
	"fmt"
	"log"
	"math/rand"
	"runtime/debug"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/application/system"
	"github.com/younwookim/hikari/internal/domain/effect"
	"github.com/younwookim/hikari/internal/domain/progress"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/config"
	"github.com/younwookim/hikari/internal/infrastructure/render"
	"github.com/younwookim/hikari/internal/infrastructure/storage"
)

// Factories build the scenes the host switches to on its own.
type Factories struct {
	Title      func(ctl scene.Controller) scene.Scene
	Stage      func(ctl scene.Controller, id int) (scene.Scene, error)
	StageClear func(ctl scene.Controller, id int) scene.Scene
}

// Services are owned by the host and handed to scenes through Controller.
type Services struct {
	Audio audio.Service
	Kit   *render.Kit // nil in headless tests
	Store storage.Store
	Input system.Source
	Rand  *rand.Rand
}

// Game implements ebiten.Game and scene.Controller.
type Game struct {
	cfg     *config.GameConfig
	content *config.Content
	svc     Services
	make    Factories

	current    scene.Scene
	transition *effect.Transition
	progress   *progress.State
	gesture    *system.Gesture

	screenW int
	screenH int
	locked  bool

	last      time.Time
	now       func() time.Time
	fixedStep float64

	failed error
}

// New creates the host, loads progress and enters the title scene.
func New(bundle *config.Bundle, svc Services, f Factories) *Game {
	if svc.Audio == nil {
		svc.Audio = audio.Nop{}
	}
	if svc.Rand == nil {
		svc.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if svc.Store == nil {
		svc.Store = storage.NewMemoryStore(nil)
	}

	cfg := bundle.Game
	g := &Game{
		cfg:        cfg,
		content:    bundle.Content,
		svc:        svc,
		make:       f,
		transition: effect.NewTransition(cfg.Transition.Rate),
		progress:   storage.Load(svc.Store),
		gesture:    system.NewGesture(cfg.Loop.ClickSlop),
		screenW:    cfg.Display.MaxWidth,
		screenH:    cfg.Display.MaxHeight,
		now:        time.Now,
	}
	g.guard("enter title", func() error {
		g.SetScene(f.Title(g))
		return nil
	})
	return g
}

// UseFixedStep makes every Update advance by exactly one frame of the
// configured framerate. Recording and replay need it for determinism.
func (g *Game) UseFixedStep() {
	fr := g.cfg.Display.Framerate
	if fr <= 0 {
		fr = 60
	}
	g.fixedStep = 1.0 / float64(fr)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.Step(g.frameDelta())
}

func (g *Game) frameDelta() float64 {
	if g.fixedStep > 0 {
		return g.fixedStep
	}
	now := g.now()
	if g.last.IsZero() {
		g.last = now
		return g.clampDT(1.0 / 60.0)
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now
	return g.clampDT(dt)
}

func (g *Game) clampDT(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if ceil := g.cfg.Loop.MaxDT; ceil > 0 && dt > ceil {
		return ceil
	}
	return dt
}

// Step runs one tick with the given delta (clamped to the frame ceiling).
func (g *Game) Step(dt float64) error {
	dt = g.clampDT(dt)

	if g.svc.Input != nil {
		for _, in := range g.svc.Input.Poll() {
			g.Dispatch(in)
		}
	}

	if g.failed == nil {
		g.guard("update", func() error { return g.current.Update(dt) })
	}
	if g.failed == nil {
		g.guard("transition", func() error {
			g.transition.Update(dt)
			return nil
		})
	}
	g.svc.Audio.Update(dt)
	return nil
}

// Dispatch routes one input intent to the live scene.
func (g *Game) Dispatch(in system.Intent) {
	if g.failed != nil {
		if _, ok := in.(system.PointerUp); ok {
			g.returnToTitle()
		}
		return
	}

	g.guard("input", func() error {
		switch v := in.(type) {
		case system.PointerDown:
			g.gesture.Down(v.X, v.Y)
			g.current.OnDragStart(v.X, v.Y)
		case system.PointerMove:
			g.current.OnDragMove(v.X, v.Y)
		case system.PointerUp:
			g.current.OnDragEnd(v.X, v.Y)
			if g.gesture.Up(v.X, v.Y) {
				g.current.OnClick(v.X, v.Y)
			}
		case system.KeyDown:
			if v.Key == system.KeySpace {
				w, h := g.ScreenSize()
				g.current.OnDragStart(0, 0)
				g.current.OnClick(w/2, h/2)
			}
		case system.KeyUp:
			if v.Key == system.KeySpace {
				g.current.OnDragEnd(0, 0)
			}
		}
		return nil
	})
}

// returnToTitle drops the broken scene and shows the title again.
func (g *Game) returnToTitle() {
	log.Printf("Recovering from frame failure: %v", g.failed)
	g.failed = nil
	g.gesture.Reset()
	g.transition.Reset()
	broken := g.current
	g.current = nil
	if broken != nil {
		g.guard("cleanup", func() error {
			broken.Cleanup()
			return nil
		})
		g.failed = nil
	}
	g.guard("enter title", func() error {
		g.SetScene(g.make.Title(g))
		return nil
	})
}

// guard runs fn, converting a returned error or a panic into a frame failure.
func (g *Game) guard(what string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			g.fail(fmt.Errorf("%s panicked: %v\n%s", what, r, debug.Stack()))
		}
	}()
	if err := fn(); err != nil {
		g.fail(fmt.Errorf("%s: %w", what, err))
	}
}

func (g *Game) fail(err error) {
	if g.failed != nil {
		return
	}
	log.Printf("Frame failure: %v", err)
	g.failed = err
}

// Failed returns the pending frame failure, if any.
func (g *Game) Failed() error {
	return g.failed
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.failed == nil {
		g.guard("draw", func() error {
			g.current.Draw(screen)
			return nil
		})
	}
	if g.failed != nil {
		g.drawError(screen)
		return
	}
	g.transition.Draw(screen)
}

func (g *Game) drawError(screen *ebiten.Image) {
	screen.Fill(render.Night)
	w, h := g.ScreenSize()
	if g.svc.Kit == nil {
		ebitenutil.DebugPrintAt(screen, "Something went wrong\nTap to return to the menu", int(w/2)-80, int(h/2)-10)
		return
	}
	g.svc.Kit.DrawCenterText(screen, "Something went wrong", w/2, h/2-10, 16, render.Red)
	g.svc.Kit.DrawText(screen, "Tap to return to the menu", w/2, h/2+20, render.TextStyle{Size: 14, Color: render.White, Align: text.AlignCenter})
}

// LockScreen pins the logical surface to w x h regardless of the window.
// Recording and replay need it so layouts match across machines.
func (g *Game) LockScreen(w, h int) {
	if w <= 0 || h <= 0 {
		w, h = g.cfg.Display.MaxWidth, g.cfg.Display.MaxHeight
	}
	g.screenW, g.screenH = w, h
	g.locked = true
}

// Layout implements ebiten.Game. The logical surface is the outside size
// capped at the configured maximum.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.locked {
		return g.screenW, g.screenH
	}
	w, h := g.cfg.Display.MaxWidth, g.cfg.Display.MaxHeight
	if outsideWidth > 0 && outsideWidth < w {
		w = outsideWidth
	}
	if outsideHeight > 0 && outsideHeight < h {
		h = outsideHeight
	}
	g.screenW, g.screenH = w, h
	return w, h
}

// ScreenSize implements scene.Controller.
func (g *Game) ScreenSize() (float64, float64) {
	return float64(g.screenW), float64(g.screenH)
}

// Progress implements scene.Controller.
func (g *Game) Progress() *progress.State {
	return g.progress
}

// Current returns the live scene.
func (g *Game) Current() scene.Scene {
	return g.current
}

// Transition exposes the fade for inspection.
func (g *Game) Transition() *effect.Transition {
	return g.transition
}

// SetScene implements scene.Controller.
func (g *Game) SetScene(s scene.Scene) {
	if g.current != nil {
		g.current.Cleanup()
	}
	g.current = s
	s.OnEnter()
}

// StartStage implements scene.Controller.
func (g *Game) StartStage(id int) {
	g.transition.Start(func() {
		s, err := g.make.Stage(g, id)
		if err != nil {
			g.fail(fmt.Errorf("failed to start stage %d: %w", id, err))
			return
		}
		g.SetScene(s)
	})
}

// CompleteStage implements scene.Controller.
func (g *Game) CompleteStage(id int) {
	g.progress.MarkCleared(progress.StageID(id))
	g.save()
	g.transition.Start(func() {
		g.SetScene(g.make.StageClear(g, id))
	})
}

// UnlockSecret implements scene.Controller.
func (g *Game) UnlockSecret() {
	g.progress.UnlockSecret()
	g.save()
}

// ShowTitle implements scene.Controller.
func (g *Game) ShowTitle() {
	g.transition.Start(func() {
		g.SetScene(g.make.Title(g))
	})
}

func (g *Game) save() {
	if err := storage.Save(g.svc.Store, g.progress); err != nil {
		log.Printf("Progress not saved: %v", err)
	}
}

// Audio implements scene.Controller.
func (g *Game) Audio() audio.Service { return g.svc.Audio }

// Kit implements scene.Controller.
func (g *Game) Kit() *render.Kit { return g.svc.Kit }

// Content implements scene.Controller.
func (g *Game) Content() *config.Content { return g.content }

// Tuning implements scene.Controller.
func (g *Game) Tuning() *config.StageTuning { return &g.cfg.Stages }

// Rand implements scene.Controller.
func (g *Game) Rand() *rand.Rand { return g.svc.Rand }
