// Package scenetest provides a recording Controller for scene tests.
package scenetest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/domain/progress"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/config"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

// ConfigDir is the shipped config directory as seen from a package two
// levels below scene.
const ConfigDir = "../../../../cmd/game/configs"

// Audio records every call made to it.
type Audio struct {
	Cues     []audio.Cue
	Tracks   []audio.Track
	Stops    int
	Playing  bool
	Advanced float64
}

func (a *Audio) Play(c audio.Cue) { a.Cues = append(a.Cues, c) }

func (a *Audio) StartBGM(t audio.Track) {
	a.Tracks = append(a.Tracks, t)
	a.Playing = true
}

func (a *Audio) StopBGM() {
	if !a.Playing {
		return
	}
	a.Playing = false
	a.Stops++
}

func (a *Audio) Update(dt float64) { a.Advanced += dt }

// Count returns how many times c was played.
func (a *Audio) Count(c audio.Cue) int {
	n := 0
	for _, x := range a.Cues {
		if x == c {
			n++
		}
	}
	return n
}

// Controller is an in-memory host. Scene swaps happen immediately.
type Controller struct {
	W, H float64

	State   *progress.State
	Current scene.Scene
	Sound   *Audio
	Cat     *config.Content
	Tune    *config.StageTuning
	Rng     *rand.Rand

	Started   []int
	Completed []int
	Unlocks   int
	Titles    int
}

// New loads the shipped configuration into a fresh controller.
func New(t testing.TB) *Controller {
	t.Helper()
	bundle, err := config.NewLoader(ConfigDir).LoadAll()
	require.NoError(t, err)
	return &Controller{
		W:     480,
		H:     800,
		State: progress.New(),
		Sound: &Audio{},
		Cat:   bundle.Content,
		Tune:  &bundle.Game.Stages,
		Rng:   rand.New(rand.NewSource(42)),
	}
}

func (c *Controller) ScreenSize() (float64, float64) { return c.W, c.H }
func (c *Controller) Progress() *progress.State      { return c.State }

func (c *Controller) SetScene(s scene.Scene) {
	if c.Current != nil {
		c.Current.Cleanup()
	}
	c.Current = s
	s.OnEnter()
}

func (c *Controller) StartStage(id int) { c.Started = append(c.Started, id) }

func (c *Controller) CompleteStage(id int) {
	c.State.MarkCleared(progress.StageID(id))
	c.Completed = append(c.Completed, id)
}

func (c *Controller) UnlockSecret() {
	c.State.UnlockSecret()
	c.Unlocks++
}

func (c *Controller) ShowTitle() { c.Titles++ }

func (c *Controller) Audio() audio.Service        { return c.Sound }
func (c *Controller) Kit() *render.Kit            { return nil }
func (c *Controller) Content() *config.Content    { return c.Cat }
func (c *Controller) Tuning() *config.StageTuning { return c.Tune }
func (c *Controller) Rand() *rand.Rand            { return c.Rng }

// ClearAll marks every main stage cleared.
func (c *Controller) ClearAll() {
	for _, id := range c.Cat.StageIDs() {
		c.State.MarkCleared(progress.StageID(id))
	}
}

// Run steps s for the given number of fixed 1/60 s frames.
func Run(s scene.Scene, frames int) error {
	for i := 0; i < frames; i++ {
		if err := s.Update(1.0 / 60.0); err != nil {
			return err
		}
	}
	return nil
}
