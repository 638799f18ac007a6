package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/application/scene/scenetest"
	"github.com/younwookim/hikari/internal/application/state"
	"github.com/younwookim/hikari/internal/domain/entity"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
)

const frame = 1.0 / 60.0

// advanceUntil steps s until cond holds, failing after ten seconds of frames.
func advanceUntil(t *testing.T, s scene.Scene, cond func() bool) {
	t.Helper()
	for i := 0; i < 600; i++ {
		if cond() {
			return
		}
		require.NoError(t, s.Update(frame))
	}
	require.True(t, cond(), "condition not reached")
}

func TestBuild(t *testing.T) {
	ctl := scenetest.New(t)
	for id := 1; id <= 9; id++ {
		s, err := Build(ctl, id)
		require.NoError(t, err, "stage %d", id)
		assert.NotNil(t, s)
		assert.True(t, Known(id))
	}

	_, err := Build(ctl, 42)
	assert.EqualError(t, err, "unknown stage 42")
	assert.False(t, Known(42))
}

func TestCatalogueStagesAreBuildable(t *testing.T) {
	ctl := scenetest.New(t)
	ids := ctl.Cat.StageIDs()
	ids = append(ids, ctl.Cat.Secret.ID)
	for _, id := range ids {
		assert.True(t, Known(id), "stage %d", id)
	}
}

func TestStageLifecycle(t *testing.T) {
	for id := 1; id <= 9; id++ {
		ctl := scenetest.New(t)
		s, err := Build(ctl, id)
		require.NoError(t, err)

		ctl.SetScene(s)
		assert.Equal(t, []audio.Track{audio.StageTrack(id)}, ctl.Sound.Tracks, "stage %d", id)
		require.NoError(t, scenetest.Run(s, 120), "stage %d", id)

		s.Cleanup()
		s.Cleanup()
		assert.Equal(t, 1, ctl.Sound.Stops, "stage %d", id)
		assert.False(t, ctl.Sound.Playing)
	}
}

func TestFinishClick(t *testing.T) {
	tests := []struct {
		name      string
		end       func(p *play)
		completed []int
		started   []int
	}{
		{"cleared completes the stage", (*play).clear, []int{1}, nil},
		{"game over restarts the stage", (*play).lose, nil, []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := scenetest.New(t)
			s := NewCollect(ctl, 1)
			ctl.SetScene(s)
			tt.end(&s.play)
			assert.False(t, ctl.Sound.Playing)

			s.OnClick(0, 0)
			assert.Equal(t, tt.completed, ctl.Completed)
			assert.Equal(t, tt.started, ctl.Started)
		})
	}
}

func TestFinishedStageIgnoresUpdates(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewCollect(ctl, 1)
	s.clear()
	require.NoError(t, scenetest.Run(s, 120))
	assert.Empty(t, s.Items(), "no spawning once cleared")
}

func TestCollect_Tap(t *testing.T) {
	tests := []struct {
		name  string
		kind  ItemKind
		value int
		start int
		want  int
		cue   audio.Cue
	}{
		{"normal", ItemNormal, 1, 0, 1, audio.CueCollect},
		{"golden", ItemGolden, 5, 3, 8, audio.CueGolden},
		{"bomb floors at zero", ItemBomb, -10, 3, 0, audio.CueBomb},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := scenetest.New(t)
			s := NewCollect(ctl, 1)
			s.count = tt.start
			s.items = []FallingItem{{X: 200, Y: 300, Kind: tt.kind, Value: tt.value, Size: 40}}

			s.OnClick(205, 305)
			assert.Equal(t, tt.want, s.Count())
			assert.Empty(t, s.Items())
			assert.Equal(t, 1, ctl.Sound.Count(tt.cue))
		})
	}
}

func TestCollect_Miss(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewCollect(ctl, 1)
	s.items = []FallingItem{{X: 200, Y: 300, Value: 1, Size: 40}}
	s.OnClick(300, 300)
	assert.Equal(t, 0, s.Count())
	assert.Len(t, s.Items(), 1)
}

func TestCollect_ReactionAndGoal(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewCollect(ctl, 1)
	ctl.SetScene(s)

	s.count = 9
	s.items = []FallingItem{{X: 100, Y: 100, Value: 1, Size: 40}}
	s.OnClick(100, 100)
	assert.Equal(t, ctl.Cat.Reaction("collect", "10"), s.Message())

	s.count = s.cfg.Goal - 1
	s.items = []FallingItem{{X: 100, Y: 100, Value: 1, Size: 40}}
	s.OnClick(100, 100)
	assert.Equal(t, state.PhaseCleared, s.Phase())
	assert.False(t, ctl.Sound.Playing)
}

func TestCollect_SpawnAndFall(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewCollect(ctl, 1)
	s.items = []FallingItem{{X: 100, Y: 839, Speed: 200, Size: 40}}
	require.NoError(t, s.Update(frame))
	assert.Empty(t, s.Items(), "items past the bottom are dropped")

	require.NoError(t, scenetest.Run(s, 60))
	assert.NotEmpty(t, s.Items())
	assert.Less(t, s.SpawnInterval(), s.cfg.SpawnInterval)
}

func TestCut_Slash(t *testing.T) {
	tests := []struct {
		name  string
		size  float64
		worms int
	}{
		{"splits in two", 40, 2},
		{"too small to split", 12, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := scenetest.New(t)
			s := NewCut(ctl, 2)
			s.worms = []Worm{{Body: entity.Body{X: 200, Y: 300}, Size: tt.size, Segments: 4}}

			s.OnClick(200, 300)
			assert.Equal(t, 1, s.Count())
			require.Len(t, s.Worms(), tt.worms)
			for _, w := range s.Worms() {
				assert.InDelta(t, tt.size*s.cfg.SplitScale, w.Size, 1e-9)
			}
			assert.Equal(t, 1, ctl.Sound.Count(audio.CueSlash))
		})
	}
}

func TestCut_DragSlashes(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewCut(ctl, 2)
	s.worms = []Worm{{Body: entity.Body{X: 200, Y: 300}, Size: 40, Segments: 4}}

	s.OnDragStart(50, 50)
	s.OnDragMove(200, 300)
	s.OnDragEnd(200, 300)
	assert.Equal(t, 1, s.Count())
	assert.Len(t, s.trail, 1)

	s.OnDragMove(400, 400)
	assert.Len(t, s.trail, 1, "moves after release are ignored")
}

func TestCut_TrimAndCrowdWarning(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewCut(ctl, 2)
	s.worms = nil
	for i := 0; i < 60; i++ {
		s.worms = append(s.worms, Worm{Body: entity.Body{X: 200, Y: 300}, Size: float64(i + 1), Segments: 3})
	}
	require.NoError(t, s.Update(frame))

	require.Len(t, s.Worms(), s.cfg.TrimTo)
	for _, w := range s.Worms() {
		assert.Greater(t, w.Size, 20.0, "the largest worms survive")
	}
	assert.Equal(t, ctl.Cat.Reaction("cut", "crowd"), s.Message())
}

func TestCut_Goal(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewCut(ctl, 2)
	s.count = s.cfg.Goal - 1
	s.worms = []Worm{{Body: entity.Body{X: 200, Y: 300}, Size: 40, Segments: 4}}
	s.OnClick(200, 300)
	assert.Equal(t, state.PhaseCleared, s.Phase())
	assert.Equal(t, ctl.Cat.Reaction("cut", "100"), s.Message())
}

func TestChase_Flow(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewChase(ctl, 3)
	ctl.SetScene(s)

	s.OnClick(240, 10)
	assert.Equal(t, StepGacha, s.Step(), "gacha needs its button")

	btn := s.gachaButton()
	cx, cy := btn.Center()
	s.OnClick(cx, cy)
	assert.Equal(t, StepDrumroll, s.Step())
	assert.Equal(t, 1, ctl.Sound.Count(audio.CueDrumroll))

	advanceUntil(t, s, func() bool { return s.Step() == StepReveal })
	assert.Len(t, s.Runners(), min(s.cfg.Runners, len(ctl.Cat.NPCs)))

	advanceUntil(t, s, func() bool { return s.Step() == StepChase })
	assert.Equal(t, ctl.Cat.Reaction("chase", "chase"), s.Message())

	r := &s.runners[0]
	r.X, r.Y = 200, 300
	s.OnClick(210, 310)
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 1, ctl.Sound.Count(audio.CuePeshi))

	s.count = s.cfg.Goal - 1
	r.X, r.Y = 200, 300
	s.OnClick(200, 300)
	assert.Equal(t, state.PhaseCleared, s.Phase())
}

func TestChase_RunnersStayInField(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewChase(ctl, 3)
	s.step = StepChase
	s.setupRunners()
	require.NoError(t, scenetest.Run(s, 600))

	f := s.field()
	for _, r := range s.Runners() {
		assert.True(t, f.Contains(r.X, r.Y), "runner at %.1f,%.1f", r.X, r.Y)
	}
}

func TestRace_Jumps(t *testing.T) {
	tests := []struct {
		name string
		hold float64
		want func(s *Race) float64
	}{
		{"tap jumps", 0, func(s *Race) float64 { return s.cfg.JumpPower }},
		{"hold jumps higher", 0.3, func(s *Race) float64 { return s.cfg.HighJumpPower }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := scenetest.New(t)
			s := NewRace(ctl, 4)
			s.objects = nil

			s.OnDragStart(0, 0)
			for held := 0.0; held < tt.hold; held += frame {
				require.NoError(t, s.Update(frame))
			}
			s.OnDragEnd(0, 0)
			s.OnClick(0, 0)

			assert.False(t, s.OnGround())
			assert.Equal(t, tt.want(s), s.player.VY)
			assert.Equal(t, 1, ctl.Sound.Count(audio.CueJump))
		})
	}
}

func TestRace_Lands(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewRace(ctl, 4)
	s.objects = nil
	s.OnClick(0, 0)
	advanceUntil(t, s, s.OnGround)
	assert.Equal(t, s.groundY, s.player.Y)
}

func TestRace_PoopSlowsThenRecovers(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewRace(ctl, 4)
	s.objects = []CourseObject{{Kind: CoursePoop, X: 0, Y: s.groundY - 20, Size: 30}}

	require.NoError(t, s.Update(frame))
	assert.Equal(t, s.cfg.ScrollSpeed-s.cfg.PoopSlowdown, s.Speed())
	assert.Equal(t, 1, ctl.Sound.Count(audio.CuePoopStep))
	assert.Empty(t, s.Objects())

	advanceUntil(t, s, func() bool { return s.Speed() == s.cfg.ScrollSpeed })
}

func TestRace_StarAndGoal(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewRace(ctl, 4)
	s.objects = []CourseObject{{Kind: CourseStar, X: 0, Y: s.groundY, Size: 30}}
	require.NoError(t, s.Update(frame))
	assert.Equal(t, s.cfg.StarScore, s.Score())

	s.objects = []CourseObject{{Kind: CourseGoal, X: s.Distance(), Y: s.groundY - 40, Size: 60}}
	require.NoError(t, s.Update(frame))
	assert.Equal(t, state.PhaseCleared, s.Phase())
}

func TestRace_CourseEndsWithGoal(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewRace(ctl, 4)
	objs := s.Objects()
	require.NotEmpty(t, objs)
	last := objs[len(objs)-1]
	assert.Equal(t, CourseGoal, last.Kind)
	assert.Equal(t, s.cfg.CourseLength, last.X)
}

func TestMakeup_Flow(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewMakeup(ctl, 5)
	assert.Equal(t, "Hikari", s.Target().Name)
	assert.Len(t, s.targets, 1+len(ctl.Cat.NPCs)*s.cfg.NPCRepeats)

	tools := s.toolButtons()
	require.Len(t, tools, len(ctl.Cat.MakeupTools))
	cx, cy := tools[len(tools)-1].Center()
	s.OnClick(cx, cy)
	assert.Equal(t, len(tools)-1, s.tool)

	fx, fy, _ := s.face()
	s.OnClick(fx, fy)
	require.Len(t, s.Marks(), 1)
	assert.Equal(t, ctl.Cat.Reaction("makeup", "funny"), s.Message())

	dx, dy := s.doneButton().Center()
	s.OnClick(dx, dy)
	assert.True(t, s.Judging())
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 1, s.Stars())

	s.OnClick(fx, fy)
	assert.Len(t, s.Marks(), 1, "no makeup while judging")

	nx, ny := s.nextButton().Center()
	s.OnClick(nx, ny)
	assert.False(t, s.Judging())
	assert.Empty(t, s.Marks())
	assert.Equal(t, 1, s.target)
}

func TestMakeup_Verdict(t *testing.T) {
	tests := []struct {
		weird int
		stars int
		want  string
	}{
		{0, 0, "Wait... is that me?"},
		{3, 1, "Wait... is that me?"},
		{5, 2, "What a face!"},
		{10, 3, "...a work of art!"},
	}
	ctl := scenetest.New(t)
	s := NewMakeup(ctl, 5)
	for _, tt := range tests {
		s.weird = tt.weird
		assert.Equal(t, tt.stars, s.Stars(), "weird %d", tt.weird)
		assert.Equal(t, tt.want, s.Verdict(), "weird %d", tt.weird)
	}
}

func TestMakeup_Goal(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewMakeup(ctl, 5)
	s.count = s.cfg.Goal - 1
	dx, dy := s.doneButton().Center()
	s.OnClick(dx, dy)
	assert.Equal(t, state.PhaseCleared, s.Phase())
}

func TestFlush_Button(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewFlush(ctl, 6)
	require.Len(t, s.Items(), s.cfg.Items)

	s.OnClick(5, 5)
	assert.Equal(t, 0, s.Flushes())

	cx, cy := s.flushButton().Center()
	s.OnClick(cx, cy)
	assert.Equal(t, 1, s.Flushes())
	assert.Equal(t, 1, ctl.Sound.Count(audio.CueFlush))

	flushed := 0
	for _, it := range s.Items() {
		if it.Flushed {
			flushed++
		}
	}
	assert.Equal(t, s.cfg.PerFlush, flushed)

	s.flushes = 9
	s.OnClick(cx, cy)
	assert.Equal(t, ctl.Cat.Reaction("flush", "flushing"), s.Message())
}

func TestFlush_FlushedItemsDrain(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewFlush(ctl, 6)
	s.items = []FloatingItem{{X: 10, Y: 10, Size: 30, Flushed: true}}
	advanceUntil(t, s, func() bool { return len(s.Items()) == 0 })
}

func TestFlush_Collapse(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewFlush(ctl, 6)
	ctl.SetScene(s)
	for i := range s.items {
		s.items[i].Flushed = true
	}
	s.flushes = s.cfg.Goal

	require.NoError(t, s.Update(frame))
	assert.True(t, s.Collapsing())

	cx, cy := s.flushButton().Center()
	s.OnClick(cx, cy)
	assert.Equal(t, s.cfg.Goal, s.Flushes(), "button is dead while collapsing")

	advanceUntil(t, s, func() bool { return s.Phase() == state.PhaseCleared })
	assert.Equal(t, ctl.Cat.Reaction("flush", "done"), s.Message())
}

func TestFlush_NotEnoughFlushes(t *testing.T) {
	ctl := scenetest.New(t)
	s := NewFlush(ctl, 6)
	s.items = nil
	s.flushes = s.cfg.Goal - 1
	require.NoError(t, s.Update(frame))
	assert.False(t, s.Collapsing())
}
