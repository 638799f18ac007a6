package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hikari/internal/application/scene/scenetest"
	"github.com/younwookim/hikari/internal/application/state"
	"github.com/younwookim/hikari/internal/domain/entity"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
)

func newScroller(t *testing.T) (*scenetest.Controller, *Scroller) {
	ctl := scenetest.New(t)
	s := NewScroller(ctl, 9)
	ctl.SetScene(s)
	return ctl, s
}

// drop places an object of kind right on the rocket.
func (s *Scroller) drop(kind SkyKind) {
	p := s.Player()
	s.objects = append(s.objects, SkyObject{Body: entity.Body{X: p.X, Y: p.Y}, Kind: kind, Size: 24, HitR: 15})
}

func TestScroller_Thrust(t *testing.T) {
	ctl, s := newScroller(t)
	s.OnClick(0, 0)
	assert.Equal(t, s.cfg.Thrust, s.Player().VY)
	assert.Equal(t, 1, ctl.Sound.Count(audio.CueFart))
	assert.Len(t, s.puffs, 3)

	s.OnClick(0, 0)
	assert.Equal(t, 1, ctl.Sound.Count(audio.CueFart), "cooling down")

	require.NoError(t, s.Update(frame))
	assert.Greater(t, s.Altitude(), 0.0)

	require.NoError(t, scenetest.Run(s, 10))
	s.OnClick(0, 0)
	assert.Equal(t, 2, ctl.Sound.Count(audio.CueFart))
}

func TestScroller_FallsToFloor(t *testing.T) {
	_, s := newScroller(t)
	_, h := s.size()
	floor := h * 0.85
	advanceUntil(t, s, func() bool { return s.Player().Y == floor })
	assert.Equal(t, 0.0, s.Altitude())
	assert.Equal(t, 0.0, s.Player().VY)
}

func TestScroller_Ceiling(t *testing.T) {
	_, s := newScroller(t)
	_, h := s.size()
	p := s.Player()
	p.Y = h*0.15 + 1
	p.VY = s.cfg.MaxUpSpeed

	require.NoError(t, s.Update(frame))
	assert.Equal(t, h*0.15, p.Y)
	assert.Equal(t, 0.0, p.VY)
	assert.Greater(t, s.Altitude(), ceilingClimb*frame*s.cfg.AltitudeScale)
}

func TestScroller_Pickups(t *testing.T) {
	tests := []struct {
		name      string
		kind      SkyKind
		hp        float64
		wantHP    int
		wantScore int
		message   string
	}{
		{"star scores", SkyStar, 3, 3, 10, ""},
		{"heart heals", SkyHeart, 2, 3, 0, "heal"},
		{"heart at full health", SkyHeart, 3, 3, 0, ""},
		{"meteorite hurts", SkyMeteorite, 3, 2, 0, "hit"},
		{"poop hurts", SkyPoop, 3, 2, 0, "poop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl, s := newScroller(t)
			s.Player().Health = tt.hp
			s.message, s.messageTimer = "", 0
			s.drop(tt.kind)

			require.NoError(t, s.Update(frame))
			assert.Equal(t, tt.wantHP, s.HP())
			assert.Equal(t, tt.wantScore, s.Score())
			assert.Empty(t, s.Objects())
			if tt.message != "" {
				assert.Equal(t, ctl.Cat.Reaction("scroller", tt.message), s.Message())
			} else {
				assert.Empty(t, s.Message())
			}
		})
	}
}

func TestScroller_PoopCloud(t *testing.T) {
	_, s := newScroller(t)
	s.drop(SkyPoop)
	require.NoError(t, s.Update(frame))
	assert.Len(t, s.puffs, 5)
}

func TestScroller_Invincibility(t *testing.T) {
	ctl, s := newScroller(t)
	s.drop(SkyMeteorite)
	require.NoError(t, s.Update(frame))
	require.Equal(t, 2, s.HP())
	assert.True(t, s.Player().IsInvincible())

	s.drop(SkyMeteorite)
	require.NoError(t, s.Update(frame))
	assert.Equal(t, 2, s.HP())
	assert.Len(t, s.Objects(), 1, "hazards pass through while invincible")
	assert.Equal(t, 1, ctl.Sound.Count(audio.CueBomb))
}

func TestScroller_LoseAndRestart(t *testing.T) {
	ctl, s := newScroller(t)
	s.Player().Health = 1
	s.altitude = 300
	s.drop(SkyMeteorite)

	require.NoError(t, s.Update(frame))
	assert.Equal(t, state.PhaseGameOver, s.Phase())
	assert.Equal(t, ctl.Cat.Reaction("scroller", "lose"), s.Message())
	assert.False(t, ctl.Sound.Playing)

	s.OnClick(0, 0)
	assert.Equal(t, state.PhasePlaying, s.Phase())
	assert.Equal(t, s.cfg.HP, s.HP())
	assert.Equal(t, 0.0, s.Altitude())
	assert.Empty(t, s.Objects())
	assert.True(t, ctl.Sound.Playing)
	assert.Empty(t, ctl.Started)
}

func TestScroller_Milestones(t *testing.T) {
	ctl, s := newScroller(t)
	s.altitude = s.cfg.GoalAltitude * 0.26
	require.NoError(t, s.Update(frame))
	assert.Equal(t, ctl.Cat.Reaction("scroller", "quarter"), s.Message())

	s.message, s.messageTimer = "", 0
	require.NoError(t, s.Update(frame))
	assert.Empty(t, s.Message(), "each milestone speaks once")
}

func TestScroller_Goal(t *testing.T) {
	ctl, s := newScroller(t)
	s.altitude = s.cfg.GoalAltitude
	require.NoError(t, s.Update(frame))
	assert.Equal(t, state.PhaseCleared, s.Phase())
	assert.Equal(t, ctl.Cat.Reaction("scroller", "clear"), s.Message())

	s.OnClick(0, 0)
	assert.Equal(t, []int{9}, ctl.Completed)
}

func TestScroller_UFO(t *testing.T) {
	ctl, s := newScroller(t)
	p := s.Player()
	s.ufo = &entity.Body{X: p.X, Y: p.Y}

	require.NoError(t, s.Update(frame))
	assert.Nil(t, s.UFO())
	assert.Equal(t, s.cfg.UFOBonus, s.Score())
	assert.Equal(t, ctl.Cat.Reaction("scroller", "ufo"), s.Message())
	assert.Equal(t, 1, ctl.Sound.Count(audio.CueStar))
}

func TestScroller_Spawns(t *testing.T) {
	_, s := newScroller(t)
	s.Player().IframeTimer = 100
	require.NoError(t, scenetest.Run(s, 90))
	assert.NotEmpty(t, s.Objects())
	for _, o := range s.Objects() {
		assert.Greater(t, o.VY, 0.0)
	}
}
