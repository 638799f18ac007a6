package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hikari/internal/application/scene/scenetest"
	"github.com/younwookim/hikari/internal/application/state"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
)

func newBattle(t *testing.T) (*scenetest.Controller, *Battle) {
	ctl := scenetest.New(t)
	s := NewBattle(ctl, 8)
	ctl.SetScene(s)
	return ctl, s
}

// strikeWith puts the battle at the timing ring and taps at radius ring.
func (s *Battle) strikeWith(breath int, ring float64) {
	s.step = StepTiming
	s.breath = breath
	s.ring = ring
	s.OnClick(0, 0)
}

func TestBattle_Grade(t *testing.T) {
	_, s := newBattle(t)
	tests := []struct {
		ring float64
		want Hit
	}{
		{40, HitPerfect},
		{48, HitPerfect},
		{32, HitPerfect},
		{49, HitGood},
		{60, HitGood},
		{61, HitMiss},
		{0, HitMiss},
		{120, HitMiss},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Grade(tt.ring), "ring %.0f", tt.ring)
	}
}

func TestBattle_Damage(t *testing.T) {
	tests := []struct {
		name   string
		breath int
		ring   float64
		want   float64
	}{
		{"perfect water", 0, 40, 30 - 25},
		{"good thunder", 1, 55, 30 - 19},
		{"miss flame", 2, 100, 30 - 7},
		{"perfect flame", 2, 40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl, s := newBattle(t)
			s.strikeWith(tt.breath, tt.ring)
			assert.Equal(t, tt.want, s.Enemy().Health)
			assert.Equal(t, StepDamage, s.Step())
			assert.Equal(t, 1, ctl.Sound.Count(audio.CueSlash))
		})
	}
}

func TestBattle_Turn(t *testing.T) {
	ctl, s := newBattle(t)
	assert.Equal(t, StepIntro, s.Step())
	assert.Equal(t, ctl.Cat.Reaction("battle", "start"), s.Message())

	advanceUntil(t, s, func() bool { return s.Step() == StepSelect })
	s.OnClick(5, 5)
	assert.Equal(t, StepSelect, s.Step())

	cx, cy := s.breathButtons()[0].Center()
	s.OnClick(cx, cy)
	assert.Equal(t, StepTiming, s.Step())
	assert.Equal(t, s.cfg.RingStart, s.Ring())

	s.ring = s.cfg.TargetRadius
	s.OnClick(0, 0)
	assert.Equal(t, 5.0, s.Enemy().Health)

	advanceUntil(t, s, func() bool { return s.Step() == StepEnemyAttack })
	assert.Equal(t, ctl.Cat.Reaction("battle", "enemyAttack"), s.Message())

	advanceUntil(t, s, func() bool { return s.Step() == StepDefend })
	advanceUntil(t, s, func() bool { return s.Step() == StepSelect })
	assert.Equal(t, s.cfg.PlayerHP-8, s.Player().Health, "undefended hit takes full attack")
	assert.Equal(t, 1, ctl.Sound.Count(audio.CueBomb))
}

func TestBattle_RingRunsOut(t *testing.T) {
	_, s := newBattle(t)
	s.step = StepTiming
	s.breath = 2
	s.ring = s.cfg.RingStart
	advanceUntil(t, s, func() bool { return s.Step() == StepDamage })
	assert.Equal(t, 30.0-7, s.Enemy().Health)
}

func TestBattle_Defend(t *testing.T) {
	ctl, s := newBattle(t)
	s.step = StepDefend
	s.defendT = s.cfg.DefendWindow

	s.OnClick(5, 5)
	assert.False(t, s.Defended())

	cx, cy := s.defendButton().Center()
	s.OnClick(cx, cy)
	assert.True(t, s.Defended())
	assert.Equal(t, s.cfg.PlayerHP-2, s.Player().Health, "30% of 8, rounded down")
	assert.Equal(t, ctl.Cat.Reaction("battle", "defend"), s.Message())
	assert.Equal(t, 1, ctl.Sound.Count(audio.CueCollect))

	s.OnClick(cx, cy)
	assert.Equal(t, s.cfg.PlayerHP-2, s.Player().Health, "one block per attack")

	require.NoError(t, s.Update(s.cfg.DefendWindow))
	assert.Equal(t, s.cfg.PlayerHP-2, s.Player().Health, "blocked attacks do not land later")

	advanceUntil(t, s, func() bool { return s.Step() == StepSelect })
}

func TestBattle_NextDemon(t *testing.T) {
	ctl, s := newBattle(t)
	s.Enemy().Health = 1
	s.Player().Health = 50
	s.strikeWith(0, s.cfg.TargetRadius)

	advanceUntil(t, s, func() bool { return s.Step() == StepWin })
	assert.Equal(t, ctl.Cat.Reaction("battle", "kill"), s.Message())

	advanceUntil(t, s, func() bool { return s.Step() == StepIntro })
	assert.Equal(t, 1, s.EnemyIndex())
	assert.Equal(t, ctl.Cat.Demons[1].HP, s.Enemy().MaxHealth)
	assert.Equal(t, 50+s.cfg.WinHeal, s.Player().Health)
}

func TestBattle_Clear(t *testing.T) {
	ctl, s := newBattle(t)
	s.enemyIndex = len(s.demons) - 1
	s.spawnEnemy()
	s.Enemy().Health = 1
	s.strikeWith(0, s.cfg.TargetRadius)

	advanceUntil(t, s, func() bool { return s.Phase() == state.PhaseCleared })
	assert.Equal(t, ctl.Cat.Reaction("battle", "clear"), s.Message())
	assert.False(t, ctl.Sound.Playing)

	s.OnClick(0, 0)
	assert.Equal(t, []int{8}, ctl.Completed)
}

func TestBattle_LoseAndRestart(t *testing.T) {
	ctl, s := newBattle(t)
	s.enemyIndex = 1
	s.spawnEnemy()
	s.Player().Health = 1
	s.step = StepDefend
	s.defendT = frame / 2

	require.NoError(t, s.Update(frame))
	assert.Equal(t, state.PhaseGameOver, s.Phase())
	assert.Equal(t, ctl.Cat.Reaction("battle", "lose"), s.Message())
	assert.False(t, ctl.Sound.Playing)

	s.OnClick(0, 0)
	assert.Equal(t, state.PhasePlaying, s.Phase())
	assert.Equal(t, StepIntro, s.Step())
	assert.Equal(t, 0, s.EnemyIndex())
	assert.Equal(t, s.cfg.PlayerHP, s.Player().Health)
	assert.True(t, ctl.Sound.Playing)
	assert.Empty(t, ctl.Started)
}

func TestBattle_BlockedFinalBlow(t *testing.T) {
	_, s := newBattle(t)
	s.Player().Health = 2
	s.step = StepDefend
	s.defendT = s.cfg.DefendWindow

	cx, cy := s.defendButton().Center()
	s.OnClick(cx, cy)
	advanceUntil(t, s, func() bool { return s.Phase() == state.PhaseGameOver })
}
