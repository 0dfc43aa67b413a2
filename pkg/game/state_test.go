package game

import (
	"testing"
	"time"

	"github.com/slithergame/slither/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		GridWidth:    10,
		GridHeight:   10,
		TickInterval: 100 * time.Millisecond,
		FruitCount:   3,
	}
}

func startedState(t *testing.T, now time.Time) *State {
	t.Helper()
	s := NewState(testConfig(), 42)
	s.Reset(now)
	require.True(t, s.QueueDirection(types.DirectionRight, now))
	return s
}

func TestNewStateStartsInMenu(t *testing.T) {
	s := NewState(testConfig(), 1)
	assert.Equal(t, types.PhaseMenu, s.Phase())
}

func TestResetSeedsRun(t *testing.T) {
	now := time.Now()
	s := NewState(testConfig(), 42)
	s.Reset(now)

	snap := s.Snapshot()
	assert.Equal(t, types.PhasePlaying, snap.Phase)
	assert.False(t, snap.Started)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, now, snap.LastTick)
	assert.Equal(t, 100*time.Millisecond, snap.TickDuration)

	require.Len(t, snap.Snake, InitialSnakeLength)
	assert.Equal(t, []types.Position{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, snap.Snake)
	assert.Equal(t, snap.Snake, snap.PrevSnake)

	require.Len(t, snap.Food, 3)
	for _, f := range snap.Food {
		assert.GreaterOrEqual(t, f.X, 0)
		assert.Less(t, f.X, snap.GridWidth)
		assert.GreaterOrEqual(t, f.Y, 0)
		assert.Less(t, f.Y, snap.GridHeight)
		assert.NotContains(t, snap.Snake, f)
	}
	for i, f := range snap.Food {
		for j, g := range snap.Food {
			if i != j {
				assert.NotEqual(t, f, g)
			}
		}
	}
}

func TestAdvanceIdlesUntilFirstInput(t *testing.T) {
	now := time.Now()
	s := NewState(testConfig(), 42)
	s.Reset(now)

	later := now.Add(time.Second)
	res := s.Advance(later)
	assert.False(t, res.Active)

	snap := s.Snapshot()
	assert.Equal(t, []types.Position{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, snap.Snake)
	assert.Equal(t, snap.Snake, snap.PrevSnake)
	assert.Equal(t, later, snap.LastTick, "idle cycles re-stamp the tick clock")
}

func TestFirstInputStartsRun(t *testing.T) {
	now := time.Now()
	s := NewState(testConfig(), 42)
	s.Reset(now)

	// An exact reversal is rejected and must not start the run.
	later := now.Add(500 * time.Millisecond)
	assert.False(t, s.QueueDirection(types.DirectionLeft, later))
	assert.False(t, s.Snapshot().Started)
	assert.Equal(t, now, s.Snapshot().LastTick)

	assert.True(t, s.QueueDirection(types.DirectionUp, later))
	snap := s.Snapshot()
	assert.True(t, snap.Started)
	assert.Equal(t, later, snap.LastTick, "first accepted input re-stamps the tick clock")
}

func TestAdvanceMovesSnake(t *testing.T) {
	now := time.Now()
	s := startedState(t, now)
	s.food = nil

	tick := now.Add(100 * time.Millisecond)
	res := s.Advance(tick)
	assert.True(t, res.Active)
	assert.False(t, res.Collided)
	assert.False(t, res.Ate)

	snap := s.Snapshot()
	assert.Equal(t, []types.Position{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}, snap.Snake)
	assert.Equal(t, []types.Position{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, snap.PrevSnake)
	assert.Equal(t, tick, snap.LastTick)
}

func TestAdvanceEatsAndGrows(t *testing.T) {
	now := time.Now()
	s := startedState(t, now)
	s.food = []types.Position{{X: 6, Y: 5}}

	res := s.Advance(now.Add(100 * time.Millisecond))
	assert.True(t, res.Ate)
	assert.Equal(t, FoodReward, res.Score)

	snap := s.Snapshot()
	assert.Equal(t, FoodReward, snap.Score)
	require.Len(t, snap.Snake, InitialSnakeLength+1)
	assert.Equal(t, types.Position{X: 6, Y: 5}, snap.Snake[0])
	assert.Len(t, snap.PrevSnake, InitialSnakeLength, "previous body predates the growth")

	// The eaten item is replaced somewhere off the grown body.
	require.Len(t, snap.Food, 1)
	assert.NotContains(t, snap.Snake, snap.Food[0])
}

func TestAdvanceWallCollision(t *testing.T) {
	now := time.Now()
	s := startedState(t, now)
	s.food = nil

	// Head starts at x=5 on a 10-wide grid; the fifth step hits the wall.
	var res TickResult
	for i := 0; i < 5; i++ {
		res = s.Advance(now.Add(time.Duration(i+1) * 100 * time.Millisecond))
	}
	assert.True(t, res.Collided)
	assert.Equal(t, types.PhaseGameOver, s.Phase())

	snap := s.Snapshot()
	assert.Equal(t, types.Position{X: 9, Y: 5}, snap.Snake[0], "body is left as it was before the fatal step")
	assert.Equal(t, snap.Snake, snap.PrevSnake, "fatal tick still converges the interpolation pair")
}

func TestAdvanceSelfCollision(t *testing.T) {
	now := time.Now()
	s := startedState(t, now)
	s.food = nil
	s.snake = []types.Position{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 4}, {X: 5, Y: 4}, {X: 6, Y: 4}}
	s.prevSnake = clonePositions(s.snake)
	s.queuedDir = types.DirectionUp

	res := s.Advance(now.Add(100 * time.Millisecond))
	assert.True(t, res.Collided)
	assert.Equal(t, types.PhaseGameOver, s.Phase())
}

func TestQueueDirection(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *State)
		dir   types.Direction
		want  bool
	}{
		{
			name:  "perpendicular accepted",
			setup: func(s *State) {},
			dir:   types.DirectionUp,
			want:  true,
		},
		{
			name:  "same direction accepted",
			setup: func(s *State) {},
			dir:   types.DirectionRight,
			want:  true,
		},
		{
			name:  "exact reversal rejected",
			setup: func(s *State) {},
			dir:   types.DirectionLeft,
			want:  false,
		},
		{
			name: "reversal checked against active direction, not the queued one",
			setup: func(s *State) {
				s.QueueDirection(types.DirectionUp, time.Now())
			},
			dir:  types.DirectionLeft,
			want: false,
		},
		{
			name: "second turn before the tick overwrites the queue",
			setup: func(s *State) {
				s.QueueDirection(types.DirectionUp, time.Now())
			},
			dir:  types.DirectionDown,
			want: true,
		},
		{
			name: "ignored while paused",
			setup: func(s *State) {
				s.TogglePause()
			},
			dir:  types.DirectionUp,
			want: false,
		},
		{
			name: "ignored after game over",
			setup: func(s *State) {
				s.phase = types.PhaseGameOver
			},
			dir:  types.DirectionUp,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now()
			s := NewState(testConfig(), 42)
			s.Reset(now)
			tt.setup(s)
			assert.Equal(t, tt.want, s.QueueDirection(tt.dir, now))
		})
	}
}

func TestRejectedReversalDoesNotSteer(t *testing.T) {
	now := time.Now()
	s := startedState(t, now)
	s.food = nil

	assert.False(t, s.QueueDirection(types.DirectionLeft, now))
	s.Advance(now.Add(100 * time.Millisecond))
	assert.Equal(t, types.Position{X: 6, Y: 5}, s.Snapshot().Snake[0], "snake keeps heading right")
}

func TestQueuedTurnAppliesAtTickBoundary(t *testing.T) {
	now := time.Now()
	s := startedState(t, now)
	s.food = nil

	require.True(t, s.QueueDirection(types.DirectionUp, now))
	s.Advance(now.Add(100 * time.Millisecond))
	assert.Equal(t, types.Position{X: 5, Y: 4}, s.Snapshot().Snake[0])
}

func TestAdvanceWin(t *testing.T) {
	now := time.Now()
	s := startedState(t, now)
	s.cfg.GridWidth = 2
	s.cfg.GridHeight = 2
	s.snake = []types.Position{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	s.prevSnake = clonePositions(s.snake)
	s.food = []types.Position{{X: 1, Y: 0}}
	s.activeDir = types.DirectionRight
	s.queuedDir = types.DirectionRight

	res := s.Advance(now.Add(100 * time.Millisecond))
	assert.True(t, res.Won)
	assert.True(t, res.Ate)
	assert.Equal(t, FoodReward, res.Score)
	assert.Equal(t, types.PhaseWon, s.Phase())
	assert.Len(t, s.Snapshot().Food, 0)
}

func TestPlaceOneFoodLocked(t *testing.T) {
	now := time.Now()
	s := startedState(t, now)
	s.cfg.GridWidth = 2
	s.cfg.GridHeight = 2
	s.food = nil

	// One free cell left: placement must find it.
	s.snake = []types.Position{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	p, ok := s.placeOneFoodLocked()
	require.True(t, ok)
	assert.Equal(t, types.Position{X: 1, Y: 0}, p)

	// No free cell: placement reports exhaustion.
	s.snake = append(s.snake, types.Position{X: 1, Y: 0})
	_, ok = s.placeOneFoodLocked()
	assert.False(t, ok)
}

func TestTogglePause(t *testing.T) {
	now := time.Now()
	s := NewState(testConfig(), 42)

	assert.False(t, s.TogglePause(), "no effect outside a run")
	assert.Equal(t, types.PhaseMenu, s.Phase())

	s.Reset(now)
	assert.True(t, s.TogglePause())
	assert.Equal(t, types.PhasePaused, s.Phase())

	res := s.Advance(now.Add(100 * time.Millisecond))
	assert.False(t, res.Active, "paused runs do not advance")

	assert.False(t, s.TogglePause())
	assert.Equal(t, types.PhasePlaying, s.Phase())
}

func TestPauseProducesNoCatchUpMotion(t *testing.T) {
	now := time.Now()
	s := startedState(t, now)
	s.food = nil
	s.TogglePause()

	resumeAt := now.Add(10 * time.Second)
	s.Advance(resumeAt)
	s.TogglePause()

	snap := s.Snapshot()
	assert.Equal(t, resumeAt, snap.LastTick, "paused cycles keep re-stamping the clock")
	assert.Equal(t, []types.Position{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, snap.Snake)
}

func TestSettingsPhaseTransitions(t *testing.T) {
	s := NewState(testConfig(), 42)

	s.OpenSettings()
	assert.Equal(t, types.PhaseSettings, s.Phase())
	s.CloseSettings()
	assert.Equal(t, types.PhaseMenu, s.Phase())

	// Settings only opens from the menu.
	s.Reset(time.Now())
	s.OpenSettings()
	assert.Equal(t, types.PhasePlaying, s.Phase())
}

func TestSetConfigStagedUntilReset(t *testing.T) {
	now := time.Now()
	s := NewState(testConfig(), 42)
	s.Reset(now)

	s.SetConfig(Config{
		GridWidth:    12,
		GridHeight:   12,
		TickInterval: 150 * time.Millisecond,
		FruitCount:   5,
	})
	assert.Equal(t, 100*time.Millisecond, s.TickInterval(), "running cadence unchanged")
	assert.Equal(t, 10, s.Snapshot().GridWidth)

	s.Reset(now)
	assert.Equal(t, 150*time.Millisecond, s.TickInterval())
	snap := s.Snapshot()
	assert.Equal(t, 12, snap.GridWidth)
	assert.Equal(t, 12, snap.GridHeight)
	assert.Len(t, snap.Food, 5)
}

func TestSetConfigClamps(t *testing.T) {
	s := NewState(testConfig(), 42)
	s.SetConfig(Config{
		GridWidth:    1,
		GridHeight:   1000,
		TickInterval: time.Second,
		FruitCount:   0,
	})

	cfg := s.Config()
	assert.Equal(t, MinGridSize, cfg.GridWidth)
	assert.Equal(t, MaxGridSize, cfg.GridHeight)
	assert.Equal(t, MaxTickInterval, cfg.TickInterval)
	assert.Equal(t, MinFruitCount, cfg.FruitCount)
}

func TestSnapshotSharesNoMemory(t *testing.T) {
	now := time.Now()
	s := startedState(t, now)

	snap := s.Snapshot()
	snap.Snake[0] = types.Position{X: -99, Y: -99}
	snap.Food = append(snap.Food[:0], types.Position{X: -1, Y: -1})

	fresh := s.Snapshot()
	assert.Equal(t, types.Position{X: 5, Y: 5}, fresh.Snake[0])
	for _, f := range fresh.Food {
		assert.NotEqual(t, types.Position{X: -1, Y: -1}, f)
	}
}

func TestResetClearsPreviousRun(t *testing.T) {
	now := time.Now()
	s := startedState(t, now)
	s.food = []types.Position{{X: 6, Y: 5}}
	s.Advance(now.Add(100 * time.Millisecond))
	require.Equal(t, FoodReward, s.Snapshot().Score)

	s.Reset(now.Add(time.Second))
	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Score)
	assert.False(t, snap.Started)
	assert.Len(t, snap.Snake, InitialSnakeLength)
	assert.Equal(t, types.PhasePlaying, snap.Phase)
}
