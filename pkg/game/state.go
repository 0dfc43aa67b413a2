package game

import (
	"sync"
	"time"

	"github.com/slithergame/slither/pkg/game/types"
)

// foodPlacementAttempts bounds the rejection-sampling loop in food placement.
// When the grid is nearly full random draws mostly hit occupied cells; after
// this many misses placement falls back to a single deterministic scan.
const foodPlacementAttempts = 64

// State is the authoritative game model shared by the simulation engine, the
// input handlers and the render snapshotter. All fields are guarded by mu;
// every exported method is a single bounded critical section.
type State struct {
	mu sync.Mutex

	// cfg is the configuration latched by the most recent reset; next is the
	// settings-adjusted configuration the following reset will latch.
	cfg  Config
	next Config

	snake     []types.Position // head first
	prevSnake []types.Position // body before the latest tick, for interpolation
	food      []types.Position

	activeDir types.Direction // applied at the start of each tick
	queuedDir types.Direction // written by input, latched at the tick boundary

	phase   types.Phase
	started bool // false until the first accepted direction input of a run
	score   int

	lastTick     time.Time
	tickDuration time.Duration

	rng *lockedRand
}

// TickResult describes what a single simulation step did.
type TickResult struct {
	// Active is false for idle cycles (menu, paused, terminal, not started).
	Active bool
	// Ate is true when the new head landed on a food item.
	Ate bool
	// Collided is true when the tick ended the run against a wall or the body.
	Collided bool
	// Won is true when growth filled the grid.
	Won bool
	// Score after the tick.
	Score int
}

// NewState creates a model in the menu phase with cfg (clamped) staged for
// the first reset. seed feeds the food-placement random source.
func NewState(cfg Config, seed int64) *State {
	c := cfg.clamped()
	return &State{
		cfg:       c,
		next:      c,
		phase:     types.PhaseMenu,
		activeDir: types.DirectionRight,
		queuedDir: types.DirectionRight,
		rng:       newLockedRand(seed),
	}
}

// Reset starts a new run: latches the staged configuration, seeds the snake
// at the grid center heading right, places the food set and enters Playing.
// The run stays idle until the first direction input.
func (s *State) Reset(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = s.next
	cx, cy := s.cfg.GridWidth/2, s.cfg.GridHeight/2
	snake := make([]types.Position, 0, InitialSnakeLength)
	for i := 0; i < InitialSnakeLength; i++ {
		snake = append(snake, types.Position{X: cx - i, Y: cy})
	}
	s.snake = snake
	s.prevSnake = clonePositions(snake)
	s.activeDir = types.DirectionRight
	s.queuedDir = types.DirectionRight
	s.phase = types.PhasePlaying
	s.started = false
	s.score = 0

	s.food = s.food[:0]
	for i := 0; i < s.cfg.FruitCount; i++ {
		p, ok := s.placeOneFoodLocked()
		if !ok {
			// Explicit exhaustion policy: a crowded grid gets fewer items.
			break
		}
		s.food = append(s.food, p)
	}

	s.lastTick = now
	s.tickDuration = s.cfg.TickInterval
}

// Advance executes one simulation step at time now. Outside an active run it
// converges the interpolation pair and re-stamps the tick clock, so pausing
// or idling never produces catch-up motion.
func (s *State) Advance(now time.Time) TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != types.PhasePlaying || !s.started {
		s.prevSnake = clonePositions(s.snake)
		s.lastTick = now
		return TickResult{Score: s.score}
	}

	s.activeDir = s.queuedDir
	newHead := s.snake[0].Move(s.activeDir)
	collided := s.collidesLocked(newHead)

	// The pre-tick body is captured before any mutation, collision or not,
	// so every snapshot sees a coherent previous/current pair.
	s.prevSnake = clonePositions(s.snake)

	res := TickResult{Active: true}
	if collided {
		s.phase = types.PhaseGameOver
		res.Collided = true
	} else {
		s.snake = append([]types.Position{newHead}, s.snake...)
		if i := s.foodIndexLocked(newHead); i >= 0 {
			s.score += FoodReward
			s.food = append(s.food[:i], s.food[i+1:]...)
			res.Ate = true
			if len(s.snake) == s.cfg.GridWidth*s.cfg.GridHeight {
				s.phase = types.PhaseWon
				res.Won = true
			} else if p, ok := s.placeOneFoodLocked(); ok {
				s.food = append(s.food, p)
			}
		} else {
			s.snake = s.snake[:len(s.snake)-1]
		}
	}

	s.lastTick = now
	s.tickDuration = s.cfg.TickInterval
	res.Score = s.score
	return res
}

// QueueDirection records a direction intent for the next tick. A request
// that exactly reverses the active (not queued) direction is ignored. The
// first accepted input of a run starts it and re-stamps the tick clock so
// idle time never counts as elapsed tick time. Reports whether the intent
// was accepted.
func (s *State) QueueDirection(d types.Direction, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != types.PhasePlaying {
		return false
	}
	if d == s.activeDir.Opposite() {
		return false
	}
	s.queuedDir = d
	if !s.started {
		s.started = true
		s.lastTick = now
	}
	return true
}

// TogglePause flips between Playing and Paused. Reports whether the game is
// paused afterwards.
func (s *State) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case types.PhasePlaying:
		s.phase = types.PhasePaused
	case types.PhasePaused:
		s.phase = types.PhasePlaying
	}
	return s.phase == types.PhasePaused
}

// ReturnToMenu abandons the current run.
func (s *State) ReturnToMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = types.PhaseMenu
}

// OpenSettings enters the settings phase from the menu.
func (s *State) OpenSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == types.PhaseMenu {
		s.phase = types.PhaseSettings
	}
}

// CloseSettings returns from the settings phase to the menu.
func (s *State) CloseSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == types.PhaseSettings {
		s.phase = types.PhaseMenu
	}
}

// Phase returns the current game phase.
func (s *State) Phase() types.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Config returns the staged configuration (what the next reset will use).
func (s *State) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// SetConfig stages cfg, clamped, for the next reset. The running game is
// unaffected.
func (s *State) SetConfig(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = cfg.clamped()
}

// TickInterval returns the cadence of the current run.
func (s *State) TickInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.TickInterval
}

// Snapshot copies everything the render path needs under one lock
// acquisition. The returned value shares no memory with the model.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Snake:        clonePositions(s.snake),
		PrevSnake:    clonePositions(s.prevSnake),
		Food:         clonePositions(s.food),
		Score:        s.score,
		Phase:        s.phase,
		Started:      s.started,
		GridWidth:    s.cfg.GridWidth,
		GridHeight:   s.cfg.GridHeight,
		LastTick:     s.lastTick,
		TickDuration: s.tickDuration,
	}
}

// collidesLocked reports whether p is out of bounds or overlaps the body.
// The bounds check runs first; the body check includes the current head.
func (s *State) collidesLocked(p types.Position) bool {
	if p.X < 0 || p.X >= s.cfg.GridWidth || p.Y < 0 || p.Y >= s.cfg.GridHeight {
		return true
	}
	for _, b := range s.snake {
		if b == p {
			return true
		}
	}
	return false
}

func (s *State) foodIndexLocked(p types.Position) int {
	for i, f := range s.food {
		if f == p {
			return i
		}
	}
	return -1
}

func (s *State) occupiedLocked(p types.Position) bool {
	for _, b := range s.snake {
		if b == p {
			return true
		}
	}
	return s.foodIndexLocked(p) >= 0
}

// placeOneFoodLocked picks a free cell by rejection sampling with a bounded
// attempt cap, then falls back to one deterministic scan from a random
// offset. Returns false only when the grid has no free cell at all.
func (s *State) placeOneFoodLocked() (types.Position, bool) {
	w, h := s.cfg.GridWidth, s.cfg.GridHeight
	for i := 0; i < foodPlacementAttempts; i++ {
		p := types.Position{X: s.rng.Intn(w), Y: s.rng.Intn(h)}
		if !s.occupiedLocked(p) {
			return p, true
		}
	}

	cells := w * h
	start := s.rng.Intn(cells)
	for i := 0; i < cells; i++ {
		idx := (start + i) % cells
		p := types.Position{X: idx % w, Y: idx / w}
		if !s.occupiedLocked(p) {
			return p, true
		}
	}
	return types.Position{}, false
}

func clonePositions(src []types.Position) []types.Position {
	dst := make([]types.Position, len(src))
	copy(dst, src)
	return dst
}
