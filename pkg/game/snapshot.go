package game

import (
	"time"

	"github.com/slithergame/slither/pkg/game/types"
)

// Snapshot is an immutable, render-owned copy of the model taken under the
// state lock. The render path works entirely from a Snapshot and never holds
// the lock while drawing.
type Snapshot struct {
	Snake     []types.Position
	PrevSnake []types.Position
	Food      []types.Position

	Score   int
	Phase   types.Phase
	Started bool

	GridWidth  int
	GridHeight int

	LastTick     time.Time
	TickDuration time.Duration
}

// Alpha returns the interpolation factor at time now, clamped to [0, 1]:
// 0 right after the tick that produced this snapshot, 1 at the next tick's
// nominal deadline.
func (s *Snapshot) Alpha(now time.Time) float64 {
	if s.TickDuration <= 0 {
		return 1
	}
	a := float64(now.Sub(s.LastTick)) / float64(s.TickDuration)
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Body returns the drawn position of every current segment at factor alpha.
// Segment i blends PrevSnake[i] toward Snake[i]; a segment with no previous
// entry (right after growth) stays at its current position for the whole
// interpolation window.
func (s *Snapshot) Body(alpha float64) []types.PointF {
	body := make([]types.PointF, len(s.Snake))
	for i, cur := range s.Snake {
		from := cur
		if i < len(s.PrevSnake) {
			from = s.PrevSnake[i]
		}
		body[i] = types.Lerp(from, cur, alpha)
	}
	return body
}
