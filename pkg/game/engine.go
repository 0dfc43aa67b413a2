package game

import (
	"context"
	"time"

	"github.com/slithergame/slither/pkg/log"
)

// Engine advances the shared state once per fixed tick interval on its own
// goroutine, decoupled from the render loop.
type Engine struct {
	state *State
}

func NewEngine(state *State) *Engine {
	return &Engine{state: state}
}

// Run drives the simulation until ctx is cancelled. The ticker drops missed
// deadlines instead of queueing them, so an idle or paused stretch never
// bursts into catch-up ticks, and the cadence advances by whole intervals
// regardless of how long a tick's own work takes.
func (e *Engine) Run(ctx context.Context) error {
	interval := e.state.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Debug("Simulation engine running with %s tick interval", interval)
	for {
		select {
		case <-ctx.Done():
			log.Debug("Simulation engine stopped")
			return nil
		case now := <-ticker.C:
			res := e.state.Advance(now)
			switch {
			case res.Won:
				log.Info("Grid filled, game won with score %d", res.Score)
			case res.Collided:
				log.Info("Snake collided, game over with score %d", res.Score)
			case res.Ate:
				log.Debug("Food eaten, score %d", res.Score)
			}

			// A reset may have latched a different cadence.
			if d := e.state.TickInterval(); d != interval {
				interval = d
				ticker.Reset(interval)
				log.Debug("Tick interval changed to %s", interval)
			}
		}
	}
}
