package game

import "time"

// Configuration limits. Values outside these bounds are clamped, never
// rejected; the settings UI adjusts within the same bounds.
const (
	MinGridSize = 8
	MaxGridSize = 40

	MinTickInterval = 80 * time.Millisecond
	MaxTickInterval = 180 * time.Millisecond

	MinFruitCount = 1
	MaxFruitCount = 15
)

const (
	// InitialSnakeLength is the seed length after a reset.
	InitialSnakeLength = 3
	// FoodReward is the score increment per food item consumed.
	FoodReward = 10
)

// TickIntervalStep is the settings-menu adjustment granularity.
const TickIntervalStep = 10 * time.Millisecond

// Config is the reset-time configuration surface. It is read once per reset;
// changing it mid-game has no effect until the next reset.
type Config struct {
	GridWidth    int
	GridHeight   int
	TickInterval time.Duration
	FruitCount   int
}

// DefaultConfig returns the base-variant configuration.
func DefaultConfig() Config {
	return Config{
		GridWidth:    10,
		GridHeight:   10,
		TickInterval: 120 * time.Millisecond,
		FruitCount:   1,
	}
}

// clamped returns c with every field forced into its valid range.
func (c Config) clamped() Config {
	c.GridWidth = clampInt(c.GridWidth, MinGridSize, MaxGridSize)
	c.GridHeight = clampInt(c.GridHeight, MinGridSize, MaxGridSize)
	c.FruitCount = clampInt(c.FruitCount, MinFruitCount, MaxFruitCount)
	if c.TickInterval < MinTickInterval {
		c.TickInterval = MinTickInterval
	} else if c.TickInterval > MaxTickInterval {
		c.TickInterval = MaxTickInterval
	}
	return c
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
