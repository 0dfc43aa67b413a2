package types

// Position is a cell on the board grid, 0-indexed from the top-left corner.
type Position struct {
	X int
	Y int
}

// PointF is a position in fractional cell coordinates, used for drawing
// interpolated segments between two discrete ticks.
type PointF struct {
	X float64
	Y float64
}

// Lerp returns the linear blend between a and b at factor t.
func Lerp(a, b Position, t float64) PointF {
	return PointF{
		X: float64(a.X) + (float64(b.X)-float64(a.X))*t,
		Y: float64(a.Y) + (float64(b.Y)-float64(a.Y))*t,
	}
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	}
	return "Unknown"
}

// Delta returns the (dx, dy) cell offset for one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reversing direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

// Move returns p shifted one cell in direction d.
func (p Position) Move(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Phase is the single authoritative game mode. The simulation engine only
// advances the model while the phase is PhasePlaying.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseSettings
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseSettings:
		return "Settings"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	case PhaseWon:
		return "Won"
	}
	return "Unknown"
}

// Terminal reports whether the phase ends a run (recoverable only via reset).
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}
