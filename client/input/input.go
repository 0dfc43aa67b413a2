package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/slithergame/slither/pkg/game/types"
)

// DirectionJustPressed returns the direction intent for this frame, if any.
// Arrow keys and WASD are equivalent. Only key-down edges count, so holding
// a key queues a single intent.
func DirectionJustPressed() (types.Direction, bool) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW):
		return types.DirectionUp, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS):
		return types.DirectionDown, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA):
		return types.DirectionLeft, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD):
		return types.DirectionRight, true
	}
	return 0, false
}

// IsConfirmJustPressed reports whether the generic confirm input was pressed.
func IsConfirmJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// IsCancelJustPressed reports whether the generic cancel input was pressed.
func IsCancelJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsPauseJustPressed reports whether the pause toggle was pressed.
func IsPauseJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsRestartJustPressed reports whether the restart shortcut was pressed.
func IsRestartJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// IsMenuUpJustPressed reports upward menu navigation.
func IsMenuUpJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW)
}

// IsMenuDownJustPressed reports downward menu navigation.
func IsMenuDownJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS)
}
