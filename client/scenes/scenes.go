package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one full-screen mode of the client (menu, settings, board).
type Scene interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// BaseScene provides no-op lifecycle methods for scenes that don't need them.
type BaseScene struct{}

func (s *BaseScene) Init() error {
	return nil
}

func (s *BaseScene) Destroy() error {
	return nil
}

func (s *BaseScene) Update() error {
	return nil
}
