package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/slithergame/slither/client/scenes"
	coregame "github.com/slithergame/slither/pkg/game"
	"github.com/slithergame/slither/pkg/game/types"
)

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 520
)

// GameMode is the client-side scene category. It follows the simulation
// phase but groups the phases that share a scene.
type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModeSettings
	GameModeBoard
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModeSettings:
		return "Settings"
	case GameModeBoard:
		return "Board"
	}
	return "Unknown"
}

func modeForPhase(p types.Phase) GameMode {
	switch p {
	case types.PhaseMenu:
		return GameModeMenu
	case types.PhaseSettings:
		return GameModeSettings
	}
	return GameModeBoard
}

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// state is the shared simulation state advanced by the engine goroutine.
	state *coregame.State
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
	// quit is set when the player quits from the menu.
	quit bool
}

type NewGameOptions struct {
	Debug bool
	State *coregame.State
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug: opts.Debug,
		state: opts.State,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		Width:  DefaultScreenWidth,
		Height: DefaultScreenHeight,
		OnStart: func() {
			g.state.Reset(time.Now())
		},
		OnSettings: func() {
			g.state.OpenSettings()
		},
		OnQuit: func() {
			g.quit = true
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = GameModeMenu
	return nil
}

func (g *Game) loadSettings() error {
	settings, err := scenes.NewSettingsScene(scenes.SettingsSceneOptions{
		GetConfig: g.state.Config,
		SetConfig: g.state.SetConfig,
		OnBack:    g.state.CloseSettings,
	})
	if err != nil {
		return fmt.Errorf("failed to create settings scene: %v", err)
	}
	if err := g.SetScene(settings); err != nil {
		return fmt.Errorf("failed to set settings scene: %v", err)
	}
	g.mode = GameModeSettings
	return nil
}

func (g *Game) loadBoard() error {
	board, err := scenes.NewBoardScene(scenes.BoardSceneOptions{
		Width:  DefaultScreenWidth,
		Height: DefaultScreenHeight,
		State:  g.state,
	})
	if err != nil {
		return fmt.Errorf("failed to create board scene: %v", err)
	}
	if err := g.SetScene(board); err != nil {
		return fmt.Errorf("failed to set board scene: %v", err)
	}
	g.mode = GameModeBoard
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if mode := modeForPhase(g.state.Phase()); mode != g.mode {
		var err error
		switch mode {
		case GameModeMenu:
			err = g.loadMenu()
		case GameModeSettings:
			err = g.loadSettings()
		case GameModeBoard:
			err = g.loadBoard()
		}
		if err != nil {
			return fmt.Errorf("failed to load %s scene: %v", mode, err)
		}
	}

	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	snap := g.state.Snapshot()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Phase: %s", snap.Phase))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Alpha: %0.2f", snap.Alpha(time.Now())))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}
