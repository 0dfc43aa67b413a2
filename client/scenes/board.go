package scenes

import (
	"fmt"
	"image/color"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/slithergame/slither/client/audio"
	"github.com/slithergame/slither/client/fonts"
	"github.com/slithergame/slither/client/input"
	"github.com/slithergame/slither/client/objects"
	"github.com/slithergame/slither/pkg/game"
	"github.com/slithergame/slither/pkg/game/types"
)

const hudHeight = 40

var (
	colorBackground = color.RGBA{16, 16, 24, 255}
	colorBoard      = color.RGBA{28, 28, 40, 255}
	colorGridLine   = color.RGBA{44, 44, 60, 255}
	colorFood       = color.RGBA{220, 60, 60, 255}
	colorSnakeHead  = color.RGBA{120, 255, 120, 255}
	colorSnakeBody  = color.RGBA{60, 200, 60, 255}
	colorScoreText  = color.RGBA{255, 220, 64, 255}
	colorSelected   = color.RGBA{255, 220, 64, 255}
)

// BoardScene renders the playfield and routes gameplay input. It covers the
// playing, paused and terminal phases, switching overlays as the phase moves.
type BoardScene struct {
	BaseScene

	state  *game.State
	width  int
	height int

	effects   []*objects.TextEffect
	selected  int
	lastScore int
	lastPhase types.Phase

	pausedOverlay   *objects.TextOverlay
	gameOverOverlay *objects.TextOverlay
	wonOverlay      *objects.TextOverlay
}

type BoardSceneOptions struct {
	Width  int
	Height int
	State  *game.State
}

var _ Scene = &BoardScene{}

func NewBoardScene(opts BoardSceneOptions) (Scene, error) {
	return &BoardScene{
		state:           opts.State,
		width:           opts.Width,
		height:          opts.Height,
		lastPhase:       types.PhasePlaying,
		pausedOverlay:   objects.NewTextOverlay("PAUSED"),
		gameOverOverlay: objects.NewTextOverlay("GAME OVER"),
		wonOverlay:      objects.NewTextOverlay("YOU WIN"),
	}, nil
}

// boardGeometry maps grid cells onto the pixel area above the HUD strip.
type boardGeometry struct {
	cell float64
	offX float64
	offY float64
}

func (s *BoardScene) geometry(snap game.Snapshot) boardGeometry {
	boardW := float64(s.width)
	boardH := float64(s.height - hudHeight)
	cell := boardW / float64(snap.GridWidth)
	if h := boardH / float64(snap.GridHeight); h < cell {
		cell = h
	}
	return boardGeometry{
		cell: cell,
		offX: (boardW - cell*float64(snap.GridWidth)) / 2,
		offY: (boardH - cell*float64(snap.GridHeight)) / 2,
	}
}

func (s *BoardScene) Update() error {
	now := time.Now()
	snap := s.state.Snapshot()

	if snap.Phase != s.lastPhase {
		switch snap.Phase {
		case types.PhaseGameOver:
			audio.Play(audio.SoundGameOver)
			s.selected = 0
		case types.PhaseWon:
			audio.Play(audio.SoundWin)
			s.selected = 0
		case types.PhasePlaying:
			s.effects = nil
		}
		s.lastPhase = snap.Phase
	}

	if snap.Score != s.lastScore {
		if snap.Score > s.lastScore {
			audio.Play(audio.SoundEat)
			s.spawnScoreEffect(snap)
		}
		s.lastScore = snap.Score
	}

	switch snap.Phase {
	case types.PhasePlaying:
		if d, ok := input.DirectionJustPressed(); ok {
			s.state.QueueDirection(d, now)
		}
		if input.IsPauseJustPressed() {
			s.state.TogglePause()
			audio.Play(audio.SoundPause)
			s.selected = 0
		}
	case types.PhasePaused:
		s.updateSubMenu(s.pauseItems())
		if input.IsPauseJustPressed() {
			s.state.TogglePause()
			audio.Play(audio.SoundPause)
		}
	case types.PhaseGameOver, types.PhaseWon:
		s.updateSubMenu(s.terminalItems())
		if input.IsRestartJustPressed() {
			audio.Play(audio.SoundMenuSelect)
			s.state.Reset(time.Now())
		}
	}

	alive := s.effects[:0]
	for _, e := range s.effects {
		if e.Update() {
			alive = append(alive, e)
		}
	}
	s.effects = alive

	return nil
}

func (s *BoardScene) updateSubMenu(items []menuItem) {
	if input.IsMenuUpJustPressed() {
		s.selected = (s.selected + len(items) - 1) % len(items)
	}
	if input.IsMenuDownJustPressed() {
		s.selected = (s.selected + 1) % len(items)
	}
	if input.IsConfirmJustPressed() {
		audio.Play(audio.SoundMenuSelect)
		items[s.selected].action()
	}
}

func (s *BoardScene) pauseItems() []menuItem {
	return []menuItem{
		{label: "Resume", action: func() { s.state.TogglePause() }},
		{label: "Restart", action: func() { s.state.Reset(time.Now()) }},
		{label: "Main Menu", action: func() { s.state.ReturnToMenu() }},
	}
}

func (s *BoardScene) terminalItems() []menuItem {
	return []menuItem{
		{label: "Restart", action: func() { s.state.Reset(time.Now()) }},
		{label: "Main Menu", action: func() { s.state.ReturnToMenu() }},
	}
}

func (s *BoardScene) spawnScoreEffect(snap game.Snapshot) {
	if len(snap.Snake) == 0 {
		return
	}
	g := s.geometry(snap)
	head := snap.Snake[0]
	s.effects = append(s.effects, objects.NewTextEffect(uuid.New().String(), objects.NewTextEffectOptions{
		Text:   fmt.Sprintf("+%d", game.FoodReward),
		X:      g.offX + (float64(head.X)+0.5)*g.cell,
		Y:      g.offY + (float64(head.Y)+0.5)*g.cell,
		Color:  colorScoreText,
		Scroll: true,
		TTL:    900,
	}))
}

func (s *BoardScene) Draw(screen *ebiten.Image) {
	snap := s.state.Snapshot()
	alpha := snap.Alpha(time.Now())
	g := s.geometry(snap)

	screen.Fill(colorBackground)

	boardW := g.cell * float64(snap.GridWidth)
	boardH := g.cell * float64(snap.GridHeight)
	vector.DrawFilledRect(screen, float32(g.offX), float32(g.offY), float32(boardW), float32(boardH), colorBoard, false)

	for x := 0; x <= snap.GridWidth; x++ {
		px := float32(g.offX + float64(x)*g.cell)
		vector.StrokeLine(screen, px, float32(g.offY), px, float32(g.offY+boardH), 1, colorGridLine, false)
	}
	for y := 0; y <= snap.GridHeight; y++ {
		py := float32(g.offY + float64(y)*g.cell)
		vector.StrokeLine(screen, float32(g.offX), py, float32(g.offX+boardW), py, 1, colorGridLine, false)
	}

	inset := float32(g.cell * 0.1)
	for _, f := range snap.Food {
		vector.DrawFilledRect(screen,
			float32(g.offX+float64(f.X)*g.cell)+inset,
			float32(g.offY+float64(f.Y)*g.cell)+inset,
			float32(g.cell)-2*inset,
			float32(g.cell)-2*inset,
			colorFood, false)
	}

	body := snap.Body(alpha)
	for i := len(body) - 1; i >= 0; i-- {
		clr := colorSnakeBody
		if i == 0 {
			clr = colorSnakeHead
		}
		vector.DrawFilledRect(screen,
			float32(g.offX+body[i].X*g.cell)+inset,
			float32(g.offY+body[i].Y*g.cell)+inset,
			float32(g.cell)-2*inset,
			float32(g.cell)-2*inset,
			clr, false)
	}

	for _, e := range s.effects {
		e.Draw(screen)
	}

	score := fmt.Sprintf("Score: %d", snap.Score)
	text.Draw(screen, score, fonts.MPlusNormalFont, 10, s.height-12, colorScoreText)

	switch snap.Phase {
	case types.PhasePaused:
		s.pausedOverlay.Draw(screen, s.width, s.height)
		s.drawSubMenu(screen, s.pauseItems())
	case types.PhaseGameOver:
		s.gameOverOverlay.Draw(screen, s.width, s.height)
		s.drawSubMenu(screen, s.terminalItems())
	case types.PhaseWon:
		s.wonOverlay.Draw(screen, s.width, s.height)
		s.drawSubMenu(screen, s.terminalItems())
	}
}

func (s *BoardScene) drawSubMenu(screen *ebiten.Image, items []menuItem) {
	cx := float64(s.width) / 2
	for i, item := range items {
		y := float64(s.height)/2 + 40 + float64(i)*32
		clr := color.Color(color.White)
		label := item.label
		if i == s.selected {
			clr = colorSelected
			label = "> " + label + " <"
		}
		objects.DrawCenteredText(screen, fonts.TTFNormalFont, label, cx, y, clr)
	}
}
