package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/slithergame/slither/client/audio"
	"github.com/slithergame/slither/client/fonts"
	"github.com/slithergame/slither/client/input"
	"github.com/slithergame/slither/client/objects"
)

type menuItem struct {
	label  string
	action func()
}

// MenuScene is the title screen with keyboard-driven item selection.
type MenuScene struct {
	BaseScene
	width    int
	height   int
	items    []menuItem
	selected int
}

type MenuSceneOptions struct {
	Width      int
	Height     int
	OnStart    func()
	OnSettings func()
	OnQuit     func()
}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		width:  opts.Width,
		height: opts.Height,
		items: []menuItem{
			{label: "Start", action: opts.OnStart},
			{label: "Settings", action: opts.OnSettings},
			{label: "Quit", action: opts.OnQuit},
		},
	}, nil
}

func (s *MenuScene) Update() error {
	if input.IsMenuUpJustPressed() {
		s.selected = (s.selected + len(s.items) - 1) % len(s.items)
	}
	if input.IsMenuDownJustPressed() {
		s.selected = (s.selected + 1) % len(s.items)
	}
	if input.IsConfirmJustPressed() {
		audio.Play(audio.SoundMenuSelect)
		s.items[s.selected].action()
	}
	return nil
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	cx := float64(s.width) / 2
	objects.DrawCenteredText(screen, fonts.TTFLargeFont, "SLITHER", cx, float64(s.height)/4, color.White)

	for i, item := range s.items {
		y := float64(s.height)/2 + float64(i)*40
		clr := color.Color(color.White)
		label := item.label
		if i == s.selected {
			clr = color.RGBA{255, 220, 64, 255}
			label = "> " + label + " <"
		}
		objects.DrawCenteredText(screen, fonts.TTFNormalFont, label, cx, y, clr)
	}
}
