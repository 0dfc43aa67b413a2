package scenes

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/slithergame/slither/client/audio"
	"github.com/slithergame/slither/client/fonts"
	"github.com/slithergame/slither/client/input"
	"github.com/slithergame/slither/pkg/game"
)

// SettingsScene edits the staged game configuration. Changes take effect
// on the next new game.
type SettingsScene struct {
	BaseScene

	getConfig func() game.Config
	setConfig func(game.Config)
	onBack    func()
	ui        *ebitenui.UI
}

type SettingsSceneOptions struct {
	// GetConfig returns the staged configuration.
	GetConfig func() game.Config
	// SetConfig stages a new configuration, clamping out-of-range values.
	SetConfig func(game.Config)
	// OnBack is called when the back button is pressed.
	OnBack func()
}

var _ Scene = &SettingsScene{}

func NewSettingsScene(opts SettingsSceneOptions) (Scene, error) {
	return &SettingsScene{
		getConfig: opts.GetConfig,
		setConfig: opts.SetConfig,
		onBack:    opts.OnBack,
	}, nil
}

func (s *SettingsScene) Init() error {
	s.renderUI()
	return nil
}

// settingsRow describes one adjustable value and how to step it.
type settingsRow struct {
	label string
	value func(cfg game.Config) string
	step  func(cfg game.Config, delta int) game.Config
}

func (s *SettingsScene) rows() []settingsRow {
	return []settingsRow{
		{
			label: "Grid Width",
			value: func(cfg game.Config) string { return fmt.Sprintf("%d", cfg.GridWidth) },
			step: func(cfg game.Config, delta int) game.Config {
				cfg.GridWidth += delta
				return cfg
			},
		},
		{
			label: "Grid Height",
			value: func(cfg game.Config) string { return fmt.Sprintf("%d", cfg.GridHeight) },
			step: func(cfg game.Config, delta int) game.Config {
				cfg.GridHeight += delta
				return cfg
			},
		},
		{
			label: "Tick Interval",
			value: func(cfg game.Config) string { return fmt.Sprintf("%dms", cfg.TickInterval/time.Millisecond) },
			step: func(cfg game.Config, delta int) game.Config {
				cfg.TickInterval += time.Duration(delta) * game.TickIntervalStep
				return cfg
			},
		},
		{
			label: "Fruit Count",
			value: func(cfg game.Config) string { return fmt.Sprintf("%d", cfg.FruitCount) },
			step: func(cfg game.Config, delta int) game.Config {
				cfg.FruitCount += delta
				return cfg
			},
		},
	}
}

func (s *SettingsScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    80,
				Left:   100,
				Right:  100,
				Bottom: 40,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("Settings", fonts.TTFLargeFont, color.White),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	cfg := s.getConfig()

	for _, row := range s.rows() {
		row := row
		rowContainer := widget.NewContainer(
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(12))),
		)

		rowContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(fmt.Sprintf("%-13s", row.label), fontFace, color.White),
		))

		decButton := widget.NewButton(
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text("-", fontFace, &widget.ButtonTextColor{
				Idle:     color.NRGBA{254, 255, 255, 255},
				Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			}),
			widget.ButtonOpts.TextPadding(widget.Insets{
				Left:   12,
				Right:  12,
				Top:    2,
				Bottom: 2,
			}),
		)
		decButton.ClickedEvent.AddHandler(func(args interface{}) {
			s.adjust(row, -1)
		})
		rowContainer.AddChild(decButton)

		rowContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(fmt.Sprintf("%6s", row.value(cfg)), fontFace, color.NRGBA{R: 255, G: 220, B: 64, A: 255}),
		))

		incButton := widget.NewButton(
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text("+", fontFace, &widget.ButtonTextColor{
				Idle:     color.NRGBA{254, 255, 255, 255},
				Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			}),
			widget.ButtonOpts.TextPadding(widget.Insets{
				Left:   12,
				Right:  12,
				Top:    2,
				Bottom: 2,
			}),
		)
		incButton.ClickedEvent.AddHandler(func(args interface{}) {
			s.adjust(row, 1)
		})
		rowContainer.AddChild(incButton)

		rootContainer.AddChild(rowContainer)
	}

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Back", fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	backButton.ClickedEvent.AddHandler(func(args interface{}) {
		audio.Play(audio.SoundMenuSelect)
		s.onBack()
	})
	rootContainer.AddChild(backButton)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *SettingsScene) adjust(row settingsRow, delta int) {
	s.setConfig(row.step(s.getConfig(), delta))
	audio.Play(audio.SoundMenuSelect)
	// re-render so the row shows the clamped value
	s.renderUI()
}

func (s *SettingsScene) Update() error {
	if input.IsCancelJustPressed() {
		s.onBack()
		return nil
	}
	s.ui.Update()
	return nil
}

func (s *SettingsScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
}
