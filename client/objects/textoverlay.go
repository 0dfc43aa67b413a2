package objects

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/slithergame/slither/client/fonts"
)

// TextOverlay dims a region of the screen and draws a headline over it,
// used for the pause, game-over and win screens.
type TextOverlay struct {
	text string
}

func NewTextOverlay(text string) *TextOverlay {
	return &TextOverlay{text: text}
}

// Draw shades the rectangle (0,0)-(w,h) and centers the headline in it.
func (o *TextOverlay) Draw(screen *ebiten.Image, w, h int) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 180}, false)

	t := strings.ToUpper(o.text)
	DrawCenteredText(screen, fonts.TTFLargeFont, t, float64(w)/2, float64(h)/2-40, color.White)
}
