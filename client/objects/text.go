package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCenteredText draws t horizontally and vertically centered on (cx, cy).
func DrawCenteredText(screen *ebiten.Image, f font.Face, t string, cx, cy float64, clr color.Color) {
	bounds, _ := font.BoundString(f, t)
	w := float64((bounds.Max.X - bounds.Min.X) >> 6)
	h := float64((bounds.Max.Y - bounds.Min.Y) >> 6)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-w/2, cy-h/2-float64(bounds.Min.Y>>6))
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, t, f, op)
}
