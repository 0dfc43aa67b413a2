package objects

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/slithergame/slither/client/fonts"
)

// TextEffect is a short-lived piece of text, optionally scrolling upward,
// used for score popups. The owning scene keeps effects in a slice and
// drops the ones whose Update reports expiry.
type TextEffect struct {
	ID string

	text   string
	x      float64
	y      float64
	color  color.Color
	scroll bool
	ttl    int
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// X is the x-coordinate of the text.
	X float64
	// Y is the y-coordinate of the text.
	Y float64
	// Color is the color of the text.
	Color color.Color
	// Scroll is a boolean value indicating whether the text should scroll.
	Scroll bool
	// TTL is the time to live in milliseconds.
	TTL int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &TextEffect{
		ID:     id,
		text:   opts.Text,
		x:      opts.X,
		y:      opts.Y,
		color:  clr,
		scroll: opts.Scroll,
		ttl:    opts.TTL,
	}
}

// Update advances the effect one tick and reports whether it is still alive.
func (o *TextEffect) Update() bool {
	if o.scroll {
		factor := float64(60) / float64(ebiten.TPS())
		o.y -= 1 * factor
	}
	if o.ttl > 0 {
		o.ttl -= 1000 / ebiten.TPS()
		if o.ttl <= 0 {
			return false
		}
	}
	return true
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	t := strings.ToUpper(o.text)
	DrawCenteredText(screen, fonts.TTFSmallFont, t, o.x, o.y, o.color)
}
