package toast

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-glaze/glaze/pkg/geometry"
	"github.com/go-glaze/glaze/pkg/surface"
)

// View is the contract any toast content must satisfy. It is the surface
// view contract re-exported for callers of [Controller.Show].
type View = surface.View

// TextSetter is implemented by views that accept the show call's message.
// The controller applies the message before layout when the view
// implements it; views populated by the caller can omit it.
type TextSetter interface {
	SetText(text string)
}

// TextView is the default toast view: a single block of text measured with
// a font face and padded on all sides. It is input-inert; hit testing
// always reports no target so it never blocks interaction with content
// behind it.
//
// Opacity and scale are stored for the host renderer to consume when
// painting; TextView itself does no drawing.
type TextView struct {
	text    string
	face    font.Face
	padding geometry.Insets

	frame   geometry.Rect
	opacity float64
	scale   float64
}

// NewTextView creates a TextView with the bundled default face and
// standard padding. The view starts fully transparent at scale 1.
func NewTextView() *TextView {
	return &TextView{
		face:    basicfont.Face7x13,
		padding: geometry.SymmetricInsets(16, 12),
		opacity: 0,
		scale:   1,
	}
}

// SetText replaces the view's text.
func (v *TextView) SetText(text string) {
	v.text = text
}

// Text returns the view's current text.
func (v *TextView) Text() string {
	return v.text
}

// SetFace replaces the font face used for measurement. A nil face restores
// the bundled default.
func (v *TextView) SetFace(face font.Face) {
	if face == nil {
		face = basicfont.Face7x13
	}
	v.face = face
}

// Layout measures the text line by line and returns the padded size,
// clamped to the constraints.
func (v *TextView) Layout(c geometry.Constraints) geometry.Size {
	metrics := v.face.Metrics()
	lineHeight := float64((metrics.Ascent + metrics.Descent).Ceil())
	if lineHeight <= 0 {
		lineHeight = float64(metrics.Height.Ceil())
	}

	lines := strings.Split(v.text, "\n")
	widest := 0.0
	for _, line := range lines {
		advance := float64(font.MeasureString(v.face, line).Ceil())
		if advance > widest {
			widest = advance
		}
	}

	size := geometry.Size{
		Width:  widest + v.padding.Horizontal(),
		Height: lineHeight*float64(len(lines)) + v.padding.Vertical(),
	}
	return c.Constrain(size)
}

// SetFrame positions the view.
func (v *TextView) SetFrame(r geometry.Rect) { v.frame = r }

// Frame returns the view's frame.
func (v *TextView) Frame() geometry.Rect { return v.frame }

// SetOpacity sets the view's opacity in [0, 1].
func (v *TextView) SetOpacity(opacity float64) { v.opacity = opacity }

// Opacity returns the current opacity.
func (v *TextView) Opacity() float64 { return v.opacity }

// SetScale sets the view's uniform scale factor.
func (v *TextView) SetScale(scale float64) { v.scale = scale }

// Scale returns the current scale factor.
func (v *TextView) Scale() float64 { return v.scale }

// HitTest always reports no target. The default toast never intercepts
// input.
func (v *TextView) HitTest(geometry.Offset) bool { return false }
