// Package surface provides the overlay surface that hosts toast content
// above the rest of the application, together with the minimal capability
// contract a host platform must implement.
//
// The library is host-agnostic: anything that can create a top-most display
// layer, report its bounds, and repaint on request can host toasts. The
// bundled terminal demo and the test fakes are both ordinary Host
// implementations.
package surface

import "github.com/go-glaze/glaze/pkg/geometry"

// Host is the capability contract a platform must satisfy to display
// toasts. Implementations must be usable from the UI execution context;
// none of the methods are called concurrently.
type Host interface {
	// Bounds returns the display area available for toast layout, in
	// logical pixels (or cells, for terminal hosts).
	Bounds() geometry.Rect

	// CreateLayer creates a top-most display layer. The layer is destroyed
	// when the surface is released; hosts may be asked to create a new one
	// afterwards.
	CreateLayer() (Layer, error)
}

// Layer is a handle to a host display layer created by [Host.CreateLayer].
type Layer interface {
	// Invalidate requests a repaint of the layer's content.
	Invalidate()

	// Destroy tears the layer down. Called exactly once per layer.
	Destroy()
}

// View is the contract any toast content must satisfy.
//
// A view participates in size-constrained layout, is positioned by the
// controller via SetFrame, and exposes opacity and a uniform 2D scale for
// the animation sequencer to drive. Hosts read Frame, Opacity, and Scale
// when painting.
type View interface {
	// Layout measures the view under the given constraints and returns
	// its chosen size. Called before the view is attached.
	Layout(c geometry.Constraints) geometry.Size

	// SetFrame positions the view within the host bounds.
	SetFrame(r geometry.Rect)

	// Frame returns the frame set by the most recent SetFrame.
	Frame() geometry.Rect

	// SetOpacity sets the view's opacity in [0, 1].
	SetOpacity(opacity float64)

	// Opacity returns the current opacity.
	Opacity() float64

	// SetScale sets the view's uniform scale factor, applied about the
	// frame's center.
	SetScale(scale float64)

	// Scale returns the current scale factor.
	Scale() float64

	// HitTest reports whether the view claims the point, given in the
	// view's local coordinates. Input-inert views always return false so
	// the application behind them stays interactive.
	HitTest(p geometry.Offset) bool
}
