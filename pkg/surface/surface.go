package surface

import (
	"fmt"

	"github.com/go-glaze/glaze/pkg/errors"
	"github.com/go-glaze/glaze/pkg/geometry"
)

// Surface is the overlay layer that hosts toast content. It owns exactly
// one content view and exists only while a toast is visible or animating.
//
// The lifecycle is explicit: EnsureExists lazily creates the host layer on
// first use, Attach sets the content root, and Release idempotently tears
// everything down. The toast controller invokes these at defined points;
// the surface never creates or destroys itself as a side effect.
//
// Surface methods must only be called from the UI execution context. Hosts
// that deliver events on other goroutines marshal through [Dispatch].
type Surface struct {
	host  Host
	layer Layer
	view  View
}

// New creates a surface bound to the given host. No host resources are
// acquired until EnsureExists.
func New(host Host) *Surface {
	return &Surface{host: host}
}

// EnsureExists lazily creates the host layer. It is a no-op when the layer
// already exists.
func (s *Surface) EnsureExists() error {
	if s.layer != nil {
		return nil
	}
	layer, err := s.host.CreateLayer()
	if err != nil {
		return fmt.Errorf("create layer: %w", err)
	}
	if layer == nil {
		return fmt.Errorf("host returned nil layer")
	}
	s.layer = layer
	return nil
}

// Active reports whether the surface currently holds a host layer.
func (s *Surface) Active() bool {
	return s.layer != nil
}

// Bounds returns the host's display bounds.
func (s *Surface) Bounds() geometry.Rect {
	return s.host.Bounds()
}

// Attach sets the surface's single content view, replacing any previous
// one, and requests a repaint.
func (s *Surface) Attach(view View) {
	s.view = view
	s.Invalidate()
}

// Detach removes the content view without destroying the layer. The view
// reference is released; the caller decides whether to Release the surface.
func (s *Surface) Detach() {
	if s.view == nil {
		return
	}
	s.view = nil
	s.Invalidate()
}

// View returns the attached content view, or nil.
func (s *Surface) View() View {
	return s.view
}

// Invalidate requests a repaint of the layer, if one exists.
func (s *Surface) Invalidate() {
	if s.layer != nil {
		s.layer.Invalidate()
	}
}

// Release detaches any content and destroys the host layer. It is
// idempotent: calling it on an already-released surface is a no-op.
func (s *Surface) Release() {
	s.view = nil
	if s.layer == nil {
		return
	}
	layer := s.layer
	s.layer = nil
	errors.Guard("surface.Release", layer.Destroy)
}

// HitTest reports whether toast content claims the point, given in host
// coordinates. Everywhere outside the content view's frame reports no
// target, so the application behind the surface stays interactive. Hosts
// call this from their input pipeline before routing an event to the app.
func (s *Surface) HitTest(p geometry.Offset) bool {
	if s.view == nil {
		return false
	}
	frame := s.view.Frame()
	if !frame.Contains(p) {
		return false
	}
	local := geometry.Offset{X: p.X - frame.Left, Y: p.Y - frame.Top}
	return s.view.HitTest(local)
}
