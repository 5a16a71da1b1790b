package glazetest

import (
	"github.com/go-glaze/glaze/pkg/geometry"
	"github.com/go-glaze/glaze/pkg/surface"
)

// FakeHost is a recording implementation of surface.Host. It hands out
// FakeLayers and keeps every layer it ever created so tests can assert on
// lifecycle (created, invalidated, destroyed).
type FakeHost struct {
	// Screen is the display area reported by Bounds. Defaults to a
	// phone-ish 390x844 portrait rect.
	Screen geometry.Rect

	// CreateErr, when set, makes CreateLayer fail.
	CreateErr error

	// Layers records every layer created, in order.
	Layers []*FakeLayer
}

// NewFakeHost returns a host with default screen bounds.
func NewFakeHost() *FakeHost {
	return &FakeHost{Screen: geometry.RectFromLTWH(0, 0, 390, 844)}
}

// Bounds implements surface.Host.
func (h *FakeHost) Bounds() geometry.Rect {
	return h.Screen
}

// CreateLayer implements surface.Host.
func (h *FakeHost) CreateLayer() (surface.Layer, error) {
	if h.CreateErr != nil {
		return nil, h.CreateErr
	}
	layer := &FakeLayer{}
	h.Layers = append(h.Layers, layer)
	return layer, nil
}

// LiveLayers returns how many created layers have not been destroyed.
func (h *FakeHost) LiveLayers() int {
	n := 0
	for _, layer := range h.Layers {
		if !layer.Destroyed {
			n++
		}
	}
	return n
}

// FakeLayer records invalidation and destruction.
type FakeLayer struct {
	Invalidations int
	Destroyed     bool
}

// Invalidate implements surface.Layer.
func (l *FakeLayer) Invalidate() {
	l.Invalidations++
}

// Destroy implements surface.Layer.
func (l *FakeLayer) Destroy() {
	l.Destroyed = true
}
