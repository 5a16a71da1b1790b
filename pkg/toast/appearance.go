// Package toast shows transient, non-blocking notification banners above an
// application's content and manages their full lifecycle: lazy overlay
// creation, the show/hold/hide animation sequence, preemption between
// overlapping show requests, and overlay teardown.
//
// At most one toast is visible or animating per [Controller] at any instant;
// a new show request always preempts the current one (last-show-wins).
//
// All operations must run on the UI execution context. Animations are
// advanced by the host's frame loop via animation.StepTickers; hosts that
// receive events on other goroutines marshal through surface.Dispatch.
package toast

import "time"

// Position selects which screen edge a toast is pinned to.
type Position int

const (
	// PositionTop pins the toast below the top edge.
	PositionTop Position = iota
	// PositionBottom pins the toast above the bottom edge.
	PositionBottom
)

// String returns a human-readable representation of the position.
func (p Position) String() string {
	switch p {
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	default:
		return "position(?)"
	}
}

// Appearance describes where and how long a toast is shown. It is an
// immutable value created per show call; two appearances with equal fields
// are interchangeable.
//
// Offset is the distance from the pinned edge in logical pixels. Duration
// is the hold time between the show and hide transitions; it is distinct
// from the transition speeds set via [Controller.Configure]. Negative
// values are not validated and behave as zero downstream.
type Appearance struct {
	Position Position
	Offset   float64
	Duration time.Duration
}

// Default values used by [Controller.ShowText] and as the zero-config
// appearance.
const (
	DefaultOffset   = 50.0
	DefaultDuration = 3 * time.Second
)

// NewAppearance constructs an Appearance value.
func NewAppearance(position Position, offset float64, duration time.Duration) Appearance {
	return Appearance{Position: position, Offset: offset, Duration: duration}
}

// DefaultAppearance returns the appearance used by ShowText: pinned to the
// top edge, 50 pixels down, held for three seconds.
func DefaultAppearance() Appearance {
	return Appearance{Position: PositionTop, Offset: DefaultOffset, Duration: DefaultDuration}
}
