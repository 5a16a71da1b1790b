// Package geometry provides the 2D value types used for toast layout:
// points, sizes, rectangles, edge insets, and layout constraints.
package geometry

// Offset represents a 2D point or vector in logical pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether the size has no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Contains reports whether the point lies inside the rectangle.
// Points on the left/top edges are inside; right/bottom edges are outside.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Inset returns the rectangle shrunk by the given insets. The result may
// be inverted if the insets exceed the rectangle's dimensions; callers
// that care should check Width/Height afterwards.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		Left:   r.Left + in.Left,
		Top:    r.Top + in.Top,
		Right:  r.Right - in.Right,
		Bottom: r.Bottom - in.Bottom,
	}
}

// Insets describes distances from each edge of a rectangle.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// SymmetricInsets creates insets with equal horizontal and equal vertical values.
func SymmetricInsets(horizontal, vertical float64) Insets {
	return Insets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the combined left and right insets.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns the combined top and bottom insets.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// Constraints describes the min/max box a view may occupy during layout.
// A zero max means unbounded on that axis.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// TightWidth returns constraints with the width fixed and height bounded
// between minH and maxH.
func TightWidth(width, minH, maxH float64) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MinHeight: minH, MaxHeight: maxH}
}

// Constrain returns the closest size to s that satisfies the constraints.
func (c Constraints) Constrain(s Size) Size {
	out := s
	if out.Width < c.MinWidth {
		out.Width = c.MinWidth
	}
	if c.MaxWidth > 0 && out.Width > c.MaxWidth {
		out.Width = c.MaxWidth
	}
	if out.Height < c.MinHeight {
		out.Height = c.MinHeight
	}
	if c.MaxHeight > 0 && out.Height > c.MaxHeight {
		out.Height = c.MaxHeight
	}
	return out
}
