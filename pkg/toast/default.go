package toast

import (
	"time"

	"github.com/go-glaze/glaze/pkg/surface"
)

// std is the process-wide default controller. Most applications want a
// single controller; Init wires one up once and the package-level helpers
// delegate to it. Tests should construct independent controllers with
// [NewController] instead.
var std *Controller

// Init creates the default controller bound to host, replacing any
// previous one. Like every other operation, Init must run on the UI
// execution context.
func Init(host surface.Host, opts ...Option) *Controller {
	if std != nil {
		std.Finish(false)
	}
	std = NewController(host, opts...)
	return std
}

// Default returns the default controller, or nil before Init.
func Default() *Controller {
	return std
}

// Reset dismisses any active toast and clears the default controller.
func Reset() {
	if std == nil {
		return
	}
	std.Finish(false)
	std = nil
}

// Show delegates to the default controller. No-op before Init.
func Show(view View, message string, appearance Appearance) {
	if std != nil {
		std.Show(view, message, appearance)
	}
}

// ShowText delegates to the default controller. No-op before Init.
func ShowText(message string) {
	if std != nil {
		std.ShowText(message)
	}
}

// Finish delegates to the default controller. No-op before Init.
func Finish(animated bool) {
	if std != nil {
		std.Finish(animated)
	}
}

// Configure delegates to the default controller. No-op before Init.
func Configure(appearanceDuration, disappearanceDuration time.Duration) {
	if std != nil {
		std.Configure(appearanceDuration, disappearanceDuration)
	}
}
