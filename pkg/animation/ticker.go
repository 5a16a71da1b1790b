// Package animation provides the timing primitives that drive toast
// transitions: an injectable clock, frame tickers, a value-producing
// controller, and easing curves.
//
// # Core components
//
//   - [AnimationController]: drives a value from 0.0 to 1.0 over a duration,
//     with configurable easing and status change notifications.
//
//   - [Tween]: maps the controller's 0-1 value onto other ranges or types,
//     such as an opacity fade or a scale pop.
//
//   - [Ticker]: the low-level per-frame callback primitive. Hosts advance all
//     active tickers once per frame by calling [StepTickers].
//
// # Basic usage
//
//	controller := animation.NewAnimationController(300 * time.Millisecond)
//	controller.Curve = animation.EaseOut
//	opacity := animation.TweenFloat64(0, 1)
//	controller.AddListener(func() {
//	    view.SetOpacity(opacity.Transform(controller))
//	})
//	controller.Forward()
//
// The host's frame loop then calls animation.StepTickers() once per frame.
// Always call Dispose when done to stop the animation and release resources.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController]
// and by delay timers. The callback receives the elapsed time since Start
// was called. Tickers are driven by the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker. Stopped tickers receive no further callbacks,
// including callbacks for frames already being stepped.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host's frame loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
