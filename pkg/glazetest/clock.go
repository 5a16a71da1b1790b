// Package glazetest provides test doubles for the glaze library: a
// controllable clock, a recording fake host, and helpers for stepping
// animation frames deterministically.
//
// A typical test installs the fake clock, builds a controller over a fake
// host, and pumps frames:
//
//	clock := glazetest.NewFakeClock()
//	restore := animation.SetClock(clock)
//	defer animation.SetClock(restore)
//
//	host := glazetest.NewFakeHost()
//	ctl := toast.NewController(host)
//	ctl.ShowText("saved")
//	glazetest.Pump(clock, 500*time.Millisecond)
package glazetest

import (
	"sync"
	"time"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
