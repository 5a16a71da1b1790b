package glazetest

import (
	"time"

	"github.com/go-glaze/glaze/pkg/animation"
)

// FrameInterval is the simulated frame length used by Pump.
const FrameInterval = 10 * time.Millisecond

// Pump advances the fake clock by total in frame-sized steps, advancing
// all active tickers after each step. Phase transitions that chain new
// timers (show completion starting the hold, the hold starting the hide)
// are picked up on the following frame, as they would be in a real host's
// frame loop.
func Pump(clock *FakeClock, total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += FrameInterval {
		step := FrameInterval
		if remaining := total - elapsed; remaining < step {
			step = remaining
		}
		clock.Advance(step)
		animation.StepTickers()
	}
	// One extra pump so completions scheduled exactly at the boundary run.
	animation.StepTickers()
}
