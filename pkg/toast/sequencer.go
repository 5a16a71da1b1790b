package toast

import (
	"fmt"
	"time"

	"github.com/go-glaze/glaze/pkg/animation"
)

// phase enumerates the states a toast sequence moves through.
//
//	idle ──► showing ──► holding ──► hiding ──► removed
//
// Preemption and Finish can enter hiding (or jump straight to removed)
// from any active phase.
type phase int

const (
	phaseIdle phase = iota
	phaseShowing
	phaseHolding
	phaseHiding
	phaseRemoved
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseShowing:
		return "showing"
	case phaseHolding:
		return "holding"
	case phaseHiding:
		return "hiding"
	case phaseRemoved:
		return "removed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// eventKind identifies which phase of a sequence finished.
type eventKind int

const (
	// eventShown fires when the show transition runs to full completion.
	eventShown eventKind = iota
	// eventHeld fires when the hold duration elapses.
	eventHeld
	// eventHidden fires when the hide transition completes.
	eventHidden
)

// sequenceEvent is posted by a sequence when a phase finishes. Events carry
// the sequence id; the controller applies an event only when the id matches
// the still-current sequence, so a stale completion firing after preemption
// cannot mutate a newer toast's state.
type sequenceEvent struct {
	ID   uint64
	Kind eventKind
}

// showStartScale is the scale a toast pops in from. The show transition
// animates opacity 0 to 1 and scale showStartScale to 1 together.
const showStartScale = 0.9

// sequence drives one toast through its animation phases. At most one
// sequence exists per controller; it is replaced on preemption and
// destroyed when the hide phase completes or is force-stopped.
type sequence struct {
	id     uint64
	view   View
	appear Appearance

	phase phase
	show  *animation.AnimationController
	hide  *animation.AnimationController
	hold  *animation.Ticker

	// hideFrom is the visible fraction the hide transition started from.
	hideFrom float64

	opacityIn *animation.Tween[float64]
	scaleIn   *animation.Tween[float64]

	// onEvent posts phase completions to the controller.
	onEvent func(sequenceEvent)
	// onFrame requests a repaint after a property change.
	onFrame func()
}

func newSequence(id uint64, view View, appear Appearance, onEvent func(sequenceEvent), onFrame func()) *sequence {
	return &sequence{
		id:        id,
		view:      view,
		appear:    appear,
		phase:     phaseIdle,
		opacityIn: animation.TweenFloat64(0, 1),
		scaleIn:   animation.TweenFloat64(showStartScale, 1),
		onEvent:   onEvent,
		onFrame:   onFrame,
	}
}

// startShow begins the show transition: opacity 0 to 1, scale 0.9 to 1,
// over d with ease-out.
func (s *sequence) startShow(d time.Duration) {
	s.phase = phaseShowing
	s.applyVisible(0)

	s.show = animation.NewAnimationController(d)
	s.show.Curve = animation.EaseOut
	s.show.AddListener(func() {
		s.applyVisible(s.show.Value)
	})
	s.show.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted {
			s.emit(eventShown)
		}
	})
	s.show.Forward()
}

// startHold waits out the toast's hold duration at full visibility.
// Only entered when the show transition ran to completion.
func (s *sequence) startHold(d time.Duration) {
	s.phase = phaseHolding
	s.applyVisible(1)

	s.hold = animation.NewTicker(func(elapsed time.Duration) {
		if elapsed >= d {
			s.hold.Stop()
			s.emit(eventHeld)
		}
	})
	s.hold.Start()
}

// startHide fades the toast out over d, starting from whatever visible
// fraction the sequence currently has. Any in-flight transition is stopped
// first and the scale snapped to its final value, so the hide only ever
// animates opacity.
func (s *sequence) startHide(d time.Duration) {
	s.hideFrom = s.visibleFraction()
	s.stopTimers()
	s.phase = phaseHiding
	s.view.SetScale(1)

	s.hide = animation.NewAnimationController(d)
	s.hide.Curve = animation.EaseIn
	s.hide.AddListener(func() {
		s.view.SetOpacity(s.hideFrom * (1 - s.hide.Value))
		s.frame()
	})
	s.hide.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted {
			s.emit(eventHidden)
		}
	})
	s.hide.Forward()
}

// visibleFraction returns how visible the toast currently is, in [0, 1].
func (s *sequence) visibleFraction() float64 {
	switch s.phase {
	case phaseShowing:
		return s.show.Value
	case phaseHolding:
		return 1
	case phaseHiding:
		return s.hideFrom * (1 - s.hide.Value)
	default:
		return 0
	}
}

// halt synchronously stops all in-flight animation. No callbacks tied to
// the stopped animations fire afterwards.
func (s *sequence) halt() {
	s.stopTimers()
	s.phase = phaseRemoved
}

func (s *sequence) stopTimers() {
	if s.show != nil {
		s.show.Stop()
	}
	if s.hide != nil {
		s.hide.Stop()
	}
	if s.hold != nil {
		s.hold.Stop()
	}
}

func (s *sequence) applyVisible(t float64) {
	s.view.SetOpacity(s.opacityIn.Evaluate(t))
	s.view.SetScale(s.scaleIn.Evaluate(t))
	s.frame()
}

func (s *sequence) frame() {
	if s.onFrame != nil {
		s.onFrame()
	}
}

func (s *sequence) emit(kind eventKind) {
	if s.onEvent != nil {
		s.onEvent(sequenceEvent{ID: s.id, Kind: kind})
	}
}
