package toast_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-glaze/glaze/pkg/animation"
	"github.com/go-glaze/glaze/pkg/errors"
	"github.com/go-glaze/glaze/pkg/geometry"
	"github.com/go-glaze/glaze/pkg/glazetest"
	"github.com/go-glaze/glaze/pkg/toast"
)

const (
	testAppear = 150 * time.Millisecond
	testVanish = 150 * time.Millisecond
)

func installClock(t *testing.T) *glazetest.FakeClock {
	t.Helper()
	clock := glazetest.NewFakeClock()
	prev := animation.SetClock(clock)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clock
}

func newController(t *testing.T) (*toast.Controller, *glazetest.FakeHost, *glazetest.FakeClock) {
	t.Helper()
	clock := installClock(t)
	host := glazetest.NewFakeHost()
	ctl := toast.NewController(host, toast.WithTransitionDurations(testAppear, testVanish))
	t.Cleanup(func() { ctl.Finish(false) })
	return ctl, host, clock
}

// trackView records the constraints and lifecycle values the controller
// applies to it.
type trackView struct {
	size     geometry.Size
	text     string
	lastCons geometry.Constraints
	frame    geometry.Rect
	opacity  float64
	scale    float64
}

func newTrackView() *trackView {
	return &trackView{size: geometry.Size{Width: 100, Height: 50}, scale: 1}
}

func (v *trackView) SetText(text string) { v.text = text }

func (v *trackView) Layout(c geometry.Constraints) geometry.Size {
	v.lastCons = c
	return c.Constrain(v.size)
}

func (v *trackView) SetFrame(r geometry.Rect) { v.frame = r }

func (v *trackView) Frame() geometry.Rect { return v.frame }

func (v *trackView) SetOpacity(o float64) { v.opacity = o }

func (v *trackView) Opacity() float64 { return v.opacity }

func (v *trackView) SetScale(s float64) { v.scale = s }

func (v *trackView) Scale() float64 { return v.scale }

func (v *trackView) HitTest(geometry.Offset) bool { return false }

// settle pumps long enough for a full show + hold + hide cycle plus slack.
func settle(clock *glazetest.FakeClock, hold time.Duration) {
	glazetest.Pump(clock, testAppear+hold+testVanish+500*time.Millisecond)
}

func TestShowAttachesAndAnimatesIn(t *testing.T) {
	ctl, host, clock := newController(t)
	view := newTrackView()

	ctl.Show(view, "saved", toast.NewAppearance(toast.PositionTop, 50, time.Second))

	require.Equal(t, 1, host.LiveLayers(), "surface created lazily on show")
	assert.Same(t, view, ctl.ActiveView())
	assert.Equal(t, "saved", view.text, "message applied via TextSetter")
	assert.Equal(t, 0.0, view.opacity, "starts transparent")
	assert.InDelta(t, 0.9, view.scale, 1e-9, "starts scaled down")

	glazetest.Pump(clock, testAppear)
	assert.Equal(t, 1.0, view.opacity, "fully visible after show transition")
	assert.Equal(t, 1.0, view.scale)
}

func TestRoundTripReleasesEverything(t *testing.T) {
	ctl, host, clock := newController(t)

	ctl.Show(newTrackView(), "X", toast.NewAppearance(toast.PositionTop, 50, 400*time.Millisecond))
	settle(clock, 400*time.Millisecond)

	assert.Nil(t, ctl.ActiveView())
	assert.Nil(t, ctl.Surface().View())
	assert.False(t, ctl.Surface().Active())
	assert.Equal(t, 0, host.LiveLayers(), "overlay released after natural dismissal")
}

func TestShowTextRoundTrip(t *testing.T) {
	ctl, host, clock := newController(t)

	ctl.ShowText("hello")

	view, ok := ctl.ActiveView().(*toast.TextView)
	require.True(t, ok, "ShowText uses the default view")
	assert.Equal(t, "hello", view.Text())
	assert.Equal(t, 50.0, view.Frame().Top, "default appearance pins 50 from the top")

	settle(clock, toast.DefaultDuration)
	assert.Equal(t, 0, host.LiveLayers())
	assert.Nil(t, ctl.Surface().View())
}

func TestLastShowWins(t *testing.T) {
	ctl, _, clock := newController(t)
	hello := newTrackView()
	world := newTrackView()

	ctl.Show(hello, "Hello", toast.NewAppearance(toast.PositionTop, 50, 3*time.Second))
	glazetest.Pump(clock, 50*time.Millisecond) // mid show transition
	require.Greater(t, hello.opacity, 0.0)

	ctl.Show(world, "World", toast.NewAppearance(toast.PositionBottom, 20, 2*time.Second))

	// The interrupted view is removed immediately, without an eased hide.
	assert.Equal(t, 0.0, hello.opacity)
	assert.Equal(t, 1.0, hello.scale, "no partially-applied transform left behind")
	assert.Nil(t, ctl.Surface().View(), "nothing attached during the buffer")
	assert.True(t, ctl.Active(), "incoming toast is scheduled")

	// The new sequence starts only after the preemption buffer.
	glazetest.Pump(clock, 100*time.Millisecond)
	assert.Nil(t, ctl.Surface().View())

	glazetest.Pump(clock, 200*time.Millisecond)
	require.NotNil(t, ctl.Surface().View())
	assert.Same(t, world, ctl.ActiveView())

	settle(clock, 2*time.Second)
	assert.Nil(t, ctl.Surface().View())
	assert.Equal(t, 0.0, world.opacity)
}

func TestRapidShowBurst(t *testing.T) {
	ctl, _, clock := newController(t)

	views := make([]*trackView, 4)
	for i := range views {
		views[i] = newTrackView()
		ctl.Show(views[i], fmt.Sprintf("toast %d", i), toast.DefaultAppearance())
	}

	// Only the last view ever becomes visible.
	glazetest.Pump(clock, testVanish+300*time.Millisecond)
	require.Same(t, views[3], ctl.ActiveView())
	for _, v := range views[:3] {
		assert.Equal(t, 0.0, v.opacity)
	}
}

func TestFinishImmediate(t *testing.T) {
	ctl, host, clock := newController(t)
	view := newTrackView()

	ctl.Show(view, "bye", toast.DefaultAppearance())
	glazetest.Pump(clock, 60*time.Millisecond)

	ctl.Finish(false)

	assert.Nil(t, ctl.Surface().View())
	assert.Equal(t, 0, host.LiveLayers())
	assert.Equal(t, 0.0, view.opacity)

	// Idempotent when nothing is active.
	ctl.Finish(false)
	assert.Equal(t, 0, host.LiveLayers())
}

func TestFinishAnimatedScalesDuration(t *testing.T) {
	ctl, host, clock := newController(t)
	view := newTrackView()

	ctl.Show(view, "bye", toast.DefaultAppearance())
	glazetest.Pump(clock, 70*time.Millisecond) // roughly half the show transition
	fraction := view.opacity
	require.Greater(t, fraction, 0.0)
	require.Less(t, fraction, 1.0)

	ctl.Finish(true)
	require.NotNil(t, ctl.Surface().View(), "animated finish does not remove immediately")

	// The hide completes strictly faster than a full disappearance.
	var elapsed time.Duration
	for ctl.Surface().Active() && elapsed < time.Second {
		clock.Advance(glazetest.FrameInterval)
		animation.StepTickers()
		elapsed += glazetest.FrameInterval
	}
	assert.Less(t, elapsed, testVanish)
	assert.Equal(t, 0, host.LiveLayers())
	assert.Equal(t, 0.0, view.opacity)
}

func TestFinishAnimatedWhenIdle(t *testing.T) {
	ctl, host, _ := newController(t)
	ctl.Finish(true)
	assert.Equal(t, 0, host.LiveLayers())
}

func TestFinishDuringPreemptionBuffer(t *testing.T) {
	ctl, host, clock := newController(t)

	ctl.Show(newTrackView(), "a", toast.DefaultAppearance())
	ctl.Show(newTrackView(), "b", toast.DefaultAppearance())
	require.True(t, ctl.Active())

	ctl.Finish(false)

	assert.False(t, ctl.Active())
	assert.Equal(t, 0, host.LiveLayers())

	// The cancelled toast never appears.
	glazetest.Pump(clock, time.Second)
	assert.Nil(t, ctl.ActiveView())
	assert.Equal(t, 0, host.LiveLayers())
}

func TestConfigureAffectsSubsequentShows(t *testing.T) {
	ctl, _, clock := newController(t)
	view := newTrackView()

	ctl.Configure(60*time.Millisecond, 60*time.Millisecond)
	ctl.Show(view, "quick", toast.DefaultAppearance())

	glazetest.Pump(clock, 60*time.Millisecond)
	assert.Equal(t, 1.0, view.opacity, "show completed at the configured speed")
}

func TestConfigureDoesNotAlterRunningTransition(t *testing.T) {
	ctl, _, clock := newController(t)
	view := newTrackView()

	ctl.Configure(400*time.Millisecond, 400*time.Millisecond)
	ctl.Show(view, "slow", toast.DefaultAppearance())
	glazetest.Pump(clock, 200*time.Millisecond)
	require.Less(t, view.opacity, 1.0)

	ctl.Configure(10*time.Millisecond, 10*time.Millisecond)
	glazetest.Pump(clock, 100*time.Millisecond)
	assert.Less(t, view.opacity, 1.0, "running show keeps its original duration")

	glazetest.Pump(clock, 120*time.Millisecond)
	assert.Equal(t, 1.0, view.opacity)
}

func TestPositioningTop(t *testing.T) {
	ctl, host, _ := newController(t)
	view := newTrackView()

	ctl.Show(view, "top", toast.NewAppearance(toast.PositionTop, 50, time.Second))

	bounds := host.Bounds()
	frame := view.frame
	assert.Equal(t, 50.0, frame.Top)
	assert.Equal(t, 100.0, frame.Width())
	// Centered within the side insets.
	assert.InDelta(t, bounds.Center().X, frame.Center().X, 1e-9)
}

func TestPositioningBottom(t *testing.T) {
	ctl, host, _ := newController(t)
	view := newTrackView()

	ctl.Show(view, "bottom", toast.NewAppearance(toast.PositionBottom, 20, time.Second))

	bounds := host.Bounds()
	frame := view.frame
	assert.Equal(t, bounds.Bottom-20, frame.Bottom)
	assert.Equal(t, 50.0, frame.Height())
	assert.InDelta(t, bounds.Center().X, frame.Center().X, 1e-9)
}

func TestLargeFormFactorFixedWidth(t *testing.T) {
	installClock(t)
	host := glazetest.NewFakeHost()
	host.Screen = geometry.RectFromLTWH(0, 0, 800, 600)
	ctl := toast.NewController(host)
	t.Cleanup(func() { ctl.Finish(false) })

	view := newTrackView()
	view.size = geometry.Size{Width: 900, Height: 50}
	ctl.Show(view, "wide", toast.DefaultAppearance())

	assert.Equal(t, 400.0, view.lastCons.MaxWidth, "large displays use the fixed width")
	assert.Equal(t, 400.0, view.frame.Width())
	assert.Equal(t, 200.0, view.frame.Left)
}

func TestHitTestPassThrough(t *testing.T) {
	ctl, _, clock := newController(t)

	ctl.ShowText("inert")
	glazetest.Pump(clock, testAppear)

	frame := ctl.ActiveView().Frame()
	assert.False(t, ctl.Surface().HitTest(frame.Center()),
		"default toast never intercepts input")
	assert.False(t, ctl.Surface().HitTest(geometry.Offset{X: 1, Y: 800}))
}

func TestShowSurvivesLayerCreationFailure(t *testing.T) {
	ctl, host, _ := newController(t)
	host.CreateErr = fmt.Errorf("headless")

	reports := &captureHandler{}
	errors.SetHandler(reports)
	t.Cleanup(func() { errors.SetHandler(nil) })

	ctl.Show(newTrackView(), "x", toast.DefaultAppearance())

	assert.Nil(t, ctl.ActiveView())
	require.Len(t, reports.errors, 1)
	assert.Equal(t, errors.KindHost, reports.errors[0].Kind)
}

func TestShowSurvivesPanickingView(t *testing.T) {
	ctl, host, _ := newController(t)

	reports := &captureHandler{}
	errors.SetHandler(reports)
	t.Cleanup(func() { errors.SetHandler(nil) })

	ctl.Show(panicView{newTrackView()}, "x", toast.DefaultAppearance())

	assert.Nil(t, ctl.ActiveView())
	assert.Equal(t, 0, host.LiveLayers(), "surface released when nothing attached")
	require.Len(t, reports.panics, 1)
	assert.Equal(t, "toast.layoutView", reports.panics[0].Op)
}

func TestShowNilViewIsNoop(t *testing.T) {
	ctl, host, _ := newController(t)
	ctl.Show(nil, "x", toast.DefaultAppearance())
	assert.Equal(t, 0, len(host.Layers))
}

// panicView blows up during layout.
type panicView struct{ *trackView }

func (panicView) Layout(geometry.Constraints) geometry.Size { panic("boom") }

// captureHandler records reported errors for assertions.
type captureHandler struct {
	errors []*errors.GlazeError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.GlazeError) { h.errors = append(h.errors, err) }

func (h *captureHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }
