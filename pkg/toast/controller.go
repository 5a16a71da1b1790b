package toast

import (
	"time"

	"github.com/go-glaze/glaze/pkg/animation"
	"github.com/go-glaze/glaze/pkg/errors"
	"github.com/go-glaze/glaze/pkg/geometry"
	"github.com/go-glaze/glaze/pkg/surface"
)

const (
	// preemptionGap pads the delay before a preempting toast starts, on
	// top of the configured disappearance duration, so the incoming show
	// never overlaps the outgoing view visually.
	preemptionGap = 50 * time.Millisecond

	// DefaultAppearanceDuration is the default show transition length.
	DefaultAppearanceDuration = 300 * time.Millisecond
	// DefaultDisappearanceDuration is the default hide transition length.
	DefaultDisappearanceDuration = 300 * time.Millisecond
)

// Metrics bounds toast layout. The defaults suit pixel hosts; terminal
// hosts supply cell-sized values via [WithMetrics].
type Metrics struct {
	// SideInset keeps toasts off the leading/trailing display edges.
	SideInset float64
	// MinHeight and MaxHeight bound a view's measured height.
	MinHeight float64
	MaxHeight float64
	// LargeFormWidth is the display width at which toasts stop tracking
	// the display and take FixedWidth instead.
	LargeFormWidth float64
	FixedWidth     float64
}

// DefaultMetrics returns the pixel-oriented layout defaults.
func DefaultMetrics() Metrics {
	return Metrics{
		SideInset:      10,
		MinHeight:      44,
		MaxHeight:      160,
		LargeFormWidth: 600,
		FixedWidth:     400,
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithTransitionDurations sets the initial show/hide transition speeds,
// equivalent to calling [Controller.Configure] before first use.
func WithTransitionDurations(appearance, disappearance time.Duration) Option {
	return func(c *Controller) {
		c.appearDur = appearance
		c.vanishDur = disappearance
	}
}

// WithDefaultAppearance sets the appearance used by [Controller.ShowText].
func WithDefaultAppearance(a Appearance) Option {
	return func(c *Controller) {
		c.defaultAppearance = a
	}
}

// WithMetrics replaces the layout metrics.
func WithMetrics(m Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// Controller owns the overlay surface and sequences toast show/hide
// animations, guaranteeing that at most one toast is visible or animating
// at any instant. A new show request always preempts the current one.
//
// Controllers are single-threaded: every method must run on the UI
// execution context, and all mutable state (the active sequence, the
// surface) is only touched from there. Animations are cooperative timers
// advanced by the host's frame loop, so a show call is always fully
// processed before the new sequence's first frame renders.
type Controller struct {
	surf *surface.Surface

	appearDur         time.Duration
	vanishDur         time.Duration
	defaultAppearance Appearance
	metrics           Metrics

	seq     *sequence
	pending *pendingShow
	nextID  uint64
}

// pendingShow is a show request waiting out the preemption buffer after an
// earlier toast was interrupted.
type pendingShow struct {
	timer   *animation.Ticker
	view    View
	message string
	appear  Appearance
}

// NewController creates a controller bound to the given host. The overlay
// surface is not created until the first show call.
func NewController(host surface.Host, opts ...Option) *Controller {
	c := &Controller{
		surf:              surface.New(host),
		appearDur:         DefaultAppearanceDuration,
		vanishDur:         DefaultDisappearanceDuration,
		defaultAppearance: DefaultAppearance(),
		metrics:           DefaultMetrics(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Surface returns the controller's overlay surface. Hosts use it for input
// routing (Surface.HitTest) and to read the attached view when painting.
func (c *Controller) Surface() *surface.Surface {
	return c.surf
}

// ActiveView returns the view of the currently animating or visible toast,
// or nil when no toast is active.
func (c *Controller) ActiveView() View {
	if c.seq == nil {
		return nil
	}
	return c.seq.view
}

// Active reports whether a toast is visible, animating, or scheduled to
// start after a preemption buffer.
func (c *Controller) Active() bool {
	return c.seq != nil || c.pending != nil
}

// Configure sets the process-wide show and hide transition speeds. These
// are distinct from the per-toast hold duration carried by [Appearance].
// The new speeds affect subsequent transitions; one already running is
// not altered. Values are not validated; negative durations behave as
// zero downstream.
func (c *Controller) Configure(appearanceDuration, disappearanceDuration time.Duration) {
	c.appearDur = appearanceDuration
	c.vanishDur = disappearanceDuration
}

// Show displays view as a toast, preempting any toast currently visible or
// animating. The latest call always wins; concurrent shows never error.
//
// When view implements [TextSetter] the message is applied before layout;
// otherwise the caller is expected to have populated the view. The view is
// positioned per the appearance, attached to the lazily-created overlay
// surface, and animated through show, hold, and hide.
//
// If a toast was active, its view is removed immediately and the new
// sequence starts after a short buffer so the two transitions never
// overlap visually.
func (c *Controller) Show(view View, message string, appearance Appearance) {
	if view == nil {
		return
	}
	c.cancelPending()

	if c.seq != nil {
		c.interrupt()
		c.schedule(view, message, appearance)
		return
	}
	c.begin(view, message, appearance)
}

// ShowText displays message in a default [TextView] with the default
// appearance.
func (c *Controller) ShowText(message string) {
	c.Show(NewTextView(), message, c.defaultAppearance)
}

// Finish force-dismisses the current toast. When animated, the hide
// transition starts from the toast's current visible fraction and its
// duration is scaled down accordingly, so a toast that was already mostly
// gone finishes quickly. When not animated, the view is removed
// immediately. Either way the controller ends with no attached views and a
// released surface. Finish is a no-op when no toast is active.
func (c *Controller) Finish(animated bool) {
	c.cancelPending()

	if c.seq == nil {
		// Covers a Finish landing inside the preemption buffer: nothing is
		// visible but the surface may still be alive.
		c.surf.Release()
		return
	}
	if !animated {
		c.remove()
		return
	}
	fraction := c.seq.visibleFraction()
	if fraction <= 0 {
		c.remove()
		return
	}
	c.seq.startHide(time.Duration(fraction * float64(c.vanishDur)))
}

// interrupt stops the active sequence and removes its view immediately,
// leaving the view in a consistent final property state. The surface layer
// is kept alive for the incoming sequence.
func (c *Controller) interrupt() {
	s := c.seq
	c.seq = nil
	s.halt()
	s.view.SetOpacity(0)
	s.view.SetScale(1)
	c.surf.Detach()
}

// schedule queues a show to begin once the preemption buffer has elapsed.
func (c *Controller) schedule(view View, message string, appearance Appearance) {
	delay := c.vanishDur + preemptionGap
	p := &pendingShow{view: view, message: message, appear: appearance}
	p.timer = animation.NewTicker(func(elapsed time.Duration) {
		if elapsed < delay {
			return
		}
		p.timer.Stop()
		if c.pending != p {
			return
		}
		c.pending = nil
		c.begin(p.view, p.message, p.appear)
	})
	c.pending = p
	p.timer.Start()
}

func (c *Controller) cancelPending() {
	if c.pending == nil {
		return
	}
	c.pending.timer.Stop()
	c.pending = nil
}

// begin attaches the view and starts a fresh sequence.
func (c *Controller) begin(view View, message string, appearance Appearance) {
	if err := c.surf.EnsureExists(); err != nil {
		errors.Report(&errors.GlazeError{Op: "toast.Show", Kind: errors.KindHost, Err: err})
		return
	}
	if setter, ok := view.(TextSetter); ok {
		errors.Guard("toast.setText", func() { setter.SetText(message) })
	}
	if !c.layoutView(view, appearance) {
		// Custom view panicked during layout; nothing was attached.
		c.surf.Release()
		return
	}
	c.surf.Attach(view)

	c.nextID++
	c.seq = newSequence(c.nextID, view, appearance, c.handle, c.surf.Invalidate)
	c.seq.startShow(c.appearDur)
}

// layoutView measures the view and pins it per the appearance: centered
// horizontally within the side insets, offset from the top or bottom edge.
func (c *Controller) layoutView(view View, appearance Appearance) bool {
	bounds := c.surf.Bounds()
	avail := bounds.Inset(geometry.SymmetricInsets(c.metrics.SideInset, 0))

	cons := geometry.Constraints{
		MaxWidth:  avail.Width(),
		MinHeight: c.metrics.MinHeight,
		MaxHeight: c.metrics.MaxHeight,
	}
	if c.metrics.LargeFormWidth > 0 && bounds.Width() >= c.metrics.LargeFormWidth {
		cons = geometry.TightWidth(c.metrics.FixedWidth, c.metrics.MinHeight, c.metrics.MaxHeight)
	}

	var size geometry.Size
	if !errors.Guard("toast.layoutView", func() { size = view.Layout(cons) }) {
		return false
	}
	size = cons.Constrain(size)

	x := avail.Left + (avail.Width()-size.Width)/2
	var y float64
	switch appearance.Position {
	case PositionBottom:
		y = bounds.Bottom - appearance.Offset - size.Height
	default:
		y = bounds.Top + appearance.Offset
	}
	view.SetFrame(geometry.RectFromLTWH(x, y, size.Width, size.Height))
	return true
}

// handle applies a sequence event. Events from a superseded sequence are
// discarded by the id check, guarding against stale completions firing
// after preemption.
func (c *Controller) handle(ev sequenceEvent) {
	s := c.seq
	if s == nil || ev.ID != s.id {
		return
	}
	switch ev.Kind {
	case eventShown:
		s.startHold(s.appear.Duration)
	case eventHeld:
		s.startHide(c.vanishDur)
	case eventHidden:
		c.remove()
	}
}

// remove tears down the active sequence and releases the surface.
func (c *Controller) remove() {
	s := c.seq
	c.seq = nil
	if s != nil {
		s.halt()
		s.view.SetOpacity(0)
		s.view.SetScale(1)
	}
	c.surf.Release()
}
