// Command glaze-demo hosts the toast controller inside a terminal UI.
//
// It implements the surface.Host contract over the terminal cell grid,
// pumps animation frames from a bubbletea tick loop, and paints the active
// toast with lipgloss, fading it in and out by mapping opacity onto text
// emphasis. Keys:
//
//	t  show a toast at the top
//	b  show a toast at the bottom
//	s  simulate a background job posting a toast via surface.Dispatch
//	d  dismiss with animation
//	x  dismiss immediately
//	q  quit
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-glaze/glaze/pkg/animation"
	"github.com/go-glaze/glaze/pkg/geometry"
	"github.com/go-glaze/glaze/pkg/surface"
	"github.com/go-glaze/glaze/pkg/toast"
)

const frameInterval = 50 * time.Millisecond

var (
	helpStyle  = lipgloss.NewStyle().Faint(true)
	titleStyle = lipgloss.NewStyle().Bold(true)

	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Foreground(lipgloss.Color("230")).
			BorderForeground(lipgloss.Color("63"))

	toastFaintStyle = toastStyle.Faint(true).
			BorderForeground(lipgloss.Color("240"))
)

// termHost adapts the terminal cell grid to the surface.Host contract.
type termHost struct {
	width  int
	height int
}

func (h *termHost) Bounds() geometry.Rect {
	return geometry.RectFromLTWH(0, 0, float64(h.width), float64(h.height))
}

func (h *termHost) CreateLayer() (surface.Layer, error) {
	// bubbletea repaints the whole screen on every View call, so the layer
	// carries no state of its own.
	return termLayer{}, nil
}

type termLayer struct{}

func (termLayer) Invalidate() {}
func (termLayer) Destroy()    {}

// boxView is a toast view rendered as a bordered lipgloss box. Cell-sized:
// one text line plus the border.
type boxView struct {
	text    string
	frame   geometry.Rect
	opacity float64
	scale   float64
}

func newBoxView() *boxView { return &boxView{scale: 1} }

func (v *boxView) SetText(text string) { v.text = text }

func (v *boxView) Layout(c geometry.Constraints) geometry.Size {
	size := geometry.Size{
		Width:  float64(lipgloss.Width(v.text) + 4),
		Height: 3,
	}
	return c.Constrain(size)
}

func (v *boxView) SetFrame(r geometry.Rect) { v.frame = r }

func (v *boxView) Frame() geometry.Rect { return v.frame }

func (v *boxView) SetOpacity(o float64) { v.opacity = o }

func (v *boxView) Opacity() float64 { return v.opacity }

func (v *boxView) SetScale(s float64) { v.scale = s }

func (v *boxView) Scale() float64 { return v.scale }

func (v *boxView) HitTest(geometry.Offset) bool { return false }

func (v *boxView) render() string {
	style := toastStyle
	if v.opacity < 0.5 {
		style = toastFaintStyle
	}
	return style.Render(v.text)
}

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// dispatchMsg carries a callback marshalled onto the UI loop via
// surface.Dispatch.
type dispatchMsg struct {
	callback func()
}

type model struct {
	host  *termHost
	ctl   *toast.Controller
	count int
}

func newModel() *model {
	host := &termHost{width: 80, height: 24}
	metrics := toast.Metrics{
		SideInset:      2,
		MinHeight:      3,
		MaxHeight:      7,
		LargeFormWidth: 140,
		FixedWidth:     48,
	}
	ctl := toast.NewController(host,
		toast.WithMetrics(metrics),
		toast.WithDefaultAppearance(toast.NewAppearance(toast.PositionTop, 2, 3*time.Second)),
	)
	return &model{host: host, ctl: ctl}
}

func (m *model) Init() tea.Cmd {
	return frameTick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.host.width = msg.Width
		m.host.height = msg.Height
		return m, nil

	case frameMsg:
		animation.StepTickers()
		return m, frameTick()

	case dispatchMsg:
		if msg.callback != nil {
			msg.callback()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.count++
			m.ctl.Show(newBoxView(), fmt.Sprintf("Saved draft #%d", m.count),
				toast.NewAppearance(toast.PositionTop, 2, 2*time.Second))
		case "b":
			m.count++
			m.ctl.Show(newBoxView(), fmt.Sprintf("Upload %d complete", m.count),
				toast.NewAppearance(toast.PositionBottom, 1, 2*time.Second))
		case "s":
			// Simulate a background job finishing off the UI loop.
			go func() {
				time.Sleep(300 * time.Millisecond)
				surface.Dispatch(func() {
					m.ctl.Show(newBoxView(), "Background sync finished",
						toast.NewAppearance(toast.PositionTop, 2, 3*time.Second))
				})
			}()
		case "d":
			m.ctl.Finish(true)
		case "x":
			m.ctl.Finish(false)
		}
		return m, nil
	}
	return m, nil
}

func (m *model) View() string {
	lines := make([]string, m.host.height)
	lines[0] = titleStyle.Render("glaze demo")
	if len(lines) > 2 {
		lines[2] = helpStyle.Render("t top toast | b bottom toast | s background toast | d dismiss | x kill | q quit")
	}

	view, ok := m.ctl.Surface().View().(*boxView)
	if !ok || view == nil || view.Opacity() <= 0 {
		return strings.Join(lines, "\n")
	}

	// Splice the toast box into the background at its frame position.
	box := view.render()
	frame := view.Frame()
	row := int(frame.Top)
	col := int(frame.Left)
	for i, boxLine := range strings.Split(box, "\n") {
		y := row + i
		if y < 0 || y >= len(lines) {
			continue
		}
		lines[y] = overlayLine(lines[y], boxLine, col, m.host.width)
	}
	return strings.Join(lines, "\n")
}

// overlayLine places overlay at column col within base, padding base with
// spaces as needed. Styled widths are measured with lipgloss.
func overlayLine(base, overlay string, col, width int) string {
	if col < 0 {
		col = 0
	}
	pad := col - lipgloss.Width(base)
	if pad > 0 {
		base += strings.Repeat(" ", pad)
	}
	// Keep it simple: the demo background has no content under the toast
	// rows beyond padding, so appending is enough.
	out := base + overlay
	if lipgloss.Width(out) > width {
		return overlay
	}
	return out
}

func main() {
	m := newModel()
	p := tea.NewProgram(m, tea.WithAltScreen())

	surface.RegisterDispatch(func(callback func()) {
		p.Send(dispatchMsg{callback: callback})
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "glaze-demo: %v\n", err)
		os.Exit(1)
	}
}
