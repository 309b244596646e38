// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slidepane/slidepane/f32"
	"github.com/slidepane/slidepane/io/pointer"
	"github.com/slidepane/slidepane/layout"
	"github.com/slidepane/slidepane/widget"
)

// frameInterval is the animation frame period.
const frameInterval = time.Second / 60

type frameMsg time.Time

// model hosts a SlidingPane in a bubbletea program.
type model struct {
	pane  *widget.SlidingPane
	dirty *widget.DirtyRegion
	log   *slog.Logger

	children   []layout.Child
	cols, rows int
	// start is the origin of pointer event times.
	start time.Time
	// pressed is the held mouse button, if any.
	pressed pointer.Buttons
	// captured is set while the container owns the gesture.
	captured bool
	ticking  bool
	status   string
}

func newModel(cfg widget.Config, dir layout.Direction, log *slog.Logger) *model {
	dirty := new(widget.DirtyRegion)
	cfg.Invalidator = dirty
	m := &model{
		pane:  widget.NewSlidingPane(metric, cfg),
		dirty: dirty,
		log:   log,
		start: time.Now(),
		children: []layout.Child{
			{Width: layout.WrapContent, Height: layout.MatchParent},
			{Width: layout.MatchParent, Height: layout.MatchParent, Opaque: true},
		},
	}
	m.pane.Direction = dir
	m.pane.AddListener(&widget.ListenerFuncs{
		Opened: func() { m.status = "opened" },
		Closed: func() { m.status = "closed" },
	})
	m.pane.Attach()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

// resize lays the panes out for a terminal of cols by rows cells.
// The last row is the status line.
func (m *model) resize(cols, rows int) {
	old := m.cols * cellWidth
	m.cols, m.rows = cols, rows
	if old != 0 {
		m.pane.SizeChanged(cols*cellWidth, old)
	}
	m.layout()
}

func (m *model) layout() {
	if m.cols == 0 {
		return
	}
	h := max(m.rows-1, 0) * cellHeight
	m.pane.Measure(layout.Exact(m.cols*cellWidth), layout.Exact(h), m.children)
	m.pane.Layout()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if quit := m.key(msg.String()); quit {
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.mouse(msg)
	case frameMsg:
		m.ticking = false
		m.pane.Frame(time.Time(msg))
	}
	return m, m.schedule()
}

// schedule requests an animation frame if the pane asked for one.
func (m *model) schedule() tea.Cmd {
	_, frame := m.dirty.Collect()
	if !frame || m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *model) key(k string) bool {
	switch k {
	case "q", "ctrl+c", "esc":
		return true
	case "o":
		m.pane.Open(true)
	case "c":
		m.pane.Close(true)
	case " ":
		if m.pane.IsOpen() {
			m.pane.Close(true)
		} else {
			m.pane.Open(true)
		}
	case "r":
		if m.pane.Direction == layout.RTL {
			m.pane.Direction = layout.LTR
		} else {
			m.pane.Direction = layout.RTL
		}
		m.layout()
	case "p":
		if m.pane.ParallaxDistance() == 0 {
			m.pane.SetParallaxDistance(m.cols * cellWidth / 4)
		} else {
			m.pane.SetParallaxDistance(0)
		}
		m.layout()
	case "1", "2", "3", "4":
		a := []widget.PendingAction{
			widget.PendingExpand,
			widget.PendingCollapse,
			widget.PendingExpandAndLock,
			widget.PendingCollapseAndLock,
		}[k[0]-'1']
		if err := m.pane.SetPendingAction(a); err != nil {
			m.status = err.Error()
			return false
		}
		m.log.Debug("pending action", slog.String("action", a.String()))
		m.layout()
	}
	return false
}

var buttons = map[tea.MouseButton]pointer.Buttons{
	tea.MouseButtonLeft:   pointer.ButtonPrimary,
	tea.MouseButtonRight:  pointer.ButtonSecondary,
	tea.MouseButtonMiddle: pointer.ButtonTertiary,
}

// mouse translates a terminal mouse event to a pointer event at the
// center of the cell.
func (m *model) mouse(msg tea.MouseMsg) {
	e := pointer.Event{
		Source:   pointer.Mouse,
		Time:     time.Since(m.start),
		Position: f32.Pt(float32(msg.X*cellWidth+cellWidth/2), float32(msg.Y*cellHeight+cellHeight/2)),
	}
	switch msg.Action {
	case tea.MouseActionPress:
		b, ok := buttons[msg.Button]
		if !ok || m.pressed != 0 {
			return
		}
		m.pressed = b
		e.Kind = pointer.Press
		e.Buttons = b
	case tea.MouseActionMotion:
		if m.pressed == 0 {
			return
		}
		e.Kind = pointer.Drag
		e.Buttons = m.pressed
	case tea.MouseActionRelease:
		if m.pressed == 0 {
			return
		}
		m.pressed = 0
		e.Kind = pointer.Release
	default:
		return
	}
	m.dispatch(e)
}

func (m *model) dispatch(e pointer.Event) {
	switch {
	case m.captured:
		m.pane.Event(e)
	case m.pane.Intercept(e):
		m.captured = true
	default:
		// Terminal panes have no pointer handlers of their own.
		m.captured = m.pane.Event(e)
	}
	if e.Ended() {
		m.captured = false
	}
}

func (m *model) View() string {
	if m.cols == 0 {
		return ""
	}
	return render(m.pane, m.cols, m.rows-1) + "\n" + m.statusLine()
}

func (m *model) statusLine() string {
	s := fmt.Sprintf(" %s %.2f %s %s", m.pane.State(), m.pane.Offset(), m.pane.GestureState(), m.pane.Direction)
	if m.pane.Locked() {
		s += " locked"
	}
	if m.status != "" {
		s += " | " + m.status
	}
	s += " | o/c/space r p 1-4 q"
	if len(s) > m.cols {
		s = s[:m.cols]
	}
	return statusStyle.Width(m.cols).Render(s)
}

// geometry describes the current layout.
func (m *model) geometry() string {
	var b strings.Builder
	meas := m.pane.Measurement()
	fmt.Fprintf(&b, "terminal %dx%d cells, container %v\n", m.cols, m.rows, meas.Size)
	fmt.Fprintf(&b, "slideable %v, drag range %d, offset %.2f\n", meas.Slideable, m.pane.DragRange(), m.pane.Offset())
	for i, r := range m.pane.Rects() {
		fmt.Fprintf(&b, "pane %d: %v visible %v dimmed %v\n", i, r, m.pane.Visible(i), m.pane.IsDimmed(i))
	}
	return b.String()
}
