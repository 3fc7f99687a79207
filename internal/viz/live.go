package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/convsim/internal/conv"
	"github.com/san-kum/convsim/internal/session"
	"github.com/san-kum/convsim/internal/store"
)

const (
	frameRate   = 30
	chartWidth  = 70
	chartHeight = 10
	traceHeight = 4
)

type TickMsg time.Time

// fullMsg carries an asynchronously computed full curve back to the UI,
// tagged with the session version it was computed against.
type fullMsg struct {
	res     conv.Result
	version uint64
}

// Model drives a convolution session as an interactive playback view.
type Model struct {
	sess     *session.Session
	recs     *store.Store
	frame    conv.Frame
	status   session.Status
	full     *conv.Result
	showFull bool
	showHelp bool
	errText  string
	notice   string
}

func NewModel(sess *session.Session) Model {
	m := Model{sess: sess, recs: store.New(), status: sess.Status()}
	if frame, err := sess.EvaluateAt(m.status.Shift); err == nil {
		m.frame = frame
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), computeFull(m.sess))
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// computeFull samples the full curve off the UI loop. The session discards
// the result if the expressions changed while it was being computed.
func computeFull(sess *session.Session) tea.Cmd {
	kernel, version, err := sess.Snapshot()
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		return fullMsg{res: kernel.Full(), version: version}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.status.State == session.Playing {
				m.status = m.sess.Apply(session.CmdPause)
			} else {
				m.status = m.sess.Apply(session.CmdPlay)
			}
		case "r":
			m.status = m.sess.Apply(session.CmdReset)
		case "left", "h":
			m.status = m.sess.Apply(session.CmdStepBackward)
		case "right", "l":
			m.status = m.sess.Apply(session.CmdStepForward)
		case "+", "=":
			m.status = m.sess.SetSpeed(m.status.Speed * 1.25)
		case "-", "_":
			m.status = m.sess.SetSpeed(m.status.Speed * 0.8)
		case "s":
			if m.sess.Style() == session.StyleBlockStep {
				m.sess.SetStyle(session.StyleMathematical)
			} else {
				m.sess.SetStyle(session.StyleBlockStep)
			}
		case "f":
			m.showFull = !m.showFull
		case "w":
			x, h := m.sess.Expressions()
			id := m.recs.Save(store.Record{
				Mode:   string(m.sess.Mode()),
				X:      x,
				H:      h,
				Shift:  m.status.Shift,
				Speed:  m.status.Speed,
				Style:  string(m.sess.Style()),
				Preset: m.sess.Preset(),
			})
			m.notice = "saved " + id
		case "?":
			m.showHelp = !m.showHelp
		}
		if m.status.State != session.Playing {
			if frame, err := m.sess.EvaluateAt(m.status.Shift); err == nil {
				m.frame = frame
			}
		}
		return m, nil

	case TickMsg:
		frame, status, err := m.sess.Tick()
		if err != nil {
			m.errText = err.Error()
		} else {
			m.frame = frame
			m.status = status
			m.errText = ""
		}
		return m, tick()

	case fullMsg:
		if m.sess.ApplyFull(msg.res, msg.version) {
			res := msg.res
			m.full = &res
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	x, h := m.sess.Expressions()

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(string(m.sess.Mode()))+" CONVOLUTION") + "\n")
	s.WriteString(labelStyle.Render("x") + exprStyle.Render(x) + "\n")
	s.WriteString(labelStyle.Render("h") + exprStyle.Render(h) + "\n\n")

	if m.errText != "" {
		s.WriteString(errorStyle.Render(m.errText) + "\n")
		s.WriteString(helpStyle.Render("Q:Quit"))
		return s.String()
	}

	state := statusStopped.Render(m.status.State.String())
	if m.status.State == session.Playing {
		state = statusPlaying.Render(m.status.State.String())
	}
	s.WriteString(state + "  ")
	s.WriteString(labelStyle.Render("shift") + valueStyle.Render(fmt.Sprintf("%.2f", m.status.Shift)) + "  ")
	s.WriteString(labelStyle.Render("value") + valueStyle.Render(fmt.Sprintf("%.4f", m.frame.Value)) + "  ")
	s.WriteString(labelStyle.Render("speed") + valueStyle.Render(fmt.Sprintf("%.2fx", m.status.Speed)) + "\n")
	if info := m.sequenceInfo(); info != "" {
		s.WriteString(labelStyle.Render("sequences") + valueStyle.Render(info) + "\n")
	}

	chart := FramePlot(m.frame, m.sess.Style(), chartWidth, chartHeight)
	s.WriteString(graphStyle.Render(chart) + "\n")

	if m.showFull && m.full != nil {
		s.WriteString(graphStyle.Render(CurvePlot(*m.full, m.sess.Style(), chartWidth, chartHeight/2)) + "\n")
		marker := m.full.ValueAt(m.status.Shift)
		s.WriteString(labelStyle.Render("curve") + valueStyle.Render(fmt.Sprintf("y(%.2f) = %.4f", m.status.Shift, marker)) + "\n")
	}

	if history := m.sess.History(); len(history) > 1 {
		if trace := TracePlot(history, chartWidth, traceHeight); trace != "" {
			s.WriteString(graphStyle.Render(trace) + "\n")
		}
	}

	if m.notice != "" {
		s.WriteString(valueStyle.Render(m.notice) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Play/Pause R:Reset ←→:Step +-:Speed S:Style F:Full W:Save ?:Help Q:Quit"))

	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, helpOverlay, s.String())
	}
	return s.String()
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Play/Pause the shift     ║
║  R        - Reset to the left edge   ║
║  ←/→      - Step by one increment    ║
║  +/-      - Speed up / slow down     ║
║  S        - Toggle block-step style  ║
║  F        - Toggle full curve        ║
║  W        - Save a session record    ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`

// sequenceInfo summarizes a discrete kernel's sequences for the sidebar.
func (m Model) sequenceInfo() string {
	kernel, _, err := m.sess.Snapshot()
	if err != nil {
		return ""
	}
	dk, ok := kernel.(*conv.DiscreteKernel)
	if !ok {
		return ""
	}
	xLen, xStart, hLen, hStart, outStart := dk.Info()
	info := fmt.Sprintf("x: %d samples at n=%d   h: %d at n=%d   y starts at n=%d",
		xLen, xStart, hLen, hStart, outStart)
	if dk.Truncated() {
		info += "   (window truncated)"
	}
	return info
}

// Run starts the playback TUI on the given session.
func Run(sess *session.Session) error {
	p := tea.NewProgram(NewModel(sess))
	_, err := p.Run()
	return err
}
