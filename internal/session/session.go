package session

import (
	"errors"
	"sync"

	"github.com/san-kum/convsim/internal/conv"
	"github.com/san-kum/convsim/internal/signal"
)

// ErrNotReady indicates a command against a session with no compiled signals.
var ErrNotReady = errors.New("session: signals not compiled")

// Style selects how display layers draw the signals.
type Style string

const (
	StyleMathematical Style = "mathematical"
	StyleBlockStep    Style = "block-step"
)

// Command is a playback command applied through the session's lock.
type Command int

const (
	CmdPlay Command = iota
	CmdPause
	CmdStop
	CmdStepForward
	CmdStepBackward
	CmdReset
)

// Status is a snapshot of the playback state after a command or tick.
type Status struct {
	State   PlayState
	Shift   float64
	Speed   float64
	Ready   bool
	Message string
}

// TracePoint is one visited (shift, value) pair of the playback history.
type TracePoint struct {
	Shift float64
	Value float64
}

// Session aggregates two signals, the convolution kernel, the playback
// controller, and cached results. All access is serialized by an internal
// mutex; the computational core underneath is pure.
type Session struct {
	mu sync.Mutex

	mode   signal.Domain
	style  Style
	preset string

	xText, hText string
	kernel       conv.Kernel
	playback     *Playback

	full    *conv.Result
	version uint64
	history []TracePoint
}

// New creates an empty session for the given mode.
func New(mode signal.Domain) *Session {
	return &Session{
		mode:     mode,
		style:    StyleMathematical,
		playback: NewPlayback(0, 0, 1),
	}
}

// SetExpressions compiles both signals and rebuilds the kernel. The playback
// grid is reconfigured and the shift rewound; cached results are dropped.
// Both signals must compile or the session keeps its previous state.
func (s *Session) SetExpressions(xText, hText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kernel, err := buildKernel(s.mode, xText, hText)
	if err != nil {
		return err
	}

	s.xText, s.hText = xText, hText
	s.kernel = kernel
	min, max := kernel.Bounds()
	s.playback.Configure(min, max, kernel.StepSize())
	s.full = nil
	s.history = nil
	s.version++
	return nil
}

func buildKernel(mode signal.Domain, xText, hText string) (conv.Kernel, error) {
	if mode == signal.Discrete {
		x, err := signal.ParseSequence(xText, conv.DefaultIndexWindow)
		if err != nil {
			return nil, err
		}
		h, err := signal.ParseSequence(hText, conv.DefaultIndexWindow)
		if err != nil {
			return nil, err
		}
		return conv.NewDiscrete(x, h, conv.DefaultIndexWindow), nil
	}

	x, err := signal.Compile(xText, signal.Continuous)
	if err != nil {
		return nil, err
	}
	h, err := signal.Compile(hText, signal.Continuous)
	if err != nil {
		return nil, err
	}
	return conv.NewContinuous(x, h, conv.DefaultTauGrid, conv.DefaultOutputGrid), nil
}

// Ready reports whether both signals are compiled.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kernel != nil
}

// Mode returns the session's domain.
func (s *Session) Mode() signal.Domain { return s.mode }

// Expressions returns the current signal texts.
func (s *Session) Expressions() (x, h string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.xText, s.hText
}

// Style returns the visualization style.
func (s *Session) Style() Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.style
}

// SetStyle changes the visualization style.
func (s *Session) SetStyle(style Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = style
}

// Preset returns the preset identifier the session was loaded from, if any.
func (s *Session) Preset() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preset
}

// SetPreset records the preset identifier for serialization.
func (s *Session) SetPreset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preset = name
}

// EvaluateAt computes one visualization frame at t0, clamped to the playback
// bounds. The shift is not moved; use Apply or Tick for that.
func (s *Session) EvaluateAt(t0 float64) (conv.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kernel == nil {
		return conv.Frame{}, ErrNotReady
	}
	min, max := s.kernel.Bounds()
	if t0 < min {
		t0 = min
	} else if t0 > max {
		t0 = max
	}
	return s.kernel.FrameAt(t0), nil
}

// FullCurve returns the full convolution curve, computing and caching it on
// first use.
func (s *Session) FullCurve() (conv.Result, error) {
	s.mu.Lock()
	if s.kernel == nil {
		s.mu.Unlock()
		return conv.Result{}, ErrNotReady
	}
	if s.full != nil {
		res := *s.full
		s.mu.Unlock()
		return res, nil
	}
	kernel := s.kernel
	s.mu.Unlock()

	// Computed outside the lock: the kernel is immutable and ticks must not
	// stall behind a full-curve pass.
	res := kernel.Full()

	s.mu.Lock()
	if s.kernel == kernel {
		s.full = &res
	}
	s.mu.Unlock()
	return res, nil
}

// Snapshot returns the immutable kernel and the session version for
// asynchronous recomputation. The caller must treat the kernel as read-only.
func (s *Session) Snapshot() (conv.Kernel, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kernel == nil {
		return nil, 0, ErrNotReady
	}
	return s.kernel, s.version, nil
}

// ApplyFull installs an asynchronously computed curve. It reports false and
// discards the result if the session's parameters changed since the snapshot.
func (s *Session) ApplyFull(res conv.Result, version uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version != s.version {
		return false
	}
	s.full = &res
	return true
}

// Apply runs a playback command. Commands against an empty session are
// no-ops reporting not-ready.
func (s *Session) Apply(cmd Command) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kernel == nil {
		return Status{Message: "not ready: set signal expressions first"}
	}

	switch cmd {
	case CmdPlay:
		s.playback.Play()
	case CmdPause:
		s.playback.Pause()
	case CmdStop:
		s.playback.Stop()
	case CmdStepForward:
		s.playback.StepForward()
	case CmdStepBackward:
		s.playback.StepBackward()
	case CmdReset:
		s.playback.Reset()
		s.history = nil
	}
	return s.statusLocked()
}

// SetSpeed changes the playback speed multiplier; effective next tick.
func (s *Session) SetSpeed(speed float64) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kernel == nil {
		return Status{Message: "not ready: set signal expressions first"}
	}
	s.playback.SetSpeed(speed)
	return s.statusLocked()
}

// SetShift moves the time shift directly, clamped to the grid.
func (s *Session) SetShift(shift float64) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kernel == nil {
		return Status{Message: "not ready: set signal expressions first"}
	}
	s.playback.SetShift(shift)
	return s.statusLocked()
}

// Tick advances playback by one externally driven tick and returns the frame
// at the new shift. While stopped the shift does not move but the current
// frame is still returned.
func (s *Session) Tick() (conv.Frame, Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kernel == nil {
		return conv.Frame{}, Status{Message: "not ready: set signal expressions first"}, ErrNotReady
	}

	playing := s.playback.State() == Playing
	s.playback.Tick()
	frame := s.kernel.FrameAt(s.playback.Shift())
	if playing {
		s.history = append(s.history, TracePoint{Shift: frame.Shift, Value: frame.Value})
	}
	return frame, s.statusLocked(), nil
}

// Status returns the current playback snapshot.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kernel == nil {
		return Status{Message: "not ready: set signal expressions first"}
	}
	return s.statusLocked()
}

// History returns the playback trace accumulated since the last reset.
func (s *Session) History() []TracePoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TracePoint, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) statusLocked() Status {
	return Status{
		State: s.playback.State(),
		Shift: s.playback.Shift(),
		Speed: s.playback.Speed(),
		Ready: true,
	}
}
