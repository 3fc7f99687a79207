package session

// PlayState is the playback state machine's state.
type PlayState int

const (
	Stopped PlayState = iota
	Playing
)

func (s PlayState) String() string {
	if s == Playing {
		return "playing"
	}
	return "stopped"
}

// Playback advances a session's time shift across a fixed grid. The zero
// value is unusable; Configure sets the grid geometry.
type Playback struct {
	state PlayState
	shift float64
	min   float64
	max   float64
	step  float64
	speed float64
}

// NewPlayback returns a stopped controller positioned at the grid minimum.
func NewPlayback(min, max, step float64) *Playback {
	return &Playback{shift: min, min: min, max: max, step: step, speed: 1}
}

// Configure replaces the grid geometry and rewinds to the new minimum.
func (p *Playback) Configure(min, max, step float64) {
	p.min, p.max, p.step = min, max, step
	p.shift = min
	p.state = Stopped
}

func (p *Playback) State() PlayState { return p.state }
func (p *Playback) Shift() float64   { return p.shift }
func (p *Playback) Speed() float64   { return p.speed }

func (p *Playback) Play()  { p.state = Playing }
func (p *Playback) Pause() { p.state = Stopped }
func (p *Playback) Stop()  { p.state = Stopped }

// Reset stops playback and rewinds the shift to the grid minimum.
func (p *Playback) Reset() {
	p.state = Stopped
	p.shift = p.min
}

// Tick advances the shift by one step scaled by the speed multiplier. Past
// the grid maximum the shift wraps to the minimum and playback continues.
// A tick while stopped is a no-op.
func (p *Playback) Tick() {
	if p.state != Playing {
		return
	}
	p.shift += p.step * p.speed
	if p.shift > p.max {
		p.shift = p.min
	}
}

// StepForward performs one bounded step regardless of play state.
func (p *Playback) StepForward() {
	p.shift = p.clamp(p.shift + p.step)
}

// StepBackward performs one bounded step regardless of play state.
func (p *Playback) StepBackward() {
	p.shift = p.clamp(p.shift - p.step)
}

// SetSpeed changes the multiplier; it takes effect on the next tick without
// resetting the shift. Non-positive values are ignored.
func (p *Playback) SetSpeed(speed float64) {
	if speed > 0 {
		p.speed = speed
	}
}

// SetShift moves the shift directly, clamped to the grid.
func (p *Playback) SetShift(shift float64) {
	p.shift = p.clamp(shift)
}

func (p *Playback) clamp(v float64) float64 {
	if v < p.min {
		return p.min
	}
	if v > p.max {
		return p.max
	}
	return v
}
