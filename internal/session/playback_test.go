package session

import (
	"math"
	"testing"
)

func TestPlaybackStepForwardLandsExactly(t *testing.T) {
	p := NewPlayback(-10, 10, 0.2)

	n := 25
	for i := 0; i < n; i++ {
		p.StepForward()
	}
	want := -10 + float64(n)*0.2
	if math.Abs(p.Shift()-want) > 1e-9 {
		t.Errorf("shift after %d steps = %v, want %v", n, p.Shift(), want)
	}
}

func TestPlaybackStepClampsAtBounds(t *testing.T) {
	p := NewPlayback(-2, 2, 1)

	for i := 0; i < 10; i++ {
		p.StepForward()
	}
	if p.Shift() != 2 {
		t.Errorf("shift = %v, want clamp at 2", p.Shift())
	}

	for i := 0; i < 10; i++ {
		p.StepBackward()
	}
	if p.Shift() != -2 {
		t.Errorf("shift = %v, want clamp at -2", p.Shift())
	}
}

func TestPlaybackTickWrapsAround(t *testing.T) {
	p := NewPlayback(-1, 1, 0.5)
	p.Play()

	shifts := make([]float64, 0, 8)
	for i := 0; i < 8; i++ {
		p.Tick()
		shifts = append(shifts, p.Shift())
	}

	// -0.5, 0, 0.5, 1, wrap to -1, -0.5, 0, 0.5
	want := []float64{-0.5, 0, 0.5, 1, -1, -0.5, 0, 0.5}
	for i := range want {
		if math.Abs(shifts[i]-want[i]) > 1e-9 {
			t.Fatalf("tick %d: shift = %v, want %v (full trace %v)", i, shifts[i], want[i], shifts)
		}
	}
	if p.State() != Playing {
		t.Error("controller must keep playing across the wrap")
	}
}

func TestPlaybackTickWhileStopped(t *testing.T) {
	p := NewPlayback(-1, 1, 0.5)
	p.Tick()
	if p.Shift() != -1 {
		t.Errorf("tick while stopped moved the shift to %v", p.Shift())
	}
}

func TestPlaybackSpeedMultiplier(t *testing.T) {
	p := NewPlayback(0, 10, 1)
	p.Play()
	p.SetSpeed(2.5)
	p.Tick()
	if math.Abs(p.Shift()-2.5) > 1e-9 {
		t.Errorf("shift = %v, want 2.5", p.Shift())
	}

	// Speed change mid-play takes effect on the next tick, shift untouched.
	p.SetSpeed(0.5)
	if math.Abs(p.Shift()-2.5) > 1e-9 {
		t.Errorf("SetSpeed moved the shift to %v", p.Shift())
	}
	p.Tick()
	if math.Abs(p.Shift()-3.0) > 1e-9 {
		t.Errorf("shift = %v, want 3.0", p.Shift())
	}
}

func TestPlaybackIgnoresBadSpeed(t *testing.T) {
	p := NewPlayback(0, 10, 1)
	p.SetSpeed(-1)
	if p.Speed() != 1 {
		t.Errorf("speed = %v, want unchanged 1", p.Speed())
	}
	p.SetSpeed(0)
	if p.Speed() != 1 {
		t.Errorf("speed = %v, want unchanged 1", p.Speed())
	}
}

func TestPlaybackReset(t *testing.T) {
	p := NewPlayback(-5, 5, 1)
	p.Play()
	p.Tick()
	p.Tick()
	p.Reset()

	if p.State() != Stopped {
		t.Error("reset must stop playback")
	}
	if p.Shift() != -5 {
		t.Errorf("shift = %v, want grid minimum -5", p.Shift())
	}
}

func TestPlaybackTransitions(t *testing.T) {
	p := NewPlayback(0, 1, 0.1)

	if p.State() != Stopped {
		t.Fatal("new controller must start stopped")
	}
	p.Play()
	if p.State() != Playing {
		t.Error("play: Stopped -> Playing")
	}
	p.Pause()
	if p.State() != Stopped {
		t.Error("pause: Playing -> Stopped")
	}
	p.Play()
	p.Stop()
	if p.State() != Stopped {
		t.Error("stop: Playing -> Stopped")
	}
}
