package clock

import (
	"testing"
	"time"
)

func TestGameClockStep(t *testing.T) {
	c := New(50)
	if c.Frame() != 20*time.Millisecond {
		t.Fatalf("Frame() = %v, expected 20ms", c.Frame())
	}

	for i := 0; i < 10; i++ {
		c.Step()
	}
	if c.Now() != 200*time.Millisecond {
		t.Errorf("Now() = %v, expected 200ms", c.Now())
	}
}

func TestGameClockDefaultTickRate(t *testing.T) {
	c := New(0)
	if c.Frame() != time.Second/60 {
		t.Errorf("Frame() = %v, expected %v", c.Frame(), time.Second/60)
	}
}

func TestGameClockPause(t *testing.T) {
	c := New(60)
	c.Advance(time.Second)

	c.Pause()
	if !c.Paused() {
		t.Fatal("Paused() = false after Pause")
	}
	c.Step()
	c.Advance(time.Hour)
	if c.Now() != time.Second {
		t.Errorf("Now() = %v while paused, expected 1s", c.Now())
	}

	c.Resume()
	c.Advance(500 * time.Millisecond)
	if c.Now() != 1500*time.Millisecond {
		t.Errorf("Now() = %v after resume, expected 1.5s", c.Now())
	}
}

func TestGameClockAdvanceNegative(t *testing.T) {
	c := New(60)
	c.Advance(time.Second)
	c.Advance(-time.Second)
	if c.Now() != time.Second {
		t.Errorf("Now() = %v, expected 1s", c.Now())
	}
}

func TestGameClockReset(t *testing.T) {
	c := New(60)
	c.Advance(time.Second)
	c.Pause()
	c.Reset()
	if c.Now() != 0 || c.Paused() {
		t.Errorf("Reset() left now=%v paused=%v", c.Now(), c.Paused())
	}
}

func TestManual(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)
	m.Advance(time.Minute)
	if got := m.Now(); !got.Equal(start.Add(time.Minute)) {
		t.Errorf("Now() = %v, expected %v", got, start.Add(time.Minute))
	}

	m.Set(start)
	if !m.Now().Equal(start) {
		t.Errorf("Set did not replace time")
	}

	var _ TimeProvider = System{}
	var _ TimeProvider = m
}
