package session

import "testing"

func TestCountdown_FiresOnce(t *testing.T) {
	c := NewCountdown(3)
	if c.Active {
		t.Fatal("new countdown should be stopped")
	}
	c.Reset()

	fired := 0
	for i := 0; i < 10; i++ {
		if c.Tick() {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("fired %d times, want 1", fired)
	}
	if c.Remaining != 0 || c.Active {
		t.Errorf("after expiry: Remaining = %d, Active = %v", c.Remaining, c.Active)
	}
}

func TestCountdown_StopCancels(t *testing.T) {
	c := NewCountdown(2)
	c.Reset()
	c.Tick()
	c.Stop()
	if c.Tick() {
		t.Error("stopped countdown fired")
	}
	if c.Remaining != 1 {
		t.Errorf("Remaining = %d, want 1", c.Remaining)
	}
}

func TestCountdown_Fraction(t *testing.T) {
	tests := []struct {
		duration, ticks int
		want            float64
	}{
		{8, 0, 1},
		{8, 2, 0.75},
		{12, 3, 0.75},
		{4, 4, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		c := NewCountdown(tt.duration)
		c.Reset()
		for i := 0; i < tt.ticks; i++ {
			c.Tick()
		}
		if got := c.Fraction(); got != tt.want {
			t.Errorf("Fraction(%d after %d ticks) = %v, want %v", tt.duration, tt.ticks, got, tt.want)
		}
	}
}

func TestCountdown_UntimedNeverRuns(t *testing.T) {
	c := NewCountdown(0)
	c.Reset()
	if c.Active {
		t.Error("untimed countdown should stay inactive")
	}
	if c.Tick() {
		t.Error("untimed countdown fired")
	}
}
