package session

// Countdown is the per-question timer. It counts whole seconds and is
// driven by external one-second ticks.
type Countdown struct {
	Duration  int  // seconds per question, 0 for untimed sections
	Remaining int  // seconds left
	Active    bool // false once stopped or expired
}

// NewCountdown returns a stopped countdown of the given length.
func NewCountdown(seconds int) Countdown {
	return Countdown{Duration: seconds, Remaining: seconds}
}

// Reset refills the countdown and starts it. Untimed countdowns stay
// inactive.
func (c *Countdown) Reset() {
	c.Remaining = c.Duration
	c.Active = c.Duration > 0
}

// Stop cancels the countdown, keeping the remaining seconds for display.
func (c *Countdown) Stop() {
	c.Active = false
}

// Tick removes one second. It returns true exactly once, on the tick that
// reaches zero; inactive countdowns never fire.
func (c *Countdown) Tick() bool {
	if !c.Active {
		return false
	}
	c.Remaining--
	if c.Remaining <= 0 {
		c.Remaining = 0
		c.Active = false
		return true
	}
	return false
}

// Fraction returns Remaining / Duration, or 0 for untimed countdowns.
func (c Countdown) Fraction() float64 {
	if c.Duration <= 0 {
		return 0
	}
	return float64(c.Remaining) / float64(c.Duration)
}
