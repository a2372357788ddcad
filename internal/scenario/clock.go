package scenario

import "time"

// Clock is the virtual time source a scenario runs on: a fixed base
// instant plus whole days accumulated by advance_days steps.
type Clock struct {
	base time.Time
	days int
}

// NewClock creates a clock anchored at base with no days elapsed.
func NewClock(base time.Time) *Clock {
	return &Clock{base: base}
}

// Now returns the current virtual time.
func (c *Clock) Now() time.Time {
	return c.base.AddDate(0, 0, c.days)
}

// Advance moves the clock forward by the given number of days.
// Negative values are ignored; scenario time never runs backwards.
func (c *Clock) Advance(days int) {
	if days > 0 {
		c.days += days
	}
}

// Days returns the total days elapsed since the base instant.
func (c *Clock) Days() int {
	return c.days
}
