package clock

import "time"

// Clock supplies the current instant. A zero time means the clock source is unavailable.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to the Clock interface
type Func func() time.Time

// Now calls f
func (f Func) Now() time.Time {
	return f()
}

// System returns a Clock backed by time.Now, normalized to UTC
func System() Clock {
	return Func(func() time.Time {
		return time.Now().UTC()
	})
}

// Fixed returns a Clock that always reports t
func Fixed(t time.Time) Clock {
	return Func(func() time.Time {
		return t
	})
}
