package clock

import "time"

// Clock stamps catalog events. Usecases take it as a dependency so tests can
// pin event times.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// Now returns the current time in UTC.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock returns a controlled time. With a non-zero step every call to
// Now moves it forward, giving successive events distinct, ordered stamps.
type FakeClock struct {
	now  time.Time
	step time.Duration
}

// NewFake creates a FakeClock frozen at t (expected in UTC).
func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// NewTicking creates a FakeClock that starts at t and advances by step after each read.
func NewTicking(t time.Time, step time.Duration) *FakeClock {
	return &FakeClock{now: t, step: step}
}

// Now returns the fake current time, then applies the step.
func (f *FakeClock) Now() time.Time {
	t := f.now
	f.now = f.now.Add(f.step)
	return t
}

// Set moves the clock to t.
func (f *FakeClock) Set(t time.Time) {
	f.now = t
}

// Advance moves the clock forward by d.
func (f *FakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
