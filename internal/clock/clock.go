package clock

import (
	"sync"
	"time"
)

// Date layouts used for daily log keys and note timestamps.
const (
	DayLayout  = "2006-01-02"
	TimeLayout = "15:04"
)

// Clock supplies the current local time. Handlers never call time.Now directly
// so reports can be tested against a fixed calendar day.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the wall clock.
func System() Clock { return systemClock{} }

// Fixed is a settable clock for tests.
type Fixed struct {
	mu sync.Mutex
	t  time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

// Set moves the clock to t.
func (f *Fixed) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = t
}

// Day formats t as a daily log key.
func Day(t time.Time) string {
	return t.Format(DayLayout)
}
