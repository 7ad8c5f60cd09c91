// Package timeutil puts periodic timers behind an interface so loops driven
// by them can be stepped by hand in tests.
package timeutil

import "time"

var _ Ticker = (*timeTicker)(nil)

type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// NewTickerFunc creates a Ticker firing every d.
type NewTickerFunc func(d time.Duration) Ticker

// Generic adapts a constructor returning a concrete Ticker type.
func Generic[T Ticker](f func(d time.Duration) T) NewTickerFunc {
	return func(d time.Duration) Ticker {
		return f(d)
	}
}

type timeTicker struct {
	*time.Ticker
}

func (t *timeTicker) Chan() <-chan time.Time {
	return t.C
}

// NewTicker wraps time.NewTicker.
func NewTicker(d time.Duration) *timeTicker {
	return &timeTicker{time.NewTicker(d)}
}
