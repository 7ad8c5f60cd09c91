package timeutil

import "time"

var _ Ticker = (*FakeTicker)(nil)

// FakeTicker fires only when Tick is called. Tick blocks until the owner of
// the ticker receives.
type FakeTicker struct {
	ch      chan time.Time
	stopped chan struct{}
}

func NewFakeTicker() *FakeTicker {
	return &FakeTicker{
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}
}

func (t *FakeTicker) Chan() <-chan time.Time {
	return t.ch
}

func (t *FakeTicker) Stop() {
	select {
	case <-t.stopped:
	default:
		close(t.stopped)
	}
}

func (t *FakeTicker) Tick() {
	t.TickAt(time.Now())
}

// TickAt delivers now, or returns without delivering once the ticker is
// stopped.
func (t *FakeTicker) TickAt(now time.Time) {
	select {
	case t.ch <- now:
	case <-t.stopped:
	}
}

// WrapFakeTicker returns a NewTickerFunc that always hands out ticker,
// whatever interval is asked for.
func WrapFakeTicker(ticker *FakeTicker) NewTickerFunc {
	return func(time.Duration) Ticker {
		return ticker
	}
}
