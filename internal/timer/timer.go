// Package timer runs the rest countdown between sets.
package timer

import (
	"context"
	"time"
)

type Outcome int

const (
	Expired Outcome = iota
	Cancelled
)

func (o Outcome) String() string {
	if o == Cancelled {
		return "cancelled"
	}
	return "expired"
}

// Countdown ticks every Tick and reports the time remaining to Display.
type Countdown struct {
	Tick    time.Duration
	Display func(remaining time.Duration)
}

// Run blocks until d has elapsed or ctx is done. Display is called once up
// front, on every tick, and with zero when the countdown expires.
func (c Countdown) Run(ctx context.Context, d time.Duration) Outcome {
	tick := c.Tick
	if tick <= 0 {
		tick = time.Second
	}
	show := c.Display
	if show == nil {
		show = func(time.Duration) {}
	}

	deadline := time.Now().Add(d)
	show(d)
	if d <= 0 {
		return Expired
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	done := time.NewTimer(d)
	defer done.Stop()

	for {
		select {
		case <-ctx.Done():
			return Cancelled
		case <-done.C:
			show(0)
			return Expired
		case now := <-ticker.C:
			if left := deadline.Sub(now); left > 0 {
				show(left.Round(tick))
			}
		}
	}
}

// Run counts down d with one second ticks.
func Run(ctx context.Context, d time.Duration, display func(remaining time.Duration)) Outcome {
	return Countdown{Tick: time.Second, Display: display}.Run(ctx, d)
}
