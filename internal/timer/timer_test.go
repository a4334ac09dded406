package timer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu   sync.Mutex
	seen []time.Duration
}

func (r *recorder) display(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, d)
}

func (r *recorder) values() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.seen...)
}

func TestCountdown_Expires(t *testing.T) {
	var r recorder
	c := Countdown{Tick: 5 * time.Millisecond, Display: r.display}

	out := c.Run(context.Background(), 30*time.Millisecond)
	assert.Equal(t, Expired, out)

	seen := r.values()
	if assert.NotEmpty(t, seen) {
		assert.Equal(t, 30*time.Millisecond, seen[0])
		assert.Equal(t, time.Duration(0), seen[len(seen)-1])
	}
}

func TestCountdown_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	out := Countdown{Tick: time.Millisecond}.Run(ctx, time.Minute)
	assert.Equal(t, Cancelled, out)
	assert.Equal(t, "cancelled", out.String())
}

func TestCountdown_ZeroDuration(t *testing.T) {
	var r recorder
	out := Run(context.Background(), 0, r.display)
	assert.Equal(t, Expired, out)
	assert.Equal(t, []time.Duration{0}, r.values())
}

func TestCountdown_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var r recorder
	start := time.Now()
	out := Countdown{Tick: time.Millisecond, Display: r.display}.Run(ctx, time.Hour)
	assert.Equal(t, Cancelled, out)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, []time.Duration{time.Hour}, r.values())
}
