package daytimer

import (
	"context"
	"time"
)

// Run starts t and advances it once per value received on ticks until the
// session completes or ctx is cancelled. observe, if non-nil, sees every
// tick result. On cancellation the timer is paused and ctx.Err() returned.
func Run(ctx context.Context, t *Timer, ticks <-chan time.Time, observe func(TickResult)) error {
	if t.Status() == Completed {
		return nil
	}
	t.Start()
	for {
		select {
		case <-ctx.Done():
			t.Pause()
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				t.Pause()
				return nil
			}
			res := t.Tick()
			if observe != nil {
				observe(res)
			}
			if res.Completed {
				return nil
			}
		}
	}
}
