package flappy

import (
	"context"
	"errors"
	"time"
)

// Run drives the engine from a frame source until ctx is done, the frame
// source closes or the engine stops. draw, when set, is called after every
// frame with the fresh view. Run returns the fail-stop error if there was
// one.
func Run(ctx context.Context, e *Engine, frames <-chan time.Time, draw func(View)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-frames:
			if !ok {
				return nil
			}
			if _, err := e.Tick(now); err != nil {
				if errors.Is(err, ErrStopped) && e.Err() == nil {
					return nil
				}
				return err
			}
			if draw != nil {
				draw(e.View(now))
			}
		}
	}
}

// FixedFrames emits n frame timestamps spaced by step, starting one step
// after start, as fast as the receiver takes them. n < 0 means unbounded.
// The channel closes after the last frame or when ctx is done.
func FixedFrames(ctx context.Context, start time.Time, step time.Duration, n int) <-chan time.Time {
	ch := make(chan time.Time)
	go func() {
		defer close(ch)
		now := start
		for i := 0; n < 0 || i < n; i++ {
			now = now.Add(step)
			select {
			case ch <- now:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// Ticker emits wall-clock frame timestamps at the given rate until ctx is
// done.
func Ticker(ctx context.Context, fps int) <-chan time.Time {
	ch := make(chan time.Time)
	go func() {
		defer close(ch)
		t := time.NewTicker(time.Second / time.Duration(fps))
		defer t.Stop()
		for {
			select {
			case now := <-t.C:
				select {
				case ch <- now:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
