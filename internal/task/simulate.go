// Package task provides the step drivers the CLI tracks with a progress
// indicator: a paced simulation loop and a two-pass file walker.
package task

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Simulate runs a task of steps units, invoking fn with the completed step
// count after each unit. When perSecond is positive the loop is paced with a
// rate limiter; otherwise it runs as fast as fn allows. The loop stops early
// when ctx is cancelled or fn returns an error.
func Simulate(ctx context.Context, steps int, perSecond float64, fn func(current int) error) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be a positive integer, got %d", steps)
	}

	var limiter *rate.Limiter
	if perSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}

	for current := 1; current <= steps; current++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return fmt.Errorf("simulation cancelled: %w", err)
			}
		} else if err := ctx.Err(); err != nil {
			return fmt.Errorf("simulation cancelled: %w", err)
		}

		if err := fn(current); err != nil {
			return err
		}
	}

	return nil
}
