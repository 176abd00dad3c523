package image

import (
	"context"
	"time"

	"enhancer/internal/domain"
)

// Poll waits interval, then invokes fn, up to maxAttempts times. It stops
// early when fn reports done or fails, classifies cancellation as a
// timeout-kind error carrying the context error, and returns a timeout
// error once the attempts are spent. The timeout is a distinct kind so
// callers can choose to retry the whole job.
func Poll(ctx context.Context, interval time.Duration, maxAttempts int, fn func(context.Context) (bool, error)) error {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return domain.NewCanceled(ctx.Err())
		case <-timer.C:
		}
		done, err := fn(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		timer.Reset(interval)
	}
	return domain.NewTimeout("job still running after %d polls", maxAttempts)
}
