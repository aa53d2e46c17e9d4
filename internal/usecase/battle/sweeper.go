package usecase_battle

import (
	"context"
	"time"
)

// StartSweeper runs a background loop that drops rooms older than
// maxAge. It holds no per-room locks, so a busy room never stalls the
// sweep and vice versa. Stops when ctx is cancelled.
func (c *Coordinator) StartSweeper(ctx context.Context, interval, maxAge time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := c.registry.Sweep(maxAge); removed > 0 {
					c.logger.Info("swept stale rooms",
						"removed", removed,
						"max_age", maxAge.String())
				}
			}
		}
	}()
}
