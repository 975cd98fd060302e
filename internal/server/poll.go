package server

import (
	"context"
	"time"
)

const pollPeriod = 5 * time.Second

// pollLoop rebuilds the graph on a fixed cadence, catching anything the
// filesystem watcher misses: packed refs, gc, repositories on mounts
// that do not deliver change events.
func (s *Server) pollLoop(ctx context.Context) {
	ticker := time.NewTicker(pollPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(false)
		}
	}
}
