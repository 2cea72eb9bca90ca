package app

import (
	"context"
	"time"

	"github.com/louisbranch/atrium/internal/platform/timeouts"
)

// RunSessionJanitor purges expired sessions every interval until ctx ends.
// A non-positive interval uses timeouts.SessionJanitorInterval.
func (s *Service) RunSessionJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = timeouts.SessionJanitorInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.purgeOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purgeOnce(ctx)
		}
	}
}

func (s *Service) purgeOnce(ctx context.Context) {
	deleted, err := s.PurgeExpiredSessions(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.ErrorContext(ctx, "purge expired sessions", "error", err)
		}
		return
	}
	if deleted > 0 {
		s.logger.InfoContext(ctx, "purged expired sessions", "count", deleted)
	}
}
