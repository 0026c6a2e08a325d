package feed

import (
	"context"
	"log"
)

// Feed is one external source adapter. Sync is expected to be idempotent.
type Feed interface {
	Name() string
	Sync(ctx context.Context, pages int, workers int) error
}

type Syncer struct {
	feeds  []Feed
	logger *log.Logger
}

func NewSyncer(logger *log.Logger, feeds ...Feed) *Syncer {
	if logger == nil {
		logger = log.Default()
	}
	return &Syncer{feeds: feeds, logger: logger}
}

// SyncAll runs every feed in sequence. One failing feed does not stop the
// rest; the first error is returned after all feeds ran.
func (s *Syncer) SyncAll(ctx context.Context, pages int, workers int) error {
	if s == nil {
		return nil
	}
	var firstErr error
	for _, f := range s.feeds {
		if f == nil {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Printf("syncer feed=%s status=started", f.Name())
		if err := f.Sync(ctx, pages, workers); err != nil {
			s.logger.Printf("syncer feed=%s status=error err=%v", f.Name(), err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.logger.Printf("syncer feed=%s status=done", f.Name())
	}
	return firstErr
}
