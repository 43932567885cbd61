package actions

import (
	"context"
	"time"

	"github.com/footprint-tools/clik/args"
	"github.com/footprint-tools/clik/dispatchers"
)

// Sleep waits for the given duration, or until the context is done.
func Sleep(s *Session, v args.Values) dispatchers.Task {
	d := v.Duration("duration")
	return func(ctx context.Context) error {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			s.printf("%s %s\n", s.styler().Muted("slept"), d)
			return nil
		}
	}
}
