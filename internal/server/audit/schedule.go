package audit

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/robfig/cron/v3"
)

// cronLogger routes cron's own messages into the project logger.
type cronLogger struct {
	log logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(context.Background(), msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(context.Background(), msg, append(keysAndValues, "error", err)...)
}

// Schedule runs the auditor on spec (standard five-field cron or a
// descriptor such as "@every 5m") until ctx is cancelled. Overlapping runs
// are skipped. Run errors are logged by the auditor and do not stop the
// schedule.
func (a *Auditor) Schedule(ctx context.Context, spec string) error {
	l := cronLogger{log: a.log}
	c := cron.New(
		cron.WithLogger(l),
		cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l)),
	)

	if _, err := c.AddFunc(spec, func() {
		_, _ = a.Run(ctx)
	}); err != nil {
		return fmt.Errorf("audit schedule %q: %w", spec, err)
	}

	a.log.Info(ctx, "audit scheduled", "schedule", spec)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
