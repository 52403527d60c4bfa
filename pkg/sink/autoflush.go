package sink

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/framesink/pkg/common/errors"
)

// AutoFlushConfig holds configuration for an AutoFlusher.
type AutoFlushConfig struct {
	// Schedule is a cron expression controlling when the sink is flushed.
	// Examples:
	//   "@every 1s"   - every second
	//   "@every 10s"  - every ten seconds
	//   "*/5 * * * *" - every five minutes
	// One second is the finest granularity the scheduler supports.
	Schedule string

	// FlushTimeout bounds each scheduled flush. Default: 30 seconds.
	FlushTimeout time.Duration

	// OnError is called when a scheduled flush fails.
	OnError func(error)
}

// DefaultAutoFlushConfig returns a default configuration.
func DefaultAutoFlushConfig() AutoFlushConfig {
	return AutoFlushConfig{
		Schedule:     "@every 1s",
		FlushTimeout: 30 * time.Second,
	}
}

// AutoFlusher flushes a sink on a cron schedule, bounding how long
// submitted frames sit in the accumulation buffer. The wrapped sink must
// be safe for concurrent use; FramedWriter and MetricsSink are.
type AutoFlusher struct {
	cron *cron.Cron
}

// NewAutoFlusher schedules periodic flushes of s. The schedule is
// validated up front; Start begins flushing.
func NewAutoFlusher[T any](s Sink[T], config AutoFlushConfig) (*AutoFlusher, error) {
	if config.Schedule == "" {
		return nil, errors.NewValidationError("sink", "Schedule", config.Schedule, "cannot be empty").
			WithHint("use a cron expression such as @every 1s")
	}
	timeout := config.FlushTimeout
	if timeout <= 0 {
		timeout = DefaultAutoFlushConfig().FlushTimeout
	}

	c := cron.New()
	_, err := c.AddFunc(config.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := s.Flush(ctx); err != nil && config.OnError != nil {
			config.OnError(err)
		}
	})
	if err != nil {
		return nil, errors.NewValidationError("sink", "Schedule", config.Schedule, err.Error())
	}

	return &AutoFlusher{cron: c}, nil
}

// Start begins the flush schedule.
func (af *AutoFlusher) Start() {
	af.cron.Start()
}

// Stop halts the schedule and waits for an in-flight flush to finish.
func (af *AutoFlusher) Stop() {
	ctx := af.cron.Stop()
	<-ctx.Done()
}
