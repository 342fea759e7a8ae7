package report

import (
	"context"
	"time"

	"github.com/psantana5/cli-kit/pkg/retry"
)

// Retriable is a reporter transport whose submission can fail transiently
// (network sink, spooler). TrySubmit returns an error instead of swallowing
// it so the durable wrapper can decide to retry.
type Retriable interface {
	TrySubmit(payload error, logs string) error
}

type durableReporter struct {
	transport Retriable
	cfg       retry.Config
	timeout   time.Duration
}

// Durable adapts a Retriable transport into a Reporter that retries
// transient failures with backoff and swallows the final error. Reporting
// is best effort: a dead sink must never break the exit path.
func Durable(transport Retriable, cfg retry.Config) Reporter {
	return &durableReporter{transport: transport, cfg: cfg, timeout: 30 * time.Second}
}

// Submit implements Reporter.
func (d *durableReporter) Submit(payload error, logs string) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	_ = d.cfg.Do(ctx, func() error {
		return d.transport.TrySubmit(payload, logs)
	})
}
