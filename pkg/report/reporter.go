// Package report defines the failure reporting capability consumed by the
// governor. The actual backend (issue tracker, crash sink) is supplied by
// the embedding tool; this package ships the interface, a no-op default,
// lazy resolution, and a retrying wrapper for flaky transports.
package report

import (
	"sync"
)

// Reporter receives classified failures together with the captured run log.
// Submit must not panic; the governor additionally guards against
// implementations that do.
type Reporter interface {
	Submit(payload error, logs string)
}

// Noop is the default reporter. It discards everything.
type Noop struct{}

// Submit implements Reporter.
func (Noop) Submit(error, string) {}

// Factory builds a Reporter on first use. Construction can be expensive
// (credentials, network client), so the success path never invokes it.
type Factory func() Reporter

type lazyReporter struct {
	once    sync.Once
	factory Factory
	r       Reporter
}

// Lazy wraps a factory so the reporter is constructed once, on the first
// Submit, and memoized for any later calls.
func Lazy(factory Factory) Reporter {
	return &lazyReporter{factory: factory}
}

func (l *lazyReporter) Submit(payload error, logs string) {
	l.once.Do(func() {
		l.r = l.factory()
		if l.r == nil {
			l.r = Noop{}
		}
	})
	l.r.Submit(payload, logs)
}
