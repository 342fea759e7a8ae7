// Package governor is the top-level error-handling and process-exit layer
// for command-line tools. It wraps the tool's body, classifies every
// termination condition (normal return, abort, bug, signal, forced exit,
// uncaught failure), prints what the user should see, forwards bug-class
// conditions to a reporting sink, and returns the exit code the process
// must terminate with.
//
// The governor must never fail while handling a failure: broken output
// streams, unreadable logs, and panicking reporters are all swallowed.
package governor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/psantana5/cli-kit/pkg/exitcode"
	"github.com/psantana5/cli-kit/pkg/logs"
	"github.com/psantana5/cli-kit/pkg/report"
	"github.com/psantana5/cli-kit/pkg/termout"
)

// Config is the construction-time surface of the governor.
type Config struct {
	// LogPath is the run-log artifact read back when a report is submitted.
	LogPath string

	// ToolName appears in the disk-full remediation message.
	ToolName string

	// Reporter receives bug-class conditions. Mutually exclusive with
	// ReporterFactory; when both are nil, reports are discarded.
	Reporter report.Reporter

	// ReporterFactory defers reporter construction to the first report,
	// so the success path pays no initialization cost.
	ReporterFactory report.Factory

	// Stderr is where user-facing messages go. Defaults to os.Stderr.
	Stderr io.Writer
}

// Governor governs one process invocation. Create one per process; it
// holds no state worth persisting beyond the single stashed condition.
type Governor struct {
	cfg   Config
	out   *termout.Printer
	state State

	// stash hands a bug-class condition from the boundary to the
	// finalizer: written at most once, swapped out at most once.
	stash      atomic.Pointer[Condition]
	lastSignal atomic.Value // signal name, string

	finalizeOnce sync.Once
	finalCode    int

	reportOnce  sync.Once
	resolveOnce sync.Once
	reporter    report.Reporter

	readLogs func(string) string
	notify   func(chan<- os.Signal, ...os.Signal)
	stop     func(chan<- os.Signal)
}

// New creates a governor from cfg.
func New(cfg Config) *Governor {
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	return &Governor{
		cfg:      cfg,
		out:      termout.New(cfg.Stderr),
		state:    StateNotStarted,
		readLogs: logs.Read,
		notify:   signal.Notify,
		stop:     signal.Stop,
	}
}

// Run executes fn under the protective boundary and returns the exit code
// the caller must pass to os.Exit. The finalizer is installed before fn
// starts and runs exactly once no matter how fn ends.
func (g *Governor) Run(fn func(ctx context.Context) error) (code int) {
	g.advance(StateRunning)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	g.notify(sigCh, watchedSignals...)
	defer g.stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			g.lastSignal.Store(SignalName(sig))
			cancel()
		case <-ctx.Done():
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			g.advance(StatePropagating)
			code = g.finalize(conditionFromPanic(r))
		}
	}()

	code = g.finalize(g.boundary(ctx, fn))
	return code
}

// State returns the current run state.
func (g *Governor) State() State {
	return g.state
}

// HandleFailure classifies cond and performs the report side effect when
// the disposition calls for one. Safe to invoke more than once: at most
// one report is ever submitted per governor.
func (g *Governor) HandleFailure(cond Condition) Disposition {
	d := Classify(cond)
	if d.Report {
		g.submit(d.Payload)
	}
	return d
}

// boundary runs the callable exactly once and translates its outcome into
// a termination condition, printing whatever the user should see. Only
// controlled failures are consumed here; everything else propagates to the
// finalizer for classification.
func (g *Governor) boundary(ctx context.Context, fn func(ctx context.Context) error) Condition {
	err := fn(ctx)

	// A delivered signal wins over a cancellation-shaped return.
	if name, ok := g.signalReceived(); ok && isCancellation(err) {
		if strings.TrimPrefix(name, "SIG") == "INT" {
			g.out.Error("Interrupt")
			g.advance(StateAbortHandled)
			return Interrupted()
		}
		g.advance(StatePropagating)
		return Signaled(name)
	}

	if err == nil {
		g.advance(StateSucceeded)
		return Normal()
	}

	if errors.Is(err, ErrInterrupt) {
		g.out.Error("Interrupt")
		g.advance(StateAbortHandled)
		return Interrupted()
	}

	var flow *FlowError
	if errors.As(err, &flow) {
		if !flow.Silent {
			g.out.Error(flow.Error())
		}
		g.advance(StateAbortHandled)
		if flow.Bug {
			cond := BugFound(flow.Silent, err)
			g.stashCondition(cond)
			return cond
		}
		return Aborted(flow.Silent, err)
	}

	var exit *exitcode.ExitError
	if errors.As(err, &exit) {
		g.advance(StatePropagating)
		return ForcedExit(exit.Code, err)
	}

	if IsDiskFull(err) {
		name := g.cfg.ToolName
		if name == "" {
			name = "this tool"
		}
		g.out.Errorf("Your disk is full - %s requires free space to operate", name)
		g.advance(StateAbortHandled)
		return Aborted(false, err)
	}

	g.advance(StatePropagating)
	return Uncaught(err)
}

// finalize decides the disposition exactly once. A stashed bug-class
// condition takes precedence over whatever the caller observed.
func (g *Governor) finalize(cond Condition) int {
	g.finalizeOnce.Do(func() {
		if stashed := g.stash.Swap(nil); stashed != nil {
			cond = *stashed
		}
		g.advance(StateFinalized)

		d := Classify(cond)
		if d.Report {
			g.submit(d.Payload)
		}
		g.finalCode = d.Code
	})
	return g.finalCode
}

// submit performs the report side effect: read the run log (degrading to a
// placeholder), resolve the reporter lazily, submit once. A panicking
// reporter is contained here.
func (g *Governor) submit(payload error) {
	g.reportOnce.Do(func() {
		defer func() {
			_ = recover()
		}()
		g.resolveReporter().Submit(payload, g.readLogs(g.cfg.LogPath))
	})
}

func (g *Governor) resolveReporter() report.Reporter {
	g.resolveOnce.Do(func() {
		switch {
		case g.cfg.Reporter != nil:
			g.reporter = g.cfg.Reporter
		case g.cfg.ReporterFactory != nil:
			g.reporter = g.cfg.ReporterFactory()
		}
		if g.reporter == nil {
			g.reporter = report.Noop{}
		}
	})
	return g.reporter
}

// stashCondition records cond for the finalizer. First write wins.
func (g *Governor) stashCondition(cond Condition) {
	g.stash.CompareAndSwap(nil, &cond)
}

func (g *Governor) signalReceived() (string, bool) {
	if v := g.lastSignal.Load(); v != nil {
		return v.(string), true
	}
	return "", false
}

// advance moves the run state. A rejected transition means another path
// already claimed the outcome, so it is ignored.
func (g *Governor) advance(to State) {
	if err := ValidateTransition(g.state, to); err != nil {
		return
	}
	g.state = to
}

// isCancellation reports whether err is the shape a callable returns when
// its context was cancelled out from under it.
func isCancellation(err error) bool {
	return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, ErrInterrupt)
}

// conditionFromPanic classifies a recovered panic value. A forced exit
// travels through panics unchanged; everything else is an uncaught
// failure.
func conditionFromPanic(r interface{}) Condition {
	switch v := r.(type) {
	case *exitcode.ExitError:
		return ForcedExit(v.Code, v)
	case error:
		var exit *exitcode.ExitError
		if errors.As(v, &exit) {
			return ForcedExit(exit.Code, v)
		}
		return Uncaught(fmt.Errorf("panic: %w", v))
	default:
		return Uncaught(fmt.Errorf("panic: %v", v))
	}
}
