package governor

import "fmt"

// Kind tags how execution ended. Exactly one kind is active per run.
type Kind int

const (
	// KindNormal is a voluntary return from the callable.
	KindNormal Kind = iota
	// KindUserInterrupt is a Ctrl-C style interruption.
	KindUserInterrupt
	// KindAbort is an expected, controlled failure (non-bug).
	KindAbort
	// KindBug is a controlled failure that must reach the reporting sink.
	KindBug
	// KindSignal is termination driven by an OS signal.
	KindSignal
	// KindForcedExit is an explicit demand for a specific exit status.
	KindForcedExit
	// KindUncaught is any failure nothing else claimed.
	KindUncaught
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindUserInterrupt:
		return "user_interrupt"
	case KindAbort:
		return "abort"
	case KindBug:
		return "bug"
	case KindSignal:
		return "signal"
	case KindForcedExit:
		return "forced_exit"
	case KindUncaught:
		return "uncaught"
	default:
		return "unknown"
	}
}

// Condition records a termination condition. Produced once by the boundary
// or the finalizer, consumed once by classification, never mutated.
type Condition struct {
	Kind   Kind
	Silent bool   // abort/bug only
	Signal string // signal name, KindSignal only
	Code   int    // requested status, KindForcedExit only
	Err    error  // originating failure, when one exists
}

// Normal is the condition for a voluntary return.
func Normal() Condition {
	return Condition{Kind: KindNormal}
}

// Interrupted is the condition for a user interrupt.
func Interrupted() Condition {
	return Condition{Kind: KindUserInterrupt}
}

// Aborted wraps an expected failure.
func Aborted(silent bool, err error) Condition {
	return Condition{Kind: KindAbort, Silent: silent, Err: err}
}

// BugFound wraps a defect destined for the reporting sink.
func BugFound(silent bool, err error) Condition {
	return Condition{Kind: KindBug, Silent: silent, Err: err}
}

// Signaled wraps termination by the named OS signal.
func Signaled(name string) Condition {
	return Condition{Kind: KindSignal, Signal: name}
}

// ForcedExit wraps a demand for a specific exit status.
func ForcedExit(code int, err error) Condition {
	return Condition{Kind: KindForcedExit, Code: code, Err: err}
}

// Uncaught wraps a failure nothing else claimed.
func Uncaught(err error) Condition {
	return Condition{Kind: KindUncaught, Err: err}
}

func (c Condition) String() string {
	switch c.Kind {
	case KindSignal:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Signal)
	case KindForcedExit:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Code)
	default:
		return c.Kind.String()
	}
}
