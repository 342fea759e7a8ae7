package governor

import (
	"fmt"

	"github.com/psantana5/cli-kit/pkg/exitcode"
)

// Disposition is the governed outcome for a termination condition: the
// process exit code and whether the condition is forwarded to the
// reporting sink. It is a pure function of the condition.
type Disposition struct {
	Code    int
	Report  bool
	Payload error
}

// Classify applies the disposition policy. Priority order, first match
// wins:
//
//	normal return            → exit 0, no report
//	user interrupt           → not-a-bug exit, no report
//	abort (any silence)      → not-a-bug exit, no report
//	bug (any silence)        → not-a-bug exit, report
//	signal TERM/HUP/INT      → 128+N exit, no report
//	any other signal         → 128+N exit, report the signal
//	forced exit 0            → exit 0, no report
//	forced exit sentinel     → exit 1, no report (sentinel never leaks)
//	forced exit N            → exit N, report abnormal status
//	anything else            → exit 1, report as-is
func Classify(c Condition) Disposition {
	switch c.Kind {
	case KindNormal:
		return Disposition{Code: exitcode.Success}

	case KindUserInterrupt:
		return Disposition{Code: exitcode.FailureButNotBug}

	case KindAbort:
		return Disposition{Code: exitcode.FailureButNotBug}

	case KindBug:
		return Disposition{Code: exitcode.FailureButNotBug, Report: true, Payload: payloadFor(c)}

	case KindSignal:
		if isBenignSignal(c.Signal) {
			return Disposition{Code: signalExitCode(c.Signal)}
		}
		return Disposition{
			Code:    signalExitCode(c.Signal),
			Report:  true,
			Payload: fmt.Errorf("terminated by signal %s", c.Signal),
		}

	case KindForcedExit:
		switch c.Code {
		case exitcode.Success:
			return Disposition{Code: exitcode.Success}
		case exitcode.FailureButNotBug:
			return Disposition{Code: exitcode.Failure}
		default:
			return Disposition{
				Code:    c.Code,
				Report:  true,
				Payload: abnormalStatus(c),
			}
		}

	default:
		return Disposition{Code: exitcode.Failure, Report: true, Payload: payloadFor(c)}
	}
}

// payloadFor extracts the reportable failure from a condition, inventing
// one only when the condition carries no error of its own.
func payloadFor(c Condition) error {
	if c.Err != nil {
		return c.Err
	}
	return fmt.Errorf("termination condition: %s", c)
}

// abnormalStatus wraps an unusual forced-exit status, preserving the
// original chain when one exists.
func abnormalStatus(c Condition) error {
	if c.Err != nil {
		return fmt.Errorf("abnormal termination status: %d: %w", c.Code, c.Err)
	}
	return fmt.Errorf("abnormal termination status: %d", c.Code)
}
