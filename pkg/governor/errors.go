package governor

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// ErrInterrupt is returned by a callable that observed Ctrl-C and wants
// the standard interrupt handling: a fixed message, no report.
var ErrInterrupt = errors.New("interrupt")

// FlowError is a controlled abort raised by tool code. Two independent
// flags describe it: Bug decides whether the condition reaches the
// reporting sink, Silent suppresses the user-facing message.
type FlowError struct {
	Message string
	Bug     bool
	Silent  bool
	Err     error
}

func (e *FlowError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "aborted"
}

// Unwrap exposes the cause for errors.Is/As chains.
func (e *FlowError) Unwrap() error {
	return e.Err
}

// Abort signals an expected failure (bad input, failed validation).
// The message is shown to the user; nothing is reported.
func Abort(message string) error {
	return &FlowError{Message: message}
}

// Abortf is Abort with formatting.
func Abortf(format string, args ...interface{}) error {
	return &FlowError{Message: fmt.Sprintf(format, args...)}
}

// AbortSilent signals an expected failure without any output, for cases
// where the tool already told the user what went wrong.
func AbortSilent(err error) error {
	return &FlowError{Silent: true, Err: err}
}

// Bug signals a defect. The message is shown like an abort, but the
// condition is also forwarded to the reporting sink.
func Bug(err error) error {
	return &FlowError{Bug: true, Err: err}
}

// Bugf is Bug with formatting.
func Bugf(format string, args ...interface{}) error {
	return &FlowError{Bug: true, Message: fmt.Sprintf(format, args...)}
}

// BugSilent signals a defect that is reported but not announced.
func BugSilent(err error) error {
	return &FlowError{Bug: true, Silent: true, Err: err}
}

// diskFullPatterns match resource-exhaustion messages from platforms where
// the errno does not survive wrapping.
var diskFullPatterns = []string{
	"no space left on device",
	"disk quota exceeded",
	"not enough space",
}

// IsDiskFull reports whether err is the platform's "no space left on
// device" condition.
func IsDiskFull(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ENOSPC) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range diskFullPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
