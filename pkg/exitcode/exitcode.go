// Package exitcode defines the process exit statuses used by governed tools.
// These constants allow scripts wrapping a tool to check exit codes
// symbolically rather than using magic numbers.
package exitcode

import "fmt"

const (
	// Success indicates the tool completed normally.
	Success = 0

	// Failure is the conventional generic failure status.
	Failure = 1

	// FailureButNotBug marks an expected, controlled failure (bad input,
	// failed validation) as opposed to a defect. The value is internal:
	// the governor translates it to Failure before the shell sees it.
	FailureButNotBug = 30
)

// ExitError demands that the process terminate with a specific status.
// Tool code returns it (or passes it to the governor) instead of calling
// os.Exit directly, so the governor keeps control of the exit path.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Exit returns an error that makes the governor terminate with code.
func Exit(code int) error {
	return &ExitError{Code: code}
}
