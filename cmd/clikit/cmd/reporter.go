package cmd

import (
	"fmt"
	"os"

	"github.com/psantana5/cli-kit/pkg/report"
	"github.com/psantana5/cli-kit/pkg/sysinfo"
)

// consoleReporter prints what a real backend would receive. It stands in
// for an issue-tracker sink so report behavior is visible from a shell.
type consoleReporter struct{}

// NewReporter builds the demo reporter. Passed to the governor as a
// factory so successful runs never pay for host probing.
func NewReporter() report.Reporter {
	return consoleReporter{}
}

// Submit implements report.Reporter.
func (consoleReporter) Submit(payload error, logText string) {
	fmt.Fprintln(os.Stderr, "--- failure report ---")
	fmt.Fprintf(os.Stderr, "payload: %v\n", payload)
	fmt.Fprintln(os.Stderr, sysinfo.Collect().String())
	fmt.Fprintln(os.Stderr, "--- last log lines ---")
	fmt.Fprint(os.Stderr, tailOf(logText))
	fmt.Fprintln(os.Stderr, "----------------------")
}

// tailOf keeps report output short on long-running log files.
func tailOf(logText string) string {
	const maxChars = 2000
	if len(logText) <= maxChars {
		return logText
	}
	return "..." + logText[len(logText)-maxChars:]
}
