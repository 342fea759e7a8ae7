// Package logs reads back the captured run log so it can accompany a
// failure report. Reading is best effort: a missing or unreadable log
// degrades to a placeholder string, never an error. The governor calls
// this at finalization time, when the log file is fully flushed.
package logs

import (
	"fmt"
	"os"
	"strings"
)

// Read returns the contents of the log artifact at path. Any failure is
// substituted with a non-empty diagnostic placeholder.
func Read(path string) string {
	if path == "" {
		return "(no log file configured)"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("(log unavailable: %v)", err)
	}
	if len(data) == 0 {
		return "(log empty)"
	}
	return string(data)
}

// Tail returns the last n lines of the log artifact, with the same
// degradation behavior as Read.
func Tail(path string, n int) string {
	text := Read(path)
	if n <= 0 {
		return text
	}

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) <= n {
		return text
	}
	return strings.Join(lines[len(lines)-n:], "\n") + "\n"
}
