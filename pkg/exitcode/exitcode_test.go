package exitcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitMatchable(t *testing.T) {
	err := fmt.Errorf("tool body: %w", Exit(42))

	var exit *ExitError
	if !errors.As(err, &exit) {
		t.Fatal("Exit should be matchable through a wrap chain")
	}
	if exit.Code != 42 {
		t.Errorf("Code = %d, want 42", exit.Code)
	}
}

func TestExitErrorMessage(t *testing.T) {
	if got := Exit(30).Error(); got != "exit status 30" {
		t.Errorf("Error() = %q", got)
	}
}

func TestSentinelDistinct(t *testing.T) {
	if FailureButNotBug == Success || FailureButNotBug == Failure {
		t.Error("sentinel must be distinct from success and generic failure")
	}
}
