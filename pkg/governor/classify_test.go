package governor

import (
	"errors"
	"strings"
	"testing"

	"github.com/psantana5/cli-kit/pkg/exitcode"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		cond       Condition
		wantCode   int
		wantReport bool
	}{
		// Benign set: never reported
		{"Normal return", Normal(), exitcode.Success, false},
		{"User interrupt", Interrupted(), exitcode.FailureButNotBug, false},
		{"Announced abort", Aborted(false, errors.New("bad input")), exitcode.FailureButNotBug, false},
		{"Silent abort", Aborted(true, errors.New("bad input")), exitcode.FailureButNotBug, false},

		// Bug class: reported, but presents as controlled failure
		{"Announced bug", BugFound(false, errors.New("defect")), exitcode.FailureButNotBug, true},
		{"Silent bug", BugFound(true, errors.New("defect")), exitcode.FailureButNotBug, true},

		// Expected external terminations
		{"SIGTERM", Signaled("SIGTERM"), 143, false},
		{"SIGHUP", Signaled("SIGHUP"), 129, false},
		{"SIGINT", Signaled("SIGINT"), 130, false},
		{"Bare TERM name", Signaled("TERM"), 143, false},

		// Unexpected signals are reported
		{"SIGUSR1", Signaled("SIGUSR1"), 138, true},
		{"SIGQUIT", Signaled("SIGQUIT"), 131, true},

		// Forced exits
		{"Forced exit 0", ForcedExit(0, nil), exitcode.Success, false},
		{"Forced exit sentinel", ForcedExit(exitcode.FailureButNotBug, nil), exitcode.Failure, false},
		{"Forced exit 42", ForcedExit(42, nil), 42, true},

		// Everything else
		{"Uncaught failure", Uncaught(errors.New("boom")), exitcode.Failure, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Classify(tt.cond)
			if d.Code != tt.wantCode {
				t.Errorf("Classify(%v) code = %d, want %d", tt.cond, d.Code, tt.wantCode)
			}
			if d.Report != tt.wantReport {
				t.Errorf("Classify(%v) report = %v, want %v", tt.cond, d.Report, tt.wantReport)
			}
			if tt.wantReport && d.Payload == nil {
				t.Errorf("Classify(%v) reportable disposition has nil payload", tt.cond)
			}
		})
	}
}

func TestClassifyAbnormalStatusMessage(t *testing.T) {
	d := Classify(ForcedExit(42, nil))
	if !d.Report {
		t.Fatal("Forced exit 42 should be reportable")
	}
	if !strings.Contains(d.Payload.Error(), "42") {
		t.Errorf("payload %q should mention status 42", d.Payload.Error())
	}
}

func TestClassifyAbnormalStatusPreservesChain(t *testing.T) {
	cause := &exitcode.ExitError{Code: 7}
	d := Classify(ForcedExit(7, cause))

	var exit *exitcode.ExitError
	if !errors.As(d.Payload, &exit) {
		t.Error("payload should still unwrap to the original exit error")
	}
}

func TestClassifySignalPayloadCarriesSignal(t *testing.T) {
	d := Classify(Signaled("SIGUSR2"))
	if !d.Report {
		t.Fatal("SIGUSR2 should be reportable")
	}
	if !strings.Contains(d.Payload.Error(), "SIGUSR2") {
		t.Errorf("payload %q should carry the signal name", d.Payload.Error())
	}
}
