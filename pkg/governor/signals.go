package governor

import (
	"fmt"
	"os"
	"strings"
	"syscall"
)

// signalNames maps the signals the governor watches to their names.
var signalNames = map[syscall.Signal]string{
	syscall.SIGHUP:  "SIGHUP",
	syscall.SIGINT:  "SIGINT",
	syscall.SIGQUIT: "SIGQUIT",
	syscall.SIGABRT: "SIGABRT",
	syscall.SIGPIPE: "SIGPIPE",
	syscall.SIGTERM: "SIGTERM",
	syscall.SIGUSR1: "SIGUSR1",
	syscall.SIGUSR2: "SIGUSR2",
}

// watchedSignals are delivered to the governor instead of killing the
// process outright, so the finalizer can classify them.
var watchedSignals = []os.Signal{
	syscall.SIGHUP,
	syscall.SIGINT,
	syscall.SIGQUIT,
	syscall.SIGTERM,
	syscall.SIGUSR1,
	syscall.SIGUSR2,
}

// benignSignals are expected external terminations. Never reported.
var benignSignals = map[string]bool{
	"TERM": true,
	"HUP":  true,
	"INT":  true,
}

// SignalName returns the name for an OS signal.
func SignalName(sig os.Signal) string {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return sig.String()
	}
	if name, ok := signalNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SIG%d", int(s))
}

// isBenignSignal reports whether the named signal is in the expected
// external-termination set {TERM, HUP, INT}.
func isBenignSignal(name string) bool {
	return benignSignals[strings.TrimPrefix(name, "SIG")]
}

// signalExitCode returns the conventional 128+N status for a named signal,
// or the generic failure status when the number is unknown.
func signalExitCode(name string) int {
	trimmed := strings.TrimPrefix(name, "SIG")
	for sig, known := range signalNames {
		if strings.TrimPrefix(known, "SIG") == trimmed {
			return 128 + int(sig)
		}
	}
	return 1
}
