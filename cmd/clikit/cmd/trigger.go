package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/psantana5/cli-kit/pkg/exitcode"
	"github.com/psantana5/cli-kit/pkg/governor"
	"github.com/psantana5/cli-kit/pkg/logging"
)

// Trigger commands: each one drives a single governed termination path so
// the exit code and report behavior can be observed from a shell.

var (
	abortSilent bool
	bugSilent   bool
)

var okCmd = &cobra.Command{
	Use:   "ok",
	Short: "Return normally (exit 0)",
	RunE: func(cmd *cobra.Command, args []string) error {
		logRun("ok")
		fmt.Println("all good")
		return nil
	},
}

var abortCmd = &cobra.Command{
	Use:   "abort [message]",
	Short: "Raise an expected failure (not a bug, never reported)",
	RunE: func(cmd *cobra.Command, args []string) error {
		logRun("abort")
		message := "aborted by request"
		if len(args) > 0 {
			message = args[0]
		}
		if abortSilent {
			return governor.AbortSilent(errors.New(message))
		}
		return governor.Abort(message)
	},
}

var bugCmd = &cobra.Command{
	Use:   "bug [message]",
	Short: "Raise a bug (reported, but exits as a controlled failure)",
	RunE: func(cmd *cobra.Command, args []string) error {
		logRun("bug")
		message := "simulated defect"
		if len(args) > 0 {
			message = args[0]
		}
		if bugSilent {
			return governor.BugSilent(errors.New(message))
		}
		return governor.Bugf("%s", message)
	},
}

var panicCmd = &cobra.Command{
	Use:   "panic [message]",
	Short: "Panic without any wrapping (uncaught failure path)",
	RunE: func(cmd *cobra.Command, args []string) error {
		logRun("panic")
		message := "unanticipated failure"
		if len(args) > 0 {
			message = args[0]
		}
		panic(errors.New(message))
	},
}

var exitCmd = &cobra.Command{
	Use:   "exit <code>",
	Short: "Force a specific exit status through the governor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logRun("exit")
		code, err := strconv.Atoi(args[0])
		if err != nil {
			return governor.Abortf("not a valid exit code: %q", args[0])
		}
		return exitcode.Exit(code)
	},
}

var fullDiskCmd = &cobra.Command{
	Use:   "full-disk",
	Short: "Simulate a disk-full failure",
	RunE: func(cmd *cobra.Command, args []string) error {
		logRun("full-disk")
		return fmt.Errorf("write state file: %w", syscall.ENOSPC)
	},
}

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Block until interrupted (signal handling target)",
	RunE: func(cmd *cobra.Command, args []string) error {
		logRun("sleep")
		<-cmd.Context().Done()
		return governor.ErrInterrupt
	},
}

func init() {
	abortCmd.Flags().BoolVar(&abortSilent, "silent", false, "suppress the user-facing message")
	bugCmd.Flags().BoolVar(&bugSilent, "silent", false, "suppress the user-facing message")

	rootCmd.AddCommand(okCmd, abortCmd, bugCmd, panicCmd, exitCmd, fullDiskCmd, sleepCmd)
}

// logRun appends one entry to the run log so failure reports have context.
func logRun(command string) {
	logger, err := logging.NewFileLogger(logging.DefaultPath("clikit"), logging.ParseLevel(logLevel), false)
	if err != nil {
		return
	}
	defer logger.Close()
	logger.Info("command start", map[string]interface{}{"command": command})
}
