package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/psantana5/cli-kit/pkg/governor"
)

type codeRow struct {
	Condition string `json:"condition"`
	ExitCode  int    `json:"exit_code"`
	Reported  bool   `json:"reported"`
}

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Show the exit code policy for every termination condition",
	RunE:  runCodes,
}

func init() {
	rootCmd.AddCommand(codesCmd)
}

func runCodes(cmd *cobra.Command, args []string) error {
	conditions := []governor.Condition{
		governor.Normal(),
		governor.Interrupted(),
		governor.Aborted(false, nil),
		governor.Aborted(true, nil),
		governor.BugFound(false, nil),
		governor.BugFound(true, nil),
		governor.Signaled("SIGTERM"),
		governor.Signaled("SIGHUP"),
		governor.Signaled("SIGINT"),
		governor.Signaled("SIGUSR1"),
		governor.ForcedExit(0, nil),
		governor.ForcedExit(30, nil),
		governor.ForcedExit(42, nil),
		governor.Uncaught(fmt.Errorf("example failure")),
	}

	rows := make([]codeRow, 0, len(conditions))
	for _, cond := range conditions {
		d := governor.Classify(cond)
		rows = append(rows, codeRow{
			Condition: cond.String(),
			ExitCode:  d.Code,
			Reported:  d.Report,
		})
	}

	if IsJSONOutput() {
		output, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Condition", "Exit Code", "Reported")

	for _, row := range rows {
		reported := "no"
		if row.Reported {
			reported = "yes"
		}
		table.Append(row.Condition, fmt.Sprintf("%d", row.ExitCode), reported)
	}

	table.Render()
	return nil
}
