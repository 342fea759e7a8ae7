package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outputFormat string
	cfgFile      string
	logLevel     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "clikit",
	Short: "Exercise the cli-kit exit governor",
	Long: `clikit runs each termination path the exit governor handles: normal
return, announced and silent aborts, bugs, forced exits, panics, interrupts
and disk-full conditions. Use it to observe exit codes and report behavior.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command under the given context. Errors are
// returned to the governor rather than printed here.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.clikit/config)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "output format: table or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		configDir := filepath.Join(home, ".clikit")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	viper.BindEnv("log_level", "CLIKIT_LOG_LEVEL")
	viper.BindEnv("output", "CLIKIT_OUTPUT")

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetString("output") != "" && outputFormat == "table" {
			outputFormat = viper.GetString("output")
		}
		if viper.GetString("log_level") != "" && logLevel == "info" {
			logLevel = viper.GetString("log_level")
		}
	}
}

// IsJSONOutput returns true if JSON output is requested
func IsJSONOutput() bool {
	return outputFormat == "json"
}
