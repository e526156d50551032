package cmd

import (
	"github.com/pranav244872/resumecoach/config"
	"github.com/spf13/cobra"
)

const (
	app = "resumecoach"
)

var (
	// Used for flags.
	configDir string
	debug     bool
	jsonLogs  bool

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "resumecoach screens resumes against a role and coaches interview answers",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "directory containing app.env")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLogs, "json", "j", false, "json format for logging")
}

// loadConfig reads app.env from --config; the logging flags win over the file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("debug") {
		cfg.LogDebug = debug
	}
	if cmd.Flags().Changed("json") {
		cfg.LogJSON = jsonLogs
	}
	return cfg, nil
}
