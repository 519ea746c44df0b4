package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/modelshape/modelshape/pkg/logging"
)

// errAlreadyReported signals a failure whose diagnostic was already
// rendered; main exits non-zero without printing again.
var errAlreadyReported = errors.New("already reported")

var (
	verbosity int
	cfgFile   string
	plainOut  bool

	rootCmd = &cobra.Command{
		Use:   "modelshape",
		Short: "Validate ML model storage layouts",
		Long: `modelshape checks that a model's files, as laid out under a storage
prefix (local directory or S3 bucket), match the directory shape its
serving runtime expects, and reports precise per-path errors when they
don't.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: modelshape.toml in cwd or XDG config dir)")
	rootCmd.PersistentFlags().BoolVar(&plainOut, "plain", false, "Plain text output without styling")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("modelshape version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}
