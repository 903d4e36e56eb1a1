package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/atdf2dat/pkg/atdf"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "atdf2dat <file.atdf>...",
	Short: "Generate the PDI device table from ATDF device files",
	Long: `Read Atmel/Microchip ATDF device description files and write one
devices.dat table entry to stdout for every PDI interface they declare.
Files without a PDI interface produce no output. Processing stops at the
first file that cannot be parsed or lacks a required field.

Examples:
  atdf2dat ATxmega128A3U.atdf > devices.dat        # Single device
  atdf2dat atdf/ATxmega*.atdf > devices.dat        # Whole family
  atdf2dat info devices.dat xmega128a3u            # Inspect a generated table`,
	Version:           "1.0.0",
	Args:              cobra.MinimumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runGenerate,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output on stderr")
}

// initLogger builds the stderr logger. Generated output goes to stdout, so
// nothing is logged there.
func initLogger(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen := atdf.NewGenerator(cmd.OutOrStdout(), logger)
	_, err := gen.ProcessAll(args)
	return err
}
