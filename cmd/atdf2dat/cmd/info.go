package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/atdf2dat/pkg/devtable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var infoCmd = &cobra.Command{
	Use:   "info <devices.dat> [name|signature]...",
	Short: "Show devices from a generated table",
	Long: `Read a generated devices.dat table. Without selectors, list every
device with its signature. Otherwise describe each selected device; a
selector that parses as a number is a signature, anything else a device
name (case-insensitive).

Examples:
  atdf2dat info devices.dat
  atdf2dat info devices.dat xmega128a3u
  atdf2dat info devices.dat 0x1e9742`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	out := cmd.OutOrStdout()

	devices, err := devtable.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read table: %w", err)
	}
	table := devtable.NewTable(devices)
	logger.Debug("loaded device table",
		zap.String("path", filename),
		zap.Int("devices", table.Len()))

	if len(args) == 1 {
		fmt.Fprintf(out, "%d device(s) in %s\n", table.Len(), filename)
		for _, d := range table.Devices() {
			fmt.Fprintf(out, "  %-16s 0x%06x\n", d.Name, d.Signature)
		}
		return nil
	}

	for i, sel := range args[1:] {
		dev, ok := lookup(table, sel)
		if !ok {
			return fmt.Errorf("device %q not found in %s", sel, filename)
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := devtable.Describe(out, dev); err != nil {
			return err
		}
	}
	return nil
}

// lookup resolves a selector as a signature if it is numeric, otherwise as
// a device name.
func lookup(table *devtable.Table, sel string) (devtable.Device, bool) {
	if sig, err := devtable.ParseLiteral32(sel); err == nil {
		return table.FindBySignature(sig)
	}
	return table.Find(sel)
}
