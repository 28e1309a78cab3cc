package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates and configures the root command
func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "tzfmt",
		Short:         "Payroll timestamp localization",
		Long:          `Renders payroll timestamps in a display timezone using the fixed pattern yyyy-MMM-dd hh:mm:ss a z.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file (default: ./config/config.yaml or ./config.yaml)")

	rootCmd.AddCommand(newFormatCmd(&configPath))
	rootCmd.AddCommand(newZonesCmd(&configPath))
	rootCmd.AddCommand(newLocalesCmd(&configPath))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
