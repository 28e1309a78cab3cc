package main

import (
	"bufio"
	"fmt"

	"payroll/internal/service/tzfmt"

	"github.com/spf13/cobra"
)

// newFormatCmd creates the format command
func newFormatCmd(configPath *string) *cobra.Command {
	var req tzfmt.Request

	cmd := &cobra.Command{
		Use:   "format [timestamp...]",
		Short: "Render RFC 3339 timestamps in the display zone",
		Long: `Render RFC 3339 timestamps in the display zone.

Timestamps are read from the arguments, or one per line from stdin when no
arguments are given. An empty line or "null" is an absent timestamp: text
output skips it and JSON output omits the formatted field.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					inputs = append(inputs, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}
			req.Inputs = inputs

			return withRunner(*configPath, func(runner *tzfmt.Runner) error {
				return runner.Format(cmd.Context(), req, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVarP(&req.Zone, "zone", "z", "", "IANA display zone (default: localization.default_zone)")
	cmd.Flags().StringVarP(&req.Locale, "locale", "l", "", "locale for month names, e.g. fr or de-AT")
	cmd.Flags().StringVarP(&req.Output, "output", "o", tzfmt.OutputText, "output format: text or json")

	return cmd
}
