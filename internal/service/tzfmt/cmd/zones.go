package main

import (
	"encoding/json"
	"fmt"

	"payroll/internal/service/tzfmt"

	"github.com/spf13/cobra"
)

// newZonesCmd creates the zones command
func newZonesCmd(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "zones <zone...>",
		Short: "Validate IANA zone names and show their current abbreviation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := tzfmt.CheckOutput(output)
			if err != nil {
				return err
			}

			return withRunner(*configPath, func(runner *tzfmt.Runner) error {
				infos, err := runner.Zones(args)
				if err != nil {
					return err
				}

				if format == tzfmt.OutputJSON {
					encoder := json.NewEncoder(cmd.OutOrStdout())
					encoder.SetIndent("", "  ")
					return encoder.Encode(infos)
				}

				for _, info := range infos {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", info.Name, info.Abbreviation, info.Offset)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", tzfmt.OutputText, "output format: text or json")

	return cmd
}

// newLocalesCmd creates the locales command
func newLocalesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the locales available for month names",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(*configPath, func(runner *tzfmt.Runner) error {
				for _, locale := range runner.Locales() {
					fmt.Fprintln(cmd.OutOrStdout(), locale)
				}
				return nil
			})
		},
	}
}
