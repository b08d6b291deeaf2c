package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sscsrobotics/internal/airlookup"
)

func newLookupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <postcode>...",
		Short: "Resolve postcodes to their hearing venues",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			table, err := airlookup.Load(cfg)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(args))
			for _, postcode := range args {
				venues, err := table.Lookup(postcode)
				if err != nil {
					return fmt.Errorf("lookup %q: %w", postcode, err)
				}
				rows = append(rows, []string{postcode, venues.PIPVenue, venues.ESAVenue})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Postcode", "PIP Venue", "ESA Venue"},
				rows,
				nil,
			))
			return nil
		},
	}
}
