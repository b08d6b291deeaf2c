package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"sscsrobotics/internal/dispatchlog"
)

func newLogCommand(ctx *commandContext) *cobra.Command {
	var (
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent dispatch attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := dispatchlog.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No dispatches recorded")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.CreatedAt.Local().Format(time.DateTime),
					strconv.FormatInt(entry.CaseID, 10),
					entry.Benefit,
					string(entry.Status),
					yesNo(entry.Scottish),
					strconv.Itoa(entry.Attachments),
					entry.Message,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Time", "Case", "Benefit", "Status", "Scottish", "Files", "Message"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print entries as JSON")

	return cmd
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
