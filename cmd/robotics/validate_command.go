package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sscsrobotics/internal/ccd"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var (
		caseFile string
		ccdID    int64
		postcode string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Build and validate a case's payload without sending it",
		RunE: func(cmd *cobra.Command, args []string) error {
			caseData, err := ccd.ReadCaseFile(caseFile)
			if err != nil {
				return err
			}
			if postcode == "" {
				postcode = appellantPostcode(caseData)
			}

			service, err := ctx.dispatchService()
			if err != nil {
				return err
			}
			payload, err := buildPayload(service, caseData, ccdID, postcode)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, payload)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Payload valid (%d fields)\n", len(payload))
			return nil
		},
	}

	cmd.Flags().StringVar(&caseFile, "case", "", "Path to the case record JSON file")
	cmd.Flags().Int64Var(&ccdID, "ccd-id", 0, "CCD case identifier")
	cmd.Flags().StringVar(&postcode, "postcode", "", "Postcode for venue routing (default: appellant address)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the payload as JSON")
	_ = cmd.MarkFlagRequired("case")

	return cmd
}
