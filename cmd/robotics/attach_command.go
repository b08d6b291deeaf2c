package main

import (
	"errors"

	"github.com/spf13/cobra"

	"sscsrobotics/internal/ccd"
)

func newAttachCommand(ctx *commandContext) *cobra.Command {
	var (
		caseFile string
		ccdID    int64
		postcode string
	)

	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Rebuild a case's payload and write it back to the case record",
		Long: `Attach rebuilds and validates the robotics payload for a case, uploads it
to the document store, and updates the case record to reference the stored
document. Nothing is emailed. Use it to repair a case whose dispatch
succeeded but whose write-back step failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.CCD.BaseURL == "" || cfg.DocStore.BaseURL == "" {
				return errors.New("attach requires ccd.base_url and docstore.base_url to be configured")
			}

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

			attachToCase(cmd.Context(), ctx, cfg, payload, caseData, ccdID)
			return nil
		},
	}

	cmd.Flags().StringVar(&caseFile, "case", "", "Path to the case record JSON file")
	cmd.Flags().Int64Var(&ccdID, "ccd-id", 0, "CCD case identifier")
	cmd.Flags().StringVar(&postcode, "postcode", "", "Postcode for venue routing (default: appellant address)")
	_ = cmd.MarkFlagRequired("case")
	_ = cmd.MarkFlagRequired("ccd-id")

	return cmd
}
