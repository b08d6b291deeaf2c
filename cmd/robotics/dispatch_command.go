package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sscsrobotics/internal/ccd"
	"sscsrobotics/internal/config"
	"sscsrobotics/internal/dispatchlog"
	"sscsrobotics/internal/docstore"
	"sscsrobotics/internal/idam"
	"sscsrobotics/internal/robotics"
)

func newDispatchCommand(ctx *commandContext) *cobra.Command {
	var (
		caseFile      string
		ccdID         int64
		postcode      string
		pdfPath       string
		evidencePaths []string
		skipAttach    bool
		jsonOut       bool
	)

	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Map a case, email it to the RPA mailbox, and record the outcome",
		Long: `Dispatch runs the full pipeline for one case: resolve the hearing venue,
build and validate the robotics payload, email it with its attachments, and
record the attempt in the dispatch log. After a successful send the payload
is uploaded to the document store and referenced from the case record unless
--skip-attach is set or CCD is unconfigured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			caseData, err := ccd.ReadCaseFile(caseFile)
			if err != nil {
				return err
			}
			if postcode == "" {
				postcode = appellantPostcode(caseData)
			}

			pdf, err := readOptionalFile(pdfPath)
			if err != nil {
				return err
			}
			evidence, err := readEvidenceFiles(evidencePaths)
			if err != nil {
				return err
			}

			release, err := ctx.acquireDispatchLock()
			if err != nil {
				return err
			}
			defer release()

			service, err := ctx.dispatchService()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := dispatchlog.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runCtx := cmd.Context()
			result, dispatchErr := service.Dispatch(runCtx, caseData, ccdID, postcode, pdf, evidence)

			entry := dispatchlog.Entry{
				CaseID:   ccdID,
				Benefit:  benefitCode(caseData),
				Postcode: postcode,
			}
			if dispatchErr != nil {
				entry.Status = robotics.FailureStatus(dispatchErr)
				entry.Message = dispatchErr.Error()
			} else {
				entry.Status = dispatchlog.StatusSent
				entry.Scottish = result.Scottish
				entry.Attachments = result.Attachments
			}
			if recordErr := store.Record(runCtx, &entry); recordErr != nil {
				if dispatchErr != nil {
					return errors.Join(dispatchErr, recordErr)
				}
				return recordErr
			}
			if dispatchErr != nil {
				return dispatchErr
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dispatched case %d to %s (%d attachments)\n", ccdID, result.VenueName, result.Attachments)
			if result.Scottish {
				fmt.Fprintln(out, "Routed to the Scottish mailbox")
			}

			if !skipAttach {
				attachToCase(runCtx, ctx, cfg, result.Payload, caseData, ccdID)
			}

			if jsonOut {
				return writeJSON(cmd, result.Payload)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&caseFile, "case", "", "Path to the case record JSON file")
	cmd.Flags().Int64Var(&ccdID, "ccd-id", 0, "CCD case identifier")
	cmd.Flags().StringVar(&postcode, "postcode", "", "Postcode for venue routing (default: appellant address)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Rendered case document to attach")
	cmd.Flags().StringArrayVar(&evidencePaths, "evidence", nil, "Evidence file to attach (repeatable)")
	cmd.Flags().BoolVar(&skipAttach, "skip-attach", false, "Do not write the payload back to the case record")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the dispatched payload as JSON")
	_ = cmd.MarkFlagRequired("case")
	_ = cmd.MarkFlagRequired("ccd-id")

	return cmd
}

// attachToCase performs the best-effort case record write-back. Failures are
// logged, never returned: the dispatch already succeeded.
func attachToCase(runCtx context.Context, ctx *commandContext, cfg *config.Config, payload robotics.Payload, caseData *ccd.SscsCaseData, ccdID int64) {
	logger, err := ctx.ensureLogger()
	if err != nil {
		return
	}
	service := robotics.NewUploadService(docstore.NewClient(cfg), ccd.NewClient(cfg), logger)
	details := &ccd.SscsCaseDetails{ID: &ccdID, Data: caseData}
	service.AttachPayloadToCase(runCtx, payload, caseData, details, idam.FromConfig(cfg))
}

func appellantPostcode(caseData *ccd.SscsCaseData) string {
	if caseData == nil || caseData.Appeal == nil || caseData.Appeal.Appellant == nil || caseData.Appeal.Appellant.Address == nil {
		return ""
	}
	return caseData.Appeal.Appellant.Address.Postcode
}

func benefitCode(caseData *ccd.SscsCaseData) string {
	if caseData == nil || caseData.Appeal == nil || caseData.Appeal.BenefitType == nil {
		return ""
	}
	return caseData.Appeal.BenefitType.Code
}

func readOptionalFile(path string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func readEvidenceFiles(paths []string) ([]robotics.Evidence, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	evidence := make([]robotics.Evidence, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read evidence %s: %w", path, err)
		}
		evidence = append(evidence, robotics.Evidence{
			Filename: filepath.Base(path),
			Content:  data,
		})
	}
	return evidence, nil
}
