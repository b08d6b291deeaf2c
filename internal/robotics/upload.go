package robotics

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"sscsrobotics/internal/ccd"
	"sscsrobotics/internal/docstore"
	"sscsrobotics/internal/idam"
	"sscsrobotics/internal/logging"
)

// UploadService writes a dispatched payload back into the case record store:
// the payload is stored as a document and the case record updated to
// reference it. This is best-effort enrichment; nothing here may fail the
// dispatch that produced the payload.
type UploadService struct {
	uploader docstore.Uploader
	updater  ccd.Updater
	logger   *slog.Logger
}

// NewUploadService wires the case write-back step. Either collaborator may be
// nil when write-back is unconfigured; AttachPayloadToCase then no-ops.
func NewUploadService(uploader docstore.Uploader, updater ccd.Updater, logger *slog.Logger) *UploadService {
	return &UploadService{
		uploader: uploader,
		updater:  updater,
		logger:   logging.NewComponentLogger(logger, "case-update"),
	}
}

// AttachPayloadToCase uploads the payload and rewrites the case record to
// reference the stored document. A document store failure suppresses the case
// update entirely; no error propagates to the caller.
func (u *UploadService) AttachPayloadToCase(ctx context.Context, payload Payload, caseData *ccd.SscsCaseData, details *ccd.SscsCaseDetails, tokens idam.Tokens) {
	if details == nil || details.ID == nil {
		u.logger.Info("ccd case id is empty, skipping case update")
		return
	}
	caseID := *details.ID
	log := u.logger.With(logging.Int64(logging.FieldCaseID, caseID))

	if u.uploader == nil || u.updater == nil {
		log.Info("case write-back is not configured, skipping")
		return
	}

	caseData.CcdCaseID = strconv.FormatInt(caseID, 10)

	body, err := payload.JSON()
	if err != nil {
		log.Error("serialize payload for upload", logging.Error(err))
		return
	}

	filename := fmt.Sprintf("robotics_%d.txt", caseID)
	document, err := u.uploader.Upload(ctx, tokens, filename, body)
	if err != nil {
		// No partial update: a failed upload leaves the case record untouched.
		log.Warn("document upload failed, case record not updated", logging.Error(err))
		return
	}

	caseData.SscsDocuments = append(caseData.SscsDocuments, ccd.SscsDocument{
		Value: ccd.SscsDocumentDetails{
			DocumentFileName: filename,
			DocumentType:     "roboticsJson",
			DocumentLink:     ccd.DocumentLink{DocumentURL: document.Links.Self.Href},
		},
	})

	if err := u.updater.UpdateCase(ctx, tokens, caseID, "uploadDocument", "Robotics JSON attached", caseData); err != nil {
		log.Warn("case record update failed", logging.Error(err))
		return
	}
	log.Info("case record updated with robotics document")
}
