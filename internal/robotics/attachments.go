package robotics

import "sscsrobotics/internal/email"

// Evidence is an additional file supplied alongside the dispatch.
type Evidence struct {
	Filename string
	Content  []byte
}

// buildAttachments assembles the outgoing attachment list. The payload is
// always first, the rendered case document (when supplied) second, then
// evidence files in caller order. Evidence entries without a name or content
// are skipped.
func buildAttachments(payloadJSON []byte, pdf []byte, uniqueID string, evidence []Evidence) []email.Attachment {
	attachments := make([]email.Attachment, 0, len(evidence)+2)

	attachments = append(attachments, email.JSONAttachment(payloadJSON, uniqueID+".txt"))
	if pdf != nil {
		attachments = append(attachments, email.PDFAttachment(pdf, uniqueID+".pdf"))
	}
	for _, item := range evidence {
		if item.Filename == "" || len(item.Content) == 0 {
			continue
		}
		attachments = append(attachments, email.FileAttachment(item.Content, item.Filename))
	}
	return attachments
}
