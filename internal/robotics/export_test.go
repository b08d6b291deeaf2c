package robotics

import "sscsrobotics/internal/email"

// BuildAttachments exposes attachment assembly for tests.
func BuildAttachments(payloadJSON []byte, pdf []byte, uniqueID string, evidence []Evidence) []email.Attachment {
	return buildAttachments(payloadJSON, pdf, uniqueID, evidence)
}
