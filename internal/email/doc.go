// Package email delivers robotics payloads to the RPA mailbox over SMTP.
//
// Attachments are plain (filename, content type, bytes) triples so the
// dispatch orchestrator can assemble them without knowing about MIME.
// Scottish cases route to a dedicated mailbox when one is configured. With no
// SMTP host configured the sender degrades to a logged no-op, mirroring how
// disabled integrations behave elsewhere in the codebase.
package email
