package email

import (
	"mime"
	"path/filepath"
)

// Attachment is a named file carried on the robotics email.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// JSONAttachment wraps serialized payload bytes. The robotics consumer
// expects a .txt extension even though the content is JSON.
func JSONAttachment(data []byte, filename string) Attachment {
	return Attachment{Filename: filename, ContentType: "application/json", Data: data}
}

// PDFAttachment wraps a rendered case document.
func PDFAttachment(data []byte, filename string) Attachment {
	return Attachment{Filename: filename, ContentType: "application/pdf", Data: data}
}

// FileAttachment wraps an evidence file, inferring the content type from the
// filename extension.
func FileAttachment(data []byte, filename string) Attachment {
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return Attachment{Filename: filename, ContentType: contentType, Data: data}
}
