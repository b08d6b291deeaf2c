package robotics_test

import (
	"context"
	"errors"
	"testing"

	"sscsrobotics/internal/ccd"
	"sscsrobotics/internal/docstore"
	"sscsrobotics/internal/idam"
	"sscsrobotics/internal/logging"
	"sscsrobotics/internal/robotics"
)

type fakeUploader struct {
	uploads  int
	filename string
	err      error
}

func (f *fakeUploader) Upload(_ context.Context, _ idam.Tokens, filename string, _ []byte) (*docstore.Document, error) {
	f.uploads++
	f.filename = filename
	if f.err != nil {
		return nil, f.err
	}
	document := &docstore.Document{OriginalDocumentName: filename}
	document.Links.Self.Href = "http://dm-store/documents/abc"
	return document, nil
}

type fakeUpdater struct {
	updates int
	event   string
	data    *ccd.SscsCaseData
	err     error
}

func (f *fakeUpdater) UpdateCase(_ context.Context, _ idam.Tokens, _ int64, event, _ string, data *ccd.SscsCaseData) error {
	f.updates++
	f.event = event
	f.data = data
	return f.err
}

func caseDetails(id int64, data *ccd.SscsCaseData) *ccd.SscsCaseDetails {
	return &ccd.SscsCaseDetails{ID: &id, Data: data}
}

func TestAttachPayloadToCase(t *testing.T) {
	uploader := &fakeUploader{}
	updater := &fakeUpdater{}
	service := robotics.NewUploadService(uploader, updater, logging.NewNop())

	caseData := validCase()
	payload := mapCase(t, caseData)
	service.AttachPayloadToCase(context.Background(), payload, caseData, caseDetails(1234567890, caseData), idam.Tokens{})

	if uploader.uploads != 1 || updater.updates != 1 {
		t.Fatalf("uploads = %d, updates = %d, want 1 and 1", uploader.uploads, updater.updates)
	}
	if uploader.filename != "robotics_1234567890.txt" {
		t.Errorf("filename = %q", uploader.filename)
	}
	if updater.event != "uploadDocument" {
		t.Errorf("event = %q, want uploadDocument", updater.event)
	}
	if caseData.CcdCaseID != "1234567890" {
		t.Errorf("CcdCaseID = %q, want 1234567890", caseData.CcdCaseID)
	}
	if len(caseData.SscsDocuments) != 1 {
		t.Fatalf("documents = %d, want 1", len(caseData.SscsDocuments))
	}
	document := caseData.SscsDocuments[0].Value
	if document.DocumentType != "roboticsJson" {
		t.Errorf("document type = %q, want roboticsJson", document.DocumentType)
	}
	if document.DocumentLink.DocumentURL != "http://dm-store/documents/abc" {
		t.Errorf("document url = %q", document.DocumentLink.DocumentURL)
	}
}

func TestAttachPayloadUploadFailureSuppressesUpdate(t *testing.T) {
	uploader := &fakeUploader{err: errors.New("dm-store unavailable")}
	updater := &fakeUpdater{}
	service := robotics.NewUploadService(uploader, updater, logging.NewNop())

	caseData := validCase()
	payload := mapCase(t, caseData)
	service.AttachPayloadToCase(context.Background(), payload, caseData, caseDetails(1, caseData), idam.Tokens{})

	if updater.updates != 0 {
		t.Errorf("updates = %d, want 0 after a failed upload", updater.updates)
	}
	if len(caseData.SscsDocuments) != 0 {
		t.Errorf("documents = %d, want 0 after a failed upload", len(caseData.SscsDocuments))
	}
}

func TestAttachPayloadUpdateFailureIsSwallowed(t *testing.T) {
	uploader := &fakeUploader{}
	updater := &fakeUpdater{err: errors.New("ccd rejected event")}
	service := robotics.NewUploadService(uploader, updater, logging.NewNop())

	caseData := validCase()
	payload := mapCase(t, caseData)
	service.AttachPayloadToCase(context.Background(), payload, caseData, caseDetails(1, caseData), idam.Tokens{})

	if updater.updates != 1 {
		t.Errorf("updates = %d, want 1", updater.updates)
	}
}

func TestAttachPayloadSkipsWithoutCaseID(t *testing.T) {
	uploader := &fakeUploader{}
	updater := &fakeUpdater{}
	service := robotics.NewUploadService(uploader, updater, logging.NewNop())

	caseData := validCase()
	payload := mapCase(t, caseData)

	service.AttachPayloadToCase(context.Background(), payload, caseData, nil, idam.Tokens{})
	service.AttachPayloadToCase(context.Background(), payload, caseData, &ccd.SscsCaseDetails{}, idam.Tokens{})

	if uploader.uploads != 0 || updater.updates != 0 {
		t.Errorf("uploads = %d, updates = %d, want 0 and 0", uploader.uploads, updater.updates)
	}
}

func TestAttachPayloadSkipsWhenUnconfigured(t *testing.T) {
	service := robotics.NewUploadService(nil, nil, logging.NewNop())

	caseData := validCase()
	payload := mapCase(t, caseData)
	service.AttachPayloadToCase(context.Background(), payload, caseData, caseDetails(1, caseData), idam.Tokens{})
}
