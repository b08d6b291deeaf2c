package dispatchlog_test

import (
	"context"
	"testing"

	"sscsrobotics/internal/config"
	"sscsrobotics/internal/dispatchlog"
)

func openStore(t *testing.T) *dispatchlog.Store {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.LogDir = t.TempDir()
	store, err := dispatchlog.Open(&cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAssignsIdentifiers(t *testing.T) {
	store := openStore(t)
	entry := &dispatchlog.Entry{
		CaseID:      1234,
		Benefit:     "PIP",
		Postcode:    "CM12 0NS",
		Status:      dispatchlog.StatusSent,
		Attachments: 3,
	}
	if err := store.Record(context.Background(), entry); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if entry.ID == 0 {
		t.Fatal("expected entry ID to be assigned")
	}
	if entry.CorrelationID == "" {
		t.Fatal("expected correlation id to be assigned")
	}
	if entry.CreatedAt.IsZero() {
		t.Fatal("expected created timestamp to be assigned")
	}
}

func TestListReturnsNewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	statuses := []dispatchlog.Status{
		dispatchlog.StatusSent,
		dispatchlog.StatusRejected,
		dispatchlog.StatusFailed,
	}
	for i, status := range statuses {
		entry := &dispatchlog.Entry{CaseID: int64(i + 1), Status: status, Scottish: status == dispatchlog.StatusFailed}
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	entries, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].CaseID != 3 || entries[0].Status != dispatchlog.StatusFailed {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if !entries[0].Scottish {
		t.Fatal("expected Scottish flag to round-trip")
	}
	if entries[1].CaseID != 2 || entries[1].Status != dispatchlog.StatusRejected {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}

func TestOpenTwiceReusesSchema(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.LogDir = t.TempDir()

	first, err := dispatchlog.Open(&cfg)
	if err != nil {
		t.Fatalf("first Open returned error: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	second, err := dispatchlog.Open(&cfg)
	if err != nil {
		t.Fatalf("second Open returned error: %v", err)
	}
	defer second.Close()

	entries, err := second.List(context.Background(), 5)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty log, got %d entries", len(entries))
	}
}
