package docstore_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sscsrobotics/internal/docstore"
	"sscsrobotics/internal/idam"
)

func TestUploadReturnsFirstDocumentReference(t *testing.T) {
	var gotFilename string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/documents" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if files := r.MultipartForm.File["files"]; len(files) == 1 {
			gotFilename = files[0].Filename
		}
		fmt.Fprint(w, `{
			"_embedded": {"documents": [{
				"originalDocumentName": "Bloggs_123.txt",
				"_links": {
					"self": {"href": "http://dm-store/documents/abc"},
					"binary": {"href": "http://dm-store/documents/abc/binary"}
				}
			}]}
		}`)
	}))
	defer server.Close()

	client := docstore.NewClientWithDoer(server.URL, server.Client())
	doc, err := client.Upload(context.Background(), idam.Tokens{Oauth2Token: "o", ServiceToken: "s"}, "Bloggs_123.txt", []byte(`{}`))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if gotFilename != "Bloggs_123.txt" {
		t.Fatalf("unexpected uploaded filename %q", gotFilename)
	}
	if doc.Links.Self.Href != "http://dm-store/documents/abc" {
		t.Fatalf("unexpected document reference: %+v", doc)
	}
}

func TestUploadFailsOnStoreError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "document store is down", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := docstore.NewClientWithDoer(server.URL, server.Client())
	if _, err := client.Upload(context.Background(), idam.Tokens{}, "x.txt", []byte("x")); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestUploadFailsWhenNoReferenceReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"_embedded": {"documents": []}}`)
	}))
	defer server.Close()

	client := docstore.NewClientWithDoer(server.URL, server.Client())
	if _, err := client.Upload(context.Background(), idam.Tokens{}, "x.txt", []byte("x")); err == nil {
		t.Fatal("expected error for empty document list")
	}
}
