// Package docstore uploads documents to the evidence management store.
package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"sscsrobotics/internal/config"
	"sscsrobotics/internal/idam"
)

// HTTPDoer describes the HTTP client used by the document store client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Document is a stored document reference returned by the store.
type Document struct {
	OriginalDocumentName string `json:"originalDocumentName"`
	Links                struct {
		Self struct {
			Href string `json:"href"`
		} `json:"self"`
		Binary struct {
			Href string `json:"href"`
		} `json:"binary"`
	} `json:"_links"`
}

type uploadResponse struct {
	Embedded struct {
		Documents []Document `json:"documents"`
	} `json:"_embedded"`
}

// Uploader stores a named document and returns its reference.
type Uploader interface {
	Upload(ctx context.Context, tokens idam.Tokens, filename string, content []byte) (*Document, error)
}

type client struct {
	baseURL string
	doer    HTTPDoer
}

// NewClient builds a document store client from configuration. A nil client
// is returned when no base URL is configured.
func NewClient(cfg *config.Config) Uploader {
	if cfg == nil || cfg.DocStore.BaseURL == "" {
		return nil
	}
	timeout := time.Duration(cfg.DocStore.RequestTimeout) * time.Second
	return &client{
		baseURL: cfg.DocStore.BaseURL,
		doer:    &http.Client{Timeout: timeout},
	}
}

// NewClientWithDoer builds a document store client against an injected HTTP doer.
func NewClientWithDoer(baseURL string, doer HTTPDoer) Uploader {
	return &client{baseURL: baseURL, doer: doer}
}

func (c *client) Upload(ctx context.Context, tokens idam.Tokens, filename string, content []byte) (*Document, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("files", filename)
	if err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("write upload content: %w", err)
	}
	if err := writer.WriteField("classification", "RESTRICTED"); err != nil {
		return nil, fmt.Errorf("write upload classification: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents", &body)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+tokens.Oauth2Token)
	req.Header.Set("ServiceAuthorization", tokens.ServiceToken)
	if tokens.UserID != "" {
		req.Header.Set("user-id", tokens.UserID)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload document %q: %w", filename, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("document upload for %q returned %d: %s", filename, resp.StatusCode, bytes.TrimSpace(detail))
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	if len(parsed.Embedded.Documents) == 0 {
		return nil, fmt.Errorf("document upload for %q returned no document reference", filename)
	}
	return &parsed.Embedded.Documents[0], nil
}
