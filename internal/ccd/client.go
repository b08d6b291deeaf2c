package ccd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sscsrobotics/internal/config"
	"sscsrobotics/internal/idam"
)

// HTTPDoer describes the HTTP client used by the CCD client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Updater submits case events to the case record store.
type Updater interface {
	UpdateCase(ctx context.Context, tokens idam.Tokens, caseID int64, event, summary string, data *SscsCaseData) error
}

type client struct {
	baseURL string
	doer    HTTPDoer
}

// NewClient builds a CCD client from configuration. A nil client is returned
// when no base URL is configured; callers treat that as "write-back disabled".
func NewClient(cfg *config.Config) Updater {
	if cfg == nil || cfg.CCD.BaseURL == "" {
		return nil
	}
	timeout := time.Duration(cfg.CCD.RequestTimeout) * time.Second
	return &client{
		baseURL: cfg.CCD.BaseURL,
		doer:    &http.Client{Timeout: timeout},
	}
}

// NewClientWithDoer builds a CCD client against an injected HTTP doer.
func NewClientWithDoer(baseURL string, doer HTTPDoer) Updater {
	return &client{baseURL: baseURL, doer: doer}
}

type caseEvent struct {
	Event   string        `json:"event"`
	Summary string        `json:"summary,omitempty"`
	Data    *SscsCaseData `json:"data"`
}

func (c *client) UpdateCase(ctx context.Context, tokens idam.Tokens, caseID int64, event, summary string, data *SscsCaseData) error {
	body, err := json.Marshal(caseEvent{Event: event, Summary: summary, Data: data})
	if err != nil {
		return fmt.Errorf("encode case event: %w", err)
	}

	url := fmt.Sprintf("%s/cases/%d/events", c.baseURL, caseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build case update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokens.Oauth2Token)
	req.Header.Set("ServiceAuthorization", tokens.ServiceToken)
	if tokens.UserID != "" {
		req.Header.Set("user-id", tokens.UserID)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("update case %d: %w", caseID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("case update for %d returned %d: %s", caseID, resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
