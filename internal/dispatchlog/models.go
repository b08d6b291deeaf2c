package dispatchlog

import "time"

// Status records the outcome of a dispatch attempt.
type Status string

const (
	// StatusSent means the payload was emailed to the RPA mailbox.
	StatusSent Status = "sent"
	// StatusRejected means the case record could not produce a valid payload.
	StatusRejected Status = "rejected"
	// StatusFailed means a transport fault stopped the dispatch.
	StatusFailed Status = "failed"
)

// Entry is one dispatch attempt.
type Entry struct {
	ID            int64
	CorrelationID string
	CaseID        int64
	Benefit       string
	Postcode      string
	Status        Status
	Scottish      bool
	Attachments   int
	Message       string
	CreatedAt     time.Time
}
