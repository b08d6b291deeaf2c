package robotics

import (
	"encoding/json"

	"sscsrobotics/internal/ccd"
)

// Payload is the normalized flat record consumed by the downstream RPA
// system. Keys are only ever inserted when their inclusion rule holds, so an
// absent key is meaningful to the consumer and empty values are never
// stripped after the fact.
type Payload map[string]any

// JSON serializes the payload. Map keys marshal in sorted order, so mapping
// the same case twice with a fixed clock produces byte-identical output.
func (p Payload) JSON() ([]byte, error) {
	return json.Marshal(p)
}

// Wrapper carries one case through mapping: the case record plus the values
// the orchestrator resolved for it.
type Wrapper struct {
	CaseData        *ccd.SscsCaseData
	CCDCaseID       int64
	VenueName       string
	EvidencePresent string
}
