package ccd

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadCaseFile parses a case record from a JSON file on disk.
func ReadCaseFile(path string) (*SscsCaseData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}
	var caseData SscsCaseData
	if err := json.Unmarshal(data, &caseData); err != nil {
		return nil, fmt.Errorf("parse case file %q: %w", path, err)
	}
	return &caseData, nil
}
