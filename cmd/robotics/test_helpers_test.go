package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sscsrobotics/internal/ccd"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	dataDir    string
}

// setupCLITestEnv builds an isolated config on disk. SMTP and CCD are left
// unconfigured, so dispatches use the no-op sender and skip write-back.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	dataDir := filepath.Join(base, "data")
	logDir := filepath.Join(base, "logs")
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf("[paths]\ndata_dir = %q\nlog_dir = %q\n", dataDir, logDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, dataDir: dataDir}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q does not contain %q", output, want)
	}
}

func testCase() *ccd.SscsCaseData {
	return &ccd.SscsCaseData{
		EvidencePresent: "No",
		Appeal: &ccd.Appeal{
			BenefitType: &ccd.BenefitType{Code: "PIP"},
			Appellant: &ccd.Appellant{
				Name:     &ccd.Name{Title: "Mr", FirstName: "Joe", LastName: "Bloggs"},
				Identity: &ccd.Identity{Nino: "AB877533C"},
				Address: &ccd.Address{
					Line1:    "1 High Street",
					Town:     "Leeds",
					County:   "West Yorkshire",
					Postcode: "LS1 1AA",
				},
				Contact: &ccd.Contact{Email: "joe@example.com", Mobile: "07700900000"},
			},
			MrnDetails:     &ccd.MrnDetails{DwpIssuingOffice: "DWP PIP (3)", MrnDate: "2026-02-01"},
			HearingOptions: &ccd.HearingOptions{WantsToAttend: "Yes"},
		},
	}
}

func writeCaseFile(t *testing.T, dir string, caseData *ccd.SscsCaseData) string {
	t.Helper()
	data, err := json.Marshal(caseData)
	if err != nil {
		t.Fatalf("marshal case: %v", err)
	}
	path := filepath.Join(dir, "case.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write case: %v", err)
	}
	return path
}
