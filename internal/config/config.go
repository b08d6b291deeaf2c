package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// AirLookup contains configuration for the postcode to venue lookup table.
type AirLookup struct {
	// CSVPath overrides the embedded venue table when set.
	CSVPath string `toml:"csv_path"`
}

// Email contains SMTP configuration for the robotics mailbox.
type Email struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	Username       string `toml:"username"`
	Password       string `toml:"password"`
	From           string `toml:"from"`
	To             string `toml:"to"`
	ScottishTo     string `toml:"scottish_to"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Idam contains the auth token bundle presented to CCD and the document store.
type Idam struct {
	Oauth2Token  string `toml:"oauth2_token"`
	ServiceToken string `toml:"service_token"`
	UserID       string `toml:"user_id"`
}

// CCD contains configuration for the case record store API.
type CCD struct {
	BaseURL        string `toml:"base_url"`
	RequestTimeout int    `toml:"request_timeout"`
}

// DocStore contains configuration for the evidence document store API.
type DocStore struct {
	BaseURL        string `toml:"base_url"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for the robotics dispatcher.
//
// Configuration sections by subsystem:
//   - Paths: data directory (dispatch log, lock file) and log directory
//   - AirLookup: postcode to hearing venue table override
//   - Email: SMTP transport for the robotics mailbox
//   - Idam: auth tokens for CCD and document store calls
//   - CCD: case record store endpoint
//   - DocStore: document store endpoint
//   - Logging: log format and level
type Config struct {
	Paths     Paths     `toml:"paths"`
	AirLookup AirLookup `toml:"airlookup"`
	Email     Email     `toml:"email"`
	Idam      Idam      `toml:"idam"`
	CCD       CCD       `toml:"ccd"`
	DocStore  DocStore  `toml:"docstore"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/sscs-robotics/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("sscs-robotics.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the dispatcher writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.AirLookup.CSVPath) != "" {
		if c.AirLookup.CSVPath, err = expandPath(c.AirLookup.CSVPath); err != nil {
			return fmt.Errorf("airlookup.csv_path: %w", err)
		}
	}

	c.Email.Host = strings.TrimSpace(c.Email.Host)
	c.Email.From = strings.TrimSpace(c.Email.From)
	c.Email.To = strings.TrimSpace(c.Email.To)
	c.Email.ScottishTo = strings.TrimSpace(c.Email.ScottishTo)
	if c.Email.Password == "" {
		if value, ok := os.LookupEnv("ROBOTICS_SMTP_PASSWORD"); ok {
			c.Email.Password = value
		}
	}
	if c.Email.Port == 0 {
		c.Email.Port = defaultEmailPort
	}
	if c.Email.RequestTimeout <= 0 {
		c.Email.RequestTimeout = defaultEmailTimeout
	}

	if c.Idam.Oauth2Token == "" {
		if value, ok := os.LookupEnv("IDAM_OAUTH2_TOKEN"); ok {
			c.Idam.Oauth2Token = strings.TrimSpace(value)
		}
	}
	if c.Idam.ServiceToken == "" {
		if value, ok := os.LookupEnv("S2S_TOKEN"); ok {
			c.Idam.ServiceToken = strings.TrimSpace(value)
		}
	}

	c.CCD.BaseURL = strings.TrimRight(strings.TrimSpace(c.CCD.BaseURL), "/")
	if c.CCD.RequestTimeout <= 0 {
		c.CCD.RequestTimeout = defaultHTTPTimeout
	}
	c.DocStore.BaseURL = strings.TrimRight(strings.TrimSpace(c.DocStore.BaseURL), "/")
	if c.DocStore.RequestTimeout <= 0 {
		c.DocStore.RequestTimeout = defaultHTTPTimeout
	}

	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
