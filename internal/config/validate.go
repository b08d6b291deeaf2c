package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEmail(); err != nil {
		return err
	}
	if err := c.validateCCD(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateEmail() error {
	if c.Email.Host == "" {
		// SMTP unconfigured: the dispatcher falls back to a no-op sender.
		return nil
	}
	if c.Email.From == "" {
		return errors.New("email.from must be set when email.host is set")
	}
	if c.Email.To == "" {
		return errors.New("email.to must be set when email.host is set")
	}
	if c.Email.Port <= 0 || c.Email.Port > 65535 {
		return fmt.Errorf("email.port %d is out of range", c.Email.Port)
	}
	return nil
}

func (c *Config) validateCCD() error {
	if c.CCD.BaseURL == "" {
		return nil
	}
	if c.Idam.Oauth2Token == "" {
		return errors.New("idam.oauth2_token must be set when ccd.base_url is set (or export IDAM_OAUTH2_TOKEN)")
	}
	if c.Idam.ServiceToken == "" {
		return errors.New("idam.service_token must be set when ccd.base_url is set (or export S2S_TOKEN)")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
