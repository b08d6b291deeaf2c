package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"sscsrobotics/internal/airlookup"
	"sscsrobotics/internal/config"
	"sscsrobotics/internal/email"
	"sscsrobotics/internal/logging"
	"sscsrobotics/internal/robotics"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// dispatchService assembles the orchestrator from configuration. The sender
// is a no-op when SMTP is unconfigured, which keeps validate-style dry runs
// working without a mailbox.
func (c *commandContext) dispatchService() (*robotics.Service, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	lookup, err := airlookup.Load(cfg)
	if err != nil {
		return nil, fmt.Errorf("load venue table: %w", err)
	}
	validator, err := robotics.NewValidator()
	if err != nil {
		return nil, err
	}
	sender, err := email.NewSender(cfg, logger)
	if err != nil {
		return nil, err
	}
	return robotics.NewService(robotics.NewMapper(), validator, lookup, sender, logger), nil
}

// acquireDispatchLock takes the single-dispatch lock. The returned release
// function is safe to call once; a held lock means another dispatch is
// mid-flight against the same data directory.
func (c *commandContext) acquireDispatchLock() (func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	lock := flock.New(filepath.Join(cfg.Paths.DataDir, "dispatch.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire dispatch lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another dispatch is already running against this data directory")
	}
	return func() { _ = lock.Unlock() }, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
