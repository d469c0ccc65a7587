package config

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

// AppConfig is the process configuration, loaded once at startup.
type AppConfig struct {
	Token    string
	GistID   string
	Timezone string
	Listen   string
	DryRun   bool
}

func Parse(c *cli.Context) (*AppConfig, error) {
	cfg := &AppConfig{
		Token:    c.String("token"),
		GistID:   c.String("gist"),
		Timezone: c.String("timezone"),
		Listen:   c.String("listen"),
		DryRun:   c.Bool("dry-run"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("a GitHub token is required (--token or GITOWL_GITHUB_TOKEN)")
	}
	if c.GistID == "" && !c.DryRun {
		return fmt.Errorf("a gist id is required (--gist or GITOWL_GIST_ID)")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %v", c.Timezone, err)
	}
	return nil
}

// Location resolves the configured timezone identifier.
func (c *AppConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}
