package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"vigil/internal/errors"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Nodes = []NodeSeed{
		{Name: "atlas", Address: "192.168.1.10"},
	}
	return cfg
}

func TestValidateOK(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidateBackend(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty url", func(c *Config) { c.Backend.URL = "" }},
		{"whitespace url", func(c *Config) { c.Backend.URL = "   " }},
		{"url without scheme", func(c *Config) { c.Backend.URL = "prometheus:9090" }},
		{"zero timeout", func(c *Config) { c.Backend.Timeout = 0 }},
		{"negative timeout", func(c *Config) { c.Backend.Timeout = -time.Second }},
		{"zero query interval", func(c *Config) { c.Backend.QueryInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			assert.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestValidateUI(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"zero refresh rate", func(c *Config) { c.UI.RefreshRateMS = 0 }, true},
		{"unknown theme", func(c *Config) { c.UI.Theme = "vaporwave" }, true},
		{"empty theme is fine", func(c *Config) { c.UI.Theme = "" }, false},
		{"three-way split", func(c *Config) { c.UI.MainSplit = []int{40, 30, 30} }, true},
		{"split not summing to 100", func(c *Config) { c.UI.NodeSplit = []int{60, 60} }, true},
		{"empty split uses defaults", func(c *Config) { c.UI.ServiceSplit = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRetention(t *testing.T) {
	cfg := validConfig()
	cfg.History.Retention = 0
	assert.Error(t, Validate(cfg))

	cfg.History.Retention = -5
	assert.Error(t, Validate(cfg))
}

func TestValidateNodeSeeds(t *testing.T) {
	cfg := validConfig()
	cfg.Nodes = append(cfg.Nodes, NodeSeed{Name: "  "})
	assert.Error(t, Validate(cfg))
}

func TestValidateFutureVersion(t *testing.T) {
	cfg := validConfig()
	cfg.Version = CurrentConfigVersion + 1
	err := Validate(cfg)
	assert.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
