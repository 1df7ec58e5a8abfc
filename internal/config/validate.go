package config

import (
	"fmt"
	"net/url"
	"strings"

	"vigil/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
// Validation failures are fatal at startup; the core never re-validates.
func Validate(cfg *Config) error {
	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but vigil only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Update vigil, or remove the 'version' field to use the current schema")
	}

	if err := validateBackend(cfg.Backend); err != nil {
		return err
	}

	if err := validateUI(cfg.UI); err != nil {
		return err
	}

	if cfg.History.Retention <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("history.retention must be positive, got %d", cfg.History.Retention),
			"Set history.retention to the number of trend samples to keep, e.g. 60")
	}

	for i, seed := range cfg.Nodes {
		if strings.TrimSpace(seed.Name) == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("nodes[%d] has no name", i),
				"Every node entry needs a name matching its backend series labels")
		}
	}

	return nil
}

func validateBackend(b BackendConfig) error {
	if strings.TrimSpace(b.URL) == "" {
		return errors.New(errors.ErrConfig,
			"backend.url is empty",
			"Set backend.url to your metrics backend, e.g. http://prometheus:9090")
	}

	u, err := url.Parse(b.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("backend.url '%s' is not a valid URL", b.URL),
			"Use a full URL with scheme and host, e.g. http://prometheus:9090")
	}

	if b.Timeout <= 0 {
		return errors.New(errors.ErrConfig,
			"backend.timeout must be positive",
			"Use a duration like 10s")
	}

	if b.QueryInterval <= 0 {
		return errors.New(errors.ErrConfig,
			"backend.query_interval must be positive",
			"Use a duration like 5s")
	}

	return nil
}

func validateUI(ui UIConfig) error {
	if ui.RefreshRateMS <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("ui.refresh_rate_ms must be positive, got %d", ui.RefreshRateMS),
			"250 is a reasonable frame period")
	}

	if ui.Theme != "" && !IsKnownTheme(ui.Theme) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown theme '%s'", ui.Theme),
			"Valid themes: "+strings.Join(Themes, ", "))
	}

	for _, split := range [][]int{ui.MainSplit, ui.NodeSplit, ui.ServiceSplit} {
		if err := validateSplit(split); err != nil {
			return err
		}
	}

	return nil
}

// validateSplit checks a layout split is two percentages summing to 100.
// Empty splits are allowed (defaults apply).
func validateSplit(split []int) error {
	if len(split) == 0 {
		return nil
	}
	if len(split) != 2 {
		return errors.New(errors.ErrConfig,
			"Layout splits must have exactly two entries",
			"Use something like [50, 50]")
	}
	if split[0]+split[1] != 100 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Layout split %v does not sum to 100", split),
			"Use percentages that add up to 100, like [60, 40]")
	}
	return nil
}
