package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"vigil/internal/config"
)

// initCommand creates a new .vigil.yaml in the current directory,
// guiding backend and node setup with interactive prompts.
func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	backendURL := cfg.Backend.URL
	theme := cfg.UI.Theme
	nodeList := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Backend URL").
				Description("Prometheus-compatible query endpoint").
				Placeholder("http://prometheus:9090").
				Value(&backendURL).
				Validate(func(s string) error {
					u, err := url.Parse(strings.TrimSpace(s))
					if err != nil || u.Scheme == "" || u.Host == "" {
						return fmt.Errorf("enter a full URL like http://host:9090")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(config.Themes...)...).
				Value(&theme),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Nodes (optional)").
				Description("Comma-separated node names to monitor; empty uses the built-in set").
				Placeholder("atlas,borealis").
				Value(&nodeList),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	cfg.Backend.URL = strings.TrimSpace(backendURL)
	cfg.UI.Theme = theme
	for _, name := range strings.Split(nodeList, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cfg.Nodes = append(cfg.Nodes, config.NodeSeed{Name: name})
	}

	if err := writeConfig(configPath, cfg); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", configPath)
	fmt.Println("Run 'vigil check' to test the backend connection.")
	return nil
}

// yamlBackend mirrors config.BackendConfig with string durations so the
// written file says "10s" instead of nanosecond integers.
type yamlBackend struct {
	URL            string                `yaml:"url"`
	Timeout        string                `yaml:"timeout"`
	QueryInterval  string                `yaml:"query_interval"`
	NodeQueries    config.NodeQueries    `yaml:"node_queries"`
	ServiceQueries config.ServiceQueries `yaml:"service_queries"`
}

type yamlConfig struct {
	Version int                  `yaml:"version"`
	Backend yamlBackend          `yaml:"backend"`
	Nodes   []config.NodeSeed    `yaml:"nodes,omitempty"`
	UI      config.UIConfig      `yaml:"ui"`
	History config.HistoryConfig `yaml:"history"`
	Log     config.LogConfig     `yaml:"log,omitempty"`
}

// writeConfig marshals the config to YAML with a short header comment.
func writeConfig(path string, cfg *config.Config) error {
	out := yamlConfig{
		Version: cfg.Version,
		Backend: yamlBackend{
			URL:            cfg.Backend.URL,
			Timeout:        cfg.Backend.Timeout.String(),
			QueryInterval:  cfg.Backend.QueryInterval.String(),
			NodeQueries:    cfg.Backend.NodeQueries,
			ServiceQueries: cfg.Backend.ServiceQueries,
		},
		Nodes:   cfg.Nodes,
		UI:      cfg.UI,
		History: cfg.History,
		Log:     cfg.Log,
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	header := "# vigil configuration\n# See 'vigil check' to verify backend connectivity.\n"
	return os.WriteFile(path, append([]byte(header), data...), 0o644)
}
