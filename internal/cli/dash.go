package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vigil/internal/collector"
	"vigil/internal/config"
	"vigil/internal/dash"
	"vigil/internal/errors"
	"vigil/internal/logger"
	"vigil/internal/state"
	"vigil/internal/synthetic"
)

// dashCommand loads config, wires the engine together, and runs the TUI.
func dashCommand(configPath, themeFlag, refreshFlag string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	if themeFlag != "" {
		if !config.IsKnownTheme(themeFlag) {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown theme: %s", themeFlag),
				"Valid themes: "+strings.Join(config.Themes, ", "))
		}
		cfg.UI.Theme = themeFlag
	}
	if refreshFlag != "" {
		parsed, err := time.ParseDuration(refreshFlag)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Invalid refresh rate: %s", refreshFlag),
				"Use a valid duration like 250ms or 1s")
		}
		if parsed < 50*time.Millisecond {
			return errors.New(errors.ErrConfig,
				"Refresh rate too fast",
				"Minimum refresh rate is 50ms")
		}
		cfg.UI.RefreshRateMS = int(parsed.Milliseconds())
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	log := logger.Noop()
	if cfg.Log.File != "" {
		fileLog, err := logger.New("dash", cfg.Log.File)
		if err != nil {
			return err
		}
		log = fileLog
	}

	specs := make([]synthetic.NodeSpec, 0, len(cfg.Nodes))
	for _, n := range cfg.Nodes {
		specs = append(specs, synthetic.NodeSpec{
			Name:    n.Name,
			Address: n.Address,
			HasGPU:  n.ShowGPU,
		})
	}
	synth := synthetic.New(time.Now().UnixNano(), specs)

	store := state.NewStore(synth, state.Options{
		Retention:     cfg.History.Retention,
		RefreshRateMS: cfg.UI.RefreshRateMS,
		ThemeCount:    dash.ThemeCount(),
		ThemeIndex:    dash.ThemeIndexByName(cfg.UI.Theme),
		Logger:        log,
	})
	store.SetFilters(cfg.UI.Filter.Node, cfg.UI.Filter.Namespace, cfg.UI.Filter.Service)

	runner, err := collector.NewPromClient(cfg.Backend.URL, cfg.Backend.Timeout)
	if err != nil {
		return err
	}
	coll := collector.New(runner, cfg.Backend, synth, log)

	interval := time.Duration(cfg.UI.RefreshRateMS) * time.Millisecond
	model := dash.NewModel(store, coll, interval, log)
	model.SetLayout(dash.Layout{
		MainSplit:    cfg.UI.MainSplit,
		NodeSplit:    cfg.UI.NodeSplit,
		ServiceSplit: cfg.UI.ServiceSplit,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
