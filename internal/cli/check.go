package cli

import (
	"context"
	"fmt"
	"time"

	"vigil/internal/collector"
	"vigil/internal/config"
	"vigil/internal/logger"
	"vigil/internal/synthetic"
)

// checkCommand probes the configured backend and prints a short report.
func checkCommand(configPath string, timeout time.Duration) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	fmt.Printf("Checking %s ...\n", cfg.Backend.URL)

	runner, err := collector.NewPromClient(cfg.Backend.URL, cfg.Backend.Timeout)
	if err != nil {
		return err
	}
	coll := collector.New(runner, cfg.Backend, synthetic.New(0, nil), logger.Noop())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	count, err := coll.TestConnection(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Backend reachable in %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("  %d series answered the probe query\n", count)
	if count == 0 {
		fmt.Println("  Warning: no targets are up; the dashboard will show synthetic data.")
	}
	return nil
}
