package collector

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"vigil/internal/config"
	"vigil/internal/errors"
	"vigil/internal/logger"
	"vigil/internal/state"
)

// probeQuery is the cheap query used to decide whether the backend is
// reachable at all. An error here fails the whole fetch; individual
// metric queries after it are allowed to fail independently.
const probeQuery = "up"

// Collector turns backend queries into full fetch results. Each metric
// query resolves one field; fields the backend cannot answer keep the
// baseline values supplied by the base snapshot, so candidates handed to
// the store are always complete records.
type Collector struct {
	runner QueryRunner
	cfg    config.BackendConfig
	base   state.Synthesizer
	log    logger.Logger

	mu        sync.Mutex
	lastFetch time.Time
	gen       atomic.Uint64
}

// New creates a collector. The base synthesizer supplies the candidate
// skeleton that query results are overlaid onto.
func New(runner QueryRunner, cfg config.BackendConfig, base state.Synthesizer, log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	return &Collector{runner: runner, cfg: cfg, base: base, log: log}
}

// Fetch runs one collection cycle. Calls inside the configured query
// interval return an untouched result so the caller's redraw cadence can
// far exceed the backend cadence. Results carry a generation number; the
// store uses it to discard a slow fetch that lands after a newer one.
func (c *Collector) Fetch(ctx context.Context) state.FetchResult {
	c.mu.Lock()
	if !c.lastFetch.IsZero() && time.Since(c.lastFetch) < c.cfg.QueryInterval {
		c.mu.Unlock()
		return state.FetchResult{}
	}
	c.lastFetch = time.Now()
	c.mu.Unlock()

	gen := c.gen.Add(1)

	if _, err := c.runner.Query(ctx, probeQuery); err != nil {
		c.log.Warn("backend probe failed: %v", err)
		return state.FetchResult{Generation: gen, Updated: true, Err: err}
	}

	nodes, services := c.base.FullSnapshot()
	c.resolve(ctx, nodes, services)

	return state.FetchResult{Generation: gen, Updated: true, Nodes: nodes, Services: services}
}

// resolve runs every configured metric query concurrently and overlays
// the answers onto the candidate records. A failed metric query logs a
// warning and leaves that field at its baseline.
func (c *Collector) resolve(ctx context.Context, nodes []state.Node, services []state.Service) {
	names := make([]string, len(nodes))
	addresses := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
		addresses[i] = n.Address
	}
	serviceNames := make([]string, len(services))
	for i, s := range services {
		serviceNames[i] = s.Name
	}
	nk := nodeKeys(names, addresses)
	sk := serviceKeys(serviceNames)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	run := func(query string, apply func([]Sample)) {
		if query == "" {
			return
		}
		g.Go(func() error {
			samples, err := c.runner.Query(gctx, query)
			if err != nil {
				c.log.Warn("metric query failed, keeping baseline: %v", err)
				return nil
			}
			mu.Lock()
			apply(samples)
			mu.Unlock()
			return nil
		})
	}

	nq := c.cfg.NodeQueries
	run(nq.CPU, func(s []Sample) { applyNodes(s, nk, nodes, func(n *state.Node, v float64) { n.Live.CPU = v }) })
	run(nq.Memory, func(s []Sample) { applyNodes(s, nk, nodes, func(n *state.Node, v float64) { n.Live.Memory = v }) })
	run(nq.GPU, func(s []Sample) { applyNodes(s, nk, nodes, func(n *state.Node, v float64) { n.Live.GPU = v }) })
	run(nq.NetworkRx, func(s []Sample) { applyNodes(s, nk, nodes, func(n *state.Node, v float64) { n.Live.NetworkRx = v }) })
	run(nq.NetworkTx, func(s []Sample) { applyNodes(s, nk, nodes, func(n *state.Node, v float64) { n.Live.NetworkTx = v }) })
	run(nq.Disk, func(s []Sample) { applyNodes(s, nk, nodes, func(n *state.Node, v float64) { n.Live.Disk = v }) })
	run(nq.Temperature, func(s []Sample) { applyNodes(s, nk, nodes, func(n *state.Node, v float64) { n.Live.Temperature = v }) })

	sq := c.cfg.ServiceQueries
	run(sq.CPU, func(s []Sample) { applyServices(s, sk, services, func(svc *state.Service, v float64) { svc.Live.CPU = v }) })
	run(sq.Memory, func(s []Sample) { applyServices(s, sk, services, func(svc *state.Service, v float64) { svc.Live.Memory = v }) })
	run(sq.RequestsPerSec, func(s []Sample) { applyServices(s, sk, services, func(svc *state.Service, v float64) { svc.Live.RequestsPerSec = v }) })
	run(sq.ResponseTime, func(s []Sample) { applyServices(s, sk, services, func(svc *state.Service, v float64) { svc.Live.ResponseTime = v }) })
	run(sq.ErrorRate, func(s []Sample) { applyServices(s, sk, services, func(svc *state.Service, v float64) { svc.Live.ErrorRate = v }) })
	run(sq.Status, func(s []Sample) {
		applyServices(s, sk, services, func(svc *state.Service, v float64) {
			if v == 1 {
				svc.Live.Status = "Running"
			} else {
				svc.Live.Status = "Stopped"
			}
		})
	})

	// Metric failures are tolerated above, so the group never errors.
	_ = g.Wait()
}

// TestConnection probes the backend with retries and reports how many
// series answered the probe query. Used by the check command, where a
// couple of retries smooth over a backend that is still starting up.
func (c *Collector) TestConnection(ctx context.Context) (int, error) {
	var count int
	op := func() error {
		samples, err := c.runner.Query(ctx, probeQuery)
		if err != nil {
			return err
		}
		count = len(samples)
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return 0, errors.Wrap(err, "backend connection test failed")
	}
	return count, nil
}

// nodeLabels are tried in order when locating the identity label on a
// node sample.
var nodeLabels = []string{"instance", "node", "nodename"}

// serviceLabels are tried in order when locating the identity label on a
// service sample.
var serviceLabels = []string{"name", "pod", "container", "job"}

func firstLabel(labels map[string]string, keys []string) string {
	for _, k := range keys {
		if v, ok := labels[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

func applyNodes(samples []Sample, keys []identityKeys, nodes []state.Node, set func(*state.Node, float64)) {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.Name] = i
	}
	for _, s := range samples {
		label := firstLabel(s.Labels, nodeLabels)
		if label == "" {
			continue
		}
		id := matchIdentity(label, keys)
		if id == "" {
			continue
		}
		set(&nodes[index[id]], s.Value)
	}
}

func applyServices(samples []Sample, keys []identityKeys, services []state.Service, set func(*state.Service, float64)) {
	index := make(map[string]int, len(services))
	for i, s := range services {
		index[s.Name] = i
	}
	for _, s := range samples {
		label := firstLabel(s.Labels, serviceLabels)
		if label == "" {
			continue
		}
		id := matchIdentity(label, keys)
		if id == "" {
			continue
		}
		set(&services[index[id]], s.Value)
	}
}
