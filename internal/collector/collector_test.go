package collector

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigil/internal/config"
	"vigil/internal/state"
	"vigil/internal/synthetic"
)

// fakeRunner answers queries from a canned table. Unlisted queries
// return no samples; a non-nil err fails every query.
type fakeRunner struct {
	mu      sync.Mutex
	answers map[string][]Sample
	err     error
	queries []string
}

func (f *fakeRunner) Query(_ context.Context, query string) ([]Sample, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.answers[query], nil
}

func testBackendConfig() config.BackendConfig {
	return config.BackendConfig{
		URL:           "http://localhost:9090",
		QueryInterval: 5 * time.Second,
		NodeQueries: config.NodeQueries{
			CPU:    "node_cpu",
			Memory: "node_mem",
		},
		ServiceQueries: config.ServiceQueries{
			CPU:    "svc_cpu",
			Status: "svc_up",
		},
	}
}

func newTestCollector(runner QueryRunner) *Collector {
	return New(runner, testBackendConfig(), synthetic.New(1, nil), nil)
}

func nodeByName(t *testing.T, nodes []state.Node, name string) state.Node {
	t.Helper()
	for _, n := range nodes {
		if n.Name == name {
			return n
		}
	}
	t.Fatalf("node %q not in result", name)
	return state.Node{}
}

func serviceByName(t *testing.T, services []state.Service, name string) state.Service {
	t.Helper()
	for _, s := range services {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("service %q not in result", name)
	return state.Service{}
}

func TestFetchOverlaysQueryResults(t *testing.T) {
	runner := &fakeRunner{answers: map[string][]Sample{
		probeQuery: {{Labels: map[string]string{"job": "node"}, Value: 1}},
		"node_cpu": {
			{Labels: map[string]string{"instance": "pesubuntu:9100"}, Value: 73.2},
			{Labels: map[string]string{"instance": "asuna.lan:9100"}, Value: 12.5},
		},
		"svc_cpu": {
			{Labels: map[string]string{"name": "k8s_n8n_pod"}, Value: 41.0},
		},
	}}
	c := newTestCollector(runner)

	res := c.Fetch(context.Background())

	require.NoError(t, res.Err)
	assert.True(t, res.Updated)
	assert.EqualValues(t, 1, res.Generation)

	assert.Equal(t, 73.2, nodeByName(t, res.Nodes, "pesubuntu").Live.CPU)
	assert.Equal(t, 12.5, nodeByName(t, res.Nodes, "asuna").Live.CPU)
	assert.Equal(t, 41.0, serviceByName(t, res.Services, "n8n-0").Live.CPU)
}

func TestFetchKeepsBaselineForUnansweredMetrics(t *testing.T) {
	runner := &fakeRunner{answers: map[string][]Sample{
		probeQuery: {{Value: 1}},
		// node_mem deliberately unanswered.
		"node_cpu": {{Labels: map[string]string{"instance": "pesubuntu"}, Value: 50}},
	}}
	c := newTestCollector(runner)

	res := c.Fetch(context.Background())

	require.NoError(t, res.Err)
	n := nodeByName(t, res.Nodes, "pesubuntu")
	assert.Equal(t, 50.0, n.Live.CPU)
	// Memory keeps the synthetic baseline rather than zeroing out.
	assert.Equal(t, 45.2, n.Live.Memory)
}

func TestFetchProbeFailure(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("connection refused")}
	c := newTestCollector(runner)

	res := c.Fetch(context.Background())

	assert.True(t, res.Updated)
	assert.Error(t, res.Err)
	assert.Empty(t, res.Nodes)
	assert.EqualValues(t, 1, res.Generation)
}

func TestFetchThrottlesInsideInterval(t *testing.T) {
	runner := &fakeRunner{answers: map[string][]Sample{probeQuery: {{Value: 1}}}}
	c := newTestCollector(runner)

	first := c.Fetch(context.Background())
	second := c.Fetch(context.Background())

	assert.True(t, first.Updated)
	assert.False(t, second.Updated)
	assert.Zero(t, second.Generation)
}

func TestFetchGenerationsIncrease(t *testing.T) {
	runner := &fakeRunner{answers: map[string][]Sample{probeQuery: {{Value: 1}}}}
	cfg := testBackendConfig()
	cfg.QueryInterval = 0
	c := New(runner, cfg, synthetic.New(1, nil), nil)

	first := c.Fetch(context.Background())
	second := c.Fetch(context.Background())

	assert.EqualValues(t, 1, first.Generation)
	assert.EqualValues(t, 2, second.Generation)
}

func TestFetchIgnoresUnmatchedLabels(t *testing.T) {
	runner := &fakeRunner{answers: map[string][]Sample{
		probeQuery: {{Value: 1}},
		"node_cpu": {{Labels: map[string]string{"instance": "stranger:9100"}, Value: 99}},
	}}
	c := newTestCollector(runner)

	res := c.Fetch(context.Background())

	require.NoError(t, res.Err)
	// Baselines untouched, nothing matched "stranger".
	assert.Equal(t, 25.3, nodeByName(t, res.Nodes, "pesubuntu").Live.CPU)
}

func TestFetchStatusQueryMapsToRunningStopped(t *testing.T) {
	runner := &fakeRunner{answers: map[string][]Sample{
		probeQuery: {{Value: 1}},
		"svc_up": {
			{Labels: map[string]string{"job": "postgres"}, Value: 1},
			{Labels: map[string]string{"job": "redis"}, Value: 0},
		},
	}}
	c := newTestCollector(runner)

	res := c.Fetch(context.Background())

	require.NoError(t, res.Err)
	assert.Equal(t, "Running", serviceByName(t, res.Services, "postgres-0").Live.Status)
	assert.Equal(t, "Stopped", serviceByName(t, res.Services, "redis-0").Live.Status)
}

func TestTestConnectionCountsSeries(t *testing.T) {
	runner := &fakeRunner{answers: map[string][]Sample{
		probeQuery: {{Value: 1}, {Value: 1}, {Value: 0}},
	}}
	c := newTestCollector(runner)

	count, err := c.TestConnection(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestTestConnectionFailsAfterRetries(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("connection refused")}
	c := newTestCollector(runner)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.TestConnection(ctx)

	assert.Error(t, err)
}
