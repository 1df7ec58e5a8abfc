package synthetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigil/internal/state"
)

func TestFullSnapshotCatalogue(t *testing.T) {
	g := New(1, nil)

	nodes, services := g.FullSnapshot()

	require.Len(t, nodes, 2)
	assert.Equal(t, "pesubuntu", nodes[0].Name)
	assert.Equal(t, "asuna", nodes[1].Name)
	assert.NotEmpty(t, nodes[0].Hardware.GPUModel)
	assert.Empty(t, nodes[1].Hardware.GPUModel)

	require.Len(t, services, 7)
	byName := map[string]state.Service{}
	for _, s := range services {
		byName[s.Name] = s
	}
	assert.Equal(t, state.HealthDegraded, byName["qdrant-0"].Health.State)
	assert.Equal(t, state.HealthUnhealthy, byName["flowise-0"].Health.State)
	assert.Equal(t, state.HealthHealthy, byName["postgres-0"].Health.State)
}

func TestFullSnapshotIsDeterministic(t *testing.T) {
	a, _ := New(1, nil).FullSnapshot()
	b, _ := New(99, nil).FullSnapshot()

	assert.Equal(t, a, b)
}

func TestFabricatedNodesFollowSpecs(t *testing.T) {
	specs := []NodeSpec{
		{Name: "atlas", Address: "10.0.0.5", HasGPU: true},
		{Name: "borealis"},
	}
	g := New(1, specs)

	nodes, _ := g.FullSnapshot()

	require.Len(t, nodes, 2)
	assert.Equal(t, "atlas", nodes[0].Name)
	assert.Equal(t, "10.0.0.5", nodes[0].Address)
	assert.NotEmpty(t, nodes[0].Hardware.GPUModel)
	assert.Greater(t, nodes[0].Live.GPU, 0.0)

	assert.Equal(t, "borealis", nodes[1].Name)
	assert.NotEmpty(t, nodes[1].Address)
	assert.Empty(t, nodes[1].Hardware.GPUModel)
	assert.Zero(t, nodes[1].Live.GPU)
}

func TestDriftNodeStaysWithinRanges(t *testing.T) {
	g := New(42, nil)
	nodes, _ := g.FullSnapshot()
	n := nodes[0]

	for i := 0; i < 500; i++ {
		g.DriftNode(&n)

		assert.GreaterOrEqual(t, n.Live.CPU, NodeCPU.Floor)
		assert.LessOrEqual(t, n.Live.CPU, NodeCPU.Ceil)
		assert.GreaterOrEqual(t, n.Live.Memory, NodeMemory.Floor)
		assert.LessOrEqual(t, n.Live.Memory, NodeMemory.Ceil)
		assert.GreaterOrEqual(t, n.Live.NetworkRx, NodeNetworkRx.Floor)
		assert.LessOrEqual(t, n.Live.NetworkRx, NodeNetworkRx.Ceil)
		assert.GreaterOrEqual(t, n.Live.Disk, NodeDisk.Floor)
		assert.LessOrEqual(t, n.Live.Disk, NodeDisk.Ceil)
	}
}

func TestDriftNodeSkipsGPUWhenAbsent(t *testing.T) {
	g := New(42, nil)
	nodes, _ := g.FullSnapshot()
	n := nodes[1] // no GPU

	for i := 0; i < 50; i++ {
		g.DriftNode(&n)
	}

	assert.Zero(t, n.Live.GPU)
	assert.Zero(t, n.Live.GPUMemory)
}

func TestDriftServiceStaysWithinRanges(t *testing.T) {
	g := New(42, nil)
	_, services := g.FullSnapshot()
	s := services[0]
	health := s.Health

	for i := 0; i < 500; i++ {
		g.DriftService(&s)

		assert.GreaterOrEqual(t, s.Live.CPU, ServiceCPU.Floor)
		assert.LessOrEqual(t, s.Live.CPU, ServiceCPU.Ceil)
		assert.GreaterOrEqual(t, s.Live.ResponseTime, ServiceResponseTime.Floor)
		assert.LessOrEqual(t, s.Live.ResponseTime, ServiceResponseTime.Ceil)
		assert.GreaterOrEqual(t, s.Live.ErrorRate, ServiceErrorRate.Floor)
		assert.LessOrEqual(t, s.Live.ErrorRate, ServiceErrorRate.Ceil)
	}

	// Drift never touches the health subrecord.
	assert.Equal(t, health, s.Health)
}

func TestDriftIsReproducibleWithSameSeed(t *testing.T) {
	run := func() state.Node {
		g := New(7, nil)
		nodes, _ := g.FullSnapshot()
		n := nodes[0]
		for i := 0; i < 20; i++ {
			g.DriftNode(&n)
		}
		return n
	}

	assert.Equal(t, run(), run())
}
