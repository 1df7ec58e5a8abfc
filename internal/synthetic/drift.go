package synthetic

import (
	"math/rand"

	"vigil/internal/state"
)

// Range is one metric's per-step drift: a random delta drawn from
// [DeltaMin, DeltaMax), then clamped into [Floor, Ceil]. Asymmetric deltas
// give a direction bias (network counters trend up, error rates decay).
type Range struct {
	DeltaMin float64
	DeltaMax float64
	Floor    float64
	Ceil     float64
}

func (r Range) step(rng *rand.Rand, v float64) float64 {
	v += r.DeltaMin + rng.Float64()*(r.DeltaMax-r.DeltaMin)
	if v < r.Floor {
		return r.Floor
	}
	if v > r.Ceil {
		return r.Ceil
	}
	return v
}

// Per-field drift ranges for nodes.
var (
	NodeCPU         = Range{-0.5, 0.5, 10, 95}
	NodeMemory      = Range{-0.3, 0.3, 20, 85}
	NodeGPU         = Range{-1.0, 1.0, 0, 100}
	NodeGPUMemory   = Range{-0.2, 0.2, 30, 70}
	NodeNetworkRx   = Range{-10, 20, 0, 1000}
	NodeNetworkTx   = Range{-8, 15, 0, 800}
	NodeDisk        = Range{-0.1, 0.1, 40, 90}
	NodeTemperature = Range{-0.3, 0.4, 30, 85}
)

// Per-field drift ranges for services.
var (
	ServiceCPU          = Range{-0.2, 0.3, 0.5, 80}
	ServiceMemory       = Range{-0.1, 0.2, 10, 75}
	ServiceRequests     = Range{-1, 2, 0, 200}
	ServiceResponseTime = Range{-5, 10, 50, 500}
	ServiceErrorRate    = Range{-0.05, 0.1, 0, 5}
)

// DriftNode nudges a node's live metrics within their ranges. GPU fields
// only move on nodes that actually report GPU activity, so GPU-less rows
// stay at zero instead of being dragged up to a clamp floor.
func (g *Generator) DriftNode(n *state.Node) {
	n.Live.CPU = NodeCPU.step(g.rng, n.Live.CPU)
	n.Live.Memory = NodeMemory.step(g.rng, n.Live.Memory)
	if n.Live.GPU > 0 || n.Live.GPUMemory > 0 {
		n.Live.GPU = NodeGPU.step(g.rng, n.Live.GPU)
		n.Live.GPUMemory = NodeGPUMemory.step(g.rng, n.Live.GPUMemory)
	}
	n.Live.NetworkRx = NodeNetworkRx.step(g.rng, n.Live.NetworkRx)
	n.Live.NetworkTx = NodeNetworkTx.step(g.rng, n.Live.NetworkTx)
	n.Live.Disk = NodeDisk.step(g.rng, n.Live.Disk)
	n.Live.Temperature = NodeTemperature.step(g.rng, n.Live.Temperature)
}

// DriftService nudges a service's live metrics within their ranges. The
// health subrecord is deliberately untouched.
func (g *Generator) DriftService(s *state.Service) {
	s.Live.CPU = ServiceCPU.step(g.rng, s.Live.CPU)
	s.Live.Memory = ServiceMemory.step(g.rng, s.Live.Memory)
	s.Live.RequestsPerSec = ServiceRequests.step(g.rng, s.Live.RequestsPerSec)
	s.Live.ResponseTime = ServiceResponseTime.step(g.rng, s.Live.ResponseTime)
	s.Live.ErrorRate = ServiceErrorRate.step(g.rng, s.Live.ErrorRate)
}
