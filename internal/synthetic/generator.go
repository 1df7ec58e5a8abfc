// Package synthetic generates plausible metric data for the dashboard when
// no backend is reachable. The full snapshot establishes the identity set
// and baseline values; drift keeps values moving within bounded ranges so
// graphs stay alive instead of flatlining.
package synthetic

import (
	"fmt"
	"math/rand"

	"vigil/internal/state"
)

// NodeSpec names a node the generator should fabricate instead of using
// the built-in catalogue.
type NodeSpec struct {
	Name    string
	Address string
	HasGPU  bool
}

// Generator produces synthetic nodes and services.
type Generator struct {
	rng   *rand.Rand
	specs []NodeSpec
}

// New creates a generator. A fixed seed gives a reproducible drift
// sequence; pass time.Now().UnixNano() for live variation. When specs is
// empty the built-in catalogue supplies the nodes.
func New(seed int64, specs []NodeSpec) *Generator {
	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		specs: specs,
	}
}

// FullSnapshot returns the complete synthetic identity set with baseline
// metrics. Baselines are fixed values, not random, so a freshly seeded
// dashboard always starts from the same picture.
func (g *Generator) FullSnapshot() ([]state.Node, []state.Service) {
	nodes := g.nodes()
	services := catalogueServices()
	return nodes, services
}

func (g *Generator) nodes() []state.Node {
	if len(g.specs) == 0 {
		return catalogueNodes()
	}
	out := make([]state.Node, 0, len(g.specs))
	for i, spec := range g.specs {
		out = append(out, fabricateNode(spec, i))
	}
	return out
}

// fabricateNode builds a node for a configured name. Hardware is picked
// from a small template rotation so multi-node setups look varied.
func fabricateNode(spec NodeSpec, index int) state.Node {
	hw := hardwareTemplates[index%len(hardwareTemplates)]
	live := state.NodeLive{
		CPU:         20 + float64(index%4)*8,
		Memory:      35 + float64(index%5)*6,
		NetworkRx:   120 + float64(index%3)*90,
		NetworkTx:   80 + float64(index%3)*60,
		Disk:        50 + float64(index%4)*5,
		Temperature: 45 + float64(index%3)*7,
		Status:      "Ready",
	}
	if spec.HasGPU {
		hw.GPUModel = "NVIDIA GeForce RTX 3060"
		live.GPU = 40 + float64(index%4)*10
		live.GPUMemory = 45 + float64(index%3)*5
	} else {
		hw.GPUModel = ""
	}
	address := spec.Address
	if address == "" {
		address = fmt.Sprintf("10.0.0.%d", 100+index)
	}
	return state.Node{
		Name:     spec.Name,
		Address:  address,
		Hardware: hw,
		Live:     live,
	}
}

var hardwareTemplates = []state.NodeHardware{
	{CPUModel: "Intel Core i5-12400F", CPUCores: 6, CPUThreads: 12, MemoryGB: 32, DiskGB: 937},
	{CPUModel: "AMD Ryzen 7 5700G", CPUCores: 8, CPUThreads: 16, MemoryGB: 64, DiskGB: 1863},
	{CPUModel: "Intel Core i7-4510U", CPUCores: 2, CPUThreads: 4, MemoryGB: 8, DiskGB: 98},
	{CPUModel: "Intel N100", CPUCores: 4, CPUThreads: 4, MemoryGB: 16, DiskGB: 476},
}

// catalogueNodes is the default homelab node set.
func catalogueNodes() []state.Node {
	return []state.Node{
		{
			Name:    "pesubuntu",
			Address: "192.168.8.106",
			Hardware: state.NodeHardware{
				CPUModel:   "Intel Core i5-12400F",
				CPUCores:   6,
				CPUThreads: 12,
				MemoryGB:   32,
				DiskGB:     937,
				GPUModel:   "AMD Radeon RX 7800 XT",
			},
			Live: state.NodeLive{
				CPU:         25.3,
				Memory:      45.2,
				GPU:         67.8,
				GPUMemory:   55.4,
				NetworkRx:   450.2,
				NetworkTx:   320.8,
				Disk:        52.3,
				Temperature: 65.2,
				Status:      "Ready",
			},
		},
		{
			Name:    "asuna",
			Address: "192.168.8.185",
			Hardware: state.NodeHardware{
				CPUModel:   "Intel Core i7-4510U",
				CPUCores:   2,
				CPUThreads: 4,
				MemoryGB:   8,
				DiskGB:     98,
			},
			Live: state.NodeLive{
				CPU:         42.7,
				Memory:      68.9,
				NetworkRx:   125.4,
				NetworkTx:   98.7,
				Disk:        78.5,
				Temperature: 42.1,
				Status:      "Ready",
			},
		},
	}
}

// catalogueServices is the default service set, in display order. One
// service is degraded and one unhealthy so the health column exercises
// every state out of the box.
func catalogueServices() []state.Service {
	mk := func(name string, live state.ServiceLive, health state.ServiceHealth) state.Service {
		return state.Service{Name: name, Namespace: "homelab", Live: live, Health: health}
	}
	return []state.Service{
		mk("n8n-0",
			state.ServiceLive{CPU: 15.2, Memory: 35.8, RequestsPerSec: 45.3, ResponseTime: 125.4, ErrorRate: 0.2, Status: "Running", Replicas: 1, ReadyReplicas: 1},
			state.ServiceHealth{State: state.HealthHealthy, Endpoint: "http://n8n.homelab.svc.cluster.local:5678/healthz", ResponseTime: 45.2}),
		mk("postgres-0",
			state.ServiceLive{CPU: 8.7, Memory: 25.4, RequestsPerSec: 125.8, ResponseTime: 45.2, Status: "Running", Replicas: 1, ReadyReplicas: 1},
			state.ServiceHealth{State: state.HealthHealthy, Endpoint: "postgres://postgres.homelab.svc.cluster.local:5432/homelab", ResponseTime: 12.8}),
		mk("redis-0",
			state.ServiceLive{CPU: 3.2, Memory: 18.9, RequestsPerSec: 280.5, ResponseTime: 12.3, Status: "Running", Replicas: 1, ReadyReplicas: 1},
			state.ServiceHealth{State: state.HealthHealthy, Endpoint: "redis://redis.homelab.svc.cluster.local:6379", ResponseTime: 8.4}),
		mk("prometheus-0",
			state.ServiceLive{CPU: 22.4, Memory: 42.1, RequestsPerSec: 89.3, ResponseTime: 89.7, Status: "Running", Replicas: 1, ReadyReplicas: 1},
			state.ServiceHealth{State: state.HealthHealthy, Endpoint: "http://prometheus.homelab.svc.cluster.local:9090/-/healthy", ResponseTime: 15.3}),
		mk("grafana-0",
			state.ServiceLive{CPU: 12.8, Memory: 28.3, RequestsPerSec: 23.4, ResponseTime: 156.8, ErrorRate: 0.1, Status: "Running", Replicas: 1, ReadyReplicas: 1},
			state.ServiceHealth{State: state.HealthHealthy, Endpoint: "http://grafana.homelab.svc.cluster.local:3000/api/health", ResponseTime: 22.1}),
		mk("qdrant-0",
			state.ServiceLive{CPU: 18.5, Memory: 38.7, RequestsPerSec: 67.2, ResponseTime: 234.5, ErrorRate: 0.3, Status: "Running", Replicas: 1, ReadyReplicas: 1},
			state.ServiceHealth{State: state.HealthDegraded, Endpoint: "http://qdrant.homelab.svc.cluster.local:6333/health", ResponseTime: 125.6, ConsecutiveFailures: 2}),
		mk("flowise-0",
			state.ServiceLive{CPU: 25.9, Memory: 45.2, RequestsPerSec: 34.6, ResponseTime: 456.7, ErrorRate: 1.2, Status: "Running", Replicas: 1, ReadyReplicas: 1},
			state.ServiceHealth{State: state.HealthUnhealthy, Endpoint: "http://flowise.homelab.svc.cluster.local:3000/api/v1/health", ConsecutiveFailures: 5}),
	}
}
