package state

import "time"

// NodeHardware holds static hardware descriptors for a node.
// These are set once at first insertion and never overwritten by a refresh.
type NodeHardware struct {
	CPUModel   string
	CPUCores   int
	CPUThreads int
	MemoryGB   float64
	DiskGB     float64
	GPUModel   string
}

// NodeLive holds the live metrics for a node. This is the only part of a
// Node that reconciliation replaces.
type NodeLive struct {
	CPU         float64 // percent
	Memory      float64 // percent
	GPU         float64 // percent
	GPUMemory   float64 // percent
	NetworkRx   float64 // MB/s
	NetworkTx   float64 // MB/s
	Disk        float64 // percent
	Temperature float64 // celsius
	Status      string
}

// Node is a monitored machine.
type Node struct {
	Name     string
	Address  string
	Hardware NodeHardware
	Live     NodeLive
}

// ServiceLive holds the live metrics for a service.
type ServiceLive struct {
	CPU            float64 // percent
	Memory         float64 // percent
	RequestsPerSec float64
	ResponseTime   float64 // ms
	ErrorRate      float64 // percent
	Status         string
	ReadyReplicas  int
	Replicas       int
}

// HealthState is the closed set of health-probe outcomes.
type HealthState int

const (
	HealthUnknown HealthState = iota
	HealthHealthy
	HealthDegraded
	HealthUnhealthy
)

// String returns a human-readable health state.
func (h HealthState) String() string {
	switch h {
	case HealthHealthy:
		return "healthy"
	case HealthDegraded:
		return "degraded"
	case HealthUnhealthy:
		return "unhealthy"
	default:
		return "unknown"
	}
}

// ServiceHealth is the probe subrecord. It is updated by the health path
// only; resource-metric reconciliation never touches it, so a fetch failure
// cannot corrupt health state.
type ServiceHealth struct {
	State               HealthState
	Endpoint            string
	LastCheck           time.Time
	ResponseTime        float64 // ms
	ConsecutiveFailures int
}

// Service is a monitored workload.
type Service struct {
	Name      string
	Namespace string
	Live      ServiceLive
	Health    ServiceHealth
}

// ConnState enumerates backend connection states.
type ConnState int

const (
	StateConnecting ConnState = iota
	StateConnected
	StateDisconnected
)

// ConnectionStatus is the tagged connection state shown in the header.
// Reason is only meaningful for StateDisconnected.
type ConnectionStatus struct {
	State  ConnState
	Reason string
}

// String returns a human-readable status string.
func (c ConnectionStatus) String() string {
	switch c.State {
	case StateConnected:
		return "connected"
	case StateDisconnected:
		if c.Reason != "" {
			return "disconnected: " + c.Reason
		}
		return "disconnected"
	default:
		return "connecting"
	}
}

// Connected returns a Connected status.
func Connected() ConnectionStatus {
	return ConnectionStatus{State: StateConnected}
}

// Disconnected returns a Disconnected status with the given reason.
func Disconnected(reason string) ConnectionStatus {
	return ConnectionStatus{State: StateDisconnected, Reason: reason}
}

// Source identifies which feed supplied the most recent successful update.
type Source int

const (
	SourceNone Source = iota
	SourceBackend
	SourceSynthetic
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceBackend:
		return "backend"
	case SourceSynthetic:
		return "synthetic"
	default:
		return "none"
	}
}

// FetchResult carries one fetch outcome into reconciliation.
// Nodes and Services are value snapshots in the adapter's deterministic
// order; the adapter retains no reference to them after handoff.
type FetchResult struct {
	// Generation is a monotonically increasing fetch number. Reconcile
	// discards results whose generation is not newer than the last
	// committed one (last-committed-wins).
	Generation uint64

	// Updated is false when the fetch was throttled; nothing else is set.
	Updated bool

	// Err is the transport failure, if any. When set, Nodes/Services are
	// ignored and the store degrades to drift mode.
	Err error

	Nodes    []Node
	Services []Service
}

// Tab enumerates the dashboard tabs.
type Tab int

const (
	TabOverview Tab = iota
	TabNodes
	TabServices
	TabCompare
	tabCount
)

// String returns the tab title.
func (t Tab) String() string {
	switch t {
	case TabNodes:
		return "Nodes"
	case TabServices:
		return "Services"
	case TabCompare:
		return "Compare"
	default:
		return "Overview"
	}
}

// Panel enumerates the selectable panels.
type Panel int

const (
	PanelNodes Panel = iota
	PanelServices
)
