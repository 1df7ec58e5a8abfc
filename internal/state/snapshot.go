package state

import "time"

// NavView is the navigation state as seen by a renderer.
type NavView struct {
	Tab           Tab
	Panel         Panel
	NodeIndex     int
	ServiceIndex  int
	FilterEnabled bool
	ThemeIndex    int
	Pinned        map[string]bool
}

// Snapshot is a read-only view of the store for one render pass. Records
// are copied by value so a renderer can never mutate live state.
type Snapshot struct {
	Nodes    []Node
	Services []Service

	NodeHistory    map[string][]float64
	ServiceHistory map[string][]float64

	Status     ConnectionStatus
	Source     Source
	LastUpdate time.Time

	Nav NavView
}

// Snapshot materialises the current filtered views in display order. The
// selection indices are clamped first so the returned indices are always
// valid for the returned slices.
func (s *Store) Snapshot() Snapshot {
	s.clampSelection()

	nodeNames := s.visibleNodes()
	serviceNames := s.visibleServices()

	snap := Snapshot{
		Nodes:          make([]Node, 0, len(nodeNames)),
		Services:       make([]Service, 0, len(serviceNames)),
		NodeHistory:    make(map[string][]float64, len(nodeNames)),
		ServiceHistory: make(map[string][]float64, len(serviceNames)),
		Status:         s.status,
		Source:         s.source,
		LastUpdate:     s.lastUpdate,
		Nav: NavView{
			Tab:           s.nav.tab,
			Panel:         s.nav.panel,
			NodeIndex:     s.nav.nodeIndex,
			ServiceIndex:  s.nav.serviceIndex,
			FilterEnabled: s.nav.filterEnabled,
			ThemeIndex:    s.nav.themeIndex,
			Pinned:        make(map[string]bool, len(s.nav.pinned)),
		},
	}

	for _, name := range nodeNames {
		snap.Nodes = append(snap.Nodes, *s.nodes[name])
		snap.NodeHistory[name] = s.nodeHistory.All(name)
	}
	for _, name := range serviceNames {
		snap.Services = append(snap.Services, *s.services[name])
		snap.ServiceHistory[name] = s.serviceHistory.All(name)
	}
	for name := range s.nav.pinned {
		snap.Nav.Pinned[name] = true
	}
	return snap
}
