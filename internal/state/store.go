package state

import (
	"time"

	"vigil/internal/errors"
	"vigil/internal/logger"
)

// Synthesizer supplies fallback data: a complete snapshot for seeding and
// bounded-drift mutators for keeping displayed values alive while the
// backend is unreachable.
type Synthesizer interface {
	FullSnapshot() ([]Node, []Service)
	DriftNode(*Node)
	DriftService(*Service)
}

// Options configures a Store.
type Options struct {
	// Retention bounds the per-entity history buffers.
	Retention int

	// RefreshRateMS is the tick period; one history sample is taken every
	// ceil(1000/RefreshRateMS) ticks, decoupling the sampling cadence from
	// the redraw cadence.
	RefreshRateMS int

	// ThemeCount is the number of themes the theme commands cycle through.
	ThemeCount int

	// ThemeIndex is the initial theme.
	ThemeIndex int

	Logger logger.Logger
}

// Store is the authoritative in-memory model of nodes, services, bounded
// history, connection status, and navigation state. It is mutated only by
// the owning program loop; reads happen through Snapshot.
type Store struct {
	nodeOrder    []string
	nodes        map[string]*Node
	serviceOrder []string
	services     map[string]*Service

	nodeHistory    *History
	serviceHistory *History

	status     ConnectionStatus
	source     Source
	lastGen    uint64
	lastUpdate time.Time

	ticks       uint64
	sampleEvery uint64

	nav nav

	synth Synthesizer
	log   logger.Logger
}

// nav holds navigation and selection state.
type nav struct {
	tab             Tab
	panel           Panel
	nodeIndex       int
	serviceIndex    int
	filterEnabled   bool
	nodeFilter      string
	namespaceFilter string
	serviceFilter   string
	pinned          map[string]bool
	themeIndex      int
	themeCount      int
}

// NewStore creates an empty store. The identity set is established by the
// first reconciliation: from the backend candidate on success, or from the
// synthesizer's full snapshot when the backend never answers.
func NewStore(synth Synthesizer, opts Options) *Store {
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	sampleEvery := uint64(1)
	if opts.RefreshRateMS > 0 {
		sampleEvery = uint64((1000 + opts.RefreshRateMS - 1) / opts.RefreshRateMS)
	}
	if sampleEvery == 0 {
		sampleEvery = 1
	}

	themeCount := opts.ThemeCount
	if themeCount <= 0 {
		themeCount = 1
	}

	return &Store{
		nodes:          make(map[string]*Node),
		services:       make(map[string]*Service),
		nodeHistory:    NewHistory(opts.Retention),
		serviceHistory: NewHistory(opts.Retention),
		status:         ConnectionStatus{State: StateConnecting},
		sampleEvery:    sampleEvery,
		nav: nav{
			pinned:     make(map[string]bool),
			themeIndex: opts.ThemeIndex % themeCount,
			themeCount: themeCount,
		},
		synth: synth,
		log:   log,
	}
}

// Reconcile merges one fetch result into the store and returns the
// resulting connection status.
//
// On success, live-metric fields are copied into known records; identities
// beyond an already-seeded set are ignored so row order and selection
// indices never shift from a routine poll. On failure, existing records
// drift within bounded ranges instead of freezing. An empty store is
// seeded: from the candidate on success, from the synthesizer on failure.
func (s *Store) Reconcile(res FetchResult) ConnectionStatus {
	// Throttled call: nothing changed upstream.
	if !res.Updated && res.Err == nil {
		return s.status
	}

	// A result older than the last committed one is stale; keep the
	// committed state (last-committed-wins, not last-issued-wins).
	if res.Generation != 0 && res.Generation <= s.lastGen {
		s.log.Debug("discarding stale fetch result (gen %d <= %d)", res.Generation, s.lastGen)
		return s.status
	}
	s.lastGen = res.Generation

	if res.Err != nil {
		if s.empty() {
			s.seedSynthetic()
		}
		s.driftAll()
		s.status = Disconnected(errors.Reason(res.Err))
		s.lastUpdate = time.Now()
		return s.status
	}

	if len(s.nodeOrder) == 0 {
		s.seedNodes(res.Nodes)
	} else {
		s.mergeNodes(res.Nodes)
	}

	if len(s.serviceOrder) == 0 {
		s.seedServices(res.Services)
	} else {
		s.mergeServices(res.Services)
	}

	if s.status.State != StateConnected {
		s.log.Info("backend connection established")
	}
	s.status = Connected()
	s.source = SourceBackend
	s.lastUpdate = time.Now()
	return s.status
}

// Tick advances the scheduler. Every sampleEvery ticks the current cpu%
// of every tracked entity is appended to its bounded history series.
func (s *Store) Tick() {
	s.ticks++
	if s.ticks%s.sampleEvery != 0 {
		return
	}

	for _, name := range s.nodeOrder {
		s.nodeHistory.Push(name, s.nodes[name].Live.CPU)
	}
	for _, name := range s.serviceOrder {
		s.serviceHistory.Push(name, s.services[name].Live.CPU)
	}
}

// ResetTicks restarts the sampling cadence. Buffer contents are unaffected.
func (s *Store) ResetTicks() {
	s.ticks = 0
}

// Ticks returns the current tick count.
func (s *Store) Ticks() uint64 {
	return s.ticks
}

// Status returns the current connection status.
func (s *Store) Status() ConnectionStatus {
	return s.status
}

// Source returns which feed supplied the most recent update.
func (s *Store) Source() Source {
	return s.source
}

// SetFilters sets the free-text filter predicates. Empty strings match
// everything. The filters only apply while filtering is toggled on.
func (s *Store) SetFilters(node, namespace, service string) {
	s.nav.nodeFilter = node
	s.nav.namespaceFilter = namespace
	s.nav.serviceFilter = service
	s.clampSelection()
}

func (s *Store) empty() bool {
	return len(s.nodeOrder) == 0 && len(s.serviceOrder) == 0
}

// seedNodes establishes the node identity set and display order.
// This is one of the only two paths allowed to grow the key set.
func (s *Store) seedNodes(nodes []Node) {
	for _, n := range nodes {
		if _, ok := s.nodes[n.Name]; ok {
			continue
		}
		record := n
		s.nodes[n.Name] = &record
		s.nodeOrder = append(s.nodeOrder, n.Name)
	}
}

func (s *Store) seedServices(services []Service) {
	for _, svc := range services {
		if _, ok := s.services[svc.Name]; ok {
			continue
		}
		record := svc
		s.services[svc.Name] = &record
		s.serviceOrder = append(s.serviceOrder, svc.Name)
	}
}

// seedSynthetic seeds the full identity set from the synthesizer.
func (s *Store) seedSynthetic() {
	if s.synth == nil {
		return
	}
	nodes, services := s.synth.FullSnapshot()
	s.seedNodes(nodes)
	s.seedServices(services)
	s.source = SourceSynthetic
	s.log.Info("seeded %d nodes and %d services from synthetic data", len(nodes), len(services))
}

// mergeNodes copies live-metric fields from candidates into known records.
// Identity and hardware descriptors are never overwritten; unknown
// identities are ignored.
func (s *Store) mergeNodes(nodes []Node) {
	for _, candidate := range nodes {
		existing, ok := s.nodes[candidate.Name]
		if !ok {
			continue
		}
		existing.Live = candidate.Live
	}
}

// mergeServices copies live-metric fields from candidates into known
// records. The health subrecord is owned by the probe path and is never
// touched here.
func (s *Store) mergeServices(services []Service) {
	for _, candidate := range services {
		existing, ok := s.services[candidate.Name]
		if !ok {
			continue
		}
		existing.Live = candidate.Live
	}
}

// driftAll applies bounded drift to every record so graphs keep gentle
// variation while the backend is unreachable.
func (s *Store) driftAll() {
	if s.synth == nil {
		return
	}
	for _, name := range s.nodeOrder {
		s.synth.DriftNode(s.nodes[name])
	}
	for _, name := range s.serviceOrder {
		s.synth.DriftService(s.services[name])
	}
}
