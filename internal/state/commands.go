package state

import "strings"

// Command is a semantic input action, already translated from whatever
// key produced it.
type Command int

const (
	CmdNone Command = iota
	CmdNavigateUp
	CmdNavigateDown
	CmdSwitchPanel
	CmdNextTab
	CmdPreviousTab
	CmdToggleFilter
	CmdToggleSelection
	CmdNextTheme
	CmdPreviousTheme
	CmdQuit
)

// Apply executes one command against the navigation state and reports
// whether the program should exit. Unknown commands are ignored.
func (s *Store) Apply(cmd Command) (quit bool) {
	switch cmd {
	case CmdNavigateUp:
		s.move(-1)
	case CmdNavigateDown:
		s.move(1)
	case CmdSwitchPanel:
		if s.nav.panel == PanelNodes {
			s.nav.panel = PanelServices
		} else {
			s.nav.panel = PanelNodes
		}
	case CmdNextTab:
		s.nav.tab = (s.nav.tab + 1) % tabCount
	case CmdPreviousTab:
		s.nav.tab = (s.nav.tab + tabCount - 1) % tabCount
	case CmdToggleFilter:
		s.nav.filterEnabled = !s.nav.filterEnabled
		s.clampSelection()
	case CmdToggleSelection:
		s.togglePin()
	case CmdNextTheme:
		s.nav.themeIndex = (s.nav.themeIndex + 1) % s.nav.themeCount
	case CmdPreviousTheme:
		s.nav.themeIndex = (s.nav.themeIndex + s.nav.themeCount - 1) % s.nav.themeCount
	case CmdQuit:
		return true
	}
	return false
}

// move shifts the active panel's selection by delta, wrapping at both ends.
func (s *Store) move(delta int) {
	if s.nav.panel == PanelNodes {
		count := len(s.visibleNodes())
		if count == 0 {
			return
		}
		s.nav.nodeIndex = (s.nav.nodeIndex + delta + count) % count
		return
	}
	count := len(s.visibleServices())
	if count == 0 {
		return
	}
	s.nav.serviceIndex = (s.nav.serviceIndex + delta + count) % count
}

// togglePin flips membership of the currently selected entity in the
// pinned set, keyed by identity so pins survive filter changes.
func (s *Store) togglePin() {
	var name string
	if s.nav.panel == PanelNodes {
		visible := s.visibleNodes()
		if s.nav.nodeIndex >= len(visible) {
			return
		}
		name = visible[s.nav.nodeIndex]
	} else {
		visible := s.visibleServices()
		if s.nav.serviceIndex >= len(visible) {
			return
		}
		name = visible[s.nav.serviceIndex]
	}
	if s.nav.pinned[name] {
		delete(s.nav.pinned, name)
	} else {
		s.nav.pinned[name] = true
	}
}

// visibleNodes returns node names in display order, narrowed by the
// node filter when filtering is enabled.
func (s *Store) visibleNodes() []string {
	if !s.nav.filterEnabled || s.nav.nodeFilter == "" {
		return s.nodeOrder
	}
	var out []string
	for _, name := range s.nodeOrder {
		if strings.Contains(name, s.nav.nodeFilter) {
			out = append(out, name)
		}
	}
	return out
}

// visibleServices returns service names in display order, narrowed by
// the namespace and service filters when filtering is enabled.
func (s *Store) visibleServices() []string {
	if !s.nav.filterEnabled || (s.nav.namespaceFilter == "" && s.nav.serviceFilter == "") {
		return s.serviceOrder
	}
	var out []string
	for _, name := range s.serviceOrder {
		svc := s.services[name]
		if s.nav.namespaceFilter != "" && !strings.Contains(svc.Namespace, s.nav.namespaceFilter) {
			continue
		}
		if s.nav.serviceFilter != "" && !strings.Contains(svc.Name, s.nav.serviceFilter) {
			continue
		}
		out = append(out, name)
	}
	return out
}

// clampSelection pulls both selection indices back into the bounds of
// their current filtered views. Runs after anything that can shrink a
// view so the selection never dangles past the end of a list.
func (s *Store) clampSelection() {
	s.nav.nodeIndex = clampIndex(s.nav.nodeIndex, len(s.visibleNodes()))
	s.nav.serviceIndex = clampIndex(s.nav.serviceIndex, len(s.visibleServices()))
}

func clampIndex(idx, count int) int {
	if count == 0 {
		return 0
	}
	if idx >= count {
		return count - 1
	}
	if idx < 0 {
		return 0
	}
	return idx
}
