package dash

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vigil/internal/state"
)

// Layout carries the configured percentage splits.
type Layout struct {
	// MainSplit is [nodes, services] for the overview tab.
	MainSplit []int
	// NodeSplit is [specs, graph] inside the node detail.
	NodeSplit []int
	// ServiceSplit is [metrics, health] inside the service detail.
	ServiceSplit []int
}

// SetLayout overrides the default 50/50 splits.
func (m *Model) SetLayout(l Layout) {
	m.layout = l
}

func splitAt(total int, split []int) (int, int) {
	if total < 2 {
		return total, 0
	}
	pct := 50
	if len(split) == 2 && split[0] > 0 {
		pct = split[0]
	}
	first := total * pct / 100
	if first < 1 {
		first = 1
	}
	return first, total - first
}

func (m Model) render() string {
	snap := m.store.Snapshot()
	theme := ThemeByIndex(snap.Nav.ThemeIndex)

	var body string
	if m.showHelp {
		body = m.renderHelp(theme)
	} else {
		switch snap.Nav.Tab {
		case state.TabOverview:
			body = m.renderOverview(snap, theme)
		case state.TabNodes:
			body = m.renderNodesTab(snap, theme)
		case state.TabServices:
			body = m.renderServicesTab(snap, theme)
		case state.TabCompare:
			body = m.renderCompare(snap, theme)
		}
	}
	if m.bodyReady {
		vp := m.body
		vp.SetContent(body)
		body = vp.View()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(snap, theme))
	b.WriteString("\n")
	b.WriteString(m.renderTabs(snap, theme))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.renderFooter(snap, theme))
	return b.String()
}

// renderHeader shows the product name, connection status, entity counts,
// data source, and active theme.
func (m Model) renderHeader(snap state.Snapshot, theme Theme) string {
	title := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("vigil")

	var conn string
	switch snap.Status.State {
	case state.StateConnected:
		conn = lipgloss.NewStyle().Foreground(theme.Healthy).Render("● connected")
	case state.StateDisconnected:
		reason := snap.Status.Reason
		if reason == "" {
			reason = "backend unreachable"
		}
		conn = lipgloss.NewStyle().Foreground(theme.Critical).Render("○ " + reason)
	default:
		conn = lipgloss.NewStyle().Foreground(theme.TextSecondary).Render("◐ connecting")
	}

	source := ""
	if snap.Source == state.SourceSynthetic {
		source = lipgloss.NewStyle().Foreground(theme.Warning).Render(" [synthetic]")
	}

	stats := lipgloss.NewStyle().Foreground(theme.TextSecondary).Render(
		fmt.Sprintf(" | %d nodes | %d services | %s", len(snap.Nodes), len(snap.Services), theme.Name))

	return lipgloss.NewStyle().Background(theme.Surface).Padding(0, 1).
		Render(title + " " + conn + source + stats)
}

func (m Model) renderTabs(snap state.Snapshot, theme Theme) string {
	active := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Underline(true)
	inactive := lipgloss.NewStyle().Foreground(theme.TextMuted)

	parts := make([]string, 0, 4)
	for t := state.TabOverview; t <= state.TabCompare; t++ {
		label := " " + t.String() + " "
		if t == snap.Nav.Tab {
			parts = append(parts, active.Render(label))
		} else {
			parts = append(parts, inactive.Render(label))
		}
	}
	return strings.Join(parts, "|")
}

// renderOverview stacks the node table above the service table. When the
// terminal height is known, each table is capped to its configured share
// so a long service list cannot push the nodes offscreen.
func (m Model) renderOverview(snap state.Snapshot, theme Theme) string {
	nodes := m.renderNodeTable(snap, theme, snap.Nav.Panel == state.PanelNodes)
	services := m.renderServiceTable(snap, theme, snap.Nav.Panel == state.PanelServices)

	if m.height > 0 {
		bodyHeight := m.height - 6
		if bodyHeight > 4 {
			nodeRows, serviceRows := splitAt(bodyHeight, m.layout.MainSplit)
			nodes = capLines(nodes, nodeRows, theme)
			services = capLines(services, serviceRows, theme)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, nodes, "", services)
}

// capLines truncates s to at most n lines, replacing the overflow with a
// count of hidden rows.
func capLines(s string, n int, theme Theme) string {
	if n < 2 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	hidden := len(lines) - (n - 1)
	kept := lines[:n-1]
	more := lipgloss.NewStyle().Foreground(theme.TextMuted).
		Render(fmt.Sprintf("  … %d more", hidden))
	return strings.Join(append(kept, more), "\n")
}

func (m Model) renderNodeTable(snap state.Snapshot, theme Theme, focused bool) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.TextSecondary).Bold(true)
	if focused {
		titleStyle = titleStyle.Foreground(theme.Accent)
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("NODES"))
	b.WriteString("\n")

	if len(snap.Nodes) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextMuted).Render("  no nodes"))
		return b.String()
	}

	header := fmt.Sprintf("  %-14s %-16s %6s %6s %6s %8s %8s %6s  %s",
		"NAME", "ADDRESS", "CPU", "MEM", "DISK", "RX", "TX", "TEMP", "TREND")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextMuted).Render(header))
	b.WriteString("\n")

	for i, n := range snap.Nodes {
		marker := "  "
		rowStyle := lipgloss.NewStyle().Foreground(theme.TextPrimary)
		if focused && i == snap.Nav.NodeIndex {
			marker = "> "
			rowStyle = rowStyle.Foreground(theme.Accent).Bold(true)
		}
		if snap.Nav.Pinned[n.Name] {
			marker = strings.Replace(marker, " ", "*", 1)
		}

		row := fmt.Sprintf("%-14s %-16s %5.1f%% %5.1f%% %5.1f%% %7.1fM %7.1fM %5.1f°",
			n.Name, n.Address, n.Live.CPU, n.Live.Memory, n.Live.Disk,
			n.Live.NetworkRx, n.Live.NetworkTx, n.Live.Temperature)
		trend := Sparkline(snap.NodeHistory[n.Name], 12, theme)

		b.WriteString(rowStyle.Render(marker+row) + "  " + trend)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderServiceTable(snap state.Snapshot, theme Theme, focused bool) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.TextSecondary).Bold(true)
	if focused {
		titleStyle = titleStyle.Foreground(theme.Accent)
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("SERVICES"))
	b.WriteString("\n")

	if len(snap.Services) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextMuted).Render("  no services"))
		return b.String()
	}

	header := fmt.Sprintf("  %-16s %-12s %-8s %6s %6s %8s %8s %6s  %s",
		"NAME", "NAMESPACE", "STATUS", "CPU", "MEM", "REQ/S", "RT(MS)", "ERR%", "HEALTH")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextMuted).Render(header))
	b.WriteString("\n")

	for i, s := range snap.Services {
		marker := "  "
		rowStyle := lipgloss.NewStyle().Foreground(theme.TextPrimary)
		if focused && i == snap.Nav.ServiceIndex {
			marker = "> "
			rowStyle = rowStyle.Foreground(theme.Accent).Bold(true)
		}
		if snap.Nav.Pinned[s.Name] {
			marker = strings.Replace(marker, " ", "*", 1)
		}

		row := fmt.Sprintf("%-16s %-12s %-8s %5.1f%% %5.1f%% %8.1f %8.1f %5.2f%%",
			s.Name, s.Namespace, s.Live.Status, s.Live.CPU, s.Live.Memory,
			s.Live.RequestsPerSec, s.Live.ResponseTime, s.Live.ErrorRate)

		b.WriteString(rowStyle.Render(marker+row) + "  " + m.healthBadge(s.Health.State, theme))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) healthBadge(h state.HealthState, theme Theme) string {
	switch h {
	case state.HealthHealthy:
		return lipgloss.NewStyle().Foreground(theme.Healthy).Render("● " + h.String())
	case state.HealthDegraded:
		return lipgloss.NewStyle().Foreground(theme.Warning).Render("◐ " + h.String())
	case state.HealthUnhealthy:
		return lipgloss.NewStyle().Foreground(theme.Critical).Render("○ " + h.String())
	default:
		return lipgloss.NewStyle().Foreground(theme.TextMuted).Render("? " + h.String())
	}
}

// renderNodesTab shows the node table plus a detail card for the
// selected node: hardware specs on the left, trend graph on the right.
func (m Model) renderNodesTab(snap state.Snapshot, theme Theme) string {
	table := m.renderNodeTable(snap, theme, true)
	if len(snap.Nodes) == 0 {
		return table
	}

	n := snap.Nodes[snap.Nav.NodeIndex]
	width := m.width
	if width <= 0 {
		width = 100
	}
	specWidth, graphWidth := splitAt(width-6, m.layout.NodeSplit)

	label := lipgloss.NewStyle().Foreground(theme.TextSecondary)
	value := lipgloss.NewStyle().Foreground(theme.TextPrimary)

	var specs strings.Builder
	specs.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(n.Name) + "\n")
	specs.WriteString(label.Render("cpu     ") + value.Render(fmt.Sprintf("%s (%dc/%dt)", n.Hardware.CPUModel, n.Hardware.CPUCores, n.Hardware.CPUThreads)) + "\n")
	specs.WriteString(label.Render("memory  ") + value.Render(fmt.Sprintf("%.0f GB", n.Hardware.MemoryGB)) + "\n")
	specs.WriteString(label.Render("disk    ") + value.Render(fmt.Sprintf("%.0f GB", n.Hardware.DiskGB)) + "\n")
	if n.Hardware.GPUModel != "" {
		specs.WriteString(label.Render("gpu     ") + value.Render(n.Hardware.GPUModel) + "\n")
	}
	specs.WriteString("\n")
	gaugeWidth := specWidth - 14
	if gaugeWidth < 10 {
		gaugeWidth = 10
	}
	specs.WriteString(label.Render("cpu   ") + Gauge(n.Live.CPU, gaugeWidth, theme) + value.Render(fmt.Sprintf(" %5.1f%%", n.Live.CPU)) + "\n")
	specs.WriteString(label.Render("mem   ") + Gauge(n.Live.Memory, gaugeWidth, theme) + value.Render(fmt.Sprintf(" %5.1f%%", n.Live.Memory)) + "\n")
	specs.WriteString(label.Render("disk  ") + Gauge(n.Live.Disk, gaugeWidth, theme) + value.Render(fmt.Sprintf(" %5.1f%%", n.Live.Disk)))
	if n.Hardware.GPUModel != "" {
		specs.WriteString("\n" + label.Render("gpu   ") + Gauge(n.Live.GPU, gaugeWidth, theme) + value.Render(fmt.Sprintf(" %5.1f%%", n.Live.GPU)))
	}

	graph := BrailleGraph(snap.NodeHistory[n.Name], maxInt(graphWidth-2, 10), 4, theme)
	card := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(specWidth).Render(specs.String()),
		graph)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(card)

	return lipgloss.JoinVertical(lipgloss.Left, table, "", box)
}

// renderServicesTab shows the service table plus the selected service's
// live metrics and health probe detail.
func (m Model) renderServicesTab(snap state.Snapshot, theme Theme) string {
	table := m.renderServiceTable(snap, theme, true)
	if len(snap.Services) == 0 {
		return table
	}

	s := snap.Services[snap.Nav.ServiceIndex]
	label := lipgloss.NewStyle().Foreground(theme.TextSecondary)
	value := lipgloss.NewStyle().Foreground(theme.TextPrimary)

	var metrics strings.Builder
	metrics.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(s.Name) + "  " + label.Render(s.Namespace) + "\n")
	metrics.WriteString(label.Render("replicas  ") + value.Render(fmt.Sprintf("%d/%d ready", s.Live.ReadyReplicas, s.Live.Replicas)) + "\n")
	metrics.WriteString(label.Render("requests  ") + value.Render(fmt.Sprintf("%.1f/s", s.Live.RequestsPerSec)) + "\n")
	metrics.WriteString(label.Render("latency   ") + value.Render(fmt.Sprintf("%.1f ms", s.Live.ResponseTime)) + "\n")
	metrics.WriteString(label.Render("errors    ") + value.Render(fmt.Sprintf("%.2f%%", s.Live.ErrorRate)))

	var health strings.Builder
	health.WriteString(m.healthBadge(s.Health.State, theme) + "\n")
	if s.Health.Endpoint != "" {
		health.WriteString(label.Render("endpoint  ") + value.Render(s.Health.Endpoint) + "\n")
	}
	health.WriteString(label.Render("probe rt  ") + value.Render(fmt.Sprintf("%.1f ms", s.Health.ResponseTime)) + "\n")
	health.WriteString(label.Render("failures  ") + value.Render(fmt.Sprintf("%d consecutive", s.Health.ConsecutiveFailures)))

	width := m.width
	if width <= 0 {
		width = 100
	}
	metricsWidth, _ := splitAt(width-6, m.layout.ServiceSplit)

	card := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(metricsWidth).Render(metrics.String()),
		health.String())

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(card)

	return lipgloss.JoinVertical(lipgloss.Left, table, "", box)
}

// renderCompare shows pinned entities side by side with their trends.
func (m Model) renderCompare(snap state.Snapshot, theme Theme) string {
	if len(snap.Nav.Pinned) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextMuted).
			Render("Nothing pinned. Press space on a row to pin it for comparison.")
	}

	label := lipgloss.NewStyle().Foreground(theme.TextSecondary)
	name := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var b strings.Builder
	for _, n := range snap.Nodes {
		if !snap.Nav.Pinned[n.Name] {
			continue
		}
		b.WriteString(name.Render(n.Name) + label.Render(fmt.Sprintf("  node  cpu %.1f%%", n.Live.CPU)) + "\n")
		b.WriteString(Sparkline(snap.NodeHistory[n.Name], 40, theme) + "\n\n")
	}
	for _, s := range snap.Services {
		if !snap.Nav.Pinned[s.Name] {
			continue
		}
		b.WriteString(name.Render(s.Name) + label.Render(fmt.Sprintf("  service  cpu %.1f%%", s.Live.CPU)) + "\n")
		b.WriteString(Sparkline(snap.ServiceHistory[s.Name], 40, theme) + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderFooter(snap state.Snapshot, theme Theme) string {
	hints := []string{
		"q quit",
		"tab panel",
		"[/] tabs",
		"↑↓ select",
		"space pin",
		"r filter",
		"t/T theme",
		"? help",
	}
	footer := strings.Join(hints, " | ")
	if snap.Nav.FilterEnabled {
		footer += " | " + lipgloss.NewStyle().Foreground(theme.Warning).Render("FILTER")
	}
	return lipgloss.NewStyle().Foreground(theme.TextMuted).Padding(0, 1).Render(footer)
}

func (m Model) renderHelp(theme Theme) string {
	rows := [][2]string{
		{"↑/k, ↓/j", "move selection in the active panel"},
		{"tab", "switch between node and service panels"},
		{"[ / ]", "previous / next tab"},
		{"space", "pin or unpin the selected row"},
		{"r", "toggle the configured filters"},
		{"t / T", "next / previous theme"},
		{"?", "toggle this help"},
		{"q, ctrl+c", "quit"},
	}

	key := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextSecondary)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextPrimary).Bold(true).Render("Keys") + "\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n", key.Render(fmt.Sprintf("%-10s", r[0])), desc.Render(r[1])))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(strings.TrimRight(b.String(), "\n"))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
