package dash

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"vigil/internal/logger"
	"vigil/internal/state"
)

// Fetcher supplies fetch results. Implemented by the collector; fakes
// stand in for it in tests.
type Fetcher interface {
	Fetch(ctx context.Context) state.FetchResult
}

// Model is the Bubble Tea model for the dashboard. All domain state
// lives in the store; the model owns only presentation concerns.
type Model struct {
	store    *state.Store
	fetcher  Fetcher
	interval time.Duration

	width    int
	height   int
	layout   Layout
	showHelp bool
	quitting bool

	// body is a scrollable viewport for the tab content so tall tables
	// stay reachable on short terminals.
	body      viewport.Model
	bodyReady bool

	log logger.Logger
}

// tickMsg signals a redraw/sampling tick.
type tickMsg time.Time

// fetchMsg carries one fetch result back into the program loop.
type fetchMsg state.FetchResult

// NewModel creates a dashboard model. interval is the tick period; the
// fetcher throttles itself, so fetching on every tick is cheap.
func NewModel(store *state.Store, fetcher Fetcher, interval time.Duration, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return Model{
		store:    store,
		fetcher:  fetcher,
		interval: interval,
		log:      log,
	}
}

// Init starts the tick timer and triggers the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.fetchCmd())
}

// Update handles messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Header, tab bar, and footer take fixed rows; the body
		// viewport gets the rest.
		bodyHeight := m.height - 5
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.bodyReady {
			m.body = viewport.New(m.width, bodyHeight)
			m.bodyReady = true
		} else {
			m.body.Width = m.width
			m.body.Height = bodyHeight
		}

	case tickMsg:
		m.store.Tick()
		return m, tea.Batch(m.tickCmd(), m.fetchCmd())

	case fetchMsg:
		m.store.Reconcile(state.FetchResult(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		if key == KeyCloseOverlay {
			m.showHelp = false
		}
		// Everything else is swallowed while the overlay is up, except
		// quitting.
		if key == KeyQuit || key == KeyQuitAlt {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	cmd := commandFor(msg)
	if cmd == state.CmdNone {
		// Unbound keys (pgup/pgdown and friends) scroll the body.
		if m.bodyReady {
			var vpCmd tea.Cmd
			m.body, vpCmd = m.body.Update(msg)
			return m, vpCmd
		}
		return m, nil
	}
	if m.store.Apply(cmd) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchCmd runs one collection cycle off the program goroutine. The
// fetcher enforces its own query interval, returning a no-op result
// inside the window.
func (m Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		if m.fetcher == nil {
			return fetchMsg(state.FetchResult{})
		}
		return fetchMsg(m.fetcher.Fetch(context.Background()))
	}
}
