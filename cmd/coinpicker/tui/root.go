package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/coinpicker/internal/window"
)

// TriggerOrigin is where the trigger button is drawn.
var TriggerOrigin = Point{X: 2, Y: 1}

// Options configures a root Model.
type Options struct {
	Label     string
	Window    window.Window
	Favorites []string
	Loader    CoinLoader
	Zones     Zones                  // defaults to bubblezone
	Copy      func(text string) error // defaults to the system clipboard
	Logger    *slog.Logger
}

// Model is the root bubbletea model: a trigger button, the floating
// dropdown panel and a status bar.
type Model struct {
	ctx    context.Context
	loader CoinLoader
	seq    int // sequence number of the newest load

	dropdown  Dropdown
	statusBar StatusBar
	help      help.Model
	keys      KeyMap
	zones     Zones

	copy   func(string) error
	logger *slog.Logger

	chosen   string
	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel creates the root model. Loads issued by the model run under ctx
// and stop when it is cancelled.
func NewModel(ctx context.Context, opts Options) Model {
	if opts.Zones == nil {
		opts.Zones = NewZones()
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	list := NewFilteredList(opts.Window, opts.Favorites, opts.Zones)
	h := help.New()
	h.ShortSeparator = " · "

	return Model{
		ctx:       ctx,
		loader:    opts.Loader,
		seq:       1,
		dropdown:  NewDropdown(opts.Label, TriggerOrigin, list, opts.Zones),
		statusBar: NewStatusBar(),
		help:      h,
		keys:      DefaultKeyMap(),
		zones:     opts.Zones,
		copy:      opts.Copy,
		logger:    opts.Logger,
	}
}

// Chosen returns the coin picked with enter, or "" if none was.
func (m Model) Chosen() string { return m.chosen }

// Favorites returns the favorites at the time of the call.
func (m Model) Favorites() []string { return m.dropdown.List().Favorites() }

// Dropdown returns the dropdown component.
func (m Model) Dropdown() Dropdown { return m.dropdown }

// Init satisfies tea.Model. It starts the initial load.
func (m Model) Init() tea.Cmd {
	return LoadCoins(m.ctx, m.loader, m.seq)
}

// Update satisfies tea.Model. Routes messages to the dropdown.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.statusBar.SetWidth(msg.Width)
		m.help.Width = msg.Width / 2
		var cmd tea.Cmd
		m.dropdown, cmd = m.dropdown.Update(msg)
		return m, cmd

	case CoinsLoadedMsg:
		if msg.Seq != m.seq {
			m.logger.Debug("Discarding stale coin list", "seq", msg.Seq, "current", m.seq)
			return m, nil
		}
		m.dropdown.SetItems(msg.Items)
		m.statusBar.SetLoading(false)
		m.syncStatusBar()
		return m, nil

	case CoinChosenMsg:
		m.chosen = msg.Symbol
		if err := m.copy(msg.Symbol); err != nil {
			m.logger.Warn("Copy to clipboard failed", "symbol", msg.Symbol, "error", err)
			m.statusBar.SetNotice("Chose " + msg.Symbol + " (clipboard unavailable)")
		} else {
			m.statusBar.SetNotice("Copied " + msg.Symbol)
		}
		return m, nil

	case FavoriteToggledMsg:
		if msg.Favorite {
			m.statusBar.SetNotice("★ " + msg.Symbol)
		} else {
			m.statusBar.SetNotice("☆ " + msg.Symbol)
		}
		m.syncStatusBar()
		return m, nil

	case DropdownToggledMsg:
		m.logger.Debug("Dropdown toggled", "state", m.dropdown.State(), "pos", m.dropdown.Position())
		m.syncStatusBar()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case msg.String() == "q" && !m.dropdown.IsOpen():
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			return m, m.reload()
		}
	}

	var cmd tea.Cmd
	m.dropdown, cmd = m.dropdown.Update(msg)
	m.syncStatusBar()
	return m, cmd
}

// reload starts a new load; results of earlier loads still in flight are
// discarded when they arrive.
func (m *Model) reload() tea.Cmd {
	m.seq++
	m.statusBar.SetLoading(true)
	m.statusBar.SetNotice("")
	m.logger.Info("Reloading coin list", "seq", m.seq)
	return LoadCoins(m.ctx, m.loader, m.seq)
}

func (m *Model) syncStatusBar() {
	m.statusBar.Update(m.dropdown.List())
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	lines := make([]string, m.height)
	trigger := m.dropdown.TriggerView()
	for i, line := range strings.Split(trigger, "\n") {
		if row := TriggerOrigin.Y + i; row < len(lines) {
			lines[row] = strings.Repeat(" ", TriggerOrigin.X) + line
		}
	}
	if m.height > 0 {
		lines[m.height-1] = m.statusBar.View(m.help.View(m.keys))
	}
	frame := strings.Join(lines, "\n")

	if layer, ok := m.dropdown.Layer(); ok {
		frame = Composite(frame, m.height, layer)
	}
	return m.zones.Scan(frame)
}
