package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/bgcheck/internal/logtail"
	"github.com/five82/bgcheck/internal/monitor"
	"github.com/five82/bgcheck/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Session *monitor.Session
	Logger  *zap.Logger

	// Label names the reading source in the header, e.g. "dexcom ous".
	Label     string
	FrameTick time.Duration
	PrefsPath string
	LogPath   string // shown in the log pane
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	session   *monitor.Session
	logger    *zap.Logger
	label     string
	frameTick time.Duration
	prefsPath string
	logPath   string

	// UI state
	theme     Theme
	hideChart bool
	showLogs  bool
	keys      keyMap
	help      help.Model
	width     int

	// Loop state
	frame    monitor.Frame
	frames   int
	logLines []string
	err      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	frameTick := opts.FrameTick
	if frameTick <= 0 {
		frameTick = DefaultFrameTick
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	m := Model{
		ctx:       ctx,
		session:   opts.Session,
		logger:    logger,
		label:     opts.Label,
		frameTick: frameTick,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		theme:     GetTheme(userPrefs.Theme),
		hideChart: userPrefs.HideChart,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		width:     DefaultWidth,
	}
	if m.session != nil {
		m.frame = m.session.Frame()
	}
	return m
}

// Err returns the error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model. The first frame runs immediately so the startup
// fetch does not wait a full frame.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg(time.Now()) }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.err != nil {
		return ""
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("quit requested", zap.String("key", msg.String()))
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleChart):
		m.hideChart = !m.hideChart
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLogs):
		m.showLogs = !m.showLogs
		m.refreshLogs()
		return m, nil
	}
	return m, nil
}

// handleTick runs one frame: countdown, maybe update, then schedule the next
// frame. The fetch blocks this goroutine, which is the only one touching the
// session.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, tickCmd(m.frameTick)
	}
	if m.frames > 0 {
		m.session.Elapse()
	}
	m.frames++

	if _, err := m.session.Tick(m.ctx, now); err != nil {
		if errors.Is(err, context.Canceled) {
			return m, tea.Quit
		}
		m.logger.Error("polling loop stopped", zap.Error(err))
		m.err = err
		return m, tea.Quit
	}
	m.frame = m.session.Frame()
	m.refreshLogs()
	return m, tickCmd(m.frameTick)
}

// refreshLogs rereads the log tail while the pane is open.
func (m *Model) refreshLogs() {
	if !m.showLogs {
		m.logLines = nil
		return
	}
	lines, err := logtail.Read(m.logPath, LogPaneLines)
	if err != nil {
		m.logLines = []string{"log unavailable: " + err.Error()}
		return
	}
	m.logLines = lines
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, HideChart: m.hideChart}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save preferences failed", zap.Error(err))
	}
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits, the
// context is cancelled or the polling loop fails.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen())

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
