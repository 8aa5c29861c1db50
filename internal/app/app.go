// internal/app/app.go
package app

import (
	"fmt"

	"github.com/bethropolis/inkblock/internal/block"
	"github.com/bethropolis/inkblock/internal/clipboard"
	"github.com/bethropolis/inkblock/internal/config"
	"github.com/bethropolis/inkblock/internal/editor"
	"github.com/bethropolis/inkblock/internal/event"
	"github.com/bethropolis/inkblock/internal/input"
	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/bethropolis/inkblock/internal/statusbar"
	"github.com/bethropolis/inkblock/internal/theme"
	"github.com/bethropolis/inkblock/internal/tui"
	"github.com/bethropolis/inkblock/internal/types"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the components and main loop of the block editor.
type App struct {
	cfg            *config.Config
	tuiManager     *tui.TUI
	editor         *editor.Editor
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	themeManager   *theme.Manager

	// Last drawn layout, used to map mouse positions to run coordinates.
	layout      *tui.Layout
	mouse       input.MouseTracker
	mouseAnchor types.RunPosition

	events   chan tcell.Event
	quit     chan struct{}
	quitting bool
}

// NewApp creates the application on the real terminal.
func NewApp(cfg *config.Config) (*App, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewAppWithScreen(cfg, s)
}

// NewAppWithScreen creates the application on s.
func NewAppWithScreen(cfg *config.Config, s tcell.Screen) (*App, error) {
	themeManager := newThemeManager(cfg.Theme)

	tuiManager, err := tui.NewWithScreen(s, themeManager.Current())
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	clip := clipboard.NewManager(clipboard.NewProvider(cfg.Editor.SystemClipboard))
	ed := editor.NewEditor(block.New(cfg.Editor.BlockID, cfg.Editor.InitialText, nil), clip)

	sbConfig := statusbar.DefaultConfig(themeManager.Current())
	sbConfig.MessageTimeout = config.MessageTimeout

	a := &App{
		cfg:            cfg,
		tuiManager:     tuiManager,
		editor:         ed,
		statusBar:      statusbar.New(sbConfig),
		eventManager:   event.NewManager(),
		inputProcessor: input.NewInputProcessor(),
		themeManager:   themeManager,
		events:         make(chan tcell.Event),
		quit:           make(chan struct{}),
	}
	ed.SetEventManager(a.eventManager)
	a.subscribe()

	return a, nil
}

// newThemeManager loads the configured themes. Problems are logged and the
// built-in theme stays active.
func newThemeManager(cfg config.ThemeConfig) *theme.Manager {
	m := theme.NewManager()
	if cfg.Dir != "" {
		if err := m.LoadDir(cfg.Dir); err != nil {
			logger.Warnf("App: %v", err)
		}
	}
	switch {
	case cfg.File != "":
		if err := m.LoadFile(cfg.File); err != nil {
			logger.Warnf("App: %v", err)
		}
	case cfg.Name != "":
		if err := m.SetTheme(cfg.Name); err != nil {
			logger.Warnf("App: %v", err)
		}
	}
	return m
}

// Editor exposes the editing session, e.g. to export the block after Run.
func (a *App) Editor() *editor.Editor {
	return a.editor
}

// Run polls terminal events and redraws until the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.pollEvents()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{BlockID: a.editor.Block().ID()})
	a.drawEditor()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("App: exiting")
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.drawEditor()
			}
		}
	}
}

// pollEvents forwards terminal events to the main loop, which owns all
// editor state.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent applies one terminal event and reports whether to redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		return true
	case *tcell.EventKey:
		a.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})
		return a.handleAction(a.inputProcessor.ProcessEvent(ev))
	case *tcell.EventMouse:
		return a.handleMouse(ev)
	}
	return false
}

// Quit stops the main loop.
func (a *App) Quit() {
	if a.quitting {
		return
	}
	a.quitting = true
	close(a.quit)
}
