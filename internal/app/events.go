package app

import (
	"github.com/bethropolis/inkblock/internal/event"
	"github.com/bethropolis/inkblock/internal/logger"
)

// subscribe wires the status bar to editor events.
func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeBlockModified, a.handleBlockModifiedForStatus)
	a.eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChangedForStatus)
	a.eventManager.Subscribe(event.TypeClipboardChanged, a.handleClipboardChangedForStatus)
	a.eventManager.Subscribe(event.TypeAppReady, a.handleAppReady)
}

func (a *App) handleBlockModifiedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.BlockModifiedData); ok {
		logger.DebugTagf("app", "block %s modified by %v", data.BlockID, data.Edit.Intent)
	}
	a.updateStatusBarContent()
	return false
}

func (a *App) handleSelectionChangedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

func (a *App) handleClipboardChangedForStatus(e event.Event) bool {
	data, ok := e.Data.(event.ClipboardChangedData)
	if !ok {
		logger.Warnf("App: ClipboardChanged event with unexpected data type: %T", e.Data)
		return false
	}
	verb := "copied"
	if data.Cut {
		verb = "cut"
	}
	a.statusBar.SetTemporaryMessage("%s %d characters", verb, len([]rune(data.Text)))
	return false
}

func (a *App) handleAppReady(e event.Event) bool {
	a.statusBar.SetTemporaryMessage("inkblock - ^B bold ^T italic ^U underline ^E code ^K strike | Esc quit")
	return false
}
