// internal/event/event.go
package event

import (
	"github.com/bethropolis/inkblock/internal/block"
	"github.com/bethropolis/inkblock/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Editing events
	TypeBlockModified    // Fired when block text or styles change
	TypeSelectionChanged // Fired when the active range moves
	TypeClipboardChanged // Fired after copy or cut stored a fragment

	// Input events
	TypeKeyPressed // Raw key press forwarded by the app loop

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

func (t Type) String() string {
	switch t {
	case TypeBlockModified:
		return "block-modified"
	case TypeSelectionChanged:
		return "selection-changed"
	case TypeClipboardChanged:
		return "clipboard-changed"
	case TypeKeyPressed:
		return "key-pressed"
	case TypeAppReady:
		return "app-ready"
	case TypeAppQuit:
		return "app-quit"
	}
	return "unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BlockModifiedData carries the edit that produced the new block state.
type BlockModifiedData struct {
	BlockID string
	Edit    block.Edit
}

// SelectionChangedData carries the new active range.
type SelectionChangedData struct {
	BlockID string
	Range   types.Range
}

// ClipboardChangedData carries the plain text placed on the clipboard.
type ClipboardChangedData struct {
	Text string
	Cut  bool
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppReadyData is sent once the screen is initialised.
type AppReadyData struct {
	BlockID string
}

// AppQuitData is sent just before the loop exits.
type AppQuitData struct{}
