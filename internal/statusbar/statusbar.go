// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/inkblock/internal/intent"
	"github.com/bethropolis/inkblock/internal/style"
	"github.com/bethropolis/inkblock/internal/theme"
	"github.com/bethropolis/inkblock/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleFlags     tcell.Style // Active style flags on the right
	StyleMessage   tcell.Style // Temporary messages
	MessageTimeout time.Duration
}

// DefaultConfig takes the status bar styles from th.
func DefaultConfig(th *theme.Theme) Config {
	return Config{
		StyleDefault:   th.GetStyle(theme.StyleStatusBar),
		StyleFlags:     th.GetStyle(theme.StyleStatusBarFlag),
		StyleMessage:   th.GetStyle(theme.StyleStatusBarMessage),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar is the status line below the block.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	blockID    string
	textLen    int
	selection  types.Range
	active     style.Metadata
	lastIntent intent.Intent

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetBlockInfo updates the block id and text length shown.
func (sb *StatusBar) SetBlockInfo(id string, length int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.blockID = id
	sb.textLen = length
}

// SetSelectionInfo updates the selection and the flags active at it.
func (sb *StatusBar) SetSelectionInfo(r types.Range, active style.Metadata) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.selection = r
	sb.active = active
}

// SetLastIntent updates the last edit kind shown.
func (sb *StatusBar) SetLastIntent(i intent.Intent) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.lastIntent = i
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Text returns the left and right parts of the status line and whether the
// left part is a temporary message. Expired messages are cleared.
func (sb *StatusBar) Text() (left, right string, message bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.tempMessageTime.IsZero() {
		if sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout {
			return sb.tempMessage, sb.active.String(), true
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	id := sb.blockID
	if id == "" {
		id = "[no id]"
	}
	left = fmt.Sprintf("block %s -- %s of %d", id, sb.selection, sb.textLen)
	if sb.lastIntent != intent.None {
		left += " -- " + sb.lastIntent.String()
	}
	return left, sb.active.String(), false
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	left, right, message := sb.Text()
	st := sb.config.StyleDefault
	if message {
		st = sb.config.StyleMessage
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, sb.config.StyleDefault)
	}
	end := drawString(screen, 0, y, width, left, st)

	// flags right aligned, dropped when they would overlap the left text
	rw := uniseg.StringWidth(right)
	if start := width - rw - 1; start > end {
		drawString(screen, start, y, width, right, sb.config.StyleFlags)
	}
}

// drawString draws s from column x and returns the column after it.
func drawString(screen tcell.Screen, x, y, width int, s string, st tcell.Style) int {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := gr.Width()
		if x+w > width {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], st)
		x += w
	}
	return x
}
