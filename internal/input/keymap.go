// internal/input/keymap.go
package input

import (
	"github.com/bethropolis/inkblock/internal/style"
	"github.com/gdamore/tcell/v2"
)

// Keymap maps keys to actions. Control keys are looked up by their tcell key
// code, so Ctrl+B is tcell.KeyCtrlB whatever modifier bits come with it.
type Keymap map[tcell.Key]ActionEvent

// InputProcessor translates tcell key events into ActionEvents.
type InputProcessor struct {
	keymap      Keymap
	shiftKeymap Keymap // bindings that differ when Shift is held
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:      make(Keymap),
		shiftKeymap: make(Keymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	bind := func(m Keymap, k tcell.Key, a Action) { m[k] = ActionEvent{Action: a} }

	bind(p.keymap, tcell.KeyLeft, ActionMoveLeft)
	bind(p.keymap, tcell.KeyRight, ActionMoveRight)
	bind(p.keymap, tcell.KeyHome, ActionMoveHome)
	bind(p.keymap, tcell.KeyEnd, ActionMoveEnd)
	bind(p.keymap, tcell.KeyUp, ActionMoveHome)
	bind(p.keymap, tcell.KeyDown, ActionMoveEnd)
	bind(p.keymap, tcell.KeyBackspace, ActionDeleteBackward)
	bind(p.keymap, tcell.KeyBackspace2, ActionDeleteBackward)
	bind(p.keymap, tcell.KeyDelete, ActionDeleteForward)
	bind(p.keymap, tcell.KeyEnter, ActionInsertNewLine)
	bind(p.keymap, tcell.KeyEscape, ActionQuit)
	bind(p.keymap, tcell.KeyCtrlQ, ActionQuit)

	bind(p.shiftKeymap, tcell.KeyLeft, ActionSelectLeft)
	bind(p.shiftKeymap, tcell.KeyRight, ActionSelectRight)
	bind(p.shiftKeymap, tcell.KeyHome, ActionSelectHome)
	bind(p.shiftKeymap, tcell.KeyEnd, ActionSelectEnd)
	bind(p.shiftKeymap, tcell.KeyUp, ActionSelectHome)
	bind(p.shiftKeymap, tcell.KeyDown, ActionSelectEnd)

	bind(p.keymap, tcell.KeyCtrlA, ActionSelectAll)
	bind(p.keymap, tcell.KeyCtrlC, ActionCopy)
	bind(p.keymap, tcell.KeyCtrlX, ActionCut)
	bind(p.keymap, tcell.KeyCtrlV, ActionPaste)

	// Ctrl+I is Tab on a terminal, so italic lives on Ctrl+T.
	toggle := func(k tcell.Key, f style.Flag) { p.keymap[k] = ActionEvent{Action: ActionToggleStyle, Flag: f} }
	toggle(tcell.KeyCtrlB, style.Bold)
	toggle(tcell.KeyCtrlT, style.Italic)
	toggle(tcell.KeyCtrlU, style.Underline)
	toggle(tcell.KeyCtrlE, style.Code)
	toggle(tcell.KeyCtrlK, style.Strikethrough)
}

// Bind overrides the binding for key.
func (p *InputProcessor) Bind(key tcell.Key, ev ActionEvent) {
	p.keymap[key] = ev
}

// ProcessEvent returns the action for a key event.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if key == tcell.KeyRune {
		if mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
			return ActionEvent{Action: ActionUnknown}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	if mod&tcell.ModShift != 0 {
		if action, ok := p.shiftKeymap[key]; ok {
			return action
		}
	}
	if action, ok := p.keymap[key]; ok {
		return action
	}
	if key == tcell.KeyTab {
		return ActionEvent{Action: ActionInsertRune, Rune: '\t'}
	}
	return ActionEvent{Action: ActionUnknown}
}
