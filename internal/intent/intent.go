// Package intent records which kind of edit just happened so the caret can be
// restored once the edited content has been rendered again.
package intent

// Intent is the kind of the most recent edit.
type Intent int

const (
	None Intent = iota
	Insert
	InsertMultiple
	DeleteOne
	DeleteRange
	StyleToggle
)

func (i Intent) String() string {
	switch i {
	case Insert:
		return "insert"
	case InsertMultiple:
		return "insert-multiple"
	case DeleteOne:
		return "delete-one"
	case DeleteRange:
		return "delete-range"
	case StyleToggle:
		return "style-toggle"
	}
	return "none"
}

// Tracker holds the pending intent between an edit and the caret restore that
// follows it. The zero value is ready to use.
type Tracker struct {
	current Intent
	last    Intent
}

// Set marks intent as pending.
func (t *Tracker) Set(i Intent) {
	t.current = i
	if i != None {
		t.last = i
	}
}

// Pending returns the pending intent and whether there is one.
func (t *Tracker) Pending() (Intent, bool) {
	return t.current, t.current != None
}

// Reset clears the pending intent after the caret has been restored.
func (t *Tracker) Reset() {
	t.current = None
}

// Last is the most recent non-None intent, kept after Reset for display.
func (t *Tracker) Last() Intent {
	return t.last
}
