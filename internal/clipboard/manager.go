package clipboard

import (
	sysclip "github.com/atotto/clipboard"

	"github.com/bethropolis/inkblock/internal/block"
	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/bethropolis/inkblock/internal/types"
)

// Provider is the plain-text clipboard shared with other programs.
type Provider interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemProvider is the operating system clipboard.
type SystemProvider struct{}

func (SystemProvider) ReadAll() (string, error) { return sysclip.ReadAll() }
func (SystemProvider) WriteAll(text string) error { return sysclip.WriteAll(text) }

// MemoryProvider is a process-local clipboard.
type MemoryProvider struct {
	text string
}

func (p *MemoryProvider) ReadAll() (string, error) { return p.text, nil }

func (p *MemoryProvider) WriteAll(text string) error {
	p.text = text
	return nil
}

// NewProvider returns the system clipboard when requested and supported,
// otherwise a MemoryProvider.
func NewProvider(system bool) Provider {
	if system && !sysclip.Unsupported {
		return SystemProvider{}
	}
	if system {
		logger.WarnTagf("clipboard", "system clipboard unsupported on this platform, using internal clipboard")
	}
	return &MemoryProvider{}
}

// Manager pairs the plain-text provider with the same-origin fragment of the
// last copy or cut.
type Manager struct {
	provider Provider
	fragment []byte // encoded Fragment, nil when nothing was copied here
}

// NewManager creates a clipboard manager over p. A nil p uses a MemoryProvider.
func NewManager(p Provider) *Manager {
	if p == nil {
		p = &MemoryProvider{}
	}
	return &Manager{provider: p}
}

// Copy copies r from b. It reports false when r is empty.
func (m *Manager) Copy(b block.Block, r types.Range) (Fragment, bool) {
	f := Copy(b, r)
	if f.Text == "" {
		return f, false
	}
	m.store(f)
	return f, true
}

// Cut copies r from b and deletes it. With an empty r nothing is stored and b
// is returned unchanged.
func (m *Manager) Cut(b block.Block, r types.Range) (block.Block, Fragment, block.Edit, bool) {
	out, f, e := Cut(b, r)
	if f.Text == "" {
		return out, f, e, false
	}
	m.store(f)
	return out, f, e, true
}

// Paste inserts the clipboard content at r. It reports false when there is
// nothing to paste.
func (m *Manager) Paste(b block.Block, r types.Range) (block.Block, block.Edit, bool) {
	frag := m.lastFragment()

	plain, err := m.provider.ReadAll()
	if err != nil {
		logger.WarnTagf("clipboard", "reading clipboard failed: %v", err)
		if frag == nil {
			return b, block.Edit{}, false
		}
		plain = frag.Text
	}
	if plain == "" {
		return b, block.Edit{}, false
	}

	out, e := Paste(b, r, plain, frag)
	logger.DebugTagf("clipboard", "pasted %d units at %d", e.Length, e.Offset)
	return out, e, true
}

// Fragment returns the last same-origin fragment, if any.
func (m *Manager) Fragment() (Fragment, bool) {
	f := m.lastFragment()
	if f == nil {
		return Fragment{}, false
	}
	return *f, true
}

func (m *Manager) store(f Fragment) {
	data, err := Encode(f)
	if err != nil {
		logger.WarnTagf("clipboard", "%v", err)
		m.fragment = nil
	} else {
		m.fragment = data
	}
	if err := m.provider.WriteAll(f.Text); err != nil {
		logger.WarnTagf("clipboard", "writing clipboard failed: %v", err)
	}
	logger.DebugTagf("clipboard", "stored %d units from block %q", len(f.Styles), f.SourceID)
}

func (m *Manager) lastFragment() *Fragment {
	if m.fragment == nil {
		return nil
	}
	f, err := Decode(m.fragment)
	if err != nil {
		logger.WarnTagf("clipboard", "dropping unreadable fragment: %v", err)
		m.fragment = nil
		return nil
	}
	return &f
}
