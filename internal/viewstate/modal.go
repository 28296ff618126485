package viewstate

import "sync"

// DismissReason says how the operator closed a modal.
type DismissReason string

const (
	DismissEscape   DismissReason = "escape"
	DismissBackdrop DismissReason = "backdrop"
	DismissCancel   DismissReason = "cancel"
)

// Modal is the dialog shell. It knows whether it is open and who to tell
// when the operator dismisses it; the content belongs to the caller.
type Modal struct {
	mu      sync.Mutex
	open    bool
	title   string
	onClose func(DismissReason)
}

func (m *Modal) Open(title string, onClose func(DismissReason)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
	m.title = title
	m.onClose = onClose
}

func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *Modal) Title() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.title
}

// Dismiss closes the modal on the operator's request and calls the close
// callback. Dismissing a closed modal does nothing.
func (m *Modal) Dismiss(reason DismissReason) {
	m.mu.Lock()
	if !m.open {
		m.mu.Unlock()
		return
	}
	cb := m.onClose
	m.reset()
	m.mu.Unlock()
	if cb != nil {
		cb(reason)
	}
}

// Close closes the modal after its action finished. The close callback is
// not called.
func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

func (m *Modal) reset() {
	m.open = false
	m.title = ""
	m.onClose = nil
}
