package viewstate

import (
	"sync"
	"time"

	"sklad/internal/domain/entities"
)

type Role string

const (
	RoleOperator  Role = "operator"
	RoleAssistant Role = "assistant"
	RoleError     Role = "error"
)

type Entry struct {
	Role    Role
	Text    string
	Results []entities.ActionResult
	At      time.Time
}

// Transcript is the assistant conversation of the current process. It is
// never persisted.
type Transcript struct {
	mu      sync.Mutex
	entries []Entry
	limit   int
	now     func() time.Time
}

// NewTranscript keeps at most limit entries; zero means unlimited.
func NewTranscript(limit int) *Transcript {
	return &Transcript{limit: limit, now: time.Now}
}

func (t *Transcript) Operator(text string) {
	t.add(Entry{Role: RoleOperator, Text: text})
}

func (t *Transcript) Reply(r entities.ChatReply) {
	t.add(Entry{Role: RoleAssistant, Text: r.Response, Results: r.FunctionResults})
}

func (t *Transcript) Failure(err error) {
	t.add(Entry{Role: RoleError, Text: err.Error()})
}

func (t *Transcript) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Entry(nil), t.entries...)
}

func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = nil
}

func (t *Transcript) add(e Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e.At = t.now()
	t.entries = append(t.entries, e)
	if t.limit > 0 && len(t.entries) > t.limit {
		t.entries = append([]Entry(nil), t.entries[len(t.entries)-t.limit:]...)
	}
}
