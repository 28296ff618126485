package viewstate

import (
	"sync"
	"time"

	"sklad/internal/usecase/interfaces"
)

type Level int

const (
	LevelPending Level = iota
	LevelSuccess
	LevelFailure
)

type Notice struct {
	Level   Level
	Message string
	At      time.Time
}

// Feed collects operation notices for the status bar.
type Feed struct {
	mu      sync.Mutex
	notices []Notice
	limit   int
	now     func() time.Time
}

var _ interfaces.INotifier = (*Feed)(nil)

func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = 20
	}
	return &Feed{limit: limit, now: time.Now}
}

func (f *Feed) Pending(msg string) { f.push(LevelPending, msg) }

func (f *Feed) Success(msg string) { f.push(LevelSuccess, msg) }

func (f *Feed) Failure(msg string) { f.push(LevelFailure, msg) }

// Latest is the most recent notice; ok is false when nothing was posted.
func (f *Feed) Latest() (Notice, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.notices) == 0 {
		return Notice{}, false
	}
	return f.notices[len(f.notices)-1], true
}

func (f *Feed) All() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Notice(nil), f.notices...)
}

func (f *Feed) push(level Level, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, Notice{Level: level, Message: msg, At: f.now()})
	if len(f.notices) > f.limit {
		f.notices = append([]Notice(nil), f.notices[len(f.notices)-f.limit:]...)
	}
}
