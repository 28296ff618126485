package tui

import (
	"context"
	"sync"

	"sklad/internal/usecase/interfaces"
	"sklad/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeMsg asks the loop to redraw after the notification feed changed.
type noticeMsg struct{}

// loginMsg reports that the backend rejected the stored credential.
type loginMsg struct{ path string }

// confirmMsg carries a use case confirmation into the event loop. The
// answer goes back on reply exactly once.
type confirmMsg struct {
	prompt string
	reply  chan<- bool
}

// Bridge lets use cases running inside commands talk to the operator: it
// records notifications in the feed and turns confirmations into modal
// dialogs. Until a program is attached every confirmation is declined.
type Bridge struct {
	mu   sync.Mutex
	send func(tea.Msg)
	feed *viewstate.Feed
}

var (
	_ interfaces.INotifier  = (*Bridge)(nil)
	_ interfaces.IConfirmer = (*Bridge)(nil)
	_ interfaces.INavigator = (*Bridge)(nil)
)

func NewBridge(feed *viewstate.Feed) *Bridge {
	if feed == nil {
		feed = viewstate.NewFeed(0)
	}
	return &Bridge{feed: feed}
}

// Attach routes messages to the running program, usually (*tea.Program).Send.
func (b *Bridge) Attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

func (b *Bridge) Feed() *viewstate.Feed {
	return b.feed
}

func (b *Bridge) Pending(msg string) {
	b.feed.Pending(msg)
	b.post(noticeMsg{})
}

func (b *Bridge) Success(msg string) {
	b.feed.Success(msg)
	b.post(noticeMsg{})
}

func (b *Bridge) Failure(msg string) {
	b.feed.Failure(msg)
	b.post(noticeMsg{})
}

// Confirm blocks the calling command until the operator answers the dialog
// or ctx ends.
func (b *Bridge) Confirm(ctx context.Context, prompt string) (bool, error) {
	reply := make(chan bool, 1)
	if !b.post(confirmMsg{prompt: prompt, reply: reply}) {
		return false, nil
	}
	select {
	case ok := <-reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// RedirectToLogin asks the console for a sign-in dialog.
func (b *Bridge) RedirectToLogin(path string) {
	b.feed.Failure("Session expired, sign in again")
	b.post(loginMsg{path: path})
}

func (b *Bridge) post(msg tea.Msg) bool {
	b.mu.Lock()
	send := b.send
	b.mu.Unlock()
	if send == nil {
		return false
	}
	send(msg)
	return true
}
