package viewstate

import (
	"sync"

	"sklad/internal/usecase/interfaces"
)

// RefreshBus tells open views that backend data changed behind their back,
// e.g. after the assistant ran an action.
type RefreshBus struct {
	mu   sync.Mutex
	next int
	subs map[int]chan string
}

var _ interfaces.IRefreshPublisher = (*RefreshBus)(nil)

func NewRefreshBus() *RefreshBus {
	return &RefreshBus{subs: make(map[int]chan string)}
}

// Subscribe returns a channel of refresh reasons and a cancel function.
// Slow subscribers miss events rather than block the publisher.
func (b *RefreshBus) Subscribe(buffer int) (<-chan string, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan string, buffer)
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

func (b *RefreshBus) Publish(reason string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- reason:
		default:
		}
	}
}
