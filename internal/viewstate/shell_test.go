package viewstate

import (
	"errors"
	"testing"
	"time"

	"sklad/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModal(t *testing.T) {
	t.Run("dismiss calls back once", func(t *testing.T) {
		var m Modal
		var reasons []DismissReason
		m.Open("Ship estimate", func(r DismissReason) { reasons = append(reasons, r) })
		require.True(t, m.IsOpen())
		assert.Equal(t, "Ship estimate", m.Title())

		m.Dismiss(DismissEscape)
		m.Dismiss(DismissBackdrop)
		assert.False(t, m.IsOpen())
		assert.Equal(t, []DismissReason{DismissEscape}, reasons)
	})

	t.Run("close after action is silent", func(t *testing.T) {
		var m Modal
		called := false
		m.Open("Select worker", func(DismissReason) { called = true })
		m.Close()
		assert.False(t, m.IsOpen())
		assert.False(t, called)
	})
}

func TestRefreshBus(t *testing.T) {
	b := NewRefreshBus()
	a, cancelA := b.Subscribe(1)
	c, cancelC := b.Subscribe(1)
	defer cancelC()

	b.Publish("assistant")
	b.Publish("dropped for full subscribers")

	assert.Equal(t, "assistant", <-a)
	assert.Equal(t, "assistant", <-c)

	cancelA()
	cancelA()
	_, open := <-a
	assert.False(t, open)

	b.Publish("after cancel")
	select {
	case r := <-c:
		assert.Equal(t, "after cancel", r)
	case <-time.After(time.Second):
		t.Fatal("expected event")
	}
}

func TestTranscript(t *testing.T) {
	tr := NewTranscript(2)
	tr.Operator("остатки труб")
	tr.Reply(entities.ChatReply{Response: "5 шт.", FunctionResults: []entities.ActionResult{{Function: "stock", Success: true}}})
	tr.Failure(errors.New("HTTP 500"))

	entries := tr.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, RoleAssistant, entries[0].Role)
	assert.Len(t, entries[0].Results, 1)
	assert.Equal(t, RoleError, entries[1].Role)

	tr.Clear()
	assert.Empty(t, tr.Entries())
}

func TestFeed(t *testing.T) {
	f := NewFeed(2)
	_, ok := f.Latest()
	assert.False(t, ok)

	f.Pending("Saving")
	f.Failure("Нет на складе")
	f.Success("Saved")

	n, ok := f.Latest()
	require.True(t, ok)
	assert.Equal(t, LevelSuccess, n.Level)
	assert.Len(t, f.All(), 2)
	assert.Equal(t, LevelFailure, f.All()[0].Level)
}
