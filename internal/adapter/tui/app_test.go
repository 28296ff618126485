package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sklad/internal/domain/entities"
	"sklad/internal/usecase"
	mock_interfaces "sklad/internal/usecase/interfaces/mocks"
	"sklad/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type harness struct {
	m         *Model
	feed      *viewstate.Feed
	products  *mock_interfaces.MockIProductGateway
	estimates *mock_interfaces.MockIEstimateGateway
	movements *mock_interfaces.MockIMovementGateway
	workers   *mock_interfaces.MockIWorkerGateway
	auth      *mock_interfaces.MockIAuthGateway
	store     *mock_interfaces.MockICredentialStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		feed:      viewstate.NewFeed(0),
		products:  mock_interfaces.NewMockIProductGateway(ctrl),
		estimates: mock_interfaces.NewMockIEstimateGateway(ctrl),
		movements: mock_interfaces.NewMockIMovementGateway(ctrl),
		workers:   mock_interfaces.NewMockIWorkerGateway(ctrl),
		auth:      mock_interfaces.NewMockIAuthGateway(ctrl),
		store:     mock_interfaces.NewMockICredentialStore(ctrl),
	}
	bridge := NewBridge(h.feed)
	fb := usecase.Feedback{Notifier: bridge, Confirmer: bridge}
	svc := Services{
		Products:    usecase.NewProductUseCase(h.products, fb),
		Estimates:   usecase.NewEstimateUseCase(h.estimates, h.workers, fb),
		Contracts:   usecase.NewContractUseCase(mock_interfaces.NewMockIContractGateway(ctrl), fb),
		Movements:   usecase.NewMovementUseCase(h.movements, fb),
		Workers:     usecase.NewWorkerUseCase(h.workers, fb),
		WorkerStock: usecase.NewWorkerStockUseCase(h.workers, fb),
		Assistant:   usecase.NewAssistantUseCase(mock_interfaces.NewMockIAssistantGateway(ctrl), nil, nil),
		Auth:        usecase.NewAuthUseCase(h.auth, h.store, nil),
	}
	h.m = New(context.Background(), svc, bridge, nil, Options{Debounce: time.Millisecond})
	t.Cleanup(h.m.Close)
	return h
}

func (h *harness) loadProducts(t *testing.T, items ...entities.Product) {
	t.Helper()
	h.products.EXPECT().List(gomock.Any(), gomock.Any()).Return(entities.NewPage(items, len(items)), nil)
	h.m.Update(h.m.products.load(context.Background())())
}

func (h *harness) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = h.m.Update(key(k))
	}
	return cmd
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func pipe(t *testing.T) entities.Product {
	t.Helper()
	return entities.Product{ID: 1, InternalSKU: "P-1", Name: "Труба", Unit: entities.UnitMeter, StockQuantity: 10}
}

func TestModel_Products(t *testing.T) {
	t.Run("empty result renders empty state", func(t *testing.T) {
		h := newHarness(t)
		h.loadProducts(t)

		assert.Equal(t, viewstate.StateEmpty, h.m.products.list.State())
		assert.Contains(t, h.m.View(), "No products match.")
	})

	t.Run("populated list shows rows", func(t *testing.T) {
		h := newHarness(t)
		h.loadProducts(t, pipe(t))

		assert.Contains(t, h.m.View(), "Труба")
	})

	t.Run("favorite flips at once and reverts on failure", func(t *testing.T) {
		h := newHarness(t)
		h.loadProducts(t, pipe(t))
		h.products.EXPECT().ToggleFavorite(gomock.Any(), int64(1)).Return(entities.Product{}, errors.New("HTTP 500"))

		cmd := h.press("f")
		assert.True(t, h.m.products.list.Items()[0].IsFavorite)

		h.m.Update(cmd())

		assert.False(t, h.m.products.list.Items()[0].IsFavorite)
		last, ok := h.feed.Latest()
		require.True(t, ok)
		assert.Equal(t, viewstate.LevelFailure, last.Level)
		assert.Equal(t, "HTTP 500", last.Message)
	})

	t.Run("declined delete puts the row back in place", func(t *testing.T) {
		h := newHarness(t)
		second := pipe(t)
		second.ID, second.Name = 2, "Муфта"
		h.loadProducts(t, pipe(t), second)
		h.m.products.move(1)

		cmd := h.press("d")
		require.Len(t, h.m.products.list.Items(), 1)

		// no program is attached, so the confirmation is declined
		h.m.Update(cmd())

		items := h.m.products.list.Items()
		require.Len(t, items, 2)
		assert.Equal(t, int64(2), items[1].ID)
		_, notified := h.feed.Latest()
		assert.False(t, notified)
	})

	t.Run("only the last keystroke searches", func(t *testing.T) {
		h := newHarness(t)
		h.loadProducts(t)
		h.press("/", "т", "р")

		_, cmd := h.m.Update(searchTickMsg{tab: tabProducts, seq: 1})
		assert.Nil(t, cmd)

		_, cmd = h.m.Update(searchTickMsg{tab: tabProducts, seq: 2})
		require.NotNil(t, cmd)

		h.products.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.ListQuery) (entities.Page[entities.Product], error) {
				assert.Equal(t, "тр", q.Search)
				assert.Equal(t, 1, q.Page)
				return entities.NewPage([]entities.Product{pipe(t)}, 1), nil
			})
		h.m.Update(cmd())
		assert.Len(t, h.m.products.list.Items(), 1)
	})

	t.Run("burst of keystrokes issues one request", func(t *testing.T) {
		h := newHarness(t)
		h.loadProducts(t)
		h.press("/")

		var ticks []tea.Msg
		for _, r := range []string{"т", "р", "у", "б", "а"} {
			_, cmd := h.m.Update(key(r))
			ticks = append(ticks, collect(cmd, func(m tea.Msg) bool {
				_, ok := m.(searchTickMsg)
				return ok
			})...)
		}
		require.Len(t, ticks, 5)

		h.products.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.ListQuery) (entities.Page[entities.Product], error) {
				assert.Equal(t, "труба", q.Search)
				return entities.NewPage([]entities.Product{pipe(t)}, 1), nil
			}).Times(1)
		for _, tick := range ticks {
			if _, cmd := h.m.Update(tick); cmd != nil {
				h.m.Update(cmd())
			}
		}
		assert.Len(t, h.m.products.list.Items(), 1)
	})

	t.Run("stale load is dropped", func(t *testing.T) {
		h := newHarness(t)
		h.products.EXPECT().List(gomock.Any(), gomock.Any()).Return(entities.NewPage([]entities.Product{pipe(t)}, 1), nil)
		h.products.EXPECT().List(gomock.Any(), gomock.Any()).Return(entities.NewPage[entities.Product](nil, 0), nil)

		first := h.m.products.load(context.Background())
		second := h.m.products.load(context.Background())
		older := first()
		h.m.Update(second())
		h.m.Update(older)

		assert.Equal(t, viewstate.StateEmpty, h.m.products.list.State())
	})
}

func TestModel_ConfirmDialog(t *testing.T) {
	for _, tc := range []struct {
		key  string
		want bool
	}{
		{"enter", true},
		{"y", true},
		{"esc", false},
		{"n", false},
	} {
		t.Run(tc.key, func(t *testing.T) {
			h := newHarness(t)
			reply := make(chan bool, 1)

			h.m.Update(confirmMsg{prompt: "Delete product Труба?", reply: reply})
			require.True(t, h.m.modal.IsOpen())
			assert.Contains(t, h.m.View(), "Delete product Труба?")

			h.press(tc.key)

			assert.False(t, h.m.modal.IsOpen())
			assert.Equal(t, tc.want, <-reply)
		})
	}

	t.Run("second prompt while open is declined", func(t *testing.T) {
		h := newHarness(t)
		h.m.Update(confirmMsg{prompt: "first", reply: make(chan bool, 1)})
		second := make(chan bool, 1)

		h.m.Update(confirmMsg{prompt: "second", reply: second})

		assert.False(t, <-second)
	})
}

func TestModel_EstimateEditor(t *testing.T) {
	t.Run("new estimate without items is not sent", func(t *testing.T) {
		h := newHarness(t)
		h.press("2", "n")
		require.NotNil(t, h.m.editor)

		cmd := h.press("ctrl+s")

		assert.Nil(t, cmd)
		last, ok := h.feed.Latest()
		require.True(t, ok)
		assert.Equal(t, usecase.ErrEmptyItems.Error(), last.Message)
	})

	t.Run("line total from the draft", func(t *testing.T) {
		h := newHarness(t)
		h.loadProducts(t, entities.Product{ID: 3, Name: "Кран", RetailPrice: 100, StockQuantity: 5})
		h.press("2", "n", "a")
		require.True(t, h.m.modal.IsOpen())
		h.press("enter", "+")

		lines := h.m.editor.draft.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "2", lines[0].Quantity.String())
		assert.Equal(t, "200", h.m.editor.draft.Total().String())
	})

	t.Run("quantity is read-only once in work", func(t *testing.T) {
		h := newHarness(t)
		est := entities.Estimate{
			ID: 7, EstimateNumber: "С-7", Status: entities.EstimateStatusInProgress,
			Items: []entities.EstimateItem{{ID: 1, ProductID: 3, ProductName: "Кран", Quantity: 2, UnitPrice: 100}},
		}
		h.m.tab = tabEstimates
		h.m.editor = &estimateEditor{}
		h.m.Update(estimateMsg{est: est})

		h.press("+")

		assert.Equal(t, "2", h.m.editor.draft.Lines()[0].Quantity.String())
		assert.NotContains(t, h.m.editor.help(), "quantity")
		assert.Contains(t, h.m.editor.help(), "p: price")
	})
}

func TestModel_History(t *testing.T) {
	h := newHarness(t)
	reversal := entities.Movement{ID: 9, Type: entities.ReversalOf(entities.MovementIncome), Product: entities.NamedRef{Name: "Труба"}}
	h.movements.EXPECT().History(gomock.Any(), gomock.Any()).Return(entities.NewPage([]entities.Movement{reversal}, 1), nil)
	h.m.Update(h.m.history.load(context.Background())())
	h.press("4")

	assert.NotContains(t, h.m.help(), "x: cancel")
	assert.Nil(t, h.press("x"))
}

func TestModel_Login(t *testing.T) {
	t.Run("rejected session asks for credentials once", func(t *testing.T) {
		h := newHarness(t)
		h.m.Update(loginMsg{path: "/login"})
		h.m.Update(loginMsg{path: "/login"})
		assert.Equal(t, "Sign in: username", h.m.modal.Title())

		h.press("operator@example.com", "enter")
		assert.Equal(t, "Sign in: password", h.m.modal.Title())

		cred := entities.Credential{AccessToken: "t", Username: "operator@example.com"}
		h.auth.EXPECT().Login(gomock.Any(), "operator@example.com", "secret").Return(cred, nil)
		h.store.EXPECT().Save(gomock.Any(), cred).Return(nil)

		cmd := h.press("secret", "enter")
		require.NotNil(t, cmd)
		msg := cmd()
		assert.Equal(t, signedInMsg{username: "operator@example.com"}, msg)

		_, reload := h.m.Update(msg)
		assert.NotNil(t, reload)
		assert.False(t, h.m.signingIn)
		last, ok := h.feed.Latest()
		require.True(t, ok)
		assert.Equal(t, "Signed in as operator@example.com", last.Message)
	})

	t.Run("escape abandons sign in", func(t *testing.T) {
		h := newHarness(t)
		h.m.Update(loginMsg{path: "/login"})
		h.press("esc")

		assert.False(t, h.m.modal.IsOpen())
		assert.False(t, h.m.signingIn)
	})
}

func TestBridge(t *testing.T) {
	t.Run("declines without a program", func(t *testing.T) {
		ok, err := NewBridge(nil).Confirm(context.Background(), "sure?")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("answer comes back from the loop", func(t *testing.T) {
		b := NewBridge(nil)
		b.Attach(func(msg tea.Msg) {
			if c, ok := msg.(confirmMsg); ok {
				c.reply <- true
			}
		})

		ok, err := b.Confirm(context.Background(), "sure?")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("cancelled context", func(t *testing.T) {
		b := NewBridge(nil)
		b.Attach(func(tea.Msg) {})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := b.Confirm(ctx, "sure?")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("notices land in the feed", func(t *testing.T) {
		var posted int
		b := NewBridge(nil)
		b.Attach(func(tea.Msg) { posted++ })

		b.Failure("boom")

		last, ok := b.Feed().Latest()
		require.True(t, ok)
		assert.Equal(t, "boom", last.Message)
		assert.Equal(t, 1, posted)
	})
}

func TestOverlayCenter(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat("..........\n", 5), "\n")

	out := strings.Split(overlayCenter(bg, "ab", 10, 5), "\n")

	require.Len(t, out, 5)
	assert.Equal(t, "....ab....", out[2])
	assert.Equal(t, ".....  ...", out[3])
	assert.Equal(t, "..........", out[0])
}

// collect runs cmd the way the program would, descending into batches, and
// returns the messages keep accepts. Commands still running after a short
// wait (cursor blinks) are ignored.
func collect(cmd tea.Cmd, keep func(tea.Msg) bool) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(100 * time.Millisecond):
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c, keep)...)
		}
		return out
	}
	if msg != nil && keep(msg) {
		return []tea.Msg{msg}
	}
	return nil
}
