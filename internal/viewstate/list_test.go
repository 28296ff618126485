package viewstate

import (
	"context"
	"errors"
	"testing"

	"sklad/internal/domain/entities"
	"sklad/internal/usecase"
	mock_interfaces "sklad/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func products(ids ...int64) []entities.Product {
	out := make([]entities.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, entities.Product{ID: id, Name: "p"})
	}
	return out
}

func ids(items []entities.Product) []int64 {
	out := make([]int64, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func TestList_Load(t *testing.T) {
	t.Run("empty fetch renders empty state", func(t *testing.T) {
		l := NewList[entities.Product](nil)
		assert.Equal(t, StateLoading, l.State())

		err := l.Reload(context.Background(), func(context.Context) (entities.Page[entities.Product], error) {
			return entities.NewPage[entities.Product](nil, 0), nil
		})
		require.NoError(t, err)
		assert.Equal(t, StateEmpty, l.State())
		assert.Empty(t, l.Items())
	})

	t.Run("failure keeps the error", func(t *testing.T) {
		l := NewList[entities.Product](nil)
		err := l.Reload(context.Background(), func(context.Context) (entities.Page[entities.Product], error) {
			return entities.Page[entities.Product]{}, errors.New("HTTP 502")
		})
		assert.Error(t, err)
		assert.Equal(t, StateFailed, l.State())
		assert.EqualError(t, l.Err(), "HTTP 502")
	})

	t.Run("stale response is discarded", func(t *testing.T) {
		l := NewList[entities.Product](nil)
		first := l.BeginLoad()
		second := l.BeginLoad()

		assert.True(t, l.CompleteLoad(second, entities.NewPage(products(2), 1), nil))
		assert.False(t, l.CompleteLoad(first, entities.NewPage(products(1, 9), 2), nil))
		assert.Equal(t, []int64{2}, ids(l.Items()))
		assert.Equal(t, 1, l.Total())
	})
}

func TestList_Optimistic(t *testing.T) {
	loaded := func() *List[entities.Product] {
		l := NewList[entities.Product](nil)
		l.CompleteLoad(l.BeginLoad(), entities.NewPage(products(1, 2, 3), 3), nil)
		return l
	}
	byID := func(id int64) func(entities.Product) bool {
		return func(p entities.Product) bool { return p.ID == id }
	}

	t.Run("failed delete restores row in place and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		n := mock_interfaces.NewMockINotifier(ctrl)
		l := loaded()
		l.notifier = n

		n.EXPECT().Failure("Товар используется в смете")

		err := l.Optimistic(context.Background(), Without(byID(2)), func(context.Context) error {
			assert.Equal(t, []int64{1, 3}, ids(l.Items()), "row must disappear before the request")
			return errors.New("Товар используется в смете")
		})
		assert.Error(t, err)
		assert.Equal(t, []int64{1, 2, 3}, ids(l.Items()))
		assert.Equal(t, 3, l.Total())
	})

	t.Run("successful delete sticks", func(t *testing.T) {
		l := loaded()
		err := l.Optimistic(context.Background(), Without(byID(2)), func(context.Context) error { return nil })
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3}, ids(l.Items()))
		assert.Equal(t, 2, l.Total())
	})

	t.Run("favorite toggles immediately and reverts on failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		n := mock_interfaces.NewMockINotifier(ctrl)
		l := loaded()
		l.notifier = n

		n.EXPECT().Failure("HTTP 500")

		toggle := Updating(byID(1), func(p entities.Product) entities.Product {
			p.IsFavorite = !p.IsFavorite
			return p
		})
		err := l.Optimistic(context.Background(), toggle, func(context.Context) error {
			assert.True(t, l.Items()[0].IsFavorite)
			return errors.New("HTTP 500")
		})
		assert.Error(t, err)
		assert.False(t, l.Items()[0].IsFavorite)
	})

	t.Run("declined confirmation rolls back silently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		l := loaded()
		l.notifier = mock_interfaces.NewMockINotifier(ctrl)

		err := l.Optimistic(context.Background(), Without(byID(3)), func(context.Context) error {
			return usecase.ErrCancelled
		})
		assert.ErrorIs(t, err, usecase.ErrCancelled)
		assert.Equal(t, []int64{1, 2, 3}, ids(l.Items()))
	})

	t.Run("deleting the last row shows empty state", func(t *testing.T) {
		l := NewList[entities.Product](nil)
		l.CompleteLoad(l.BeginLoad(), entities.NewPage(products(1), 1), nil)
		snap := l.Apply(Without(byID(1)))
		assert.Equal(t, StateEmpty, l.State())
		l.Rollback(snap)
		assert.Equal(t, StatePopulated, l.State())
	})

	t.Run("replace bumps revision", func(t *testing.T) {
		l := loaded()
		rev := l.Revision()
		assert.True(t, l.Replace(byID(3), entities.Product{ID: 3, Name: "server"}))
		assert.Greater(t, l.Revision(), rev)
		assert.False(t, l.Replace(byID(42), entities.Product{}))
	})
}

func TestQuery(t *testing.T) {
	q := NewQuery(0)
	assert.Equal(t, DefaultPageSize, q.Size())

	q.SetPage(3, 5)
	assert.True(t, q.SetSearch("труба"))
	assert.Equal(t, 1, q.Page(), "search resets page")

	q.SetPage(2, 5)
	assert.False(t, q.SetSearch("труба"), "same search is not a change")
	assert.Equal(t, 2, q.Page())

	assert.True(t, q.SetFilter(entities.FilterStockStatus, string(entities.StockStatusLow)))
	assert.Equal(t, 1, q.Page(), "filter resets page")

	q.SetSort("contract_number")
	assert.Equal(t, "asc", q.ListQuery().Order)
	q.SetSort("contract_number")
	assert.Equal(t, "desc", q.ListQuery().Order)

	q.Next(120)
	q.Next(120)
	q.Next(120)
	assert.Equal(t, 3, q.Page(), "clamped to last page")
	q.Prev()
	assert.Equal(t, 2, q.Page())

	assert.Equal(t, "order=desc&page=2&search=%D1%82%D1%80%D1%83%D0%B1%D0%B0&size=50&sort_by=contract_number&stock_status=low_stock", q.Values().Encode())
}
