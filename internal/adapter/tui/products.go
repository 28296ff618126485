package tui

import (
	"context"
	"strconv"
	"strings"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/format"
	"sklad/internal/usecase/interfaces"
	"sklad/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

var stockFilters = []entities.StockStatus{entities.StockStatusAll, entities.StockStatusLow, entities.StockStatusOutOfStock}

func (m *Model) newProductsScreen(n interfaces.INotifier) *listScreen[entities.Product] {
	f := m.fmt
	s := newListScreen[entities.Product](tabProducts, n, m.opts.PageSize, m.opts.Debounce,
		[]string{"", "SKU", "Name", "Stock", "Min", "Price"},
		m.svc.Products.List,
		func(p entities.Product) []string {
			return []string{
				productMark(p),
				p.InternalSKU,
				format.Truncate(p.Name, 40),
				f.Quantity(p.StockQuantity, p.Unit),
				f.Number(p.MinStockLevel),
				f.Money(p.RetailPrice),
			}
		})
	s.empty = "No products match."
	return s
}

func productMark(p entities.Product) string {
	var b strings.Builder
	if p.IsFavorite {
		b.WriteString("★")
	}
	switch {
	case p.IsDeleted:
		b.WriteString("✗")
	case p.IsOutOfStock():
		b.WriteString("!")
	case p.IsLowStock():
		b.WriteString("↓")
	}
	return b.String()
}

func byProductID(id int64) func(entities.Product) bool {
	return func(p entities.Product) bool { return p.ID == id }
}

func (m *Model) productsKey(key string) tea.Cmd {
	if key == "s" {
		return m.cycleStockFilter()
	}
	p, ok := m.products.selected()
	if !ok {
		return nil
	}
	switch key {
	case "f":
		return m.toggleFavorite(p)
	case "d":
		return m.deleteProduct(p)
	case "u":
		if !p.IsDeleted {
			return nil
		}
		return m.run(func(ctx context.Context) error {
			_, err := m.svc.Products.Restore(ctx, p.ID)
			return err
		}, tabProducts)
	case "i":
		return m.openPrompt("Receive "+p.Name, "quantity", "", func(v string) tea.Cmd {
			qty, err := parseNumber(v)
			if err != nil {
				m.fail(err)
				return nil
			}
			return m.run(func(ctx context.Context) error {
				return m.svc.Products.Receive(ctx, request.ReceiveItemRequest{ProductID: p.ID, Quantity: qty})
			}, tabProducts, tabHistory)
		})
	}
	return nil
}

func (m *Model) cycleStockFilter() tea.Cmd {
	current := entities.StockStatus(m.products.query.Filter(entities.FilterStockStatus))
	next := stockFilters[0]
	for i, f := range stockFilters {
		if f == current {
			next = stockFilters[(i+1)%len(stockFilters)]
		}
	}
	value := string(next)
	if next == entities.StockStatusAll {
		value = ""
	}
	m.feed.Success("Stock filter: " + string(next))
	return m.products.filter(m.ctx, entities.FilterStockStatus, value)
}

// toggleFavorite flips the star at once and reverts it when the request
// fails.
func (m *Model) toggleFavorite(p entities.Product) tea.Cmd {
	list := m.products.list
	snap := list.Apply(viewstate.Updating(byProductID(p.ID), func(p entities.Product) entities.Product {
		p.IsFavorite = !p.IsFavorite
		return p
	}))
	ctx, products := m.ctx, m.svc.Products
	return func() tea.Msg {
		_, err := products.ToggleFavorite(ctx, p.ID)
		return optimisticMsg{err: err, rollback: func() { list.Rollback(snap) }, report: true}
	}
}

// deleteProduct removes the row at once; a declined confirmation or a
// failed request puts it back in place.
func (m *Model) deleteProduct(p entities.Product) tea.Cmd {
	list := m.products.list
	snap := list.Apply(viewstate.Without(byProductID(p.ID)))
	m.products.clamp()
	ctx, products := m.ctx, m.svc.Products
	return func() tea.Msg {
		_, err := products.Delete(ctx, p)
		return optimisticMsg{err: err, rollback: func() { list.Rollback(snap) }}
	}
}

func parseNumber(v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(v), ",", "."), 64)
	if err != nil {
		return 0, errors.Errorf("%q is not a number", v)
	}
	return f, nil
}
