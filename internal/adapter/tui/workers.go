package tui

import (
	"context"
	"fmt"
	"strings"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/format"
	"sklad/internal/usecase/interfaces"

	tea "github.com/charmbracelet/bubbletea"
)

type stockMsg struct {
	worker entities.Worker
	items  []entities.WorkerStockItem
	err    error
}

// workerFetch lists workers for the table. The endpoint is not paged, so
// search is applied here.
func workerFetch(workers interface {
	List(ctx context.Context) ([]entities.Worker, error)
}) fetchFunc[entities.Worker] {
	return func(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Worker], error) {
		all, err := workers.List(ctx)
		if err != nil {
			return entities.Page[entities.Worker]{}, err
		}
		needle := strings.ToLower(strings.TrimSpace(q.Search))
		out := all[:0:0]
		for _, w := range all {
			if needle == "" || strings.Contains(strings.ToLower(w.Name), needle) {
				out = append(out, w)
			}
		}
		return entities.NewPage(out, len(out)), nil
	}
}

func (m *Model) newWorkersScreen(n interfaces.INotifier) *listScreen[entities.Worker] {
	s := newListScreen[entities.Worker](tabWorkers, n, m.opts.PageSize, m.opts.Debounce,
		[]string{"ID", "Name"},
		workerFetch(m.svc.Workers),
		func(w entities.Worker) []string {
			return []string{fmt.Sprint(w.ID), w.Name}
		})
	s.empty = "No workers. Press n to add one."
	return s
}

func (m *Model) workersKey(key string) tea.Cmd {
	if key == "n" {
		return m.openPrompt("New worker", "name", "", func(name string) tea.Cmd {
			return m.run(func(ctx context.Context) error {
				_, err := m.svc.Workers.Create(ctx, name)
				return err
			}, tabWorkers)
		})
	}
	w, ok := m.workers.selected()
	if !ok {
		return nil
	}
	switch key {
	case "enter":
		m.stock = &stockPanel{worker: w, loading: true}
		return m.loadStock(w)
	case "e":
		return m.openPrompt("Rename "+w.Name, "name", w.Name, func(name string) tea.Cmd {
			return m.run(func(ctx context.Context) error {
				_, err := m.svc.Workers.Rename(ctx, w.ID, name)
				return err
			}, tabWorkers)
		})
	case "d":
		return m.run(func(ctx context.Context) error {
			return m.svc.Workers.Delete(ctx, w)
		}, tabWorkers)
	case "g":
		return m.giveItem(w)
	}
	return nil
}

// giveItem issues a product from the products tab to w.
func (m *Model) giveItem(w entities.Worker) tea.Cmd {
	products := m.products.list.Items()
	options := make([]option, 0, len(products))
	names := make(map[int64]string, len(products))
	for _, p := range products {
		if p.IsDeleted || p.IsOutOfStock() {
			continue
		}
		names[p.ID] = p.Name
		options = append(options, option{id: p.ID, label: fmt.Sprintf("%s  (%s)", p.Name, m.fmt.Quantity(p.StockQuantity, p.Unit))})
	}
	m.openPicker("Give to "+w.Name, options, func(o option) tea.Cmd {
		return m.quantityPrompt("Quantity of "+names[o.id], func(qty float64) tea.Cmd {
			req := request.WorkerItemRequest{ProductID: o.id, WorkerID: w.ID, Quantity: qty}
			return m.stockOp(w, func(ctx context.Context) error { return m.svc.WorkerStock.Issue(ctx, req) })
		})
	})
	return nil
}

func (m *Model) quantityPrompt(title string, then func(qty float64) tea.Cmd) tea.Cmd {
	return m.openPrompt(title, "quantity", "1", func(v string) tea.Cmd {
		q, err := parseNumber(v)
		if err != nil {
			m.fail(err)
			return nil
		}
		return then(q)
	})
}

func (m *Model) loadStock(w entities.Worker) tea.Cmd {
	ctx, stock := m.ctx, m.svc.WorkerStock
	return func() tea.Msg {
		items, err := stock.Stock(ctx, w.ID)
		return stockMsg{worker: w, items: items, err: err}
	}
}

// stockOp runs a stock movement for w and refreshes its on-hand list.
func (m *Model) stockOp(w entities.Worker, fn func(ctx context.Context) error) tea.Cmd {
	return tea.Sequence(m.run(fn, tabProducts, tabHistory), m.loadStock(w))
}

func (m *Model) stockLoaded(msg stockMsg) {
	if m.stock == nil || m.stock.worker.ID != msg.worker.ID {
		return
	}
	m.stock.loading = false
	if msg.err != nil {
		m.fail(msg.err)
		return
	}
	m.stock.items = msg.items
	m.stock.cursor = min(m.stock.cursor, max(len(msg.items)-1, 0))
}

// stockKey handles the keys of the on-hand panel. Keys it does not know
// fall through to the workers table.
func (m *Model) stockKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	p := m.stock
	switch msg.String() {
	case "esc":
		m.stock = nil
		return nil, true
	case "ctrl+up", "K":
		p.cursor = max(p.cursor-1, 0)
		return nil, true
	case "ctrl+down", "J":
		p.cursor = min(p.cursor+1, max(len(p.items)-1, 0))
		return nil, true
	case "R":
		w := p.worker
		return m.stockOp(w, func(ctx context.Context) error {
			_, err := m.svc.WorkerStock.ReturnAll(ctx, w)
			return err
		}), true
	case "r", "w":
		it, ok := p.item()
		if !ok {
			return nil, true
		}
		w, key := p.worker, msg.String()
		title := "Return " + it.ProductName
		if key == "w" {
			title = "Write off " + it.ProductName
		}
		return m.openPrompt(title, "quantity", fmt.Sprint(it.QuantityOnHand), func(v string) tea.Cmd {
			q, err := parseNumber(v)
			if err != nil {
				m.fail(err)
				return nil
			}
			req := request.WorkerItemRequest{ProductID: it.ProductID, WorkerID: w.ID, Quantity: q}
			if key == "w" {
				return m.stockOp(w, func(ctx context.Context) error { return m.svc.WorkerStock.WriteOff(ctx, req) })
			}
			return m.stockOp(w, func(ctx context.Context) error { return m.svc.WorkerStock.Return(ctx, req) })
		}), true
	}
	return nil, false
}

// stockPanel is the on-hand stock of one worker.
type stockPanel struct {
	worker  entities.Worker
	items   []entities.WorkerStockItem
	cursor  int
	loading bool
}

func (p *stockPanel) item() (entities.WorkerStockItem, bool) {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return entities.WorkerStockItem{}, false
	}
	return p.items[p.cursor], true
}

func (p *stockPanel) view(f format.Formatter, w int) string {
	var b strings.Builder
	b.WriteString(bold.Render("On hand: "+p.worker.Name) + "\n")
	switch {
	case p.loading:
		b.WriteString(faint.Render("Loading…"))
	case len(p.items) == 0:
		b.WriteString(faint.Render("Nothing on hand."))
	default:
		for i, it := range p.items {
			line := fmt.Sprintf("%-40s %s", format.Truncate(it.ProductName, 40), f.Quantity(it.QuantityOnHand, it.Unit))
			if i == p.cursor {
				line = selected.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}
