package tui

import (
	"context"
	"strconv"
	"strings"

	"sklad/internal/domain/entities"
	"sklad/internal/format"
	"sklad/internal/usecase/interfaces"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) newHistoryScreen(n interfaces.INotifier) *listScreen[entities.Movement] {
	f := m.fmt
	s := newListScreen[entities.Movement](tabHistory, n, m.opts.PageSize, m.opts.Debounce,
		[]string{"When", "Type", "Product", "Qty", "Stock after", "Worker"},
		m.svc.Movements.History,
		func(mv entities.Movement) []string {
			after := "—"
			if mv.StockAfter != nil {
				after = f.Number(*mv.StockAfter)
			}
			return []string{
				f.DateTime(mv.Timestamp.Time),
				format.Truncate(string(mv.Type), 26),
				format.Truncate(mv.Product.Name, 32),
				f.Number(mv.Quantity),
				after,
				dash(mv.WorkerName()),
			}
		})
	s.empty = "No movements for these filters."
	return s
}

func (m *Model) historyKey(key string) tea.Cmd {
	switch key {
	case "x":
		mv, ok := m.history.selected()
		if !ok || !mv.Cancellable() {
			return nil
		}
		return m.run(func(ctx context.Context) error {
			_, err := m.svc.Movements.Cancel(ctx, mv)
			return err
		}, tabHistory, tabProducts)
	case "w":
		workers := m.workers.list.Items()
		options := make([]option, 0, len(workers)+1)
		options = append(options, option{label: "Any worker"})
		for _, w := range workers {
			options = append(options, option{id: w.ID, label: w.Name})
		}
		m.openPicker("Filter by worker", options, func(o option) tea.Cmd {
			value := ""
			if o.id > 0 {
				value = strconv.FormatInt(o.id, 10)
			}
			return m.history.filter(m.ctx, entities.FilterWorkerID, value)
		})
	case "t":
		options := make([]option, 0, len(entities.MovementTypes)+1)
		options = append(options, option{label: "Any type"})
		for _, t := range entities.MovementTypes {
			options = append(options, option{value: string(t), label: string(t)})
		}
		m.openPicker("Filter by type", options, func(o option) tea.Cmd {
			return m.history.filter(m.ctx, entities.FilterMovementType, o.value)
		})
	case "d":
		current := m.history.query.Filter(entities.FilterStartDate) + ".." + m.history.query.Filter(entities.FilterEndDate)
		if current == ".." {
			current = ""
		}
		return m.openPrompt("Date range", "YYYY-MM-DD..YYYY-MM-DD", current, func(v string) tea.Cmd {
			from, to, err := parseRange(v)
			if err != nil {
				m.fail(err)
				return nil
			}
			fromChanged := m.history.query.SetFilter(entities.FilterStartDate, from)
			toChanged := m.history.query.SetFilter(entities.FilterEndDate, to)
			if !fromChanged && !toChanged {
				return nil
			}
			m.history.cursor = 0
			return m.history.load(m.ctx)
		})
	case "c":
		changed := false
		for _, key := range []string{entities.FilterWorkerID, entities.FilterMovementType, entities.FilterStartDate, entities.FilterEndDate} {
			if m.history.query.SetFilter(key, "") {
				changed = true
			}
		}
		if changed {
			return m.history.load(m.ctx)
		}
	}
	return nil
}

// parseRange reads "from..to"; either side may be empty.
func parseRange(v string) (string, string, error) {
	if v == "" {
		return "", "", nil
	}
	from, to, _ := strings.Cut(v, "..")
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := entities.ParseTimestamp(d); err != nil {
			return "", "", err
		}
	}
	return from, to, nil
}
