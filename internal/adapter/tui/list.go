package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"
	"sklad/internal/viewstate"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// loadedMsg finishes a list load inside the event loop. Loads superseded
// by a newer generation are dropped by the list itself.
type loadedMsg struct {
	done func()
}

type searchTickMsg struct {
	tab tab
	seq int
}

type fetchFunc[T any] func(ctx context.Context, q entities.ListQuery) (entities.Page[T], error)

// listScreen is one paged, searchable resource table.
type listScreen[T any] struct {
	tab     tab
	list    *viewstate.List[T]
	query   *viewstate.Query
	search  *viewstate.SearchBox
	input   textinput.Model
	typing  bool
	cursor  int
	fetch   fetchFunc[T]
	columns []string
	row     func(T) []string
	empty   string
}

func newListScreen[T any](t tab, n interfaces.INotifier, size int, delay time.Duration, columns []string, fetch fetchFunc[T], row func(T) []string) *listScreen[T] {
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "search"
	in.CharLimit = 100
	return &listScreen[T]{
		tab:     t,
		list:    viewstate.NewList[T](n),
		query:   viewstate.NewQuery(size),
		search:  viewstate.NewSearchBox(delay),
		input:   in,
		fetch:   fetch,
		columns: columns,
		row:     row,
		empty:   "Nothing here yet.",
	}
}

func (s *listScreen[T]) load(ctx context.Context) tea.Cmd {
	gen := s.list.BeginLoad()
	q := s.query.ListQuery()
	list, fetch := s.list, s.fetch
	return func() tea.Msg {
		page, err := fetch(ctx, q)
		return loadedMsg{done: func() { list.CompleteLoad(gen, page, err) }}
	}
}

func (s *listScreen[T]) selected() (T, bool) {
	items := s.list.Items()
	if s.cursor < 0 || s.cursor >= len(items) {
		var zero T
		return zero, false
	}
	return items[s.cursor], true
}

func (s *listScreen[T]) move(delta int) {
	s.cursor += delta
	s.clamp()
}

func (s *listScreen[T]) clamp() {
	n := len(s.list.Items())
	s.cursor = min(s.cursor, n-1)
	s.cursor = max(s.cursor, 0)
}

// page moves to the next (delta > 0) or previous page and reloads when
// the page changed.
func (s *listScreen[T]) page(ctx context.Context, delta int) tea.Cmd {
	before := s.query.Page()
	if delta > 0 {
		s.query.Next(s.list.Total())
	} else {
		s.query.Prev()
	}
	if s.query.Page() == before {
		return nil
	}
	s.cursor = 0
	return s.load(ctx)
}

func (s *listScreen[T]) startSearch() tea.Cmd {
	s.typing = true
	s.input.SetValue(s.search.Text())
	s.input.CursorEnd()
	return s.input.Focus()
}

// searchKey feeds a key to the search box. Every change schedules a
// debounce tick; only the tick of the last keystroke searches.
func (s *listScreen[T]) searchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		s.typing = false
		s.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	before := s.input.Value()
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() == before {
		return cmd
	}
	seq := s.search.Type(strings.TrimSpace(s.input.Value()))
	t := s.tab
	tick := tea.Tick(s.search.Delay, func(time.Time) tea.Msg { return searchTickMsg{tab: t, seq: seq} })
	return tea.Batch(cmd, tick)
}

func (s *listScreen[T]) fire(ctx context.Context, seq int) tea.Cmd {
	text, ok := s.search.Fire(seq)
	if !ok || !s.query.SetSearch(text) {
		return nil
	}
	s.cursor = 0
	return s.load(ctx)
}

func (s *listScreen[T]) filter(ctx context.Context, key, value string) tea.Cmd {
	if !s.query.SetFilter(key, value) {
		return nil
	}
	s.cursor = 0
	return s.load(ctx)
}

func (s *listScreen[T]) view(w, h int) string {
	var b strings.Builder
	if s.typing || s.search.Text() != "" {
		if s.typing {
			b.WriteString(s.input.View())
		} else {
			b.WriteString(faint.Render("/ " + s.search.Text()))
		}
		b.WriteString("\n")
		h--
	}

	switch s.list.State() {
	case viewstate.StateLoading:
		b.WriteString(faint.Render("Loading…"))
		return b.String()
	case viewstate.StateFailed:
		b.WriteString(failure.Render(s.list.Err().Error()))
		b.WriteString("\n" + faint.Render("ctrl+r: retry"))
		return b.String()
	case viewstate.StateEmpty:
		b.WriteString(faint.Render(s.empty))
		return b.String()
	}

	items := s.list.Items()
	visible := max(h-4, 1)
	offset := 0
	if s.cursor >= visible {
		offset = s.cursor - visible + 1
	}
	end := min(offset+visible, len(items))

	rows := make([][]string, 0, end-offset)
	for _, it := range items[offset:end] {
		rows = append(rows, s.row(it))
	}
	cursor := s.cursor - offset
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		Headers(s.columns...).
		Rows(rows...).
		Width(w).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row == cursor:
				return selected
			default:
				return cell
			}
		})
	b.WriteString(t.String())

	pages := entities.NewPage[T](nil, s.list.Total()).Pages(s.query.Size())
	b.WriteString("\n" + faint.Render(fmt.Sprintf("page %d/%d · %d total", s.query.Page(), pages, s.list.Total())))
	return b.String()
}
