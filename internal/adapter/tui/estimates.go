package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/domain/lifecycle"
	"sklad/internal/format"
	"sklad/internal/usecase/interfaces"
	"sklad/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type estimateMsg struct {
	est     entities.Estimate
	workers []entities.Worker
	err     error
	deleted bool
	// ship opens the worker selection right after a create.
	ship bool
}

type savedMsg struct {
	path string
	err  error
}

func (m *Model) newEstimatesScreen(n interfaces.INotifier) *listScreen[entities.Estimate] {
	f := m.fmt
	s := newListScreen[entities.Estimate](tabEstimates, n, m.opts.PageSize, m.opts.Debounce,
		[]string{"Number", "Client", "Location", "Status", "Created"},
		m.svc.Estimates.List,
		func(e entities.Estimate) []string {
			return []string{
				e.EstimateNumber,
				format.Truncate(e.ClientName, 30),
				format.Truncate(e.LocationOrEmpty(), 24),
				e.Status.Label(),
				f.Date(e.CreatedAt.Time),
			}
		})
	s.empty = "No estimates yet. Press n to create one."
	return s
}

func (m *Model) estimatesKey(key string) tea.Cmd {
	switch key {
	case "n":
		m.editor = &estimateEditor{draft: viewstate.NewEstimateDraft(), workers: m.workers.list.Items()}
		return nil
	case "enter":
		e, ok := m.estimates.selected()
		if !ok {
			return nil
		}
		m.editor = &estimateEditor{draft: viewstate.DraftFromEstimate(e), current: e, loading: true}
		ctx, estimates := m.ctx, m.svc.Estimates
		return func() tea.Msg {
			est, workers, err := estimates.Open(ctx, e.ID)
			return estimateMsg{est: est, workers: workers, err: err}
		}
	}
	return nil
}

// estimateEditor is the estimate form. The server copy in current is what
// actions are checked against; draft holds the operator's unsaved edits.
type estimateEditor struct {
	current entities.Estimate
	draft   *viewstate.EstimateDraft
	workers []entities.Worker
	cursor  int
	loading bool
}

func (e *estimateEditor) saved() bool {
	return e.current.ID > 0
}

func (e *estimateEditor) line() (viewstate.DraftLine, bool) {
	lines := e.draft.Lines()
	if e.cursor < 0 || e.cursor >= len(lines) {
		return viewstate.DraftLine{}, false
	}
	return lines[e.cursor], true
}

func (e *estimateEditor) workerName(id int64) string {
	for _, w := range e.workers {
		if w.ID == id {
			return w.Name
		}
	}
	if id > 0 {
		return "#" + strconv.FormatInt(id, 10)
	}
	return "—"
}

func (m *Model) estimateLoaded(msg estimateMsg) tea.Cmd {
	reload := m.reload(tabEstimates, tabHistory, tabProducts)
	if m.editor == nil {
		return reload
	}
	e := m.editor
	e.loading = false
	if msg.err != nil {
		m.fail(msg.err)
		return reload
	}
	if msg.deleted {
		m.editor = nil
		return reload
	}
	e.current = msg.est
	e.draft = viewstate.DraftFromEstimate(msg.est)
	if msg.workers != nil {
		e.workers = msg.workers
	}
	e.cursor = min(e.cursor, max(len(e.draft.Lines())-1, 0))
	if msg.ship {
		return tea.Batch(reload, m.pickWorker("Ship to worker", m.shipTo))
	}
	return reload
}

func (m *Model) editorKey(msg tea.KeyMsg) tea.Cmd {
	e := m.editor
	if e.loading {
		if msg.Type == tea.KeyEsc {
			m.editor = nil
		}
		return nil
	}
	d := e.draft
	switch msg.String() {
	case "esc":
		m.editor = nil
	case "up", "k":
		e.cursor = max(e.cursor-1, 0)
	case "down", "j":
		e.cursor = min(e.cursor+1, max(len(d.Lines())-1, 0))
	case "+", "=":
		m.stepQuantity(1)
	case "-":
		m.stepQuantity(-1)
	case "Q":
		return m.promptQuantity()
	case "p":
		return m.promptPrice()
	case "a":
		return m.addLine()
	case "x":
		if l, ok := e.line(); ok {
			m.fail(d.RemoveProduct(l.ProductID))
			e.cursor = min(e.cursor, max(len(d.Lines())-1, 0))
		}
	case "n":
		return m.promptHeader("Estimate number", d.Number, func(v string) { d.Number = v })
	case "c":
		return m.promptHeader("Client", d.ClientName, func(v string) { d.ClientName = v })
	case "o":
		return m.promptHeader("Location", d.Location, func(v string) { d.Location = v })
	case "ctrl+s":
		return m.saveEstimate(false)
	case "S":
		if !e.saved() {
			return m.saveEstimate(true)
		}
		return m.pickWorker("Ship to worker", m.shipTo)
	case "w":
		return m.pickWorker("Assign worker", func(id int64) tea.Cmd {
			return m.estimateAction(func(ctx context.Context, cur entities.Estimate) (entities.Estimate, error) {
				return m.svc.Estimates.AssignWorker(ctx, cur, id)
			})
		})
	case "F":
		return m.estimateAction(m.svc.Estimates.Complete)
	case "X":
		return m.estimateAction(m.svc.Estimates.Cancel)
	case "U":
		return m.estimateAction(m.svc.Estimates.CancelCompletion)
	case "R":
		return m.pickWorker("Reopen with worker", func(id int64) tea.Cmd {
			return m.estimateAction(func(ctx context.Context, cur entities.Estimate) (entities.Estimate, error) {
				return m.svc.Estimates.Reopen(ctx, cur, id)
			})
		})
	case "D":
		if !e.saved() {
			m.editor = nil
			return nil
		}
		cur, ctx := e.current, m.ctx
		return func() tea.Msg {
			err := m.svc.Estimates.Delete(ctx, cur)
			return estimateMsg{err: err, deleted: err == nil}
		}
	case "P":
		if !e.saved() {
			return nil
		}
		id, ctx := e.current.ID, m.ctx
		return func() tea.Msg {
			doc, err := m.svc.Estimates.Print(ctx, id)
			if err != nil {
				return savedMsg{err: err}
			}
			return m.saveDocument(doc)
		}
	}
	return nil
}

func (m *Model) stepQuantity(delta float64) {
	l, ok := m.editor.line()
	if !ok {
		return
	}
	q, _ := l.Quantity.Float64()
	m.fail(m.editor.draft.SetQuantity(l.ProductID, q+delta))
}

func (m *Model) promptQuantity() tea.Cmd {
	l, ok := m.editor.line()
	if !ok || !m.editor.draft.QuantityEditable() {
		return nil
	}
	return m.openPrompt("Quantity of "+l.Name, "quantity", l.Quantity.String(), func(v string) tea.Cmd {
		q, err := parseNumber(v)
		if err == nil {
			err = m.editor.draft.SetQuantity(l.ProductID, q)
		}
		m.fail(err)
		return nil
	})
}

// promptPrice edits a draft line locally; on an estimate in work the new
// price goes straight to the backend.
func (m *Model) promptPrice() tea.Cmd {
	e := m.editor
	l, ok := e.line()
	if !ok || !e.draft.PriceEditable() {
		return nil
	}
	return m.openPrompt("Price of "+l.Name, "unit price", l.UnitPrice.StringFixed(2), func(v string) tea.Cmd {
		price, err := parseNumber(v)
		if err != nil {
			m.fail(err)
			return nil
		}
		if !e.saved() || !lifecycle.EstimateAllows(e.current.Status, lifecycle.ActionUpdateItemPrice) {
			m.fail(e.draft.SetPrice(l.ProductID, price))
			return nil
		}
		return m.estimateAction(func(ctx context.Context, cur entities.Estimate) (entities.Estimate, error) {
			return m.svc.Estimates.UpdateItemPrice(ctx, cur, l.ItemID, price)
		})
	})
}

// addLine adds a product from the products tab. Estimates in work issue
// the product as an additional shipment instead.
func (m *Model) addLine() tea.Cmd {
	e := m.editor
	products := m.products.list.Items()
	options := make([]option, 0, len(products))
	byID := make(map[int64]entities.Product, len(products))
	for _, p := range products {
		if p.IsDeleted {
			continue
		}
		byID[p.ID] = p
		options = append(options, option{id: p.ID, label: fmt.Sprintf("%s  %s", p.InternalSKU, p.Name)})
	}

	if e.saved() && lifecycle.EstimateAllows(e.current.Status, lifecycle.ActionIssueAdditional) {
		m.openPicker("Issue additional", options, func(o option) tea.Cmd {
			return m.openPrompt("Quantity of "+byID[o.id].Name, "quantity", "1", func(v string) tea.Cmd {
				q, err := parseNumber(v)
				if err != nil {
					m.fail(err)
					return nil
				}
				items := []request.EstimateItemRequest{{ProductID: o.id, Quantity: q}}
				return m.estimateAction(func(ctx context.Context, cur entities.Estimate) (entities.Estimate, error) {
					return m.svc.Estimates.IssueAdditional(ctx, cur, items)
				})
			})
		})
		return nil
	}
	if !e.draft.ItemsEditable() {
		return nil
	}
	m.openPicker("Add product", options, func(o option) tea.Cmd {
		m.fail(e.draft.AddProduct(byID[o.id]))
		e.cursor = len(e.draft.Lines()) - 1
		return nil
	})
	return nil
}

func (m *Model) promptHeader(title, value string, set func(string)) tea.Cmd {
	if !m.editor.draft.HeaderEditable() {
		return nil
	}
	return m.openPrompt(title, strings.ToLower(title), value, func(v string) tea.Cmd {
		set(v)
		return nil
	})
}

// saveEstimate creates a new estimate or saves the draft. With ship set a
// new estimate goes on to worker selection without leaving the form.
func (m *Model) saveEstimate(ship bool) tea.Cmd {
	e := m.editor
	ctx, estimates := m.ctx, m.svc.Estimates
	if !e.saved() {
		req, err := e.draft.CreateRequest()
		if err != nil {
			m.fail(err)
			return nil
		}
		return func() tea.Msg {
			est, err := estimates.Create(ctx, req)
			return estimateMsg{est: est, err: err, ship: ship && err == nil}
		}
	}
	req, err := e.draft.UpdateRequest()
	if err != nil {
		m.fail(err)
		return nil
	}
	cur := e.current
	return func() tea.Msg {
		est, err := estimates.Save(ctx, cur, req)
		return estimateMsg{est: est, err: err}
	}
}

func (m *Model) shipTo(workerID int64) tea.Cmd {
	return m.estimateAction(func(ctx context.Context, cur entities.Estimate) (entities.Estimate, error) {
		return m.svc.Estimates.Ship(ctx, cur, workerID)
	})
}

func (m *Model) estimateAction(fn func(ctx context.Context, cur entities.Estimate) (entities.Estimate, error)) tea.Cmd {
	if m.editor == nil || !m.editor.saved() {
		return nil
	}
	cur, ctx := m.editor.current, m.ctx
	return func() tea.Msg {
		est, err := fn(ctx, cur)
		return estimateMsg{est: est, err: err}
	}
}

func (m *Model) pickWorker(title string, then func(id int64) tea.Cmd) tea.Cmd {
	workers := m.workers.list.Items()
	if m.editor != nil && len(m.editor.workers) > 0 {
		workers = m.editor.workers
	}
	options := make([]option, len(workers))
	for i, w := range workers {
		options[i] = option{id: w.ID, label: w.Name}
	}
	m.openPicker(title, options, func(o option) tea.Cmd { return then(o.id) })
	return nil
}

func (m *Model) saveDocument(doc interfaces.Document) savedMsg {
	path := filepath.Join(m.opts.OutputDir, filepath.Base(doc.Name))
	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		return savedMsg{err: err}
	}
	return savedMsg{path: path}
}

func (e *estimateEditor) view(f format.Formatter, w int) string {
	if e.loading {
		return faint.Render("Loading estimate…")
	}
	d := e.draft
	title := "New estimate"
	if e.saved() {
		title = "Estimate " + d.Number
	}
	var b strings.Builder
	b.WriteString(bold.Render(title) + "  " + d.Status.Label())
	if e.saved() {
		b.WriteString(faint.Render("  worker: " + e.workerName(d.WorkerID)))
	}
	b.WriteString("\n")

	headerStyle := lipgloss.NewStyle()
	if !d.HeaderEditable() {
		headerStyle = readOnly
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("Number: %s   Client: %s   Location: %s", dash(d.Number), dash(d.ClientName), dash(d.Location))))
	b.WriteString("\n")

	lines := d.Lines()
	if len(lines) == 0 {
		b.WriteString("\n" + faint.Render("No items. Press a to add a product."))
		return b.String()
	}
	qtyEditable, priceEditable := d.QuantityEditable(), d.PriceEditable()
	rows := make([][]string, len(lines))
	for i, l := range lines {
		q, _ := l.Quantity.Float64()
		p, _ := l.UnitPrice.Float64()
		t, _ := l.Total().Float64()
		rows[i] = []string{strconv.Itoa(i + 1), format.Truncate(l.Name, 40), f.Quantity(q, l.Unit), f.Money(p), f.Money(t)}
	}
	cursor := e.cursor
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		Headers("#", "Product", "Qty", "Price", "Total").
		Rows(rows...).
		Width(w).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row == cursor:
				return selected
			case col == 2 && !qtyEditable, col == 3 && !priceEditable:
				return cell.Inherit(readOnly)
			default:
				return cell
			}
		})
	b.WriteString(t.String())
	total, _ := d.Total().Float64()
	b.WriteString("\n" + bold.Render("Total: "+f.Money(total)))
	return b.String()
}

func (e *estimateEditor) help() string {
	d := e.draft
	keys := []string{"esc: back"}
	if d.ItemsEditable() {
		keys = append(keys, "a: add", "x: remove")
	}
	if d.QuantityEditable() {
		keys = append(keys, "+/-/Q: quantity")
	}
	if d.PriceEditable() {
		keys = append(keys, "p: price")
	}
	if d.HeaderEditable() {
		keys = append(keys, "n/c/o: header")
	}
	if !e.saved() {
		return strings.Join(append(keys, "ctrl+s: create", "S: create and ship"), "  ")
	}
	for _, a := range lifecycle.Estimate(e.current.Status).Actions {
		if k, ok := estimateKeys[a]; ok {
			keys = append(keys, k)
		}
	}
	return strings.Join(append(keys, "P: print"), "  ")
}

var estimateKeys = map[lifecycle.Action]string{
	lifecycle.ActionSave:             "ctrl+s: save",
	lifecycle.ActionShip:             "S: ship",
	lifecycle.ActionAssignWorker:     "w: assign",
	lifecycle.ActionIssueAdditional:  "a: issue more",
	lifecycle.ActionComplete:         "F: complete",
	lifecycle.ActionCancel:           "X: cancel",
	lifecycle.ActionCancelCompletion: "U: cancel completion",
	lifecycle.ActionReopen:           "R: reopen",
	lifecycle.ActionDelete:           "D: delete",
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
