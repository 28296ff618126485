package tui

import (
	"context"
	"fmt"
	"strings"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/domain/lifecycle"
	"sklad/internal/format"
	"sklad/internal/usecase/interfaces"
	"sklad/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
)

type contractMsg struct {
	c   entities.Contract
	err error
}

type revenueMsg struct {
	r   entities.Revenue
	err error
}

var figureLabels = map[viewstate.Figure]string{
	viewstate.FigureEstimatedDepth: "Estimated depth, m",
	viewstate.FigurePriceSoil:      "Price per meter (soil)",
	viewstate.FigurePriceRock:      "Price per meter (rock)",
	viewstate.FigureDepthSoil:      "Actual depth (soil), m",
	viewstate.FigureDepthRock:      "Actual depth (rock), m",
	viewstate.FigurePipeSteel:      "Steel pipe used, m",
	viewstate.FigurePipePlastic:    "Plastic pipe used, m",
}

func (m *Model) newContractsScreen(n interfaces.INotifier) *listScreen[entities.Contract] {
	f := m.fmt
	s := newListScreen[entities.Contract](tabContracts, n, m.opts.PageSize, m.opts.Debounce,
		[]string{"Number", "Date", "Client", "Location", "Status"},
		m.svc.Contracts.List,
		func(c entities.Contract) []string {
			return []string{
				c.ContractNumber,
				f.Date(c.ContractDate.Time),
				format.Truncate(c.ClientName, 28),
				format.Truncate(c.Location, 28),
				c.Status.Label(),
			}
		})
	s.empty = "No contracts. Press n to add one."
	return s
}

func (m *Model) contractsKey(key string) tea.Cmd {
	switch key {
	case "o":
		m.contracts.query.SetSort("contract_date")
		return m.contracts.load(m.ctx)
	case "W":
		return m.run(func(ctx context.Context) error {
			_, err := m.svc.Contracts.WriteOffAll(ctx, false)
			return err
		}, tabContracts, tabHistory, tabProducts)
	case "n":
		d := viewstate.NewContractDraft()
		return m.openPrompt("New contract number", "number", "", func(number string) tea.Cmd {
			d.SetNumber(number)
			return m.openPrompt("Client", "client name", "", func(client string) tea.Cmd {
				d.SetClient(client)
				return m.openPrompt("Location", "address", "", func(loc string) tea.Cmd {
					d.SetLocation(loc)
					req := d.CreateRequest()
					ctx := m.ctx
					m.contract = &contractPanel{draft: d, loading: true}
					return func() tea.Msg {
						c, err := m.svc.Contracts.Create(ctx, req)
						return contractMsg{c: c, err: err}
					}
				})
			})
		})
	case "enter":
		c, ok := m.contracts.selected()
		if !ok {
			return nil
		}
		m.contract = &contractPanel{draft: viewstate.DraftFromContract(c), loading: true}
		ctx := m.ctx
		return func() tea.Msg {
			full, err := m.svc.Contracts.Get(ctx, c.ID)
			return contractMsg{c: full, err: err}
		}
	}
	return nil
}

// contractPanel shows one contract with its figures; the cursor walks the
// figures for editing.
type contractPanel struct {
	draft   *viewstate.ContractDraft
	cursor  int
	loading bool
	revenue *entities.Revenue
}

func (m *Model) contractLoaded(msg contractMsg) tea.Cmd {
	reload := m.reload(tabContracts)
	if m.contract == nil {
		return reload
	}
	m.contract.loading = false
	if msg.err != nil {
		m.fail(msg.err)
		if m.contract.draft.Contract().ID == 0 {
			m.contract = nil
		}
		return reload
	}
	m.contract.draft = viewstate.DraftFromContract(msg.c)
	return m.reload(tabContracts, tabHistory, tabProducts)
}

func (m *Model) revenueLoaded(msg revenueMsg) {
	if msg.err != nil {
		m.fail(msg.err)
		return
	}
	if m.contract != nil {
		m.contract.revenue = &msg.r
	}
}

func (m *Model) contractKey(msg tea.KeyMsg) tea.Cmd {
	p := m.contract
	if p.loading {
		if msg.Type == tea.KeyEsc {
			m.contract = nil
		}
		return nil
	}
	d := p.draft
	cur := d.Contract()
	switch msg.String() {
	case "esc":
		m.contract = nil
	case "up", "k":
		p.cursor = max(p.cursor-1, 0)
	case "down", "j":
		p.cursor = min(p.cursor+1, len(viewstate.Figures)-1)
	case "enter", "e":
		fig := viewstate.Figures[p.cursor]
		if !d.FiguresEditable() {
			m.fail(viewstate.ErrNotEditable)
			return nil
		}
		value := ""
		if v := d.FigureValue(fig); v != nil {
			value = fmt.Sprint(*v)
		}
		return m.openPrompt(figureLabels[fig], "value", value, func(v string) tea.Cmd {
			if v == "" {
				return nil
			}
			f, err := parseNumber(v)
			if err == nil {
				err = d.SetFigure(fig, &f)
			}
			m.fail(err)
			return nil
		})
	case "c":
		return m.openPrompt("Client", "client name", cur.ClientName, func(v string) tea.Cmd {
			d.SetClient(v)
			return nil
		})
	case "l":
		return m.openPrompt("Location", "address", cur.Location, func(v string) tea.Cmd {
			d.SetLocation(v)
			return nil
		})
	case "t":
		return m.openPrompt("Contract date", "YYYY-MM-DD", cur.ContractDate.Date(), func(v string) tea.Cmd {
			m.fail(d.SetDate(v))
			return nil
		})
	case "ctrl+s":
		if !d.Dirty() {
			return nil
		}
		return m.contractAction(func(ctx context.Context, c entities.Contract) (entities.Contract, error) {
			return m.svc.Contracts.Save(ctx, c, d.UpdateRequest())
		})
	case "w":
		return m.contractAction(m.svc.Contracts.WriteOffPipes)
	case "r":
		return m.contractAction(m.svc.Contracts.Reopen)
	case "g":
		ctx := m.ctx
		return func() tea.Msg {
			doc, err := m.svc.Contracts.GenerateDocument(ctx, cur)
			if err != nil {
				return savedMsg{err: err}
			}
			return m.saveDocument(doc)
		}
	case "v":
		ctx := m.ctx
		return m.openPrompt("Minimum price (optional)", "min price", "", func(v string) tea.Cmd {
			req := request.RevenueFromContract(cur)
			if v != "" {
				floor, err := parseNumber(v)
				if err != nil {
					m.fail(err)
					return nil
				}
				req.MinPrice = &floor
			}
			return func() tea.Msg {
				r, err := m.svc.Contracts.CalculateRevenue(ctx, cur, req)
				return revenueMsg{r: r, err: err}
			}
		})
	}
	return nil
}

// contractAction runs fn against the loaded contract. The server copy
// returned replaces the draft.
func (m *Model) contractAction(fn func(ctx context.Context, c entities.Contract) (entities.Contract, error)) tea.Cmd {
	cur, ctx := m.contract.draft.Contract(), m.ctx
	return func() tea.Msg {
		c, err := fn(ctx, cur)
		return contractMsg{c: c, err: err}
	}
}

func (p *contractPanel) view(f format.Formatter, w int) string {
	if p.loading {
		return faint.Render("Loading contract…")
	}
	d := p.draft
	c := d.Contract()
	var b strings.Builder
	b.WriteString(bold.Render("Contract "+c.ContractNumber) + "  " + c.Status.Label())
	if d.Dirty() {
		b.WriteString(pending.Render("  (unsaved)"))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Date: %s   Client: %s\nLocation: %s\n", dash(f.Date(c.ContractDate.Time)), dash(c.ClientName), dash(c.Location)))
	if c.PassportSeriesNumber != nil {
		b.WriteString(faint.Render("Passport: "+*c.PassportSeriesNumber) + "\n")
	}
	b.WriteString("\n")

	editable := d.FiguresEditable()
	for i, fig := range viewstate.Figures {
		value := "—"
		if v := d.FigureValue(fig); v != nil {
			value = f.Number(*v)
		}
		line := fmt.Sprintf("%-26s %s", figureLabels[fig], value)
		switch {
		case i == p.cursor:
			line = selected.Render(line)
		case !editable:
			line = readOnly.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if warning := lifecycle.Contract(c.Status).ReopenWarning; warning != "" {
		b.WriteString("\n" + pending.Render(warning) + "\n")
	}

	if r := p.revenue; r != nil && r.ContractID == c.ID {
		b.WriteString("\n" + bold.Render("Revenue") + "\n")
		for _, l := range r.Items {
			sum := "—"
			if l.Sum != nil {
				sum = f.Money(*l.Sum)
			}
			b.WriteString(fmt.Sprintf("  %-30s %s\n", format.Truncate(l.Name, 30), sum))
		}
		b.WriteString(fmt.Sprintf("  Total %s · net profit %s\n", f.Money(r.Total), f.Money(r.NetProfit)))
	}
	return b.String()
}

func (p *contractPanel) help() string {
	d := p.draft
	keys := []string{"esc: back", "c/l/t: header"}
	if d.FiguresEditable() {
		keys = append(keys, "enter: edit figure")
	}
	if d.Allows(lifecycle.ActionSave) {
		keys = append(keys, "ctrl+s: save")
	}
	if d.Allows(lifecycle.ActionWriteOffPipes) {
		keys = append(keys, "w: write off pipes")
	}
	if d.Allows(lifecycle.ActionReopen) {
		keys = append(keys, "r: reopen")
	}
	if d.Allows(lifecycle.ActionGenerateDocument) {
		keys = append(keys, "g: document")
	}
	if d.Allows(lifecycle.ActionCalculateRevenue) {
		keys = append(keys, "v: revenue")
	}
	return strings.Join(keys, "  ")
}
