// Package tui is the interactive terminal console. It is one bubbletea
// event loop; every backend call runs as a command and comes back as a
// message.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sklad/internal/domain/entities"
	"sklad/internal/format"
	"sklad/internal/infrastructure/logging"
	"sklad/internal/usecase"
	"sklad/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type tab int

const (
	tabProducts tab = iota
	tabEstimates
	tabContracts
	tabHistory
	tabWorkers
	tabAssistant
)

var tabNames = [...]string{"Products", "Estimates", "Contracts", "History", "Workers", "Assistant"}

// Services are the use cases the console drives.
type Services struct {
	Products    usecase.IProductUseCase
	Estimates   usecase.IEstimateUseCase
	Contracts   usecase.IContractUseCase
	Movements   usecase.IMovementUseCase
	Workers     usecase.IWorkerUseCase
	WorkerStock usecase.IWorkerStockUseCase
	Reports     usecase.IReportUseCase
	Assistant   usecase.IAssistantUseCase
	Auth        usecase.IAuthUseCase
}

type Options struct {
	PageSize int
	Debounce time.Duration
	Format   format.Formatter
	// OutputDir receives printed estimates and contract documents.
	OutputDir string
	Logger    log.FieldLogger
	// SignIn opens the sign-in dialog at start.
	SignIn bool
}

// doneMsg ends a mutation. The listed tabs are reloaded either way since
// the backend may have applied part of the change.
type doneMsg struct {
	err    error
	reload []tab
}

// optimisticMsg ends a request whose effect is already on screen.
type optimisticMsg struct {
	err      error
	rollback func()
	// report is set when the use case does not notify failures itself.
	report bool
}

type dashboardMsg struct {
	summary entities.DashboardSummary
	err     error
}

type refreshMsg struct {
	reason string
}

// screen is the part of a list tab the loop drives without knowing the
// row type.
type screen interface {
	load(ctx context.Context) tea.Cmd
	move(delta int)
	clamp()
	page(ctx context.Context, delta int) tea.Cmd
	startSearch() tea.Cmd
	searchKey(msg tea.KeyMsg) tea.Cmd
	fire(ctx context.Context, seq int) tea.Cmd
	searching() bool
	view(w, h int) string
}

func (s *listScreen[T]) searching() bool { return s.typing }

type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	svc    Services
	opts   Options
	fmt    format.Formatter
	log    log.FieldLogger
	feed   *viewstate.Feed

	modal  viewstate.Modal
	dialog dialog

	refresh     <-chan string
	unsubscribe func()

	width  int
	height int
	tab    tab

	products  *listScreen[entities.Product]
	estimates *listScreen[entities.Estimate]
	contracts *listScreen[entities.Contract]
	history   *listScreen[entities.Movement]
	workers   *listScreen[entities.Worker]

	dashboard *entities.DashboardSummary
	editor    *estimateEditor
	contract  *contractPanel
	stock     *stockPanel
	assistant *assistantPanel
	signingIn bool
}

var _ tea.Model = (*Model)(nil)

func New(ctx context.Context, svc Services, bridge *Bridge, bus *viewstate.RefreshBus, opts Options) *Model {
	if opts.Format == (format.Formatter{}) {
		opts.Format = format.New("ru")
	}
	if opts.PageSize <= 0 {
		opts.PageSize = viewstate.DefaultPageSize
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	ctx, cancel := context.WithCancel(ctx)
	m := &Model{
		ctx:       ctx,
		cancel:    cancel,
		svc:       svc,
		opts:      opts,
		fmt:       opts.Format,
		log:       logging.Scoped(opts.Logger, "tui"),
		feed:      bridge.Feed(),
		width:     100,
		height:    30,
		assistant: newAssistantPanel(),
	}
	if bus != nil {
		m.refresh, m.unsubscribe = bus.Subscribe(4)
	}
	m.products = m.newProductsScreen(bridge)
	m.estimates = m.newEstimatesScreen(bridge)
	m.contracts = m.newContractsScreen(bridge)
	m.history = m.newHistoryScreen(bridge)
	m.workers = m.newWorkersScreen(bridge)
	return m
}

// Run shows the console until the operator quits or ctx ends.
func Run(ctx context.Context, svc Services, bridge *Bridge, bus *viewstate.RefreshBus, opts Options) error {
	m := New(ctx, svc, bridge, bus, opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	bridge.Attach(p.Send)
	defer bridge.Attach(nil)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Close stops pending commands and leaves the refresh bus.
func (m *Model) Close() {
	m.cancel()
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m *Model) Init() tea.Cmd {
	if m.opts.SignIn {
		return tea.Batch(m.openLogin(), m.waitRefresh())
	}
	return tea.Batch(
		m.products.load(m.ctx),
		m.estimates.load(m.ctx),
		m.contracts.load(m.ctx),
		m.history.load(m.ctx),
		m.workers.load(m.ctx),
		m.loadDashboard(),
		m.waitRefresh(),
	)
}

func (m *Model) screen(t tab) screen {
	switch t {
	case tabProducts:
		return m.products
	case tabEstimates:
		return m.estimates
	case tabContracts:
		return m.contracts
	case tabHistory:
		return m.history
	case tabWorkers:
		return m.workers
	}
	return nil
}

func (m *Model) reload(tabs ...tab) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(tabs)+1)
	for _, t := range tabs {
		if s := m.screen(t); s != nil {
			cmds = append(cmds, s.load(m.ctx))
		}
	}
	cmds = append(cmds, m.loadDashboard())
	return tea.Batch(cmds...)
}

func (m *Model) loadDashboard() tea.Cmd {
	if m.svc.Reports == nil {
		return nil
	}
	ctx, reports := m.ctx, m.svc.Reports
	return func() tea.Msg {
		s, err := reports.Dashboard(ctx)
		return dashboardMsg{summary: s, err: err}
	}
}

func (m *Model) waitRefresh() tea.Cmd {
	if m.refresh == nil {
		return nil
	}
	ch := m.refresh
	return func() tea.Msg {
		reason, ok := <-ch
		if !ok {
			return nil
		}
		return refreshMsg{reason: reason}
	}
}

// run executes fn as a command and reloads the given tabs afterwards.
func (m *Model) run(fn func(ctx context.Context) error, reload ...tab) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return doneMsg{err: fn(ctx), reload: reload}
	}
}

// fail shows err unless the operator cancelled or the use case already
// reported the same failure.
func (m *Model) fail(err error) {
	if err == nil || errors.Is(err, usecase.ErrCancelled) || errors.Is(err, context.Canceled) {
		return
	}
	if last, ok := m.feed.Latest(); ok && last.Level == viewstate.LevelFailure && strings.Contains(err.Error(), last.Message) {
		return
	}
	m.feed.Failure(err.Error())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case noticeMsg:
		return m, nil

	case confirmMsg:
		m.openConfirm(msg)
		return m, nil

	case loginMsg:
		return m, m.openLogin()

	case signedInMsg:
		return m, m.signedIn(msg)

	case loadedMsg:
		msg.done()
		for t := tabProducts; t < tabAssistant; t++ {
			m.screen(t).clamp()
		}
		return m, nil

	case searchTickMsg:
		if s := m.screen(msg.tab); s != nil {
			return m, s.fire(m.ctx, msg.seq)
		}
		return m, nil

	case dashboardMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Debug("dashboard")
			return m, nil
		}
		m.dashboard = &msg.summary
		return m, nil

	case refreshMsg:
		m.log.WithField("reason", msg.reason).Debug("refresh")
		cmds := []tea.Cmd{m.reload(tabProducts, tabEstimates, tabContracts, tabHistory, tabWorkers), m.waitRefresh()}
		if m.stock != nil {
			cmds = append(cmds, m.loadStock(m.stock.worker))
		}
		return m, tea.Batch(cmds...)

	case doneMsg:
		m.fail(msg.err)
		return m, m.reload(msg.reload...)

	case optimisticMsg:
		if msg.err != nil {
			msg.rollback()
			if msg.report {
				m.fail(msg.err)
			}
		}
		return m, nil

	case estimateMsg:
		return m, m.estimateLoaded(msg)

	case contractMsg:
		return m, m.contractLoaded(msg)

	case revenueMsg:
		m.revenueLoaded(msg)
		return m, nil

	case stockMsg:
		m.stockLoaded(msg)
		return m, nil

	case chatMsg:
		m.assistant.received(msg)
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.fail(msg.err)
		} else {
			m.feed.Success("Saved " + msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, m.assistant.update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.modal.IsOpen() {
		return m.updateDialog(msg)
	}
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	if m.tab == tabAssistant {
		switch msg.String() {
		case "tab", "shift+tab":
			m.switchTab(msg.String())
			return nil
		}
		return m.assistantKey(msg)
	}

	s := m.screen(m.tab)
	if s.searching() {
		return s.searchKey(msg)
	}
	if m.tab == tabEstimates && m.editor != nil {
		return m.editorKey(msg)
	}
	if m.tab == tabContracts && m.contract != nil {
		return m.contractKey(msg)
	}
	if m.tab == tabWorkers && m.stock != nil {
		if cmd, ok := m.stockKey(msg); ok {
			return cmd
		}
	}

	switch key := msg.String(); key {
	case "q":
		return tea.Quit
	case "tab", "shift+tab":
		m.switchTab(key)
	case "1", "2", "3", "4", "5", "6":
		m.tab = tab(key[0] - '1')
	case "up", "k":
		s.move(-1)
	case "down", "j":
		s.move(1)
	case "right", "l", "pgdown":
		return s.page(m.ctx, 1)
	case "left", "h", "pgup":
		return s.page(m.ctx, -1)
	case "/":
		return s.startSearch()
	case "ctrl+r":
		return m.reload(m.tab)
	default:
		switch m.tab {
		case tabProducts:
			return m.productsKey(key)
		case tabEstimates:
			return m.estimatesKey(key)
		case tabContracts:
			return m.contractsKey(key)
		case tabHistory:
			return m.historyKey(key)
		case tabWorkers:
			return m.workersKey(key)
		}
	}
	return nil
}

func (m *Model) switchTab(key string) {
	n := tab(len(tabNames))
	if key == "shift+tab" {
		m.tab = (m.tab + n - 1) % n
	} else {
		m.tab = (m.tab + 1) % n
	}
}

func (m *Model) View() string {
	w, h := max(m.width, 40), max(m.height, 12)

	top := m.tabsView() + "\n" + m.dashboardView(w)
	footer := m.minibufferView(w) + "\n" + faint.Render(xansi.Truncate(m.help(), w, "…"))
	bodyH := h - lipgloss.Height(top) - lipgloss.Height(footer) - 1

	var body string
	switch {
	case m.tab == tabAssistant:
		body = m.assistant.view(w, bodyH)
	case m.tab == tabEstimates && m.editor != nil:
		body = m.editor.view(m.fmt, w)
	case m.tab == tabContracts && m.contract != nil:
		body = m.contract.view(m.fmt, w)
	case m.tab == tabWorkers && m.stock != nil:
		body = m.workers.view(w, bodyH/2) + "\n" + m.stock.view(m.fmt, w)
	default:
		body = m.screen(m.tab).view(w, bodyH)
	}
	body = strings.Join(splitLinesN(body, bodyH), "\n")

	frame := top + "\n" + body + "\n" + footer
	if !m.modal.IsOpen() {
		return frame
	}
	return overlayCenter(dim(frame), m.renderDialog(), w, h)
}

func (m *Model) tabsView() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == m.tab {
			parts[i] = activeTab.Render(label)
		} else {
			parts[i] = inactiveTab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) dashboardView(w int) string {
	d := m.dashboard
	if d == nil {
		return faint.Render("…")
	}
	line := fmt.Sprintf("to order: %d · estimates in work: %d · contracts in work: %d · profit 30d: %s · drilling 30d: %s",
		d.ProductsToOrderCount, d.EstimatesInProgressCount, d.ContractsInProgressCount,
		m.fmt.Money(d.ProfitLast30Days), m.fmt.Money(d.DrillingProfitLast30Days))
	return faint.Render(xansi.Truncate(line, w, "…"))
}

func (m *Model) minibufferView(w int) string {
	n, ok := m.feed.Latest()
	if !ok {
		return minibuffer.Width(w).Render(" ")
	}
	txt := strings.TrimSpace(strings.ReplaceAll(n.Message, "\n", " "))
	txt = xansi.Truncate(txt, w-2, "…")
	switch n.Level {
	case viewstate.LevelFailure:
		txt = failure.Render(txt)
	case viewstate.LevelSuccess:
		txt = success.Render(txt)
	default:
		txt = pending.Render(txt)
	}
	return minibuffer.Width(w).Render(txt)
}

func (m *Model) help() string {
	common := "tab: switch  /: search  ←/→: page  ctrl+r: reload  q: quit"
	switch {
	case m.tab == tabAssistant:
		return "enter: send  ctrl+l: clear  tab: switch  ctrl+c: quit"
	case m.tab == tabEstimates && m.editor != nil:
		return m.editor.help()
	case m.tab == tabContracts && m.contract != nil:
		return m.contract.help()
	case m.tab == tabWorkers && m.stock != nil:
		return "r: return  w: write off  R: return all  esc: close  " + common
	case m.tab == tabProducts:
		return "f: favorite  d: delete  u: restore  i: receive  s: stock filter  " + common
	case m.tab == tabEstimates:
		return "enter: open  n: new  " + common
	case m.tab == tabContracts:
		return "enter: open  n: new  o: sort by date  W: write off all  " + common
	case m.tab == tabHistory:
		if mv, ok := m.history.selected(); ok && mv.Cancellable() {
			return "x: cancel movement  w: worker  t: type  d: dates  c: clear filters  " + common
		}
		return "w: worker  t: type  d: dates  c: clear filters  " + common
	case m.tab == tabWorkers:
		return "enter: stock  n: new  e: rename  d: delete  g: give item  " + common
	}
	return common
}
