package fakeapi

import (
	"sort"
	"time"

	"sklad/internal/domain/entities"
)

type store struct {
	now func() time.Time

	nextID    int64
	products  map[int64]*entities.Product
	workers   map[int64]*entities.Worker
	estimates map[int64]*entities.Estimate
	contracts map[int64]*entities.Contract
	movements []movementRow
	onHand    map[[2]int64]float64
	chatReply entities.ChatReply
	dashboard entities.DashboardSummary
	profit    entities.ProfitReport
}

type movementRow struct {
	entities.Movement
	productID int64
	workerID  int64
}

func newStore(now func() time.Time) *store {
	return &store{
		now:        now,
		nextID:     1,
		products:   map[int64]*entities.Product{},
		workers:    map[int64]*entities.Worker{},
		estimates:  map[int64]*entities.Estimate{},
		contracts:  map[int64]*entities.Contract{},
		onHand:     map[[2]int64]float64{},
	}
}

func (st *store) id() int64 {
	id := st.nextID
	st.nextID++
	return id
}

func (st *store) keep(id int64) {
	if id >= st.nextID {
		st.nextID = id + 1
	}
}

func (st *store) move(productID, workerID int64, t entities.MovementType, qty float64) entities.Movement {
	p := st.products[productID]
	m := entities.Movement{
		ID:        st.id(),
		Timestamp: entities.NewTimestamp(st.now().UTC()),
		Type:      t,
		Quantity:  qty,
	}
	if p != nil {
		after := p.StockQuantity
		m.StockAfter = &after
		m.Product = entities.NamedRef{Name: p.Name}
	}
	if w := st.workers[workerID]; w != nil {
		m.Worker = &entities.NamedRef{Name: w.Name}
	}
	st.movements = append(st.movements, movementRow{Movement: m, productID: productID, workerID: workerID})
	return m
}

func (st *store) productList() []entities.Product {
	out := make([]entities.Product, 0, len(st.products))
	for _, p := range st.products {
		if !p.IsDeleted {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsFavorite != out[j].IsFavorite {
			return out[i].IsFavorite
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (st *store) estimateWithNames(e entities.Estimate) entities.Estimate {
	items := make([]entities.EstimateItem, len(e.Items))
	total := 0.0
	for i, it := range e.Items {
		if p := st.products[it.ProductID]; p != nil {
			it.ProductName = p.Name
		}
		items[i] = it
		total += it.Quantity * it.UnitPrice
	}
	e.Items = items
	e.TotalSum = total
	return e
}

// Seeding is for tests; every Seed call replaces or adds by ID.

func (s *Server) SeedProducts(products ...entities.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		p := p
		s.store.keep(p.ID)
		s.store.products[p.ID] = &p
	}
}

func (s *Server) SeedWorkers(workers ...entities.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range workers {
		w := w
		s.store.keep(w.ID)
		s.store.workers[w.ID] = &w
	}
}

func (s *Server) SeedEstimates(estimates ...entities.Estimate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range estimates {
		e := e
		s.store.keep(e.ID)
		for _, it := range e.Items {
			s.store.keep(it.ID)
		}
		s.store.estimates[e.ID] = &e
	}
}

func (s *Server) SeedContracts(contracts ...entities.Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range contracts {
		c := c
		s.store.keep(c.ID)
		s.store.contracts[c.ID] = &c
	}
}

// SeedMovement records a ledger entry as if an action produced it.
func (s *Server) SeedMovement(productID, workerID int64, t entities.MovementType, qty float64) entities.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.move(productID, workerID, t, qty)
}

func (s *Server) SeedWorkerStock(workerID, productID int64, qty float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.onHand[[2]int64{workerID, productID}] = qty
}

func (s *Server) SetChatReply(r entities.ChatReply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.chatReply = r
}

func (s *Server) SetDashboard(d entities.DashboardSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.dashboard = d
}

func (s *Server) SetProfitReport(r entities.ProfitReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.profit = r
}

// Estimate returns the stored estimate, for assertions.
func (s *Server) Estimate(id int64) (entities.Estimate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.store.estimates[id]
	if !ok {
		return entities.Estimate{}, false
	}
	return *e, true
}

func (s *Server) Product(id int64) (entities.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.store.products[id]
	if !ok {
		return entities.Product{}, false
	}
	return *p, true
}
