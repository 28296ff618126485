package fakeapi

import (
	"net/http"
	"sort"
	"strconv"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/domain/lifecycle"
	"sklad/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errEstimateNotFound = pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Смета не найдена", http.StatusNotFound)
	errWrongStatus      = pkg.NewDomainErrorSimple("INVALID_STATUS", "Действие недоступно в текущем статусе сметы", http.StatusBadRequest)
	errWorkerNotFound   = pkg.NewDomainErrorSimple("WORKER_NOT_FOUND", "Работник не найден", http.StatusNotFound)
)

func estimateOf(c *gin.Context, st *store) (*entities.Estimate, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}
	e, ok := st.estimates[id]
	if !ok {
		abort(c, errEstimateNotFound)
		return nil, false
	}
	return e, true
}

func workerOf(c *gin.Context, st *store) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("worker_id"), 10, 64)
	if err != nil || st.workers[id] == nil {
		abort(c, errWorkerNotFound)
		return 0, false
	}
	return id, true
}

func listEstimates(c *gin.Context, st *store) {
	search := c.Query("search")
	out := make([]entities.Estimate, 0, len(st.estimates))
	for _, e := range st.estimates {
		if search != "" && !containsFold(e.EstimateNumber, search) && !containsFold(e.ClientName, search) && !containsFold(e.LocationOrEmpty(), search) {
			continue
		}
		out = append(out, st.estimateWithNames(*e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	c.JSON(http.StatusOK, paginate(c, out, 20))
}

func getEstimate(c *gin.Context, st *store) {
	e, ok := estimateOf(c, st)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, st.estimateWithNames(*e))
}

func itemsFrom(st *store, lines []request.EstimateItemRequest) ([]entities.EstimateItem, *pkg.AppError) {
	items := make([]entities.EstimateItem, 0, len(lines))
	for _, l := range lines {
		p := st.products[l.ProductID]
		if p == nil || p.IsDeleted {
			return nil, detail(http.StatusNotFound, "Товар с ID "+strconv.FormatInt(l.ProductID, 10)+" не найден")
		}
		price := p.RetailPrice
		if l.UnitPrice != nil {
			price = *l.UnitPrice
		}
		items = append(items, entities.EstimateItem{ID: st.id(), ProductID: l.ProductID, Quantity: l.Quantity, UnitPrice: price})
	}
	return items, nil
}

func createEstimate(c *gin.Context, st *store) {
	var payload request.EstimateCreateRequest
	if !bind(c, &payload) {
		return
	}
	items, appErr := itemsFrom(st, payload.Items)
	if appErr != nil {
		abort(c, appErr)
		return
	}
	e := &entities.Estimate{
		ID:             st.id(),
		EstimateNumber: payload.EstimateNumber,
		ClientName:     payload.ClientName,
		Location:       payload.Location,
		Status:         lifecycle.NewEstimateStatus,
		CreatedAt:      entities.NewTimestamp(st.now().UTC()),
		Items:          items,
	}
	st.estimates[e.ID] = e
	c.JSON(http.StatusOK, st.estimateWithNames(*e))
}

func updateEstimate(c *gin.Context, st *store) {
	e, ok := estimateOf(c, st)
	if !ok {
		return
	}
	var payload request.EstimateUpdateRequest
	if !bind(c, &payload) {
		return
	}
	editable := lifecycle.Estimate(e.Status).HeaderEditable
	if !editable && (payload.EstimateNumber != nil || payload.ClientName != nil || payload.Location != nil || payload.Items != nil) {
		abort(c, errWrongStatus)
		return
	}
	if payload.Items != nil {
		items, appErr := itemsFrom(st, *payload.Items)
		if appErr != nil {
			abort(c, appErr)
			return
		}
		e.Items = items
	}
	if payload.EstimateNumber != nil {
		e.EstimateNumber = *payload.EstimateNumber
	}
	if payload.ClientName != nil {
		e.ClientName = *payload.ClientName
	}
	if payload.Location != nil {
		e.Location = payload.Location
	}
	if payload.Status != nil {
		e.Status = *payload.Status
	}
	c.JSON(http.StatusOK, st.estimateWithNames(*e))
}

func deleteEstimate(c *gin.Context, st *store) {
	e, ok := estimateOf(c, st)
	if !ok {
		return
	}
	if !lifecycle.EstimateAllows(e.Status, lifecycle.ActionDelete) {
		abort(c, errWrongStatus)
		return
	}
	delete(st.estimates, e.ID)
	c.Status(http.StatusNoContent)
}

// transition checks the lifecycle table, runs effect and moves the estimate
// to the action's target status.
func transition(c *gin.Context, st *store, action lifecycle.Action, effect func(e *entities.Estimate) *pkg.AppError) {
	e, ok := estimateOf(c, st)
	if !ok {
		return
	}
	if !lifecycle.EstimateAllows(e.Status, action) {
		abort(c, errWrongStatus)
		return
	}
	if effect != nil {
		if appErr := effect(e); appErr != nil {
			abort(c, appErr)
			return
		}
	}
	if to, ok := lifecycle.EstimateTarget(e.Status, action); ok {
		e.Status = to
	}
	message(c, "Смета "+e.EstimateNumber+": "+string(e.Status))
}

func issueToWorker(st *store, e *entities.Estimate, items []entities.EstimateItem, workerID int64) *pkg.AppError {
	for _, it := range items {
		if p := st.products[it.ProductID]; p == nil || p.StockQuantity < it.Quantity {
			return detail(http.StatusBadRequest, "Недостаточно товара на складе")
		}
	}
	for _, it := range items {
		st.products[it.ProductID].StockQuantity -= it.Quantity
		st.onHand[[2]int64{workerID, it.ProductID}] += it.Quantity
		st.move(it.ProductID, workerID, entities.MovementIssueToWorker, -it.Quantity)
	}
	e.WorkerID = &workerID
	return nil
}

func shipEstimate(c *gin.Context, st *store) {
	workerID, ok := workerOf(c, st)
	if !ok {
		return
	}
	transition(c, st, lifecycle.ActionShip, func(e *entities.Estimate) *pkg.AppError {
		if len(e.Items) == 0 {
			return detail(http.StatusBadRequest, "Смета пуста")
		}
		if appErr := issueToWorker(st, e, e.Items, workerID); appErr != nil {
			return appErr
		}
		shipped := entities.NewTimestamp(st.now().UTC())
		e.ShippedAt = &shipped
		return nil
	})
}

func assignWorker(c *gin.Context, st *store) {
	workerID, ok := workerOf(c, st)
	if !ok {
		return
	}
	transition(c, st, lifecycle.ActionAssignWorker, func(e *entities.Estimate) *pkg.AppError {
		e.WorkerID = &workerID
		return nil
	})
}

func issueAdditional(c *gin.Context, st *store) {
	var payload request.AddItemsRequest
	if !bind(c, &payload) {
		return
	}
	transition(c, st, lifecycle.ActionIssueAdditional, func(e *entities.Estimate) *pkg.AppError {
		if !e.HasWorker() {
			return detail(http.StatusBadRequest, "К смете не привязан работник")
		}
		items, appErr := itemsFrom(st, payload.Items)
		if appErr != nil {
			return appErr
		}
		if appErr := issueToWorker(st, e, items, *e.WorkerID); appErr != nil {
			return appErr
		}
		e.Items = append(e.Items, items...)
		return nil
	})
}

func completeEstimate(c *gin.Context, st *store) {
	transition(c, st, lifecycle.ActionComplete, func(e *entities.Estimate) *pkg.AppError {
		if !e.HasWorker() {
			return detail(http.StatusBadRequest, "К смете не привязан работник")
		}
		for _, it := range e.Items {
			key := [2]int64{*e.WorkerID, it.ProductID}
			st.onHand[key] -= it.Quantity
			st.move(it.ProductID, *e.WorkerID, entities.MovementWriteOffEstimate, -it.Quantity)
		}
		return nil
	})
}

func cancelCompletion(c *gin.Context, st *store) {
	transition(c, st, lifecycle.ActionCancelCompletion, func(e *entities.Estimate) *pkg.AppError {
		for _, it := range e.Items {
			st.onHand[[2]int64{*e.WorkerID, it.ProductID}] += it.Quantity
			st.move(it.ProductID, *e.WorkerID, entities.ReversalOf(entities.MovementWriteOffEstimate), it.Quantity)
		}
		return nil
	})
}

func cancelEstimate(c *gin.Context, st *store) {
	transition(c, st, lifecycle.ActionCancel, func(e *entities.Estimate) *pkg.AppError {
		if !e.HasWorker() {
			return nil
		}
		for _, it := range e.Items {
			st.onHand[[2]int64{*e.WorkerID, it.ProductID}] -= it.Quantity
			st.products[it.ProductID].StockQuantity += it.Quantity
			st.move(it.ProductID, *e.WorkerID, entities.MovementReturnFromWorker, it.Quantity)
		}
		return nil
	})
}

func reopenEstimate(c *gin.Context, st *store) {
	workerID, ok := workerOf(c, st)
	if !ok {
		return
	}
	transition(c, st, lifecycle.ActionReopen, func(e *entities.Estimate) *pkg.AppError {
		return issueToWorker(st, e, e.Items, workerID)
	})
}

func updateEstimateItem(c *gin.Context, st *store) {
	e, ok := estimateOf(c, st)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	price, err := strconv.ParseFloat(c.Query("unit_price"), 64)
	if err != nil || price < 0 {
		abort(c, errInvalidPayload)
		return
	}
	if !lifecycle.EstimatePriceEditable(e.Status) {
		abort(c, errWrongStatus)
		return
	}
	for i := range e.Items {
		if e.Items[i].ID != itemID {
			continue
		}
		e.Items[i].UnitPrice = price
		if q, err := strconv.ParseFloat(c.Query("quantity"), 64); err == nil && lifecycle.EstimateQuantityEditable(e.Status) {
			e.Items[i].Quantity = q
		}
		c.JSON(http.StatusOK, e.Items[i])
		return
	}
	abort(c, errNotFound)
}
