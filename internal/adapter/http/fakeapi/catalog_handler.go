package fakeapi

import (
	"net/http"
	"strconv"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func productOf(c *gin.Context, st *store) (*entities.Product, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}
	p, ok := st.products[id]
	if !ok {
		abort(c, errNotFound)
		return nil, false
	}
	return p, true
}

func listProducts(c *gin.Context, st *store) {
	search := c.Query("search")
	status := entities.StockStatus(c.DefaultQuery("stock_status", string(entities.StockStatusAll)))
	out := []entities.Product{}
	for _, p := range st.productList() {
		if search != "" && !containsFold(p.Name, search) && !containsFold(p.InternalSKU, search) {
			continue
		}
		if status == entities.StockStatusLow && !p.IsLowStock() {
			continue
		}
		if status == entities.StockStatusOutOfStock && !p.IsOutOfStock() {
			continue
		}
		out = append(out, p)
	}
	c.JSON(http.StatusOK, paginate(c, out, 50))
}

func createProduct(c *gin.Context, st *store) {
	var payload request.ProductCreateRequest
	if !bind(c, &payload) {
		return
	}
	p := &entities.Product{
		ID:            st.id(),
		Name:          payload.Name,
		InternalSKU:   payload.InternalSKU,
		SupplierSKU:   payload.SupplierSKU,
		Unit:          payload.Unit,
		PurchasePrice: payload.PurchasePrice,
		RetailPrice:   payload.RetailPrice,
		StockQuantity: payload.StockQuantity,
		MinStockLevel: payload.MinStockLevel,
	}
	st.products[p.ID] = p
	c.JSON(http.StatusOK, p)
}

func updateProduct(c *gin.Context, st *store) {
	p, ok := productOf(c, st)
	if !ok {
		return
	}
	var payload request.ProductUpdateRequest
	if !bind(c, &payload) {
		return
	}
	if payload.Name != nil {
		p.Name = *payload.Name
	}
	if payload.InternalSKU != nil {
		p.InternalSKU = *payload.InternalSKU
	}
	if payload.SupplierSKU != nil {
		p.SupplierSKU = payload.SupplierSKU
	}
	if payload.Unit != nil {
		p.Unit = *payload.Unit
	}
	if payload.PurchasePrice != nil {
		p.PurchasePrice = *payload.PurchasePrice
	}
	if payload.RetailPrice != nil {
		p.RetailPrice = *payload.RetailPrice
	}
	if payload.StockQuantity != nil {
		p.StockQuantity = *payload.StockQuantity
	}
	if payload.MinStockLevel != nil {
		p.MinStockLevel = *payload.MinStockLevel
	}
	if payload.IsFavorite != nil {
		p.IsFavorite = *payload.IsFavorite
	}
	c.JSON(http.StatusOK, p)
}

func deleteProduct(c *gin.Context, st *store) {
	if p, ok := productOf(c, st); ok {
		p.IsDeleted = true
		c.JSON(http.StatusOK, p)
	}
}

func restoreProduct(c *gin.Context, st *store) {
	if p, ok := productOf(c, st); ok {
		p.IsDeleted = false
		c.JSON(http.StatusOK, p)
	}
}

func toggleFavorite(c *gin.Context, st *store) {
	if p, ok := productOf(c, st); ok {
		p.IsFavorite = !p.IsFavorite
		c.JSON(http.StatusOK, p)
	}
}

func listWorkers(c *gin.Context, st *store) {
	out := make([]entities.Worker, 0, len(st.workers))
	for id := int64(1); id < st.nextID; id++ {
		if w := st.workers[id]; w != nil {
			out = append(out, *w)
		}
	}
	c.JSON(http.StatusOK, out)
}

func createWorker(c *gin.Context, st *store) {
	var payload request.WorkerRequest
	if !bind(c, &payload) {
		return
	}
	w := &entities.Worker{ID: st.id(), Name: payload.Name}
	st.workers[w.ID] = w
	c.JSON(http.StatusOK, w)
}

func renameWorker(c *gin.Context, st *store) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.WorkerRequest
	if !bind(c, &payload) {
		return
	}
	w := st.workers[id]
	if w == nil {
		abort(c, errWorkerNotFound)
		return
	}
	w.Name = payload.Name
	c.JSON(http.StatusOK, w)
}

func deleteWorker(c *gin.Context, st *store) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if st.workers[id] == nil {
		abort(c, errWorkerNotFound)
		return
	}
	for key, qty := range st.onHand {
		if key[0] == id && qty > 0 {
			abort(c, detail(http.StatusBadRequest, "За работником числятся товары"))
			return
		}
	}
	delete(st.workers, id)
	c.Status(http.StatusNoContent)
}

func receiveItem(c *gin.Context, st *store) {
	var payload request.ReceiveItemRequest
	if !bind(c, &payload) {
		return
	}
	p := st.products[payload.ProductID]
	if p == nil {
		abort(c, errNotFound)
		return
	}
	p.StockQuantity += payload.Quantity
	c.JSON(http.StatusOK, st.move(p.ID, 0, entities.MovementIncome, payload.Quantity))
}

func workerItem(c *gin.Context, st *store) (request.WorkerItemRequest, *entities.Product, bool) {
	var payload request.WorkerItemRequest
	if !bind(c, &payload) {
		return payload, nil, false
	}
	p := st.products[payload.ProductID]
	if p == nil {
		abort(c, errNotFound)
		return payload, nil, false
	}
	if st.workers[payload.WorkerID] == nil {
		abort(c, errWorkerNotFound)
		return payload, nil, false
	}
	return payload, p, true
}

func issueItem(c *gin.Context, st *store) {
	payload, p, ok := workerItem(c, st)
	if !ok {
		return
	}
	if p.StockQuantity < payload.Quantity {
		abort(c, detail(http.StatusBadRequest, "Недостаточно товара на складе"))
		return
	}
	p.StockQuantity -= payload.Quantity
	st.onHand[[2]int64{payload.WorkerID, p.ID}] += payload.Quantity
	c.JSON(http.StatusOK, st.move(p.ID, payload.WorkerID, entities.MovementIssueToWorker, -payload.Quantity))
}

func returnItem(c *gin.Context, st *store) {
	payload, p, ok := workerItem(c, st)
	if !ok {
		return
	}
	key := [2]int64{payload.WorkerID, p.ID}
	if st.onHand[key] < payload.Quantity {
		abort(c, detail(http.StatusBadRequest, "Нельзя вернуть больше, чем числится за работником"))
		return
	}
	st.onHand[key] -= payload.Quantity
	p.StockQuantity += payload.Quantity
	c.JSON(http.StatusOK, st.move(p.ID, payload.WorkerID, entities.MovementReturnFromWorker, payload.Quantity))
}

func writeOffItem(c *gin.Context, st *store) {
	payload, p, ok := workerItem(c, st)
	if !ok {
		return
	}
	key := [2]int64{payload.WorkerID, p.ID}
	if st.onHand[key] < payload.Quantity {
		abort(c, detail(http.StatusBadRequest, "Нельзя списать больше, чем числится за работником"))
		return
	}
	st.onHand[key] -= payload.Quantity
	c.JSON(http.StatusOK, st.move(p.ID, payload.WorkerID, entities.MovementWriteOffWorker, -payload.Quantity))
}

func workerStock(c *gin.Context, st *store) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out := []entities.WorkerStockItem{}
	for pid := int64(1); pid < st.nextID; pid++ {
		qty := st.onHand[[2]int64{id, pid}]
		p := st.products[pid]
		if qty <= 0 || p == nil {
			continue
		}
		out = append(out, entities.WorkerStockItem{ProductID: pid, ProductName: p.Name, QuantityOnHand: qty, Unit: p.Unit})
	}
	c.JSON(http.StatusOK, out)
}

func history(c *gin.Context, st *store) {
	search := c.Query("search")
	workerID, _ := strconv.ParseInt(c.Query("worker_id"), 10, 64)
	movementType := c.Query("movement_type")
	from, to := c.Query("start_date"), c.Query("end_date")

	out := []entities.Movement{}
	for i := len(st.movements) - 1; i >= 0; i-- {
		m := st.movements[i]
		if workerID > 0 && m.workerID != workerID {
			continue
		}
		if movementType != "" && string(m.Type) != movementType {
			continue
		}
		if from != "" && to != "" && (m.Timestamp.Date() < from || m.Timestamp.Date() > to) {
			continue
		}
		if search != "" && !containsFold(m.Product.Name, search) && !containsFold(m.WorkerName(), search) {
			continue
		}
		out = append(out, m.Movement)
	}
	if search != "" && len(out) == 0 {
		c.JSON(http.StatusOK, []entities.Movement{})
		return
	}
	c.JSON(http.StatusOK, paginate(c, out, 50))
}

func cancelMovement(c *gin.Context, st *store) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	for _, m := range st.movements {
		if m.ID != id {
			continue
		}
		if m.Type.IsReversal() {
			abort(c, detail(http.StatusBadRequest, "Нельзя отменить операцию отмены."))
			return
		}
		p := st.products[m.productID]
		if p == nil || p.IsDeleted {
			abort(c, detail(http.StatusNotFound, "Связанный товар был удален."))
			return
		}
		switch m.Type {
		case entities.MovementIncome, entities.MovementReturnFromWorker, entities.MovementIssueToWorker, entities.MovementAdjustment:
			if p.StockQuantity-m.Quantity < 0 {
				abort(c, detail(http.StatusBadRequest, "Отмена операции приведет к отрицательному остатку товара '"+p.Name+"'."))
				return
			}
			p.StockQuantity -= m.Quantity
		}
		st.move(m.productID, m.workerID, entities.ReversalOf(m.Type), -m.Quantity)
		message(c, "Операция ID "+strconv.FormatInt(id, 10)+" успешно отменена.")
		return
	}
	abort(c, errNotFound)
}
