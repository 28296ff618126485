package entities

type Worker struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// WorkerStockItem is a quantity of a product currently held by a worker.
type WorkerStockItem struct {
	ProductID      int64   `json:"product_id"`
	ProductName    string  `json:"product_name"`
	QuantityOnHand float64 `json:"quantity_on_hand"`
	Unit           Unit    `json:"unit"`
}
