package request

import "sklad/internal/domain/entities"

type ProductCreateRequest struct {
	Name          string        `json:"name" validate:"required"`
	InternalSKU   string        `json:"internal_sku" validate:"required"`
	SupplierSKU   *string       `json:"supplier_sku,omitempty"`
	Unit          entities.Unit `json:"unit" validate:"required,oneof=шт. 'пог. м.' л. кг. 'кв. м.' 'куб. м.'"`
	PurchasePrice float64       `json:"purchase_price" validate:"gte=0"`
	RetailPrice   float64       `json:"retail_price" validate:"gte=0"`
	StockQuantity float64       `json:"stock_quantity" validate:"gte=0"`
	MinStockLevel float64       `json:"min_stock_level" validate:"gte=0"`
}

// ProductUpdateRequest is a partial update; nil fields are left unchanged.
type ProductUpdateRequest struct {
	Name          *string        `json:"name,omitempty" validate:"omitempty,min=1"`
	InternalSKU   *string        `json:"internal_sku,omitempty" validate:"omitempty,min=1"`
	SupplierSKU   *string        `json:"supplier_sku,omitempty"`
	Unit          *entities.Unit `json:"unit,omitempty" validate:"omitempty,oneof=шт. 'пог. м.' л. кг. 'кв. м.' 'куб. м.'"`
	PurchasePrice *float64       `json:"purchase_price,omitempty" validate:"omitempty,gte=0"`
	RetailPrice   *float64       `json:"retail_price,omitempty" validate:"omitempty,gte=0"`
	StockQuantity *float64       `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	MinStockLevel *float64       `json:"min_stock_level,omitempty" validate:"omitempty,gte=0"`
	IsFavorite    *bool          `json:"is_favorite,omitempty"`
}

type WorkerRequest struct {
	Name string `json:"name" validate:"required"`
}

type ReceiveItemRequest struct {
	ProductID int64   `json:"product_id" validate:"gt=0"`
	Quantity  float64 `json:"quantity" validate:"gt=0"`
}

// WorkerItemRequest moves stock between the warehouse and a worker
// (issue, return, write-off).
type WorkerItemRequest struct {
	ProductID int64   `json:"product_id" validate:"gt=0"`
	WorkerID  int64   `json:"worker_id" validate:"gt=0"`
	Quantity  float64 `json:"quantity" validate:"gt=0"`
}
