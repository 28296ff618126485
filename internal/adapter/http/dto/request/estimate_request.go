package request

import "sklad/internal/domain/entities"

// EstimateItemRequest is one line sent to the backend. UnitPrice nil lets the
// backend use the product's retail price.
type EstimateItemRequest struct {
	ProductID int64    `json:"product_id" validate:"gt=0"`
	Quantity  float64  `json:"quantity" validate:"gt=0"`
	UnitPrice *float64 `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
}

type EstimateCreateRequest struct {
	EstimateNumber string                `json:"estimate_number" validate:"required"`
	ClientName     string                `json:"client_name" validate:"required"`
	Location       *string               `json:"location,omitempty"`
	Items          []EstimateItemRequest `json:"items" validate:"min=1,unique=ProductID,dive"`
}

// EstimateUpdateRequest is a partial update; nil fields are left unchanged.
type EstimateUpdateRequest struct {
	EstimateNumber *string                  `json:"estimate_number,omitempty" validate:"omitempty,min=1"`
	ClientName     *string                  `json:"client_name,omitempty" validate:"omitempty,min=1"`
	Location       *string                  `json:"location,omitempty"`
	Status         *entities.EstimateStatus `json:"status,omitempty"`
	Items          *[]EstimateItemRequest   `json:"items,omitempty" validate:"omitempty,min=1,unique=ProductID,dive"`
}

type AddItemsRequest struct {
	Items []EstimateItemRequest `json:"items" validate:"min=1,unique=ProductID,dive"`
}

// ItemsFromEstimate converts estimate lines into request lines, keeping the
// captured prices.
func ItemsFromEstimate(items []entities.EstimateItem) []EstimateItemRequest {
	out := make([]EstimateItemRequest, 0, len(items))
	for _, it := range items {
		price := it.UnitPrice
		out = append(out, EstimateItemRequest{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: &price})
	}
	return out
}
