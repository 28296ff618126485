package interfaces

//go:generate mockgen -source=estimate_gateway_interface.go -destination=mocks/estimate_gateway_interface.go -package=mock_interfaces

import (
	"context"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
)

// IEstimateGateway covers /estimates/ and its lifecycle actions.
//
// Lifecycle actions return the backend acknowledgement only; callers
// re-read the estimate to get its new state.
type IEstimateGateway interface {
	List(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Estimate], error)
	Get(ctx context.Context, id int64) (entities.Estimate, error)
	Create(ctx context.Context, req request.EstimateCreateRequest) (entities.Estimate, error)
	Update(ctx context.Context, id int64, req request.EstimateUpdateRequest) (entities.Estimate, error)
	Delete(ctx context.Context, id int64) error

	Ship(ctx context.Context, id, workerID int64) (string, error)
	AssignWorker(ctx context.Context, id, workerID int64) (string, error)
	IssueAdditional(ctx context.Context, id int64, req request.AddItemsRequest) (string, error)
	UpdateItemPrice(ctx context.Context, id, itemID int64, unitPrice float64) (entities.EstimateItem, error)
	Complete(ctx context.Context, id int64) (string, error)
	Cancel(ctx context.Context, id int64) (string, error)
	CancelCompletion(ctx context.Context, id int64) (string, error)
	Reopen(ctx context.Context, id, workerID int64) (string, error)
}
