package interfaces

//go:generate mockgen -source=worker_gateway_interface.go -destination=mocks/worker_gateway_interface.go -package=mock_interfaces

import (
	"context"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
)

// IWorkerGateway covers /workers/ and the stock a worker holds.
type IWorkerGateway interface {
	List(ctx context.Context) ([]entities.Worker, error)
	Create(ctx context.Context, req request.WorkerRequest) (entities.Worker, error)
	Rename(ctx context.Context, id int64, req request.WorkerRequest) (entities.Worker, error)
	Delete(ctx context.Context, id int64) error

	Stock(ctx context.Context, workerID int64) ([]entities.WorkerStockItem, error)
	Issue(ctx context.Context, req request.WorkerItemRequest) error
	Return(ctx context.Context, req request.WorkerItemRequest) error
	WriteOff(ctx context.Context, req request.WorkerItemRequest) error
}
