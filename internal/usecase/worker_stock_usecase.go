package usecase

import (
	"context"
	"fmt"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// IWorkerStockUseCase moves goods between the warehouse and workers.
type IWorkerStockUseCase interface {
	Stock(ctx context.Context, workerID int64) ([]entities.WorkerStockItem, error)
	Issue(ctx context.Context, req request.WorkerItemRequest) error
	Return(ctx context.Context, req request.WorkerItemRequest) error
	ReturnAll(ctx context.Context, w entities.Worker) (int, error)
	WriteOff(ctx context.Context, req request.WorkerItemRequest) error
}

type WorkerStockUseCase struct {
	workers interfaces.IWorkerGateway
	fb      Feedback
	log     log.FieldLogger
}

var _ IWorkerStockUseCase = (*WorkerStockUseCase)(nil)

func NewWorkerStockUseCase(workers interfaces.IWorkerGateway, fb Feedback) *WorkerStockUseCase {
	return &WorkerStockUseCase{workers: workers, fb: fb, log: fb.logger("worker-stock")}
}

func (u *WorkerStockUseCase) Stock(ctx context.Context, workerID int64) ([]entities.WorkerStockItem, error) {
	if err := validID(workerID); err != nil {
		return nil, err
	}
	return u.workers.Stock(ctx, workerID)
}

func (u *WorkerStockUseCase) Issue(ctx context.Context, req request.WorkerItemRequest) error {
	if err := checkItem(req); err != nil {
		return err
	}
	return u.fb.track("Issuing goods", "Goods issued", func() error {
		return u.workers.Issue(ctx, req)
	})
}

func (u *WorkerStockUseCase) Return(ctx context.Context, req request.WorkerItemRequest) error {
	if err := checkItem(req); err != nil {
		return err
	}
	return u.fb.track("Returning goods", "Goods returned to the warehouse", func() error {
		return u.workers.Return(ctx, req)
	})
}

// ReturnAll returns everything the worker holds, one request per product.
// It stops at the first failure and reports how many lines went through.
func (u *WorkerStockUseCase) ReturnAll(ctx context.Context, w entities.Worker) (int, error) {
	stock, err := u.Stock(ctx, w.ID)
	if err != nil {
		return 0, err
	}
	if len(stock) == 0 {
		return 0, nil
	}
	if err := u.fb.confirm(ctx, fmt.Sprintf("Return all %d items held by %s?", len(stock), w.Name)); err != nil {
		return 0, err
	}
	returned := 0
	err = u.fb.track("Returning goods from "+w.Name, "All goods returned from "+w.Name, func() error {
		for _, it := range stock {
			if it.QuantityOnHand <= 0 {
				continue
			}
			req := request.WorkerItemRequest{ProductID: it.ProductID, WorkerID: w.ID, Quantity: it.QuantityOnHand}
			if err := u.workers.Return(ctx, req); err != nil {
				return errors.Wrapf(err, "return %s", it.ProductName)
			}
			returned++
		}
		return nil
	})
	u.log.WithFields(log.Fields{"worker_id": w.ID, "returned": returned}).Info("worker stock returned")
	return returned, err
}

func (u *WorkerStockUseCase) WriteOff(ctx context.Context, req request.WorkerItemRequest) error {
	if err := checkItem(req); err != nil {
		return err
	}
	if err := u.fb.confirm(ctx, "Write off goods held by the worker? This cannot be undone here."); err != nil {
		return err
	}
	return u.fb.track("Writing off goods", "Goods written off", func() error {
		return u.workers.WriteOff(ctx, req)
	})
}

func checkItem(req request.WorkerItemRequest) error {
	if req.WorkerID <= 0 {
		return ErrWorkerRequired
	}
	if req.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return validate(req)
}
