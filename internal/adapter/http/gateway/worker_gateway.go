package gateway

import (
	"context"

	"sklad/internal/adapter/http/client"
	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"
)

const workersPath = "/workers/"

type WorkerGateway struct {
	c *client.Client
}

var _ interfaces.IWorkerGateway = (*WorkerGateway)(nil)

func NewWorkerGateway(c *client.Client) *WorkerGateway {
	return &WorkerGateway{c: c}
}

func (g *WorkerGateway) List(ctx context.Context) ([]entities.Worker, error) {
	page, err := client.GetPage[entities.Worker](ctx, g.c, workersPath, nil)
	return page.Items, err
}

func (g *WorkerGateway) Create(ctx context.Context, req request.WorkerRequest) (entities.Worker, error) {
	var w entities.Worker
	err := g.c.Post(ctx, workersPath, nil, req, &w)
	return w, err
}

func (g *WorkerGateway) Rename(ctx context.Context, id int64, req request.WorkerRequest) (entities.Worker, error) {
	var w entities.Worker
	err := g.c.Patch(ctx, idPath(workersPath, id), nil, req, &w)
	return w, err
}

func (g *WorkerGateway) Delete(ctx context.Context, id int64) error {
	return g.c.Delete(ctx, idPath(workersPath, id), nil)
}

func (g *WorkerGateway) Stock(ctx context.Context, workerID int64) ([]entities.WorkerStockItem, error) {
	page, err := client.GetPage[entities.WorkerStockItem](ctx, g.c, idPath("/actions/worker-stock/", workerID), nil)
	return page.Items, err
}

func (g *WorkerGateway) Issue(ctx context.Context, req request.WorkerItemRequest) error {
	return g.c.Post(ctx, "/actions/issue-item/", nil, req, nil)
}

func (g *WorkerGateway) Return(ctx context.Context, req request.WorkerItemRequest) error {
	return g.c.Post(ctx, "/actions/return-item/", nil, req, nil)
}

func (g *WorkerGateway) WriteOff(ctx context.Context, req request.WorkerItemRequest) error {
	return g.c.Post(ctx, "/actions/write-off-item/", nil, req, nil)
}
