package gateway

import (
	"context"
	"net/url"
	"strconv"

	"sklad/internal/adapter/http/client"
	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"
)

const estimatesPath = "/estimates/"

type EstimateGateway struct {
	c *client.Client
}

var _ interfaces.IEstimateGateway = (*EstimateGateway)(nil)

func NewEstimateGateway(c *client.Client) *EstimateGateway {
	return &EstimateGateway{c: c}
}

func (g *EstimateGateway) List(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Estimate], error) {
	return client.GetPage[entities.Estimate](ctx, g.c, estimatesPath, q.Values())
}

func (g *EstimateGateway) Get(ctx context.Context, id int64) (entities.Estimate, error) {
	var e entities.Estimate
	err := g.c.Get(ctx, idPath(estimatesPath, id), nil, &e)
	return e, err
}

func (g *EstimateGateway) Create(ctx context.Context, req request.EstimateCreateRequest) (entities.Estimate, error) {
	var e entities.Estimate
	err := g.c.Post(ctx, estimatesPath, nil, req, &e)
	return e, err
}

func (g *EstimateGateway) Update(ctx context.Context, id int64, req request.EstimateUpdateRequest) (entities.Estimate, error) {
	var e entities.Estimate
	err := g.c.Patch(ctx, idPath(estimatesPath, id), nil, req, &e)
	return e, err
}

func (g *EstimateGateway) Delete(ctx context.Context, id int64) error {
	return g.c.Delete(ctx, idPath(estimatesPath, id), nil)
}

func (g *EstimateGateway) Ship(ctx context.Context, id, workerID int64) (string, error) {
	return postMessage(ctx, g.c, idPath(estimatesPath, id, "ship"), workerQuery(workerID), nil)
}

func (g *EstimateGateway) AssignWorker(ctx context.Context, id, workerID int64) (string, error) {
	return postMessage(ctx, g.c, idPath(estimatesPath, id, "assign-worker"), workerQuery(workerID), nil)
}

func (g *EstimateGateway) IssueAdditional(ctx context.Context, id int64, req request.AddItemsRequest) (string, error) {
	return postMessage(ctx, g.c, idPath(estimatesPath, id, "issue-additional"), nil, req)
}

func (g *EstimateGateway) UpdateItemPrice(ctx context.Context, id, itemID int64, unitPrice float64) (entities.EstimateItem, error) {
	var it entities.EstimateItem
	q := url.Values{"unit_price": {strconv.FormatFloat(unitPrice, 'f', -1, 64)}}
	err := g.c.Patch(ctx, idPath(estimatesPath, id, "items", strconv.FormatInt(itemID, 10)), q, nil, &it)
	return it, err
}

func (g *EstimateGateway) Complete(ctx context.Context, id int64) (string, error) {
	return postMessage(ctx, g.c, idPath(estimatesPath, id, "complete"), nil, nil)
}

func (g *EstimateGateway) Cancel(ctx context.Context, id int64) (string, error) {
	return postMessage(ctx, g.c, idPath(estimatesPath, id, "cancel"), nil, nil)
}

func (g *EstimateGateway) CancelCompletion(ctx context.Context, id int64) (string, error) {
	return postMessage(ctx, g.c, idPath(estimatesPath, id, "cancel-completion"), nil, nil)
}

func (g *EstimateGateway) Reopen(ctx context.Context, id, workerID int64) (string, error) {
	return postMessage(ctx, g.c, idPath(estimatesPath, id, "reopen"), workerQuery(workerID), nil)
}
