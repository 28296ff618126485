package gateway

import (
	"context"

	"sklad/internal/adapter/http/client"
	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"
)

const productsPath = "/products/"

type ProductGateway struct {
	c *client.Client
}

var _ interfaces.IProductGateway = (*ProductGateway)(nil)

func NewProductGateway(c *client.Client) *ProductGateway {
	return &ProductGateway{c: c}
}

func (g *ProductGateway) List(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Product], error) {
	return client.GetPage[entities.Product](ctx, g.c, productsPath, q.Values())
}

func (g *ProductGateway) Create(ctx context.Context, req request.ProductCreateRequest) (entities.Product, error) {
	var p entities.Product
	err := g.c.Post(ctx, productsPath, nil, req, &p)
	return p, err
}

func (g *ProductGateway) Update(ctx context.Context, id int64, req request.ProductUpdateRequest) (entities.Product, error) {
	var p entities.Product
	err := g.c.Patch(ctx, idPath(productsPath, id), nil, req, &p)
	return p, err
}

func (g *ProductGateway) Delete(ctx context.Context, id int64) (entities.Product, error) {
	var p entities.Product
	err := g.c.Delete(ctx, idPath(productsPath, id), &p)
	return p, err
}

func (g *ProductGateway) Restore(ctx context.Context, id int64) (entities.Product, error) {
	var p entities.Product
	err := g.c.Post(ctx, idPath(productsPath, id, "restore"), nil, nil, &p)
	return p, err
}

func (g *ProductGateway) ToggleFavorite(ctx context.Context, id int64) (entities.Product, error) {
	var p entities.Product
	err := g.c.Patch(ctx, idPath(productsPath, id, "toggle-favorite"), nil, nil, &p)
	return p, err
}

func (g *ProductGateway) Receive(ctx context.Context, req request.ReceiveItemRequest) error {
	return g.c.Post(ctx, "/actions/receive-item/", nil, req, nil)
}
