package interfaces

//go:generate mockgen -source=product_gateway_interface.go -destination=mocks/product_gateway_interface.go -package=mock_interfaces

import (
	"context"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
)

// IProductGateway covers /products/ and the warehouse intake action.
type IProductGateway interface {
	List(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Product], error)
	Create(ctx context.Context, req request.ProductCreateRequest) (entities.Product, error)
	Update(ctx context.Context, id int64, req request.ProductUpdateRequest) (entities.Product, error)
	Delete(ctx context.Context, id int64) (entities.Product, error)
	Restore(ctx context.Context, id int64) (entities.Product, error)
	ToggleFavorite(ctx context.Context, id int64) (entities.Product, error)
	Receive(ctx context.Context, req request.ReceiveItemRequest) error
}
