package usecase

import (
	"context"
	"fmt"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

type IProductUseCase interface {
	List(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Product], error)
	Create(ctx context.Context, req request.ProductCreateRequest) (entities.Product, error)
	Update(ctx context.Context, id int64, req request.ProductUpdateRequest) (entities.Product, error)
	Delete(ctx context.Context, p entities.Product) (entities.Product, error)
	Restore(ctx context.Context, id int64) (entities.Product, error)
	ToggleFavorite(ctx context.Context, id int64) (entities.Product, error)
	Receive(ctx context.Context, req request.ReceiveItemRequest) error
	ToOrder(ctx context.Context) ([]entities.Product, error)
}

type ProductUseCase struct {
	products interfaces.IProductGateway
	fb       Feedback
	log      log.FieldLogger
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(products interfaces.IProductGateway, fb Feedback) *ProductUseCase {
	return &ProductUseCase{products: products, fb: fb, log: fb.logger("products")}
}

func (u *ProductUseCase) List(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Product], error) {
	return u.products.List(ctx, q)
}

func (u *ProductUseCase) Create(ctx context.Context, req request.ProductCreateRequest) (entities.Product, error) {
	if err := validate(req); err != nil {
		return entities.Product{}, err
	}
	var p entities.Product
	err := u.fb.track("Saving product "+req.Name, "Product "+req.Name+" saved", func() error {
		var err error
		p, err = u.products.Create(ctx, req)
		return err
	})
	return p, err
}

func (u *ProductUseCase) Update(ctx context.Context, id int64, req request.ProductUpdateRequest) (entities.Product, error) {
	if err := validID(id); err != nil {
		return entities.Product{}, err
	}
	if err := validate(req); err != nil {
		return entities.Product{}, err
	}
	var p entities.Product
	err := u.fb.track("Saving product", "Product saved", func() error {
		var err error
		p, err = u.products.Update(ctx, id, req)
		return err
	})
	return p, err
}

func (u *ProductUseCase) Delete(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := validID(p.ID); err != nil {
		return entities.Product{}, err
	}
	if err := u.fb.confirm(ctx, fmt.Sprintf("Delete product %s? It can be restored later.", p.Name)); err != nil {
		return entities.Product{}, err
	}
	var deleted entities.Product
	err := u.fb.track("Deleting product "+p.Name, "Product "+p.Name+" deleted", func() error {
		var err error
		deleted, err = u.products.Delete(ctx, p.ID)
		return err
	})
	return deleted, err
}

func (u *ProductUseCase) Restore(ctx context.Context, id int64) (entities.Product, error) {
	if err := validID(id); err != nil {
		return entities.Product{}, err
	}
	var p entities.Product
	err := u.fb.track("Restoring product", "Product restored", func() error {
		var err error
		p, err = u.products.Restore(ctx, id)
		return err
	})
	return p, err
}

// ToggleFavorite is silent: list views reconcile it optimistically.
func (u *ProductUseCase) ToggleFavorite(ctx context.Context, id int64) (entities.Product, error) {
	if err := validID(id); err != nil {
		return entities.Product{}, err
	}
	return u.products.ToggleFavorite(ctx, id)
}

func (u *ProductUseCase) Receive(ctx context.Context, req request.ReceiveItemRequest) error {
	if req.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if err := validate(req); err != nil {
		return err
	}
	return u.fb.track("Receiving goods", "Goods received", func() error {
		return u.products.Receive(ctx, req)
	})
}

// ToOrder lists every product at or below its minimum level.
func (u *ProductUseCase) ToOrder(ctx context.Context) ([]entities.Product, error) {
	q := entities.ListQuery{Size: 500}.WithFilter(entities.FilterStockStatus, string(entities.StockStatusLow))
	var out []entities.Product
	for page := 1; ; page++ {
		q.Page = page
		res, err := u.products.List(ctx, q)
		if err != nil {
			return nil, err
		}
		for _, p := range res.Items {
			if p.ToOrder() > 0 {
				out = append(out, p)
			}
		}
		if len(res.Items) == 0 || page >= res.Pages(q.Size) {
			break
		}
	}
	return out, nil
}
