package usecase

import (
	"context"
	"errors"
	"testing"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	mock_interfaces "sklad/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_Create(t *testing.T) {
	t.Run("unknown unit rejected", func(t *testing.T) {
		uc := NewProductUseCase(nil, Feedback{})
		_, err := uc.Create(context.Background(), request.ProductCreateRequest{Name: "Труба", InternalSKU: "T-1", Unit: "ящик"})
		if err == nil {
			t.Fatalf("expected validation error")
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIProductGateway(ctrl)
		uc := NewProductUseCase(gw, Feedback{Notifier: quietNotifier(ctrl)})

		req := request.ProductCreateRequest{Name: "Труба", InternalSKU: "T-1", Unit: entities.UnitMeter, RetailPrice: 300}
		gw.EXPECT().Create(gomock.Any(), req).Return(entities.Product{ID: 1, Name: "Труба"}, nil)

		p, err := uc.Create(context.Background(), req)
		if err != nil || p.ID != 1 {
			t.Fatalf("unexpected result %+v (%v)", p, err)
		}
	})
}

func TestProductUseCase_Delete(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewProductUseCase(nil, Feedback{Confirmer: confirming(ctrl, false)})
		_, err := uc.Delete(context.Background(), entities.Product{ID: 1, Name: "Труба"})
		if !errors.Is(err, ErrCancelled) {
			t.Fatalf("expected ErrCancelled, got %v", err)
		}
	})

	t.Run("soft delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIProductGateway(ctrl)
		uc := NewProductUseCase(gw, Feedback{Confirmer: confirming(ctrl, true)})

		gw.EXPECT().Delete(gomock.Any(), int64(1)).Return(entities.Product{ID: 1, IsDeleted: true}, nil)

		p, err := uc.Delete(context.Background(), entities.Product{ID: 1, Name: "Труба"})
		if err != nil || !p.IsDeleted {
			t.Fatalf("expected deleted product, got %+v (%v)", p, err)
		}
	})
}

func TestProductUseCase_Receive(t *testing.T) {
	uc := NewProductUseCase(nil, Feedback{})
	err := uc.Receive(context.Background(), request.ReceiveItemRequest{ProductID: 1, Quantity: 0})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestProductUseCase_ToOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIProductGateway(ctrl)
	uc := NewProductUseCase(gw, Feedback{})

	low := entities.Product{ID: 1, StockQuantity: 2, MinStockLevel: 5}
	fine := entities.Product{ID: 2, StockQuantity: 9, MinStockLevel: 5}
	gw.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.ListQuery) (entities.Page[entities.Product], error) {
			if q.Filter(entities.FilterStockStatus) != string(entities.StockStatusLow) || q.Page != 1 {
				t.Fatalf("unexpected query %+v", q)
			}
			return entities.NewPage([]entities.Product{low, fine}, 2), nil
		},
	)

	got, err := uc.ToOrder(context.Background())
	if err != nil || len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected result %+v (%v)", got, err)
	}
}
