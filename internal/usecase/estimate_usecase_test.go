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

func estimateIn(status entities.EstimateStatus) entities.Estimate {
	return entities.Estimate{
		ID:             7,
		EstimateNumber: "С-7",
		ClientName:     "ООО Ромашка",
		Status:         status,
		Items:          []entities.EstimateItem{{ID: 1, ProductID: 3, Quantity: 2, UnitPrice: 100}},
	}
}

func confirming(ctrl *gomock.Controller, answer bool) *mock_interfaces.MockIConfirmer {
	c := mock_interfaces.NewMockIConfirmer(ctrl)
	c.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(answer, nil)
	return c
}

func quietNotifier(ctrl *gomock.Controller) *mock_interfaces.MockINotifier {
	n := mock_interfaces.NewMockINotifier(ctrl)
	n.EXPECT().Pending(gomock.Any()).AnyTimes()
	n.EXPECT().Success(gomock.Any()).AnyTimes()
	n.EXPECT().Failure(gomock.Any()).AnyTimes()
	return n
}

func TestEstimateUseCase_Create(t *testing.T) {
	t.Run("empty items rejected before sending", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, Feedback{})
		_, err := uc.Create(context.Background(), request.EstimateCreateRequest{EstimateNumber: "С-1", ClientName: "Клиент"})
		if !errors.Is(err, ErrEmptyItems) {
			t.Fatalf("expected ErrEmptyItems, got %v", err)
		}
	})

	t.Run("duplicate product rejected by validation", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, Feedback{})
		_, err := uc.Create(context.Background(), request.EstimateCreateRequest{
			EstimateNumber: "С-1",
			ClientName:     "Клиент",
			Items:          []request.EstimateItemRequest{{ProductID: 1, Quantity: 1}, {ProductID: 1, Quantity: 2}},
		})
		if err == nil {
			t.Fatalf("expected validation error")
		}
	})

	t.Run("success notifies pending then success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		n := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewEstimateUseCase(gw, nil, Feedback{Notifier: n})

		req := request.EstimateCreateRequest{
			EstimateNumber: "С-1",
			ClientName:     "Клиент",
			Items:          []request.EstimateItemRequest{{ProductID: 1, Quantity: 1}},
		}
		gomock.InOrder(
			n.EXPECT().Pending("Saving estimate С-1"),
			gw.EXPECT().Create(gomock.Any(), req).Return(entities.Estimate{ID: 11, EstimateNumber: "С-1", Status: entities.EstimateStatusDraft}, nil),
			n.EXPECT().Success("Estimate С-1 saved"),
		)

		e, err := uc.Create(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID != 11 || e.Status != entities.EstimateStatusDraft {
			t.Fatalf("unexpected estimate: %+v", e)
		}
	})

	t.Run("backend failure is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		n := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewEstimateUseCase(gw, nil, Feedback{Notifier: n})

		n.EXPECT().Pending(gomock.Any())
		gw.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("Недостаточно товара"))
		n.EXPECT().Failure("Недостаточно товара")

		_, err := uc.Create(context.Background(), request.EstimateCreateRequest{
			EstimateNumber: "С-1",
			ClientName:     "Клиент",
			Items:          []request.EstimateItemRequest{{ProductID: 1, Quantity: 1}},
		})
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestEstimateUseCase_Ship(t *testing.T) {
	t.Run("not allowed when completed", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, Feedback{})
		_, err := uc.Ship(context.Background(), estimateIn(entities.EstimateStatusCompleted), 2)
		if !errors.Is(err, ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})

	t.Run("worker required", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, Feedback{})
		_, err := uc.Ship(context.Background(), estimateIn(entities.EstimateStatusDraft), 0)
		if !errors.Is(err, ErrWorkerRequired) {
			t.Fatalf("expected ErrWorkerRequired, got %v", err)
		}
	})

	t.Run("items required", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, Feedback{})
		e := estimateIn(entities.EstimateStatusDraft)
		e.Items = nil
		_, err := uc.Ship(context.Background(), e, 2)
		if !errors.Is(err, ErrEmptyItems) {
			t.Fatalf("expected ErrEmptyItems, got %v", err)
		}
	})

	t.Run("ships and re-reads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc := NewEstimateUseCase(gw, nil, Feedback{Notifier: quietNotifier(ctrl)})

		shipped := estimateIn(entities.EstimateStatusInProgress)
		gomock.InOrder(
			gw.EXPECT().Ship(gomock.Any(), int64(7), int64(2)).Return("Смета отгружена", nil),
			gw.EXPECT().Get(gomock.Any(), int64(7)).Return(shipped, nil),
		)

		e, err := uc.Ship(context.Background(), estimateIn(entities.EstimateStatusDraft), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Status != entities.EstimateStatusInProgress {
			t.Fatalf("expected in progress, got %q", e.Status)
		}
	})
}

func TestEstimateUseCase_DestructiveActions(t *testing.T) {
	t.Run("declined confirmation sends nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		n := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewEstimateUseCase(gw, nil, Feedback{Notifier: n, Confirmer: confirming(ctrl, false)})

		_, err := uc.Complete(context.Background(), estimateIn(entities.EstimateStatusInProgress))
		if !errors.Is(err, ErrCancelled) {
			t.Fatalf("expected ErrCancelled, got %v", err)
		}
	})

	t.Run("no confirmer declines", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, Feedback{})
		_, err := uc.Cancel(context.Background(), estimateIn(entities.EstimateStatusInProgress))
		if !errors.Is(err, ErrCancelled) {
			t.Fatalf("expected ErrCancelled, got %v", err)
		}
	})

	t.Run("complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc := NewEstimateUseCase(gw, nil, Feedback{Notifier: quietNotifier(ctrl), Confirmer: confirming(ctrl, true)})

		gw.EXPECT().Complete(gomock.Any(), int64(7)).Return("ok", nil)
		gw.EXPECT().Get(gomock.Any(), int64(7)).Return(estimateIn(entities.EstimateStatusCompleted), nil)

		e, err := uc.Complete(context.Background(), estimateIn(entities.EstimateStatusInProgress))
		if err != nil || e.Status != entities.EstimateStatusCompleted {
			t.Fatalf("expected completed, got %q (%v)", e.Status, err)
		}
	})

	t.Run("cancel completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc := NewEstimateUseCase(gw, nil, Feedback{Confirmer: confirming(ctrl, true)})

		gw.EXPECT().CancelCompletion(gomock.Any(), int64(7)).Return("ok", nil)
		gw.EXPECT().Get(gomock.Any(), int64(7)).Return(estimateIn(entities.EstimateStatusInProgress), nil)

		if _, err := uc.CancelCompletion(context.Background(), estimateIn(entities.EstimateStatusCompleted)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reopen needs a worker", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, Feedback{})
		_, err := uc.Reopen(context.Background(), estimateIn(entities.EstimateStatusCancelled), 0)
		if !errors.Is(err, ErrWorkerRequired) {
			t.Fatalf("expected ErrWorkerRequired, got %v", err)
		}
	})

	t.Run("reopen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc := NewEstimateUseCase(gw, nil, Feedback{Confirmer: confirming(ctrl, true)})

		gw.EXPECT().Reopen(gomock.Any(), int64(7), int64(4)).Return("ok", nil)
		gw.EXPECT().Get(gomock.Any(), int64(7)).Return(estimateIn(entities.EstimateStatusInProgress), nil)

		if _, err := uc.Reopen(context.Background(), estimateIn(entities.EstimateStatusCancelled), 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete in progress not allowed", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, Feedback{})
		err := uc.Delete(context.Background(), estimateIn(entities.EstimateStatusInProgress))
		if !errors.Is(err, ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})

	t.Run("delete draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc := NewEstimateUseCase(gw, nil, Feedback{Confirmer: confirming(ctrl, true)})

		gw.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

		if err := uc.Delete(context.Background(), estimateIn(entities.EstimateStatusDraft)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_Edit(t *testing.T) {
	t.Run("save refused after shipping", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, Feedback{})
		name := "Новый клиент"
		_, err := uc.Save(context.Background(), estimateIn(entities.EstimateStatusInProgress), request.EstimateUpdateRequest{ClientName: &name})
		if !errors.Is(err, ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})

	t.Run("save keeping no items is rejected before sending", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, Feedback{})
		empty := estimateIn(entities.EstimateStatusDraft)
		empty.Items = nil
		name := "Новый клиент"
		_, err := uc.Save(context.Background(), empty, request.EstimateUpdateRequest{ClientName: &name})
		if !errors.Is(err, ErrEmptyItems) {
			t.Fatalf("expected ErrEmptyItems, got %v", err)
		}
	})

	t.Run("save draft re-reads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc := NewEstimateUseCase(gw, nil, Feedback{})

		name := "Новый клиент"
		saved := estimateIn(entities.EstimateStatusDraft)
		saved.ClientName = name
		saved.TotalSum = 200
		gw.EXPECT().Update(gomock.Any(), int64(7), request.EstimateUpdateRequest{ClientName: &name}).Return(entities.Estimate{ID: 7}, nil)
		gw.EXPECT().Get(gomock.Any(), int64(7)).Return(saved, nil)

		e, err := uc.Save(context.Background(), estimateIn(entities.EstimateStatusDraft), request.EstimateUpdateRequest{ClientName: &name})
		if err != nil || e.TotalSum != 200 || e.ClientName != name {
			t.Fatalf("unexpected result %+v (%v)", e, err)
		}
	})

	t.Run("price update in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc := NewEstimateUseCase(gw, nil, Feedback{})

		gw.EXPECT().UpdateItemPrice(gomock.Any(), int64(7), int64(1), 120.0).Return(entities.EstimateItem{ID: 1, UnitPrice: 120}, nil)
		gw.EXPECT().Get(gomock.Any(), int64(7)).Return(estimateIn(entities.EstimateStatusInProgress), nil)

		if _, err := uc.UpdateItemPrice(context.Background(), estimateIn(entities.EstimateStatusInProgress), 1, 120); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, Feedback{})
		_, err := uc.UpdateItemPrice(context.Background(), estimateIn(entities.EstimateStatusInProgress), 1, -1)
		if !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("issue additional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc := NewEstimateUseCase(gw, nil, Feedback{})

		items := []request.EstimateItemRequest{{ProductID: 5, Quantity: 1}}
		gw.EXPECT().IssueAdditional(gomock.Any(), int64(7), request.AddItemsRequest{Items: items}).Return("ok", nil)
		gw.EXPECT().Get(gomock.Any(), int64(7)).Return(estimateIn(entities.EstimateStatusInProgress), nil)

		if _, err := uc.IssueAdditional(context.Background(), estimateIn(entities.EstimateStatusInProgress), items); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_Getters(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, Feedback{})
		if _, err := uc.Get(context.Background(), 0); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("open loads estimate and workers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		wg := mock_interfaces.NewMockIWorkerGateway(ctrl)
		uc := NewEstimateUseCase(gw, wg, Feedback{})

		gw.EXPECT().Get(gomock.Any(), int64(7)).Return(estimateIn(entities.EstimateStatusDraft), nil)
		wg.EXPECT().List(gomock.Any()).Return([]entities.Worker{{ID: 2, Name: "Иван"}}, nil)

		e, workers, err := uc.Open(context.Background(), 7)
		if err != nil || e.ID != 7 || len(workers) != 1 {
			t.Fatalf("unexpected result %+v %v (%v)", e, workers, err)
		}
	})

	t.Run("open fails when workers fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		wg := mock_interfaces.NewMockIWorkerGateway(ctrl)
		uc := NewEstimateUseCase(gw, wg, Feedback{})

		gw.EXPECT().Get(gomock.Any(), int64(7)).Return(estimateIn(entities.EstimateStatusDraft), nil).AnyTimes()
		wg.EXPECT().List(gomock.Any()).Return(nil, errors.New("down"))

		if _, _, err := uc.Open(context.Background(), 7); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("print embeds link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIEstimateGateway(ctrl)
		pr := mock_interfaces.NewMockIEstimatePrinter(ctrl)
		uc := NewEstimateUseCase(gw, nil, Feedback{}).WithPrinter(pr, "https://sklad.example")

		e := estimateIn(entities.EstimateStatusDraft)
		gw.EXPECT().Get(gomock.Any(), int64(7)).Return(e, nil)
		pr.EXPECT().EstimatePDF(e, "https://sklad.example/estimates/7").Return([]byte("%PDF"), nil)

		doc, err := uc.Print(context.Background(), 7)
		if err != nil || doc.Name != "estimate_С-7.pdf" || doc.ContentType != "application/pdf" {
			t.Fatalf("unexpected document %+v (%v)", doc, err)
		}
	})
}
