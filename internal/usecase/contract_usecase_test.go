package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/domain/lifecycle"
	"sklad/internal/usecase/interfaces"
	mock_interfaces "sklad/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func contractIn(status entities.ContractStatus) entities.Contract {
	return entities.Contract{ID: 3, ContractNumber: "Д-3", ClientName: "Петров", Location: "Кольцово", Status: status}
}

func TestContractUseCase_Save(t *testing.T) {
	depth := 42.0

	t.Run("figures locked on completed", func(t *testing.T) {
		uc := NewContractUseCase(nil, Feedback{})
		_, err := uc.Save(context.Background(), contractIn(entities.ContractStatusCompleted), request.ContractUpdateRequest{ActualDepthSoil: &depth})
		if !errors.Is(err, ErrFiguresLocked) {
			t.Fatalf("expected ErrFiguresLocked, got %v", err)
		}
	})

	t.Run("header editable on completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIContractGateway(ctrl)
		uc := NewContractUseCase(gw, Feedback{})

		loc := "Бердск"
		req := request.ContractUpdateRequest{Location: &loc}
		saved := contractIn(entities.ContractStatusCompleted)
		saved.Location = loc
		gw.EXPECT().Update(gomock.Any(), int64(3), req).Return(saved, nil)

		got, err := uc.Save(context.Background(), contractIn(entities.ContractStatusCompleted), req)
		if err != nil || got.Location != loc {
			t.Fatalf("unexpected result %+v (%v)", got, err)
		}
	})

	t.Run("figures editable while planned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIContractGateway(ctrl)
		uc := NewContractUseCase(gw, Feedback{})

		gw.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).Return(contractIn(entities.ContractStatusPlanned), nil)

		if _, err := uc.Save(context.Background(), contractIn(entities.ContractStatusPlanned), request.ContractUpdateRequest{ActualDepthSoil: &depth}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestContractUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIContractGateway(ctrl)
	uc := NewContractUseCase(gw, Feedback{})

	gw.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req request.ContractCreateRequest) (entities.Contract, error) {
			if req.ContractType != entities.ContractTypeDrilling {
				t.Fatalf("expected drilling type, got %q", req.ContractType)
			}
			return contractIn(entities.ContractStatusPlanned), nil
		},
	)

	_, err := uc.Create(context.Background(), request.ContractCreateRequest{ContractNumber: "Д-3", ClientName: "Петров", Location: "Кольцово"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestContractUseCase_WriteOff(t *testing.T) {
	t.Run("not allowed when completed", func(t *testing.T) {
		uc := NewContractUseCase(nil, Feedback{})
		_, err := uc.WriteOffPipes(context.Background(), contractIn(entities.ContractStatusCompleted))
		if !errors.Is(err, ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})

	t.Run("confirmed write-off completes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIContractGateway(ctrl)
		uc := NewContractUseCase(gw, Feedback{Confirmer: confirming(ctrl, true), Notifier: quietNotifier(ctrl)})

		gw.EXPECT().WriteOffPipes(gomock.Any(), int64(3)).Return(contractIn(entities.ContractStatusCompleted), nil)

		got, err := uc.WriteOffPipes(context.Background(), contractIn(entities.ContractStatusInProgress))
		if err != nil || got.Status != entities.ContractStatusCompleted {
			t.Fatalf("expected completed, got %q (%v)", got.Status, err)
		}
	})

	t.Run("bulk write-off declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewContractUseCase(nil, Feedback{Confirmer: confirming(ctrl, false)})
		if _, err := uc.WriteOffAll(context.Background(), true); !errors.Is(err, ErrCancelled) {
			t.Fatalf("expected ErrCancelled, got %v", err)
		}
	})

	t.Run("bulk write-off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIContractGateway(ctrl)
		uc := NewContractUseCase(gw, Feedback{Confirmer: confirming(ctrl, true)})

		gw.EXPECT().WriteOffAllPipes(gomock.Any(), false).Return(entities.PipeWriteOffSummary{ContractsProcessed: 2, Movements: 3}, nil)

		sum, err := uc.WriteOffAll(context.Background(), false)
		if err != nil || sum.ContractsProcessed != 2 {
			t.Fatalf("unexpected summary %+v (%v)", sum, err)
		}
	})
}

func TestContractUseCase_Reopen(t *testing.T) {
	t.Run("prompt carries the warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIContractGateway(ctrl)
		c := mock_interfaces.NewMockIConfirmer(ctrl)
		uc := NewContractUseCase(gw, Feedback{Confirmer: c})

		c.EXPECT().Confirm(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (bool, error) {
			if !strings.Contains(prompt, lifecycle.ReopenWarning) {
				t.Fatalf("expected warning in prompt, got %q", prompt)
			}
			return true, nil
		})
		gw.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, req request.ContractUpdateRequest) (entities.Contract, error) {
				if req.Status == nil || *req.Status != entities.ContractStatusInProgress {
					t.Fatalf("expected in progress status, got %v", req.Status)
				}
				return contractIn(entities.ContractStatusInProgress), nil
			},
		)

		if _, err := uc.Reopen(context.Background(), contractIn(entities.ContractStatusCompleted)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("only completed contracts reopen", func(t *testing.T) {
		uc := NewContractUseCase(nil, Feedback{})
		_, err := uc.Reopen(context.Background(), contractIn(entities.ContractStatusPlanned))
		if !errors.Is(err, ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})
}

func TestContractUseCase_Documents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIContractGateway(ctrl)
	uc := NewContractUseCase(gw, Feedback{})

	gw.EXPECT().GenerateDocument(gomock.Any(), int64(3)).Return(interfaces.Document{Name: "contract_3.docx", Data: []byte("PK")}, nil)
	doc, err := uc.GenerateDocument(context.Background(), contractIn(entities.ContractStatusCancelled))
	if err != nil || doc.Name != "contract_3.docx" {
		t.Fatalf("unexpected document %+v (%v)", doc, err)
	}

	_, err = uc.CalculateRevenue(context.Background(), contractIn(entities.ContractStatusCancelled), request.RevenueRequest{})
	if !errors.Is(err, ErrActionNotAllowed) {
		t.Fatalf("expected ErrActionNotAllowed, got %v", err)
	}

	gw.EXPECT().CalculateRevenue(gomock.Any(), int64(3), gomock.Any()).Return(entities.Revenue{Total: 15000}, nil)
	rev, err := uc.CalculateRevenue(context.Background(), contractIn(entities.ContractStatusPlanned), request.RevenueRequest{MetersSoil: 10})
	if err != nil || rev.Total != 15000 {
		t.Fatalf("unexpected revenue %+v (%v)", rev, err)
	}
}
