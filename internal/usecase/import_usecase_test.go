package usecase

import (
	"context"
	"errors"
	"testing"

	"sklad/internal/adapter/http/dto/response"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"
	mock_interfaces "sklad/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestImportUseCase_Import(t *testing.T) {
	opts := interfaces.ImportOptions{Mode: entities.ImportToStock, AutoCreateNew: true}

	t.Run("wrong extension", func(t *testing.T) {
		uc := NewImportUseCase(nil, nil, Feedback{})
		_, err := uc.Import(context.Background(), "stock.csv", []byte("x"), opts)
		if !errors.Is(err, ErrUnsupportedFile) {
			t.Fatalf("expected ErrUnsupportedFile, got %v", err)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		uc := NewImportUseCase(nil, nil, Feedback{})
		_, err := uc.Import(context.Background(), "stock.xlsx", []byte("x"), interfaces.ImportOptions{Mode: "merge"})
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown layout is not uploaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIImportGateway(ctrl)
		in := mock_interfaces.NewMockISpreadsheetInspector(ctrl)
		uc := NewImportUseCase(gw, in, Feedback{})

		in.EXPECT().Inspect("stock.xlsx", []byte("x")).Return(entities.SheetPreview{FileName: "stock.xlsx"}, nil)

		_, err := uc.Import(context.Background(), "stock.xlsx", []byte("x"), opts)
		if !errors.Is(err, ErrUnknownLayout) {
			t.Fatalf("expected ErrUnknownLayout, got %v", err)
		}
	})

	t.Run("uploads known layout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIImportGateway(ctrl)
		in := mock_interfaces.NewMockISpreadsheetInspector(ctrl)
		uc := NewImportUseCase(gw, in, Feedback{Notifier: quietNotifier(ctrl)})

		in.EXPECT().Inspect("/tmp/stock.xlsx", []byte("x")).Return(entities.SheetPreview{Layout: entities.LayoutStock, RowCount: 1}, nil)
		gw.EXPECT().Universal(gomock.Any(), "stock.xlsx", gomock.Any(), opts).Return(
			response.ImportResponse{Report: &entities.ImportReport{Created: []string{"Труба"}}}, nil)

		res, err := uc.Import(context.Background(), "/tmp/stock.xlsx", []byte("x"), opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Summary() != "1 created, 0 updated, 0 skipped, 0 failed" {
			t.Fatalf("unexpected summary %q", res.Summary())
		}
	})
}

func TestImportUseCase_LegacyFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIImportGateway(ctrl)
	in := mock_interfaces.NewMockISpreadsheetInspector(ctrl)
	uc := NewImportUseCase(gw, in, Feedback{})

	opts := interfaces.ImportOptions{Mode: entities.ImportAsEstimate}
	in.EXPECT().Inspect("order.xls", gomock.Any()).Return(entities.SheetPreview{}, interfaces.ErrPreviewUnavailable)
	gw.EXPECT().Universal(gomock.Any(), "order.xls", gomock.Any(), opts).Return(
		response.ImportResponse{Estimate: &entities.Estimate{ID: 8, EstimateNumber: "ИМП-8"}}, nil)

	res, err := uc.Import(context.Background(), "order.xls", []byte("x"), opts)
	if err != nil || res.Estimate == nil || res.Estimate.ID != 8 {
		t.Fatalf("unexpected result %+v (%v)", res, err)
	}
}

func TestImportUseCase_Import1C(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIImportGateway(ctrl)
	uc := NewImportUseCase(gw, nil, Feedback{})

	gw.EXPECT().Estimate1C(gomock.Any(), "order.xls", gomock.Any()).Return(entities.Estimate{ID: 5, Status: entities.EstimateStatusDraft}, nil)

	e, err := uc.Import1C(context.Background(), "order.xls", []byte("x"))
	if err != nil || e.ID != 5 {
		t.Fatalf("unexpected result %+v (%v)", e, err)
	}
}
