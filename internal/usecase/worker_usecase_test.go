package usecase

import (
	"context"
	"errors"
	"testing"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	mock_interfaces "sklad/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWorkerUseCase_Crud(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewWorkerUseCase(nil, Feedback{})
		_, err := uc.Create(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("create trims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIWorkerGateway(ctrl)
		uc := NewWorkerUseCase(gw, Feedback{})

		gw.EXPECT().Create(gomock.Any(), request.WorkerRequest{Name: "Иван"}).Return(entities.Worker{ID: 2, Name: "Иван"}, nil)

		w, err := uc.Create(context.Background(), "  Иван ")
		require.NoError(t, err)
		assert.Equal(t, int64(2), w.ID)
	})

	t.Run("delete refused by backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIWorkerGateway(ctrl)
		n := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewWorkerUseCase(gw, Feedback{Notifier: n, Confirmer: confirming(ctrl, true)})

		n.EXPECT().Pending(gomock.Any())
		gw.EXPECT().Delete(gomock.Any(), int64(2)).Return(errors.New("За работником числятся товары"))
		n.EXPECT().Failure("За работником числятся товары")

		err := uc.Delete(context.Background(), entities.Worker{ID: 2, Name: "Иван"})
		assert.Error(t, err)
	})
}
