package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"sklad/internal/domain/entities"
	mock_interfaces "sklad/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type touchingStore struct {
	*mock_interfaces.MockICredentialStore
	*mock_interfaces.MockICredentialToucher
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("missing password", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		if _, err := uc.Login(context.Background(), "op", ""); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("stores credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAuthGateway(ctrl)
		store := mock_interfaces.NewMockICredentialStore(ctrl)
		uc := NewAuthUseCase(gw, store, nil)

		cred := entities.Credential{AccessToken: "tok", TokenType: "bearer", Username: "op"}
		gw.EXPECT().Login(gomock.Any(), "op", "secret").Return(cred, nil)
		store.EXPECT().Save(gomock.Any(), cred).Return(nil)

		got, err := uc.Login(context.Background(), " op ", "secret")
		if err != nil || got.AccessToken != "tok" {
			t.Fatalf("unexpected result %+v (%v)", got, err)
		}
	})

	t.Run("rejected login saves nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAuthGateway(ctrl)
		store := mock_interfaces.NewMockICredentialStore(ctrl)
		uc := NewAuthUseCase(gw, store, nil)

		gw.EXPECT().Login(gomock.Any(), "op", "bad").Return(entities.Credential{}, errors.New("Неверный email или пароль"))

		if _, err := uc.Login(context.Background(), "op", "bad"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestAuthUseCase_Status(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICredentialStore(ctrl)
		uc := NewAuthUseCase(nil, store, nil)
		uc.now = func() time.Time { return now }

		store.EXPECT().Load(gomock.Any()).Return(entities.Credential{AccessToken: "tok", ExpiresAt: now.Add(-time.Minute)}, nil)

		if _, err := uc.Status(context.Background()); !errors.Is(err, ErrNotSignedIn) {
			t.Fatalf("expected ErrNotSignedIn, got %v", err)
		}
	})

	t.Run("touches shared sessions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := touchingStore{mock_interfaces.NewMockICredentialStore(ctrl), mock_interfaces.NewMockICredentialToucher(ctrl)}
		uc := NewAuthUseCase(nil, store, nil)
		uc.now = func() time.Time { return now }

		store.MockICredentialStore.EXPECT().Load(gomock.Any()).Return(entities.Credential{AccessToken: "tok", ExpiresAt: now.Add(time.Hour)}, nil)
		store.MockICredentialToucher.EXPECT().Touch(gomock.Any()).Return(errors.New("throttled"))

		cred, err := uc.Status(context.Background())
		if err != nil || cred.AccessToken != "tok" {
			t.Fatalf("unexpected result %+v (%v)", cred, err)
		}
	})

	t.Run("logout clears", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICredentialStore(ctrl)
		uc := NewAuthUseCase(nil, store, nil)

		store.EXPECT().Clear(gomock.Any()).Return(nil)

		if err := uc.Logout(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
