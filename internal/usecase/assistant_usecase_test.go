package usecase

import (
	"context"
	"errors"
	"testing"

	"sklad/internal/domain/entities"
	mock_interfaces "sklad/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAssistantUseCase_Send(t *testing.T) {
	t.Run("blank message", func(t *testing.T) {
		uc := NewAssistantUseCase(nil, nil, nil)
		if _, err := uc.Send(context.Background(), "  \n"); !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("successful action triggers refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAssistantGateway(ctrl)
		bus := mock_interfaces.NewMockIRefreshPublisher(ctrl)
		uc := NewAssistantUseCase(gw, bus, nil)

		gw.EXPECT().Chat(gomock.Any(), "выдай Ивану 2 трубы").Return(entities.ChatReply{
			Response:        "<p>Готово</p>",
			FunctionResults: []entities.ActionResult{{Function: "issue_item", Success: true}},
		}, nil)
		bus.EXPECT().Publish(RefreshReason)

		reply, err := uc.Send(context.Background(), " выдай Ивану 2 трубы ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Response != "Готово" {
			t.Fatalf("expected flattened reply, got %q", reply.Response)
		}
	})

	t.Run("failed actions do not refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAssistantGateway(ctrl)
		bus := mock_interfaces.NewMockIRefreshPublisher(ctrl)
		uc := NewAssistantUseCase(gw, bus, nil)

		gw.EXPECT().Chat(gomock.Any(), gomock.Any()).Return(entities.ChatReply{
			Response:        "Не нашёл товар",
			FunctionResults: []entities.ActionResult{{Function: "issue_item", Success: false}},
		}, nil)

		if _, err := uc.Send(context.Background(), "выдай"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPlainText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Остаток: 5", "Остаток: 5"},
		{"breaks", "Строка 1<br>Строка 2", "Строка 1\nСтрока 2"},
		{"list", "<ul><li>Труба</li><li>Муфта</li></ul>", "• Труба\n• Муфта"},
		{"entities", "<b>5 &gt; 3</b>", "5 > 3"},
		{"script dropped", "<p>ok</p><script>alert(1)</script>", "ok"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PlainText(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
