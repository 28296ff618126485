package interfaces

//go:generate mockgen -source=assistant_gateway_interface.go -destination=mocks/assistant_gateway_interface.go -package=mock_interfaces

import (
	"context"

	"sklad/internal/domain/entities"
)

type IAssistantGateway interface {
	Chat(ctx context.Context, message string) (entities.ChatReply, error)
}
