package gateway

import (
	"context"

	"sklad/internal/adapter/http/client"
	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"
)

type AssistantGateway struct {
	c *client.Client
}

var _ interfaces.IAssistantGateway = (*AssistantGateway)(nil)

func NewAssistantGateway(c *client.Client) *AssistantGateway {
	return &AssistantGateway{c: c}
}

func (g *AssistantGateway) Chat(ctx context.Context, message string) (entities.ChatReply, error) {
	var r entities.ChatReply
	err := g.c.Post(ctx, "/ai/chat", nil, request.ChatRequest{Message: message}, &r)
	return r, err
}
