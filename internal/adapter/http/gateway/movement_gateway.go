package gateway

import (
	"context"

	"sklad/internal/adapter/http/client"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"
)

const historyPath = "/actions/history/"

type MovementGateway struct {
	c *client.Client
}

var _ interfaces.IMovementGateway = (*MovementGateway)(nil)

func NewMovementGateway(c *client.Client) *MovementGateway {
	return &MovementGateway{c: c}
}

// History returns a page of the ledger. The backend answers a bare [] when
// a search matches nothing; both shapes end up as a Page.
func (g *MovementGateway) History(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Movement], error) {
	return client.GetPage[entities.Movement](ctx, g.c, historyPath, q.Values())
}

func (g *MovementGateway) Cancel(ctx context.Context, movementID int64) (string, error) {
	return postMessage(ctx, g.c, idPath(historyPath+"cancel/", movementID), nil, nil)
}
