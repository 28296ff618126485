package interfaces

//go:generate mockgen -source=movement_gateway_interface.go -destination=mocks/movement_gateway_interface.go -package=mock_interfaces

import (
	"context"

	"sklad/internal/domain/entities"
)

// IMovementGateway reads the stock ledger and reverses entries.
type IMovementGateway interface {
	History(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Movement], error)
	Cancel(ctx context.Context, movementID int64) (string, error)
}
