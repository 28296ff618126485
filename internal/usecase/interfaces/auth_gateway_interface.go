package interfaces

//go:generate mockgen -source=auth_gateway_interface.go -destination=mocks/auth_gateway_interface.go -package=mock_interfaces

import (
	"context"

	"sklad/internal/domain/entities"
)

// IAuthGateway exchanges operator credentials for a bearer token.
type IAuthGateway interface {
	Login(ctx context.Context, username, password string) (entities.Credential, error)
}
