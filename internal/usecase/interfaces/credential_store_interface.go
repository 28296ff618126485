package interfaces

//go:generate mockgen -source=credential_store_interface.go -destination=mocks/credential_store_interface.go -package=mock_interfaces

import (
	"context"

	"sklad/internal/domain/entities"
)

// ICredentialStore keeps the operator's bearer credential between runs.
//
// Load returns an empty credential (and no error) when nothing is stored.
// Clear must be idempotent.
type ICredentialStore interface {
	Load(ctx context.Context) (entities.Credential, error)
	Save(ctx context.Context, c entities.Credential) error
	Clear(ctx context.Context) error
}
