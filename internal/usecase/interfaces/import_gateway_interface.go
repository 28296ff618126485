package interfaces

//go:generate mockgen -source=import_gateway_interface.go -destination=mocks/import_gateway_interface.go -package=mock_interfaces

import (
	"context"
	"io"

	"sklad/internal/adapter/http/dto/response"
	"sklad/internal/domain/entities"
)

// ImportOptions tune a to_stock import. IsInitialLoad replaces stock
// quantities instead of adding to them.
type ImportOptions struct {
	Mode          entities.ImportMode
	IsInitialLoad bool
	AutoCreateNew bool
}

type IImportGateway interface {
	Universal(ctx context.Context, fileName string, content io.Reader, opts ImportOptions) (response.ImportResponse, error)
	Estimate1C(ctx context.Context, fileName string, content io.Reader) (entities.Estimate, error)
}
