package interfaces

//go:generate mockgen -source=contract_gateway_interface.go -destination=mocks/contract_gateway_interface.go -package=mock_interfaces

import (
	"context"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
)

// Document is a generated file ready to be saved.
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

type IContractGateway interface {
	List(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Contract], error)
	Get(ctx context.Context, id int64) (entities.Contract, error)
	Create(ctx context.Context, req request.ContractCreateRequest) (entities.Contract, error)
	Update(ctx context.Context, id int64, req request.ContractUpdateRequest) (entities.Contract, error)
	WriteOffPipes(ctx context.Context, id int64) (entities.Contract, error)
	WriteOffAllPipes(ctx context.Context, noHistory bool) (entities.PipeWriteOffSummary, error)
	GenerateDocument(ctx context.Context, id int64) (Document, error)
	CalculateRevenue(ctx context.Context, id int64, req request.RevenueRequest) (entities.Revenue, error)
}
