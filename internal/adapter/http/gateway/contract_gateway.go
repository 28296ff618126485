package gateway

import (
	"context"
	"net/url"
	"strconv"

	"sklad/internal/adapter/http/client"
	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"
)

const contractsPath = "/contracts/"

type ContractGateway struct {
	c *client.Client
}

var _ interfaces.IContractGateway = (*ContractGateway)(nil)

func NewContractGateway(c *client.Client) *ContractGateway {
	return &ContractGateway{c: c}
}

// List returns every matching contract; the endpoint is not paginated and
// answers a bare array.
func (g *ContractGateway) List(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Contract], error) {
	q.Page, q.Size = 0, 0
	return client.GetPage[entities.Contract](ctx, g.c, contractsPath, q.Values())
}

func (g *ContractGateway) Get(ctx context.Context, id int64) (entities.Contract, error) {
	var c entities.Contract
	err := g.c.Get(ctx, idPath(contractsPath, id), nil, &c)
	return c, err
}

func (g *ContractGateway) Create(ctx context.Context, req request.ContractCreateRequest) (entities.Contract, error) {
	var c entities.Contract
	err := g.c.Post(ctx, contractsPath, nil, req, &c)
	return c, err
}

func (g *ContractGateway) Update(ctx context.Context, id int64, req request.ContractUpdateRequest) (entities.Contract, error) {
	var c entities.Contract
	err := g.c.Patch(ctx, idPath(contractsPath, id), nil, req, &c)
	return c, err
}

func (g *ContractGateway) WriteOffPipes(ctx context.Context, id int64) (entities.Contract, error) {
	var c entities.Contract
	err := g.c.Post(ctx, idPath(contractsPath, id, "write-off-pipes"), nil, nil, &c)
	return c, err
}

func (g *ContractGateway) WriteOffAllPipes(ctx context.Context, noHistory bool) (entities.PipeWriteOffSummary, error) {
	var s entities.PipeWriteOffSummary
	q := url.Values{"no_history": {strconv.FormatBool(noHistory)}}
	err := g.c.Post(ctx, contractsPath+"write-off-all-pipes", q, nil, &s)
	return s, err
}

func (g *ContractGateway) GenerateDocument(ctx context.Context, id int64) (interfaces.Document, error) {
	fallback := "contract_" + strconv.FormatInt(id, 10) + ".docx"
	f, err := g.c.Download(ctx, idPath(contractsPath, id, "generate-docx"), nil, fallback)
	if err != nil {
		return interfaces.Document{}, err
	}
	return interfaces.Document{Name: f.Name, ContentType: f.ContentType, Data: f.Data}, nil
}

func (g *ContractGateway) CalculateRevenue(ctx context.Context, id int64, req request.RevenueRequest) (entities.Revenue, error) {
	var r entities.Revenue
	err := g.c.Post(ctx, idPath(contractsPath, id, "calculate-revenue"), nil, req, &r)
	return r, err
}
