package gateway

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"sklad/internal/adapter/http/client"
	"sklad/internal/adapter/http/dto/response"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"
)

type ImportGateway struct {
	c *client.Client
}

var _ interfaces.IImportGateway = (*ImportGateway)(nil)

func NewImportGateway(c *client.Client) *ImportGateway {
	return &ImportGateway{c: c}
}

func (g *ImportGateway) Universal(ctx context.Context, fileName string, content io.Reader, opts interfaces.ImportOptions) (response.ImportResponse, error) {
	form := client.Form{
		Fields: []client.Field{
			{Name: "mode", Value: string(opts.Mode)},
			{Name: "is_initial_load", Value: strconv.FormatBool(opts.IsInitialLoad)},
			{Name: "auto_create_new", Value: strconv.FormatBool(opts.AutoCreateNew)},
		},
		File: &client.FormFile{Field: "file", Name: fileName, Content: content},
	}
	resp, err := g.c.Do(ctx, client.Request{Method: http.MethodPost, Path: "/actions/universal-import/", Form: &form})
	if err != nil {
		return response.ImportResponse{}, err
	}
	return response.DecodeImport(opts.Mode, resp.Body)
}

func (g *ImportGateway) Estimate1C(ctx context.Context, fileName string, content io.Reader) (entities.Estimate, error) {
	var e entities.Estimate
	err := g.c.Upload(ctx, "/actions/import-1c-estimate/", client.Form{
		File: &client.FormFile{Field: "file", Name: fileName, Content: content},
	}, &e)
	return e, err
}
