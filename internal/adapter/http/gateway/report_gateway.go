package gateway

import (
	"context"
	"net/url"
	"strconv"

	"sklad/internal/adapter/http/client"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"
)

type ReportGateway struct {
	c *client.Client
}

var _ interfaces.IReportGateway = (*ReportGateway)(nil)

func NewReportGateway(c *client.Client) *ReportGateway {
	return &ReportGateway{c: c}
}

func periodQuery(p interfaces.ReportPeriod) url.Values {
	q := url.Values{}
	if p.From != "" {
		q.Set("start_date", p.From)
	}
	if p.To != "" {
		q.Set("end_date", p.To)
	}
	return q
}

func (g *ReportGateway) Profit(ctx context.Context, p interfaces.ReportPeriod) (entities.ProfitReport, error) {
	q := periodQuery(p)
	if p.IncludeInProgress {
		q.Set("include_in_progress", "true")
	}
	var r entities.ProfitReport
	err := g.c.Get(ctx, "/reports/profit", q, &r)
	return r, err
}

func (g *ReportGateway) ProfitDetails(ctx context.Context, estimateID int64) (entities.ProfitDetail, error) {
	var d entities.ProfitDetail
	err := g.c.Get(ctx, "/reports/profit/"+strconv.FormatInt(estimateID, 10)+"/details", nil, &d)
	return d, err
}

func (g *ReportGateway) DrillingProfit(ctx context.Context, p interfaces.ReportPeriod) (entities.DrillingProfitReport, error) {
	var r entities.DrillingProfitReport
	err := g.c.Get(ctx, "/reports/drilling-profit", periodQuery(p), &r)
	return r, err
}

func (g *ReportGateway) Dashboard(ctx context.Context) (entities.DashboardSummary, error) {
	var s entities.DashboardSummary
	err := g.c.Get(ctx, "/dashboard/summary", nil, &s)
	return s, err
}
