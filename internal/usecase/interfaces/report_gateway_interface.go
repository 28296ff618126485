package interfaces

//go:generate mockgen -source=report_gateway_interface.go -destination=mocks/report_gateway_interface.go -package=mock_interfaces

import (
	"context"

	"sklad/internal/domain/entities"
)

// ReportPeriod bounds a report by calendar dates (YYYY-MM-DD, inclusive).
type ReportPeriod struct {
	From              string
	To                string
	IncludeInProgress bool
}

type IReportGateway interface {
	Profit(ctx context.Context, p ReportPeriod) (entities.ProfitReport, error)
	ProfitDetails(ctx context.Context, estimateID int64) (entities.ProfitDetail, error)
	DrillingProfit(ctx context.Context, p ReportPeriod) (entities.DrillingProfitReport, error)
	Dashboard(ctx context.Context) (entities.DashboardSummary, error)
}
