package usecase

import (
	"context"
	"fmt"
	"strings"

	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Overview is what the dashboard screen shows at once.
type Overview struct {
	Summary  entities.DashboardSummary
	Profit   entities.ProfitReport
	Drilling entities.DrillingProfitReport
}

type IReportUseCase interface {
	Profit(ctx context.Context, p interfaces.ReportPeriod) (entities.ProfitReport, error)
	ProfitDetails(ctx context.Context, estimateID int64) (entities.ProfitDetail, error)
	DrillingProfit(ctx context.Context, p interfaces.ReportPeriod) (entities.DrillingProfitReport, error)
	Dashboard(ctx context.Context) (entities.DashboardSummary, error)
	Overview(ctx context.Context, p interfaces.ReportPeriod) (Overview, error)
	ExportProfit(ctx context.Context, p interfaces.ReportPeriod) (interfaces.Document, error)
	MailProfit(ctx context.Context, p interfaces.ReportPeriod, to []string) error
}

type ReportUseCase struct {
	reports  interfaces.IReportGateway
	exporter interfaces.IReportExporter
	mailer   interfaces.IMailer
	fb       Feedback
	log      log.FieldLogger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

// NewReportUseCase builds the reports use case. exporter and mailer may be
// nil; the operations that need them then fail.
func NewReportUseCase(reports interfaces.IReportGateway, exporter interfaces.IReportExporter, mailer interfaces.IMailer, fb Feedback) *ReportUseCase {
	return &ReportUseCase{reports: reports, exporter: exporter, mailer: mailer, fb: fb, log: fb.logger("reports")}
}

func (u *ReportUseCase) Profit(ctx context.Context, p interfaces.ReportPeriod) (entities.ProfitReport, error) {
	return u.reports.Profit(ctx, p)
}

func (u *ReportUseCase) ProfitDetails(ctx context.Context, estimateID int64) (entities.ProfitDetail, error) {
	if err := validID(estimateID); err != nil {
		return entities.ProfitDetail{}, err
	}
	return u.reports.ProfitDetails(ctx, estimateID)
}

func (u *ReportUseCase) DrillingProfit(ctx context.Context, p interfaces.ReportPeriod) (entities.DrillingProfitReport, error) {
	return u.reports.DrillingProfit(ctx, p)
}

func (u *ReportUseCase) Dashboard(ctx context.Context) (entities.DashboardSummary, error) {
	return u.reports.Dashboard(ctx)
}

// Overview loads the dashboard and both reports concurrently.
func (u *ReportUseCase) Overview(ctx context.Context, p interfaces.ReportPeriod) (Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.Summary, err = u.reports.Dashboard(gctx)
		return errors.Wrap(err, "dashboard")
	})
	g.Go(func() error {
		var err error
		out.Profit, err = u.reports.Profit(gctx, p)
		return errors.Wrap(err, "profit report")
	})
	g.Go(func() error {
		var err error
		out.Drilling, err = u.reports.DrillingProfit(gctx, p)
		return errors.Wrap(err, "drilling profit report")
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}

func (u *ReportUseCase) ExportProfit(ctx context.Context, p interfaces.ReportPeriod) (interfaces.Document, error) {
	if u.exporter == nil {
		return interfaces.Document{}, errors.New("report export is not configured")
	}
	r, err := u.reports.Profit(ctx, p)
	if err != nil {
		return interfaces.Document{}, err
	}
	data, err := u.exporter.ProfitWorkbook(r, p)
	if err != nil {
		return interfaces.Document{}, errors.Wrap(err, "build workbook")
	}
	return interfaces.Document{Name: profitFileName(p), ContentType: xlsxContentType, Data: data}, nil
}

// MailProfit exports the profit report and sends it as an attachment.
func (u *ReportUseCase) MailProfit(ctx context.Context, p interfaces.ReportPeriod, to []string) error {
	if len(to) == 0 {
		return ErrNoRecipients
	}
	if u.mailer == nil {
		return errors.New("mail is not configured")
	}
	doc, err := u.ExportProfit(ctx, p)
	if err != nil {
		return err
	}
	subject := "Profit report " + periodLabel(p)
	body := fmt.Sprintf("Profit report for %s is attached.", periodLabel(p))
	err = u.fb.track("Sending profit report", "Profit report sent to "+strings.Join(to, ", "), func() error {
		return u.mailer.Send(ctx, to, subject, body, []interfaces.Attachment{{Name: doc.Name, Data: doc.Data}})
	})
	if err != nil {
		return err
	}
	u.log.WithField("recipients", len(to)).Info("profit report mailed")
	return nil
}

func periodLabel(p interfaces.ReportPeriod) string {
	switch {
	case p.From != "" && p.To != "":
		return p.From + " - " + p.To
	case p.From != "":
		return "from " + p.From
	case p.To != "":
		return "until " + p.To
	}
	return "all time"
}

func profitFileName(p interfaces.ReportPeriod) string {
	name := "profit"
	if p.From != "" {
		name += "_" + p.From
	}
	if p.To != "" {
		name += "_" + p.To
	}
	return name + ".xlsx"
}
