package spreadsheet

import (
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	ProfitSheet = "Прибыль"

	profitHeaderRow = 3
	moneyFormat     = 4 // #,##0.00
)

var profitColumns = []struct {
	title string
	width float64
}{
	{"Смета", 14},
	{"Клиент", 32},
	{"Выполнена", 14},
	{"Продажа", 16},
	{"Закупка", 16},
	{"Прибыль", 16},
	{"Маржа, %", 10},
}

// Exporter writes report workbooks.
type Exporter struct{}

var _ interfaces.IReportExporter = Exporter{}

// ProfitWorkbook writes the profit report: a title row, a header row, one
// row per estimate and a totals row.
func (Exporter) ProfitWorkbook(r entities.ProfitReport, period interfaces.ReportPeriod) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ProfitSheet); err != nil {
		return nil, errors.Wrap(err, "name sheet")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "bold style")
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	if err != nil {
		return nil, errors.Wrap(err, "money style")
	}
	boldMoney, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "total style")
	}

	title := "Отчёт о прибыли"
	if period.From != "" || period.To != "" {
		title += ": " + period.From + " - " + period.To
	}
	if period.IncludeInProgress {
		title += " (включая сметы в работе)"
	}
	if err := f.SetCellValue(ProfitSheet, "A1", title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(ProfitSheet, "A1", "A1", bold); err != nil {
		return nil, err
	}

	header := make([]any, len(profitColumns))
	for i, c := range profitColumns {
		header[i] = c.title
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(ProfitSheet, col, col, c.width); err != nil {
			return nil, err
		}
	}
	if err := setRow(f, profitHeaderRow, header, bold); err != nil {
		return nil, err
	}

	row := profitHeaderRow + 1
	for _, it := range r.Items {
		values := []any{it.EstimateNumber, it.ClientName, it.CompletedAt, it.TotalRetail, it.TotalPurchase, it.Profit, it.Margin}
		if err := setRow(f, row, values, 0); err != nil {
			return nil, err
		}
		if err := styleMoney(f, row, money); err != nil {
			return nil, err
		}
		row++
	}

	totals := []any{"Итого", "", "", r.GrandTotalRetail, r.GrandTotalPurchase, r.GrandTotalProfit, r.AverageMargin}
	if err := setRow(f, row, totals, bold); err != nil {
		return nil, err
	}
	if err := styleMoney(f, row, boldMoney); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []any, style int) error {
	start, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(ProfitSheet, start, &values); err != nil {
		return errors.Wrapf(err, "row %d", row)
	}
	if style == 0 {
		return nil
	}
	end, _ := excelize.CoordinatesToCellName(len(values), row)
	return f.SetCellStyle(ProfitSheet, start, end, style)
}

// styleMoney formats the amount columns (D:F) of row.
func styleMoney(f *excelize.File, row, style int) error {
	from, _ := excelize.CoordinatesToCellName(4, row)
	to, _ := excelize.CoordinatesToCellName(6, row)
	return f.SetCellStyle(ProfitSheet, from, to, style)
}
