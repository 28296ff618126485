// Package spreadsheet reads uploads before they are sent and builds report
// workbooks.
package spreadsheet

import (
	"bytes"
	"path/filepath"
	"strings"

	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// PreviewRows is how many data rows a preview carries.
const PreviewRows = 10

var layouts = []struct {
	layout   entities.SheetLayout
	required []string
}{
	{entities.LayoutEstimate1C, []string{"КОД", "ТОВАР", "КОЛИЧЕСТВО"}},
	{entities.LayoutStock, []string{"INTERNAL_SKU", "NAME", "STOCK_QUANTITY"}},
}

// Inspector finds the header row of the first sheet. A file whose header
// matches no known layout yields a preview with an empty Layout.
type Inspector struct{}

var _ interfaces.ISpreadsheetInspector = Inspector{}

func (Inspector) Inspect(fileName string, data []byte) (entities.SheetPreview, error) {
	preview := entities.SheetPreview{FileName: filepath.Base(fileName), HeaderRow: -1}
	if strings.EqualFold(filepath.Ext(fileName), ".xls") {
		return preview, interfaces.ErrPreviewUnavailable
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return preview, errors.Wrap(err, "read workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return preview, errors.New("workbook has no sheets")
	}
	preview.Sheet = sheets[0]
	rows, err := f.GetRows(preview.Sheet)
	if err != nil {
		return preview, errors.Wrapf(err, "read sheet %q", preview.Sheet)
	}

	for i, row := range rows {
		if layout, ok := detect(row); ok {
			preview.Layout = layout
			preview.HeaderRow = i
			preview.Header = trimAll(row)
			break
		}
	}
	if preview.Layout == "" {
		return preview, nil
	}
	for _, row := range rows[preview.HeaderRow+1:] {
		row = trimAll(row)
		if blank(row) {
			continue
		}
		preview.RowCount++
		if len(preview.Rows) < PreviewRows {
			preview.Rows = append(preview.Rows, row)
		}
	}
	return preview, nil
}

func detect(row []string) (entities.SheetLayout, bool) {
	cells := make(map[string]bool, len(row))
	for _, c := range row {
		cells[strings.ToUpper(strings.TrimSpace(c))] = true
	}
	for _, l := range layouts {
		found := true
		for _, name := range l.required {
			if !cells[name] {
				found = false
				break
			}
		}
		if found {
			return l.layout, true
		}
	}
	return "", false
}

func trimAll(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

func blank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
