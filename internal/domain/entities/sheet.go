package entities

// SheetLayout is a header set the backend importers understand.
type SheetLayout string

const (
	// LayoutEstimate1C is the 1C estimate export: КОД, ТОВАР, КОЛИЧЕСТВО and
	// optionally ЦЕНА.
	LayoutEstimate1C SheetLayout = "estimate_1c"
	// LayoutStock is the stock upload: INTERNAL_SKU, NAME, STOCK_QUANTITY and
	// optionally SUPPLIER_SKU.
	LayoutStock SheetLayout = "stock"
)

// SheetPreview is what the operator sees before a spreadsheet is uploaded.
type SheetPreview struct {
	FileName  string
	Sheet     string
	Layout    SheetLayout
	HeaderRow int
	Header    []string
	Rows      [][]string
	RowCount  int
}
