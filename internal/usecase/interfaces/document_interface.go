package interfaces

//go:generate mockgen -source=document_interface.go -destination=mocks/document_interface.go -package=mock_interfaces

import (
	"errors"

	"sklad/internal/domain/entities"
)

// ErrPreviewUnavailable is returned by inspectors for formats they cannot
// read locally (legacy .xls). Such files are left to the backend to check.
var ErrPreviewUnavailable = errors.New("preview is not available for this file format")

// IEstimatePrinter renders a printable estimate. link is encoded into the
// QR code on the page.
type IEstimatePrinter interface {
	EstimatePDF(e entities.Estimate, link string) ([]byte, error)
}

type IReportExporter interface {
	ProfitWorkbook(r entities.ProfitReport, period ReportPeriod) ([]byte, error)
}

// ISpreadsheetInspector reads an upload locally so unknown layouts are
// rejected before anything is sent.
type ISpreadsheetInspector interface {
	Inspect(fileName string, data []byte) (entities.SheetPreview, error)
}
