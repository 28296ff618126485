// Package documents renders printable documents.
package documents

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"sklad/internal/domain/entities"
	"sklad/internal/format"
	"sklad/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	fontFamily = "body"
	qrImage    = "estimate-qr"
	qrSize     = 256
)

// EstimatePrinter lays out an estimate on one A4 page (more when the item
// list is long) with a QR code linking to the estimate.
//
// Core PDF fonts cannot show Cyrillic. With a TrueType font configured the
// text is embedded as is; without one it is transliterated.
type EstimatePrinter struct {
	font     []byte
	fmt      format.Formatter
	compress bool
}

var _ interfaces.IEstimatePrinter = (*EstimatePrinter)(nil)

// NewEstimatePrinter loads the TrueType font at fontPath; an empty path
// selects the built-in Helvetica.
func NewEstimatePrinter(fontPath string, f format.Formatter) (*EstimatePrinter, error) {
	p := &EstimatePrinter{fmt: f, compress: true}
	if fontPath == "" {
		return p, nil
	}
	font, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, errors.Wrap(err, "read pdf font")
	}
	p.font = font
	return p, nil
}

func (p *EstimatePrinter) EstimatePDF(e entities.Estimate, link string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(p.compress)
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)

	text := p.textFunc()
	if p.font != nil {
		pdf.AddUTF8FontFromBytes(fontFamily, "", p.font)
		pdf.AddUTF8FontFromBytes(fontFamily, "B", p.font)
	}
	setFont := func(style string, size float64) {
		if p.font != nil {
			pdf.SetFont(fontFamily, style, size)
			return
		}
		pdf.SetFont("Helvetica", style, size)
	}

	pdf.SetTitle(text("Смета "+e.EstimateNumber), p.font != nil)
	pdf.AddPage()

	setFont("B", 16)
	pdf.Cell(150, 10, text("Смета № "+e.EstimateNumber))
	pdf.Ln(12)

	setFont("", 10)
	header := [][2]string{
		{"Клиент", e.ClientName},
		{"Объект", e.LocationOrEmpty()},
		{"Статус", string(e.Status)},
		{"Создана", p.fmt.Date(e.CreatedAt.Time)},
	}
	if e.ShippedAt != nil {
		header = append(header, [2]string{"Отгружена", p.fmt.Date(e.ShippedAt.Time)})
	}
	for _, h := range header {
		if h[1] == "" {
			continue
		}
		setFont("B", 10)
		pdf.Cell(30, 6, text(h[0]+":"))
		setFont("", 10)
		pdf.Cell(110, 6, text(h[1]))
		pdf.Ln(6)
	}

	if link != "" {
		png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
		if err != nil {
			return nil, errors.Wrap(err, "encode qr code")
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(qrImage, opts, bytes.NewReader(png))
		pdf.ImageOptions(qrImage, 165, 10, 35, 35, false, opts, 0, link)
	}

	pdf.SetY(50)
	setFont("B", 10)
	pdf.SetFillColor(240, 240, 240)
	cols := []struct {
		title string
		width float64
		align string
	}{
		{"№", 10, "C"},
		{"Товар", 90, "L"},
		{"Кол-во", 25, "R"},
		{"Цена", 30, "R"},
		{"Сумма", 35, "R"},
	}
	for i, c := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		pdf.CellFormat(c.width, 8, text(c.title), "1", ln, "C", true, 0, "")
	}

	setFont("", 9)
	var total float64
	for i, it := range e.Items {
		sum := it.Quantity * it.UnitPrice
		total += sum
		cells := []string{
			strconv.Itoa(i + 1),
			format.Truncate(it.ProductName, 55),
			p.fmt.Quantity(it.Quantity, ""),
			p.fmt.Number(it.UnitPrice),
			p.fmt.Number(sum),
		}
		for j, c := range cols {
			ln := 0
			if j == len(cols)-1 {
				ln = 1
			}
			pdf.CellFormat(c.width, 7, text(cells[j]), "1", ln, c.align, false, 0, "")
		}
	}
	if e.TotalSum > 0 {
		total = e.TotalSum
	}

	setFont("B", 10)
	pdf.CellFormat(155, 8, text("Итого"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, text(p.fmt.Money(total)), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "render pdf")
	}
	return buf.Bytes(), nil
}

func (p *EstimatePrinter) textFunc() func(string) string {
	if p.font != nil {
		return func(s string) string { return s }
	}
	return Transliterate
}

var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e", 'ж': "zh",
	'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o",
	'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts",
	'ч': "ch", 'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu",
	'я': "ya", '№': "No", '₽': "RUB", '…': "...", '\u00a0': " ", '\u202f': " ",
}

// Transliterate maps Cyrillic to Latin so it survives the core fonts'
// single-byte encoding. Other non-ASCII runes become '?'.
func Transliterate(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		lower := r
		upper := false
		if r >= 'А' && r <= 'Я' || r == 'Ё' {
			upper = true
			lower = r + ('а' - 'А')
			if r == 'Ё' {
				lower = 'ё'
			}
		}
		t, ok := translit[lower]
		if !ok {
			b.WriteByte('?')
			continue
		}
		if upper && t != "" {
			t = strings.ToUpper(t[:1]) + t[1:]
		}
		b.WriteString(t)
	}
	return b.String()
}
