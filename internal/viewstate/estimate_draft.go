package viewstate

import (
	"strings"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/domain/lifecycle"
	"sklad/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateProduct = errors.New("product is already in the estimate")
	ErrNotEditable      = errors.New("field is read-only in the current status")
	ErrUnknownLine      = errors.New("no such line")
)

// DraftLine is one editable estimate line.
type DraftLine struct {
	ItemID    int64
	ProductID int64
	Name      string
	Unit      entities.Unit
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

func (l DraftLine) Total() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// EstimateDraft is the local copy of an estimate being edited. What may be
// edited is looked up from the status on every call.
type EstimateDraft struct {
	ID         int64
	Number     string
	ClientName string
	Location   string
	Status     entities.EstimateStatus
	WorkerID   int64

	lines []DraftLine
}

func NewEstimateDraft() *EstimateDraft {
	return &EstimateDraft{Status: lifecycle.NewEstimateStatus}
}

func DraftFromEstimate(e entities.Estimate) *EstimateDraft {
	d := &EstimateDraft{
		ID:         e.ID,
		Number:     e.EstimateNumber,
		ClientName: e.ClientName,
		Location:   e.LocationOrEmpty(),
		Status:     e.Status,
	}
	if e.WorkerID != nil {
		d.WorkerID = *e.WorkerID
	}
	for _, it := range e.Items {
		d.lines = append(d.lines, DraftLine{
			ItemID:    it.ID,
			ProductID: it.ProductID,
			Name:      it.ProductName,
			Quantity:  decimal.NewFromFloat(it.Quantity),
			UnitPrice: decimal.NewFromFloat(it.UnitPrice),
		})
	}
	return d
}

func (d *EstimateDraft) Rules() lifecycle.EstimateRules {
	return lifecycle.Estimate(d.Status)
}

func (d *EstimateDraft) HeaderEditable() bool   { return d.Rules().HeaderEditable }
func (d *EstimateDraft) ItemsEditable() bool    { return d.Rules().ItemsEditable }
func (d *EstimateDraft) QuantityEditable() bool { return lifecycle.EstimateQuantityEditable(d.Status) }
func (d *EstimateDraft) PriceEditable() bool    { return lifecycle.EstimatePriceEditable(d.Status) }

func (d *EstimateDraft) Allows(a lifecycle.Action) bool {
	return lifecycle.EstimateAllows(d.Status, a)
}

func (d *EstimateDraft) Lines() []DraftLine {
	return append([]DraftLine(nil), d.lines...)
}

// AddProduct appends a line for p at its retail price and quantity 1.
func (d *EstimateDraft) AddProduct(p entities.Product) error {
	if !d.ItemsEditable() {
		return ErrNotEditable
	}
	if d.index(p.ID) >= 0 {
		return ErrDuplicateProduct
	}
	d.lines = append(d.lines, DraftLine{
		ProductID: p.ID,
		Name:      p.Name,
		Unit:      p.Unit,
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.NewFromFloat(p.RetailPrice),
	})
	return nil
}

func (d *EstimateDraft) RemoveProduct(productID int64) error {
	if !d.ItemsEditable() {
		return ErrNotEditable
	}
	i := d.index(productID)
	if i < 0 {
		return ErrUnknownLine
	}
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	return nil
}

// SetQuantity sets a line quantity; values below 1 become 1.
func (d *EstimateDraft) SetQuantity(productID int64, q float64) error {
	if !d.QuantityEditable() {
		return ErrNotEditable
	}
	i := d.index(productID)
	if i < 0 {
		return ErrUnknownLine
	}
	v := decimal.NewFromFloat(q)
	if v.LessThan(decimal.NewFromInt(1)) {
		v = decimal.NewFromInt(1)
	}
	d.lines[i].Quantity = v
	return nil
}

// SetPrice sets a line unit price; negative values become 0.
func (d *EstimateDraft) SetPrice(productID int64, price float64) error {
	if !d.PriceEditable() {
		return ErrNotEditable
	}
	i := d.index(productID)
	if i < 0 {
		return ErrUnknownLine
	}
	v := decimal.NewFromFloat(price)
	if v.IsNegative() {
		v = decimal.Zero
	}
	d.lines[i].UnitPrice = v
	return nil
}

func (d *EstimateDraft) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range d.lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

// CreateRequest is the payload for saving a new estimate. Drafts without
// lines are refused.
func (d *EstimateDraft) CreateRequest() (request.EstimateCreateRequest, error) {
	if len(d.lines) == 0 {
		return request.EstimateCreateRequest{}, usecase.ErrEmptyItems
	}
	req := request.EstimateCreateRequest{
		EstimateNumber: strings.TrimSpace(d.Number),
		ClientName:     strings.TrimSpace(d.ClientName),
		Items:          d.itemRequests(),
	}
	if loc := strings.TrimSpace(d.Location); loc != "" {
		req.Location = &loc
	}
	return req, nil
}

// UpdateRequest is the payload for saving an existing draft.
func (d *EstimateDraft) UpdateRequest() (request.EstimateUpdateRequest, error) {
	if !d.HeaderEditable() {
		return request.EstimateUpdateRequest{}, ErrNotEditable
	}
	if len(d.lines) == 0 {
		return request.EstimateUpdateRequest{}, usecase.ErrEmptyItems
	}
	number := strings.TrimSpace(d.Number)
	client := strings.TrimSpace(d.ClientName)
	loc := strings.TrimSpace(d.Location)
	items := d.itemRequests()
	return request.EstimateUpdateRequest{
		EstimateNumber: &number,
		ClientName:     &client,
		Location:       &loc,
		Items:          &items,
	}, nil
}

// Estimate converts the draft back for actions that take the document.
func (d *EstimateDraft) Estimate() entities.Estimate {
	e := entities.Estimate{
		ID:             d.ID,
		EstimateNumber: d.Number,
		ClientName:     d.ClientName,
		Status:         d.Status,
		TotalSum:       d.Total().InexactFloat64(),
	}
	if d.Location != "" {
		loc := d.Location
		e.Location = &loc
	}
	if d.WorkerID > 0 {
		w := d.WorkerID
		e.WorkerID = &w
	}
	for _, l := range d.lines {
		e.Items = append(e.Items, entities.EstimateItem{
			ID:          l.ItemID,
			ProductID:   l.ProductID,
			ProductName: l.Name,
			Quantity:    l.Quantity.InexactFloat64(),
			UnitPrice:   l.UnitPrice.InexactFloat64(),
		})
	}
	return e
}

func (d *EstimateDraft) itemRequests() []request.EstimateItemRequest {
	out := make([]request.EstimateItemRequest, 0, len(d.lines))
	for _, l := range d.lines {
		price := l.UnitPrice.InexactFloat64()
		out = append(out, request.EstimateItemRequest{
			ProductID: l.ProductID,
			Quantity:  l.Quantity.InexactFloat64(),
			UnitPrice: &price,
		})
	}
	return out
}

func (d *EstimateDraft) index(productID int64) int {
	for i, l := range d.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}
