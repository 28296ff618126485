package viewstate

import (
	"strings"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/domain/lifecycle"
)

// Figure names a numeric contract field.
type Figure string

const (
	FigureEstimatedDepth Figure = "estimated_depth"
	FigurePriceSoil      Figure = "price_per_meter_soil"
	FigurePriceRock      Figure = "price_per_meter_rock"
	FigureDepthSoil      Figure = "actual_depth_soil"
	FigureDepthRock      Figure = "actual_depth_rock"
	FigurePipeSteel      Figure = "pipe_steel_used"
	FigurePipePlastic    Figure = "pipe_plastic_used"
)

var Figures = []Figure{
	FigureEstimatedDepth, FigurePriceSoil, FigurePriceRock,
	FigureDepthSoil, FigureDepthRock, FigurePipeSteel, FigurePipePlastic,
}

// ContractDraft edits a contract. Only fields that differ from the loaded
// contract are sent on save.
type ContractDraft struct {
	orig    entities.Contract
	current entities.Contract
}

func NewContractDraft() *ContractDraft {
	c := entities.Contract{Status: entities.ContractStatusPlanned, ContractType: entities.ContractTypeDrilling}
	return &ContractDraft{orig: c, current: c}
}

func DraftFromContract(c entities.Contract) *ContractDraft {
	return &ContractDraft{orig: c, current: c}
}

func (d *ContractDraft) Contract() entities.Contract {
	return d.current
}

func (d *ContractDraft) Status() entities.ContractStatus {
	return d.current.Status
}

func (d *ContractDraft) FiguresEditable() bool {
	return lifecycle.ContractFiguresEditable(d.current.Status)
}

func (d *ContractDraft) Allows(a lifecycle.Action) bool {
	return lifecycle.ContractAllows(d.current.Status, a)
}

func (d *ContractDraft) SetNumber(v string)   { d.current.ContractNumber = strings.TrimSpace(v) }
func (d *ContractDraft) SetClient(v string)   { d.current.ClientName = strings.TrimSpace(v) }
func (d *ContractDraft) SetLocation(v string) { d.current.Location = strings.TrimSpace(v) }

// SetDate takes an ISO date (2006-01-02).
func (d *ContractDraft) SetDate(v string) error {
	ts, err := entities.ParseTimestamp(v)
	if err != nil {
		return err
	}
	d.current.ContractDate = ts
	return nil
}

// SetPassport sets one of the passport fields by its wire name.
func (d *ContractDraft) SetPassport(field, v string) {
	var val *string
	if v = strings.TrimSpace(v); v != "" {
		val = &v
	}
	switch field {
	case "passport_series_number":
		d.current.PassportSeriesNumber = val
	case "passport_issued_by":
		d.current.PassportIssuedBy = val
	case "passport_issue_date":
		d.current.PassportIssueDate = val
	case "passport_dep_code":
		d.current.PassportDepCode = val
	case "passport_address":
		d.current.PassportAddress = val
	}
}

// SetFigure sets a numeric field; nil clears it.
func (d *ContractDraft) SetFigure(f Figure, v *float64) error {
	if !d.FiguresEditable() {
		return ErrNotEditable
	}
	if v != nil && *v < 0 {
		zero := 0.0
		v = &zero
	}
	*d.figure(&d.current, f) = v
	return nil
}

func (d *ContractDraft) FigureValue(f Figure) *float64 {
	return *d.figure(&d.current, f)
}

func (d *ContractDraft) Dirty() bool {
	req := d.UpdateRequest()
	return req != (request.ContractUpdateRequest{})
}

func (d *ContractDraft) CreateRequest() request.ContractCreateRequest {
	c := d.current
	req := request.ContractCreateRequest{
		ContractNumber:       c.ContractNumber,
		ClientName:           c.ClientName,
		Location:             c.Location,
		ContractType:         c.ContractType,
		PassportSeriesNumber: c.PassportSeriesNumber,
		PassportIssuedBy:     c.PassportIssuedBy,
		PassportIssueDate:    c.PassportIssueDate,
		PassportDepCode:      c.PassportDepCode,
		PassportAddress:      c.PassportAddress,
		EstimatedDepth:       c.EstimatedDepth,
		PricePerMeterSoil:    c.PricePerMeterSoil,
		PricePerMeterRock:    c.PricePerMeterRock,
	}
	if !c.ContractDate.IsZero() {
		req.ContractDate = c.ContractDate.Date()
	}
	return req
}

// UpdateRequest holds every field changed since the draft was loaded.
func (d *ContractDraft) UpdateRequest() request.ContractUpdateRequest {
	var req request.ContractUpdateRequest
	o, c := d.orig, d.current
	if c.ClientName != o.ClientName {
		req.ClientName = &c.ClientName
	}
	if c.Location != o.Location {
		req.Location = &c.Location
	}
	if c.ContractDate.Date() != o.ContractDate.Date() {
		date := c.ContractDate.Date()
		req.ContractDate = &date
	}
	req.PassportSeriesNumber = changedString(o.PassportSeriesNumber, c.PassportSeriesNumber)
	req.PassportIssuedBy = changedString(o.PassportIssuedBy, c.PassportIssuedBy)
	req.PassportIssueDate = changedString(o.PassportIssueDate, c.PassportIssueDate)
	req.PassportDepCode = changedString(o.PassportDepCode, c.PassportDepCode)
	req.PassportAddress = changedString(o.PassportAddress, c.PassportAddress)

	req.EstimatedDepth = changedFloat(o.EstimatedDepth, c.EstimatedDepth)
	req.PricePerMeterSoil = changedFloat(o.PricePerMeterSoil, c.PricePerMeterSoil)
	req.PricePerMeterRock = changedFloat(o.PricePerMeterRock, c.PricePerMeterRock)
	req.ActualDepthSoil = changedFloat(o.ActualDepthSoil, c.ActualDepthSoil)
	req.ActualDepthRock = changedFloat(o.ActualDepthRock, c.ActualDepthRock)
	req.PipeSteelUsed = changedFloat(o.PipeSteelUsed, c.PipeSteelUsed)
	req.PipePlasticUsed = changedFloat(o.PipePlasticUsed, c.PipePlasticUsed)
	return req
}

// Saved makes the server copy the new baseline.
func (d *ContractDraft) Saved(c entities.Contract) {
	d.orig = c
	d.current = c
}

func (d *ContractDraft) figure(c *entities.Contract, f Figure) **float64 {
	switch f {
	case FigureEstimatedDepth:
		return &c.EstimatedDepth
	case FigurePriceSoil:
		return &c.PricePerMeterSoil
	case FigurePriceRock:
		return &c.PricePerMeterRock
	case FigureDepthSoil:
		return &c.ActualDepthSoil
	case FigureDepthRock:
		return &c.ActualDepthRock
	case FigurePipeSteel:
		return &c.PipeSteelUsed
	case FigurePipePlastic:
		return &c.PipePlasticUsed
	}
	var discard *float64
	return &discard
}

// Cleared fields cannot be expressed in a partial update and are left out.
func changedFloat(before, after *float64) *float64 {
	if after == nil {
		return nil
	}
	if before != nil && *before == *after {
		return nil
	}
	v := *after
	return &v
}

func changedString(before, after *string) *string {
	if after == nil {
		return nil
	}
	if before != nil && *before == *after {
		return nil
	}
	v := *after
	return &v
}
