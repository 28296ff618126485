package request

import "sklad/internal/domain/entities"

type ContractCreateRequest struct {
	ContractNumber string                `json:"contract_number" validate:"required"`
	ContractDate   string                `json:"contract_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ClientName     string                `json:"client_name" validate:"required"`
	Location       string                `json:"location" validate:"required"`
	ContractType   entities.ContractType `json:"contract_type,omitempty"`

	PassportSeriesNumber *string `json:"passport_series_number,omitempty"`
	PassportIssuedBy     *string `json:"passport_issued_by,omitempty"`
	PassportIssueDate    *string `json:"passport_issue_date,omitempty"`
	PassportDepCode      *string `json:"passport_dep_code,omitempty"`
	PassportAddress      *string `json:"passport_address,omitempty"`

	EstimatedDepth    *float64 `json:"estimated_depth,omitempty" validate:"omitempty,gte=0"`
	PricePerMeterSoil *float64 `json:"price_per_meter_soil,omitempty" validate:"omitempty,gte=0"`
	PricePerMeterRock *float64 `json:"price_per_meter_rock,omitempty" validate:"omitempty,gte=0"`
}

// ContractUpdateRequest mirrors the backend's partial contract update.
type ContractUpdateRequest struct {
	ClientName   *string                  `json:"client_name,omitempty" validate:"omitempty,min=1"`
	Location     *string                  `json:"location,omitempty"`
	ContractDate *string                  `json:"contract_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status       *entities.ContractStatus `json:"status,omitempty"`
	ContractType *entities.ContractType   `json:"contract_type,omitempty"`

	PassportSeriesNumber *string `json:"passport_series_number,omitempty"`
	PassportIssuedBy     *string `json:"passport_issued_by,omitempty"`
	PassportIssueDate    *string `json:"passport_issue_date,omitempty"`
	PassportDepCode      *string `json:"passport_dep_code,omitempty"`
	PassportAddress      *string `json:"passport_address,omitempty"`

	EstimatedDepth    *float64 `json:"estimated_depth,omitempty" validate:"omitempty,gte=0"`
	PricePerMeterSoil *float64 `json:"price_per_meter_soil,omitempty" validate:"omitempty,gte=0"`
	PricePerMeterRock *float64 `json:"price_per_meter_rock,omitempty" validate:"omitempty,gte=0"`
	ActualDepthSoil   *float64 `json:"actual_depth_soil,omitempty" validate:"omitempty,gte=0"`
	ActualDepthRock   *float64 `json:"actual_depth_rock,omitempty" validate:"omitempty,gte=0"`
	PipeSteelUsed     *float64 `json:"pipe_steel_used,omitempty" validate:"omitempty,gte=0"`
	PipePlasticUsed   *float64 `json:"pipe_plastic_used,omitempty" validate:"omitempty,gte=0"`
}

// TouchesFigures reports whether the update changes depths, prices or pipe
// usage, which completed contracts keep read-only.
func (r ContractUpdateRequest) TouchesFigures() bool {
	return r.EstimatedDepth != nil || r.PricePerMeterSoil != nil || r.PricePerMeterRock != nil ||
		r.ActualDepthSoil != nil || r.ActualDepthRock != nil ||
		r.PipeSteelUsed != nil || r.PipePlasticUsed != nil
}

type RevenueRequest struct {
	MetersSoil               float64  `json:"meters_soil" validate:"gte=0"`
	MetersRock               float64  `json:"meters_rock" validate:"gte=0"`
	SteelPipeMeters          *float64 `json:"steel_pipe_meters,omitempty" validate:"omitempty,gte=0"`
	SteelPipePricePerMeter   *float64 `json:"steel_pipe_price_per_meter,omitempty" validate:"omitempty,gte=0"`
	PlasticPipeMeters        *float64 `json:"plastic_pipe_meters,omitempty" validate:"omitempty,gte=0"`
	PlasticPipePricePerMeter *float64 `json:"plastic_pipe_price_per_meter,omitempty" validate:"omitempty,gte=0"`
	MinPrice                 *float64 `json:"min_price,omitempty" validate:"omitempty,gte=0"`
}

// RevenueFromContract prefills the calculation with the contract's actual
// figures.
func RevenueFromContract(c entities.Contract) RevenueRequest {
	deref := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	}
	return RevenueRequest{
		MetersSoil:        deref(c.ActualDepthSoil),
		MetersRock:        deref(c.ActualDepthRock),
		SteelPipeMeters:   c.PipeSteelUsed,
		PlasticPipeMeters: c.PipePlasticUsed,
	}
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}
