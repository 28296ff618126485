package entities

type ContractStatus string

const (
	ContractStatusPlanned    ContractStatus = "Планируется"
	ContractStatusInProgress ContractStatus = "В работе"
	ContractStatusCompleted  ContractStatus = "Завершен"
	ContractStatusCancelled  ContractStatus = "Отменен"
)

var contractStatusLabels = map[ContractStatus]string{
	ContractStatusPlanned:    "Planned",
	ContractStatusInProgress: "In progress",
	ContractStatusCompleted:  "Completed",
	ContractStatusCancelled:  "Cancelled",
}

func (s ContractStatus) Label() string {
	if l, ok := contractStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// ContractType separates drilling contracts (counted by the drilling
// profit report) from everything else.
type ContractType string

const (
	ContractTypeDrilling ContractType = "DRILLING"
)

// Contract is a drilling-services agreement with a client.
//
// Planned figures (estimated depth, per-meter prices) are set up front;
// actual depths and pipe usage are filled in after the job and drive the
// pipe write-off that completes the contract.
type Contract struct {
	ID             int64          `json:"id"`
	ContractNumber string         `json:"contract_number"`
	ContractDate   Timestamp      `json:"contract_date"`
	ClientName     string         `json:"client_name"`
	Location       string         `json:"location"`
	ContractType   ContractType   `json:"contract_type,omitempty"`
	Status         ContractStatus `json:"status"`

	PassportSeriesNumber *string `json:"passport_series_number"`
	PassportIssuedBy     *string `json:"passport_issued_by"`
	PassportIssueDate    *string `json:"passport_issue_date"`
	PassportDepCode      *string `json:"passport_dep_code"`
	PassportAddress      *string `json:"passport_address"`

	EstimatedDepth    *float64 `json:"estimated_depth"`
	PricePerMeterSoil *float64 `json:"price_per_meter_soil"`
	PricePerMeterRock *float64 `json:"price_per_meter_rock"`

	ActualDepthSoil *float64 `json:"actual_depth_soil"`
	ActualDepthRock *float64 `json:"actual_depth_rock"`
	PipeSteelUsed   *float64 `json:"pipe_steel_used"`
	PipePlasticUsed *float64 `json:"pipe_plastic_used"`
}

// RevenueLine is one position of a contract revenue breakdown.
type RevenueLine struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit"`
	Sum         *float64 `json:"sum"`
	PurchaseSum *float64 `json:"purchase_sum"`
}

// Revenue is the server-side revenue calculation of a contract.
type Revenue struct {
	ContractID       int64         `json:"contract_id"`
	Items            []RevenueLine `json:"items"`
	DrillingOnly     float64       `json:"drilling_only"`
	PipeCostPurchase float64       `json:"pipe_cost_purchase"`
	PipeCostRetail   float64       `json:"pipe_cost_retail"`
	Subtotal         float64       `json:"subtotal"`
	AppliedMinPrice  *float64      `json:"applied_min_price"`
	Total            float64       `json:"total"`
	NetProfit        float64       `json:"net_profit"`
}

// PipeWriteOffSummary is returned by the bulk pipe write-off.
type PipeWriteOffSummary struct {
	ContractsProcessed int `json:"contracts_processed"`
	Movements          int `json:"movements"`
}
