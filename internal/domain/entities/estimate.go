package entities

// EstimateStatus represents the lifecycle of an estimate (смета).
//
// Domain notes:
//   - The backend is the source of truth for estimate state and stock effects.
//   - Values are the backend's wire strings and must be sent back unchanged.
type EstimateStatus string

const (
	EstimateStatusDraft      EstimateStatus = "Черновик"
	EstimateStatusApproved   EstimateStatus = "Утверждена"
	EstimateStatusInProgress EstimateStatus = "В работе"
	EstimateStatusCompleted  EstimateStatus = "Выполнена"
	EstimateStatusCancelled  EstimateStatus = "Отменена"
)

var estimateStatusLabels = map[EstimateStatus]string{
	EstimateStatusDraft:      "Draft",
	EstimateStatusApproved:   "Approved",
	EstimateStatusInProgress: "In progress",
	EstimateStatusCompleted:  "Completed",
	EstimateStatusCancelled:  "Cancelled",
}

// Label is the operator-facing name of the status.
func (s EstimateStatus) Label() string {
	if l, ok := estimateStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s EstimateStatus) Known() bool {
	_, ok := estimateStatusLabels[s]
	return ok
}

// EstimateItem is one line of an estimate. UnitPrice is the price captured
// when the line was added, not the product's current retail price.
type EstimateItem struct {
	ID          int64   `json:"id,omitempty"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Estimate is a priced list of products destined for a client site.
//
// WorkerID is set once goods are shipped (or a worker is assigned), and
// ShippedAt marks the shipment moment. TotalSum is only present on the
// detailed representation returned by GET /estimates/{id}.
type Estimate struct {
	ID             int64          `json:"id"`
	EstimateNumber string         `json:"estimate_number"`
	ClientName     string         `json:"client_name"`
	Location       *string        `json:"location"`
	Status         EstimateStatus `json:"status"`
	WorkerID       *int64         `json:"worker_id"`
	ShippedAt      *Timestamp     `json:"shipped_at"`
	CreatedAt      Timestamp      `json:"created_at"`
	Items          []EstimateItem `json:"items"`
	TotalSum       float64        `json:"total_sum,omitempty"`
}

func (e Estimate) LocationOrEmpty() string {
	if e.Location == nil {
		return ""
	}
	return *e.Location
}

func (e Estimate) HasWorker() bool {
	return e.WorkerID != nil && *e.WorkerID > 0
}
