package entities

import "strings"

// MovementType classifies a stock movement. Reversals are recorded by the
// backend as "Отмена (<original type>)".
type MovementType string

const (
	MovementIncome           MovementType = "Поступление"
	MovementIssueToWorker    MovementType = "Выдача работнику"
	MovementReturnFromWorker MovementType = "Возврат от работника"
	MovementWriteOffEstimate MovementType = "Списание по смете"
	MovementWriteOffContract MovementType = "Списание по договору"
	MovementAdjustment       MovementType = "Корректировка"
	MovementWriteOffWorker   MovementType = "Списание работником"
)

const reversalMarker = "Отмена"

var MovementTypes = []MovementType{
	MovementIncome,
	MovementIssueToWorker,
	MovementReturnFromWorker,
	MovementWriteOffEstimate,
	MovementWriteOffContract,
	MovementAdjustment,
	MovementWriteOffWorker,
}

// IsReversal reports whether the movement cancels another movement.
// Reversals can never be cancelled themselves. Only the prefix counts: a
// free-form adjustment may mention the marker in its note.
func (t MovementType) IsReversal() bool {
	return strings.HasPrefix(string(t), reversalMarker)
}

// ReversalOf is the type the backend gives to the correction of t.
func ReversalOf(t MovementType) MovementType {
	return MovementType(reversalMarker + " (" + string(t) + ")")
}

type NamedRef struct {
	Name string `json:"name"`
}

// Movement is an immutable ledger entry of the stock history.
type Movement struct {
	ID         int64        `json:"id"`
	Timestamp  Timestamp    `json:"timestamp"`
	Type       MovementType `json:"type"`
	Quantity   float64      `json:"quantity"`
	StockAfter *float64     `json:"stock_after"`
	Product    NamedRef     `json:"product"`
	Worker     *NamedRef    `json:"worker"`
}

func (m Movement) Cancellable() bool {
	return !m.Type.IsReversal()
}

func (m Movement) WorkerName() string {
	if m.Worker == nil {
		return ""
	}
	return m.Worker.Name
}
