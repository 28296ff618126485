// Package lifecycle holds the state tables of estimates and contracts.
//
// Renderers and handlers consult these tables on every read; editability and
// available actions are never cached next to the document.
package lifecycle

// Action is a named operation an operator can trigger on a document.
type Action string

const (
	ActionSave             Action = "save"
	ActionDelete           Action = "delete"
	ActionShip             Action = "ship"
	ActionAssignWorker     Action = "assign-worker"
	ActionIssueAdditional  Action = "issue-additional"
	ActionUpdateItemPrice  Action = "update-item-price"
	ActionComplete         Action = "complete"
	ActionCancel           Action = "cancel"
	ActionCancelCompletion Action = "cancel-completion"
	ActionReopen           Action = "reopen"

	ActionWriteOffPipes    Action = "write-off-pipes"
	ActionGenerateDocument Action = "generate-document"
	ActionCalculateRevenue Action = "calculate-revenue"
)

// Destructive actions change stock or close a document and must be
// confirmed by the operator before they are sent.
var destructive = map[Action]bool{
	ActionDelete:           true,
	ActionComplete:         true,
	ActionCancel:           true,
	ActionCancelCompletion: true,
	ActionReopen:           true,
	ActionWriteOffPipes:    true,
}

func (a Action) Destructive() bool {
	return destructive[a]
}

func contains(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}
