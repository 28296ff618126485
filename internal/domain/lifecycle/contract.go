package lifecycle

import "sklad/internal/domain/entities"

// ContractRules describes what a contract allows in a given status.
// Completed contracts keep their header editable but lock every figure
// that already drove a pipe write-off.
type ContractRules struct {
	Actions          []Action
	HeaderEditable   bool
	FiguresEditable  bool
	ReopenWarning    string
	WriteOffComplete bool
}

// ReopenWarning is shown before a completed contract goes back to work.
const ReopenWarning = "Prior pipe write-offs are NOT reversed."

var contractTable = map[entities.ContractStatus]ContractRules{
	entities.ContractStatusPlanned: {
		Actions:         []Action{ActionSave, ActionWriteOffPipes, ActionGenerateDocument, ActionCalculateRevenue},
		HeaderEditable:  true,
		FiguresEditable: true,
	},
	entities.ContractStatusInProgress: {
		Actions:         []Action{ActionSave, ActionWriteOffPipes, ActionGenerateDocument, ActionCalculateRevenue},
		HeaderEditable:  true,
		FiguresEditable: true,
	},
	entities.ContractStatusCompleted: {
		Actions:          []Action{ActionSave, ActionReopen, ActionGenerateDocument, ActionCalculateRevenue},
		HeaderEditable:   true,
		ReopenWarning:    ReopenWarning,
		WriteOffComplete: true,
	},
	entities.ContractStatusCancelled: {
		Actions:        []Action{ActionSave, ActionGenerateDocument},
		HeaderEditable: true,
	},
}

var contractTransitions = map[entities.ContractStatus]map[Action]entities.ContractStatus{
	entities.ContractStatusPlanned:    {ActionWriteOffPipes: entities.ContractStatusCompleted},
	entities.ContractStatusInProgress: {ActionWriteOffPipes: entities.ContractStatusCompleted},
	entities.ContractStatusCompleted:  {ActionReopen: entities.ContractStatusInProgress},
}

func Contract(status entities.ContractStatus) ContractRules {
	return contractTable[status]
}

func ContractAllows(status entities.ContractStatus, action Action) bool {
	return contains(Contract(status).Actions, action)
}

func ContractTarget(status entities.ContractStatus, action Action) (entities.ContractStatus, bool) {
	to, ok := contractTransitions[status][action]
	return to, ok
}

func ContractFiguresEditable(status entities.ContractStatus) bool {
	return Contract(status).FiguresEditable
}
