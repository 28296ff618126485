package lifecycle

import "sklad/internal/domain/entities"

// EstimateRules describes what an estimate allows in a given status.
type EstimateRules struct {
	Actions          []Action
	HeaderEditable   bool
	ItemsEditable    bool
	QuantityEditable bool
	PriceEditable    bool
}

type estimateTransition struct {
	from   entities.EstimateStatus
	action Action
}

var estimateTable = map[entities.EstimateStatus]EstimateRules{
	entities.EstimateStatusDraft: {
		Actions:          []Action{ActionSave, ActionShip, ActionAssignWorker, ActionDelete},
		HeaderEditable:   true,
		ItemsEditable:    true,
		QuantityEditable: true,
		PriceEditable:    true,
	},
	entities.EstimateStatusApproved: {
		Actions: []Action{ActionShip, ActionAssignWorker, ActionDelete},
	},
	entities.EstimateStatusInProgress: {
		Actions:       []Action{ActionIssueAdditional, ActionUpdateItemPrice, ActionComplete, ActionCancel},
		PriceEditable: true,
	},
	entities.EstimateStatusCompleted: {
		Actions: []Action{ActionCancelCompletion},
	},
	entities.EstimateStatusCancelled: {
		Actions: []Action{ActionReopen, ActionDelete},
	},
}

var estimateTransitions = map[estimateTransition]entities.EstimateStatus{
	{entities.EstimateStatusDraft, ActionShip}:                 entities.EstimateStatusInProgress,
	{entities.EstimateStatusApproved, ActionShip}:              entities.EstimateStatusInProgress,
	{entities.EstimateStatusInProgress, ActionIssueAdditional}: entities.EstimateStatusInProgress,
	{entities.EstimateStatusInProgress, ActionComplete}:        entities.EstimateStatusCompleted,
	{entities.EstimateStatusInProgress, ActionCancel}:          entities.EstimateStatusCancelled,
	{entities.EstimateStatusCompleted, ActionCancelCompletion}: entities.EstimateStatusInProgress,
	{entities.EstimateStatusCancelled, ActionReopen}:           entities.EstimateStatusInProgress,
}

// NewEstimateStatus is the status of an estimate that has not been saved yet.
const NewEstimateStatus = entities.EstimateStatusDraft

// Estimate returns the rules for status. Unknown statuses are fully
// read-only with no actions.
func Estimate(status entities.EstimateStatus) EstimateRules {
	return estimateTable[status]
}

func EstimateAllows(status entities.EstimateStatus, action Action) bool {
	return contains(Estimate(status).Actions, action)
}

// EstimateTarget is the status an estimate ends in after action. The
// second value is false when action does not change status.
func EstimateTarget(status entities.EstimateStatus, action Action) (entities.EstimateStatus, bool) {
	to, ok := estimateTransitions[estimateTransition{status, action}]
	return to, ok
}

func EstimateQuantityEditable(status entities.EstimateStatus) bool {
	return Estimate(status).QuantityEditable
}

func EstimatePriceEditable(status entities.EstimateStatus) bool {
	return Estimate(status).PriceEditable
}
