package lifecycle

import (
	"testing"

	"sklad/internal/domain/entities"
)

func TestEstimateEditability(t *testing.T) {
	cases := []struct {
		status   entities.EstimateStatus
		quantity bool
		price    bool
	}{
		{entities.EstimateStatusDraft, true, true},
		{entities.EstimateStatusApproved, false, false},
		{entities.EstimateStatusInProgress, false, true},
		{entities.EstimateStatusCompleted, false, false},
		{entities.EstimateStatusCancelled, false, false},
		{entities.EstimateStatus("unknown"), false, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			if got := EstimateQuantityEditable(tc.status); got != tc.quantity {
				t.Fatalf("quantity editable: expected %v, got %v", tc.quantity, got)
			}
			if got := EstimatePriceEditable(tc.status); got != tc.price {
				t.Fatalf("price editable: expected %v, got %v", tc.price, got)
			}
		})
	}
}

func TestEstimateTransitions(t *testing.T) {
	t.Run("ship moves draft to in progress", func(t *testing.T) {
		to, ok := EstimateTarget(entities.EstimateStatusDraft, ActionShip)
		if !ok || to != entities.EstimateStatusInProgress {
			t.Fatalf("expected in progress, got %q (%v)", to, ok)
		}
	})

	t.Run("cancel completion returns to in progress", func(t *testing.T) {
		to, ok := EstimateTarget(entities.EstimateStatusCompleted, ActionCancelCompletion)
		if !ok || to != entities.EstimateStatusInProgress {
			t.Fatalf("expected in progress, got %q (%v)", to, ok)
		}
	})

	t.Run("completed cannot be shipped", func(t *testing.T) {
		if EstimateAllows(entities.EstimateStatusCompleted, ActionShip) {
			t.Fatalf("ship must not be allowed on completed estimates")
		}
		if _, ok := EstimateTarget(entities.EstimateStatusCompleted, ActionShip); ok {
			t.Fatalf("expected no transition")
		}
	})

	t.Run("every transition is an allowed action", func(t *testing.T) {
		for tr := range estimateTransitions {
			if !EstimateAllows(tr.from, tr.action) {
				t.Fatalf("transition %s/%s not in allowed actions", tr.from, tr.action)
			}
		}
	})
}

func TestContractRules(t *testing.T) {
	t.Run("completed locks figures and warns on reopen", func(t *testing.T) {
		rules := Contract(entities.ContractStatusCompleted)
		if rules.FiguresEditable {
			t.Fatalf("figures must be read-only when completed")
		}
		if rules.ReopenWarning == "" {
			t.Fatalf("expected reopen warning")
		}
		to, ok := ContractTarget(entities.ContractStatusCompleted, ActionReopen)
		if !ok || to != entities.ContractStatusInProgress {
			t.Fatalf("expected in progress, got %q", to)
		}
	})

	t.Run("write-off completes an open contract", func(t *testing.T) {
		to, ok := ContractTarget(entities.ContractStatusInProgress, ActionWriteOffPipes)
		if !ok || to != entities.ContractStatusCompleted {
			t.Fatalf("expected completed, got %q", to)
		}
		if ContractAllows(entities.ContractStatusCompleted, ActionWriteOffPipes) {
			t.Fatalf("completed contract cannot be written off twice")
		}
	})

	t.Run("destructive actions", func(t *testing.T) {
		if !ActionReopen.Destructive() || !ActionWriteOffPipes.Destructive() {
			t.Fatalf("reopen and write-off must require confirmation")
		}
		if ActionSave.Destructive() {
			t.Fatalf("save must not require confirmation")
		}
	})
}
