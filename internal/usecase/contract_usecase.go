package usecase

import (
	"context"
	"fmt"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/domain/lifecycle"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrFiguresLocked = errors.New("depths, prices and pipe usage are locked on completed contracts")

type IContractUseCase interface {
	List(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Contract], error)
	Get(ctx context.Context, id int64) (entities.Contract, error)
	Create(ctx context.Context, req request.ContractCreateRequest) (entities.Contract, error)
	Save(ctx context.Context, current entities.Contract, req request.ContractUpdateRequest) (entities.Contract, error)
	WriteOffPipes(ctx context.Context, current entities.Contract) (entities.Contract, error)
	WriteOffAll(ctx context.Context, noHistory bool) (entities.PipeWriteOffSummary, error)
	Reopen(ctx context.Context, current entities.Contract) (entities.Contract, error)
	GenerateDocument(ctx context.Context, current entities.Contract) (interfaces.Document, error)
	CalculateRevenue(ctx context.Context, current entities.Contract, req request.RevenueRequest) (entities.Revenue, error)
}

type ContractUseCase struct {
	contracts interfaces.IContractGateway
	fb        Feedback
	log       log.FieldLogger
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(contracts interfaces.IContractGateway, fb Feedback) *ContractUseCase {
	return &ContractUseCase{contracts: contracts, fb: fb, log: fb.logger("contracts")}
}

func (u *ContractUseCase) List(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Contract], error) {
	return u.contracts.List(ctx, q)
}

func (u *ContractUseCase) Get(ctx context.Context, id int64) (entities.Contract, error) {
	if err := validID(id); err != nil {
		return entities.Contract{}, err
	}
	return u.contracts.Get(ctx, id)
}

func (u *ContractUseCase) Create(ctx context.Context, req request.ContractCreateRequest) (entities.Contract, error) {
	if req.ContractType == "" {
		req.ContractType = entities.ContractTypeDrilling
	}
	if err := validate(req); err != nil {
		return entities.Contract{}, err
	}
	var created entities.Contract
	err := u.fb.track("Saving contract "+req.ContractNumber, "Contract "+req.ContractNumber+" saved", func() error {
		var err error
		created, err = u.contracts.Create(ctx, req)
		return err
	})
	return created, err
}

// Save refuses figure changes on contracts whose status locks them, even
// though the backend would reject them too.
func (u *ContractUseCase) Save(ctx context.Context, current entities.Contract, req request.ContractUpdateRequest) (entities.Contract, error) {
	if err := contractAllowed(current, lifecycle.ActionSave); err != nil {
		return entities.Contract{}, err
	}
	if req.TouchesFigures() && !lifecycle.ContractFiguresEditable(current.Status) {
		return entities.Contract{}, ErrFiguresLocked
	}
	if err := validate(req); err != nil {
		return entities.Contract{}, err
	}
	var saved entities.Contract
	err := u.fb.track("Saving contract "+current.ContractNumber, "Contract "+current.ContractNumber+" saved", func() error {
		var err error
		saved, err = u.contracts.Update(ctx, current.ID, req)
		return err
	})
	return saved, err
}

func (u *ContractUseCase) WriteOffPipes(ctx context.Context, current entities.Contract) (entities.Contract, error) {
	if err := contractAllowed(current, lifecycle.ActionWriteOffPipes); err != nil {
		return entities.Contract{}, err
	}
	prompt := fmt.Sprintf("Write off pipes for contract %s? The contract will be completed.", current.ContractNumber)
	if err := u.fb.confirm(ctx, prompt); err != nil {
		return entities.Contract{}, err
	}
	var done entities.Contract
	err := u.fb.track("Writing off pipes for "+current.ContractNumber, "Pipes written off, contract "+current.ContractNumber+" completed", func() error {
		var err error
		done, err = u.contracts.WriteOffPipes(ctx, current.ID)
		return err
	})
	if err != nil {
		return entities.Contract{}, err
	}
	u.log.WithField("contract_id", current.ID).Info("pipes written off")
	return done, nil
}

func (u *ContractUseCase) WriteOffAll(ctx context.Context, noHistory bool) (entities.PipeWriteOffSummary, error) {
	prompt := "Write off pipes for every contract with recorded usage?"
	if noHistory {
		prompt = "Write off pipes for every contract without recording stock movements?"
	}
	if err := u.fb.confirm(ctx, prompt); err != nil {
		return entities.PipeWriteOffSummary{}, err
	}
	var sum entities.PipeWriteOffSummary
	err := u.fb.track("Writing off pipes", "Pipe write-off finished", func() error {
		var err error
		sum, err = u.contracts.WriteOffAllPipes(ctx, noHistory)
		return err
	})
	if err != nil {
		return entities.PipeWriteOffSummary{}, err
	}
	u.log.WithFields(log.Fields{"contracts": sum.ContractsProcessed, "movements": sum.Movements}).Info("bulk pipe write-off")
	return sum, nil
}

// Reopen moves a completed contract back to work. Pipes already written off
// stay written off.
func (u *ContractUseCase) Reopen(ctx context.Context, current entities.Contract) (entities.Contract, error) {
	if err := contractAllowed(current, lifecycle.ActionReopen); err != nil {
		return entities.Contract{}, err
	}
	prompt := fmt.Sprintf("Reopen contract %s? %s", current.ContractNumber, lifecycle.Contract(current.Status).ReopenWarning)
	if err := u.fb.confirm(ctx, prompt); err != nil {
		return entities.Contract{}, err
	}
	to, _ := lifecycle.ContractTarget(current.Status, lifecycle.ActionReopen)
	var reopened entities.Contract
	err := u.fb.track("Reopening contract "+current.ContractNumber, "Contract "+current.ContractNumber+" is in progress again", func() error {
		var err error
		reopened, err = u.contracts.Update(ctx, current.ID, request.ContractUpdateRequest{Status: &to})
		return err
	})
	return reopened, err
}

func (u *ContractUseCase) GenerateDocument(ctx context.Context, current entities.Contract) (interfaces.Document, error) {
	if err := contractAllowed(current, lifecycle.ActionGenerateDocument); err != nil {
		return interfaces.Document{}, err
	}
	var doc interfaces.Document
	err := u.fb.track("Generating contract "+current.ContractNumber, "Contract document ready", func() error {
		var err error
		doc, err = u.contracts.GenerateDocument(ctx, current.ID)
		return err
	})
	return doc, err
}

func (u *ContractUseCase) CalculateRevenue(ctx context.Context, current entities.Contract, req request.RevenueRequest) (entities.Revenue, error) {
	if err := contractAllowed(current, lifecycle.ActionCalculateRevenue); err != nil {
		return entities.Revenue{}, err
	}
	if err := validate(req); err != nil {
		return entities.Revenue{}, err
	}
	return u.contracts.CalculateRevenue(ctx, current.ID, req)
}

func contractAllowed(c entities.Contract, action lifecycle.Action) error {
	if err := validID(c.ID); err != nil {
		return err
	}
	if !lifecycle.ContractAllows(c.Status, action) {
		return errors.Wrapf(ErrActionNotAllowed, "%s on %s contract", action, c.Status.Label())
	}
	return nil
}
