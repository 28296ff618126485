package usecase

import (
	"context"
	"fmt"
	"strconv"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/domain/lifecycle"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrEstimateNotFound = errors.New("estimate not found")

type IEstimateUseCase interface {
	List(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Estimate], error)
	Get(ctx context.Context, id int64) (entities.Estimate, error)
	Open(ctx context.Context, id int64) (entities.Estimate, []entities.Worker, error)
	Create(ctx context.Context, req request.EstimateCreateRequest) (entities.Estimate, error)
	Save(ctx context.Context, current entities.Estimate, req request.EstimateUpdateRequest) (entities.Estimate, error)
	Delete(ctx context.Context, current entities.Estimate) error
	Ship(ctx context.Context, current entities.Estimate, workerID int64) (entities.Estimate, error)
	AssignWorker(ctx context.Context, current entities.Estimate, workerID int64) (entities.Estimate, error)
	IssueAdditional(ctx context.Context, current entities.Estimate, items []request.EstimateItemRequest) (entities.Estimate, error)
	UpdateItemPrice(ctx context.Context, current entities.Estimate, itemID int64, price float64) (entities.Estimate, error)
	Complete(ctx context.Context, current entities.Estimate) (entities.Estimate, error)
	Cancel(ctx context.Context, current entities.Estimate) (entities.Estimate, error)
	CancelCompletion(ctx context.Context, current entities.Estimate) (entities.Estimate, error)
	Reopen(ctx context.Context, current entities.Estimate, workerID int64) (entities.Estimate, error)
	Print(ctx context.Context, id int64) (interfaces.Document, error)
}

type EstimateUseCase struct {
	estimates interfaces.IEstimateGateway
	workers   interfaces.IWorkerGateway
	printer   interfaces.IEstimatePrinter
	publicURL string
	fb        Feedback
	log       log.FieldLogger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(estimates interfaces.IEstimateGateway, workers interfaces.IWorkerGateway, fb Feedback) *EstimateUseCase {
	return &EstimateUseCase{estimates: estimates, workers: workers, fb: fb, log: fb.logger("estimates")}
}

// WithPrinter enables Print. publicURL is the web address estimates are
// reachable at; it ends up in the QR code.
func (u *EstimateUseCase) WithPrinter(p interfaces.IEstimatePrinter, publicURL string) *EstimateUseCase {
	u.printer = p
	u.publicURL = publicURL
	return u
}

func (u *EstimateUseCase) List(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Estimate], error) {
	return u.estimates.List(ctx, q)
}

func (u *EstimateUseCase) Get(ctx context.Context, id int64) (entities.Estimate, error) {
	if err := validID(id); err != nil {
		return entities.Estimate{}, err
	}
	e, err := u.estimates.Get(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == 0 {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// Open loads an estimate together with the worker list the editor needs
// for shipping.
func (u *EstimateUseCase) Open(ctx context.Context, id int64) (entities.Estimate, []entities.Worker, error) {
	var (
		e       entities.Estimate
		workers []entities.Worker
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		e, err = u.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		workers, err = u.workers.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.Estimate{}, nil, err
	}
	return e, workers, nil
}

func (u *EstimateUseCase) Create(ctx context.Context, req request.EstimateCreateRequest) (entities.Estimate, error) {
	if len(req.Items) == 0 {
		return entities.Estimate{}, ErrEmptyItems
	}
	if err := validate(req); err != nil {
		return entities.Estimate{}, err
	}
	var created entities.Estimate
	err := u.fb.track("Saving estimate "+req.EstimateNumber, "Estimate "+req.EstimateNumber+" saved", func() error {
		var err error
		created, err = u.estimates.Create(ctx, req)
		return err
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	u.log.WithField("estimate_id", created.ID).Info("estimate created")
	return created, nil
}

// Save applies a partial update and re-reads the estimate so the caller
// renders what the backend stored.
func (u *EstimateUseCase) Save(ctx context.Context, current entities.Estimate, req request.EstimateUpdateRequest) (entities.Estimate, error) {
	if err := allowed(current, lifecycle.ActionSave); err != nil {
		return entities.Estimate{}, err
	}
	// A save that leaves items untouched keeps the current ones, which must
	// not be none either.
	if (req.Items != nil && len(*req.Items) == 0) || (req.Items == nil && len(current.Items) == 0) {
		return entities.Estimate{}, ErrEmptyItems
	}
	if err := validate(req); err != nil {
		return entities.Estimate{}, err
	}
	err := u.fb.track("Saving estimate "+current.EstimateNumber, "Estimate "+current.EstimateNumber+" saved", func() error {
		_, err := u.estimates.Update(ctx, current.ID, req)
		return err
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.Get(ctx, current.ID)
}

func (u *EstimateUseCase) Delete(ctx context.Context, current entities.Estimate) error {
	if err := allowed(current, lifecycle.ActionDelete); err != nil {
		return err
	}
	if err := u.fb.confirm(ctx, fmt.Sprintf("Delete estimate %s?", current.EstimateNumber)); err != nil {
		return err
	}
	return u.fb.track("Deleting estimate "+current.EstimateNumber, "Estimate "+current.EstimateNumber+" deleted", func() error {
		return u.estimates.Delete(ctx, current.ID)
	})
}

func (u *EstimateUseCase) Ship(ctx context.Context, current entities.Estimate, workerID int64) (entities.Estimate, error) {
	if err := allowed(current, lifecycle.ActionShip); err != nil {
		return entities.Estimate{}, err
	}
	if len(current.Items) == 0 {
		return entities.Estimate{}, ErrEmptyItems
	}
	if workerID <= 0 {
		return entities.Estimate{}, ErrWorkerRequired
	}
	return u.act(ctx, current, lifecycle.ActionShip, "Shipping", func() (string, error) {
		return u.estimates.Ship(ctx, current.ID, workerID)
	})
}

func (u *EstimateUseCase) AssignWorker(ctx context.Context, current entities.Estimate, workerID int64) (entities.Estimate, error) {
	if err := allowed(current, lifecycle.ActionAssignWorker); err != nil {
		return entities.Estimate{}, err
	}
	if workerID <= 0 {
		return entities.Estimate{}, ErrWorkerRequired
	}
	return u.act(ctx, current, lifecycle.ActionAssignWorker, "Assigning worker to", func() (string, error) {
		return u.estimates.AssignWorker(ctx, current.ID, workerID)
	})
}

func (u *EstimateUseCase) IssueAdditional(ctx context.Context, current entities.Estimate, items []request.EstimateItemRequest) (entities.Estimate, error) {
	if err := allowed(current, lifecycle.ActionIssueAdditional); err != nil {
		return entities.Estimate{}, err
	}
	req := request.AddItemsRequest{Items: items}
	if len(items) == 0 {
		return entities.Estimate{}, ErrEmptyItems
	}
	if err := validate(req); err != nil {
		return entities.Estimate{}, err
	}
	return u.act(ctx, current, lifecycle.ActionIssueAdditional, "Issuing additional items for", func() (string, error) {
		return u.estimates.IssueAdditional(ctx, current.ID, req)
	})
}

func (u *EstimateUseCase) UpdateItemPrice(ctx context.Context, current entities.Estimate, itemID int64, price float64) (entities.Estimate, error) {
	if err := allowed(current, lifecycle.ActionUpdateItemPrice); err != nil {
		return entities.Estimate{}, err
	}
	if price < 0 {
		return entities.Estimate{}, ErrInvalidPrice
	}
	if err := validID(itemID); err != nil {
		return entities.Estimate{}, err
	}
	return u.act(ctx, current, lifecycle.ActionUpdateItemPrice, "Updating price in", func() (string, error) {
		_, err := u.estimates.UpdateItemPrice(ctx, current.ID, itemID, price)
		return "", err
	})
}

func (u *EstimateUseCase) Complete(ctx context.Context, current entities.Estimate) (entities.Estimate, error) {
	return u.destructive(ctx, current, lifecycle.ActionComplete,
		"Complete estimate %s? Shipped goods will be written off.", "Completing",
		func() (string, error) { return u.estimates.Complete(ctx, current.ID) })
}

func (u *EstimateUseCase) Cancel(ctx context.Context, current entities.Estimate) (entities.Estimate, error) {
	return u.destructive(ctx, current, lifecycle.ActionCancel,
		"Cancel estimate %s? Goods held by the worker return to the warehouse.", "Cancelling",
		func() (string, error) { return u.estimates.Cancel(ctx, current.ID) })
}

func (u *EstimateUseCase) CancelCompletion(ctx context.Context, current entities.Estimate) (entities.Estimate, error) {
	return u.destructive(ctx, current, lifecycle.ActionCancelCompletion,
		"Undo completion of estimate %s? Written-off goods go back to the worker.", "Reverting completion of",
		func() (string, error) { return u.estimates.CancelCompletion(ctx, current.ID) })
}

func (u *EstimateUseCase) Reopen(ctx context.Context, current entities.Estimate, workerID int64) (entities.Estimate, error) {
	if workerID <= 0 {
		if err := allowed(current, lifecycle.ActionReopen); err != nil {
			return entities.Estimate{}, err
		}
		return entities.Estimate{}, ErrWorkerRequired
	}
	return u.destructive(ctx, current, lifecycle.ActionReopen,
		"Reopen estimate %s? Goods will be issued to the selected worker again.", "Reopening",
		func() (string, error) { return u.estimates.Reopen(ctx, current.ID, workerID) })
}

// Print renders the estimate as a PDF with a QR code pointing at its page.
func (u *EstimateUseCase) Print(ctx context.Context, id int64) (interfaces.Document, error) {
	if u.printer == nil {
		return interfaces.Document{}, errors.New("printing is not configured")
	}
	e, err := u.Get(ctx, id)
	if err != nil {
		return interfaces.Document{}, err
	}
	link := u.publicURL + "/estimates/" + strconv.FormatInt(e.ID, 10)
	data, err := u.printer.EstimatePDF(e, link)
	if err != nil {
		return interfaces.Document{}, errors.Wrap(err, "render estimate")
	}
	return interfaces.Document{Name: "estimate_" + e.EstimateNumber + ".pdf", ContentType: "application/pdf", Data: data}, nil
}

func (u *EstimateUseCase) destructive(ctx context.Context, current entities.Estimate, action lifecycle.Action, prompt, verb string, call func() (string, error)) (entities.Estimate, error) {
	if err := allowed(current, action); err != nil {
		return entities.Estimate{}, err
	}
	if err := u.fb.confirm(ctx, fmt.Sprintf(prompt, current.EstimateNumber)); err != nil {
		return entities.Estimate{}, err
	}
	return u.act(ctx, current, action, verb, call)
}

// act sends a lifecycle action and re-reads the estimate, since the action
// endpoints only acknowledge.
func (u *EstimateUseCase) act(ctx context.Context, current entities.Estimate, action lifecycle.Action, verb string, call func() (string, error)) (entities.Estimate, error) {
	var ack string
	err := u.fb.track(verb+" estimate "+current.EstimateNumber, "Estimate "+current.EstimateNumber+" updated", func() error {
		var err error
		ack, err = call()
		return err
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	u.log.WithFields(log.Fields{"estimate_id": current.ID, "action": action, "ack": ack}).Info("estimate action done")
	return u.Get(ctx, current.ID)
}

func allowed(e entities.Estimate, action lifecycle.Action) error {
	if err := validID(e.ID); err != nil {
		return err
	}
	if !lifecycle.EstimateAllows(e.Status, action) {
		return errors.Wrapf(ErrActionNotAllowed, "%s on %s estimate", action, e.Status.Label())
	}
	return nil
}
