package usecase

import (
	"context"
	"fmt"

	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

type IMovementUseCase interface {
	History(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Movement], error)
	Cancel(ctx context.Context, m entities.Movement) (string, error)
}

type MovementUseCase struct {
	movements interfaces.IMovementGateway
	fb        Feedback
	log       log.FieldLogger
}

var _ IMovementUseCase = (*MovementUseCase)(nil)

func NewMovementUseCase(movements interfaces.IMovementGateway, fb Feedback) *MovementUseCase {
	return &MovementUseCase{movements: movements, fb: fb, log: fb.logger("movements")}
}

func (u *MovementUseCase) History(ctx context.Context, q entities.ListQuery) (entities.Page[entities.Movement], error) {
	return u.movements.History(ctx, q)
}

// Cancel records a reversal of m. Reversals themselves are final.
func (u *MovementUseCase) Cancel(ctx context.Context, m entities.Movement) (string, error) {
	if err := validID(m.ID); err != nil {
		return "", err
	}
	if !m.Cancellable() {
		return "", ErrReversalNotCancellable
	}
	prompt := fmt.Sprintf("Cancel movement #%d (%s, %s × %g)?", m.ID, m.Type, m.Product.Name, m.Quantity)
	if err := u.fb.confirm(ctx, prompt); err != nil {
		return "", err
	}
	var msg string
	err := u.fb.track(fmt.Sprintf("Cancelling movement #%d", m.ID), fmt.Sprintf("Movement #%d cancelled", m.ID), func() error {
		var err error
		msg, err = u.movements.Cancel(ctx, m.ID)
		return err
	})
	if err != nil {
		return "", err
	}
	u.log.WithFields(log.Fields{"movement_id": m.ID, "type": m.Type}).Info("movement reversed")
	return msg, nil
}
