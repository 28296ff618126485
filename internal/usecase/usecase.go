// Package usecase holds the operator-facing operations of the console.
//
// Every mutating operation checks the lifecycle table first, asks for
// confirmation when the action is destructive, reports pending/success/
// failure through the notifier and returns the server representation of
// the document.
package usecase

import (
	"context"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/infrastructure/logging"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidID              = errors.New("invalid id")
	ErrEmptyItems             = errors.New("add at least one item first")
	ErrWorkerRequired         = errors.New("select a worker first")
	ErrActionNotAllowed       = errors.New("action not allowed in the current status")
	ErrReversalNotCancellable = errors.New("a reversal cannot be cancelled")
	ErrInvalidQuantity        = errors.New("quantity must be greater than zero")
	ErrInvalidPrice           = errors.New("price must not be negative")
	ErrCancelled              = errors.New("cancelled by operator")
	ErrEmptyMessage           = errors.New("message is empty")
	ErrNotSignedIn            = errors.New("not signed in, run `sklad login`")
	ErrNoRecipients           = errors.New("no recipients")
)

// Feedback is how use cases talk to the operator. Nil members are allowed:
// a nil notifier is silent and a nil confirmer declines every prompt.
type Feedback struct {
	Notifier  interfaces.INotifier
	Confirmer interfaces.IConfirmer
	Logger    log.FieldLogger
}

type silentNotifier struct{}

func (silentNotifier) Pending(string) {}
func (silentNotifier) Success(string) {}
func (silentNotifier) Failure(string) {}

func (f Feedback) notifier() interfaces.INotifier {
	if f.Notifier == nil {
		return silentNotifier{}
	}
	return f.Notifier
}

func (f Feedback) logger(scope string) log.FieldLogger {
	return logging.Scoped(f.Logger, scope)
}

// confirm returns ErrCancelled unless the operator agrees.
func (f Feedback) confirm(ctx context.Context, prompt string) error {
	if f.Confirmer == nil {
		return ErrCancelled
	}
	ok, err := f.Confirmer.Confirm(ctx, prompt)
	if err != nil {
		return errors.Wrap(err, "confirmation")
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}

// track wraps one backend mutation with pending/success/failure
// notifications. Cancellation by the operator is not reported as a failure.
func (f Feedback) track(pending, success string, fn func() error) error {
	n := f.notifier()
	n.Pending(pending)
	if err := fn(); err != nil {
		if !errors.Is(err, ErrCancelled) {
			n.Failure(err.Error())
		}
		return err
	}
	n.Success(success)
	return nil
}

func validID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return nil
}

func validate(payload any) error {
	return request.Validate(payload)
}
