package usecase

import (
	"context"
	"fmt"
	"strings"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrEmptyName = errors.New("name is required")

type IWorkerUseCase interface {
	List(ctx context.Context) ([]entities.Worker, error)
	Create(ctx context.Context, name string) (entities.Worker, error)
	Rename(ctx context.Context, id int64, name string) (entities.Worker, error)
	Delete(ctx context.Context, w entities.Worker) error
}

type WorkerUseCase struct {
	workers interfaces.IWorkerGateway
	fb      Feedback
	log     log.FieldLogger
}

var _ IWorkerUseCase = (*WorkerUseCase)(nil)

func NewWorkerUseCase(workers interfaces.IWorkerGateway, fb Feedback) *WorkerUseCase {
	return &WorkerUseCase{workers: workers, fb: fb, log: fb.logger("workers")}
}

func (u *WorkerUseCase) List(ctx context.Context) ([]entities.Worker, error) {
	return u.workers.List(ctx)
}

func (u *WorkerUseCase) Create(ctx context.Context, name string) (entities.Worker, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Worker{}, ErrEmptyName
	}
	var w entities.Worker
	err := u.fb.track("Adding worker "+name, "Worker "+name+" added", func() error {
		var err error
		w, err = u.workers.Create(ctx, request.WorkerRequest{Name: name})
		return err
	})
	return w, err
}

func (u *WorkerUseCase) Rename(ctx context.Context, id int64, name string) (entities.Worker, error) {
	if err := validID(id); err != nil {
		return entities.Worker{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Worker{}, ErrEmptyName
	}
	var w entities.Worker
	err := u.fb.track("Renaming worker", "Worker renamed to "+name, func() error {
		var err error
		w, err = u.workers.Rename(ctx, id, request.WorkerRequest{Name: name})
		return err
	})
	return w, err
}

func (u *WorkerUseCase) Delete(ctx context.Context, w entities.Worker) error {
	if err := validID(w.ID); err != nil {
		return err
	}
	if err := u.fb.confirm(ctx, fmt.Sprintf("Delete worker %s?", w.Name)); err != nil {
		return err
	}
	return u.fb.track("Deleting worker "+w.Name, "Worker "+w.Name+" deleted", func() error {
		return u.workers.Delete(ctx, w.ID)
	})
}
