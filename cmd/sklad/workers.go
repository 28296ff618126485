package main

import (
	"context"
	"strconv"
	"strings"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func workersCommand() *cli.Command {
	return &cli.Command{
		Name:    "workers",
		Aliases: []string{"w"},
		Usage:   "workers and the goods they hold",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: []cli.Flag{&cli.StringFlag{Name: "search", Aliases: []string{"s"}}},
				Action: protected(func(c *cli.Context, e *env) error {
					workers, err := e.workers.List(c.Context)
					if err != nil {
						return err
					}
					needle := strings.ToLower(c.String("search"))
					rows := make([][]string, 0, len(workers))
					for _, w := range workers {
						if needle != "" && !strings.Contains(strings.ToLower(w.Name), needle) {
							continue
						}
						rows = append(rows, []string{strconv.FormatInt(w.ID, 10), w.Name})
					}
					printTable(c.App.Writer, "No workers yet.", []string{"ID", "Name"}, rows)
					return nil
				}),
			},
			{
				Name:      "create",
				ArgsUsage: "NAME",
				Action: protected(func(c *cli.Context, e *env) error {
					w, err := e.workers.Create(c.Context, strings.Join(c.Args().Slice(), " "))
					if err != nil {
						return err
					}
					printFields(c.App.Writer, field{"ID", strconv.FormatInt(w.ID, 10)}, field{"Name", w.Name})
					return nil
				}),
			},
			{
				Name:      "rename",
				ArgsUsage: "ID NAME",
				Action: protected(func(c *cli.Context, e *env) error {
					id, err := argID(c, 0)
					if err != nil {
						return err
					}
					_, err = e.workers.Rename(c.Context, id, strings.Join(c.Args().Tail(), " "))
					return err
				}),
			},
			{
				Name:      "delete",
				ArgsUsage: "ID",
				Action: protected(func(c *cli.Context, e *env) error {
					w, err := workerArg(c, e, 0)
					if err != nil {
						return err
					}
					return e.workers.Delete(c.Context, w)
				}),
			},
			{
				Name:      "stock",
				Usage:     "goods a worker holds",
				ArgsUsage: "WORKER",
				Action: protected(func(c *cli.Context, e *env) error {
					w, err := workerArg(c, e, 0)
					if err != nil {
						return err
					}
					items, err := e.workerStock.Stock(c.Context, w.ID)
					if err != nil {
						return err
					}
					rows := make([][]string, 0, len(items))
					for _, it := range items {
						rows = append(rows, []string{
							strconv.FormatInt(it.ProductID, 10), it.ProductName,
							e.fmt.Quantity(it.QuantityOnHand, it.Unit),
						})
					}
					printTable(c.App.Writer, w.Name+" holds nothing.", []string{"Product", "Name", "On hand"}, rows)
					return nil
				}),
			},
			workerItemCommand("issue", "hand goods from the warehouse to a worker", func(ctx context.Context, e *env, req request.WorkerItemRequest) error {
				return e.workerStock.Issue(ctx, req)
			}),
			workerItemCommand("return", "take goods back from a worker", func(ctx context.Context, e *env, req request.WorkerItemRequest) error {
				return e.workerStock.Return(ctx, req)
			}),
			workerItemCommand("write-off", "write off goods a worker used up", func(ctx context.Context, e *env, req request.WorkerItemRequest) error {
				return e.workerStock.WriteOff(ctx, req)
			}),
			{
				Name:      "return-all",
				Usage:     "take back everything a worker holds",
				ArgsUsage: "WORKER",
				Action: protected(func(c *cli.Context, e *env) error {
					w, err := workerArg(c, e, 0)
					if err != nil {
						return err
					}
					n, err := e.workerStock.ReturnAll(c.Context, w)
					if n == 0 && err == nil {
						e.con.Success(w.Name + " holds nothing")
					}
					return err
				}),
			},
		},
	}
}

func workerItemCommand(name, usage string, fn func(ctx context.Context, e *env, req request.WorkerItemRequest) error) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "WORKER PRODUCT QUANTITY",
		Action: protected(func(c *cli.Context, e *env) error {
			workerID, err := argID(c, 0)
			if err != nil {
				return err
			}
			productID, err := argID(c, 1)
			if err != nil {
				return err
			}
			qty, err := argNumber(c, 2)
			if err != nil {
				return err
			}
			return fn(c.Context, e, request.WorkerItemRequest{ProductID: productID, WorkerID: workerID, Quantity: qty})
		}),
	}
}

// workerArg resolves the worker id at argument n. The backend lists
// workers without paging, so the whole list is searched.
func workerArg(c *cli.Context, e *env, n int) (entities.Worker, error) {
	id, err := argID(c, n)
	if err != nil {
		return entities.Worker{}, err
	}
	workers, err := e.workers.List(c.Context)
	if err != nil {
		return entities.Worker{}, err
	}
	for _, w := range workers {
		if w.ID == id {
			return w, nil
		}
	}
	return entities.Worker{}, errors.Errorf("worker %d not found", id)
}
