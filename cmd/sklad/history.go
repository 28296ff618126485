package main

import (
	"context"
	"strconv"

	"sklad/internal/domain/entities"
	"sklad/internal/viewstate"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var movementAliases = map[string]entities.MovementType{
	"income":     entities.MovementIncome,
	"issue":      entities.MovementIssueToWorker,
	"return":     entities.MovementReturnFromWorker,
	"estimate":   entities.MovementWriteOffEstimate,
	"contract":   entities.MovementWriteOffContract,
	"adjustment": entities.MovementAdjustment,
	"write-off":  entities.MovementWriteOffWorker,
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:    "history",
		Aliases: []string{"h"},
		Usage:   "stock movements",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list movements, newest first",
				Flags: append([]cli.Flag{
					&cli.Int64Flag{Name: "worker", Usage: "worker id"},
					&cli.StringFlag{Name: "type", Usage: "income, issue, return, estimate, contract, adjustment or write-off"},
					&cli.StringFlag{Name: "from", Usage: "first day, YYYY-MM-DD"},
					&cli.StringFlag{Name: "to", Usage: "last day, YYYY-MM-DD"},
				}, listFlags...),
				Action: protected(func(c *cli.Context, e *env) error {
					q, err := historyQuery(c, e)
					if err != nil {
						return err
					}
					list := viewstate.NewList[entities.Movement](e.con)
					if err := list.Reload(c.Context, func(ctx context.Context) (entities.Page[entities.Movement], error) {
						return e.movements.History(ctx, q.ListQuery())
					}); err != nil {
						return err
					}
					items := list.Items()
					rows := make([][]string, 0, len(items))
					for _, mv := range items {
						after := "—"
						if mv.StockAfter != nil {
							after = e.fmt.Number(*mv.StockAfter)
						}
						rows = append(rows, []string{
							strconv.FormatInt(mv.ID, 10),
							e.fmt.DateTime(mv.Timestamp.Time),
							string(mv.Type),
							mv.Product.Name,
							e.fmt.Number(mv.Quantity),
							after,
							mv.WorkerName(),
						})
					}
					printTable(c.App.Writer, "No movements for these filters.",
						[]string{"ID", "When", "Type", "Product", "Qty", "Stock after", "Worker"}, rows)
					printFooter(c.App.Writer, q, list.Total())
					return nil
				}),
			},
			{
				Name:      "cancel",
				Usage:     "record a reversal of a movement",
				ArgsUsage: "ID",
				Action: protected(func(c *cli.Context, e *env) error {
					id, err := argID(c, 0)
					if err != nil {
						return err
					}
					mv, err := findMovement(c.Context, e, id)
					if err != nil {
						return err
					}
					msg, err := e.movements.Cancel(c.Context, mv)
					if err != nil {
						return err
					}
					if msg != "" {
						e.con.Success(msg)
					}
					return nil
				}),
			},
		},
	}
}

func historyQuery(c *cli.Context, e *env) (*viewstate.Query, error) {
	q := listQuery(c, e)
	if id := c.Int64("worker"); id > 0 {
		q.SetFilter(entities.FilterWorkerID, strconv.FormatInt(id, 10))
	}
	if raw := c.String("type"); raw != "" {
		t, ok := movementAliases[raw]
		if !ok {
			t = entities.MovementType(raw)
		}
		q.SetFilter(entities.FilterMovementType, string(t))
	}
	q.SetFilter(entities.FilterStartDate, c.String("from"))
	q.SetFilter(entities.FilterEndDate, c.String("to"))
	q.SetPage(c.Int("page"), c.Int("page"))
	return q, nil
}

// findMovement pages through history looking for id; there is no
// single-movement endpoint.
func findMovement(ctx context.Context, e *env, id int64) (entities.Movement, error) {
	q := entities.ListQuery{Size: 500}
	for q.Page = 1; ; q.Page++ {
		page, err := e.movements.History(ctx, q)
		if err != nil {
			return entities.Movement{}, err
		}
		for _, mv := range page.Items {
			if mv.ID == id {
				return mv, nil
			}
		}
		if q.Page >= page.Pages(q.Size) {
			return entities.Movement{}, errors.Errorf("movement %d not found", id)
		}
	}
}
