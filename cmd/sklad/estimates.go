package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/domain/lifecycle"
	"sklad/internal/viewstate"

	"github.com/urfave/cli/v2"
)

var itemFlag = &cli.StringSliceFlag{Name: "item", Aliases: []string{"i"}, Usage: "PRODUCT:QTY[:PRICE], repeatable"}

var workerFlag = &cli.Int64Flag{Name: "worker", Aliases: []string{"w"}, Usage: "worker id", Required: true}

func estimatesCommand() *cli.Command {
	headerFlags := []cli.Flag{
		&cli.StringFlag{Name: "number", Aliases: []string{"n"}},
		&cli.StringFlag{Name: "client", Aliases: []string{"c"}},
		&cli.StringFlag{Name: "location", Aliases: []string{"l"}},
		itemFlag,
	}
	return &cli.Command{
		Name:    "estimates",
		Aliases: []string{"e"},
		Usage:   "estimates and their lifecycle",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: listFlags,
				Action: protected(func(c *cli.Context, e *env) error {
					q := listQuery(c, e)
					list := viewstate.NewList[entities.Estimate](e.con)
					if err := list.Reload(c.Context, func(ctx context.Context) (entities.Page[entities.Estimate], error) {
						return e.estimates.List(ctx, q.ListQuery())
					}); err != nil {
						return err
					}
					items := list.Items()
					rows := make([][]string, 0, len(items))
					for _, est := range items {
						rows = append(rows, []string{
							strconv.FormatInt(est.ID, 10), est.EstimateNumber, est.ClientName,
							est.LocationOrEmpty(), est.Status.Label(),
							e.fmt.Date(est.CreatedAt.Time), e.fmt.Money(est.TotalSum),
						})
					}
					printTable(c.App.Writer, "No estimates yet.",
						[]string{"ID", "Number", "Client", "Location", "Status", "Created", "Total"}, rows)
					printFooter(c.App.Writer, q, list.Total())
					return nil
				}),
			},
			{
				Name:      "show",
				ArgsUsage: "ID",
				Action: protected(func(c *cli.Context, e *env) error {
					id, err := argID(c, 0)
					if err != nil {
						return err
					}
					est, workers, err := e.estimates.Open(c.Context, id)
					if err != nil {
						return err
					}
					printEstimate(c.App.Writer, e, est, workers)
					return nil
				}),
			},
			{
				Name:  "create",
				Usage: "create a draft, optionally shipping it at once",
				Flags: append(headerFlags[:len(headerFlags):len(headerFlags)],
					&cli.Int64Flag{Name: "ship", Usage: "ship to this worker right after saving"}),
				Action: protected(func(c *cli.Context, e *env) error {
					items, err := parseItems(c.StringSlice("item"))
					if err != nil {
						return err
					}
					est, err := e.estimates.Create(c.Context, request.EstimateCreateRequest{
						EstimateNumber: c.String("number"),
						ClientName:     c.String("client"),
						Location:       optString(c, "location"),
						Items:          items,
					})
					if err != nil {
						return err
					}
					if worker := c.Int64("ship"); worker > 0 {
						if est, err = e.estimates.Ship(c.Context, est, worker); err != nil {
							return err
						}
					}
					printEstimate(c.App.Writer, e, est, nil)
					return nil
				}),
			},
			{
				Name:      "edit",
				Usage:     "change the header or replace the items of a draft",
				ArgsUsage: "ID",
				Flags:     headerFlags,
				Action: estimateAction(func(c *cli.Context, e *env, est entities.Estimate) (entities.Estimate, error) {
					draft := viewstate.DraftFromEstimate(est)
					req := request.EstimateUpdateRequest{
						EstimateNumber: optString(c, "number"),
						ClientName:     optString(c, "client"),
						Location:       optString(c, "location"),
					}
					if (req.EstimateNumber != nil || req.ClientName != nil || req.Location != nil) && !draft.HeaderEditable() {
						return entities.Estimate{}, viewstate.ErrNotEditable
					}
					if c.IsSet("item") {
						if !draft.ItemsEditable() {
							return entities.Estimate{}, viewstate.ErrNotEditable
						}
						items, err := parseItems(c.StringSlice("item"))
						if err != nil {
							return entities.Estimate{}, err
						}
						req.Items = &items
					}
					return e.estimates.Save(c.Context, est, req)
				}),
			},
			{
				Name:      "delete",
				ArgsUsage: "ID",
				Action: protected(func(c *cli.Context, e *env) error {
					est, err := estimateArg(c, e)
					if err != nil {
						return err
					}
					return e.estimates.Delete(c.Context, est)
				}),
			},
			{
				Name:      "ship",
				Usage:     "issue the goods to a worker",
				ArgsUsage: "ID",
				Flags:     []cli.Flag{workerFlag},
				Action: estimateAction(func(c *cli.Context, e *env, est entities.Estimate) (entities.Estimate, error) {
					return e.estimates.Ship(c.Context, est, c.Int64("worker"))
				}),
			},
			{
				Name:      "assign",
				Usage:     "set the worker without shipping",
				ArgsUsage: "ID",
				Flags:     []cli.Flag{workerFlag},
				Action: estimateAction(func(c *cli.Context, e *env, est entities.Estimate) (entities.Estimate, error) {
					return e.estimates.AssignWorker(c.Context, est, c.Int64("worker"))
				}),
			},
			{
				Name:      "add",
				Usage:     "issue more goods for an estimate in progress",
				ArgsUsage: "ID",
				Flags:     []cli.Flag{itemFlag},
				Action: estimateAction(func(c *cli.Context, e *env, est entities.Estimate) (entities.Estimate, error) {
					items, err := parseItems(c.StringSlice("item"))
					if err != nil {
						return entities.Estimate{}, err
					}
					return e.estimates.IssueAdditional(c.Context, est, items)
				}),
			},
			{
				Name:      "price",
				Usage:     "change the price of one line",
				ArgsUsage: "ID PRODUCT PRICE",
				Action: estimateAction(func(c *cli.Context, e *env, est entities.Estimate) (entities.Estimate, error) {
					productID, err := argID(c, 1)
					if err != nil {
						return entities.Estimate{}, err
					}
					price, err := argNumber(c, 2)
					if err != nil {
						return entities.Estimate{}, err
					}
					for _, it := range est.Items {
						if it.ProductID == productID {
							return e.estimates.UpdateItemPrice(c.Context, est, it.ID, price)
						}
					}
					return entities.Estimate{}, viewstate.ErrUnknownLine
				}),
			},
			{
				Name:      "complete",
				ArgsUsage: "ID",
				Action: estimateAction(func(c *cli.Context, e *env, est entities.Estimate) (entities.Estimate, error) {
					return e.estimates.Complete(c.Context, est)
				}),
			},
			{
				Name:      "cancel",
				ArgsUsage: "ID",
				Action: estimateAction(func(c *cli.Context, e *env, est entities.Estimate) (entities.Estimate, error) {
					return e.estimates.Cancel(c.Context, est)
				}),
			},
			{
				Name:      "cancel-completion",
				ArgsUsage: "ID",
				Action: estimateAction(func(c *cli.Context, e *env, est entities.Estimate) (entities.Estimate, error) {
					return e.estimates.CancelCompletion(c.Context, est)
				}),
			},
			{
				Name:      "reopen",
				ArgsUsage: "ID",
				Flags:     []cli.Flag{workerFlag},
				Action: estimateAction(func(c *cli.Context, e *env, est entities.Estimate) (entities.Estimate, error) {
					return e.estimates.Reopen(c.Context, est, c.Int64("worker"))
				}),
			},
			{
				Name:      "print",
				Usage:     "save the estimate as PDF",
				ArgsUsage: "ID",
				Flags:     []cli.Flag{outputFlag},
				Action: protected(func(c *cli.Context, e *env) error {
					id, err := argID(c, 0)
					if err != nil {
						return err
					}
					doc, err := e.estimates.Print(c.Context, id)
					if err != nil {
						return err
					}
					path, err := saveDocument(c, doc)
					if err != nil {
						return err
					}
					e.con.Success("Saved " + path)
					return nil
				}),
			},
		},
	}
}

func estimateArg(c *cli.Context, e *env) (entities.Estimate, error) {
	id, err := argID(c, 0)
	if err != nil {
		return entities.Estimate{}, err
	}
	return e.estimates.Get(c.Context, id)
}

// estimateAction loads the estimate named by the first argument, runs fn
// on it and prints the result.
func estimateAction(fn func(c *cli.Context, e *env, est entities.Estimate) (entities.Estimate, error)) cli.ActionFunc {
	return protected(func(c *cli.Context, e *env) error {
		est, err := estimateArg(c, e)
		if err != nil {
			return err
		}
		updated, err := fn(c, e, est)
		if err != nil {
			return err
		}
		printEstimate(c.App.Writer, e, updated, nil)
		return nil
	})
}

func printEstimate(w io.Writer, e *env, est entities.Estimate, workers []entities.Worker) {
	draft := viewstate.DraftFromEstimate(est)
	worker := ""
	if est.HasWorker() {
		worker = "#" + strconv.FormatInt(*est.WorkerID, 10)
		for _, wk := range workers {
			if wk.ID == *est.WorkerID {
				worker = wk.Name
			}
		}
	}
	shipped := ""
	if est.ShippedAt != nil {
		shipped = e.fmt.DateTime(est.ShippedAt.Time)
	}
	printFields(w,
		field{"Estimate", est.EstimateNumber},
		field{"Client", est.ClientName},
		field{"Location", est.LocationOrEmpty()},
		field{"Status", est.Status.Label()},
		field{"Worker", worker},
		field{"Shipped", shipped},
	)
	lines := draft.Lines()
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		qty, _ := l.Quantity.Float64()
		price, _ := l.UnitPrice.Float64()
		total, _ := l.Total().Float64()
		rows = append(rows, []string{
			strconv.FormatInt(l.ProductID, 10), l.Name,
			e.fmt.Quantity(qty, l.Unit), e.fmt.Money(price), e.fmt.Money(total),
		})
	}
	printTable(w, "No items.", []string{"Product", "Name", "Qty", "Price", "Sum"}, rows)
	total, _ := draft.Total().Float64()
	printFields(w, field{"Total", e.fmt.Money(total)})

	actions := make([]string, 0, len(draft.Rules().Actions))
	for _, a := range draft.Rules().Actions {
		name := string(a)
		if a.Destructive() {
			name += "!"
		}
		actions = append(actions, name)
	}
	if len(actions) > 0 {
		fmt.Fprintln(w, pendingStyle.Render("actions: "+strings.Join(actions, ", ")))
	}
	if draft.PriceEditable() && !draft.QuantityEditable() && lifecycle.EstimateAllows(est.Status, lifecycle.ActionUpdateItemPrice) {
		fmt.Fprintln(w, pendingStyle.Render("quantities are locked; prices can still change"))
	}
}
