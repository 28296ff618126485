package main

import (
	"fmt"
	"io"
	"strconv"

	"sklad/internal/domain/entities"

	"github.com/urfave/cli/v2"
)

func reportsCommand() *cli.Command {
	return &cli.Command{
		Name:    "reports",
		Aliases: []string{"r"},
		Usage:   "profit reports",
		Subcommands: []*cli.Command{
			{
				Name:  "dashboard",
				Usage: "counters and profit for the last 30 days with both reports",
				Flags: periodFlags,
				Action: protected(func(c *cli.Context, e *env) error {
					o, err := e.reports.Overview(c.Context, period(c))
					if err != nil {
						return err
					}
					w := c.App.Writer
					printFields(w,
						field{"To order", strconv.Itoa(o.Summary.ProductsToOrderCount)},
						field{"Estimates active", strconv.Itoa(o.Summary.EstimatesInProgressCount)},
						field{"Contracts active", strconv.Itoa(o.Summary.ContractsInProgressCount)},
						field{"Profit 30 days", e.fmt.Money(o.Summary.ProfitLast30Days)},
						field{"Drilling 30 days", e.fmt.Money(o.Summary.DrillingProfitLast30Days)},
					)
					fmt.Fprintln(w)
					printProfit(w, e, o.Profit)
					fmt.Fprintln(w)
					printDrilling(w, e, o.Drilling)
					return nil
				}),
			},
			{
				Name:  "profit",
				Usage: "profit per completed estimate",
				Flags: periodFlags,
				Action: protected(func(c *cli.Context, e *env) error {
					r, err := e.reports.Profit(c.Context, period(c))
					if err != nil {
						return err
					}
					printProfit(c.App.Writer, e, r)
					return nil
				}),
			},
			{
				Name:      "details",
				Usage:     "profit per line of one estimate",
				ArgsUsage: "ESTIMATE",
				Action: protected(func(c *cli.Context, e *env) error {
					id, err := argID(c, 0)
					if err != nil {
						return err
					}
					d, err := e.reports.ProfitDetails(c.Context, id)
					if err != nil {
						return err
					}
					money := func(v *float64) string {
						if v == nil {
							return "—"
						}
						return e.fmt.Money(*v)
					}
					rows := make([][]string, 0, len(d.Items))
					for _, it := range d.Items {
						unit := entities.Unit("")
						if it.Unit != nil {
							unit = entities.Unit(*it.Unit)
						}
						rows = append(rows, []string{
							it.ProductName, e.fmt.Quantity(it.Quantity, unit),
							e.fmt.Money(it.UnitPrice), money(it.PurchasePrice),
							money(it.TotalRetail), money(it.TotalPurchase), money(it.Difference),
						})
					}
					w := c.App.Writer
					printTable(w, "No lines.", []string{"Product", "Qty", "Price", "Purchase", "Retail sum", "Purchase sum", "Profit"}, rows)
					printFields(w,
						field{"Retail", e.fmt.Money(d.TotalRetail)},
						field{"Purchase", e.fmt.Money(d.TotalPurchase)},
						field{"Profit", e.fmt.Money(d.TotalProfit)},
					)
					return nil
				}),
			},
			{
				Name:  "drilling",
				Usage: "profit per completed drilling contract",
				Flags: periodFlags,
				Action: protected(func(c *cli.Context, e *env) error {
					r, err := e.reports.DrillingProfit(c.Context, period(c))
					if err != nil {
						return err
					}
					printDrilling(c.App.Writer, e, r)
					return nil
				}),
			},
			{
				Name:  "export",
				Usage: "save the profit report as .xlsx",
				Flags: append(periodFlags[:len(periodFlags):len(periodFlags)], outputFlag),
				Action: protected(func(c *cli.Context, e *env) error {
					doc, err := e.reports.ExportProfit(c.Context, period(c))
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
			{
				Name:  "mail",
				Usage: "send the profit report as .xlsx by email",
				Flags: append(periodFlags[:len(periodFlags):len(periodFlags)],
					&cli.StringSliceFlag{Name: "to", Usage: "recipient, repeatable", Required: true}),
				Action: protected(func(c *cli.Context, e *env) error {
					return e.reports.MailProfit(c.Context, period(c), c.StringSlice("to"))
				}),
			},
		},
	}
}

func printProfit(w io.Writer, e *env, r entities.ProfitReport) {
	rows := make([][]string, 0, len(r.Items))
	for _, it := range r.Items {
		rows = append(rows, []string{
			it.EstimateNumber, it.ClientName, it.CompletedAt,
			e.fmt.Money(it.TotalRetail), e.fmt.Money(it.TotalPurchase),
			e.fmt.Money(it.Profit), e.fmt.Percent(it.Margin),
		})
	}
	printTable(w, "No completed estimates in this period.",
		[]string{"Estimate", "Client", "Completed", "Retail", "Purchase", "Profit", "Margin"}, rows)
	printFields(w,
		field{"Retail", e.fmt.Money(r.GrandTotalRetail)},
		field{"Purchase", e.fmt.Money(r.GrandTotalPurchase)},
		field{"Profit", e.fmt.Money(r.GrandTotalProfit)},
		field{"Average margin", e.fmt.Percent(r.AverageMargin)},
	)
}

func printDrilling(w io.Writer, e *env, r entities.DrillingProfitReport) {
	rows := make([][]string, 0, len(r.Items))
	for _, it := range r.Items {
		rows = append(rows, []string{
			it.ContractNumber, it.ClientName, it.CompletedAt,
			e.fmt.Money(it.DrillingRetail), e.fmt.Money(it.PipeRetail),
			e.fmt.Money(it.DrillingPurchase + it.PipePurchase), e.fmt.Money(it.Profit),
		})
	}
	printTable(w, "No completed contracts in this period.",
		[]string{"Contract", "Client", "Completed", "Drilling", "Pipes", "Costs", "Profit"}, rows)
	printFields(w, field{"Profit", e.fmt.Money(r.GrandTotalProfit)})
}
