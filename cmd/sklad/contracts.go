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

var figureLabels = map[viewstate.Figure]string{
	viewstate.FigureEstimatedDepth: "Estimated depth",
	viewstate.FigurePriceSoil:      "Price/m soil",
	viewstate.FigurePriceRock:      "Price/m rock",
	viewstate.FigureDepthSoil:      "Drilled soil",
	viewstate.FigureDepthRock:      "Drilled rock",
	viewstate.FigurePipeSteel:      "Steel pipe used",
	viewstate.FigurePipePlastic:    "Plastic pipe used",
}

var passportFields = []string{
	"passport_series_number", "passport_issued_by", "passport_issue_date",
	"passport_dep_code", "passport_address",
}

func flagName(wire string) string {
	return strings.ReplaceAll(wire, "_", "-")
}

// contractFlags are the editable contract fields, one flag each.
func contractFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "number", Aliases: []string{"n"}},
		&cli.StringFlag{Name: "client", Aliases: []string{"c"}},
		&cli.StringFlag{Name: "location", Aliases: []string{"l"}},
		&cli.StringFlag{Name: "date", Usage: "contract date, YYYY-MM-DD"},
	}
	for _, p := range passportFields {
		flags = append(flags, &cli.StringFlag{Name: flagName(p)})
	}
	for _, f := range viewstate.Figures {
		flags = append(flags, &cli.Float64Flag{Name: flagName(string(f)), Usage: strings.ToLower(figureLabels[f])})
	}
	return flags
}

// applyFlags copies the flags the operator set onto the draft.
func applyFlags(c *cli.Context, d *viewstate.ContractDraft) error {
	if c.IsSet("number") {
		d.SetNumber(c.String("number"))
	}
	if c.IsSet("client") {
		d.SetClient(c.String("client"))
	}
	if c.IsSet("location") {
		d.SetLocation(c.String("location"))
	}
	if c.IsSet("date") {
		if err := d.SetDate(c.String("date")); err != nil {
			return err
		}
	}
	for _, p := range passportFields {
		if c.IsSet(flagName(p)) {
			d.SetPassport(p, c.String(flagName(p)))
		}
	}
	for _, f := range viewstate.Figures {
		if !c.IsSet(flagName(string(f))) {
			continue
		}
		v := c.Float64(flagName(string(f)))
		if err := d.SetFigure(f, &v); err != nil {
			return err
		}
	}
	return nil
}

func contractsCommand() *cli.Command {
	return &cli.Command{
		Name:    "contracts",
		Aliases: []string{"c"},
		Usage:   "drilling contracts",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: listFlags,
				Action: protected(func(c *cli.Context, e *env) error {
					q := listQuery(c, e)
					list := viewstate.NewList[entities.Contract](e.con)
					if err := list.Reload(c.Context, func(ctx context.Context) (entities.Page[entities.Contract], error) {
						return e.contracts.List(ctx, q.ListQuery())
					}); err != nil {
						return err
					}
					items := list.Items()
					rows := make([][]string, 0, len(items))
					for _, ct := range items {
						rows = append(rows, []string{
							strconv.FormatInt(ct.ID, 10), ct.ContractNumber,
							e.fmt.Date(ct.ContractDate.Time), ct.ClientName, ct.Location, ct.Status.Label(),
						})
					}
					printTable(c.App.Writer, "No contracts yet.",
						[]string{"ID", "Number", "Date", "Client", "Location", "Status"}, rows)
					printFooter(c.App.Writer, q, list.Total())
					return nil
				}),
			},
			{
				Name:      "show",
				ArgsUsage: "ID",
				Action: contractAction(func(c *cli.Context, e *env, ct entities.Contract) (entities.Contract, error) {
					return ct, nil
				}),
			},
			{
				Name:  "create",
				Flags: contractFlags(),
				Action: protected(func(c *cli.Context, e *env) error {
					d := viewstate.NewContractDraft()
					if err := applyFlags(c, d); err != nil {
						return err
					}
					ct, err := e.contracts.Create(c.Context, d.CreateRequest())
					if err != nil {
						return err
					}
					printContract(c.App.Writer, e, ct)
					return nil
				}),
			},
			{
				Name:      "edit",
				Usage:     "change the given fields; figures lock once pipes are written off",
				ArgsUsage: "ID",
				Flags:     contractFlags(),
				Action: contractAction(func(c *cli.Context, e *env, ct entities.Contract) (entities.Contract, error) {
					d := viewstate.DraftFromContract(ct)
					if err := applyFlags(c, d); err != nil {
						return entities.Contract{}, err
					}
					if !d.Dirty() {
						e.con.Success("Nothing to save")
						return ct, nil
					}
					return e.contracts.Save(c.Context, ct, d.UpdateRequest())
				}),
			},
			{
				Name:      "write-off",
				Usage:     "write off the pipes used and complete the contract",
				ArgsUsage: "ID",
				Action: contractAction(func(c *cli.Context, e *env, ct entities.Contract) (entities.Contract, error) {
					return e.contracts.WriteOffPipes(c.Context, ct)
				}),
			},
			{
				Name:  "write-off-all",
				Usage: "write off pipes for every completed contract",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "no-history", Usage: "do not record movements"}},
				Action: protected(func(c *cli.Context, e *env) error {
					sum, err := e.contracts.WriteOffAll(c.Context, c.Bool("no-history"))
					if err != nil {
						return err
					}
					printFields(c.App.Writer,
						field{"Contracts", strconv.Itoa(sum.ContractsProcessed)},
						field{"Movements", strconv.Itoa(sum.Movements)},
					)
					return nil
				}),
			},
			{
				Name:      "reopen",
				Usage:     "put a completed contract back in progress",
				ArgsUsage: "ID",
				Action: contractAction(func(c *cli.Context, e *env, ct entities.Contract) (entities.Contract, error) {
					return e.contracts.Reopen(c.Context, ct)
				}),
			},
			{
				Name:      "document",
				Usage:     "download the contract document",
				ArgsUsage: "ID",
				Flags:     []cli.Flag{outputFlag},
				Action: protected(func(c *cli.Context, e *env) error {
					ct, err := contractArg(c, e)
					if err != nil {
						return err
					}
					doc, err := e.contracts.GenerateDocument(c.Context, ct)
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
				Name:      "revenue",
				Usage:     "calculate what the contract earns",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "soil", Usage: "meters drilled in soil (default: from the contract)"},
					&cli.Float64Flag{Name: "rock", Usage: "meters drilled in rock (default: from contract)"},
					&cli.Float64Flag{Name: "steel-meters", Usage: "default: from the contract"},
					&cli.Float64Flag{Name: "steel-price"},
					&cli.Float64Flag{Name: "plastic-meters", Usage: "default: from the contract"},
					&cli.Float64Flag{Name: "plastic-price"},
					&cli.Float64Flag{Name: "min-price", Usage: "minimum total"},
				},
				Action: protected(func(c *cli.Context, e *env) error {
					ct, err := contractArg(c, e)
					if err != nil {
						return err
					}
					req := request.RevenueFromContract(ct)
					req.SteelPipePricePerMeter = optFloat(c, "steel-price")
					req.PlasticPipePricePerMeter = optFloat(c, "plastic-price")
					req.MinPrice = optFloat(c, "min-price")
					if v := optFloat(c, "steel-meters"); v != nil {
						req.SteelPipeMeters = v
					}
					if v := optFloat(c, "plastic-meters"); v != nil {
						req.PlasticPipeMeters = v
					}
					if c.IsSet("soil") {
						req.MetersSoil = c.Float64("soil")
					}
					if c.IsSet("rock") {
						req.MetersRock = c.Float64("rock")
					}
					rev, err := e.contracts.CalculateRevenue(c.Context, ct, req)
					if err != nil {
						return err
					}
					printRevenue(c.App.Writer, e, rev)
					return nil
				}),
			},
		},
	}
}

func contractArg(c *cli.Context, e *env) (entities.Contract, error) {
	id, err := argID(c, 0)
	if err != nil {
		return entities.Contract{}, err
	}
	return e.contracts.Get(c.Context, id)
}

func contractAction(fn func(c *cli.Context, e *env, ct entities.Contract) (entities.Contract, error)) cli.ActionFunc {
	return protected(func(c *cli.Context, e *env) error {
		ct, err := contractArg(c, e)
		if err != nil {
			return err
		}
		updated, err := fn(c, e, ct)
		if err != nil {
			return err
		}
		printContract(c.App.Writer, e, updated)
		return nil
	})
}

func printContract(w io.Writer, e *env, ct entities.Contract) {
	d := viewstate.DraftFromContract(ct)
	fields := []field{
		{"Contract", ct.ContractNumber},
		{"Date", e.fmt.Date(ct.ContractDate.Time)},
		{"Client", ct.ClientName},
		{"Location", ct.Location},
		{"Status", ct.Status.Label()},
	}
	for _, f := range viewstate.Figures {
		if v := d.FigureValue(f); v != nil {
			fields = append(fields, field{figureLabels[f], e.fmt.Number(*v)})
		}
	}
	printFields(w, fields...)
	if !d.FiguresEditable() {
		fmt.Fprintln(w, pendingStyle.Render("figures are locked after the pipe write-off"))
	}
	if warn := lifecycle.Contract(ct.Status).ReopenWarning; warn != "" {
		fmt.Fprintln(w, failureStyle.Render("reopen: "+warn))
	}
}

func printRevenue(w io.Writer, e *env, rev entities.Revenue) {
	num := func(v *float64) string {
		if v == nil {
			return "—"
		}
		return e.fmt.Number(*v)
	}
	money := func(v *float64) string {
		if v == nil {
			return "—"
		}
		return e.fmt.Money(*v)
	}
	rows := make([][]string, 0, len(rev.Items))
	for _, it := range rev.Items {
		rows = append(rows, []string{it.Name, num(it.Quantity), it.Unit, money(it.Price), money(it.Sum)})
	}
	printTable(w, "No revenue lines.", []string{"Item", "Qty", "Unit", "Price", "Sum"}, rows)
	fields := []field{
		{"Drilling", e.fmt.Money(rev.DrillingOnly)},
		{"Pipes (retail)", e.fmt.Money(rev.PipeCostRetail)},
		{"Pipes (purchase)", e.fmt.Money(rev.PipeCostPurchase)},
		{"Subtotal", e.fmt.Money(rev.Subtotal)},
	}
	if rev.AppliedMinPrice != nil {
		fields = append(fields, field{"Minimum applied", e.fmt.Money(*rev.AppliedMinPrice)})
	}
	fields = append(fields,
		field{"Total", e.fmt.Money(rev.Total)},
		field{"Net profit", e.fmt.Money(rev.NetProfit)},
	)
	printFields(w, fields...)
}
