package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"sklad/internal/adapter/http/dto/response"
	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func importCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "load spreadsheets into stock or estimates",
		Subcommands: []*cli.Command{
			{
				Name:      "preview",
				Usage:     "show the detected header and first rows without uploading",
				ArgsUsage: "FILE",
				Action: action(func(c *cli.Context, e *env) error {
					name, data, err := readFile(c)
					if err != nil {
						return err
					}
					p, err := e.imports.Preview(name, data)
					if errors.Is(err, interfaces.ErrPreviewUnavailable) {
						e.con.Pending(name + ": " + err.Error() + "; it will be checked by the server")
						return nil
					}
					if err != nil {
						return err
					}
					printPreview(c.App.Writer, p)
					return nil
				}),
			},
			{
				Name:      "stock",
				Usage:     "update stock from INTERNAL_SKU/NAME/STOCK_QUANTITY rows",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "initial", Usage: "initial load: set quantities instead of adding"},
					&cli.BoolFlag{Name: "auto-create", Usage: "create products missing from the catalog"},
				},
				Action: protected(func(c *cli.Context, e *env) error {
					return upload(c, e, interfaces.ImportOptions{
						Mode:          entities.ImportToStock,
						IsInitialLoad: c.Bool("initial"),
						AutoCreateNew: c.Bool("auto-create"),
					})
				}),
			},
			{
				Name:      "estimate",
				Usage:     "create a draft estimate from a spreadsheet",
				ArgsUsage: "FILE",
				Action: protected(func(c *cli.Context, e *env) error {
					return upload(c, e, interfaces.ImportOptions{Mode: entities.ImportAsEstimate})
				}),
			},
			{
				Name:      "1c",
				Usage:     "create a draft estimate from a 1C export",
				ArgsUsage: "FILE",
				Action: protected(func(c *cli.Context, e *env) error {
					name, data, err := readFile(c)
					if err != nil {
						return err
					}
					est, err := e.imports.Import1C(c.Context, name, data)
					if err != nil {
						return err
					}
					printEstimate(c.App.Writer, e, est, nil)
					return nil
				}),
			},
		},
	}
}

func upload(c *cli.Context, e *env, opts interfaces.ImportOptions) error {
	name, data, err := readFile(c)
	if err != nil {
		return err
	}
	res, err := e.imports.Import(c.Context, name, data, opts)
	if err != nil {
		return err
	}
	printImport(c.App.Writer, e, res)
	return nil
}

func printPreview(w io.Writer, p entities.SheetPreview) {
	printFields(w,
		field{"File", p.FileName},
		field{"Sheet", p.Sheet},
		field{"Layout", string(p.Layout)},
		field{"Header row", strconv.Itoa(p.HeaderRow + 1)},
		field{"Data rows", strconv.Itoa(p.RowCount)},
	)
	rows := make([][]string, 0, len(p.Rows))
	for _, r := range p.Rows {
		row := make([]string, len(p.Header))
		copy(row, r)
		rows = append(rows, row)
	}
	printTable(w, "No data rows.", p.Header, rows)
}

func printImport(w io.Writer, e *env, res response.ImportResponse) {
	if res.Estimate != nil {
		printEstimate(w, e, *res.Estimate, nil)
		return
	}
	if res.Report == nil {
		return
	}
	r := res.Report
	printFields(w,
		field{"Created", strconv.Itoa(len(r.Created))},
		field{"Updated", strconv.Itoa(len(r.Updated))},
		field{"Skipped", strconv.Itoa(len(r.Skipped))},
		field{"Errors", strconv.Itoa(len(r.Errors))},
	)
	for _, msg := range r.Errors {
		fmt.Fprintln(w, failureStyle.Render("  "+strings.TrimSpace(msg)))
	}
}
