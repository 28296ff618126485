package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var errUsage = errors.New("wrong number of arguments")

func argID(c *cli.Context, n int) (int64, error) {
	raw := c.Args().Get(n)
	if raw == "" {
		return 0, errors.Wrapf(errUsage, "usage: %s %s", c.Command.FullName(), c.Command.ArgsUsage)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("%q is not an id", raw)
	}
	return id, nil
}

// argNumber accepts a comma as the decimal separator.
func argNumber(c *cli.Context, n int) (float64, error) {
	raw := c.Args().Get(n)
	if raw == "" {
		return 0, errors.Wrapf(errUsage, "usage: %s %s", c.Command.FullName(), c.Command.ArgsUsage)
	}
	return parseNumber(raw)
}

func parseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
	if err != nil {
		return 0, errors.Errorf("%q is not a number", raw)
	}
	return v, nil
}

// optString returns a pointer to the flag value when the operator set it.
func optString(c *cli.Context, name string) *string {
	if !c.IsSet(name) {
		return nil
	}
	v := c.String(name)
	return &v
}

func optFloat(c *cli.Context, name string) *float64 {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Float64(name)
	return &v
}

// parseItems reads PRODUCT:QTY[:PRICE] items.
func parseItems(raw []string) ([]request.EstimateItemRequest, error) {
	items := make([]request.EstimateItemRequest, 0, len(raw))
	for _, r := range raw {
		parts := strings.Split(r, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, errors.Errorf("item %q: want PRODUCT:QTY[:PRICE]", r)
		}
		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, errors.Errorf("item %q: bad product id", r)
		}
		qty, err := parseNumber(parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "item %q", r)
		}
		item := request.EstimateItemRequest{ProductID: id, Quantity: qty}
		if len(parts) == 3 {
			price, err := parseNumber(parts[2])
			if err != nil {
				return nil, errors.Wrapf(err, "item %q", r)
			}
			item.UnitPrice = &price
		}
		items = append(items, item)
	}
	return items, nil
}

var periodFlags = []cli.Flag{
	&cli.StringFlag{Name: "from", Usage: "first day, YYYY-MM-DD"},
	&cli.StringFlag{Name: "to", Usage: "last day, YYYY-MM-DD"},
	&cli.BoolFlag{Name: "in-progress", Usage: "include estimates still in progress"},
}

func period(c *cli.Context) interfaces.ReportPeriod {
	return interfaces.ReportPeriod{
		From:              c.String("from"),
		To:                c.String("to"),
		IncludeInProgress: c.Bool("in-progress"),
	}
}

var outputFlag = &cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "file or directory to write to"}

// saveDocument writes doc to the output flag, which may name a directory,
// and returns the path written.
func saveDocument(c *cli.Context, doc interfaces.Document) (string, error) {
	path := c.String("output")
	if path == "" {
		path = doc.Name
	} else if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path = filepath.Join(path, doc.Name)
	}
	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		return "", errors.Wrap(err, "save document")
	}
	return path, nil
}

func readFile(c *cli.Context) (string, []byte, error) {
	path := c.Args().First()
	if path == "" {
		return "", nil, errors.Wrapf(errUsage, "usage: %s %s", c.Command.FullName(), c.Command.ArgsUsage)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, errors.Wrap(err, "read file")
	}
	return filepath.Base(path), data, nil
}
