package main

import (
	"context"
	"io"
	"strconv"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/viewstate"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var stockFilters = map[string]entities.StockStatus{
	"all": entities.StockStatusAll,
	"low": entities.StockStatusLow,
	"out": entities.StockStatusOutOfStock,
}

var listFlags = []cli.Flag{
	&cli.StringFlag{Name: "search", Aliases: []string{"s"}},
	&cli.IntFlag{Name: "page", Value: 1},
	&cli.IntFlag{Name: "size", Usage: "rows per page (default SKLAD_PAGE_SIZE)"},
	&cli.StringFlag{Name: "sort", Usage: "column to sort by"},
	&cli.BoolFlag{Name: "desc", Usage: "sort descending"},
}

func listQuery(c *cli.Context, e *env) *viewstate.Query {
	size := c.Int("size")
	if size <= 0 {
		size = e.cfg.PageSize
	}
	q := viewstate.NewQuery(size)
	q.SetSearch(c.String("search"))
	if s := c.String("sort"); s != "" {
		q.SetSort(s)
		if c.Bool("desc") {
			// a second select flips the order
			q.SetSort(s)
		}
	}
	// The page count is unknown before the first load.
	q.SetPage(c.Int("page"), c.Int("page"))
	return q
}

func productsCommand() *cli.Command {
	productFlags := []cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "sku", Usage: "internal SKU"},
		&cli.StringFlag{Name: "supplier-sku"},
		&cli.StringFlag{Name: "unit", Value: string(entities.UnitPiece)},
		&cli.Float64Flag{Name: "purchase-price"},
		&cli.Float64Flag{Name: "retail-price"},
		&cli.Float64Flag{Name: "stock"},
		&cli.Float64Flag{Name: "min-stock"},
	}
	return &cli.Command{
		Name:    "products",
		Aliases: []string{"p"},
		Usage:   "warehouse catalog",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list products, favorites first",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "stock", Value: "all", Usage: "all, low or out"},
				}, listFlags...),
				Action: protected(func(c *cli.Context, e *env) error {
					q, err := productQuery(c, e)
					if err != nil {
						return err
					}
					list := viewstate.NewList[entities.Product](e.con)
					if err := list.Reload(c.Context, func(ctx context.Context) (entities.Page[entities.Product], error) {
						return e.products.List(ctx, q.ListQuery())
					}); err != nil {
						return err
					}
					printProducts(c.App.Writer, e, list, q)
					return nil
				}),
			},
			{
				Name:  "to-order",
				Usage: "products at or below their minimum level",
				Action: protected(func(c *cli.Context, e *env) error {
					items, err := e.products.ToOrder(c.Context)
					if err != nil {
						return err
					}
					rows := make([][]string, 0, len(items))
					for _, p := range items {
						rows = append(rows, []string{
							p.InternalSKU, p.Name,
							e.fmt.Quantity(p.StockQuantity, p.Unit),
							e.fmt.Quantity(p.MinStockLevel, p.Unit),
							e.fmt.Quantity(p.ToOrder(), p.Unit),
						})
					}
					printTable(c.App.Writer, "Nothing to order.", []string{"SKU", "Name", "Stock", "Min", "To order"}, rows)
					return nil
				}),
			},
			{
				Name:  "create",
				Usage: "add a product",
				Flags: productFlags,
				Action: protected(func(c *cli.Context, e *env) error {
					p, err := e.products.Create(c.Context, request.ProductCreateRequest{
						Name:          c.String("name"),
						InternalSKU:   c.String("sku"),
						SupplierSKU:   optString(c, "supplier-sku"),
						Unit:          entities.Unit(c.String("unit")),
						PurchasePrice: c.Float64("purchase-price"),
						RetailPrice:   c.Float64("retail-price"),
						StockQuantity: c.Float64("stock"),
						MinStockLevel: c.Float64("min-stock"),
					})
					if err != nil {
						return err
					}
					printProduct(c.App.Writer, e, p)
					return nil
				}),
			},
			{
				Name:      "edit",
				Usage:     "change the given fields of a product",
				ArgsUsage: "ID",
				Flags:     productFlags,
				Action: protected(func(c *cli.Context, e *env) error {
					id, err := argID(c, 0)
					if err != nil {
						return err
					}
					req := request.ProductUpdateRequest{
						Name:          optString(c, "name"),
						InternalSKU:   optString(c, "sku"),
						SupplierSKU:   optString(c, "supplier-sku"),
						PurchasePrice: optFloat(c, "purchase-price"),
						RetailPrice:   optFloat(c, "retail-price"),
						StockQuantity: optFloat(c, "stock"),
						MinStockLevel: optFloat(c, "min-stock"),
					}
					if c.IsSet("unit") {
						u := entities.Unit(c.String("unit"))
						req.Unit = &u
					}
					p, err := e.products.Update(c.Context, id, req)
					if err != nil {
						return err
					}
					printProduct(c.App.Writer, e, p)
					return nil
				}),
			},
			{
				Name:      "delete",
				Usage:     "delete a product and show the page without it",
				ArgsUsage: "ID",
				Flags:     listFlags,
				Action: protected(func(c *cli.Context, e *env) error {
					return mutateProductPage(c, e, func(ctx context.Context, list *viewstate.List[entities.Product], p entities.Product) error {
						return list.Optimistic(ctx, viewstate.Without(productID(p.ID)), func(ctx context.Context) error {
							_, err := e.products.Delete(ctx, p)
							return err
						})
					})
				}),
			},
			{
				Name:      "restore",
				Usage:     "bring a deleted product back",
				ArgsUsage: "ID",
				Action: protected(func(c *cli.Context, e *env) error {
					id, err := argID(c, 0)
					if err != nil {
						return err
					}
					p, err := e.products.Restore(c.Context, id)
					if err != nil {
						return err
					}
					printProduct(c.App.Writer, e, p)
					return nil
				}),
			},
			{
				Name:      "favorite",
				Usage:     "toggle the favorite mark",
				ArgsUsage: "ID",
				Flags:     listFlags,
				Action: protected(func(c *cli.Context, e *env) error {
					return mutateProductPage(c, e, func(ctx context.Context, list *viewstate.List[entities.Product], p entities.Product) error {
						flip := viewstate.Updating(productID(p.ID), func(p entities.Product) entities.Product {
							p.IsFavorite = !p.IsFavorite
							return p
						})
						return list.Optimistic(ctx, flip, func(ctx context.Context) error {
							_, err := e.products.ToggleFavorite(ctx, p.ID)
							return err
						})
					})
				}),
			},
			{
				Name:      "receive",
				Usage:     "book incoming goods",
				ArgsUsage: "ID QUANTITY",
				Action: protected(func(c *cli.Context, e *env) error {
					id, err := argID(c, 0)
					if err != nil {
						return err
					}
					qty, err := argNumber(c, 1)
					if err != nil {
						return err
					}
					return e.products.Receive(c.Context, request.ReceiveItemRequest{ProductID: id, Quantity: qty})
				}),
			},
		},
	}
}

func productQuery(c *cli.Context, e *env) (*viewstate.Query, error) {
	q := listQuery(c, e)
	stock, ok := stockFilters[c.String("stock")]
	if !ok {
		return nil, errors.Errorf("unknown stock filter %q, want all, low or out", c.String("stock"))
	}
	if stock != entities.StockStatusAll {
		if q.SetFilter(entities.FilterStockStatus, string(stock)) {
			q.SetPage(c.Int("page"), c.Int("page"))
		}
	}
	return q, nil
}

func productID(id int64) func(entities.Product) bool {
	return func(p entities.Product) bool { return p.ID == id }
}

// mutateProductPage loads the page the operator is looking at, applies
// change to the product named by the first argument and prints the page
// as it stands afterwards.
func mutateProductPage(c *cli.Context, e *env, change func(ctx context.Context, list *viewstate.List[entities.Product], p entities.Product) error) error {
	id, err := argID(c, 0)
	if err != nil {
		return err
	}
	q := listQuery(c, e)
	list := viewstate.NewList[entities.Product](e.con)
	if err := list.Reload(c.Context, func(ctx context.Context) (entities.Page[entities.Product], error) {
		return e.products.List(ctx, q.ListQuery())
	}); err != nil {
		return err
	}
	p, ok := findProduct(list.Items(), id)
	if !ok {
		if p, err = scanProduct(c.Context, e, id); err != nil {
			return err
		}
	}
	err = change(c.Context, list, p)
	printProducts(c.App.Writer, e, list, q)
	return err
}

func findProduct(items []entities.Product, id int64) (entities.Product, bool) {
	for _, p := range items {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Product{}, false
}

// scanProduct pages through the catalog; there is no single-product
// endpoint.
func scanProduct(ctx context.Context, e *env, id int64) (entities.Product, error) {
	q := entities.ListQuery{Size: 500}
	for q.Page = 1; ; q.Page++ {
		page, err := e.products.List(ctx, q)
		if err != nil {
			return entities.Product{}, err
		}
		if p, ok := findProduct(page.Items, id); ok {
			return p, nil
		}
		if q.Page >= page.Pages(q.Size) {
			return entities.Product{}, errors.Errorf("product %d not found", id)
		}
	}
}

func printProducts(w io.Writer, e *env, list *viewstate.List[entities.Product], q *viewstate.Query) {
	items := list.Items()
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		mark := ""
		switch {
		case p.IsDeleted:
			mark = "deleted"
		case p.IsFavorite:
			mark = "★"
		}
		if p.IsLowStock() && !p.IsDeleted {
			mark += " low"
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10), mark, p.InternalSKU, p.Name,
			e.fmt.Quantity(p.StockQuantity, p.Unit),
			e.fmt.Quantity(p.MinStockLevel, p.Unit),
			e.fmt.Money(p.RetailPrice),
		})
	}
	printTable(w, "No products match.", []string{"ID", "", "SKU", "Name", "Stock", "Min", "Price"}, rows)
	printFooter(w, q, list.Total())
}

func printProduct(w io.Writer, e *env, p entities.Product) {
	supplier := ""
	if p.SupplierSKU != nil {
		supplier = *p.SupplierSKU
	}
	printFields(w,
		field{"ID", strconv.FormatInt(p.ID, 10)},
		field{"Name", p.Name},
		field{"SKU", p.InternalSKU},
		field{"Supplier SKU", supplier},
		field{"Stock", e.fmt.Quantity(p.StockQuantity, p.Unit)},
		field{"Min level", e.fmt.Quantity(p.MinStockLevel, p.Unit)},
		field{"Purchase price", e.fmt.Money(p.PurchasePrice)},
		field{"Retail price", e.fmt.Money(p.RetailPrice)},
	)
}
