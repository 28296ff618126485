package main

import (
	"sklad/internal/adapter/tui"
	"sklad/internal/usecase"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func tuiCommand() *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "open the terminal console (default)",
		Flags:  []cli.Flag{outputFlag},
		Action: tuiAction,
	}
}

// tuiAction runs the console. Use cases talk to the operator through the
// bridge, and log lines go to SKLAD_LOG_FILE so they never tear the screen.
func tuiAction(c *cli.Context) error {
	e := envFrom(c)
	bridge := tui.NewBridge(nil)
	if err := e.wire(c, session{notifier: bridge, confirmer: bridge, navigator: bridge, quiet: true}); err != nil {
		return err
	}
	_, err := e.auth.Status(c.Context)
	signIn := errors.Is(err, usecase.ErrNotSignedIn)
	if err != nil && !signIn {
		return err
	}

	svc := tui.Services{
		Products:    e.products,
		Estimates:   e.estimates,
		Contracts:   e.contracts,
		Movements:   e.movements,
		Workers:     e.workers,
		WorkerStock: e.workerStock,
		Reports:     e.reports,
		Assistant:   e.assistant,
		Auth:        e.auth,
	}
	return tui.Run(c.Context, svc, bridge, e.bus, tui.Options{
		PageSize:  e.cfg.PageSize,
		Debounce:  e.cfg.SearchDebounce,
		Format:    e.fmt,
		OutputDir: c.String("output"),
		Logger:    e.log,
		SignIn:    signIn,
	})
}
