package main

import (
	"io"

	"sklad/internal/adapter/http/client"
	"sklad/internal/adapter/http/gateway"
	"sklad/internal/adapter/persistence/repository"
	"sklad/internal/config"
	"sklad/internal/format"
	"sklad/internal/infrastructure/database"
	"sklad/internal/infrastructure/documents"
	"sklad/internal/infrastructure/logging"
	"sklad/internal/infrastructure/mail"
	"sklad/internal/infrastructure/spreadsheet"
	"sklad/internal/usecase"
	"sklad/internal/usecase/interfaces"
	"sklad/internal/viewstate"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const envKey = "env"

func newApp() *cli.App {
	return &cli.App{
		Name:                 "sklad",
		Usage:                "warehouse, estimates and drilling contracts",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api-url", Usage: "backend base URL (overrides SKLAD_API_URL)"},
			&cli.StringFlag{Name: "profile", Usage: "credential profile (overrides SKLAD_PROFILE)"},
			&cli.StringFlag{Name: "log-level", Usage: "panic, fatal, error, warn, info, debug or trace"},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "answer yes to every confirmation"},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if v := c.String("api-url"); v != "" {
				cfg.APIURL = v
			}
			if v := c.String("profile"); v != "" {
				cfg.Profile = v
			}
			if v := c.String("log-level"); v != "" {
				cfg.LogLevel = v
			}
			c.App.Metadata = map[string]any{envKey: &env{cfg: cfg}}
			return nil
		},
		After: func(c *cli.Context) error {
			if e, ok := c.App.Metadata[envKey].(*env); ok {
				e.close()
			}
			return nil
		},
		Action: tuiAction,
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			statusCommand(),
			productsCommand(),
			workersCommand(),
			historyCommand(),
			estimatesCommand(),
			contractsCommand(),
			importCommand(),
			reportsCommand(),
			chatCommand(),
			tuiCommand(),
			sandboxCommand(),
		},
	}
}

// env is everything a command needs, built once per invocation.
type env struct {
	cfg    config.Config
	log    *log.Logger
	closer io.Closer
	fmt    format.Formatter
	store  interfaces.ICredentialStore
	bus    *viewstate.RefreshBus
	con    *console

	auth        *usecase.AuthUseCase
	products    *usecase.ProductUseCase
	estimates   *usecase.EstimateUseCase
	contracts   *usecase.ContractUseCase
	movements   *usecase.MovementUseCase
	workers     *usecase.WorkerUseCase
	workerStock *usecase.WorkerStockUseCase
	reports     *usecase.ReportUseCase
	imports     *usecase.ImportUseCase
	assistant   *usecase.AssistantUseCase
}

func envFrom(c *cli.Context) *env {
	return c.App.Metadata[envKey].(*env)
}

// session is how use cases reach the operator: console prompts for the
// CLI, the bridge for the terminal UI.
type session struct {
	notifier  interfaces.INotifier
	confirmer interfaces.IConfirmer
	navigator interfaces.INavigator
	// quiet sends log lines to SKLAD_LOG_FILE or nowhere.
	quiet bool
}

func (e *env) wire(c *cli.Context, s session) error {
	logger, closer, err := logging.New(e.cfg.LogLevel, e.cfg.LogFile, s.quiet)
	if err != nil {
		return err
	}
	e.log, e.closer = logger, closer
	e.fmt = format.New(e.cfg.Locale)
	e.bus = viewstate.NewRefreshBus()

	e.store, err = e.credentialStore(c)
	if err != nil {
		return err
	}

	api, err := client.New(client.Config{
		BaseURL:     e.cfg.APIURL,
		Timeout:     e.cfg.HTTPTimeout,
		Credentials: e.store,
		Navigator:   s.navigator,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	fb := usecase.Feedback{Notifier: s.notifier, Confirmer: s.confirmer, Logger: logger}

	printer, err := documents.NewEstimatePrinter(e.cfg.PDFFont, e.fmt)
	if err != nil {
		return errors.Wrap(err, "estimate printer")
	}

	workerGateway := gateway.NewWorkerGateway(api)
	e.auth = usecase.NewAuthUseCase(gateway.NewAuthGateway(api), e.store, logger)
	e.products = usecase.NewProductUseCase(gateway.NewProductGateway(api), fb)
	e.estimates = usecase.NewEstimateUseCase(gateway.NewEstimateGateway(api), workerGateway, fb).
		WithPrinter(printer, e.cfg.PublicURL)
	e.contracts = usecase.NewContractUseCase(gateway.NewContractGateway(api), fb)
	e.movements = usecase.NewMovementUseCase(gateway.NewMovementGateway(api), fb)
	e.workers = usecase.NewWorkerUseCase(workerGateway, fb)
	e.workerStock = usecase.NewWorkerStockUseCase(workerGateway, fb)
	e.reports = usecase.NewReportUseCase(gateway.NewReportGateway(api), spreadsheet.Exporter{}, mail.NewMailer(e.cfg.SMTP), fb)
	e.imports = usecase.NewImportUseCase(gateway.NewImportGateway(api), spreadsheet.Inspector{}, fb)
	e.assistant = usecase.NewAssistantUseCase(gateway.NewAssistantGateway(api), e.bus, logger)
	return nil
}

func (e *env) credentialStore(c *cli.Context) (interfaces.ICredentialStore, error) {
	if e.cfg.CredentialStore != config.CredentialStoreDynamoDB {
		path, err := e.cfg.CredentialFile()
		if err != nil {
			return nil, err
		}
		return repository.NewCredentialFileRepository(path), nil
	}
	ddb, err := database.ConnectDynamoDB(c.Context, database.DynamoDBSettingsFromEnv())
	if err != nil {
		return nil, err
	}
	return repository.NewCredentialDynamoRepository(ddb, e.cfg.CredentialsTable, e.cfg.Profile), nil
}

func (e *env) close() {
	if e.closer != nil {
		_ = e.closer.Close()
	}
}

// action wires the CLI session and runs fn.
func action(fn func(c *cli.Context, e *env) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		e := envFrom(c)
		con := newConsole(c.App.Reader, c.App.ErrWriter, c.Bool("yes"))
		e.con = con
		if err := e.wire(c, session{notifier: con, confirmer: con, navigator: con}); err != nil {
			return err
		}
		err := fn(c, e)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, usecase.ErrCancelled):
			con.println(pendingStyle.Render("Cancelled."))
			return nil
		case con.shown(err):
			return shownError{err}
		}
		return err
	}
}

// protected is action for commands that talk to the backend on the
// operator's behalf; they refuse to run without a stored credential.
func protected(fn func(c *cli.Context, e *env) error) cli.ActionFunc {
	return action(func(c *cli.Context, e *env) error {
		if _, err := e.auth.Status(c.Context); err != nil {
			return err
		}
		return fn(c, e)
	})
}
