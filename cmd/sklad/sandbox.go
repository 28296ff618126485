package main

import (
	"context"
	"net/http"
	"time"

	"sklad/internal/adapter/http/fakeapi"
	"sklad/internal/infrastructure/logging"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// sandboxCommand serves the in-memory backend so the console can be tried
// without a real server: run it, then point SKLAD_API_URL at it.
func sandboxCommand() *cli.Command {
	return &cli.Command{
		Name:  "sandbox",
		Usage: "serve an in-memory backend for training and demos",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: "127.0.0.1:8000"},
			&cli.StringFlag{Name: "username", Value: fakeapi.DefaultUsername},
			&cli.StringFlag{Name: "password", Value: fakeapi.DefaultPassword},
		},
		Action: func(c *cli.Context) error {
			e := envFrom(c)
			logger, closer, err := logging.New(e.cfg.LogLevel, e.cfg.LogFile, false)
			if err != nil {
				return err
			}
			e.closer = closer
			l := logging.Scoped(logger, "sandbox")

			srv := &http.Server{
				Addr: c.String("addr"),
				Handler: fakeapi.New(fakeapi.Options{
					Username: c.String("username"),
					Password: c.String("password"),
				}),
				ReadHeaderTimeout: 10 * time.Second,
			}
			errc := make(chan error, 1)
			go func() {
				l.WithFields(log.Fields{"addr": srv.Addr, "username": c.String("username")}).Info("sandbox listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errc <- err
				}
				close(errc)
			}()

			select {
			case err := <-errc:
				return errors.Wrap(err, "sandbox")
			case <-c.Context.Done():
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			l.Info("sandbox stopping")
			return srv.Shutdown(ctx)
		},
	}
}
