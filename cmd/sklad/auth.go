package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "sign in and store the session",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, EnvVars: []string{"SKLAD_USERNAME"}},
			&cli.StringFlag{Name: "password", EnvVars: []string{"SKLAD_PASSWORD"}},
		},
		Action: action(func(c *cli.Context, e *env) error {
			con := e.con
			username, password := c.String("username"), c.String("password")
			var err error
			if username == "" {
				if username, err = con.ask(c.Context, "Username: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = con.secret(c.Context, "Password: "); err != nil {
					return err
				}
			}
			cred, err := e.auth.Login(c.Context, username, password)
			if err != nil {
				return err
			}
			if cred.Username != "" {
				username = cred.Username
			}
			con.Success("Signed in as " + username)
			return nil
		}),
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "forget the stored session",
		Action: action(func(c *cli.Context, e *env) error {
			return e.auth.Logout(c.Context)
		}),
	}
}

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "show who is signed in and the dashboard summary",
		Action: protected(func(c *cli.Context, e *env) error {
			cred, err := e.auth.Status(c.Context)
			if err != nil {
				return err
			}
			out := c.App.Writer
			expires := "never"
			if !cred.ExpiresAt.IsZero() {
				expires = e.fmt.DateTime(cred.ExpiresAt)
			}
			printFields(out,
				field{"Signed in as", cred.Username},
				field{"Session ends", expires},
				field{"Backend", e.cfg.APIURL},
			)
			d, err := e.reports.Dashboard(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			printFields(out,
				field{"To order", fmt.Sprint(d.ProductsToOrderCount)},
				field{"Estimates active", fmt.Sprint(d.EstimatesInProgressCount)},
				field{"Contracts active", fmt.Sprint(d.ContractsInProgressCount)},
				field{"Profit 30 days", e.fmt.Money(d.ProfitLast30Days)},
				field{"Drilling 30 days", e.fmt.Money(d.DrillingProfitLast30Days)},
			)
			return nil
		}),
	}
}
