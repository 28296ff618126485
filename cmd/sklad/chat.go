package main

import (
	"fmt"
	"io"
	"strings"

	"sklad/internal/domain/entities"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var replyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

func chatCommand() *cli.Command {
	return &cli.Command{
		Name:      "chat",
		Usage:     "ask the assistant; without a message, start a conversation",
		ArgsUsage: "[MESSAGE]",
		Action: protected(func(c *cli.Context, e *env) error {
			if c.Args().Present() {
				reply, err := e.assistant.Send(c.Context, strings.Join(c.Args().Slice(), " "))
				if err != nil {
					return err
				}
				printReply(c.App.Writer, reply)
				return nil
			}
			for {
				line, err := e.con.ask(c.Context, "you: ")
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				switch line {
				case "":
					continue
				case "exit", "quit":
					return nil
				}
				reply, err := e.assistant.Send(c.Context, line)
				if err != nil {
					e.con.Failure(err.Error())
					continue
				}
				printReply(c.App.Writer, reply)
			}
		}),
	}
}

func printReply(w io.Writer, r entities.ChatReply) {
	fmt.Fprintln(w, replyStyle.Render(r.Response))
	for _, fr := range r.FunctionResults {
		mark := successStyle.Render("✓ ")
		if !fr.Success {
			mark = failureStyle.Render("✗ ")
		}
		fmt.Fprintln(w, "  "+mark+fr.Function)
	}
}
