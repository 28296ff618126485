package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"
	"sklad/internal/viewstate"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/term"
	"github.com/pkg/errors"
)

var (
	pendingStyle = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(18)
)

// console talks to the operator over stdin and stderr. Tables and
// documents go to stdout.
type console struct {
	mu   sync.Mutex
	in   *bufio.Reader
	out  io.Writer
	yes  bool
	last string
}

var (
	_ interfaces.INotifier  = (*console)(nil)
	_ interfaces.IConfirmer = (*console)(nil)
	_ interfaces.INavigator = (*console)(nil)
)

func newConsole(in io.Reader, out io.Writer, yes bool) *console {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &console{in: bufio.NewReader(in), out: out, yes: yes}
}

func (c *console) Pending(msg string) { c.println(pendingStyle.Render("… " + msg)) }

func (c *console) Success(msg string) { c.println(successStyle.Render("✓ " + msg)) }

func (c *console) Failure(msg string) {
	c.mu.Lock()
	c.last = msg
	c.mu.Unlock()
	c.println(failureStyle.Render("✗ " + msg))
}

// shown reports whether err is the failure the operator just saw.
func (c *console) shown(err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last != "" && err.Error() == c.last
}

// shownError is an error already printed as a failure notice.
type shownError struct{ error }

func (e shownError) Unwrap() error { return e.error }

func (c *console) RedirectToLogin(string) {
	c.println(failureStyle.Render("Session expired, run `sklad login`"))
}

// Confirm asks a yes/no question. Anything but y or yes declines, and so
// does end of input.
func (c *console) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.yes {
		return true, nil
	}
	line, err := c.ask(ctx, prompt+" [y/N] ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes", "д", "да":
		return true, nil
	}
	return false, nil
}

// ask prints prompt and reads one trimmed line, giving up when ctx ends.
func (c *console) ask(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	fmt.Fprint(c.out, prompt)
	c.mu.Unlock()

	type answer struct {
		line string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		if err != nil && line != "" && errors.Is(err, io.EOF) {
			err = nil
		}
		ch <- answer{strings.TrimSpace(line), err}
	}()
	select {
	case a := <-ch:
		return a.line, a.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// secret reads a password without echo when stdin is a terminal.
func (c *console) secret(ctx context.Context, prompt string) (string, error) {
	if !term.IsTerminal(os.Stdin.Fd()) {
		return c.ask(ctx, prompt)
	}
	c.mu.Lock()
	fmt.Fprint(c.out, prompt)
	c.mu.Unlock()
	b, err := term.ReadPassword(os.Stdin.Fd())
	c.println("")
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}
	return string(b), nil
}

func (c *console) println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, s)
}

// printTable renders rows under headers. Empty results print empty instead
// of a bare header.
func printTable(w io.Writer, empty string, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, pendingStyle.Render(empty))
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

func printFooter(w io.Writer, q *viewstate.Query, total int) {
	pages := entities.Page[struct{}]{Total: total}.Pages(q.Size())
	fmt.Fprintln(w, pendingStyle.Render(fmt.Sprintf("page %d/%d · %d total", q.Page(), pages, total)))
}

type field struct {
	label string
	value string
}

func printFields(w io.Writer, fields ...field) {
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintln(w, labelStyle.Render(f.label)+f.value)
	}
}
