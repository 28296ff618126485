package tui

import (
	"strings"

	"sklad/internal/viewstate"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type dialogKind int

const (
	dialogConfirm dialogKind = iota + 1
	dialogPrompt
	dialogPick
)

type option struct {
	id    int64
	value string
	label string
}

// dialog is the content of the modal shell. Closing it on the operator's
// request goes through viewstate.Modal so the opener's callback runs.
type dialog struct {
	kind     dialogKind
	body     string
	input    textinput.Model
	options  []option
	cursor   int
	reply    chan<- bool
	onSubmit func(string) tea.Cmd
	onPick   func(option) tea.Cmd
}

func (m *Model) openConfirm(msg confirmMsg) {
	if m.modal.IsOpen() {
		msg.reply <- false
		return
	}
	m.dialog = dialog{kind: dialogConfirm, body: msg.prompt, reply: msg.reply}
	m.modal.Open("Confirm", func(viewstate.DismissReason) { msg.reply <- false })
}

func (m *Model) openPrompt(title, placeholder, value string, onSubmit func(string) tea.Cmd) tea.Cmd {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 200
	in.Width = 40
	in.SetValue(value)
	in.CursorEnd()
	m.dialog = dialog{kind: dialogPrompt, input: in, onSubmit: onSubmit}
	m.modal.Open(title, nil)
	return m.dialog.input.Focus()
}

func (m *Model) openPicker(title string, options []option, onPick func(option) tea.Cmd) {
	if len(options) == 0 {
		m.feed.Failure("Nothing to choose from")
		return
	}
	m.dialog = dialog{kind: dialogPick, options: options, onPick: onPick}
	m.modal.Open(title, nil)
}

func (m *Model) updateDialog(msg tea.KeyMsg) tea.Cmd {
	d := &m.dialog
	if msg.Type == tea.KeyEsc {
		m.modal.Dismiss(viewstate.DismissEscape)
		return nil
	}

	switch d.kind {
	case dialogConfirm:
		switch msg.String() {
		case "y", "enter":
			m.modal.Close()
			d.reply <- true
		case "n":
			m.modal.Dismiss(viewstate.DismissCancel)
		}
		return nil

	case dialogPrompt:
		if msg.Type == tea.KeyEnter {
			value := strings.TrimSpace(d.input.Value())
			submit := d.onSubmit
			m.modal.Close()
			return submit(value)
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return cmd

	case dialogPick:
		switch msg.String() {
		case "up", "k":
			d.cursor = max(d.cursor-1, 0)
		case "down", "j":
			d.cursor = min(d.cursor+1, len(d.options)-1)
		case "enter":
			picked := d.options[d.cursor]
			pick := d.onPick
			m.modal.Close()
			return pick(picked)
		}
	}
	return nil
}

func (m *Model) renderDialog() string {
	d := m.dialog
	var body string
	switch d.kind {
	case dialogConfirm:
		body = d.body + "\n\n" + faint.Render("enter/y: confirm   esc/n: cancel")
	case dialogPrompt:
		body = d.input.View() + "\n\n" + faint.Render("enter: ok   esc: cancel")
	case dialogPick:
		lines := make([]string, 0, len(d.options)+2)
		for i, o := range d.options {
			if i == d.cursor {
				lines = append(lines, selected.Render("› "+o.label))
			} else {
				lines = append(lines, "  "+o.label)
			}
		}
		body = strings.Join(lines, "\n") + "\n\n" + faint.Render("enter: choose   esc: cancel")
	}
	return renderModalBox(m.width, m.modal.Title(), body)
}
