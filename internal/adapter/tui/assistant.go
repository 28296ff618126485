package tui

import (
	"strings"

	"sklad/internal/domain/entities"
	"sklad/internal/viewstate"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const transcriptLimit = 200

type chatMsg struct {
	reply entities.ChatReply
	err   error
}

var (
	operatorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// assistantPanel is the chat with the warehouse assistant. Only one
// message is in flight at a time.
type assistantPanel struct {
	transcript *viewstate.Transcript
	input      textinput.Model
	waiting    bool
}

func newAssistantPanel() *assistantPanel {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = "e.g. выдай Иванову 10 метров трубы"
	in.CharLimit = 1000
	in.Focus()
	return &assistantPanel{transcript: viewstate.NewTranscript(transcriptLimit), input: in}
}

func (p *assistantPanel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *assistantPanel) received(msg chatMsg) {
	p.waiting = false
	if msg.err != nil {
		p.transcript.Failure(msg.err)
		return
	}
	p.transcript.Reply(msg.reply)
}

func (m *Model) assistantKey(msg tea.KeyMsg) tea.Cmd {
	p := m.assistant
	switch msg.String() {
	case "ctrl+l":
		p.transcript.Clear()
		return nil
	case "enter":
		text := strings.TrimSpace(p.input.Value())
		if text == "" || p.waiting {
			return nil
		}
		p.input.Reset()
		p.transcript.Operator(text)
		p.waiting = true
		ctx, assistant := m.ctx, m.svc.Assistant
		return func() tea.Msg {
			reply, err := assistant.Send(ctx, text)
			return chatMsg{reply: reply, err: err}
		}
	}
	return p.update(msg)
}

// view shows the newest entries that fit above the input line.
func (p *assistantPanel) view(w, h int) string {
	var blocks []string
	for _, e := range p.transcript.Entries() {
		blocks = append(blocks, renderEntry(e, w))
	}
	if p.waiting {
		blocks = append(blocks, faint.Render("assistant is thinking…"))
	}
	if len(blocks) == 0 {
		blocks = append(blocks, faint.Render("Ask the assistant to receive, issue or write off stock."))
	}

	lines := strings.Split(strings.Join(blocks, "\n\n"), "\n")
	room := max(h-2, 1)
	if len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	return strings.Join(lines, "\n") + "\n\n" + p.input.View()
}

func renderEntry(e viewstate.Entry, w int) string {
	wrap := lipgloss.NewStyle().Width(max(w-2, 20))
	switch e.Role {
	case viewstate.RoleOperator:
		return operatorStyle.Render("you: ") + wrap.Render(e.Text)
	case viewstate.RoleError:
		return failure.Render(wrap.Render("error: " + e.Text))
	}
	var b strings.Builder
	b.WriteString(assistantStyle.Render(wrap.Render(e.Text)))
	for _, r := range e.Results {
		mark := success.Render("✓ ")
		if !r.Success {
			mark = failure.Render("✗ ")
		}
		b.WriteString("\n  " + mark + r.Function)
	}
	return b.String()
}
