package usecase

import (
	"context"
	"strings"

	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RefreshReason is published when the assistant changed warehouse data.
const RefreshReason = "assistant"

type IAssistantUseCase interface {
	Send(ctx context.Context, text string) (entities.ChatReply, error)
}

type AssistantUseCase struct {
	assistant interfaces.IAssistantGateway
	refresh   interfaces.IRefreshPublisher
	log       log.FieldLogger
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase(assistant interfaces.IAssistantGateway, refresh interfaces.IRefreshPublisher, logger log.FieldLogger) *AssistantUseCase {
	return &AssistantUseCase{assistant: assistant, refresh: refresh, log: Feedback{Logger: logger}.logger("assistant")}
}

// Send posts one operator message. The reply text is returned as plain
// text; when any action succeeded, open views are told to refresh.
func (u *AssistantUseCase) Send(ctx context.Context, text string) (entities.ChatReply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.ChatReply{}, ErrEmptyMessage
	}
	reply, err := u.assistant.Chat(ctx, text)
	if err != nil {
		return entities.ChatReply{}, err
	}
	reply.Response = PlainText(reply.Response)
	if reply.AnySucceeded() && u.refresh != nil {
		u.refresh.Publish(RefreshReason)
	}
	u.log.WithField("actions", len(reply.FunctionResults)).Debug("assistant replied")
	return reply, nil
}

// PlainText flattens an HTML fragment for the terminal. Block elements and
// <br> become line breaks and list items get a bullet.
func PlainText(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	nodes, err := html.ParseFragment(strings.NewReader(s), &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div})
	if err != nil {
		return s
	}
	var b strings.Builder
	for _, n := range nodes {
		flatten(&b, n)
	}
	lines := strings.Split(b.String(), "\n")
	out := lines[:0]
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, l)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func flatten(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Br:
			b.WriteString("\n")
			return
		case atom.Script, atom.Style:
			return
		case atom.Li:
			b.WriteString("\n• ")
		case atom.P, atom.Div, atom.Ul, atom.Ol, atom.Table, atom.Tr, atom.H1, atom.H2, atom.H3:
			b.WriteString("\n")
		case atom.Td, atom.Th:
			b.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flatten(b, c)
	}
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.P, atom.Div, atom.Ul, atom.Ol, atom.Table, atom.Tr, atom.H1, atom.H2, atom.H3:
			b.WriteString("\n")
		}
	}
}
