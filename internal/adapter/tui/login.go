package tui

import (
	"strings"

	"sklad/internal/viewstate"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type signedInMsg struct {
	username string
	err      error
}

// openLogin asks for credentials once, however many requests were
// rejected at the same time.
func (m *Model) openLogin() tea.Cmd {
	if m.signingIn || m.svc.Auth == nil {
		return nil
	}
	m.signingIn = true
	if m.modal.IsOpen() {
		m.modal.Dismiss(viewstate.DismissCancel)
	}
	abandon := func(viewstate.DismissReason) { m.signingIn = false }
	cmd := m.openPrompt("Sign in: username", "operator@example.com", "", func(username string) tea.Cmd {
		username = strings.TrimSpace(username)
		if username == "" {
			m.signingIn = false
			return nil
		}
		cmd := m.openPrompt("Sign in: password", "", "", func(password string) tea.Cmd {
			ctx := m.ctx
			return func() tea.Msg {
				_, err := m.svc.Auth.Login(ctx, username, password)
				return signedInMsg{username: username, err: err}
			}
		})
		m.dialog.input.EchoMode = textinput.EchoPassword
		m.modal.Open("Sign in: password", abandon)
		return cmd
	})
	m.modal.Open("Sign in: username", abandon)
	return cmd
}

func (m *Model) signedIn(msg signedInMsg) tea.Cmd {
	m.signingIn = false
	if msg.err != nil {
		m.fail(msg.err)
		return m.openLogin()
	}
	m.feed.Success("Signed in as " + msg.username)
	return m.reload(tabProducts, tabEstimates, tabContracts, tabHistory, tabWorkers)
}
