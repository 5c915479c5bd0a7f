package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexislopes/hoaxify-tui/internal/signup"
)

// signUpCmd runs one frozen submission attempt off the event loop and
// delivers its outcome back as a message.
func signUpCmd(do func() signup.Outcome) tea.Cmd {
	return func() tea.Msg {
		return signUpDoneMsg{outcome: do()}
	}
}
