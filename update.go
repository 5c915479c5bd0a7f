package main

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexislopes/hoaxify-tui/internal/signup"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		if m.form().Status() != signup.StatusSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case signUpDoneMsg:
		m.ctrl.Resolve(msg.outcome)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Language):
		m.cycleLanguage()
		return m, nil
	}

	// Once the sign up succeeded the form is gone; only language switching
	// and quitting remain meaningful.
	if m.form().Status() == signup.StatusSucceeded {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1), nil
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1), nil
	case key.Matches(msg, m.keys.Submit):
		if m.focus == focusButton {
			return m.submit()
		}
		// Enter on a field behaves like tab.
		return m.moveFocus(1), nil
	}

	// Everything else is typing for the focused input. The user keeps
	// typing even while a submission is outstanding; the outstanding
	// request's payload was captured at submit time.
	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.form().SetField(fieldOrder[m.focus], m.inputs[m.focus].Value())
		return m, cmd
	}
	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	do, err := m.ctrl.Submit(context.Background(), m.bundle.Language())
	if err != nil {
		// Mismatch keeps the button disabled and a double activation is a
		// guaranteed no-op; neither needs surfacing.
		return m, nil
	}
	return m, tea.Batch(m.spin.Tick, signUpCmd(do))
}

// cycleLanguage advances to the next available language tag. Field values
// and displayed errors are untouched; only rendered text and the header of
// the next submission change.
func (m *model) cycleLanguage() {
	langs := m.bundle.Languages()
	current := m.bundle.Language()
	for i, tag := range langs {
		if tag == current {
			next := langs[(i+1)%len(langs)]
			if err := m.bundle.SetLanguage(next); err != nil {
				log.Printf("set language: %v", err)
			}
			return
		}
	}
}
