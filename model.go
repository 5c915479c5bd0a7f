package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexislopes/hoaxify-tui/internal/i18n"
	"github.com/alexislopes/hoaxify-tui/internal/signup"
)

// Focus order mirrors the form layout; the last slot is the submit button.
const (
	focusUsername = iota
	focusEmail
	focusPassword
	focusPasswordRepeat
	focusButton
	focusCount
)

// fieldOrder maps focus slots to form fields.
var fieldOrder = [...]signup.Field{
	signup.FieldUsername,
	signup.FieldEmail,
	signup.FieldPassword,
	signup.FieldPasswordRepeat,
}

// fieldLabelKeys maps focus slots to translation keys for field labels.
var fieldLabelKeys = [...]string{"username", "email", "password", "passwordRepeat"}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type signUpDoneMsg struct {
	outcome signup.Outcome
}

type model struct {
	ctrl   *signup.Controller
	bundle *i18n.Bundle

	inputs []textinput.Model
	focus  int
	spin   spinner.Model
	keys   keyMap

	width  int
	height int
}

func newModel(bundle *i18n.Bundle, client signup.Submitter) model {
	inputs := make([]textinput.Model, len(fieldOrder))
	for i, name := range fieldOrder {
		inp := textinput.New()
		inp.Prompt = ""
		inp.CharLimit = 64
		inp.Width = 32
		if name == signup.FieldPassword || name == signup.FieldPasswordRepeat {
			inp.EchoMode = textinput.EchoPassword
			inp.EchoCharacter = '•'
		}
		if i == 0 {
			inp.Focus()
		}
		inputs[i] = inp
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return model{
		ctrl:   signup.NewController(signup.NewForm(), client),
		bundle: bundle,
		inputs: inputs,
		spin:   sp,
		keys:   newKeyMap(),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) form() *signup.Form {
	return m.ctrl.Form()
}

// moveFocus shifts focus by dir, wrapping across the inputs and the button.
func (m model) moveFocus(dir int) model {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + dir + focusCount) % focusCount
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
	return m
}
