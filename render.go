package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexislopes/hoaxify-tui/internal/signup"
)

func (m model) View() string {
	var body string
	if m.form().Status() == signup.StatusSucceeded {
		body = successStyle.Render(m.bundle.T("accountActivationNotification"))
	} else {
		body = cardStyle.Render(m.renderForm())
	}

	view := body + "\n" + m.renderLanguageLine() + "\n" + m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

func (m model) renderForm() string {
	form := m.form()

	mismatch := ""
	if signup.PasswordsMismatch(form) {
		mismatch = m.bundle.T(signup.MismatchMessageKey)
	}
	fieldErrors := signup.DisplayedErrors(form, mismatch)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.bundle.T("signUp")))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		label := m.bundle.T(fieldLabelKeys[i])
		style := labelStyle
		if m.focus == i {
			style = labelFocusedStyle
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n")
		if msg, ok := fieldErrors[fieldOrder[i]]; ok {
			b.WriteString(fieldErrorStyle.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderButton())
	return b.String()
}

func (m model) renderButton() string {
	label := m.bundle.T("signUp")

	if m.form().Status() == signup.StatusSubmitting {
		return buttonDisabledStyle.Render(label) + " " + m.spin.View()
	}
	if !signup.Submittable(m.form()) {
		return buttonDisabledStyle.Render(label)
	}
	if m.focus == focusButton {
		return buttonFocusedStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

func (m model) renderLanguageLine() string {
	return languageStyle.Render(m.bundle.T("languageName") + " (" + m.bundle.Language() + ")")
}

func (m model) renderFooter() string {
	entries := []struct{ key, descKey string }{
		{"tab", "helpNextField"},
		{"enter", "helpSubmit"},
		{"ctrl+l", "helpLanguage"},
		{"esc", "helpQuit"},
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, boldKey(e.key)+" "+m.bundle.T(e.descKey))
	}
	return footerStyle.Render(strings.Join(parts, "  "))
}

func boldKey(text string) string {
	if text == "" {
		return ""
	}
	return "\x1b[1m" + text + "\x1b[22m"
}
