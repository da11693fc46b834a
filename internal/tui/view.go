package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jdmorgan/comment-dash/internal/dashboard"
)

// View renders the current page.
func (m Model) View() string {
	var b strings.Builder

	switch m.page {
	case pageLogin:
		b.WriteString(m.loginView())
	case pageList:
		b.WriteString(m.listView())
	case pageCreate:
		b.WriteString(m.createView())
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusLevel == dashboard.LevelError {
			b.WriteString(m.styles.Error.Render(m.status))
		} else {
			b.WriteString(m.styles.Success.Render(m.status))
		}
	}

	return b.String()
}

func (m Model) loginView() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Login to Dashboard"))
	b.WriteString("\n\n")

	labels := [2]string{"Username", "Password"}
	for i := range m.loginInputs {
		b.WriteString(m.styles.Label.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.loginInputs[i].View())
		b.WriteString("\n")
		if m.loginErrors[i] != "" {
			b.WriteString(m.styles.Error.Render(m.loginErrors[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("enter: log in • tab: next field • ctrl+c: quit"))

	return m.styles.Box.Render(b.String())
}

func (m Model) listView() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("💬 Comments Dashboard"))
	b.WriteString("\n")

	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if m.list.Loading() {
		b.WriteString("Loading comments...\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		visible := len(m.list.Visible())
		total := len(m.list.Items())
		if visible == total {
			b.WriteString(m.styles.Help.Render(fmt.Sprintf("%d comments", total)))
		} else {
			b.WriteString(m.styles.Help.Render(fmt.Sprintf("%d of %d comments", visible, total)))
		}
	}
	b.WriteString("\n")

	if m.confirming {
		prompt := fmt.Sprintf("Delete comment #%d? (y/n)", m.confirmID)
		b.WriteString("\n")
		b.WriteString(m.styles.Confirm.Render(prompt))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("/: search • c: create • d: delete • r: refresh • L: logout • q: quit"))

	return b.String()
}

func (m Model) createView() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Create New Comment"))
	b.WriteString("\n\n")

	labels := [3]string{"Name *", "Email *", "Comment *"}
	fieldErrors := m.create.FieldErrors()
	for i := range m.formInputs {
		b.WriteString(m.styles.Label.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.formInputs[i].View())
		b.WriteString("\n")
		if msg := fieldErrors[createFields[i]]; msg != "" {
			b.WriteString(m.styles.Error.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.create.Submitting() {
		b.WriteString("Submitting...\n")
	}

	b.WriteString(m.styles.Help.Render("enter: next/submit • ctrl+s: submit • esc: back • ctrl+c: quit"))

	return m.styles.Box.Render(b.String())
}

// truncate shortens a string to maxLen, adding "…" if truncated.
func truncate(s string, maxLen int) string {
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}

// oneLine flattens newlines so a body fits in one table row.
func oneLine(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, s)
}
