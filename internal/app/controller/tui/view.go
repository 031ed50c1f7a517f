package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/converter"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/dashboard"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/editor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	nameWidth   = 24
	statusWidth = 12
	ellipsis    = "…"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	if m.dashboard.Loading() {
		b.WriteString(titleStyle.Render("Admin Dashboard"))
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading orders...\n")
		b.WriteString(m.noticeView())
		return b.String()
	}

	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(m.rowsView())

	if m.focus == focusForm {
		b.WriteString("\n")
		b.WriteString(m.formView())
	}

	b.WriteString("\n")
	b.WriteString(m.noticeView())
	b.WriteString(m.helpView())

	return b.String()
}

func (m Model) headerView() string {
	user := m.dashboard.User()

	total := "N/A"
	if count := m.dashboard.Count(); count != 0 {
		total = strconv.Itoa(count)
	}

	lines := []string{
		titleStyle.Render("Admin Dashboard"),
		fmt.Sprintf("%s  %s", user.DisplayName(), mutedStyle.Render(user.DisplayAvatar())),
		fmt.Sprintf("Total Orders: %s", total),
	}

	return headerStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) rowsView() string {
	if len(m.rows) == 0 {
		return mutedStyle.Render("No orders found.") + "\n"
	}

	var b strings.Builder
	for i, order := range m.rows {
		line := m.truncate(rowLine(order))

		switch {
		case m.dashboard.Busy(dashboard.OperationRemove, order.ID):
			line = busyStyle.Render(line + " (removing)")
		case m.dashboard.Busy(dashboard.OperationCommit, order.ID):
			line = busyStyle.Render(line + " (saving)")
		}

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func rowLine(order entity.Order) string {
	name := ansi.Truncate(order.ProductName, nameWidth, ellipsis)
	status := ansi.Truncate(order.Status, statusWidth, ellipsis)

	return fmt.Sprintf(
		"%s  %10s  x%-4d  %s  %s",
		pad(name, nameWidth),
		order.ProductPrice.StringFixed(2),
		order.Quantity,
		pad(status, statusWidth),
		converter.FormatTime(order.CreatedAt),
	)
}

func (m Model) formView() string {
	id, editing := m.dashboard.Editing()
	if !editing {
		return ""
	}

	title := fmt.Sprintf("Edit order %s", id)
	if m.dashboard.Busy(dashboard.OperationCommit, id) {
		title += busyStyle.Render(" saving...")
	}

	lines := []string{titleStyle.Render(title)}
	for i, field := range editor.Fields {
		line := m.inputs[i].View()
		if m.invalid[field] {
			line += " " + invalidStyle.Render("invalid value")
		}
		lines = append(lines, line)
	}

	return formStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func (m Model) noticeView() string {
	if len(m.notice.text) == 0 {
		return ""
	}

	if m.notice.isErr {
		return errorStyle.Render(m.notice.text) + "\n"
	}

	return successStyle.Render(m.notice.text) + "\n"
}

func (m Model) helpView() string {
	var bindings []key.Binding
	switch m.focus {
	case focusSearch:
		bindings = m.keys.searchHelp()
	case focusForm:
		bindings = m.keys.formHelp()
	default:
		bindings = m.keys.listHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+": "+help.Desc)
	}

	return helpStyle.Render(m.truncate(strings.Join(parts, "  ")))
}

func (m Model) truncate(line string) string {
	if m.width <= 2 {
		return line
	}

	return ansi.Truncate(line, m.width-2, ellipsis)
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}
