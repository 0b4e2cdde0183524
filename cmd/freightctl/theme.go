package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"freight-matching-platform/internal/client"
	"freight-matching-platform/internal/lifecycle"
)

var badgeColors = map[string]lipgloss.Color{
	lifecycle.BadgeSuccess:   lipgloss.Color("2"),
	lifecycle.BadgeWarning:   lipgloss.Color("3"),
	lifecycle.BadgeDanger:    lipgloss.Color("1"),
	lifecycle.BadgeInfo:      lipgloss.Color("6"),
	lifecycle.BadgePrimary:   lipgloss.Color("4"),
	lifecycle.BadgeSecondary: lipgloss.Color("8"),
}

// theme renders for one output stream, so colors are dropped when it is not a terminal.
type theme struct {
	r      *lipgloss.Renderer
	header lipgloss.Style
	muted  lipgloss.Style
	errorS lipgloss.Style
}

func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		r:      r,
		header: r.NewStyle().Bold(true).Underline(true),
		muted:  r.NewStyle().Faint(true),
		errorS: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

// badge renders a status label in the color of its badge class.
func (t theme) badge(status string, locale language.Tag) string {
	return t.paint(lifecycle.LabelFor(status, locale), lifecycle.BadgeClassFor(status))
}

func (t theme) paint(label, badgeClass string) string {
	color, ok := badgeColors[badgeClass]
	if !ok {
		return label
	}
	return t.r.NewStyle().Foreground(color).Bold(true).Render(label)
}

func (t theme) role(role string, locale language.Tag) string {
	label := lifecycle.RoleLabelFor(domainRole(role), locale)
	color, ok := badgeColors[lifecycle.RoleBadgeClassFor(domainRole(role))]
	if !ok {
		return label
	}
	return t.r.NewStyle().Foreground(color).Render(label)
}

// table lays rows out in left-aligned columns sized to the widest cell.
func (t theme) table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	line := func(cells []string, style *lipgloss.Style) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if style != nil {
				cell = style.Render(cell)
			}
			parts[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteByte('\n')
	}
	line(headers, &t.header)
	for _, row := range rows {
		line(row, nil)
	}
	if len(rows) == 0 {
		b.WriteString(t.muted.Render("(none)"))
		b.WriteByte('\n')
	}
	return b.String()
}

func (t theme) failure(err error) string {
	msg := err.Error()
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Code != "" {
		msg = fmt.Sprintf("%s [%s]", msg, apiErr.Code)
	}
	return t.errorS.Render("error:") + " " + msg
}
