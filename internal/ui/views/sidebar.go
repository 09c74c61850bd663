package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gemshub/internal/ui/state"
)

// SidebarView is what the sidebar needs to draw itself
type SidebarView struct {
	Rows        []state.SidebarRow
	Cursor      int
	Expanded    int
	CurrentHref string
	Focused     bool
	Width       int
	Height      int
}

// RenderSidebar draws one line per row, padded to the sidebar box
func (r *Renderer) RenderSidebar(v SidebarView) string {
	lines := make([]string, 0, v.Height)
	for i, row := range v.Rows {
		if len(lines) == v.Height {
			break
		}
		lines = append(lines, r.sidebarLine(v, i, row))
	}
	for len(lines) < v.Height {
		lines = append(lines, "")
	}
	box := r.styles.Sidebar.Width(v.Width).MaxWidth(v.Width)
	for i, line := range lines {
		lines[i] = box.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) sidebarLine(v SidebarView, i int, row state.SidebarRow) string {
	var b strings.Builder
	if row.IsChild() {
		b.WriteString("    ")
	} else {
		b.WriteString(" ")
	}

	label := row.Item.Title
	style := r.styles.MenuItem
	if row.IsChild() {
		style = r.styles.Submenu
	}
	if row.Item.Href == v.CurrentHref {
		style = r.styles.MenuCurrent
	}
	b.WriteString(style.Render(label))

	if row.Item.HasSubmenu() {
		arrow := "▸"
		if row.Parent == v.Expanded {
			arrow = "▾"
		}
		pad := v.Width - 1 - lipgloss.Width(b.String()) - 1
		if pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(r.styles.Dim.Render(arrow))
	}

	line := b.String()
	if v.Focused && i == v.Cursor {
		line = r.styles.MenuCursor.Width(v.Width).Render(line)
	}
	return line
}
