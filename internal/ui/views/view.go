package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gemshub/internal/search"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Layout        Layout
	Icon          string
	SearchInput   string // rendered text input
	SearchFocused bool
	Search        search.State
	Sidebar       SidebarView
	Content       string // visible slice of the content viewport
	Overlay       bool
	StatusMessage string
	ModeName      string
	HelpLine      string
	ShowHelp      bool
	HelpContent   string
	ShowCatalog   bool
	CatalogText   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the shared styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete frame
func (r *Renderer) Render(v ViewState) string {
	l := v.Layout
	if l.Width <= 0 || l.Height <= 0 {
		return "Loading..."
	}

	body := r.renderBody(v)
	frame := strings.Join([]string{
		r.renderHeader(v),
		body,
		r.renderStatus(v),
	}, "\n")

	if l.Results.H > 0 {
		frame = PlaceOverlay(l.Results.X, l.Results.Y, r.RenderResults(v.Search, l.Results.W, l.Results.H), frame)
	}

	if v.ShowCatalog && v.CatalogText != "" {
		return r.popupRender.RenderPopupOverlay(frame, v.CatalogText, l.Height, l.Width, r.styles.InfoBox)
	}
	if v.ShowHelp && v.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(frame, v.HelpContent, l.Height, l.Width, r.styles.InfoBox)
	}
	return frame
}

func (r *Renderer) renderHeader(v ViewState) string {
	l := v.Layout
	toggle := r.styles.Toggle.Width(l.Toggle.W).Align(lipgloss.Center).Render(v.Icon)
	title := r.styles.Title.Render("Gems Hub")
	left := toggle + " " + title

	box := r.styles.SearchBox
	if v.SearchFocused {
		box = r.styles.SearchActive
	}
	searchBox := ""
	if l.Search.W > 0 {
		searchBox = box.Width(l.Search.W).MaxWidth(l.Search.W).Render(ansi.Truncate(v.SearchInput, l.Search.W, ""))
	}

	pad := l.Width - lipgloss.Width(left) - lipgloss.Width(searchBox)
	if pad < 1 {
		return ansi.Truncate(left, max(l.Search.X-1, 0), "") + " " + searchBox
	}
	return left + strings.Repeat(" ", pad) + searchBox
}

func (r *Renderer) renderBody(v ViewState) string {
	l := v.Layout
	if l.Content.H <= 0 {
		return ""
	}

	content := fitBlock(v.Content, l.Content.W, l.Content.H)
	if l.Sidebar.W == 0 {
		return content
	}

	sidebar := r.RenderSidebar(v.Sidebar)
	if !v.Overlay {
		return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	}

	// Narrow: the sidebar floats over a dimmed page
	dimmed := fitBlock(Desaturate(v.Content), l.Width, l.Content.H)
	return PlaceOverlay(0, 0, sidebar, dimmed)
}

func (r *Renderer) renderStatus(v ViewState) string {
	l := v.Layout
	left := r.styles.Status.Render(fmt.Sprintf("[%s]", v.ModeName))
	if v.StatusMessage != "" {
		left += " " + r.styles.StatusSuccess.Render(v.StatusMessage)
	}
	right := r.styles.Help.Render(v.HelpLine)
	pad := l.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return ansi.Truncate(left, l.Width, "…")
	}
	return left + strings.Repeat(" ", pad) + right
}

// RenderResults draws the search results panel, one row per result
func (r *Renderer) RenderResults(s search.State, width, height int) string {
	var lines []string
	if len(s.Results) == 0 {
		lines = append(lines, r.styles.ResultEmpty.Width(width).Render(" "+search.EmptyMessage))
	}
	for i, res := range s.Results {
		name := " " + res.Name
		link := res.Link + " "
		style := r.styles.Result
		linkStyle := r.styles.ResultLink
		if i == s.Selected {
			style = r.styles.ResultCurrent
			linkStyle = r.styles.ResultCurrent
		}
		gap := width - ansi.StringWidth(name) - ansi.StringWidth(link)
		var line string
		if gap >= 1 {
			line = style.Render(name+strings.Repeat(" ", gap)) + linkStyle.Render(link)
		} else {
			line = style.Width(width).Render(ansi.Truncate(name, width, "…"))
		}
		lines = append(lines, line)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// ResultRows is how many lines RenderResults needs for s
func ResultRows(s search.State) int {
	if !s.Visible {
		return 0
	}
	if len(s.Results) == 0 {
		return 1
	}
	return len(s.Results)
}

// fitBlock pads or cuts s to exactly w columns and h lines
func fitBlock(s string, w, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	for i, line := range lines {
		line = ansi.Truncate(line, w, "")
		if pad := w - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
