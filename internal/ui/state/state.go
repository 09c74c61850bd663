package state

import (
	"gemshub/internal/domain"
	"gemshub/internal/site"
	"gemshub/internal/ui/input/types"
)

// SidebarRow is one visible line of the sidebar
type SidebarRow struct {
	Item   domain.MenuItem
	Parent int // index of the top-level item
	Child  int // index within Parent's children, -1 for a top-level row
}

// IsChild reports whether the row is a submenu link
func (r SidebarRow) IsChild() bool {
	return r.Child >= 0
}

// AppState contains all the application state
type AppState struct {
	// Navigation data
	Menu        []domain.MenuItem
	CurrentHref string
	Page        domain.Page

	// Selection state
	SidebarCursor int // index into the visible sidebar rows
	Focus         types.Focus

	// UI state
	Width            int
	Height           int
	ShowHelp         bool
	HelpScrollOffset int
	ShowCatalog      bool
	CatalogContent   string
	StatusMessage    string // status bar message
	CatalogCount     int    // records in the cached catalog, -1 when unknown
}

// NewAppState creates a new application state on the home page
func NewAppState(menu []domain.MenuItem) *AppState {
	s := &AppState{
		Menu:         menu,
		CatalogCount: -1,
	}
	s.Navigate(site.HomeHref)
	return s
}

// Navigate shows the page for href
func (s *AppState) Navigate(href string) {
	s.CurrentHref = href
	s.Page = site.Lookup(href)
}

// Rows flattens the menu into visible rows. Only the submenu at expanded
// contributes its children.
func (s *AppState) Rows(expanded int) []SidebarRow {
	rows := make([]SidebarRow, 0, len(s.Menu))
	for i, item := range s.Menu {
		rows = append(rows, SidebarRow{Item: item, Parent: i, Child: -1})
		if i != expanded {
			continue
		}
		for j, child := range item.Children {
			rows = append(rows, SidebarRow{Item: child, Parent: i, Child: j})
		}
	}
	return rows
}

// MoveCursor moves the sidebar cursor by delta, clamped to [0, total)
func (s *AppState) MoveCursor(delta, total int) {
	if total <= 0 {
		s.SidebarCursor = 0
		return
	}
	s.SidebarCursor += delta
	if s.SidebarCursor < 0 {
		s.SidebarCursor = 0
	}
	if s.SidebarCursor >= total {
		s.SidebarCursor = total - 1
	}
}

// SectionIndex returns the position of anchor on the current page, or -1
func (s *AppState) SectionIndex(anchor string) int {
	for i, sec := range s.Page.Sections {
		if sec.Anchor == anchor {
			return i
		}
	}
	return -1
}
