package input

import (
	"gemshub/internal/menu"
	"gemshub/internal/search"
	"gemshub/internal/ui/input/types"
	"gemshub/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State  *state.AppState
	Menu   *menu.Controller
	Search *search.Service
}

// SidebarVisible reports whether the sidebar is on screen
func (c *ModelContext) SidebarVisible() bool {
	return c.Menu != nil && c.Menu.Effects().SidebarVisible
}

// OverlayVisible reports whether the dimmed overlay covers the content
func (c *ModelContext) OverlayVisible() bool {
	return c.Menu != nil && c.Menu.Effects().OverlayVisible
}

func (c *ModelContext) Focus() types.Focus {
	return c.State.Focus
}

// ResultsVisible reports whether the search results panel is shown
func (c *ModelContext) ResultsVisible() bool {
	return c.Search != nil && c.Search.Visible()
}

func (c *ModelContext) SectionCount() int {
	return len(c.State.Page.Sections)
}
