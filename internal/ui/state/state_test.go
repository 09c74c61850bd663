package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemshub/internal/site"
)

func TestNewAppStateStartsHome(t *testing.T) {
	s := NewAppState(site.Menu())
	assert.Equal(t, site.HomeHref, s.CurrentHref)
	assert.NotEmpty(t, s.Page.Sections)
	assert.Equal(t, -1, s.CatalogCount)
}

func TestRowsOnlyExpandsOneParent(t *testing.T) {
	s := NewAppState(site.Menu())

	collapsed := s.Rows(-1)
	assert.Len(t, collapsed, len(s.Menu))
	for _, r := range collapsed {
		assert.False(t, r.IsChild())
	}

	// Gems is the second item
	expanded := s.Rows(1)
	require.Len(t, expanded, len(s.Menu)+len(s.Menu[1].Children))
	assert.Equal(t, "Gems", expanded[1].Item.Title)
	assert.True(t, expanded[2].IsChild())
	assert.Equal(t, 1, expanded[2].Parent)
	assert.Equal(t, 0, expanded[2].Child)
	assert.Equal(t, "Investments", expanded[2+len(s.Menu[1].Children)].Item.Title)
}

func TestMoveCursorClamps(t *testing.T) {
	s := NewAppState(site.Menu())
	s.MoveCursor(-3, 5)
	assert.Equal(t, 0, s.SidebarCursor)
	s.MoveCursor(10, 5)
	assert.Equal(t, 4, s.SidebarCursor)
	s.MoveCursor(1, 0)
	assert.Equal(t, 0, s.SidebarCursor)
}

func TestSectionIndex(t *testing.T) {
	s := NewAppState(site.Menu())
	assert.Equal(t, 0, s.SectionIndex("#precious"))
	assert.Equal(t, -1, s.SectionIndex("#missing"))
}
