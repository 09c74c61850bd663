package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuSubmenuParents(t *testing.T) {
	items := Menu()
	require.NotEmpty(t, items)
	assert.False(t, items[0].HasSubmenu(), "Home navigates directly")

	var gems bool
	for _, it := range items {
		if it.Title == "Gems" {
			gems = true
			assert.True(t, it.HasSubmenu())
			assert.Len(t, it.Children, 3)
		}
	}
	assert.True(t, gems)
}

func TestEveryMenuHrefResolves(t *testing.T) {
	for _, it := range Menu() {
		assert.NotEmpty(t, Lookup(it.Href).Title, it.Href)
		for _, child := range it.Children {
			assert.NotEmpty(t, Lookup(child.Href).Title, child.Href)
		}
	}
}

func TestLookupUnknownBuildsStub(t *testing.T) {
	p := Lookup("/testing/specific-gravity")
	assert.Equal(t, "Specific Gravity", p.Title)
	assert.Empty(t, p.Sections)

	assert.Equal(t, "Gems Hub", titleFromHref("/"))
}

func TestHomeHasAnchoredSections(t *testing.T) {
	p := Lookup(HomeHref)
	require.Len(t, p.Sections, 3)
	assert.Equal(t, "#precious", p.Sections[0].Anchor)
	assert.Len(t, p.Sections[0].Cards, 4)
}
