package domain

import (
	"encoding/json"
	"strings"
)

// GemRecord is a single searchable entry of the gem catalog
type GemRecord struct {
	Name string
}

// gemRecordWire is the shape served by the catalog endpoint
type gemRecordWire struct {
	GemTypeName string `json:"GemTypeName"`
	AltName     string `json:"gem_type_name"` // spelling used by the gemdb API
}

// UnmarshalJSON accepts both spellings of the gem type name
func (g *GemRecord) UnmarshalJSON(data []byte) error {
	var wire gemRecordWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	g.Name = wire.GemTypeName
	if strings.TrimSpace(g.Name) == "" {
		g.Name = wire.AltName
	}
	return nil
}

// MarshalJSON writes the record in the catalog endpoint shape
func (g GemRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		GemTypeName string `json:"GemTypeName"`
	}{g.Name})
}

// MenuState is the visibility of the sidebar
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// MenuItem is an entry of the sidebar. Items with children are submenu parents.
type MenuItem struct {
	Title    string
	Href     string
	Children []MenuItem
}

// HasSubmenu reports whether the item expands instead of navigating
func (m MenuItem) HasSubmenu() bool {
	return len(m.Children) > 0
}

// Page is the content shown in the main area for a menu destination
type Page struct {
	Href        string
	Title       string
	Description string
	Sections    []Section
}

// Section is an anchor target inside a page
type Section struct {
	Anchor string
	Title  string
	Cards  []Card
}

// Card is a single content block animated into view
type Card struct {
	Title string
	Body  string
}
