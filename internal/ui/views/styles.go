package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Card colours for the reveal fade
const (
	CardDimColor    = "#3a3a3a"
	CardBorderColor = "#af87ff"
	CardTitleColor  = "#ffd75f"
	CardBodyColor   = "#d0d0d0"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Toggle        lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Section       lipgloss.Style
	SearchBox     lipgloss.Style
	SearchActive  lipgloss.Style
	Result        lipgloss.Style
	ResultCurrent lipgloss.Style
	ResultLink    lipgloss.Style
	ResultEmpty   lipgloss.Style
	Sidebar       lipgloss.Style
	MenuItem      lipgloss.Style
	MenuCurrent   lipgloss.Style
	MenuCursor    lipgloss.Style
	Submenu       lipgloss.Style
	Overlay       lipgloss.Style
	InfoBox       lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Toggle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:    lipgloss.NewStyle().Faint(true),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		SearchBox: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")),
		SearchActive: lipgloss.NewStyle().
			Background(lipgloss.Color("238")).
			Foreground(lipgloss.Color("255")),
		Result:        lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("252")),
		ResultCurrent: lipgloss.NewStyle().Background(lipgloss.Color("61")).Foreground(lipgloss.Color("230")).Bold(true),
		ResultLink:    lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("244")),
		ResultEmpty:   lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("244")).Italic(true),
		Sidebar: lipgloss.NewStyle().
			Background(lipgloss.Color("234")),
		MenuItem:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuCurrent: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		MenuCursor:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Submenu:     lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Overlay:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
