package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"gemshub/internal/domain"
	"gemshub/internal/search"
)

type pagerKind int

const (
	pagerHelp pagerKind = iota
	pagerCatalog
)

func (k pagerKind) String() string {
	if k == pagerCatalog {
		return "catalog"
	}
	return "help"
}

// errNoProgram means there is no terminal to hand to the pager
var errNoProgram = errors.New("program not set")

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	dim     lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		dim:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

var helpSections = []string{"Menu", "Search", "Other"}

// RenderHelp renders every binding of keys, grouped like FullHelp
func (r *HelpRenderer) RenderHelp(keys KeyMap) string {
	var help strings.Builder
	help.WriteString(r.title.Render("Gems Hub Help"))
	help.WriteString("\n")

	for i, group := range keys.FullHelp() {
		if i < len(helpSections) {
			help.WriteString(r.section.Render(helpSections[i]))
			help.WriteString("\n")
		}
		for _, b := range group {
			h := b.Help()
			help.WriteString("  " + r.key.Render(fmt.Sprintf("%-12s", h.Key)) + " " + r.desc.Render(h.Desc) + "\n")
		}
	}

	help.WriteString("\n")
	help.WriteString(r.dim.Render("  Click ☰ to open the menu, click outside the results to close them."))
	return help.String()
}

// RenderCatalog lists every gem in the catalog with its site link
func (r *HelpRenderer) RenderCatalog(records []domain.GemRecord) string {
	var b strings.Builder
	b.WriteString(r.title.Render(fmt.Sprintf("Gem catalog (%d)", len(records))))
	b.WriteString("\n")
	if len(records) == 0 {
		b.WriteString(r.dim.Render(search.EmptyMessage))
		return b.String()
	}
	for _, rec := range records {
		name := search.Sanitize(rec.Name)
		b.WriteString("  " + r.desc.Render(fmt.Sprintf("%-32s", name)) + " " + r.dim.Render(search.Link(rec.Name)) + "\n")
	}
	return b.String()
}

// PagerOps shows long text in ov, handing it the terminal meanwhile
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// Show displays content using the ov pager
func (p *PagerOps) Show(content string) error {
	if p == nil || p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
