package views

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"gemshub/internal/domain"
	"gemshub/internal/ui/motion"
)

// ContentDoc is a rendered page plus the line geometry the animations need
type ContentDoc struct {
	Text         string
	Spans        []motion.Span // one per card, in page order
	SectionLines []int         // first line of each section
}

// Lines returns the number of lines in the document
func (d ContentDoc) Lines() int {
	if d.Text == "" {
		return 0
	}
	return strings.Count(d.Text, "\n") + 1
}

// ContentRenderer renders pages. Markdown output is cached per width.
type ContentRenderer struct {
	styles *Styles

	mu       sync.Mutex
	md       *glamour.TermRenderer
	mdWidth  int
	mdStyle  string
	mdCache  map[string]string
	disabled bool
}

// NewContentRenderer creates a renderer; style is a glamour standard style
// name such as "dark", "light" or "notty"
func NewContentRenderer(styles *Styles, style string) *ContentRenderer {
	if style == "" {
		style = "dark"
	}
	return &ContentRenderer{
		styles:  styles,
		mdStyle: style,
		mdCache: make(map[string]string),
	}
}

// Markdown renders text with glamour, falling back to the raw text
func (c *ContentRenderer) Markdown(text string, width int) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if width != c.mdWidth || c.md == nil && !c.disabled {
		c.md = nil
		c.disabled = false
		c.mdCache = make(map[string]string)
		c.mdWidth = width
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(c.mdStyle),
			glamour.WithWordWrap(max(width-4, 20)),
		)
		if err != nil {
			c.disabled = true
		} else {
			c.md = r
		}
	}
	if c.md == nil {
		return text
	}
	if out, ok := c.mdCache[text]; ok {
		return out
	}
	out, err := c.md.Render(text)
	if err != nil {
		return text
	}
	out = strings.Trim(out, "\n")
	c.mdCache[text] = out
	return out
}

// Render lays out a page. progress gives the reveal fade of card i.
func (c *ContentRenderer) Render(page domain.Page, width int, progress func(int) float64) ContentDoc {
	var doc ContentDoc
	var lines []string
	add := func(s string) {
		lines = append(lines, strings.Split(s, "\n")...)
	}

	add(" " + c.styles.Title.Render(page.Title))
	add("")
	if page.Description != "" {
		add(c.Markdown(page.Description, width))
		add("")
	}

	cardW := max(min(width-4, 60), 10)
	card := 0
	for _, sec := range page.Sections {
		doc.SectionLines = append(doc.SectionLines, len(lines))
		add(" " + c.styles.Section.Render(sec.Title) + " " + c.styles.Dim.Render(sec.Anchor))
		add("")
		for _, cd := range sec.Cards {
			p := 1.0
			if progress != nil {
				p = progress(card)
			}
			rendered := c.renderCard(cd, cardW, p)
			doc.Spans = append(doc.Spans, motion.Span{Start: len(lines), Lines: lipgloss.Height(rendered)})
			add(lipgloss.NewStyle().MarginLeft(1).Render(rendered))
			card++
		}
		add("")
	}

	doc.Text = strings.Join(lines, "\n")
	return doc
}

func (c *ContentRenderer) renderCard(cd domain.Card, width int, p float64) string {
	border := motion.Blend(CardDimColor, CardBorderColor, p)
	title := motion.Blend(CardDimColor, CardTitleColor, p)
	body := motion.Blend(CardDimColor, CardBodyColor, p)

	inner := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(title)).Render(cd.Title),
		lipgloss.NewStyle().Foreground(lipgloss.Color(body)).Render(cd.Body),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(width).
		Render(inner)
}
