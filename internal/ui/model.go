package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"gemshub/internal/catalog"
	"gemshub/internal/config"
	"gemshub/internal/eventbus"
	"gemshub/internal/menu"
	"gemshub/internal/search"
	"gemshub/internal/site"
	"gemshub/internal/ui/input"
	inputtypes "gemshub/internal/ui/input/types"
	"gemshub/internal/ui/motion"
	"gemshub/internal/ui/state"
	"gemshub/internal/ui/views"
)

// statusTTL is how long transient status messages stay up
const statusTTL = 3 * time.Second

// Options wires the model to its collaborators
type Options struct {
	Config  *config.Config
	Bus     eventbus.EventBus // may be nil
	Catalog catalog.Source    // may be nil; search then finds nothing

	// CopyLink writes a link to the system clipboard. Defaults to atotto/clipboard.
	CopyLink func(string) error

	// MarkdownStyle is the glamour style for page descriptions
	MarkdownStyle string
}

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	state   *state.AppState
	catalog catalog.Source

	menu     *menu.Controller
	debounce menu.Debouncer
	search   *search.Service

	help         help.Model
	keys         KeyMap
	helpRender   *HelpRenderer
	renderer     *views.Renderer
	content      *views.ContentRenderer
	viewport     viewport.Model
	doc          views.ContentDoc
	layout       views.Layout
	inputHandler *input.Handler

	scroller  *motion.Scroller
	reveal    *motion.Reveal
	animating bool

	copyLink    func(string) error
	pagers      *PagerOps
	inPagerMode bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	copyLink := opts.CopyLink
	if copyLink == nil {
		copyLink = clipboard.WriteAll
	}

	styles := views.NewStyles()
	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		state:        state.NewAppState(site.Menu()),
		catalog:      opts.Catalog,
		menu:         menu.NewController(cfg.UISettings.Breakpoint(), opts.Bus),
		search:       search.NewService(opts.Catalog, opts.Bus),
		help:         help.New(),
		keys:         DefaultKeyMap(),
		helpRender:   NewHelpRenderer(),
		renderer:     views.NewRenderer(styles),
		content:      views.NewContentRenderer(styles, opts.MarkdownStyle),
		viewport:     viewport.New(0, 0),
		inputHandler: input.New(),
		scroller:     motion.NewScroller(cfg.UISettings.Animations),
		reveal:       motion.NewReveal(cfg.UISettings.Animations),
		copyLink:     copyLink,
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pagers = NewPagerOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Gems Hub")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Popups swallow keys until closed
		if m.state.ShowHelp || m.state.ShowCatalog {
			switch msg.String() {
			case "esc", "q", "?", "c", "enter":
				m.state.ShowHelp = false
				m.state.ShowCatalog = false
				m.state.CatalogContent = ""
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		// Text input needs blink messages; everything else is ours
		inputCmd := m.inputHandler.Update(msg)
		_, cmd := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	eff := m.menu.Effects()
	searchFocused := m.inputHandler.CurrentMode() == inputtypes.ModeSearch
	ti := m.inputHandler.TextInput()

	vs := views.ViewState{
		Layout:        m.layout,
		Icon:          eff.Icon,
		SearchInput:   "/ " + ti.View(),
		SearchFocused: searchFocused,
		Search:        m.search.Snapshot(),
		Sidebar: views.SidebarView{
			Rows:        m.state.Rows(m.menu.ExpandedIndex()),
			Cursor:      m.state.SidebarCursor,
			Expanded:    m.menu.ExpandedIndex(),
			CurrentHref: m.state.CurrentHref,
			Focused:     m.state.Focus == inputtypes.FocusSidebar,
			Width:       m.layout.Sidebar.W,
			Height:      m.layout.Sidebar.H,
		},
		Content:       m.viewport.View(),
		Overlay:       eff.OverlayVisible,
		StatusMessage: m.state.StatusMessage,
		ModeName:      m.inputHandler.ModeName(),
		HelpLine:      m.help.ShortHelpView(m.keys.ShortHelp()),
		ShowHelp:      m.state.ShowHelp,
		HelpContent:   m.helpRender.RenderHelp(m.keys),
		ShowCatalog:   m.state.ShowCatalog,
		CatalogText:   m.state.CatalogContent,
	}
	return m.renderer.Render(vs)
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:  m.state,
		Menu:   m.menu,
		Search: m.search,
	}
}

// resize records the new size at once; the menu only reacts after the
// width has settled
func (m *Model) resize(width, height int) tea.Cmd {
	m.state.Width = width
	m.state.Height = height
	m.help.Width = width
	m.menu.SetWidth(width)
	m.relayout()
	m.renderContent()

	token := m.debounce.Observe(width)
	settle := tea.Tick(m.config.UISettings.ResizeSettle(), func(time.Time) tea.Msg {
		return resizeSettledMsg{token: token}
	})
	return tea.Batch(settle, m.observeReveal())
}

// relayout recomputes the frame geometry from the current state
func (m *Model) relayout() {
	eff := m.menu.Effects()
	rows := views.ResultRows(m.search.Snapshot())
	prev := m.layout.Content
	m.layout = views.ComputeLayout(m.state.Width, m.state.Height, eff.SidebarVisible, eff.OverlayVisible, rows)

	m.viewport.Width = m.layout.Content.W
	m.viewport.Height = m.layout.Content.H
	if prev.W != m.layout.Content.W {
		m.renderContent()
	}

	// Keep the sidebar cursor on a real row
	m.state.MoveCursor(0, len(m.state.Rows(m.menu.ExpandedIndex())))
	if !eff.SidebarVisible {
		m.state.Focus = inputtypes.FocusContent
	}
}

// renderContent re-renders the page into the viewport, keeping the scroll offset
func (m *Model) renderContent() {
	if m.layout.Content.W <= 0 {
		return
	}
	offset := m.viewport.YOffset
	m.doc = m.content.Render(m.state.Page, m.layout.Content.W, m.reveal.Progress)
	m.viewport.SetContent(m.doc.Text)
	m.viewport.SetYOffset(offset)
}

// observeReveal starts the fade of cards that scrolled into view
func (m *Model) observeReveal() tea.Cmd {
	if m.reveal.Observe(m.doc.Spans, m.viewport.YOffset, m.viewport.Height) {
		m.renderContent()
		return m.startAnimation()
	}
	return nil
}

func (m *Model) startAnimation() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return frame()
}

// frame schedules the next animation frame
func frame() tea.Cmd {
	return tea.Tick(motion.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) menuChanged() {
	m.relayout()
}

// navigate shows the page at href from the top
func (m *Model) navigate(href string) tea.Cmd {
	log.Printf("Navigate: %s", href)
	m.state.Navigate(href)
	m.scroller.Stop()
	m.reveal.Reset()
	m.viewport.SetYOffset(0)
	m.renderContent()
	m.viewport.GotoTop()
	return m.observeReveal()
}

// activateRow follows the sidebar row at index i
func (m *Model) activateRow(i int) tea.Cmd {
	rows := m.state.Rows(m.menu.ExpandedIndex())
	if i < 0 || i >= len(rows) {
		return nil
	}
	row := rows[i]

	switch {
	case !row.IsChild() && row.Item.HasSubmenu():
		m.menu.ToggleSubmenu(row.Parent)
		m.menu.Dispatch(menu.Input{Event: menu.LinkActivated, SubmenuParent: true})
		m.menuChanged()
		return nil

	case row.IsChild():
		cmd := m.navigate(row.Item.Href)
		m.menu.Dispatch(menu.Input{Event: menu.SubmenuLinkActivated})
		m.menuChanged()
		return cmd

	default:
		cmd := m.navigate(row.Item.Href)
		m.menu.Dispatch(menu.Input{Event: menu.LinkActivated})
		m.menuChanged()
		return cmd
	}
}

// scrollBy moves the content by delta lines, cancelling any smooth scroll
func (m *Model) scrollBy(delta int) tea.Cmd {
	m.scroller.Stop()
	m.viewport.SetYOffset(m.viewport.YOffset + delta)
	return m.observeReveal()
}

// scrollToSection eases the content to section i
func (m *Model) scrollToSection(i int) tea.Cmd {
	if i < 0 || i >= len(m.doc.SectionLines) {
		return nil
	}
	target := m.doc.SectionLines[i]
	maxOffset := max(m.doc.Lines()-m.viewport.Height, 0)
	target = min(target, maxOffset)

	m.scroller.ScrollTo(m.viewport.YOffset, target)
	if !m.scroller.Active() {
		m.viewport.SetYOffset(m.scroller.Offset())
		return m.observeReveal()
	}
	return m.startAnimation()
}

// sectionRelative finds the section before or after the current scroll offset
func (m *Model) sectionRelative(next bool) int {
	offset := m.viewport.YOffset
	if m.scroller.Active() {
		offset = m.scroller.Offset()
	}
	if next {
		for i, line := range m.doc.SectionLines {
			if line > offset {
				return i
			}
		}
		return -1
	}
	for i := len(m.doc.SectionLines) - 1; i >= 0; i-- {
		if m.doc.SectionLines[i] < offset {
			return i
		}
	}
	return -1
}

// startQuery issues a search for text and resolves it off the UI goroutine
func (m *Model) startQuery(text string) tea.Cmd {
	req, ok := m.search.Begin(text)
	m.relayout()
	if !ok {
		return nil
	}
	svc := m.search
	return func() tea.Msg {
		return searchResultMsg{outcome: svc.Run(context.Background(), req)}
	}
}

// copyCurrent copies the highlighted result's absolute link
func (m *Model) copyCurrent() tea.Cmd {
	res, ok := m.search.Current()
	if !ok {
		return nil
	}
	url := m.config.SiteURL(res.Link)
	copyLink := m.copyLink
	return func() tea.Msg {
		return clipboardMsg{url: url, err: copyLink(url)}
	}
}

// openPager shows content in ov, or reports why it could not
func (m *Model) openPager(kind pagerKind, content string) tea.Cmd {
	pagers := m.pagers
	program := m.program
	return func() tea.Msg {
		if program == nil {
			return pagerMsg{kind: kind, content: content, err: errNoProgram}
		}
		program.Send(pauseRenderingMsg{})
		err := pagers.Show(content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{kind: kind, content: content, err: err}
	}
}

// openCatalog loads the catalog, then pages through it
func (m *Model) openCatalog() tea.Cmd {
	source := m.catalog
	renderer := m.helpRender
	pager := m.openPager
	return func() tea.Msg {
		var content string
		if source == nil {
			content = renderer.RenderCatalog(nil)
		} else {
			content = renderer.RenderCatalog(source.Ensure(context.Background()))
		}
		return pager(pagerCatalog, content)()
	}
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.state.StatusMessage = text
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.ToggleMenuAction:
		m.menu.Dispatch(menu.Input{Event: menu.ToggleClicked})
		m.menuChanged()
		if m.menu.Effects().SidebarVisible {
			m.state.Focus = inputtypes.FocusSidebar
		}

	case inputtypes.CloseOverlayAction:
		m.menu.Dispatch(menu.Input{Event: menu.OverlayClicked})
		m.menuChanged()

	case inputtypes.SwitchFocusAction:
		if m.state.Focus == inputtypes.FocusSidebar {
			m.state.Focus = inputtypes.FocusContent
		} else {
			m.state.Focus = inputtypes.FocusSidebar
		}

	case inputtypes.NavigateAction:
		if m.state.Focus == inputtypes.FocusSidebar && m.menu.Effects().SidebarVisible {
			total := len(m.state.Rows(m.menu.ExpandedIndex()))
			switch a.Direction {
			case "up":
				m.state.MoveCursor(-1, total)
			case "down":
				m.state.MoveCursor(1, total)
			case "pageup", "home":
				m.state.MoveCursor(-total, total)
			case "pagedown", "end":
				m.state.MoveCursor(total, total)
			}
			return nil
		}
		switch a.Direction {
		case "up":
			return m.scrollBy(-1)
		case "down":
			return m.scrollBy(1)
		case "pageup":
			return m.scrollBy(-m.viewport.Height)
		case "pagedown":
			return m.scrollBy(m.viewport.Height)
		case "home":
			return m.scrollBy(-m.viewport.YOffset)
		case "end":
			return m.scrollBy(m.doc.Lines())
		}

	case inputtypes.ActivateAction:
		return m.activateRow(m.state.SidebarCursor)

	case inputtypes.JumpToSectionAction:
		switch a.Index {
		case inputtypes.SectionNext:
			return m.scrollToSection(m.sectionRelative(true))
		case inputtypes.SectionPrevious:
			return m.scrollToSection(m.sectionRelative(false))
		default:
			return m.scrollToSection(a.Index)
		}

	case inputtypes.UpdateTextAction:
		return m.startQuery(a.Text)

	case inputtypes.DismissResultsAction:
		m.search.Dismiss()
		m.relayout()

	case inputtypes.SearchNavigateAction:
		switch a.Direction {
		case "next":
			m.search.NavigateNext()
		case "prev":
			m.search.NavigatePrevious()
		}

	case inputtypes.CopyResultAction:
		return m.copyCurrent()

	case inputtypes.OpenHelpAction:
		return m.openPager(pagerHelp, m.helpRender.RenderHelp(m.keys))

	case inputtypes.OpenCatalogAction:
		return m.openCatalog()

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleMouse is the single delegated click handler for the whole frame
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	region := m.layout.HitTest(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if region == views.RegionContent || region == views.RegionOverlay {
			return m.scrollBy(-3)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if region == views.RegionContent || region == views.RegionOverlay {
			return m.scrollBy(3)
		}
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.state.ShowHelp || m.state.ShowCatalog {
		m.state.ShowHelp = false
		m.state.ShowCatalog = false
		return nil
	}

	var cmds []tea.Cmd

	// Any click outside the search widget hides the results
	if !region.InSearchWidget() {
		if m.search.Visible() {
			m.search.Dismiss()
			m.relayout()
		}
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			actions, cmd := m.inputHandler.EnterMode(inputtypes.ModeNormal, m.inputContext())
			cmds = append(cmds, cmd)
			for _, a := range actions {
				cmds = append(cmds, m.processAction(a))
			}
		}
	}

	switch region {
	case views.RegionToggle:
		m.menu.Dispatch(menu.Input{Event: menu.ToggleClicked})
		m.menuChanged()

	case views.RegionResults:
		m.search.Select(m.layout.Results.RowAt(msg.Y))
		cmds = append(cmds, m.copyCurrent())

	case views.RegionSearch:
		_, cmd := m.inputHandler.EnterMode(inputtypes.ModeSearch, m.inputContext())
		cmds = append(cmds, cmd)

	case views.RegionSidebar:
		i := m.layout.Sidebar.RowAt(msg.Y)
		if i < len(m.state.Rows(m.menu.ExpandedIndex())) {
			m.state.Focus = inputtypes.FocusSidebar
			m.state.SidebarCursor = i
			cmds = append(cmds, m.activateRow(i))
		}

	case views.RegionOverlay:
		m.menu.Dispatch(menu.Input{Event: menu.OverlayClicked})
		m.menuChanged()

	default:
		m.menu.Dispatch(menu.Input{Event: menu.OutsideClicked})
		m.menuChanged()
	}

	return tea.Batch(cmds...)
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case resizeSettledMsg:
		width, ok := m.debounce.Settle(msg.token)
		if !ok {
			return m, nil
		}
		if m.menu.Dispatch(menu.Input{Event: menu.ResizeSettled, Width: width}) {
			m.menuChanged()
		}
		return m, nil

	case searchResultMsg:
		if m.search.Accept(msg.outcome) {
			m.relayout()
		}
		return m, nil

	case frameMsg:
		running := false
		if m.scroller.Active() {
			m.viewport.SetYOffset(m.scroller.Step())
			running = m.scroller.Active()
		}
		m.reveal.Observe(m.doc.Spans, m.viewport.YOffset, m.viewport.Height)
		if m.reveal.Step() {
			running = true
		}
		m.renderContent()
		if running && !m.inPagerMode {
			return m, frame()
		}
		m.animating = false
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("Clipboard: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("Link: %s", msg.url))
		}
		if m.bus != nil {
			m.bus.Publish(eventbus.LinkCopiedEvent{URL: msg.url})
		}
		return m, m.setStatus(fmt.Sprintf("Copied %s", msg.url))

	case pagerMsg:
		if msg.err != nil {
			// Pager unavailable, fall back to an in-app popup
			log.Printf("%s pager failed: %v, falling back to popup", msg.kind, msg.err)
			switch msg.kind {
			case pagerCatalog:
				m.state.ShowCatalog = true
				m.state.CatalogContent = msg.content
			default:
				m.state.ShowHelp = true
			}
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		if m.animating {
			m.animating = false
			return m, m.startAnimation()
		}
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(e eventbus.DomainEvent) tea.Cmd {
	switch event := e.(type) {
	case eventbus.CatalogLoadedEvent:
		m.state.CatalogCount = event.Count
		return m.setStatus(fmt.Sprintf("%d gems indexed", event.Count))
	case eventbus.CatalogFailedEvent:
		// Already logged by the catalog; search just shows no results
		m.state.CatalogCount = -1
	case eventbus.MenuChangedEvent:
		// The controller already applied the change
	}
	return nil
}
