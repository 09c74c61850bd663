package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Sidebar actions
type ToggleMenuAction struct{}

func (a ToggleMenuAction) Type() string { return "toggle_menu" }

type CloseOverlayAction struct{}

func (a CloseOverlayAction) Type() string { return "close_overlay" }

type SwitchFocusAction struct{}

func (a SwitchFocusAction) Type() string { return "switch_focus" }

type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// In-page anchors
type JumpToSectionAction struct {
	Index int // -1 and -2 for previous and next
}

func (a JumpToSectionAction) Type() string { return "jump_to_section" }

const (
	SectionPrevious = -1
	SectionNext     = -2
)

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type DismissResultsAction struct{}

func (a DismissResultsAction) Type() string { return "dismiss_results" }

type SearchNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SearchNavigateAction) Type() string { return "search_navigate" }

type CopyResultAction struct{}

func (a CopyResultAction) Type() string { return "copy_result" }

// Pager actions
type OpenHelpAction struct{}

func (a OpenHelpAction) Type() string { return "open_help" }

type OpenCatalogAction struct{}

func (a OpenCatalogAction) Type() string { return "open_catalog" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
