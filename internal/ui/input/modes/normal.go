package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"gemshub/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyCtrlB:
		return []types.Action{types.ToggleMenuAction{}}, true

	case tea.KeyEsc:
		// Esc behaves like a click on the dimmed overlay
		if ctx.OverlayVisible() {
			return []types.Action{types.CloseOverlayAction{}}, true
		}
		if ctx.ResultsVisible() {
			return []types.Action{types.DismissResultsAction{}}, true
		}
		return nil, false

	case tea.KeyTab:
		if ctx.SidebarVisible() {
			return []types.Action{types.SwitchFocusAction{}}, true
		}
		return nil, false

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if ctx.SidebarVisible() && ctx.Focus() == types.FocusSidebar {
			return []types.Action{types.ActivateAction{}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "m":
		return []types.Action{types.ToggleMenuAction{}}, true
	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case "[":
		return []types.Action{types.JumpToSectionAction{Index: types.SectionPrevious}}, true
	case "]":
		return []types.Action{types.JumpToSectionAction{Index: types.SectionNext}}, true
	case "?":
		return []types.Action{types.OpenHelpAction{}}, true
	case "c":
		return []types.Action{types.OpenCatalogAction{}}, true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.Runes[0] - '1')
		if idx < ctx.SectionCount() {
			return []types.Action{types.JumpToSectionAction{Index: idx}}, true
		}
		return nil, false
	}

	return nil, false
}
