package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gemshub/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search gems: ", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyUp, tea.KeyShiftTab:
		if ctx.ResultsVisible() {
			return []types.Action{types.SearchNavigateAction{Direction: "prev"}}, true
		}
		return nil, true
	case tea.KeyDown, tea.KeyTab:
		if ctx.ResultsVisible() {
			return []types.Action{types.SearchNavigateAction{Direction: "next"}}, true
		}
		return nil, true
	case tea.KeyEnter:
		if ctx.ResultsVisible() {
			return []types.Action{types.CopyResultAction{}}, true
		}
		return nil, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
