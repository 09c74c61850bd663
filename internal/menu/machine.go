// Package menu holds the sidebar visibility state machine. It knows nothing
// about rendering; the UI feeds it events and reads back Effects.
package menu

import "gemshub/internal/domain"

// Event is a UI interaction that may change sidebar state
type Event int

const (
	ToggleClicked Event = iota
	OverlayClicked
	OutsideClicked
	LinkActivated
	SubmenuLinkActivated
	ResizeSettled
)

var eventNames = map[Event]string{
	ToggleClicked:        "toggle",
	OverlayClicked:       "overlay",
	OutsideClicked:       "outside",
	LinkActivated:        "link",
	SubmenuLinkActivated: "submenu-link",
	ResizeSettled:        "resize",
}

func (e Event) String() string {
	if n, ok := eventNames[e]; ok {
		return n
	}
	return "unknown"
}

// Input is an event plus the facts guards look at
type Input struct {
	Event Event
	Width int // viewport width when the event happened
	// SubmenuParent marks a LinkActivated on an item that expands instead of navigating
	SubmenuParent bool
}

// Guard decides whether a transition applies
type Guard func(state domain.MenuState, in Input, breakpoint int) bool

// Transition is one row of the table
type Transition struct {
	Event Event
	Guard Guard
	Next  domain.MenuState
}

func isOpen(state domain.MenuState, _ Input, _ int) bool   { return state == domain.MenuOpen }
func isClosed(state domain.MenuState, _ Input, _ int) bool { return state == domain.MenuClosed }
func always(domain.MenuState, Input, int) bool             { return true }

func narrow(_ domain.MenuState, in Input, breakpoint int) bool {
	return in.Width <= breakpoint
}

func narrowPlainLink(s domain.MenuState, in Input, breakpoint int) bool {
	return narrow(s, in, breakpoint) && !in.SubmenuParent
}

func openAndWide(state domain.MenuState, in Input, breakpoint int) bool {
	return state == domain.MenuOpen && in.Width > breakpoint
}

// Transitions is evaluated top to bottom; the first matching row wins
var Transitions = []Transition{
	{Event: ToggleClicked, Guard: isClosed, Next: domain.MenuOpen},
	{Event: ToggleClicked, Guard: isOpen, Next: domain.MenuClosed},
	{Event: OverlayClicked, Guard: always, Next: domain.MenuClosed},
	{Event: OutsideClicked, Guard: narrow, Next: domain.MenuClosed},
	{Event: LinkActivated, Guard: narrowPlainLink, Next: domain.MenuClosed},
	{Event: SubmenuLinkActivated, Guard: narrow, Next: domain.MenuClosed},
	{Event: ResizeSettled, Guard: openAndWide, Next: domain.MenuClosed},
}

// Next returns the state after in, and whether any row matched
func Next(state domain.MenuState, in Input, breakpoint int) (domain.MenuState, bool) {
	for _, t := range Transitions {
		if t.Event == in.Event && t.Guard(state, in, breakpoint) {
			return t.Next, true
		}
	}
	return state, false
}
