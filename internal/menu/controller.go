package menu

import (
	"log"

	"gemshub/internal/domain"
	"gemshub/internal/eventbus"
)

// Toggle glyphs. The icon always mirrors the state.
const (
	IconClosed = "☰"
	IconOpen   = "✕"
)

// Effects are the observable results of the current state
type Effects struct {
	SidebarVisible bool
	OverlayVisible bool
	Icon           string
}

// Controller owns the sidebar state and submenu expansion
type Controller struct {
	state      domain.MenuState
	breakpoint int
	width      int
	expanded   int // index of the open submenu parent, -1 for none
	bus        eventbus.EventBus
}

// NewController starts Closed. bus may be nil.
func NewController(breakpoint int, bus eventbus.EventBus) *Controller {
	return &Controller{
		state:      domain.MenuClosed,
		breakpoint: breakpoint,
		expanded:   -1,
		bus:        bus,
	}
}

// State returns the current sidebar state
func (c *Controller) State() domain.MenuState {
	return c.state
}

// SetWidth records the live viewport width used by click guards
func (c *Controller) SetWidth(width int) {
	c.width = width
}

// Width returns the last recorded viewport width
func (c *Controller) Width() int {
	return c.width
}

// IsNarrow reports whether the viewport is at or below the breakpoint
func (c *Controller) IsNarrow() bool {
	return c.width <= c.breakpoint
}

// Dispatch runs an event through the transition table. It reports whether
// the state changed. Width defaults to the recorded viewport width.
func (c *Controller) Dispatch(in Input) bool {
	if in.Width == 0 {
		in.Width = c.width
	}
	next, matched := Next(c.state, in, c.breakpoint)
	if !matched {
		return false
	}
	return c.apply(next, in.Event.String())
}

// Toggle flips the state
func (c *Controller) Toggle() bool {
	return c.Dispatch(Input{Event: ToggleClicked})
}

// Open shows the sidebar; calling it while open is a no-op in effect
func (c *Controller) Open() bool {
	return c.apply(domain.MenuOpen, "open")
}

// Close hides the sidebar; calling it while closed is a no-op in effect
func (c *Controller) Close() bool {
	return c.apply(domain.MenuClosed, "close")
}

// Effects derives what the UI should show
func (c *Controller) Effects() Effects {
	open := c.state == domain.MenuOpen
	icon := IconClosed
	if open {
		icon = IconOpen
	}
	return Effects{
		SidebarVisible: open,
		OverlayVisible: open && c.IsNarrow(),
		Icon:           icon,
	}
}

// ToggleSubmenu expands parent i, collapsing any other; a second call collapses it
func (c *Controller) ToggleSubmenu(i int) {
	if c.expanded == i {
		c.expanded = -1
		return
	}
	c.expanded = i
}

// Expanded reports whether submenu parent i is open
func (c *Controller) Expanded(i int) bool {
	return c.expanded == i
}

// ExpandedIndex returns the open submenu parent, or -1
func (c *Controller) ExpandedIndex() int {
	return c.expanded
}

func (c *Controller) apply(next domain.MenuState, cause string) bool {
	prev := c.state
	c.state = next
	if prev == next {
		return false
	}
	log.Printf("Menu: %s -> %s (%s)", prev, next, cause)
	if c.bus != nil {
		c.bus.Publish(eventbus.MenuChangedEvent{From: prev, To: next, Cause: cause})
	}
	return true
}
