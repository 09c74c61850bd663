package ui

import (
	"time"

	"gemshub/internal/eventbus"
	"gemshub/internal/search"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg advances running animations by one frame
type frameMsg time.Time

// resizeSettledMsg fires once the terminal width has been stable for the settle delay
type resizeSettledMsg struct {
	token uint64
}

// searchResultMsg carries a filtered query back from its goroutine
type searchResultMsg struct {
	outcome search.Outcome
}

// clipboardMsg reports the result of copying a gem link
type clipboardMsg struct {
	url string
	err error
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	kind    pagerKind
	content string
	err     error
}

// clearStatusMsg clears the status bar
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
