package menu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemshub/internal/domain"
	"gemshub/internal/eventbus"
)

const breakpoint = 768

func TestTransitionTable(t *testing.T) {
	open, closed := domain.MenuOpen, domain.MenuClosed

	tests := []struct {
		name    string
		state   domain.MenuState
		in      Input
		want    domain.MenuState
		matched bool
	}{
		{"toggle opens", closed, Input{Event: ToggleClicked, Width: 1024}, open, true},
		{"toggle closes", open, Input{Event: ToggleClicked, Width: 400}, closed, true},
		{"overlay closes", open, Input{Event: OverlayClicked, Width: 400}, closed, true},
		{"overlay while closed stays closed", closed, Input{Event: OverlayClicked, Width: 400}, closed, true},
		{"outside click narrow closes", open, Input{Event: OutsideClicked, Width: 400}, closed, true},
		{"outside click wide ignored", open, Input{Event: OutsideClicked, Width: 1024}, open, false},
		{"outside click at breakpoint is narrow", open, Input{Event: OutsideClicked, Width: 768}, closed, true},
		{"plain link narrow closes", open, Input{Event: LinkActivated, Width: 400}, closed, true},
		{"submenu parent narrow stays", open, Input{Event: LinkActivated, Width: 400, SubmenuParent: true}, open, false},
		{"plain link wide stays", open, Input{Event: LinkActivated, Width: 1024}, open, false},
		{"submenu link narrow closes", open, Input{Event: SubmenuLinkActivated, Width: 400}, closed, true},
		{"submenu link wide stays", open, Input{Event: SubmenuLinkActivated, Width: 1024}, open, false},
		{"resize to wide closes", open, Input{Event: ResizeSettled, Width: 900}, closed, true},
		{"resize to narrow stays", open, Input{Event: ResizeSettled, Width: 600}, open, false},
		{"resize while closed ignored", closed, Input{Event: ResizeSettled, Width: 900}, closed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := Next(tt.state, tt.in, breakpoint)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.matched, matched)
		})
	}
}

func TestControllerStartsClosed(t *testing.T) {
	c := NewController(breakpoint, nil)
	assert.Equal(t, domain.MenuClosed, c.State())
	assert.Equal(t, Effects{Icon: IconClosed}, c.Effects())
}

func TestToggleSynchronizesEffects(t *testing.T) {
	c := NewController(breakpoint, nil)
	c.SetWidth(400)

	require.True(t, c.Toggle())
	assert.Equal(t, Effects{SidebarVisible: true, OverlayVisible: true, Icon: IconOpen}, c.Effects())

	require.True(t, c.Toggle())
	assert.Equal(t, Effects{Icon: IconClosed}, c.Effects())

	c.SetWidth(1024)
	c.Toggle()
	assert.Equal(t, Effects{SidebarVisible: true, Icon: IconOpen}, c.Effects(), "no overlay on wide viewports")
}

func TestOpenCloseIdempotent(t *testing.T) {
	c := NewController(breakpoint, nil)

	assert.False(t, c.Close())
	assert.Equal(t, domain.MenuClosed, c.State())

	assert.True(t, c.Open())
	assert.False(t, c.Open())
	assert.Equal(t, domain.MenuOpen, c.State())

	assert.True(t, c.Close())
	assert.False(t, c.Close())
}

func TestOutsideClickScenario(t *testing.T) {
	c := NewController(breakpoint, nil)
	c.SetWidth(400)
	c.Open()
	assert.True(t, c.Dispatch(Input{Event: OutsideClicked}))
	assert.Equal(t, domain.MenuClosed, c.State())

	c.SetWidth(1024)
	c.Open()
	assert.False(t, c.Dispatch(Input{Event: OutsideClicked}))
	assert.Equal(t, domain.MenuOpen, c.State())
}

func TestResizeScenarioClosesExactlyOnce(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	changes := make(chan eventbus.MenuChangedEvent, 8)
	bus.Subscribe(eventbus.EventMenuChanged, func(e eventbus.DomainEvent) {
		changes <- e.(eventbus.MenuChangedEvent)
	})

	c := NewController(breakpoint, bus)
	c.SetWidth(600)
	c.Open()
	<-changes

	var d Debouncer
	var tokens []uint64
	for _, w := range []int{650, 720, 800, 860, 900} {
		c.SetWidth(w)
		tokens = append(tokens, d.Observe(w))
	}

	closes := 0
	for _, tok := range tokens {
		if w, ok := d.Settle(tok); ok {
			if c.Dispatch(Input{Event: ResizeSettled, Width: w}) {
				closes++
			}
		}
	}
	// A repeated settle of the same token is ignored
	if _, ok := d.Settle(tokens[len(tokens)-1]); ok {
		closes++
	}

	assert.Equal(t, 1, closes)
	assert.Equal(t, domain.MenuClosed, c.State())

	select {
	case ev := <-changes:
		assert.Equal(t, domain.MenuOpen, ev.From)
		assert.Equal(t, domain.MenuClosed, ev.To)
		assert.Equal(t, "resize", ev.Cause)
	case <-time.After(time.Second):
		t.Fatal("no menu change event")
	}
}

func TestDebouncerOnlyNewestSettles(t *testing.T) {
	var d Debouncer
	first := d.Observe(10)
	second := d.Observe(20)

	_, ok := d.Settle(first)
	assert.False(t, ok)
	w, ok := d.Settle(second)
	assert.True(t, ok)
	assert.Equal(t, 20, w)

	_, ok = d.Settle(0)
	assert.False(t, ok)
}

func TestSubmenuAccordion(t *testing.T) {
	c := NewController(breakpoint, nil)
	assert.Equal(t, -1, c.ExpandedIndex())

	c.ToggleSubmenu(1)
	assert.True(t, c.Expanded(1))

	c.ToggleSubmenu(3)
	assert.False(t, c.Expanded(1))
	assert.True(t, c.Expanded(3))

	c.ToggleSubmenu(3)
	assert.Equal(t, -1, c.ExpandedIndex())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "overlay", OverlayClicked.String())
	assert.Equal(t, "unknown", Event(99).String())
}
