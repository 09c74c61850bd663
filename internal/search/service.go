package search

import (
	"context"
	"log"
	"sync"

	"gemshub/internal/catalog"
	"gemshub/internal/eventbus"
)

// Service runs type-ahead queries against an injected catalog source
type Service struct {
	mu      sync.Mutex
	state   *State
	catalog catalog.Source
	bus     eventbus.EventBus
}

// NewService creates a new search service. bus may be nil.
func NewService(source catalog.Source, bus eventbus.EventBus) *Service {
	return &Service{
		state:   &State{},
		catalog: source,
		bus:     bus,
	}
}

// Begin records new input. An empty query hides the panel and returns false;
// no catalog work is needed in that case.
func (s *Service) Begin(raw string) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := Normalize(raw)
	s.state.Issued++
	s.state.Query = query

	if query == "" {
		// Supersede anything still in flight
		s.state.Applied = s.state.Issued
		s.hideLocked()
		return Request{}, false
	}
	return Request{Seq: s.state.Issued, Query: query}, true
}

// Run resolves a request against the catalog. Safe to call off the UI goroutine.
func (s *Service) Run(ctx context.Context, req Request) Outcome {
	var results []Result
	if s.catalog != nil {
		results = Filter(s.catalog.Ensure(ctx), req.Query)
	}
	return Outcome{Seq: req.Seq, Query: req.Query, Visible: true, Results: results}
}

// Accept applies an outcome unless a newer request has been issued since
func (s *Service) Accept(o Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.Seq != s.state.Issued {
		log.Printf("Search: dropping stale outcome %d for %q (latest %d)", o.Seq, o.Query, s.state.Issued)
		return false
	}
	s.state.Applied = o.Seq
	s.state.Visible = o.Visible
	s.state.Results = o.Results
	s.state.Selected = 0

	if s.bus != nil {
		s.bus.Publish(eventbus.SearchCompletedEvent{Query: o.Query, MatchCount: len(o.Results)})
	}
	return true
}

// Query runs Begin, Run and Accept in one call
func (s *Service) Query(ctx context.Context, raw string) Outcome {
	req, ok := s.Begin(raw)
	if !ok {
		return Outcome{Seq: req.Seq}
	}
	o := s.Run(ctx, req)
	s.Accept(o)
	return o
}

// Dismiss hides the panel without forgetting the query
func (s *Service) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hideLocked()
}

// Visible reports whether the results panel is shown
func (s *Service) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Visible
}

// Snapshot returns a copy of the panel state for rendering
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := *s.state
	st.Results = append([]Result(nil), s.state.Results...)
	return st
}

// NavigateNext moves the highlighted row down, wrapping around
func (s *Service) NavigateNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.state.Results) == 0 {
		return
	}
	s.state.Selected = (s.state.Selected + 1) % len(s.state.Results)
}

// NavigatePrevious moves the highlighted row up, wrapping around
func (s *Service) NavigatePrevious() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.state.Results) == 0 {
		return
	}
	s.state.Selected--
	if s.state.Selected < 0 {
		s.state.Selected = len(s.state.Results) - 1
	}
}

// Select highlights a row by index; out-of-range indices are ignored
func (s *Service) Select(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i >= 0 && i < len(s.state.Results) {
		s.state.Selected = i
	}
}

// Current returns the highlighted result, if the panel shows any
func (s *Service) Current() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Visible || len(s.state.Results) == 0 {
		return Result{}, false
	}
	return s.state.Results[s.state.Selected], true
}

func (s *Service) hideLocked() {
	s.state.Visible = false
	s.state.Results = nil
	s.state.Selected = 0
}
