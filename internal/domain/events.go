package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded  EventType = "CatalogLoaded"
	EventCatalogFailed  EventType = "CatalogFailed"
	EventMenuChanged    EventType = "MenuChanged"
	EventSearchComplete EventType = "SearchComplete"
	EventLinkCopied     EventType = "LinkCopied"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once a complete catalog snapshot is cached
type CatalogLoadedEvent struct {
	Count int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogFailedEvent is emitted when a catalog fetch fails
type CatalogFailedEvent struct {
	Err error
}

func (e CatalogFailedEvent) Type() EventType { return EventCatalogFailed }

// MenuChangedEvent is emitted when the sidebar changes state
type MenuChangedEvent struct {
	From  MenuState
	To    MenuState
	Cause string
}

func (e MenuChangedEvent) Type() EventType { return EventMenuChanged }

// SearchCompletedEvent is emitted after a query has been filtered
type SearchCompletedEvent struct {
	Query      string
	MatchCount int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchComplete }

// LinkCopiedEvent is emitted when a result link lands on the clipboard
type LinkCopiedEvent struct {
	URL string
}

func (e LinkCopiedEvent) Type() EventType { return EventLinkCopied }

// ConfigSavedEvent is emitted after the config file is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
