package search

// MaxResults caps the rows shown in the results panel
const MaxResults = 10

// LinkPrefix is the site path for a single gem page
const LinkPrefix = "/gems/gem/"

// EmptyMessage is shown when a query matches nothing
const EmptyMessage = "No gems found"

// Result is one row of the results panel
type Result struct {
	Name string // display label, terminal-safe
	Slug string
	Link string
}

// Request is an issued query waiting for the catalog
type Request struct {
	Seq   uint64
	Query string // normalized
}

// Outcome is a filtered query ready to render
type Outcome struct {
	Seq     uint64
	Query   string
	Visible bool
	Results []Result
}

// Empty reports whether the panel should show EmptyMessage
func (o Outcome) Empty() bool {
	return o.Visible && len(o.Results) == 0
}

// State holds what the results panel currently shows
type State struct {
	Query    string
	Issued   uint64 // latest request token handed out
	Applied  uint64 // token of the outcome on screen
	Visible  bool
	Results  []Result
	Selected int
}
