package views

// Fixed geometry of the frame
const (
	HeaderHeight = 1
	StatusHeight = 1
	SidebarWidth = 26
	SearchWidth  = 34
	ToggleWidth  = 3
)

// Rect is a cell rectangle; the zero Rect contains nothing
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return r.W > 0 && r.H > 0 && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region names what a click landed on
type Region int

const (
	RegionNone Region = iota
	RegionToggle
	RegionSearch
	RegionResults
	RegionSidebar
	RegionOverlay
	RegionContent
)

func (r Region) String() string {
	switch r {
	case RegionToggle:
		return "toggle"
	case RegionSearch:
		return "search"
	case RegionResults:
		return "results"
	case RegionSidebar:
		return "sidebar"
	case RegionOverlay:
		return "overlay"
	case RegionContent:
		return "content"
	default:
		return "none"
	}
}

// Layout is where each interactive part of the frame sits
type Layout struct {
	Width, Height int
	Toggle        Rect
	Search        Rect
	Results       Rect
	Sidebar       Rect
	Overlay       Rect
	Content       Rect
	Status        Rect
}

// ComputeLayout places the frame parts. When the overlay is visible the
// sidebar floats over the content; otherwise an open sidebar pushes the
// content right.
func ComputeLayout(width, height int, sidebarVisible, overlayVisible bool, resultRows int) Layout {
	l := Layout{Width: width, Height: height}
	bodyY := HeaderHeight
	bodyH := max(height-HeaderHeight-StatusHeight, 0)

	l.Toggle = Rect{X: 0, Y: 0, W: ToggleWidth, H: HeaderHeight}

	searchW := min(SearchWidth, max(width-ToggleWidth-12, 0))
	l.Search = Rect{X: width - searchW, Y: 0, W: searchW, H: HeaderHeight}
	if resultRows > 0 && searchW > 0 {
		l.Results = Rect{X: l.Search.X, Y: bodyY, W: searchW, H: min(resultRows, bodyH)}
	}

	sidebarW := min(SidebarWidth, width)
	l.Content = Rect{X: 0, Y: bodyY, W: width, H: bodyH}
	if sidebarVisible {
		l.Sidebar = Rect{X: 0, Y: bodyY, W: sidebarW, H: bodyH}
		if overlayVisible {
			l.Overlay = Rect{X: sidebarW, Y: bodyY, W: width - sidebarW, H: bodyH}
		} else {
			l.Content = Rect{X: sidebarW, Y: bodyY, W: width - sidebarW, H: bodyH}
		}
	}

	l.Status = Rect{X: 0, Y: height - StatusHeight, W: width, H: StatusHeight}
	return l
}

// HitTest returns the topmost region under (x, y). The results panel
// floats above everything, the sidebar above the overlay.
func (l Layout) HitTest(x, y int) Region {
	switch {
	case l.Results.Contains(x, y):
		return RegionResults
	case l.Toggle.Contains(x, y):
		return RegionToggle
	case l.Search.Contains(x, y):
		return RegionSearch
	case l.Sidebar.Contains(x, y):
		return RegionSidebar
	case l.Overlay.Contains(x, y):
		return RegionOverlay
	case l.Content.Contains(x, y):
		return RegionContent
	}
	return RegionNone
}

// InSearchWidget reports whether a region belongs to the search box or its results
func (r Region) InSearchWidget() bool {
	return r == RegionSearch || r == RegionResults
}

// RowAt converts y into a row index inside r, or -1 when outside
func (r Rect) RowAt(y int) int {
	if y < r.Y || y >= r.Y+r.H {
		return -1
	}
	return y - r.Y
}
